// Package shuffle implements the weighted question selector for randomized
// practice sessions.
package shuffle

import (
	"math"
	"math/rand"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/strength"
)

const (
	weakShare   = 0.6
	mediumShare = 0.3
	strongShare = 0.1
)

// MinLimit and MaxLimit bound how many questions a single shuffle may return.
const (
	MinLimit     = 1
	MaxLimit     = 20
	DefaultLimit = 10
)

// ClampLimit forces n into the allowed range. Zero means the caller sent no
// limit and gets the default; negative values clamp to the minimum.
func ClampLimit(n int) int {
	if n == 0 {
		return DefaultLimit
	}
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Select picks up to n questions from the pool, biased 60/30/10 toward Weak,
// Medium and Strong topics, and returns them uniformly permuted. When the
// pool has no more than n questions the whole pool is returned (still
// permuted). An empty pool yields an empty result.
func Select(pool []models.ShuffleQuestion, n int, rng *rand.Rand) []models.ShuffleQuestion {
	if n <= 0 || len(pool) == 0 {
		return []models.ShuffleQuestion{}
	}

	var picked []int
	if len(pool) <= n {
		picked = make([]int, len(pool))
		for i := range pool {
			picked[i] = i
		}
	} else {
		picked = prioritize(pool, n)
	}

	out := make([]models.ShuffleQuestion, len(picked))
	for i, idx := range picked {
		out[i] = pool[idx]
	}
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// prioritize returns the indices of the n questions to keep: up to the target
// share from each strength partition in pool order, then backfill from the
// remaining candidates in pool order until n is reached.
func prioritize(pool []models.ShuffleQuestion, n int) []int {
	byLevel := map[strength.Level][]int{}
	for i, q := range pool {
		level := strength.Level(q.TopicStrength)
		byLevel[level] = append(byLevel[level], i)
	}

	targets := []struct {
		level  strength.Level
		target int
	}{
		{strength.Weak, ceilShare(n, weakShare)},
		{strength.Medium, ceilShare(n, mediumShare)},
		{strength.Strong, ceilShare(n, strongShare)},
	}

	selected := make([]int, 0, n)
	used := make(map[int]bool, n)
	for _, t := range targets {
		group := byLevel[t.level]
		for i := 0; i < len(group) && i < t.target; i++ {
			selected = append(selected, group[i])
			used[group[i]] = true
		}
	}

	// Partitions exhausted below their targets: backfill in original order.
	for i := 0; i < len(pool) && len(selected) < n; i++ {
		if !used[i] {
			selected = append(selected, i)
			used[i] = true
		}
	}

	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

func ceilShare(n int, share float64) int {
	return int(math.Ceil(float64(n) * share))
}
