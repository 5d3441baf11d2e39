package worker

import (
	"context"
)

// RefreshHeatmapJob recomputes one user's topic heat-map.
type RefreshHeatmapJob struct {
	Heatmap HeatmapRefresher
	UserID  string
}

func (j *RefreshHeatmapJob) Name() string { return "refresh_heatmap" }

func (j *RefreshHeatmapJob) Run(ctx context.Context) error {
	return j.Heatmap.RecomputeUser(ctx, j.UserID)
}

// RefreshAllHeatmapsJob recomputes the heat-map for every user. Scheduled on
// a fixed interval so cached rows never drift far from the underlying
// mistake and redo history.
type RefreshAllHeatmapsJob struct {
	Heatmap HeatmapRefresher
}

func (j *RefreshAllHeatmapsJob) Name() string { return "refresh_all_heatmaps" }

func (j *RefreshAllHeatmapsJob) Run(ctx context.Context) error {
	return j.Heatmap.RecomputeAllUsers(ctx)
}
