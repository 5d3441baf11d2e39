package jobs

import (
	"github.com/studyvault/backend/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool    *worker.Pool
	heatmap worker.HeatmapRefresher
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, heatmap worker.HeatmapRefresher) JobQueue {
	return &WorkerQueue{pool: pool, heatmap: heatmap}
}

func (q *WorkerQueue) EnqueueHeatmapRefresh(userID string) error {
	return q.pool.Submit(&worker.RefreshHeatmapJob{
		Heatmap: q.heatmap,
		UserID:  userID,
	})
}
