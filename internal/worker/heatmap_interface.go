package worker

import "context"

// HeatmapRefresher is the slice of the heat-map service the jobs need.
// Declared here so the worker package does not depend on services.
type HeatmapRefresher interface {
	RecomputeUser(ctx context.Context, userID string) error
	RecomputeAllUsers(ctx context.Context) error
}
