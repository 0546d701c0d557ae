package ports

import "context"

// AdminStats is the dashboard rollup. Counts are document-count estimates,
// not exact transactional counts.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// StatsService computes administrative reporting rollups.
type StatsService interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
}
