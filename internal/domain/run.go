package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunInfo identifies one pipeline run. Loaders persist it alongside the flat
// table; the dashboard treats the run ID as the table version, so cached
// query results are invalidated by a reload.
type RunInfo struct {
	ID       string    `json:"run_id"`
	LoadedAt time.Time `json:"loaded_at"`
	Rows     int       `json:"rows"`
}

// NewRunInfo stamps a fresh run identity for a table of the given size.
func NewRunInfo(rows int) RunInfo {
	return RunInfo{
		ID:       uuid.NewString(),
		LoadedAt: clock.Now().UTC(),
		Rows:     rows,
	}
}
