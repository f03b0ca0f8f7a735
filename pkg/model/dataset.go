package model

import (
	"github.com/google/uuid"

	"finan/ms-sales-analytics/pkg/utils"
)

// Dataset is one normalized, aggregated snapshot of the remote sources.
// It is rebuilt from scratch on every request; nothing derived is ever
// cached or mutated in place.
type Dataset struct {
	SnapshotID uuid.UUID    `json:"snapshot_id"`
	Lines      []LineItem   `json:"lines"`
	Orders     []Order      `json:"orders"`
	Report     IngestReport `json:"report"`
}

// IngestReport accounts for every source row: loaded, or excluded with the
// row-scoped reason. A row never silently disappears or degrades to NaN.
type IngestReport struct {
	RowsTotal     int              `json:"rows_total"`
	RowsLoaded    int              `json:"rows_loaded"`
	RowsSkipped   int              `json:"rows_skipped"`
	SkippedRows   []utils.RowError `json:"skipped_rows,omitempty"`
	UnmatchedSKUs int              `json:"unmatched_skus"`
}
