package http

import (
	"github.com/mrlokans/bookshelf/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store            CatalogStore
	PlacementService PlacementMover

	// Move journal (optional)
	History  HistoryReader
	Database *database.Database

	// Application info
	Version string

	// Prometheus endpoint; empty disables it
	MetricsPath string
}
