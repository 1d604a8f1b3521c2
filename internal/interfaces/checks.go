package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database/history"
	"github.com/mrlokans/bookshelf/internal/filter"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/metrics"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/services"
)

// =============================================================================
// Catalog
// =============================================================================

var _ filter.Catalog = (*catalog.Store)(nil)
var _ services.PlacementStore = (*catalog.Store)(nil)
var _ metrics.Store = (*catalog.Store)(nil)
var _ http.CatalogStore = (*catalog.Store)(nil)

// =============================================================================
// Move Journal
// =============================================================================

var _ services.MoveRecorder = (*history.Repository)(nil)
var _ http.HistoryReader = (*history.Repository)(nil)
var _ scheduler.MoveJournal = (*history.Repository)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.PlacementMover = (*services.PlacementService)(nil)
