// Package metrics exposes Prometheus instruments for the catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	ResultMoved            = "moved"
	ResultPlacementMissing = "placement_not_found"
	ResultShelfMissing     = "shelf_not_found"
)

var (
	placementMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookshelf_placement_moves_total",
		Help: "Placement move requests by result",
	}, []string{"result"})

	filterQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshelf_filter_queries_total",
		Help: "Filtered book list evaluations",
	})

	storeChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookshelf_store_changes_total",
		Help: "Change notifications emitted by the catalog store",
	})

	shelfPlacements = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bookshelf_shelf_placements",
		Help: "Number of placements currently on each shelf",
	}, []string{"shelf_id", "shelf"})
)

// RecordMove counts a move request with one of the Result* labels.
func RecordMove(result string) {
	placementMoves.WithLabelValues(result).Inc()
}

func RecordFilterQuery() {
	filterQueries.Inc()
}

// Store is the part of the catalog store the observer needs.
type Store interface {
	Libraries() []entities.Library
	Subscribe(fn func()) (cancel func())
}

// Observe publishes per-shelf placement counts now and after every change
// of store. Call the returned function to stop observing.
func Observe(store Store) (cancel func()) {
	updateShelfGauges(store.Libraries())
	return store.Subscribe(func() {
		storeChanges.Inc()
		updateShelfGauges(store.Libraries())
	})
}

func updateShelfGauges(libraries []entities.Library) {
	for _, lib := range libraries {
		for _, shelf := range lib.Shelves {
			shelfPlacements.WithLabelValues(shelf.ID.String(), shelf.Name).Set(float64(len(shelf.Books)))
		}
	}
}
