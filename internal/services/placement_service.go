package services

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/metrics"
)

var (
	ErrPlacementNotFound = catalog.ErrPlacementNotFound
	ErrShelfNotFound     = catalog.ErrShelfNotFound
)

// PlacementService validates move requests before handing them to the store
// and keeps the move journal.
type PlacementService struct {
	store    PlacementStore
	recorder MoveRecorder
}

// NewPlacementService creates a PlacementService. recorder may be nil, in
// which case moves are not journaled.
func NewPlacementService(store PlacementStore, recorder MoveRecorder) *PlacementService {
	return &PlacementService{store: store, recorder: recorder}
}

// Move relocates the placement to shelfID at position and returns the journal
// entry describing the change. Journal write failures are logged and do not
// fail the move.
func (s *PlacementService) Move(placementID, shelfID uuid.UUID, position int) (*entities.PlacementMove, error) {
	placement, fromShelfID, err := s.store.Relocate(placementID, shelfID, position)
	switch {
	case errors.Is(err, catalog.ErrPlacementNotFound):
		metrics.RecordMove(metrics.ResultPlacementMissing)
		return nil, ErrPlacementNotFound
	case errors.Is(err, catalog.ErrShelfNotFound):
		metrics.RecordMove(metrics.ResultShelfMissing)
		return nil, ErrShelfNotFound
	case err != nil:
		return nil, err
	}
	metrics.RecordMove(metrics.ResultMoved)

	move := &entities.PlacementMove{
		PlacementID: placement.ID.String(),
		BookID:      placement.Book.ID.String(),
		BookTitle:   placement.Book.Title,
		FromShelfID: fromShelfID.String(),
		ToShelfID:   shelfID.String(),
		OldPosition: placement.Position,
		NewPosition: position,
	}

	if s.recorder != nil {
		if err := s.recorder.LogMove(move); err != nil {
			log.Printf("Failed to journal move of placement %s: %v", placement.ID, err)
		}
	}

	return move, nil
}
