package services

import (
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// PlacementStore is the part of the catalog store that relocates placements.
// Relocate returns the placement and its shelf id as they were before the
// move, or catalog.ErrPlacementNotFound / catalog.ErrShelfNotFound.
type PlacementStore interface {
	Relocate(id, shelfID uuid.UUID, position int) (entities.BookPlacement, uuid.UUID, error)
}

// MoveRecorder persists placement move journal entries.
type MoveRecorder interface {
	LogMove(move *entities.PlacementMove) error
}
