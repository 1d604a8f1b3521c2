package http

import (
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends on the narrowest one it needs.

// CatalogReader provides read access to the in-memory catalog.
type CatalogReader interface {
	Books() []entities.Book
	Book(id uuid.UUID) (entities.Book, bool)
	Genres() []string
	ShelfIDs(book entities.Book) []uuid.UUID
	Placements(book entities.Book) []entities.BookPlacement
}

// LibraryReader provides read access to cabinets and shelves.
type LibraryReader interface {
	Libraries() []entities.Library
	Library(id uuid.UUID) (entities.Library, bool)
	Shelf(id uuid.UUID) (entities.Shelf, bool)
}

// CatalogStore combines the read interfaces; *catalog.Store satisfies it.
type CatalogStore interface {
	CatalogReader
	LibraryReader
}

// PlacementMover relocates placements between shelves.
type PlacementMover interface {
	Move(placementID, shelfID uuid.UUID, position int) (*entities.PlacementMove, error)
}

// HistoryReader provides read access to the move journal.
type HistoryReader interface {
	GetMoves(limit, offset int) ([]entities.PlacementMove, int64, error)
	GetMovesForBook(bookID string) ([]entities.PlacementMove, error)
}
