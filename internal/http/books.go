package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/filter"
	"github.com/mrlokans/bookshelf/internal/metrics"
)

type BooksController struct {
	store   CatalogStore
	history HistoryReader
}

func NewBooksController(store CatalogStore, history HistoryReader) *BooksController {
	return &BooksController{
		store:   store,
		history: history,
	}
}

// BookDetail is a book together with where it currently stands.
type BookDetail struct {
	entities.Book
	DimensionsDescription string      `json:"dimensions_description"`
	ShelfIDs              []uuid.UUID `json:"shelf_ids"`
}

// ShelfSummary is a shelf without its placements.
type ShelfSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Count    int       `json:"count"`
}

func newShelfSummary(shelf entities.Shelf) ShelfSummary {
	return ShelfSummary{
		ID:       shelf.ID,
		Name:     shelf.Name,
		Capacity: shelf.Capacity,
		Count:    len(shelf.Books),
	}
}

// GetBooks returns the filtered book list.
// GET /api/books?q=&genre=&shelf=
func (controller *BooksController) GetBooks(c *gin.Context) {
	shelfIDs, ok := parseUUIDQueryArray(c, "shelf")
	if !ok {
		return
	}

	state := filter.State{SearchText: c.Query("q")}
	for _, genre := range c.QueryArray("genre") {
		state.SetGenre(genre, true)
	}
	for _, id := range shelfIDs {
		state.SetShelf(id, true)
	}

	books := state.FilteredBooks(controller.store)
	metrics.RecordFilterQuery()

	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBook returns a single book.
// GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	book, ok := controller.lookupBook(c)
	if !ok {
		return
	}

	c.IndentedJSON(http.StatusOK, BookDetail{
		Book:                  book,
		DimensionsDescription: book.Dimensions.FormattedDescription(),
		ShelfIDs:              controller.store.ShelfIDs(book),
	})
}

// GetPlacements returns every copy of a book across all shelves.
// GET /api/books/:id/placements
func (controller *BooksController) GetPlacements(c *gin.Context) {
	book, ok := controller.lookupBook(c)
	if !ok {
		return
	}

	placements := controller.store.Placements(book)
	c.IndentedJSON(http.StatusOK, gin.H{"placements": placements, "count": len(placements)})
}

// GetShelves returns the shelves holding a book.
// GET /api/books/:id/shelves
func (controller *BooksController) GetShelves(c *gin.Context) {
	book, ok := controller.lookupBook(c)
	if !ok {
		return
	}

	ids := controller.store.ShelfIDs(book)
	shelves := make([]ShelfSummary, 0, len(ids))
	for _, id := range ids {
		if shelf, found := controller.store.Shelf(id); found {
			shelves = append(shelves, newShelfSummary(shelf))
		}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"shelves": shelves, "count": len(shelves)})
}

// GetHistory returns the journaled moves of a book.
// GET /api/books/:id/history
func (controller *BooksController) GetHistory(c *gin.Context) {
	book, ok := controller.lookupBook(c)
	if !ok {
		return
	}

	moves, err := controller.history.GetMovesForBook(book.ID.String())
	if err != nil {
		respondInternalError(c, err, "get book history")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"moves": moves, "count": len(moves)})
}

// GetGenres returns every genre in catalog order.
// GET /api/genres
func (controller *BooksController) GetGenres(c *gin.Context) {
	genres := controller.store.Genres()
	c.IndentedJSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}

func (controller *BooksController) lookupBook(c *gin.Context) (entities.Book, bool) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return entities.Book{}, false
	}
	book, found := controller.store.Book(id)
	if !found {
		respondNotFound(c, "book")
		return entities.Book{}, false
	}
	return book, true
}
