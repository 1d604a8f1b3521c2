// Package filter narrows a catalog's book list by free-text search, genre
// and shelf membership. It only reads the catalog.
package filter

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Catalog is the read side of the store the filter needs.
type Catalog interface {
	Books() []entities.Book
	ShelfIDs(book entities.Book) []uuid.UUID
}

// State holds the active criteria. The zero value is the default filter and
// matches every book; each unset criterion contributes no restriction.
type State struct {
	SearchText      string
	SelectedGenres  map[string]struct{}
	SelectedShelves map[uuid.UUID]struct{}
}

// SetGenre adds or removes genre from the selected genres.
func (s *State) SetGenre(genre string, selected bool) {
	if selected {
		if s.SelectedGenres == nil {
			s.SelectedGenres = make(map[string]struct{})
		}
		s.SelectedGenres[genre] = struct{}{}
		return
	}
	delete(s.SelectedGenres, genre)
}

// SetShelf adds or removes shelfID from the selected shelves.
func (s *State) SetShelf(shelfID uuid.UUID, selected bool) {
	if selected {
		if s.SelectedShelves == nil {
			s.SelectedShelves = make(map[uuid.UUID]struct{})
		}
		s.SelectedShelves[shelfID] = struct{}{}
		return
	}
	delete(s.SelectedShelves, shelfID)
}

// Reset clears the search text and both selections.
func (s *State) Reset() {
	*s = State{}
}

// IsEmpty reports whether no criterion is active.
func (s State) IsEmpty() bool {
	return normalize(s.SearchText) == "" && len(s.SelectedGenres) == 0 && len(s.SelectedShelves) == 0
}

// FilteredBooks returns the catalog's books that match, in catalog order.
func (s State) FilteredBooks(c Catalog) []entities.Book {
	books := c.Books()
	result := make([]entities.Book, 0, len(books))
	for _, b := range books {
		if s.Matches(b, c) {
			result = append(result, b)
		}
	}
	return result
}

// Matches reports whether book passes the search, genre and shelf criteria.
func (s State) Matches(book entities.Book, c Catalog) bool {
	return s.matchesSearch(book) && s.matchesGenres(book) && s.matchesShelves(book, c)
}

func (s State) matchesSearch(book entities.Book) bool {
	query := normalize(s.SearchText)
	if query == "" {
		return true
	}

	haystack := strings.Join([]string{
		book.Title,
		strings.Join(book.AuthorNames(), " "),
		strings.Join(book.Genres, " "),
	}, " ")

	return strings.Contains(fold(haystack), query)
}

func (s State) matchesGenres(book entities.Book) bool {
	if len(s.SelectedGenres) == 0 {
		return true
	}
	for _, g := range book.Genres {
		if _, ok := s.SelectedGenres[g]; ok {
			return true
		}
	}
	return false
}

func (s State) matchesShelves(book entities.Book, c Catalog) bool {
	if len(s.SelectedShelves) == 0 {
		return true
	}
	for _, id := range c.ShelfIDs(book) {
		if _, ok := s.SelectedShelves[id]; ok {
			return true
		}
	}
	return false
}

func normalize(query string) string {
	return fold(strings.TrimSpace(query))
}

// fold applies Unicode case folding. A Caser keeps state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
