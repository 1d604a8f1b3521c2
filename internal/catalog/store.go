// Package catalog holds the in-memory collection of books and cabinets.
//
// Store is the only component allowed to change shelf placements. Queries
// never fail: unknown ids produce empty results and moves to unknown
// shelves are ignored. Relocate is the one call that reports a missing
// placement or shelf, for callers that act on the outcome.
package catalog

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
)

var (
	ErrPlacementNotFound = errors.New("placement not found")
	ErrShelfNotFound     = errors.New("shelf not found")
)

// Store owns the ordered books and libraries. It is safe for concurrent use;
// observers registered with Subscribe are called after every successful
// mutation, on the mutating goroutine, once the lock has been released.
type Store struct {
	mu        sync.RWMutex
	books     []entities.Book
	libraries []entities.Library

	observersMu sync.Mutex
	observers   map[int]func()
	nextID      int
}

// NewStore builds a store from the given books and libraries. Both are
// deep-copied and every shelf is sorted by position.
func NewStore(books []entities.Book, libraries []entities.Library) *Store {
	s := &Store{
		books:     make([]entities.Book, len(books)),
		libraries: make([]entities.Library, len(libraries)),
		observers: make(map[int]func()),
	}
	for i, b := range books {
		s.books[i] = b.Clone()
	}
	for i, l := range libraries {
		s.libraries[i] = l.Clone()
		for j := range s.libraries[i].Shelves {
			sortPlacements(s.libraries[i].Shelves[j].Books)
		}
	}
	return s
}

// Books returns a copy of the canonical book list in store order.
func (s *Store) Books() []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entities.Book, len(s.books))
	for i, b := range s.books {
		books[i] = b.Clone()
	}
	return books
}

// Libraries returns a deep copy of every cabinet.
func (s *Store) Libraries() []entities.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()

	libraries := make([]entities.Library, len(s.libraries))
	for i, l := range s.libraries {
		libraries[i] = l.Clone()
	}
	return libraries
}

func (s *Store) Book(id uuid.UUID) (entities.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return entities.Book{}, false
}

func (s *Store) Library(id uuid.UUID) (entities.Library, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.libraries {
		if l.ID == id {
			return l.Clone(), true
		}
	}
	return entities.Library{}, false
}

func (s *Store) Shelf(id uuid.UUID) (entities.Shelf, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if li, si, ok := s.shelfIndex(id); ok {
		return s.libraries[li].Shelves[si].Clone(), true
	}
	return entities.Shelf{}, false
}

// FindPlacement locates a placement by id and reports the shelf it stands on.
func (s *Store) FindPlacement(id uuid.UUID) (entities.BookPlacement, uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.placementLocked(id)
}

func (s *Store) placementLocked(id uuid.UUID) (entities.BookPlacement, uuid.UUID, bool) {
	for _, l := range s.libraries {
		for _, shelf := range l.Shelves {
			for _, p := range shelf.Books {
				if p.ID == id {
					return p.Clone(), shelf.ID, true
				}
			}
		}
	}
	return entities.BookPlacement{}, uuid.Nil, false
}

// ShelfIDs returns the distinct ids of shelves holding at least one placement
// of book, in library then shelf order. The result is empty for unplaced books.
func (s *Store) ShelfIDs(book entities.Book) []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []uuid.UUID{}
	seen := make(map[uuid.UUID]struct{})
	for _, l := range s.libraries {
		for _, shelf := range l.Shelves {
			if _, dup := seen[shelf.ID]; dup {
				continue
			}
			for _, p := range shelf.Books {
				if p.Book.ID == book.ID {
					seen[shelf.ID] = struct{}{}
					ids = append(ids, shelf.ID)
					break
				}
			}
		}
	}
	return ids
}

// Placements returns every placement of book across all shelves, in library,
// shelf, then shelf order. It is not globally sorted by position.
func (s *Store) Placements(book entities.Book) []entities.BookPlacement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	placements := []entities.BookPlacement{}
	for _, l := range s.libraries {
		for _, shelf := range l.Shelves {
			for _, p := range shelf.Books {
				if p.Book.ID == book.ID {
					placements = append(placements, p.Clone())
				}
			}
		}
	}
	return placements
}

// Genres returns the distinct genres of the canonical books in first-seen order.
func (s *Store) Genres() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := []string{}
	seen := make(map[string]struct{})
	for _, b := range s.books {
		for _, g := range b.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}
	return genres
}

// Move relocates placement to shelfID at position. If no shelf has that id
// the call is a no-op and returns false. Otherwise every placement sharing
// the placement's id is removed (from its old shelf and, if present, from
// the target), an updated copy is appended to the target, and the target is
// stable-sorted by position, so a placement moved onto an occupied position
// lands after the existing entries with that position.
func (s *Store) Move(placement entities.BookPlacement, shelfID uuid.UUID, position int) bool {
	s.mu.Lock()
	li, si, ok := s.shelfIndex(shelfID)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.moveLocked(placement, li, si, position)
	s.mu.Unlock()

	s.notify()
	return true
}

// Relocate moves the placement with the given id the same way Move does, but
// resolves it under the write lock and returns the placement and shelf id as
// they were right before the move.
func (s *Store) Relocate(id, shelfID uuid.UUID, position int) (entities.BookPlacement, uuid.UUID, error) {
	s.mu.Lock()
	previous, fromShelfID, found := s.placementLocked(id)
	if !found {
		s.mu.Unlock()
		return entities.BookPlacement{}, uuid.Nil, ErrPlacementNotFound
	}
	li, si, ok := s.shelfIndex(shelfID)
	if !ok {
		s.mu.Unlock()
		return entities.BookPlacement{}, uuid.Nil, ErrShelfNotFound
	}
	s.moveLocked(previous, li, si, position)
	s.mu.Unlock()

	s.notify()
	return previous, fromShelfID, nil
}

func (s *Store) moveLocked(placement entities.BookPlacement, li, si, position int) {
	for i := range s.libraries {
		for j := range s.libraries[i].Shelves {
			shelf := &s.libraries[i].Shelves[j]
			shelf.Books = slices.DeleteFunc(shelf.Books, func(p entities.BookPlacement) bool {
				return p.ID == placement.ID
			})
		}
	}

	updated := placement.Clone()
	updated.Position = position

	target := &s.libraries[li].Shelves[si]
	target.Books = append(target.Books, updated)
	sortPlacements(target.Books)
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the registration.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) notify() {
	s.observersMu.Lock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.observersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// shelfIndex must be called with s.mu held.
func (s *Store) shelfIndex(id uuid.UUID) (int, int, bool) {
	for i, l := range s.libraries {
		for j, shelf := range l.Shelves {
			if shelf.ID == id {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func sortPlacements(placements []entities.BookPlacement) {
	slices.SortStableFunc(placements, func(a, b entities.BookPlacement) int {
		return cmp.Compare(a.Position, b.Position)
	})
}
