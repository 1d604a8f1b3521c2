package catalog

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func shelfByName(t *testing.T, s *Store, name string) entities.Shelf {
	t.Helper()
	for _, lib := range s.Libraries() {
		for _, shelf := range lib.Shelves {
			if shelf.Name == name {
				return shelf
			}
		}
	}
	t.Fatalf("shelf %q not found", name)
	return entities.Shelf{}
}

func positions(shelf entities.Shelf) []int {
	out := make([]int, 0, len(shelf.Books))
	for _, p := range shelf.Books {
		out = append(out, p.Position)
	}
	return out
}

func TestSampleData_HasLibrariesAndBooks(t *testing.T) {
	store := SampleData()

	assert.NotEmpty(t, store.Books(), "sample books should exist")
	require.NotEmpty(t, store.Libraries(), "a sample cabinet should exist")
	assert.NotEmpty(t, store.Libraries()[0].Shelves, "the cabinet should have shelves")
}

func TestStore_Placements(t *testing.T) {
	store := SampleData()

	t.Run("returns every placement of the book", func(t *testing.T) {
		book := store.Books()[1]

		placements := store.Placements(book)

		require.Len(t, placements, 2)
		for _, p := range placements {
			assert.Equal(t, book.ID, p.Book.ID)
		}
	})

	t.Run("follows library then shelf order", func(t *testing.T) {
		book := store.Books()[1]
		philosophy := shelfByName(t, store, "Философия")
		science := shelfByName(t, store, "Научпоп")

		placements := store.Placements(book)

		require.Len(t, placements, 2)
		assert.Equal(t, philosophy.Books[1].ID, placements[0].ID)
		assert.Equal(t, science.Books[0].ID, placements[1].ID)
	})

	t.Run("unplaced book yields empty result", func(t *testing.T) {
		placements := store.Placements(entities.Book{ID: uuid.New()})
		assert.NotNil(t, placements)
		assert.Empty(t, placements)
	})
}

func TestStore_ShelfIDs(t *testing.T) {
	store := SampleData()

	t.Run("ids are distinct and point at shelves holding the book", func(t *testing.T) {
		book := store.Books()[1]

		ids := store.ShelfIDs(book)
		require.NotEmpty(t, ids)

		seen := make(map[uuid.UUID]bool)
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate shelf id %s", id)
			seen[id] = true

			shelf, ok := store.Shelf(id)
			require.True(t, ok)
			contains := false
			for _, p := range shelf.Books {
				if p.Book.ID == book.ID {
					contains = true
				}
			}
			assert.True(t, contains, "shelf %s should contain the book", id)
		}
	})

	t.Run("duplicate copies on one shelf report the shelf once", func(t *testing.T) {
		book := entities.Book{ID: uuid.New(), Title: "Duplicate"}
		shelf := entities.Shelf{
			ID:    uuid.New(),
			Books: []entities.BookPlacement{entities.NewPlacement(book, 1), entities.NewPlacement(book, 2)},
		}
		s := NewStore([]entities.Book{book}, []entities.Library{{ID: uuid.New(), Shelves: []entities.Shelf{shelf}}})

		assert.Equal(t, []uuid.UUID{shelf.ID}, s.ShelfIDs(book))
	})

	t.Run("unplaced book yields empty set", func(t *testing.T) {
		assert.Empty(t, store.ShelfIDs(entities.Book{ID: uuid.New()}))
	})
}

func TestStore_Move(t *testing.T) {
	t.Run("moves placement between shelves keeping target sorted", func(t *testing.T) {
		store := SampleData()
		philosophy := shelfByName(t, store, "Философия")
		science := shelfByName(t, store, "Научпоп")
		moving := philosophy.Books[0]

		moved := store.Move(moving, science.ID, 0)
		require.True(t, moved)

		philosophy = shelfByName(t, store, "Философия")
		for _, p := range philosophy.Books {
			assert.NotEqual(t, moving.ID, p.ID, "source shelf must not keep the moved placement")
		}

		science = shelfByName(t, store, "Научпоп")
		require.Len(t, science.Books, 2)
		assert.Equal(t, []int{0, 1}, positions(science))

		got := science.Books[0]
		assert.Equal(t, moving.ID, got.ID)
		assert.Equal(t, moving.Book, got.Book)
		assert.Equal(t, moving.Orientation, got.Orientation)
		assert.Equal(t, 0, got.Position)
	})

	t.Run("equal positions keep reinsertion order", func(t *testing.T) {
		store := SampleData()
		it := shelfByName(t, store, "IT")
		philosophy := shelfByName(t, store, "Философия")
		existing := it.Books[0]
		moving := philosophy.Books[1]

		require.True(t, store.Move(moving, it.ID, existing.Position))

		it = shelfByName(t, store, "IT")
		require.Len(t, it.Books, 2)
		assert.Equal(t, existing.ID, it.Books[0].ID)
		assert.Equal(t, moving.ID, it.Books[1].ID)
	})

	t.Run("moving within the same shelf reorders it", func(t *testing.T) {
		store := SampleData()
		philosophy := shelfByName(t, store, "Философия")
		first := philosophy.Books[0]

		require.True(t, store.Move(first, philosophy.ID, 10))

		philosophy = shelfByName(t, store, "Философия")
		require.Len(t, philosophy.Books, 2)
		assert.Equal(t, []int{2, 10}, positions(philosophy))
		assert.Equal(t, first.ID, philosophy.Books[1].ID)
	})

	t.Run("repeated move does not duplicate the placement", func(t *testing.T) {
		store := SampleData()
		science := shelfByName(t, store, "Научпоп")
		placement := science.Books[0]

		require.True(t, store.Move(placement, science.ID, 5))
		require.True(t, store.Move(placement, science.ID, 5))

		science = shelfByName(t, store, "Научпоп")
		assert.Len(t, science.Books, 1)
	})

	t.Run("unknown shelf leaves the store unchanged", func(t *testing.T) {
		store := SampleData()
		before := store.Libraries()
		notified := false
		store.Subscribe(func() { notified = true })

		moved := store.Move(before[0].Shelves[0].Books[0], uuid.New(), 3)

		assert.False(t, moved)
		assert.False(t, notified)
		assert.Equal(t, before, store.Libraries())
	})

	t.Run("capacity is not enforced", func(t *testing.T) {
		book := entities.Book{ID: uuid.New()}
		full := entities.Shelf{ID: uuid.New(), Capacity: 1, Books: []entities.BookPlacement{entities.NewPlacement(book, 1)}}
		other := entities.Shelf{ID: uuid.New(), Capacity: 1, Books: []entities.BookPlacement{entities.NewPlacement(book, 1)}}
		store := NewStore([]entities.Book{book}, []entities.Library{{ID: uuid.New(), Shelves: []entities.Shelf{full, other}}})

		require.True(t, store.Move(other.Books[0], full.ID, 2))

		shelf, _ := store.Shelf(full.ID)
		assert.Len(t, shelf.Books, 2)
	})
}

func TestStore_MoveKeepsPlacementSnapshot(t *testing.T) {
	book := entities.Book{ID: uuid.New(), Title: "Original"}
	shelf := entities.Shelf{ID: uuid.New(), Books: []entities.BookPlacement{entities.NewPlacement(book, 1)}}
	store := NewStore([]entities.Book{book}, []entities.Library{{ID: uuid.New(), Shelves: []entities.Shelf{shelf}}})

	placement := shelf.Books[0]
	placement.Book.Title = "Edited by caller"
	require.True(t, store.Move(placement, shelf.ID, 1))

	placement.Book.Title = "Edited after move"
	got, _ := store.Shelf(shelf.ID)
	assert.Equal(t, "Edited by caller", got.Books[0].Book.Title)

	canonical, ok := store.Book(book.ID)
	require.True(t, ok)
	assert.Equal(t, "Original", canonical.Title)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := SampleData()

	books := store.Books()
	books[0].Title = "mutated"
	books[0].Genres[0] = "mutated"

	libs := store.Libraries()
	libs[0].Shelves[0].Books = nil

	assert.NotEqual(t, "mutated", store.Books()[0].Title)
	assert.NotEqual(t, "mutated", store.Books()[0].Genres[0])
	assert.NotEmpty(t, store.Libraries()[0].Shelves[0].Books)
}

func TestStore_Subscribe(t *testing.T) {
	store := SampleData()
	science := shelfByName(t, store, "Научпоп")
	placement := science.Books[0]

	var calls []string
	cancelFirst := store.Subscribe(func() { calls = append(calls, "first") })
	store.Subscribe(func() {
		// observers run after the lock is released and may read the store
		_, ok := store.Shelf(science.ID)
		assert.True(t, ok)
		calls = append(calls, "second")
	})

	store.Move(placement, science.ID, 2)
	assert.Equal(t, []string{"first", "second"}, calls)

	cancelFirst()
	calls = nil
	store.Move(placement, science.ID, 3)
	assert.Equal(t, []string{"second"}, calls)
}

func TestStore_Lookups(t *testing.T) {
	store := SampleData()
	lib := store.Libraries()[0]
	shelf := lib.Shelves[2]

	got, ok := store.Library(lib.ID)
	require.True(t, ok)
	assert.Equal(t, lib.Name, got.Name)

	_, ok = store.Library(uuid.New())
	assert.False(t, ok)

	placement, shelfID, ok := store.FindPlacement(shelf.Books[0].ID)
	require.True(t, ok)
	assert.Equal(t, shelf.ID, shelfID)
	assert.Equal(t, entities.OrientationFrontCover, placement.Orientation)

	_, _, ok = store.FindPlacement(uuid.New())
	assert.False(t, ok)

	_, ok = store.Book(uuid.New())
	assert.False(t, ok)

	assert.Equal(t, []string{"Философия", "Роман", "История", "Научпоп", "Программирование"}, store.Genres())
}

func TestNewStore_SortsShelves(t *testing.T) {
	book := entities.Book{ID: uuid.New()}
	shelf := entities.Shelf{ID: uuid.New(), Books: []entities.BookPlacement{
		entities.NewPlacement(book, 3),
		entities.NewPlacement(book, 1),
		entities.NewPlacement(book, 2),
	}}

	store := NewStore(nil, []entities.Library{{ID: uuid.New(), Shelves: []entities.Shelf{shelf}}})

	got, _ := store.Shelf(shelf.ID)
	assert.Equal(t, []int{1, 2, 3}, positions(got))
}

func TestStore_ConcurrentMoves(t *testing.T) {
	store := SampleData()
	lib := store.Libraries()[0]
	placement := lib.Shelves[0].Books[0]

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Move(placement, lib.Shelves[i%len(lib.Shelves)].ID, i)
			_ = store.ShelfIDs(placement.Book)
		}(i)
	}
	wg.Wait()

	count := 0
	for _, l := range store.Libraries() {
		for _, s := range l.Shelves {
			for _, p := range s.Books {
				if p.ID == placement.ID {
					count++
				}
			}
		}
	}
	assert.Equal(t, 1, count, "a placement id must exist exactly once after concurrent moves")
}

func TestStore_Relocate(t *testing.T) {
	store := SampleData()
	lib := store.Libraries()[0]
	from, to := lib.Shelves[0], lib.Shelves[2]
	placement := from.Books[0]

	notified := 0
	cancel := store.Subscribe(func() { notified++ })
	defer cancel()

	previous, fromShelfID, err := store.Relocate(placement.ID, to.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, placement, previous)
	assert.Equal(t, from.ID, fromShelfID)
	assert.Equal(t, 1, notified)

	moved, shelfID, ok := store.FindPlacement(placement.ID)
	require.True(t, ok)
	assert.Equal(t, to.ID, shelfID)
	assert.Equal(t, 0, moved.Position)

	t.Run("unknown placement", func(t *testing.T) {
		_, _, err := store.Relocate(uuid.New(), to.ID, 1)
		assert.ErrorIs(t, err, ErrPlacementNotFound)
	})

	t.Run("unknown shelf", func(t *testing.T) {
		before := store.Libraries()
		_, _, err := store.Relocate(placement.ID, uuid.New(), 1)
		assert.ErrorIs(t, err, ErrShelfNotFound)
		assert.Equal(t, before, store.Libraries())
	})

	assert.Equal(t, 1, notified, "failed relocations do not notify")
}

func TestStore_RelocateConcurrent(t *testing.T) {
	store := SampleData()
	lib := store.Libraries()[0]
	placement := lib.Shelves[0].Books[0]
	initial := placement.Position

	const workers = 50
	reported := make([]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			shelf := lib.Shelves[i%len(lib.Shelves)]
			previous, _, err := store.Relocate(placement.ID, shelf.ID, 100+i)
			assert.NoError(t, err)
			reported[i] = previous.Position
		}(i)
	}
	wg.Wait()

	final, _, ok := store.FindPlacement(placement.ID)
	require.True(t, ok)

	// Each position the placement ever held is reported as "previous" by
	// exactly one relocation, except the one it ends on.
	held := []int{initial}
	for i := 0; i < workers; i++ {
		held = append(held, 100+i)
	}
	seen := append(reported, final.Position)
	assert.ElementsMatch(t, held, seen)
}
