package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entities.PlacementMove{})
	require.NoError(t, err)

	return db
}

func TestRepository_LogMove(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	move := &entities.PlacementMove{
		PlacementID: "p-1",
		BookID:      "b-1",
		BookTitle:   "Clean Code",
		ToShelfID:   "s-2",
		OldPosition: 1,
		NewPosition: 3,
	}

	err := repo.LogMove(move)
	require.NoError(t, err)
	assert.NotZero(t, move.ID)
	assert.False(t, move.CreatedAt.IsZero())
}

func TestRepository_GetMoves(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	for i := 0; i < 15; i++ {
		err := repo.LogMove(&entities.PlacementMove{
			PlacementID: fmt.Sprintf("p-%d", i),
			BookID:      "b-1",
			ToShelfID:   "s-1",
			NewPosition: i,
			CreatedAt:   time.Now().Add(time.Duration(-i) * time.Hour),
		})
		require.NoError(t, err)
	}

	t.Run("first page is most recent", func(t *testing.T) {
		moves, total, err := repo.GetMoves(10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		require.Len(t, moves, 10)
		assert.Equal(t, "p-0", moves[0].PlacementID)
	})

	t.Run("second page", func(t *testing.T) {
		moves, _, err := repo.GetMoves(10, 10)
		require.NoError(t, err)
		assert.Len(t, moves, 5)
	})

	t.Run("defaults for invalid paging", func(t *testing.T) {
		moves, _, err := repo.GetMoves(0, -5)
		require.NoError(t, err)
		assert.Len(t, moves, 15)
	})
}

func TestRepository_GetMovesForBook(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.LogMove(&entities.PlacementMove{BookID: "b-1", PlacementID: "p-1"}))
	require.NoError(t, repo.LogMove(&entities.PlacementMove{BookID: "b-2", PlacementID: "p-2"}))
	require.NoError(t, repo.LogMove(&entities.PlacementMove{BookID: "b-1", PlacementID: "p-3"}))

	moves, err := repo.GetMovesForBook("b-1")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	for _, m := range moves {
		assert.Equal(t, "b-1", m.BookID)
	}

	none, err := repo.GetMovesForBook("missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_DeleteOldMoves(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.LogMove(&entities.PlacementMove{PlacementID: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}))
	require.NoError(t, repo.LogMove(&entities.PlacementMove{PlacementID: "new"}))

	deleted, err := repo.DeleteOldMoves(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	moves, total, err := repo.GetMoves(10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "new", moves[0].PlacementID)
}

func TestRepository_ConcurrentLogMoveOnDefaultDatabase(t *testing.T) {
	db, err := database.NewDatabase("")
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db.DB)

	const writers = 200
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.LogMove(&entities.PlacementMove{
				PlacementID: fmt.Sprintf("p-%d", i),
				BookID:      "concurrent",
				ToShelfID:   "s-1",
				NewPosition: i,
			})
			if err != nil {
				mu.Lock()
				failed = append(failed, err)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Empty(t, failed)

	moves, err := repo.GetMovesForBook("concurrent")
	require.NoError(t, err)
	assert.Len(t, moves, writers)
}
