package history

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogMove saves a journal entry.
func (r *Repository) LogMove(move *entities.PlacementMove) error {
	if move.CreatedAt.IsZero() {
		move.CreatedAt = time.Now()
	}
	return r.db.Create(move).Error
}

// GetMoves retrieves paginated moves, most recent first.
func (r *Repository) GetMoves(limit, offset int) ([]entities.PlacementMove, int64, error) {
	var moves []entities.PlacementMove
	var total int64

	query := r.db.Model(&entities.PlacementMove{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&moves).Error
	return moves, total, err
}

// GetMovesForBook retrieves every move of any copy of a book, most recent first.
func (r *Repository) GetMovesForBook(bookID string) ([]entities.PlacementMove, error) {
	var moves []entities.PlacementMove
	err := r.db.Where("book_id = ?", bookID).Order("created_at DESC, id DESC").Find(&moves).Error
	return moves, err
}

// DeleteOldMoves removes entries older than the given time.
// Returns the number of deleted entries.
func (r *Repository) DeleteOldMoves(olderThan time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", olderThan).Delete(&entities.PlacementMove{})
	return result.RowsAffected, result.Error
}
