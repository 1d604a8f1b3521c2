package entities

import "time"

// PlacementMove is a journal entry written every time a placement is relocated.
type PlacementMove struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PlacementID string    `gorm:"index;size:36" json:"placement_id"`
	BookID      string    `gorm:"index;size:36" json:"book_id"`
	BookTitle   string    `gorm:"size:512" json:"book_title"`
	FromShelfID string    `gorm:"size:36" json:"from_shelf_id,omitempty"` // empty if the placement was not shelved
	ToShelfID   string    `gorm:"index;size:36" json:"to_shelf_id"`
	OldPosition int       `json:"old_position"`
	NewPosition int       `json:"new_position"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (PlacementMove) TableName() string {
	return "placement_moves"
}
