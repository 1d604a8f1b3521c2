package entities

import "github.com/google/uuid"

type Orientation string

const (
	OrientationSpineOut   Orientation = "spineOut"
	OrientationFrontCover Orientation = "frontCover"
	OrientationStacked    Orientation = "stacked"
)

// AllOrientations lists every orientation in display order.
var AllOrientations = []Orientation{OrientationSpineOut, OrientationFrontCover, OrientationStacked}

// Label returns the human-readable name of the orientation.
func (o Orientation) Label() string {
	switch o {
	case OrientationFrontCover:
		return "cover out"
	case OrientationStacked:
		return "stacked"
	default:
		return "spine out"
	}
}

// Library is a cabinet holding an ordered list of shelves.
type Library struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Shelves     []Shelf   `json:"shelves"`
}

// TotalCapacity sums the informational capacity of every shelf.
func (l Library) TotalCapacity() int {
	total := 0
	for _, s := range l.Shelves {
		total += s.Capacity
	}
	return total
}

// TotalBooks counts placements across every shelf.
func (l Library) TotalBooks() int {
	total := 0
	for _, s := range l.Shelves {
		total += len(s.Books)
	}
	return total
}

// Clone returns a deep copy of the library and all of its shelves.
func (l Library) Clone() Library {
	c := l
	if l.Shelves != nil {
		c.Shelves = make([]Shelf, len(l.Shelves))
		for i, s := range l.Shelves {
			c.Shelves[i] = s.Clone()
		}
	}
	return c
}

// Shelf holds placements sorted ascending by position. Capacity is a soft
// limit used for display only; it is never enforced.
type Shelf struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Capacity int             `json:"capacity"`
	Books    []BookPlacement `json:"books"`
}

// Utilization returns placements/capacity, or 0 for a shelf without capacity.
// Overfilled shelves report values above 1.
func (s Shelf) Utilization() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(len(s.Books)) / float64(s.Capacity)
}

func (s Shelf) Clone() Shelf {
	c := s
	if s.Books != nil {
		c.Books = make([]BookPlacement, len(s.Books))
		for i, p := range s.Books {
			c.Books[i] = p.Clone()
		}
	}
	return c
}

// BookPlacement is one physical copy of a book standing on a shelf.
// Book is embedded by value: a snapshot taken when the placement was made.
type BookPlacement struct {
	ID          uuid.UUID   `json:"id"`
	Book        Book        `json:"book"`
	Position    int         `json:"position"`
	Orientation Orientation `json:"orientation"`
}

// NewPlacement snapshots book into a fresh spine-out placement.
func NewPlacement(book Book, position int) BookPlacement {
	return BookPlacement{
		ID:          uuid.New(),
		Book:        book.Clone(),
		Position:    position,
		Orientation: OrientationSpineOut,
	}
}

// WithOrientation returns a copy of the placement with a different orientation.
func (p BookPlacement) WithOrientation(o Orientation) BookPlacement {
	p.Orientation = o
	return p
}

func (p BookPlacement) Clone() BookPlacement {
	c := p
	c.Book = p.Book.Clone()
	return c
}
