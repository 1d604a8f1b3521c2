package entities

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAuthorRole is assigned when an author is created without an explicit role.
const DefaultAuthorRole = "Author"

type LengthUnit string

const (
	LengthUnitCentimeters LengthUnit = "centimeters"
	LengthUnitMillimeters LengthUnit = "millimeters"
	LengthUnitInches      LengthUnit = "inches"
)

// AllLengthUnits lists every supported unit in display order.
var AllLengthUnits = []LengthUnit{LengthUnitCentimeters, LengthUnitMillimeters, LengthUnitInches}

// millimetersPer is the size of one unit expressed in millimeters.
var millimetersPer = map[LengthUnit]float64{
	LengthUnitCentimeters: 10,
	LengthUnitMillimeters: 1,
	LengthUnitInches:      25.4,
}

// Symbol returns the short display label of the unit.
func (u LengthUnit) Symbol() string {
	switch u {
	case LengthUnitMillimeters:
		return "mm"
	case LengthUnitInches:
		return "in"
	default:
		return "cm"
	}
}

// Valid reports whether u is one of the known units.
func (u LengthUnit) Valid() bool {
	_, ok := millimetersPer[u]
	return ok
}

// Convert expresses value (given in u) in the target unit.
// Unknown units are treated as centimeters.
func (u LengthUnit) Convert(value float64, to LengthUnit) float64 {
	from, ok := millimetersPer[u]
	if !ok {
		from = millimetersPer[LengthUnitCentimeters]
	}
	target, ok := millimetersPer[to]
	if !ok {
		target = millimetersPer[LengthUnitCentimeters]
	}
	return value * from / target
}

type Author struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewAuthor creates an author with the default role.
func NewAuthor(name string) Author {
	return Author{Name: name, Role: DefaultAuthorRole}
}

type Edition struct {
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	ISBN      string `json:"isbn"` // opaque, never validated
	Language  string `json:"language"`
}

// Dimensions describes the physical size of a book. Weight is in grams.
type Dimensions struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Depth  float64    `json:"depth"`
	Weight float64    `json:"weight"`
	Unit   LengthUnit `json:"unit"`
}

// In returns the dimensions converted to another length unit. Weight is unchanged.
func (d Dimensions) In(unit LengthUnit) Dimensions {
	from := d.unit()
	return Dimensions{
		Width:  from.Convert(d.Width, unit),
		Height: from.Convert(d.Height, unit),
		Depth:  from.Convert(d.Depth, unit),
		Weight: d.Weight,
		Unit:   unit,
	}
}

// FormattedDescription renders "W × H × D unit, weight g".
func (d Dimensions) FormattedDescription() string {
	return fmt.Sprintf("%.1f × %.1f × %.1f %s, %.0f g", d.Width, d.Height, d.Depth, d.unit().Symbol(), d.Weight)
}

func (d Dimensions) unit() LengthUnit {
	if d.Unit == "" {
		return LengthUnitCentimeters
	}
	return d.Unit
}

type Book struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Authors        []Author         `json:"authors"`
	Edition        Edition          `json:"edition"`
	Dimensions     Dimensions       `json:"dimensions"`
	EstimatedPrice *decimal.Decimal `json:"estimated_price,omitempty"`
	Genres         []string         `json:"genres"`
	Notes          string           `json:"notes,omitempty"`
	CoverImageName string           `json:"cover_image_name,omitempty"`
}

// AuthorNames returns the author names in order.
func (b Book) AuthorNames() []string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	return names
}

// HasGenre reports whether the book is tagged with genre (exact match).
func (b Book) HasGenre(genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the book. Placements embed clones so later
// edits to the canonical book never leak into existing placements.
func (b Book) Clone() Book {
	c := b
	if b.Authors != nil {
		c.Authors = append([]Author(nil), b.Authors...)
	}
	if b.Genres != nil {
		c.Genres = append([]string(nil), b.Genres...)
	}
	if b.EstimatedPrice != nil {
		price := *b.EstimatedPrice
		c.EstimatedPrice = &price
	}
	return c
}

// Price is a convenience for building an optional exact price from a literal.
func Price(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
