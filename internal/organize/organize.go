// Package organize turns a cabinet's contents into arrangement advice.
package organize

import (
	"fmt"
	"math"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type Strategy string

const (
	StrategyByGenre Strategy = "by-genre"
	StrategyByColor Strategy = "by-color"
	StrategyByUsage Strategy = "by-usage"
	StrategyBySize  Strategy = "by-size"
)

// AllStrategies lists the strategies in display order.
var AllStrategies = []Strategy{StrategyByGenre, StrategyByColor, StrategyByUsage, StrategyBySize}

// ParseStrategy resolves a strategy name. An empty name selects StrategyByGenre.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyByGenre, nil
	}
	for _, s := range AllStrategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", name)
}

type Step struct {
	Title  string   `json:"title"`
	Detail string   `json:"detail"`
	Tips   []string `json:"tips,omitempty"`
}

func (s Strategy) Title() string {
	switch s {
	case StrategyByColor:
		return "By spine color"
	case StrategyByUsage:
		return "By frequency of use"
	case StrategyBySize:
		return "By size"
	default:
		return "By genre"
	}
}

func (s Strategy) Description() string {
	switch s {
	case StrategyByColor:
		return "Group books by spine color for a calm, visual arrangement on open shelving."
	case StrategyByUsage:
		return "Keep frequently used books within easy reach and move rare volumes above or below eye level."
	case StrategyBySize:
		return "Order books by height and depth to use the space well and keep shelves from sagging."
	default:
		return "Sort books into genres and themes so series and collections are quick to find."
	}
}

func (s Strategy) Steps() []Step {
	switch s {
	case StrategyByColor:
		return []Step{
			{Title: "Pick a palette", Detail: "Split books into cool, warm and neutral tones.", Tips: []string{"Add decor in matching colors"}},
			{Title: "Build a gradient", Detail: "Run from light to dark or the other way round."},
			{Title: "Keep the balance", Detail: "Break up dense color blocks with neutral covers."},
		}
	case StrategyByUsage:
		return []Step{
			{Title: "Measure frequency", Detail: "Note which books you reach for most.", Tips: []string{"Mark favourites", "Track what you have read"}},
			{Title: "Define access zones", Detail: "Eye-level shelves for daily reading, top and bottom for the archive.", Tips: []string{"Store rare books in boxes"}},
			{Title: "Make a mobile set", Detail: "Keep current reads in a basket or on a cart."},
		}
	case StrategyBySize:
		return []Step{
			{Title: "Group by height", Detail: "Go from the tallest books to the shortest.", Tips: []string{"Watch the load on each shelf"}},
			{Title: "Match depth", Detail: "Put books of similar depth together so rows line up.", Tips: []string{"Keep thick volumes near the shelf ends"}},
			{Title: "Add stacks", Detail: "Lay small collections flat as horizontal stacks."},
		}
	default:
		return []Step{
			{Title: "Create zones", Detail: "Reserve sections of the shelves for the main genres.", Tips: []string{"Use color markers", "Label each genre"}},
			{Title: "Line up series", Detail: "Keep every series together and in order.", Tips: []string{"Favourite series go at eye level"}},
			{Title: "Build collections", Detail: "Group books by purpose: travel, study, inspiration."},
		}
	}
}

// LibraryInsights summarises how full a cabinet is.
type LibraryInsights struct {
	ShelfCount    int     `json:"shelf_count"`
	TotalBooks    int     `json:"total_books"`
	TotalCapacity int     `json:"total_capacity"`
	Utilization   float64 `json:"utilization"`
}

// Percent renders utilization as a whole percentage, e.g. "5%".
func (i LibraryInsights) Percent() string {
	return fmt.Sprintf("%.0f%%", math.Round(i.Utilization*100))
}

// Insights computes totals for library. Utilization is 0 when the cabinet
// has no capacity and exceeds 1 when shelves are overfilled.
func Insights(library entities.Library) LibraryInsights {
	insights := LibraryInsights{
		ShelfCount:    len(library.Shelves),
		TotalBooks:    library.TotalBooks(),
		TotalCapacity: library.TotalCapacity(),
	}
	if insights.TotalCapacity > 0 {
		insights.Utilization = float64(insights.TotalBooks) / float64(insights.TotalCapacity)
	}
	return insights
}

// Advice builds the strategy's recommendation for library's current state.
func Advice(s Strategy, library entities.Library) string {
	in := Insights(library)

	switch s {
	case StrategyByColor:
		return fmt.Sprintf("Group %d books by palette and decorate the shelves that are still empty (%s full).", in.TotalBooks, in.Percent())
	case StrategyByUsage:
		central := max(1, in.ShelfCount/2)
		return fmt.Sprintf("Place the most used books on %d central shelves; the cabinet is %s full.", central, in.Percent())
	case StrategyBySize:
		return fmt.Sprintf("Spread the collection by height, starting with the roomiest shelf, and keep the current load in mind (%s).", in.Percent())
	default:
		return fmt.Sprintf("Create %d themed sections and leave room for new genres (%s full).", in.ShelfCount, in.Percent())
	}
}

// ShelfProgress reports a shelf's fill level for progress bars.
type ShelfProgress struct {
	ShelfID  string  `json:"shelf_id"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Capacity int     `json:"capacity"`
	Fraction float64 `json:"fraction"`
}

func Progress(shelf entities.Shelf) ShelfProgress {
	return ShelfProgress{
		ShelfID:  shelf.ID.String(),
		Name:     shelf.Name,
		Count:    len(shelf.Books),
		Capacity: shelf.Capacity,
		Fraction: shelf.Utilization(),
	}
}
