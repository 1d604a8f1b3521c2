package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/organize"
)

type LibrariesController struct {
	store LibraryReader
}

func NewLibrariesController(store LibraryReader) *LibrariesController {
	return &LibrariesController{
		store: store,
	}
}

// LibrarySummary describes a cabinet without its placements.
type LibrarySummary struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Shelves     []ShelfSummary `json:"shelves"`
	organize.LibraryInsights
}

// InsightsResponse is the organization advice for one cabinet.
type InsightsResponse struct {
	LibraryID          uuid.UUID                `json:"library_id"`
	Strategy           organize.Strategy        `json:"strategy"`
	Title              string                   `json:"title"`
	Description        string                   `json:"description"`
	Advice             string                   `json:"advice"`
	Steps              []organize.Step          `json:"steps"`
	Insights           organize.LibraryInsights `json:"insights"`
	UtilizationPercent string                   `json:"utilization_percent"`
	Shelves            []organize.ShelfProgress `json:"shelves"`
}

func newLibrarySummary(library entities.Library) LibrarySummary {
	shelves := make([]ShelfSummary, 0, len(library.Shelves))
	for _, shelf := range library.Shelves {
		shelves = append(shelves, newShelfSummary(shelf))
	}
	return LibrarySummary{
		ID:              library.ID,
		Name:            library.Name,
		Description:     library.Description,
		Shelves:         shelves,
		LibraryInsights: organize.Insights(library),
	}
}

// GetLibraries lists every cabinet with shelf counts.
// GET /api/libraries
func (controller *LibrariesController) GetLibraries(c *gin.Context) {
	libraries := controller.store.Libraries()
	summaries := make([]LibrarySummary, 0, len(libraries))
	for _, library := range libraries {
		summaries = append(summaries, newLibrarySummary(library))
	}
	c.IndentedJSON(http.StatusOK, gin.H{"libraries": summaries, "count": len(summaries)})
}

// GetLibrary returns a cabinet with all of its placements.
// GET /api/libraries/:id
func (controller *LibrariesController) GetLibrary(c *gin.Context) {
	library, ok := controller.lookupLibrary(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, library)
}

// GetInsights returns arrangement advice for a cabinet.
// GET /api/libraries/:id/insights?strategy=
func (controller *LibrariesController) GetInsights(c *gin.Context) {
	strategy, err := organize.ParseStrategy(c.Query("strategy"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   err.Error(),
			Code:    "unknown_strategy",
			Details: organize.AllStrategies,
		})
		return
	}

	library, ok := controller.lookupLibrary(c)
	if !ok {
		return
	}

	insights := organize.Insights(library)
	shelves := make([]organize.ShelfProgress, 0, len(library.Shelves))
	for _, shelf := range library.Shelves {
		shelves = append(shelves, organize.Progress(shelf))
	}

	c.IndentedJSON(http.StatusOK, InsightsResponse{
		LibraryID:          library.ID,
		Strategy:           strategy,
		Title:              strategy.Title(),
		Description:        strategy.Description(),
		Advice:             organize.Advice(strategy, library),
		Steps:              strategy.Steps(),
		Insights:           insights,
		UtilizationPercent: insights.Percent(),
		Shelves:            shelves,
	})
}

// GetShelf returns a shelf with its placements in position order.
// GET /api/shelves/:id
func (controller *LibrariesController) GetShelf(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	shelf, found := controller.store.Shelf(id)
	if !found {
		respondNotFound(c, "shelf")
		return
	}
	c.IndentedJSON(http.StatusOK, shelf)
}

func (controller *LibrariesController) lookupLibrary(c *gin.Context) (entities.Library, bool) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return entities.Library{}, false
	}
	library, found := controller.store.Library(id)
	if !found {
		respondNotFound(c, "library")
		return entities.Library{}, false
	}
	return library, true
}
