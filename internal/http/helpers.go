package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"has_more"`
	TotalPages int   `json:"total_pages,omitempty"`
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondValidationError sends a 400 response carrying binding details.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request body",
		Code:    "validation_failed",
		Details: err.Error(),
	})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// --- Parameter Parsing ---

// parseUUIDParam extracts and validates a UUID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns uuid.Nil, false.
func parseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQueryArray parses every value of a repeatable query parameter.
func parseUUIDQueryArray(c *gin.Context, paramName string) ([]uuid.UUID, bool) {
	raw := c.QueryArray(paramName)
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			respondBadRequest(c, "invalid "+paramName+": "+value)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// parsePagination reads limit and offset, clamping out-of-range values.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func newPaginatedResponse(data any, total int64, limit, offset int) PaginatedResponse {
	totalPages := (int(total) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginatedResponse{
		Data:       data,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+limit) < total,
		TotalPages: totalPages,
	}
}
