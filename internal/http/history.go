package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	history HistoryReader
}

func NewHistoryController(history HistoryReader) *HistoryController {
	return &HistoryController{
		history: history,
	}
}

// GetMoves returns the move journal, most recent first.
// GET /api/history?limit=&offset=
func (controller *HistoryController) GetMoves(c *gin.Context) {
	limit, offset := parsePagination(c)

	moves, total, err := controller.history.GetMoves(limit, offset)
	if err != nil {
		respondInternalError(c, err, "get move history")
		return
	}

	c.JSON(http.StatusOK, newPaginatedResponse(moves, total, limit, offset))
}
