package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/services"
)

type PlacementsController struct {
	mover PlacementMover
}

func NewPlacementsController(mover PlacementMover) *PlacementsController {
	return &PlacementsController{
		mover: mover,
	}
}

// MoveRequest is the body of a move call. Position is a pointer so that
// an explicit 0 is distinguishable from a missing field.
type MoveRequest struct {
	ShelfID  string `json:"shelf_id" binding:"required"`
	Position *int   `json:"position" binding:"required"`
}

// Move relocates a placement to another shelf or position.
// POST /api/placements/:id/move
func (controller *PlacementsController) Move(c *gin.Context) {
	placementID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	shelfID, err := uuid.Parse(req.ShelfID)
	if err != nil {
		respondBadRequest(c, "invalid shelf_id")
		return
	}

	move, err := controller.mover.Move(placementID, shelfID, *req.Position)
	switch {
	case errors.Is(err, services.ErrPlacementNotFound):
		respondNotFound(c, "placement")
		return
	case errors.Is(err, services.ErrShelfNotFound):
		respondNotFound(c, "shelf")
		return
	case err != nil:
		respondInternalError(c, err, "move placement")
		return
	}

	c.JSON(http.StatusOK, move)
}
