package handler

import (
	"net/http"

	"rencontre/internal/delivery/http/middleware"
	"rencontre/internal/delivery/http/response"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for the like handler.
type LikeHandler struct {
	uc usecase.LikeUsecase
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{uc: uc}
}

type likeRequest struct {
	IsSuperLike bool `json:"isSuperLike"`
}

// Like records a like towards the target user and reports whether it
// completed a match. Re-liking the same target is acknowledged, not repeated.
func (h *LikeHandler) Like(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "User not found")
	}

	// The body is optional; only a super-like flag may be carried.
	var req likeRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BadRequest(c, "Invalid payload")
		}
	}

	output, err := h.uc.Like(c.Request().Context(), userID, &usecase.LikeInput{
		TargetID:    targetID,
		IsSuperLike: req.IsSuperLike,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.AlreadyLiked {
		return response.Message(c, http.StatusOK, "Already liked")
	}

	message := "Like sent"
	if output.Matched {
		message = "It's a match!"
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": message,
		"match":   output.Matched,
		"target":  output.Target,
	})
}
