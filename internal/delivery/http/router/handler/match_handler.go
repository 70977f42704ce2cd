package handler

import (
	"net/http"

	"rencontre/internal/delivery/http/middleware"
	"rencontre/internal/delivery/http/response"
	"rencontre/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchHandler holds dependencies for the match list handler.
type MatchHandler struct {
	uc usecase.MatchUsecase
}

// NewMatchHandler is the constructor for MatchHandler, injected by Fx.
func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// List returns the authenticated user's matches, newest first, each with the
// partner's card, the last message and the unread count.
func (h *MatchHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	output, err := h.uc.ListMatches(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}
