package handler

import (
	"net/http"
	"strconv"

	"rencontre/internal/delivery/http/middleware"
	"rencontre/internal/delivery/http/response"
	"rencontre/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscoverHandler holds dependencies for the discovery feed handler.
type DiscoverHandler struct {
	uc usecase.DiscoverUsecase
}

// NewDiscoverHandler is the constructor for DiscoverHandler, injected by Fx.
func NewDiscoverHandler(uc usecase.DiscoverUsecase) *DiscoverHandler {
	return &DiscoverHandler{uc: uc}
}

// Discover returns one page of ranked candidates for the authenticated user.
// Pagination parameters are clamped, never rejected.
func (h *DiscoverHandler) Discover(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", usecase.DefaultDiscoverLimit)

	output, err := h.uc.Discover(c.Request().Context(), userID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// queryInt parses an integer query parameter, falling back on absence or junk.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
