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

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type updateLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type photoView struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	Position  int       `json:"position"`
	IsPrimary bool      `json:"isPrimary"`
}

// Me returns the authenticated user's profile with its photo gallery.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.uc.GetMyProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	photos := make([]photoView, 0, len(profile.Photos))
	for _, photo := range profile.Photos {
		photos = append(photos, photoView{
			ID:        photo.ID,
			Path:      photo.Path,
			Position:  photo.Position,
			IsPrimary: photo.IsPrimary,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":         profile.ID,
		"bio":        profile.Bio,
		"interests":  profile.Interests,
		"intentions": profile.Intentions,
		"prompts":    profile.Prompts,
		"city":       profile.City,
		"latitude":   profile.Latitude,
		"longitude":  profile.Longitude,
		"photos":     photos,
	})
}

// Update applies a partial profile update; absent fields are left untouched.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid profile input")
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Profile updated")
}

// UpdateLocation sets the profile's coordinate pair.
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid location input")
	}

	if req.Latitude == nil || req.Longitude == nil {
		return response.BadRequest(c, "Missing latitude or longitude")
	}

	if err := h.uc.UpdateLocation(c.Request().Context(), userID, *req.Latitude, *req.Longitude); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Location updated")
}
