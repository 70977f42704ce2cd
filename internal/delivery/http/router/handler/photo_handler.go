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

// PhotoHandler holds dependencies for photo gallery handlers.
type PhotoHandler struct {
	uc usecase.PhotoUsecase
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase) *PhotoHandler {
	return &PhotoHandler{uc: uc}
}

type reorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// Upload stores a multipart photo upload and appends it to the gallery.
func (h *PhotoHandler) Upload(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing upload file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Missing upload file")
	}
	defer file.Close()

	photo, err := h.uc.AddPhoto(c.Request().Context(), userID, &usecase.AddPhotoInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Photo uploaded",
		"photoId": photo.ID,
		"path":    photo.Path,
	})
}

// Delete removes a photo owned by the authenticated user.
func (h *PhotoHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "Photo not found")
	}

	if err := h.uc.DeletePhoto(c.Request().Context(), userID, photoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Photo deleted")
}

// SetPrimary marks a photo as the profile's primary one.
func (h *PhotoHandler) SetPrimary(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "Photo not found")
	}

	if err := h.uc.SetPrimary(c.Request().Context(), userID, photoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Primary photo updated")
}

// Reorder rewrites the gallery order to follow the given id list.
func (h *PhotoHandler) Reorder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid payload")
	}
	if req.IDs == nil {
		return response.BadRequest(c, "Invalid payload")
	}

	if err := h.uc.Reorder(c.Request().Context(), userID, req.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Photos reordered")
}
