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

// ChatHandler holds dependencies for conversation handlers.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// History returns every message of the match, oldest first.
func (h *ChatHandler) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "Match not found")
	}

	messages, err := h.uc.History(c.Request().Context(), userID, matchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, messages)
}

// Send appends a message to the match conversation.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "Match not found")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid payload")
	}

	message, err := h.uc.Send(c.Request().Context(), userID, matchID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"id":        message.ID,
		"content":   message.Content,
		"createdAt": message.CreatedAt,
		"isMine":    true,
	})
}

// MarkSeen flags every message addressed to the user in the match as seen.
func (h *ChatHandler) MarkSeen(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "Match not found")
	}

	if err := h.uc.MarkSeen(c.Request().Context(), userID, matchID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Messages marked as seen")
}
