// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"rencontre/internal/delivery/http/middleware"
	"rencontre/internal/delivery/http/response"
	"rencontre/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// birthDateLayout is the wire format for birth dates.
const birthDateLayout = "2006-01-02"

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	DisplayName *string `json:"displayName"`
	BirthDate   *string `json:"birthDate"`
	Gender      *string `json:"gender"`
	City        *string `json:"city"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	// Each field is required; report the first missing one.
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"email", req.Email},
		{"password", req.Password},
		{"displayName", req.DisplayName},
		{"birthDate", req.BirthDate},
		{"gender", req.Gender},
		{"city", req.City},
	} {
		if field.value == nil {
			return response.BadRequest(c, "Missing field: "+field.name)
		}
	}

	birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "Invalid data: birthDate must be YYYY-MM-DD")
	}

	input := &usecase.RegisterInput{
		Email:       *req.Email,
		Password:    *req.Password,
		DisplayName: *req.DisplayName,
		BirthDate:   birthDate,
		Gender:      *req.Gender,
		City:        *req.City,
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Account created")
}

// Login handles the login request and returns a JWT.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Missing email or password")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token":        output.AccessToken,
		"refreshToken": output.RefreshToken,
	})
}

// Me returns the authenticated user's account information.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":          user.ID,
		"email":       user.Email,
		"displayName": user.DisplayName,
		"city":        user.City,
		"gender":      user.Gender,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
