package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"rencontre/internal/delivery/http/middleware"
	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	mockUsecase "rencontre/internal/mocks/usecase"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLikeHandler_Like_Unauthorized(t *testing.T) {
	handler := NewLikeHandler(mockUsecase.NewMockLikeUsecase(t))

	c, rec := newTestContext(http.MethodPost, "/api/like/"+uuid.NewString(), nil)

	err := handler.Like(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, rec.Body.String())
}

func TestLikeHandler_Like_BadTargetIDIsNotFound(t *testing.T) {
	handler := NewLikeHandler(mockUsecase.NewMockLikeUsecase(t))

	c, rec := newTestContext(http.MethodPost, "/api/like/not-a-uuid", nil)
	authenticate(c, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Like(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestLikeHandler_Like_MatchResponse(t *testing.T) {
	uc := mockUsecase.NewMockLikeUsecase(t)
	handler := NewLikeHandler(uc)

	actingID := uuid.New()
	targetID := uuid.New()

	uc.EXPECT().
		Like(mock.Anything, actingID, mock.AnythingOfType("*usecase.LikeInput")).
		Return(&usecase.LikeOutput{
			Matched: true,
			Target:  &entity.PublicIdentity{ID: targetID, DisplayName: "Bob"},
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/like/"+targetID.String(), nil)
	authenticate(c, actingID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	err := handler.Like(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "It's a match!",
		"match": true,
		"target": {"id": "`+targetID.String()+`", "displayName": "Bob"}
	}`, rec.Body.String())
}

func TestLikeHandler_Like_LikeSentResponse(t *testing.T) {
	uc := mockUsecase.NewMockLikeUsecase(t)
	handler := NewLikeHandler(uc)

	actingID := uuid.New()
	targetID := uuid.New()

	uc.EXPECT().
		Like(mock.Anything, actingID, mock.AnythingOfType("*usecase.LikeInput")).
		Return(&usecase.LikeOutput{
			Target: &entity.PublicIdentity{ID: targetID, DisplayName: "Bob"},
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/like/"+targetID.String(), nil)
	authenticate(c, actingID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	err := handler.Like(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "Like sent",
		"match": false,
		"target": {"id": "`+targetID.String()+`", "displayName": "Bob"}
	}`, rec.Body.String())
}

func TestLikeHandler_Like_AlreadyLikedResponse(t *testing.T) {
	uc := mockUsecase.NewMockLikeUsecase(t)
	handler := NewLikeHandler(uc)

	actingID := uuid.New()
	targetID := uuid.New()

	uc.EXPECT().
		Like(mock.Anything, actingID, mock.AnythingOfType("*usecase.LikeInput")).
		Return(&usecase.LikeOutput{
			AlreadyLiked: true,
			Target:       &entity.PublicIdentity{ID: targetID, DisplayName: "Bob"},
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/like/"+targetID.String(), nil)
	authenticate(c, actingID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	err := handler.Like(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Already liked"}`, rec.Body.String())
}

func TestLikeHandler_Like_ForwardsSuperLikeFlag(t *testing.T) {
	uc := mockUsecase.NewMockLikeUsecase(t)
	handler := NewLikeHandler(uc)

	actingID := uuid.New()
	targetID := uuid.New()

	var seen *usecase.LikeInput
	uc.EXPECT().
		Like(mock.Anything, actingID, mock.AnythingOfType("*usecase.LikeInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.LikeInput) (*usecase.LikeOutput, error) {
			seen = input
			return &usecase.LikeOutput{
				Target: &entity.PublicIdentity{ID: targetID, DisplayName: "Bob"},
			}, nil
		})

	body := strings.NewReader(`{"isSuperLike": true}`)
	c, _ := newTestContext(http.MethodPost, "/api/like/"+targetID.String(), body)
	authenticate(c, actingID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	require.NoError(t, handler.Like(c))

	require.NotNil(t, seen)
	assert.Equal(t, targetID, seen.TargetID)
	assert.True(t, seen.IsSuperLike)
}

func TestLikeHandler_Like_SelfLikeThroughErrorHandler(t *testing.T) {
	uc := mockUsecase.NewMockLikeUsecase(t)
	handler := NewLikeHandler(uc)

	actingID := uuid.New()

	uc.EXPECT().
		Like(mock.Anything, actingID, mock.AnythingOfType("*usecase.LikeInput")).
		Return(nil, domainerrors.ErrSelfLike)

	c, rec := newTestContext(http.MethodPost, "/api/like/"+actingID.String(), nil)
	authenticate(c, actingID)
	c.SetParamNames("id")
	c.SetParamValues(actingID.String())

	err := handler.Like(c)
	require.Error(t, err)

	errMw := middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	errMw.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "You cannot like yourself"}`, rec.Body.String())
}
