package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"rencontre/internal/domain/entity"
	"rencontre/internal/domain/repository"
	mockRepo "rencontre/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// newDiscardLogger returns a logger that drops everything, for tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx wires a transaction manager mock that simply runs the
// callback against the given factory.
func passthroughTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// strPtr is a shorthand for string literals in entity fixtures.
func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

// newCandidate builds a user with a discoverable profile at the given
// coordinates.
func newCandidate(displayName string, bio string, photos int, intentions []string, lat, lng float64) *entity.User {
	userID := uuid.New()
	profile := &entity.Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Bio:        strPtr(bio),
		Intentions: intentions,
		City:       "Paris",
		Latitude:   floatPtr(lat),
		Longitude:  floatPtr(lng),
	}
	for i := 0; i < photos; i++ {
		profile.Photos = append(profile.Photos, entity.Photo{
			ID:        uuid.New(),
			ProfileID: profile.ID,
			Path:      "/uploads/photo.jpg",
			Position:  i + 1,
			IsPrimary: i == 0,
		})
	}

	birthDate := time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:          userID,
		Email:       displayName + "@example.com",
		DisplayName: displayName,
		BirthDate:   &birthDate,
		City:        "Paris",
		Profile:     profile,
	}
}
