package impl

import (
	"context"
	"testing"

	"rencontre/internal/domain/entity"
	"rencontre/internal/domain/repository"
	mockRepo "rencontre/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscoverService(t *testing.T) (*discoverService, *mockRepo.MockProfileRepository, *mockRepo.MockLikeRepository, *mockRepo.MockMatchRepository) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockLikeRepo := mockRepo.NewMockLikeRepository(t)
	mockMatchRepo := mockRepo.NewMockMatchRepository(t)

	svc := NewDiscoverService(DiscoverServiceParams{
		ProfileRepo: mockProfileRepo,
		LikeRepo:    mockLikeRepo,
		MatchRepo:   mockMatchRepo,
		Logger:      newDiscardLogger(),
	})

	return svc.(*discoverService), mockProfileRepo, mockLikeRepo, mockMatchRepo
}

func TestDiscoverService_Discover_ViewerWithoutProfile(t *testing.T) {
	svc, mockProfileRepo, _, _ := newDiscoverService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, viewerID).
		Return(nil, repository.ErrProfileNotFound)

	output, err := svc.Discover(ctx, viewerID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.Limit)
	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.Results)
}

func TestDiscoverService_Discover_RanksByScoreDescending(t *testing.T) {
	svc, mockProfileRepo, mockLikeRepo, mockMatchRepo := newDiscoverService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	viewerProfile := &entity.Profile{
		ID:        uuid.New(),
		UserID:    viewerID,
		Bio:       strPtr("hi"),
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
	}

	// Weak candidate nearby, strong candidate ~50 km away.
	weak := newCandidate("weak", "hey", 1, nil, 0, 0)
	strong := newCandidate("strong", "hey", 6, nil, 0, 0.449)

	mockProfileRepo.EXPECT().FindByUserID(ctx, viewerID).Return(viewerProfile, nil)
	mockLikeRepo.EXPECT().FindLikedUserIDs(ctx, viewerID).Return(nil, nil)
	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return(nil, nil)
	mockProfileRepo.EXPECT().
		FindCandidates(ctx, mock.Anything, 60).
		Return([]*entity.User{weak, strong}, nil)

	output, err := svc.Discover(ctx, viewerID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, 2, output.Count)

	// strong: 10 (bio) + 30 (6 photos) + 0 (no intentions) - 10 (~50 km) = 30
	// weak:   10 (bio) + 5 (1 photo) + 0 - 0 = 15
	assert.Equal(t, "strong", output.Results[0].DisplayName)
	assert.InDelta(t, 30, output.Results[0].Score, 0.1)
	assert.Equal(t, "weak", output.Results[1].DisplayName)
	assert.InDelta(t, 15, output.Results[1].Score, 0.001)

	require.NotNil(t, output.Results[0].DistanceKm)
	assert.InDelta(t, 50, *output.Results[0].DistanceKm, 0.5)
}

func TestDiscoverService_Discover_ExclusionSetContainsViewerLikesAndMatches(t *testing.T) {
	svc, mockProfileRepo, mockLikeRepo, mockMatchRepo := newDiscoverService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	likedID := uuid.New()
	matchedID := uuid.New()

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, viewerID).
		Return(&entity.Profile{ID: uuid.New(), UserID: viewerID}, nil)
	mockLikeRepo.EXPECT().FindLikedUserIDs(ctx, viewerID).Return([]uuid.UUID{likedID}, nil)
	mockMatchRepo.EXPECT().
		FindByUser(ctx, viewerID).
		Return([]*entity.Match{entity.NewMatch(viewerID, matchedID)}, nil)

	var excludedSeen []uuid.UUID
	mockProfileRepo.EXPECT().
		FindCandidates(ctx, mock.Anything, 60).
		RunAndReturn(func(_ context.Context, excludedIDs []uuid.UUID, _ int) ([]*entity.User, error) {
			excludedSeen = excludedIDs
			return nil, nil
		})

	_, err := svc.Discover(ctx, viewerID, 1, 20)
	require.NoError(t, err)

	assert.Len(t, excludedSeen, 3)
	assert.Contains(t, excludedSeen, viewerID)
	assert.Contains(t, excludedSeen, likedID)
	assert.Contains(t, excludedSeen, matchedID)
}

func TestDiscoverService_Discover_PaginationIsDisjointAndOrdered(t *testing.T) {
	svc, mockProfileRepo, mockLikeRepo, mockMatchRepo := newDiscoverService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	viewerProfile := &entity.Profile{ID: uuid.New(), UserID: viewerID}

	// Four candidates with strictly decreasing photo counts, so strictly
	// decreasing scores.
	candidates := []*entity.User{
		newCandidate("p1", "a", 1, nil, 0, 0),
		newCandidate("p4", "a", 4, nil, 0, 0),
		newCandidate("p2", "a", 2, nil, 0, 0),
		newCandidate("p3", "a", 3, nil, 0, 0),
	}

	mockProfileRepo.EXPECT().FindByUserID(ctx, viewerID).Return(viewerProfile, nil)
	mockLikeRepo.EXPECT().FindLikedUserIDs(ctx, viewerID).Return(nil, nil)
	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return(nil, nil)
	mockProfileRepo.EXPECT().
		FindCandidates(ctx, mock.Anything, 3).
		Return(candidates, nil)

	wantOrder := []string{"p4", "p3", "p2", "p1"}
	for page := 1; page <= 4; page++ {
		output, err := svc.Discover(ctx, viewerID, page, 1)
		require.NoError(t, err)
		require.Equal(t, 1, output.Count, "page %d", page)
		assert.Equal(t, wantOrder[page-1], output.Results[0].DisplayName)
	}

	// Past the end: empty page, no error.
	output, err := svc.Discover(ctx, viewerID, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
}

func TestDiscoverService_Discover_ClampsPagination(t *testing.T) {
	svc, mockProfileRepo, mockLikeRepo, mockMatchRepo := newDiscoverService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, viewerID).
		Return(&entity.Profile{ID: uuid.New(), UserID: viewerID}, nil)
	mockLikeRepo.EXPECT().FindLikedUserIDs(ctx, viewerID).Return(nil, nil)
	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return(nil, nil)
	// limit 999 clamps to 50, over-fetch is 150.
	mockProfileRepo.EXPECT().
		FindCandidates(ctx, mock.Anything, 150).
		Return(nil, nil)

	output, err := svc.Discover(ctx, viewerID, -3, 999)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 50, output.Limit)
}

func TestDiscoverService_Discover_FallsBackToEmailWithoutDisplayName(t *testing.T) {
	svc, mockProfileRepo, mockLikeRepo, mockMatchRepo := newDiscoverService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	legacy := newCandidate("legacy", "hey", 1, nil, 0, 0)
	legacy.DisplayName = ""
	legacy.Email = "legacy@example.com"

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, viewerID).
		Return(&entity.Profile{ID: uuid.New(), UserID: viewerID}, nil)
	mockLikeRepo.EXPECT().FindLikedUserIDs(ctx, viewerID).Return(nil, nil)
	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return(nil, nil)
	mockProfileRepo.EXPECT().
		FindCandidates(ctx, mock.Anything, 60).
		Return([]*entity.User{legacy}, nil)

	output, err := svc.Discover(ctx, viewerID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, output.Count)
	assert.Equal(t, "legacy@example.com", output.Results[0].DisplayName)
}

func TestDiscoverService_ScoreProfile(t *testing.T) {
	tests := []struct {
		name       string
		profile    *entity.Profile
		distanceKm *float64
		want       float64
	}{
		{
			name:    "empty profile",
			profile: &entity.Profile{},
			want:    0,
		},
		{
			name: "bio only",
			profile: &entity.Profile{
				Bio: strPtr("hello"),
			},
			want: 10,
		},
		{
			name: "photos capped at six",
			profile: &entity.Profile{
				Photos: make([]entity.Photo, 8),
			},
			want: 30,
		},
		{
			name: "intentions bonus",
			profile: &entity.Profile{
				Intentions: []string{"friendship"},
			},
			want: 5,
		},
		{
			name:       "distance penalty one point per five km",
			profile:    &entity.Profile{Bio: strPtr("hi")},
			distanceKm: floatPtr(25),
			want:       5,
		},
		{
			name:       "distance penalty capped at twenty",
			profile:    &entity.Profile{Bio: strPtr("hi")},
			distanceKm: floatPtr(500),
			want:       -10,
		},
		{
			name: "full profile at fifty km",
			profile: &entity.Profile{
				Bio:        strPtr("hey"),
				Photos:     make([]entity.Photo, 6),
				Intentions: []string{"serious"},
			},
			distanceKm: floatPtr(50),
			want:       35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scoreProfile(tt.profile, tt.distanceKm), 0.001)
		})
	}
}

func TestDiscoverService_ScoreProfile_Monotonic(t *testing.T) {
	// Adding a photo never decreases the score.
	prev := scoreProfile(&entity.Profile{}, nil)
	for photos := 1; photos <= 8; photos++ {
		score := scoreProfile(&entity.Profile{Photos: make([]entity.Photo, photos)}, nil)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}

	// Increasing distance never increases the score.
	prev = scoreProfile(&entity.Profile{}, floatPtr(0))
	for km := 10.0; km <= 200; km += 10 {
		score := scoreProfile(&entity.Profile{}, floatPtr(km))
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}
