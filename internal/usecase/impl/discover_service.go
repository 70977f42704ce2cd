// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "rencontre/internal/delivery/context"
	"rencontre/internal/domain/entity"
	"rencontre/internal/domain/geo"
	"rencontre/internal/domain/repository"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// overfetchFactor controls how many candidates are pulled from storage per
// requested page. Ranking happens in memory after retrieval, so the query
// fetches more rows than one page needs.
const overfetchFactor = 3

// discoverService implements the DiscoverUsecase interface.
type discoverService struct {
	profileRepo repository.ProfileRepository
	likeRepo    repository.LikeRepository
	matchRepo   repository.MatchRepository
	logger      *slog.Logger
}

// DiscoverServiceParams holds dependencies for DiscoverService, injected by Fx.
type DiscoverServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	LikeRepo    repository.LikeRepository
	MatchRepo   repository.MatchRepository
	Logger      *slog.Logger
}

// NewDiscoverService creates a new discover service instance
func NewDiscoverService(params DiscoverServiceParams) usecase.DiscoverUsecase {
	return &discoverService{
		profileRepo: params.ProfileRepo,
		likeRepo:    params.LikeRepo,
		matchRepo:   params.MatchRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *discoverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// scoredCandidate pairs a candidate with their computed rank inputs.
type scoredCandidate struct {
	user       *entity.User
	distanceKm *float64
	score      float64
}

// Discover returns one page of candidates ordered by score descending.
func (s *discoverService) Discover(ctx context.Context, viewerID uuid.UUID, page, limit int) (*usecase.DiscoverOutput, error) {
	page, limit = clampPagination(page, limit)

	viewerProfile, err := s.profileRepo.FindByUserID(ctx, viewerID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		// A viewer without a profile gets an empty page, not an error.
		s.log(ctx).Info("Discover for viewer without profile", slog.String("viewer_id", viewerID.String()))

		return emptyDiscoverPage(page, limit), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find viewer profile")
	}

	excluded, err := s.excludedUserIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.profileRepo.FindCandidates(ctx, setToSlice(excluded), limit*overfetchFactor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate profiles")
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Profile == nil {
			continue
		}

		distanceKm := geo.ProfileDistanceKm(viewerProfile, candidate.Profile)
		scored = append(scored, scoredCandidate{
			user:       candidate,
			distanceKm: distanceKm,
			score:      scoreProfile(candidate.Profile, distanceKm),
		})
	}

	// Stable keeps retrieval order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	pageEntries := paginate(scored, page, limit)

	now := time.Now()
	results := make([]*usecase.DiscoverEntry, 0, len(pageEntries))
	for _, c := range pageEntries {
		results = append(results, buildDiscoverEntry(c, now))
	}

	return &usecase.DiscoverOutput{
		Page:    page,
		Limit:   limit,
		Count:   len(results),
		Results: results,
	}, nil
}

// excludedUserIDs builds the fresh per-call exclusion set: the viewer
// themselves, everyone they already liked, and everyone they matched with.
func (s *discoverService) excludedUserIDs(ctx context.Context, viewerID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	excluded := map[uuid.UUID]struct{}{viewerID: {}}

	likedIDs, err := s.likeRepo.FindLikedUserIDs(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find liked user ids")
	}
	for _, id := range likedIDs {
		excluded[id] = struct{}{}
	}

	matches, err := s.matchRepo.FindByUser(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches for viewer")
	}
	for _, m := range matches {
		excluded[m.UserAID] = struct{}{}
		excluded[m.UserBID] = struct{}{}
	}

	return excluded, nil
}

// scoreProfile rates a candidate profile for ranking:
// +10 for a bio, +5 per photo capped at 6, +5 for stated intentions,
// minus one point per 5 km of distance capped at 20. Unknown distance
// carries no penalty.
func scoreProfile(profile *entity.Profile, distanceKm *float64) float64 {
	score := 0.0

	if profile.HasBio() {
		score += 10
	}

	photosCount := len(profile.Photos)
	if photosCount > entity.MaxPhotosPerProfile {
		photosCount = entity.MaxPhotosPerProfile
	}
	score += float64(photosCount) * 5

	if len(profile.Intentions) > 0 {
		score += 5
	}

	if distanceKm != nil {
		penalty := *distanceKm / 5
		if penalty > 20 {
			penalty = 20
		}
		score -= penalty
	}

	return score
}

// clampPagination normalizes page and limit instead of rejecting bad values.
func clampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = usecase.DefaultDiscoverLimit
	}
	if limit > usecase.MaxDiscoverLimit {
		limit = usecase.MaxDiscoverLimit
	}

	return page, limit
}

// paginate slices one page out of the ranked candidates.
func paginate(scored []scoredCandidate, page, limit int) []scoredCandidate {
	offset := (page - 1) * limit
	if offset >= len(scored) {
		return nil
	}

	end := offset + limit
	if end > len(scored) {
		end = len(scored)
	}

	return scored[offset:end]
}

func buildDiscoverEntry(c scoredCandidate, now time.Time) *usecase.DiscoverEntry {
	profile := c.user.Profile

	// Legacy rows may have no display name yet; show the email instead.
	displayName := c.user.DisplayName
	if displayName == "" {
		displayName = c.user.Email
	}

	return &usecase.DiscoverEntry{
		ID:           c.user.ID,
		DisplayName:  displayName,
		Age:          c.user.Age(now),
		City:         profile.City,
		Bio:          profile.Bio,
		Interests:    profile.Interests,
		Intentions:   profile.Intentions,
		PrimaryPhoto: profile.PrimaryPhotoPath(),
		PhotosCount:  len(profile.Photos),
		DistanceKm:   c.distanceKm,
		Score:        c.score,
	}
}

func emptyDiscoverPage(page, limit int) *usecase.DiscoverOutput {
	return &usecase.DiscoverOutput{
		Page:    page,
		Limit:   limit,
		Count:   0,
		Results: []*usecase.DiscoverEntry{},
	}
}

func setToSlice(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	return ids
}
