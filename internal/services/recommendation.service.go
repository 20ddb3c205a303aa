package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lunara/internal/database"
	"lunara/internal/events"
	"lunara/internal/logger"
	. "lunara/internal/models"
	"lunara/internal/repositories"
	"lunara/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrProfileNotFound means the user never completed onboarding; callers
	// prompt for it instead of treating this as a server fault.
	ErrProfileNotFound = errors.New("wellness profile not found")

	// ErrUpstreamFetchFailed means candidate content or activity history was
	// unreachable. Never degrade to a partial ranking; surface it.
	ErrUpstreamFetchFailed = errors.New("upstream fetch failed")
)

const recentFeelingLimit = 100

type RecommendationService struct {
	profileRepo        repositories.WellnessProfileRepository
	contentRepo        repositories.ContentRepository
	checkInRepo        repositories.CheckInRepository
	cycleRepo          repositories.CycleRepository
	recommendationRepo repositories.DailyRecommendationRepository
	userRepo           repositories.UserRepository
	eventBus           *events.EventBus
	db                 *gorm.DB
	log                logger.Logger
	maxItems           int
}

func NewRecommendationService(
	repos repositories.Repository,
	db database.DB,
	eventBus *events.EventBus,
	maxItems int,
) *RecommendationService {
	if maxItems <= 0 {
		maxItems = scoring.MaxRecommendations
	}

	return &RecommendationService{
		profileRepo:        repos.WellnessProfile,
		contentRepo:        repos.Content,
		checkInRepo:        repos.CheckIn,
		cycleRepo:          repos.Cycle,
		recommendationRepo: repos.DailyRecommendation,
		userRepo:           repos.User,
		eventBus:           eventBus,
		db:                 db.SQL,
		log:                logger.New("recommendationService"),
		maxItems:           maxItems,
	}
}

// ResolveProfileContext rebuilds the scoring context from the stored profile
// and recent activity. Always resolved fresh; a context is only valid for the
// single scoring pass it was built for.
func (s *RecommendationService) ResolveProfileContext(
	ctx context.Context,
	userID uuid.UUID,
) (scoring.ProfileContext, error) {
	log := s.log.Function("ResolveProfileContext")

	profile, err := s.profileRepo.GetByUserID(ctx, s.db, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return scoring.ProfileContext{}, ErrProfileNotFound
		}
		return scoring.ProfileContext{}, fmt.Errorf("%w: %v", ErrUpstreamFetchFailed, err)
	}

	profileCtx := scoring.NewProfileContext(profile)

	if profile.LifeStage != nil && profile.LifeStage.IsCycling() {
		phase := scoring.DefaultCyclePhase
		entry, err := s.cycleRepo.GetLatest(ctx, s.db, userID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return scoring.ProfileContext{}, fmt.Errorf("%w: %v", ErrUpstreamFetchFailed, err)
		}
		if entry != nil {
			phase = entry.Phase
		}
		profileCtx.CyclePhase = &phase
	}

	since := time.Now().Add(-scoring.FeelingWindow)
	checkIns, err := s.checkInRepo.GetRecent(ctx, s.db, userID, since, recentFeelingLimit)
	if err != nil {
		return scoring.ProfileContext{}, fmt.Errorf("%w: %v", ErrUpstreamFetchFailed, err)
	}

	for _, checkIn := range checkIns {
		profileCtx.RecentFeelingTags = append(profileCtx.RecentFeelingTags, checkIn.FeelingTags...)
	}

	log.Debug(
		"resolved profile context",
		"userID", userID,
		"inBetween", profileCtx.IsInBetweenPhase,
		"feelingTags", len(profileCtx.RecentFeelingTags),
	)

	return profileCtx, nil
}

// GenerateForUser runs one full recommendation pass and persists the result,
// replacing any existing record for the user and today's date.
func (s *RecommendationService) GenerateForUser(
	ctx context.Context,
	userID uuid.UUID,
) (*DailyRecommendation, error) {
	log := s.log.Function("GenerateForUser")

	profileCtx, err := s.ResolveProfileContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.contentRepo.GetActive(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetchFailed, err)
	}

	contentIDs := scoring.Select(candidates, profileCtx, s.maxItems)

	ids := make(datatypes.JSONSlice[string], 0, len(contentIDs))
	for _, id := range contentIDs {
		ids = append(ids, id.String())
	}

	recommendation := &DailyRecommendation{
		UserID:          userID,
		Date:            time.Now().UTC().Truncate(24 * time.Hour),
		ContentIDs:      ids,
		CyclePhase:      profileCtx.CyclePhase,
		PregnancyStatus: pregnancyStatus(profileCtx.LifeStage),
		GeneratedAt:     time.Now(),
	}

	if err := s.recommendationRepo.UpsertRecommendation(ctx, s.db, recommendation); err != nil {
		return nil, log.Err("failed to persist recommendation", err, "userID", userID)
	}

	if err := s.eventBus.PublishRecommendationsReady(userID, len(ids)); err != nil {
		log.Warn("failed to publish recommendations ready event", "userID", userID, "error", err)
	}

	log.Info(
		"generated daily recommendations",
		"userID", userID,
		"count", len(ids),
		"candidates", len(candidates),
	)

	return recommendation, nil
}

// GetPersonalized ranks the catalog with the feeling-biased scorer and
// returns the items themselves, in rank order. Nothing is persisted.
func (s *RecommendationService) GetPersonalized(
	ctx context.Context,
	userID uuid.UUID,
	max int,
) ([]*ContentItem, error) {
	log := s.log.Function("GetPersonalized")

	if max <= 0 || max > s.maxItems {
		max = s.maxItems
	}

	profileCtx, err := s.ResolveProfileContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.contentRepo.GetActive(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFetchFailed, err)
	}

	contentIDs := scoring.SelectPersonalized(candidates, profileCtx, max)

	byID := make(map[uuid.UUID]*ContentItem, len(candidates))
	for _, item := range candidates {
		byID[item.ID] = item
	}

	items := make([]*ContentItem, 0, len(contentIDs))
	for _, id := range contentIDs {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}

	log.Info("generated personalized recommendations", "userID", userID, "count", len(items))

	return items, nil
}

// GenerateDailyRecommendationsForAllUsers is the scheduled nightly pass.
// Per-user failures are counted and skipped so one broken profile cannot
// starve everyone else.
func (s *RecommendationService) GenerateDailyRecommendationsForAllUsers(ctx context.Context) error {
	log := s.log.Function("GenerateDailyRecommendationsForAllUsers")

	users, err := s.userRepo.GetAllActive(ctx)
	if err != nil {
		return log.Err("failed to get active users", err)
	}

	successCount := 0
	skippedCount := 0
	failureCount := 0

	for _, user := range users {
		_, err := s.GenerateForUser(ctx, user.ID)
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				skippedCount++
				continue
			}
			log.Warn("failed to generate recommendations for user", "userID", user.ID, "error", err)
			failureCount++
			continue
		}

		successCount++
	}

	log.Info(
		"completed daily recommendation generation",
		"totalUsers", len(users),
		"successful", successCount,
		"skippedNoProfile", skippedCount,
		"failed", failureCount,
	)

	if failureCount > 0 {
		return fmt.Errorf(
			"failed to generate recommendations for %d/%d users",
			failureCount,
			len(users),
		)
	}

	return nil
}

// pregnancyStatus records the safety context a set was generated under.
func pregnancyStatus(stage *LifeStage) *string {
	if stage == nil {
		return nil
	}

	var status string
	switch *stage {
	case LifeStagePregnancy:
		status = PregnancyStatusPregnant
	case LifeStagePostpartum:
		status = "postpartum"
	default:
		return nil
	}

	return &status
}
