package recommendationController

import (
	"context"

	"lunara/internal/database"
	"lunara/internal/logger"
	. "lunara/internal/models"
	"lunara/internal/repositories"
	"lunara/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodayResponse pairs the stored recommendation record with the hydrated
// content items, in recommendation order.
type TodayResponse struct {
	Recommendation *DailyRecommendation `json:"recommendation"`
	Items          []*ContentItem       `json:"items"`
}

type RecommendationController struct {
	recommendationRepo    repositories.DailyRecommendationRepository
	contentRepo           repositories.ContentRepository
	recommendationService *services.RecommendationService
	db                    database.DB
	log                   logger.Logger
}

type RecommendationControllerInterface interface {
	GetToday(ctx context.Context, user *User) (*TodayResponse, error)
	Regenerate(ctx context.Context, user *User) (*TodayResponse, error)
	GetPersonalized(ctx context.Context, user *User, max int) ([]*ContentItem, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) RecommendationControllerInterface {
	return &RecommendationController{
		recommendationRepo:    repos.DailyRecommendation,
		contentRepo:           repos.Content,
		recommendationService: services.Recommendation,
		db:                    db,
		log:                   logger.New("recommendationController"),
	}
}

// GetToday returns the stored set for today, generating one on first request
// of the day so the nightly job is a warm-up rather than a hard dependency.
func (c *RecommendationController) GetToday(
	ctx context.Context,
	user *User,
) (*TodayResponse, error) {
	log := c.log.Function("GetToday")

	recommendation, err := c.recommendationRepo.GetTodayRecommendation(ctx, c.db.SQL, user.ID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, log.Err("failed to get today's recommendation", err, "userID", user.ID)
		}

		recommendation, err = c.recommendationService.GenerateForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return c.hydrate(ctx, recommendation)
}

// Regenerate discards today's stored set and builds a fresh one.
func (c *RecommendationController) Regenerate(
	ctx context.Context,
	user *User,
) (*TodayResponse, error) {
	recommendation, err := c.recommendationService.GenerateForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return c.hydrate(ctx, recommendation)
}

func (c *RecommendationController) GetPersonalized(
	ctx context.Context,
	user *User,
	max int,
) ([]*ContentItem, error) {
	return c.recommendationService.GetPersonalized(ctx, user.ID, max)
}

func (c *RecommendationController) hydrate(
	ctx context.Context,
	recommendation *DailyRecommendation,
) (*TodayResponse, error) {
	log := c.log.Function("hydrate")

	items, err := c.contentRepo.GetByIDs(ctx, c.db.SQL, recommendation.ContentIDs)
	if err != nil {
		return nil, log.Err(
			"failed to load recommended content",
			err,
			"userID", recommendation.UserID,
		)
	}

	// Database order is arbitrary; restore recommendation order.
	byID := make(map[uuid.UUID]*ContentItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]*ContentItem, 0, len(recommendation.ContentIDs))
	for _, idStr := range recommendation.ContentIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}

	return &TodayResponse{
		Recommendation: recommendation,
		Items:          ordered,
	}, nil
}
