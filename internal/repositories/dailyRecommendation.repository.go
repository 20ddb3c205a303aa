package repositories

import (
	"context"
	"time"

	"lunara/internal/database"
	"lunara/internal/logger"
	. "lunara/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DAILY_RECOMMENDATIONS_CACHE_PREFIX = "daily_recommendations"
	DAILY_RECOMMENDATIONS_CACHE_EXPIRY = 24 * time.Hour
)

type DailyRecommendationRepository interface {
	GetTodayRecommendation(
		ctx context.Context,
		tx *gorm.DB,
		userID uuid.UUID,
	) (*DailyRecommendation, error)
	UpsertRecommendation(
		ctx context.Context,
		tx *gorm.DB,
		recommendation *DailyRecommendation,
	) error
	DeleteTodayRecommendation(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	ClearUserRecommendationCache(ctx context.Context, userID uuid.UUID) error
}

type dailyRecommendationRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewDailyRecommendationRepository(cache database.CacheClient) DailyRecommendationRepository {
	return &dailyRecommendationRepository{
		cache: cache,
		log:   logger.New("dailyRecommendationRepository"),
	}
}

func (r *dailyRecommendationRepository) GetTodayRecommendation(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*DailyRecommendation, error) {
	log := r.log.Function("GetTodayRecommendation")

	var cached *DailyRecommendation
	found, err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(DAILY_RECOMMENDATIONS_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get daily recommendation from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	recommendation, err := gorm.G[*DailyRecommendation](tx).
		Where(DailyRecommendation{UserID: userID}).
		Where("date = ?", today).
		First(ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get today's recommendation", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(DAILY_RECOMMENDATIONS_CACHE_PREFIX).
		WithStruct(recommendation).
		WithTTL(DAILY_RECOMMENDATIONS_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set daily recommendation in cache", "userID", userID, "error", err)
	}

	return recommendation, nil
}

// UpsertRecommendation replaces any existing record for the same user and
// date. Last write wins; concurrent regenerations are not serialized here.
func (r *dailyRecommendationRepository) UpsertRecommendation(
	ctx context.Context,
	tx *gorm.DB,
	recommendation *DailyRecommendation,
) error {
	log := r.log.Function("UpsertRecommendation")

	err := gorm.G[DailyRecommendation](tx, clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content_ids",
			"cycle_phase",
			"pregnancy_status",
			"generated_at",
			"updated_at",
		}),
	}).Create(ctx, recommendation)
	if err != nil {
		return log.Err(
			"failed to upsert daily recommendation",
			err,
			"userID", recommendation.UserID,
			"date", recommendation.Date,
		)
	}

	if err := r.ClearUserRecommendationCache(ctx, recommendation.UserID); err != nil {
		log.Warn(
			"failed to clear recommendation cache",
			"userID", recommendation.UserID,
			"error", err,
		)
	}

	return nil
}

// DeleteTodayRecommendation removes the stored set for today so a stale one
// is never served while a regeneration is pending.
func (r *dailyRecommendationRepository) DeleteTodayRecommendation(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) error {
	log := r.log.Function("DeleteTodayRecommendation")

	today := time.Now().UTC().Truncate(24 * time.Hour)

	_, err := gorm.G[DailyRecommendation](tx).
		Where("user_id = ? AND date = ?", userID, today).
		Delete(ctx)
	if err != nil {
		return log.Err("failed to delete today's recommendation", err, "userID", userID)
	}

	if err := r.ClearUserRecommendationCache(ctx, userID); err != nil {
		log.Warn("failed to clear recommendation cache", "userID", userID, "error", err)
	}

	return nil
}

func (r *dailyRecommendationRepository) ClearUserRecommendationCache(
	ctx context.Context,
	userID uuid.UUID,
) error {
	return database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(DAILY_RECOMMENDATIONS_CACHE_PREFIX).
		Delete()
}
