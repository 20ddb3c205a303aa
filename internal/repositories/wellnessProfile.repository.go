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
	WELLNESS_PROFILE_CACHE_PREFIX = "wellness_profile"
	WELLNESS_PROFILE_CACHE_EXPIRY = 24 * time.Hour
)

type WellnessProfileRepository interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*WellnessProfile, error)
	Upsert(ctx context.Context, tx *gorm.DB, profile *WellnessProfile) error
	ClearUserProfileCache(ctx context.Context, userID uuid.UUID) error
}

type wellnessProfileRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewWellnessProfileRepository(cache database.CacheClient) WellnessProfileRepository {
	return &wellnessProfileRepository{
		cache: cache,
		log:   logger.New("wellnessProfileRepository"),
	}
}

func (r *wellnessProfileRepository) GetByUserID(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*WellnessProfile, error) {
	log := r.log.Function("GetByUserID")

	var cached *WellnessProfile
	found, err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(WELLNESS_PROFILE_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get wellness profile from cache", "userID", userID, "error", err)
	}

	if found {
		return cached, nil
	}

	profile, err := gorm.G[*WellnessProfile](tx).
		Where(WellnessProfile{UserID: userID}).
		First(ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get wellness profile", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(WELLNESS_PROFILE_CACHE_PREFIX).
		WithStruct(profile).
		WithTTL(WELLNESS_PROFILE_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set wellness profile in cache", "userID", userID, "error", err)
	}

	return profile, nil
}

func (r *wellnessProfileRepository) Upsert(
	ctx context.Context,
	tx *gorm.DB,
	profile *WellnessProfile,
) error {
	log := r.log.Function("Upsert")

	err := gorm.G[WellnessProfile](tx, clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"primary_dosha",
			"secondary_dosha",
			"life_stage",
			"pregnancy_trimester",
			"focus_areas",
			"updated_at",
		}),
	}).Create(ctx, profile)
	if err != nil {
		return log.Err("failed to upsert wellness profile", err, "userID", profile.UserID)
	}

	if err := r.ClearUserProfileCache(ctx, profile.UserID); err != nil {
		log.Warn("failed to clear wellness profile cache", "userID", profile.UserID, "error", err)
	}

	return nil
}

func (r *wellnessProfileRepository) ClearUserProfileCache(
	ctx context.Context,
	userID uuid.UUID,
) error {
	return database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(WELLNESS_PROFILE_CACHE_PREFIX).
		Delete()
}
