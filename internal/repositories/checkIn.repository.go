package repositories

import (
	"context"
	"time"

	"lunara/internal/database"
	"lunara/internal/logger"
	. "lunara/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CHECKIN_CACHE_PREFIX = "check_ins"
	CHECKIN_CACHE_EXPIRY = 6 * time.Hour
	CHECKIN_CACHE_LIMIT  = 100
)

type CheckInRepository interface {
	Create(ctx context.Context, tx *gorm.DB, checkIn *CheckIn) error
	GetRecent(
		ctx context.Context,
		tx *gorm.DB,
		userID uuid.UUID,
		since time.Time,
		limit int,
	) ([]*CheckIn, error)
	ClearUserCheckInCache(ctx context.Context, userID uuid.UUID) error
}

type checkInRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewCheckInRepository(cache database.CacheClient) CheckInRepository {
	return &checkInRepository{
		cache: cache,
		log:   logger.New("checkInRepository"),
	}
}

func (r *checkInRepository) Create(ctx context.Context, tx *gorm.DB, checkIn *CheckIn) error {
	log := r.log.Function("Create")

	err := gorm.G[CheckIn](tx).Create(ctx, checkIn)
	if err != nil {
		return log.Err("failed to create check-in", err, "userID", checkIn.UserID)
	}

	if err := r.ClearUserCheckInCache(ctx, checkIn.UserID); err != nil {
		log.Warn("failed to clear check-in cache", "userID", checkIn.UserID, "error", err)
	}

	return nil
}

// GetRecent returns check-ins newest first. The cache holds the full window
// capped at CHECKIN_CACHE_LIMIT entries per user; narrower limits slice the
// cached result. Create clears the key, so staleness is bounded by entries
// aging out of the window.
func (r *checkInRepository) GetRecent(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	since time.Time,
	limit int,
) ([]*CheckIn, error) {
	log := r.log.Function("GetRecent")

	var cached []*CheckIn
	found, err := database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(CHECKIN_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get check-ins from cache", "userID", userID, "error", err)
	}

	if found {
		return capCheckIns(cached, limit), nil
	}

	checkIns, err := gorm.G[*CheckIn](tx).
		Where("user_id = ? AND checked_in_at >= ?", userID, since).
		Order("checked_in_at DESC").
		Limit(CHECKIN_CACHE_LIMIT).
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get recent check-ins", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(CHECKIN_CACHE_PREFIX).
		WithStruct(checkIns).
		WithTTL(CHECKIN_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set check-ins in cache", "userID", userID, "error", err)
	}

	return capCheckIns(checkIns, limit), nil
}

func capCheckIns(checkIns []*CheckIn, limit int) []*CheckIn {
	if limit <= 0 || limit >= len(checkIns) {
		return checkIns
	}
	return checkIns[:limit]
}

func (r *checkInRepository) ClearUserCheckInCache(ctx context.Context, userID uuid.UUID) error {
	return database.NewCacheBuilder(r.cache, userID.String()).
		WithContext(ctx).
		WithHash(CHECKIN_CACHE_PREFIX).
		Delete()
}
