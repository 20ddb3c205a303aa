package repositories

import (
	"context"

	"lunara/internal/logger"
	. "lunara/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CycleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *CycleEntry) error
	GetLatest(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*CycleEntry, error)
}

type cycleRepository struct {
	log logger.Logger
}

func NewCycleRepository() CycleRepository {
	return &cycleRepository{
		log: logger.New("cycleRepository"),
	}
}

func (r *cycleRepository) Create(ctx context.Context, tx *gorm.DB, entry *CycleEntry) error {
	log := r.log.Function("Create")

	err := gorm.G[CycleEntry](tx).Create(ctx, entry)
	if err != nil {
		return log.Err("failed to create cycle entry", err, "userID", entry.UserID)
	}

	return nil
}

// GetLatest returns gorm.ErrRecordNotFound when the user has never logged a
// phase; callers fall back to the documented default.
func (r *cycleRepository) GetLatest(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*CycleEntry, error) {
	log := r.log.Function("GetLatest")

	entry, err := gorm.G[*CycleEntry](tx).
		Where(CycleEntry{UserID: userID}).
		Order("recorded_at DESC").
		First(ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get latest cycle entry", err, "userID", userID)
	}

	return entry, nil
}
