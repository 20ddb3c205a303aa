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
	CONTENT_CATALOG_CACHE_KEY    = "content_catalog:active"
	CONTENT_CATALOG_CACHE_EXPIRY = 1 * time.Hour
)

type ContentRepository interface {
	GetActive(ctx context.Context, tx *gorm.DB) ([]*ContentItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*ContentItem, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*ContentItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *ContentItem) error
	Update(ctx context.Context, tx *gorm.DB, item *ContentItem) error
	SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) error
}

type contentRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewContentRepository(cache database.CacheClient) ContentRepository {
	return &contentRepository{
		cache: cache,
		log:   logger.New("contentRepository"),
	}
}

// GetActive returns the full active catalog in stable creation order. The
// selector depends on that order for deterministic tie-breaking, so keep it.
func (r *contentRepository) GetActive(ctx context.Context, tx *gorm.DB) ([]*ContentItem, error) {
	log := r.log.Function("GetActive")

	var cached []*ContentItem
	found, err := database.NewCacheBuilder(r.cache, CONTENT_CATALOG_CACHE_KEY).
		WithContext(ctx).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get content catalog from cache", "error", err)
	}

	if found {
		return cached, nil
	}

	items, err := gorm.G[*ContentItem](tx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get active content items", err)
	}

	err = database.NewCacheBuilder(r.cache, CONTENT_CATALOG_CACHE_KEY).
		WithContext(ctx).
		WithStruct(items).
		WithTTL(CONTENT_CATALOG_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to cache content catalog", "error", err)
	}

	return items, nil
}

func (r *contentRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*ContentItem, error) {
	log := r.log.Function("GetByID")

	item, err := gorm.G[*ContentItem](tx).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get content item", err, "contentID", id)
	}

	return item, nil
}

// GetByIDs fetches a batch of items; callers reorder to match their ID list.
func (r *contentRepository) GetByIDs(
	ctx context.Context,
	tx *gorm.DB,
	ids []string,
) ([]*ContentItem, error) {
	log := r.log.Function("GetByIDs")

	if len(ids) == 0 {
		return []*ContentItem{}, nil
	}

	items, err := gorm.G[*ContentItem](tx).
		Where("id IN ?", ids).
		Find(ctx)
	if err != nil {
		return nil, log.Err("failed to get content items by ids", err, "count", len(ids))
	}

	return items, nil
}

func (r *contentRepository) Create(ctx context.Context, tx *gorm.DB, item *ContentItem) error {
	log := r.log.Function("Create")

	err := gorm.G[ContentItem](tx).Create(ctx, item)
	if err != nil {
		return log.Err("failed to create content item", err, "title", item.Title)
	}

	r.clearCatalogCache(ctx)

	return nil
}

func (r *contentRepository) Update(ctx context.Context, tx *gorm.DB, item *ContentItem) error {
	log := r.log.Function("Update")

	if err := tx.Save(item).Error; err != nil {
		return log.Err("failed to update content item", err, "contentID", item.ID)
	}

	r.clearCatalogCache(ctx)

	return nil
}

func (r *contentRepository) SetActive(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	active bool,
) error {
	log := r.log.Function("SetActive")

	rows, err := gorm.G[ContentItem](tx).
		Where("id = ?", id).
		Update(ctx, "is_active", active)
	if err != nil {
		return log.Err("failed to set content item active flag", err, "contentID", id)
	}

	if rows == 0 {
		return gorm.ErrRecordNotFound
	}

	r.clearCatalogCache(ctx)

	return nil
}

func (r *contentRepository) clearCatalogCache(ctx context.Context) {
	err := database.NewCacheBuilder(r.cache, CONTENT_CATALOG_CACHE_KEY).
		WithContext(ctx).
		Delete()
	if err != nil {
		r.log.Warn("failed to clear content catalog cache", "error", err)
	}
}
