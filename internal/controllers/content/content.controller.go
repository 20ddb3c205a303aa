package contentController

import (
	"context"

	"lunara/internal/database"
	"lunara/internal/logger"
	. "lunara/internal/models"
	"lunara/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ContentItemRequest struct {
	Title             string   `json:"title"             validate:"required,max=300"`
	Description       *string  `json:"description"       validate:"omitempty,max=5000"`
	ContentType       string   `json:"contentType"       validate:"required,oneof=yoga meditation nutrition article breathwork"`
	DifficultyLevel   *string  `json:"difficultyLevel"   validate:"omitempty,oneof=beginner gentle intermediate advanced"`
	DurationMinutes   *int     `json:"durationMinutes"   validate:"omitempty,min=1,max=600"`
	Tags              []string `json:"tags"              validate:"omitempty,max=30,dive,required,max=100"`
	Doshas            []string `json:"doshas"            validate:"omitempty,max=3,dive,oneof=vata pitta kapha"`
	CyclePhases       []string `json:"cyclePhases"       validate:"omitempty,max=4,dive,oneof=menstrual follicular ovulatory luteal"`
	PregnancyStatuses []string `json:"pregnancyStatuses" validate:"omitempty,max=5,dive,required,max=50"`
	Trimesters        []int    `json:"trimesters"        validate:"omitempty,max=3,dive,min=1,max=3"`
}

type ContentController struct {
	contentRepo repositories.ContentRepository
	db          database.DB
	validate    *validator.Validate
	log         logger.Logger
}

type ContentControllerInterface interface {
	GetCatalog(ctx context.Context) ([]*ContentItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContentItem, error)
	Create(ctx context.Context, req ContentItemRequest) (*ContentItem, error)
	Update(ctx context.Context, id uuid.UUID, req ContentItemRequest) (*ContentItem, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

func New(repos repositories.Repository, db database.DB) ContentControllerInterface {
	return &ContentController{
		contentRepo: repos.Content,
		db:          db,
		validate:    validator.New(),
		log:         logger.New("contentController"),
	}
}

func (c *ContentController) GetCatalog(ctx context.Context) ([]*ContentItem, error) {
	return c.contentRepo.GetActive(ctx, c.db.SQL)
}

func (c *ContentController) GetByID(ctx context.Context, id uuid.UUID) (*ContentItem, error) {
	return c.contentRepo.GetByID(ctx, c.db.SQL, id)
}

func (c *ContentController) Create(
	ctx context.Context,
	req ContentItemRequest,
) (*ContentItem, error) {
	log := c.log.Function("Create")

	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	item := c.fromRequest(req)
	item.IsActive = true

	if err := c.contentRepo.Create(ctx, c.db.SQL, item); err != nil {
		return nil, log.Err("failed to create content item", err, "title", req.Title)
	}

	log.Info("content item created", "contentID", item.ID, "type", item.ContentType)

	return item, nil
}

func (c *ContentController) Update(
	ctx context.Context,
	id uuid.UUID,
	req ContentItemRequest,
) (*ContentItem, error) {
	log := c.log.Function("Update")

	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	existing, err := c.contentRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	item := c.fromRequest(req)
	item.ID = existing.ID
	item.IsActive = existing.IsActive
	item.CreatedAt = existing.CreatedAt

	if err := c.contentRepo.Update(ctx, c.db.SQL, item); err != nil {
		return nil, log.Err("failed to update content item", err, "contentID", id)
	}

	log.Info("content item updated", "contentID", id)

	return item, nil
}

func (c *ContentController) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	log := c.log.Function("SetActive")

	if err := c.contentRepo.SetActive(ctx, c.db.SQL, id, active); err != nil {
		return err
	}

	log.Info("content item active flag changed", "contentID", id, "active", active)

	return nil
}

func (c *ContentController) fromRequest(req ContentItemRequest) *ContentItem {
	doshas := make([]Dosha, 0, len(req.Doshas))
	for _, d := range req.Doshas {
		doshas = append(doshas, Dosha(d))
	}

	phases := make([]CyclePhase, 0, len(req.CyclePhases))
	for _, p := range req.CyclePhases {
		phases = append(phases, CyclePhase(p))
	}

	item := &ContentItem{
		Title:             req.Title,
		Description:       req.Description,
		ContentType:       ContentType(req.ContentType),
		DurationMinutes:   req.DurationMinutes,
		Tags:              req.Tags,
		Doshas:            doshas,
		CyclePhases:       phases,
		PregnancyStatuses: req.PregnancyStatuses,
		Trimesters:        req.Trimesters,
	}

	if req.DifficultyLevel != nil {
		level := DifficultyLevel(*req.DifficultyLevel)
		item.DifficultyLevel = &level
	}

	return item
}
