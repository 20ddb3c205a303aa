package checkinController

import (
	"context"
	"time"

	"lunara/internal/database"
	"lunara/internal/events"
	"lunara/internal/logger"
	. "lunara/internal/models"
	"lunara/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// defaultHistoryWindow mirrors the window the scorer looks at, so the list
// endpoint shows exactly what influences personalized ranking.
const defaultHistoryWindow = 30 * 24 * time.Hour

type CheckInRequest struct {
	FeelingTags []string `json:"feelingTags" validate:"required,min=1,max=20,dive,required,max=100"`
	Note        *string  `json:"note"        validate:"omitempty,max=2000"`
}

type CycleEntryRequest struct {
	Phase string `json:"phase" validate:"required,oneof=menstrual follicular ovulatory luteal"`
}

type CheckInController struct {
	checkInRepo repositories.CheckInRepository
	cycleRepo   repositories.CycleRepository
	eventBus    *events.EventBus
	db          database.DB
	validate    *validator.Validate
	log         logger.Logger
}

type CheckInControllerInterface interface {
	CreateCheckIn(ctx context.Context, user *User, req CheckInRequest) (*CheckIn, error)
	CreateCycleEntry(ctx context.Context, user *User, req CycleEntryRequest) (*CycleEntry, error)
	GetRecentCheckIns(ctx context.Context, userID uuid.UUID, limit int) ([]*CheckIn, error)
}

func New(
	repos repositories.Repository,
	eventBus *events.EventBus,
	db database.DB,
) CheckInControllerInterface {
	return &CheckInController{
		checkInRepo: repos.CheckIn,
		cycleRepo:   repos.Cycle,
		eventBus:    eventBus,
		db:          db,
		validate:    validator.New(),
		log:         logger.New("checkInController"),
	}
}

func (c *CheckInController) CreateCheckIn(
	ctx context.Context,
	user *User,
	req CheckInRequest,
) (*CheckIn, error) {
	log := c.log.Function("CreateCheckIn")

	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	checkIn := &CheckIn{
		UserID:      user.ID,
		FeelingTags: req.FeelingTags,
		CheckedInAt: time.Now(),
	}
	if req.Note != nil {
		checkIn.Note = *req.Note
	}

	if err := c.checkInRepo.Create(ctx, c.db.SQL, checkIn); err != nil {
		return nil, log.Err("failed to create check-in", err, "userID", user.ID)
	}

	if err := c.eventBus.Publish(events.ACTIVITY_CHANNEL, events.Event{
		Type:   events.CHECKIN_CREATED,
		UserID: &user.ID,
		Data:   map[string]any{"tagCount": len(req.FeelingTags)},
	}); err != nil {
		log.Warn("failed to publish check-in event", "userID", user.ID, "error", err)
	}

	log.Info("check-in recorded", "userID", user.ID, "tags", len(req.FeelingTags))

	return checkIn, nil
}

func (c *CheckInController) CreateCycleEntry(
	ctx context.Context,
	user *User,
	req CycleEntryRequest,
) (*CycleEntry, error) {
	log := c.log.Function("CreateCycleEntry")

	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	entry := &CycleEntry{
		UserID:     user.ID,
		Phase:      CyclePhase(req.Phase),
		RecordedAt: time.Now(),
	}

	if err := c.cycleRepo.Create(ctx, c.db.SQL, entry); err != nil {
		return nil, log.Err("failed to create cycle entry", err, "userID", user.ID)
	}

	if err := c.eventBus.Publish(events.ACTIVITY_CHANNEL, events.Event{
		Type:   events.CYCLE_ENTRY_CREATED,
		UserID: &user.ID,
		Data:   map[string]any{"phase": req.Phase},
	}); err != nil {
		log.Warn("failed to publish cycle entry event", "userID", user.ID, "error", err)
	}

	log.Info("cycle entry recorded", "userID", user.ID, "phase", req.Phase)

	return entry, nil
}

func (c *CheckInController) GetRecentCheckIns(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*CheckIn, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	since := time.Now().Add(-defaultHistoryWindow)
	return c.checkInRepo.GetRecent(ctx, c.db.SQL, userID, since, limit)
}
