package userController

import (
	"context"
	"errors"

	"lunara/config"
	"lunara/internal/database"
	"lunara/internal/events"
	"lunara/internal/logger"
	. "lunara/internal/models"
	"lunara/internal/repositories"
	"lunara/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidProfile = errors.New("invalid wellness profile")

// WellnessProfileRequest is the onboarding payload. All fields are optional;
// a sparse profile still produces recommendations, just less targeted ones.
type WellnessProfileRequest struct {
	PrimaryDosha       *string  `json:"primaryDosha"       validate:"omitempty,oneof=vata pitta kapha"`
	SecondaryDosha     *string  `json:"secondaryDosha"     validate:"omitempty,oneof=vata pitta kapha"`
	LifeStage          *string  `json:"lifeStage"          validate:"omitempty,oneof=regular_cycle cycle_changes peri_menopause_transition menopause pregnancy postpartum"`
	PregnancyTrimester *int     `json:"pregnancyTrimester" validate:"omitempty,min=1,max=3"`
	FocusAreas         []string `json:"focusAreas"         validate:"omitempty,max=20,dive,required,max=100"`
}

type UserController struct {
	userRepo           repositories.UserRepository
	profileRepo        repositories.WellnessProfileRepository
	recommendationRepo repositories.DailyRecommendationRepository
	transactionService *services.TransactionService
	eventBus           *events.EventBus
	db                 database.DB
	Config             config.Config
	validate           *validator.Validate
	log                logger.Logger
}

type UserControllerInterface interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*User, error)
	GetWellnessProfile(ctx context.Context, userID uuid.UUID) (*WellnessProfile, error)
	UpsertWellnessProfile(
		ctx context.Context,
		user *User,
		req WellnessProfileRequest,
	) (*WellnessProfile, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	eventBus *events.EventBus,
	config config.Config,
	db database.DB,
) UserControllerInterface {
	return &UserController{
		userRepo:           repos.User,
		profileRepo:        repos.WellnessProfile,
		recommendationRepo: repos.DailyRecommendation,
		transactionService: services.Transaction,
		eventBus:           eventBus,
		db:                 db,
		Config:             config,
		validate:           validator.New(),
		log:                logger.New("userController"),
	}
}

func (uc *UserController) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserController) GetWellnessProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*WellnessProfile, error) {
	return uc.profileRepo.GetByUserID(ctx, uc.db.SQL, userID)
}

// UpsertWellnessProfile replaces the user's profile wholesale. A trimester
// without the pregnancy life stage is rejected rather than silently dropped.
func (uc *UserController) UpsertWellnessProfile(
	ctx context.Context,
	user *User,
	req WellnessProfileRequest,
) (*WellnessProfile, error) {
	log := uc.log.Function("UpsertWellnessProfile")

	if err := uc.validate.Struct(req); err != nil {
		return nil, err
	}

	if req.PregnancyTrimester != nil &&
		(req.LifeStage == nil || *req.LifeStage != string(LifeStagePregnancy)) {
		return nil, ErrInvalidProfile
	}

	profile := &WellnessProfile{
		UserID:             user.ID,
		PrimaryDosha:       toDosha(req.PrimaryDosha),
		SecondaryDosha:     toDosha(req.SecondaryDosha),
		LifeStage:          toLifeStage(req.LifeStage),
		PregnancyTrimester: req.PregnancyTrimester,
		FocusAreas:         req.FocusAreas,
	}

	// Profile changes invalidate today's stored set. Both writes commit or
	// neither does, so a failed upsert never strands the user without a set.
	err := uc.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := uc.profileRepo.Upsert(ctx, tx, profile); err != nil {
			return err
		}
		return uc.recommendationRepo.DeleteTodayRecommendation(ctx, tx, user.ID)
	})
	if err != nil {
		return nil, log.Err("failed to upsert wellness profile", err, "userID", user.ID)
	}

	if err := uc.userRepo.ClearUserCache(ctx, user.ID); err != nil {
		log.Warn("failed to clear user cache", "userID", user.ID, "error", err)
	}

	if err := uc.eventBus.Publish(events.ACTIVITY_CHANNEL, events.Event{
		Type:   events.PROFILE_UPDATED,
		UserID: &user.ID,
		Data:   map[string]any{},
	}); err != nil {
		log.Warn("failed to publish profile updated event", "userID", user.ID, "error", err)
	}

	log.Info("wellness profile updated", "userID", user.ID)

	return profile, nil
}

func toDosha(s *string) *Dosha {
	if s == nil {
		return nil
	}
	d := Dosha(*s)
	return &d
}

func toLifeStage(s *string) *LifeStage {
	if s == nil {
		return nil
	}
	stage := LifeStage(*s)
	return &stage
}
