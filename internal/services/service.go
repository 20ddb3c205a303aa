package services

import (
	"lunara/config"
	"lunara/internal/database"
	"lunara/internal/events"
	"lunara/internal/repositories"
)

type Service struct {
	Auth           *AuthService
	Transaction    *TransactionService
	Scheduler      *SchedulerService
	Recommendation *RecommendationService
}

func New(
	db database.DB,
	config config.Config,
	eventBus *events.EventBus,
	repos repositories.Repository,
) (Service, error) {
	authService, err := NewAuthService(config)
	if err != nil {
		return Service{}, err
	}

	transactionService := NewTransactionService(db)
	schedulerService := NewSchedulerService()
	recommendationService := NewRecommendationService(
		repos,
		db,
		eventBus,
		config.RecommendationMax,
	)

	return Service{
		Auth:           authService,
		Transaction:    transactionService,
		Scheduler:      schedulerService,
		Recommendation: recommendationService,
	}, nil
}
