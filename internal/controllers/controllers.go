package controllers

import (
	"lunara/config"
	"lunara/internal/database"
	"lunara/internal/events"
	"lunara/internal/repositories"
	"lunara/internal/services"

	authController "lunara/internal/controllers/auth"
	checkinController "lunara/internal/controllers/checkins"
	contentController "lunara/internal/controllers/content"
	recommendationController "lunara/internal/controllers/recommendation"
	userController "lunara/internal/controllers/users"
)

type Controllers struct {
	Auth           authController.AuthControllerInterface
	User           userController.UserControllerInterface
	CheckIn        checkinController.CheckInControllerInterface
	Content        contentController.ContentControllerInterface
	Recommendation recommendationController.RecommendationControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	eventBus *events.EventBus,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:           authController.New(repos, services, db),
		User:           userController.New(repos, services, eventBus, config, db),
		CheckIn:        checkinController.New(repos, eventBus, db),
		Content:        contentController.New(repos, db),
		Recommendation: recommendationController.New(repos, services, db),
	}
}
