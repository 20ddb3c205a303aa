package jobs

import (
	"lunara/config"
	"lunara/internal/logger"
	"lunara/internal/services"
)

// Import schedule constants
const (
	Daily  = services.Daily
	Hourly = services.Hourly
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")
	log.Info("Registering jobs")

	dailyRecommendationJob := NewDailyRecommendationJob(
		services.Recommendation,
		Daily,
	)
	if err := schedulerService.AddJob(dailyRecommendationJob); err != nil {
		return log.Err("failed to register daily recommendation job", err)
	}
	log.Info("Registered daily recommendation job", "schedule", "daily")

	return nil
}
