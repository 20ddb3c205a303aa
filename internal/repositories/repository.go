package repositories

import (
	"lunara/internal/database"
)

type Repository struct {
	User                UserRepository
	WellnessProfile     WellnessProfileRepository
	Content             ContentRepository
	CheckIn             CheckInRepository
	Cycle               CycleRepository
	DailyRecommendation DailyRecommendationRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:                NewUserRepository(db),
		WellnessProfile:     NewWellnessProfileRepository(db.Cache.User),
		Content:             NewContentRepository(db.Cache.General),
		CheckIn:             NewCheckInRepository(db.Cache.User),
		Cycle:               NewCycleRepository(),
		DailyRecommendation: NewDailyRecommendationRepository(db.Cache.User),
	}
}
