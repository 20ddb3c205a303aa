package seed

import (
	"lunara/config"
	"lunara/internal/logger"

	. "lunara/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func difficultyPtr(d DifficultyLevel) *DifficultyLevel {
	return &d
}

// Seed loads development users and a starter content catalog. Safe to rerun;
// existing rows are left alone.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	if err := seedUsers(db, log); err != nil {
		return err
	}

	if err := seedContent(db, log); err != nil {
		return err
	}

	return nil
}

func seedUsers(db *gorm.DB, log logger.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	users := []User{
		{
			FirstName:    "Admin",
			LastName:     "User",
			DisplayName:  "Administrator",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			IsAdmin:      true,
			IsActive:     true,
		},
		{
			FirstName:    "Maya",
			LastName:     "Test",
			DisplayName:  "Maya",
			Email:        "maya@example.com",
			PasswordHash: string(hash),
			IsActive:     true,
		},
	}

	for _, user := range users {
		var existing User
		if err := db.First(&existing, "email = ?", user.Email).Error; err == nil {
			log.Info("User already exists", "email", user.Email)
			continue
		}
		log.Info("Seeding user", "email", user.Email)
		if err := db.Create(&user).Error; err != nil {
			log.Er("failed to create user", err, "email", user.Email)
		}
	}

	return nil
}

func seedContent(db *gorm.DB, log logger.Logger) error {
	items := []ContentItem{
		{
			Title:           "Gentle Morning Flow",
			Description:     stringPtr("A slow, grounding sequence to ease into the day."),
			ContentType:     ContentTypeYoga,
			DifficultyLevel: difficultyPtr(DifficultyGentle),
			DurationMinutes: intPtr(20),
			Tags:            []string{"gentle", "grounding", "morning"},
			Doshas:          []Dosha{DoshaVata, DoshaKapha},
			CyclePhases:     []CyclePhase{CyclePhaseMenstrual, CyclePhaseLuteal},
		},
		{
			Title:             "Prenatal Restorative Yoga",
			Description:       stringPtr("Supported restorative postures safe through every trimester."),
			ContentType:       ContentTypeYoga,
			DifficultyLevel:   difficultyPtr(DifficultyGentle),
			DurationMinutes:   intPtr(30),
			Tags:              []string{"restorative", "prenatal", "gentle"},
			Doshas:            []Dosha{DoshaVata, DoshaPitta, DoshaKapha},
			PregnancyStatuses: []string{PregnancyStatusPregnant},
		},
		{
			Title:             "Second Trimester Strength",
			Description:       stringPtr("Mindful standing work for the middle months."),
			ContentType:       ContentTypeYoga,
			DifficultyLevel:   difficultyPtr(DifficultyBeginner),
			DurationMinutes:   intPtr(25),
			Tags:              []string{"prenatal", "strength"},
			Doshas:            []Dosha{DoshaKapha},
			PregnancyStatuses: []string{PregnancyStatusPregnant},
			Trimesters:        []int{2},
		},
		{
			Title:           "Power Vinyasa Burn",
			Description:     stringPtr("A vigorous, sweat-building power flow."),
			ContentType:     ContentTypeYoga,
			DifficultyLevel: difficultyPtr(DifficultyAdvanced),
			DurationMinutes: intPtr(45),
			Tags:            []string{"power", "intense", "vigorous"},
			Doshas:          []Dosha{DoshaKapha},
			CyclePhases:     []CyclePhase{CyclePhaseFollicular, CyclePhaseOvulatory},
		},
		{
			Title:           "Nervous System Reset",
			Description:     stringPtr("Calming breath and body scan to settle a racing mind."),
			ContentType:     ContentTypeMeditation,
			DurationMinutes: intPtr(15),
			Tags:            []string{"calming", "nervous system", "stress"},
			Doshas:          []Dosha{DoshaVata, DoshaPitta},
		},
		{
			Title:           "Cooling Evening Breathwork",
			Description:     stringPtr("Sitali and extended exhales for overheated evenings."),
			ContentType:     ContentTypeBreathwork,
			DurationMinutes: intPtr(10),
			Tags:            []string{"cooling", "calming", "sleep"},
			Doshas:          []Dosha{DoshaPitta},
		},
		{
			Title:       "Warming Kitchari for Transitional Seasons",
			Description: stringPtr("A grounding one-pot meal that suits shifting digestion."),
			ContentType: ContentTypeNutrition,
			Tags:        []string{"grounding", "digestion", "warming"},
			Doshas:      []Dosha{DoshaVata, DoshaPitta, DoshaKapha},
		},
		{
			Title:       "Understanding Perimenopause",
			Description: stringPtr("What shifting cycles mean and how to support your body through them."),
			ContentType: ContentTypeArticle,
			Tags:        []string{"hormones", "education", "cycle changes"},
			Doshas:      []Dosha{DoshaVata, DoshaPitta, DoshaKapha},
		},
		{
			Title:           "Yin for Deep Rest",
			Description:     stringPtr("Long, soothing holds for the luteal slowdown."),
			ContentType:     ContentTypeYoga,
			DifficultyLevel: difficultyPtr(DifficultyBeginner),
			DurationMinutes: intPtr(40),
			Tags:            []string{"yin", "restorative", "slow"},
			Doshas:          []Dosha{DoshaVata},
			CyclePhases:     []CyclePhase{CyclePhaseLuteal, CyclePhaseMenstrual},
		},
		{
			Title:           "HIIT Sculpt Express",
			Description:     stringPtr("High-intensity intervals for days with energy to spare."),
			ContentType:     ContentTypeYoga,
			DifficultyLevel: difficultyPtr(DifficultyAdvanced),
			DurationMinutes: intPtr(30),
			Tags:            []string{"hiit", "sculpt", "intense"},
			Doshas:          []Dosha{DoshaKapha},
			CyclePhases:     []CyclePhase{CyclePhaseFollicular},
		},
	}

	for _, item := range items {
		item.IsActive = true

		var existing ContentItem
		if err := db.First(&existing, "title = ?", item.Title).Error; err == nil {
			log.Info("Content item already exists", "title", item.Title)
			continue
		}
		log.Info("Seeding content item", "title", item.Title)
		if err := db.Create(&item).Error; err != nil {
			log.Er("failed to create content item", err, "title", item.Title)
		}
	}

	return nil
}
