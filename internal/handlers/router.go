package handlers

import (
	"lunara/internal/app"
	"lunara/internal/handlers/middleware"
	"lunara/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	router.Use(app.Middleware.TraceID())

	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()
	NewCheckInHandler(*app, api).Register()
	NewContentHandler(*app, api).Register()
	NewRecommendationHandler(*app, api).Register()

	return nil
}
