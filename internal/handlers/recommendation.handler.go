package handlers

import (
	"errors"
	"strconv"

	"lunara/internal/app"
	"lunara/internal/handlers/middleware"
	"lunara/internal/logger"
	"lunara/internal/services"

	recommendationController "lunara/internal/controllers/recommendation"

	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	Handler
	recommendationController recommendationController.RecommendationControllerInterface
	authService              *services.AuthService
}

func NewRecommendationHandler(app app.App, router fiber.Router) *RecommendationHandler {
	log := logger.New("handlers").File("recommendation_handler")
	return &RecommendationHandler{
		recommendationController: app.Controllers.Recommendation,
		authService:              app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecommendationHandler) Register() {
	recommendations := h.router.Group(
		"/recommendations",
		h.middleware.RequireAuth(h.authService),
	)
	recommendations.Get("/today", h.getToday)
	recommendations.Post("/regenerate", h.regenerate)
	recommendations.Get("/personalized", h.getPersonalized)
}

func (h *RecommendationHandler) getToday(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	response, err := h.recommendationController.GetToday(c.Context(), user)
	if err != nil {
		return h.recommendationError(c, err)
	}

	return c.JSON(response)
}

func (h *RecommendationHandler) regenerate(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	response, err := h.recommendationController.Regenerate(c.Context(), user)
	if err != nil {
		return h.recommendationError(c, err)
	}

	return c.JSON(response)
}

func (h *RecommendationHandler) getPersonalized(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	max, _ := strconv.Atoi(c.Query("max", "0"))

	items, err := h.recommendationController.GetPersonalized(c.Context(), user, max)
	if err != nil {
		return h.recommendationError(c, err)
	}

	return c.JSON(fiber.Map{
		"items": items,
	})
}

func (h *RecommendationHandler) recommendationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrProfileNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Wellness profile not found, complete onboarding first",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to get recommendations",
	})
}
