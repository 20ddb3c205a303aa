package handlers

import (
	"errors"

	"lunara/internal/app"
	userController "lunara/internal/controllers/users"
	"lunara/internal/handlers/middleware"
	"lunara/internal/logger"
	"lunara/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	Handler
	userController userController.UserControllerInterface
	authService    *services.AuthService
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		userController: app.Controllers.User,
		authService:    app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users")

	protected := users.Group("/", h.middleware.RequireAuth(h.authService))
	protected.Get("/me", h.getCurrentUser)
	protected.Get("/me/profile", h.getWellnessProfile)
	protected.Put("/me/profile", h.upsertWellnessProfile)
}

// getCurrentUser returns information about the currently authenticated user
func (h *UserHandler) getCurrentUser(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.JSON(fiber.Map{
		"user": user.ToProfile(),
	})
}

func (h *UserHandler) getWellnessProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	profile, err := h.userController.GetWellnessProfile(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Wellness profile not found, complete onboarding first",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get wellness profile",
		})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

func (h *UserHandler) upsertWellnessProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	var req userController.WellnessProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := h.userController.UpsertWellnessProfile(c.Context(), user, req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) ||
			errors.Is(err, userController.ErrInvalidProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid wellness profile",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update wellness profile",
		})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}
