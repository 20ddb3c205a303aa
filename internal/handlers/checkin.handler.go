package handlers

import (
	"errors"
	"strconv"

	"lunara/internal/app"
	checkinController "lunara/internal/controllers/checkins"
	"lunara/internal/handlers/middleware"
	"lunara/internal/logger"
	"lunara/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type CheckInHandler struct {
	Handler
	checkInController checkinController.CheckInControllerInterface
	authService       *services.AuthService
}

func NewCheckInHandler(app app.App, router fiber.Router) *CheckInHandler {
	log := logger.New("handlers").File("checkin_handler")
	return &CheckInHandler{
		checkInController: app.Controllers.CheckIn,
		authService:       app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CheckInHandler) Register() {
	checkIns := h.router.Group("/check-ins", h.middleware.RequireAuth(h.authService))
	checkIns.Post("/", h.createCheckIn)
	checkIns.Get("/", h.listCheckIns)

	cycles := h.router.Group("/cycle-entries", h.middleware.RequireAuth(h.authService))
	cycles.Post("/", h.createCycleEntry)
}

func (h *CheckInHandler) createCheckIn(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	var req checkinController.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	checkIn, err := h.checkInController.CreateCheckIn(c.Context(), user, req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid check-in",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create check-in",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"checkIn": checkIn,
	})
}

func (h *CheckInHandler) listCheckIns(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	checkIns, err := h.checkInController.GetRecentCheckIns(c.Context(), user.ID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get check-ins",
		})
	}

	return c.JSON(fiber.Map{
		"checkIns": checkIns,
	})
}

func (h *CheckInHandler) createCycleEntry(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	var req checkinController.CycleEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := h.checkInController.CreateCycleEntry(c.Context(), user, req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid cycle entry",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create cycle entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"cycleEntry": entry,
	})
}
