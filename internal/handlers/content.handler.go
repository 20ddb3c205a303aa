package handlers

import (
	"errors"

	"lunara/internal/app"
	contentController "lunara/internal/controllers/content"
	"lunara/internal/logger"
	"lunara/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentHandler struct {
	Handler
	contentController contentController.ContentControllerInterface
	authService       *services.AuthService
}

func NewContentHandler(app app.App, router fiber.Router) *ContentHandler {
	log := logger.New("handlers").File("content_handler")
	return &ContentHandler{
		contentController: app.Controllers.Content,
		authService:       app.Services.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ContentHandler) Register() {
	content := h.router.Group("/content", h.middleware.RequireAuth(h.authService))
	content.Get("/", h.listContent)
	content.Get("/:id", h.getContent)

	admin := content.Group("/", h.middleware.RequireAdmin())
	admin.Post("/", h.createContent)
	admin.Put("/:id", h.updateContent)
	admin.Delete("/:id", h.deactivateContent)
}

func (h *ContentHandler) listContent(c *fiber.Ctx) error {
	items, err := h.contentController.GetCatalog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get content catalog",
		})
	}

	return c.JSON(fiber.Map{
		"items": items,
	})
}

func (h *ContentHandler) getContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid content ID",
		})
	}

	item, err := h.contentController.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Content not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get content",
		})
	}

	return c.JSON(fiber.Map{
		"item": item,
	})
}

func (h *ContentHandler) createContent(c *fiber.Ctx) error {
	var req contentController.ContentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.contentController.Create(c.Context(), req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid content item",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create content",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item": item,
	})
}

func (h *ContentHandler) updateContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid content ID",
		})
	}

	var req contentController.ContentItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.contentController.Update(c.Context(), id, req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid content item",
			})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Content not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update content",
		})
	}

	return c.JSON(fiber.Map{
		"item": item,
	})
}

func (h *ContentHandler) deactivateContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid content ID",
		})
	}

	if err := h.contentController.SetActive(c.Context(), id, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Content not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to deactivate content",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
