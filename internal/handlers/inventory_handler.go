package handlers

import (
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for inventory records.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inventory routes.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Post("/", h.HandleCreate)
	inventoryRoutes.Get("/:id", h.HandleView)
	inventoryRoutes.Patch("/:id/quantity", h.HandleUpdateQuantity)
}

// HandleCreate creates a new inventory record.
func (h *InventoryHandler) HandleCreate(c *fiber.Ctx) error {
	var record models.Inventory
	if err := c.BodyParser(&record); err != nil {
		log.Printf("Error parsing inventory request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
		})
	}

	if err := h.service.Create(&record); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// HandleView returns a single inventory record.
func (h *InventoryHandler) HandleView(c *fiber.Ctx) error {
	record, err := h.service.View(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

// QuantityRequest represents the request body for a stock adjustment.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// HandleUpdateQuantity sets the stock quantity of an inventory record.
func (h *InventoryHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	record, err := h.service.UpdateQuantity(c.Params("id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(record)
}
