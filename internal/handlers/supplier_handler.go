package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles HTTP requests for suppliers. Creation is the only
// exposed operation.
type SupplierHandler struct {
	service *services.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service: service,
	}
}

// RegisterRoutes registers the supplier routes.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/suppliers", h.HandleCreate)
}

// HandleCreate creates a new supplier from the raw request fields.
func (h *SupplierHandler) HandleCreate(c *fiber.Ctx) error {
	item := make(map[string]interface{})
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing supplier request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	supplier, err := h.service.Create(item)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}
