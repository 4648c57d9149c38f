package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleSearch)
	productRoutes.Get("/:id", h.HandleView)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleSearch returns one page of products matching the query parameters.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	searchAttrs := map[string]string{
		"name":          c.Query("name"),
		"description":   c.Query("description"),
		"price":         c.Query("price"),
		"supplier_name": c.Query("supplier_name"),
	}
	paginationAttrs := map[string]string{
		"page":        c.Query("page"),
		"per_page":    c.Query("per_page"),
		"order_field": c.Query("order_field"),
		"order_by":    c.Query("order_by"),
	}

	page, err := h.service.Search(searchAttrs, paginationAttrs)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// HandleView returns a single product.
func (h *ProductHandler) HandleView(c *fiber.Ctx) error {
	product, err := h.service.View(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// HandleCreate creates a new product from the raw request fields.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	item := make(map[string]interface{})
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product, err := h.service.Create(item)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate replaces the fields of an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	item := make(map[string]interface{})
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product, err := h.service.Update(c.Params("id"), item)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	deleted, err := h.service.Delete(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"deleted": deleted,
	})
}
