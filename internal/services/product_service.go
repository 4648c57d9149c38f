package services

import (
	"errors"
	"log"
	"strconv"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/events"
)

const (
	defaultPage    = 1
	defaultPerPage = 15
)

// orderFields is the whitelist of fields a search may order on. Anything else
// resets to id.
var orderFields = map[string]bool{
	"id":            true,
	"name":          true,
	"description":   true,
	"price":         true,
	"supplier_name": true,
}

// ProductService handles business logic related to products: input
// validation, uniqueness and reference guards, and search normalization.
// Inputs arrive as raw field maps so presence and type checks run before any
// model is built.
type ProductService struct {
	products  repositories.ProductRepository
	suppliers repositories.SupplierRepository
	events    events.Publisher
}

// NewProductService creates a new ProductService. The publisher may be nil;
// lifecycle events are then skipped.
func NewProductService(products repositories.ProductRepository, suppliers repositories.SupplierRepository, publisher events.Publisher) *ProductService {
	return &ProductService{
		products:  products,
		suppliers: suppliers,
		events:    publisher,
	}
}

// Validate checks the raw product fields in order; the first failed check
// wins. Passing validation does not imply persistence will succeed.
func (s *ProductService) Validate(item map[string]interface{}) error {
	if stringField(item, "name") == "" {
		return apperrors.Validation("Name is required and cannot be empty")
	}
	if stringField(item, "description") == "" {
		return apperrors.Validation("Description is required and cannot be empty")
	}
	raw, ok := item["price"]
	if !ok || raw == nil {
		return apperrors.Validation("Price is required")
	}
	price, ok := numericValue(raw)
	if !ok || price < 0 {
		return apperrors.Validation("Price must be a non-negative number")
	}
	return nil
}

// Create validates the item, guards against a duplicate name and a dangling
// supplier reference, and persists the product.
func (s *ProductService) Create(item map[string]interface{}) (*models.Product, error) {
	if err := s.Validate(item); err != nil {
		return nil, err
	}

	if err := s.guardItem(item, "Failed to create product"); err != nil {
		return nil, err
	}

	price, _ := numericValue(item["price"])
	product := &models.Product{
		Name:        stringField(item, "name"),
		Description: stringField(item, "description"),
		Price:       price,
		SupplierID:  stringField(item, "supplier_id"),
	}

	if err := s.products.Create(product); err != nil {
		return nil, apperrors.Persistence("Failed to create product", err)
	}

	s.publish("product.created", product)
	return product, nil
}

// Update validates the item, runs the same guards as Create (the new name
// must be unused by any record), fetches the product, applies the fields, and
// saves.
func (s *ProductService) Update(productID string, item map[string]interface{}) (*models.Product, error) {
	if err := s.Validate(item); err != nil {
		return nil, err
	}

	if err := s.guardItem(item, "Failed to update product"); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product does not exist")
		}
		return nil, apperrors.Persistence("Failed to update product", err)
	}

	product.Name = stringField(item, "name")
	product.Description = stringField(item, "description")
	product.Price, _ = numericValue(item["price"])
	product.SupplierID = stringField(item, "supplier_id")

	if err := s.products.Update(product); err != nil {
		return nil, apperrors.Persistence("Failed to update product", err)
	}

	s.publish("product.updated", product)
	return product, nil
}

// Delete removes a product by its ID. Returns true when the deletion was
// acknowledged by the store.
func (s *ProductService) Delete(productID string) (bool, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, apperrors.NotFound("Product does not exist")
		}
		return false, apperrors.Persistence("Failed to delete product", err)
	}

	if err := s.products.Delete(productID); err != nil {
		return false, apperrors.Persistence("Failed to delete product", err)
	}

	s.publish("product.deleted", product)
	return true, nil
}

// View retrieves a single product by its ID.
func (s *ProductService) View(productID string) (*models.Product, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product does not exist")
		}
		return nil, apperrors.Persistence("Failed to retrieve product", err)
	}
	return product, nil
}

// Search normalizes the raw search and pagination attributes and returns one
// page of matching products. An empty page is a valid result, not an error.
//
// Normalization rules: page defaults to 1 and per_page to 15, with any
// non-numeric or non-positive value resetting to the default; order_field
// outside the whitelist resets to id; order_by accepts only asc and desc and
// resets to asc.
func (s *ProductService) Search(searchAttrs, paginationAttrs map[string]string) (*repositories.ProductPage, error) {
	query := repositories.ProductQuery{
		Name:         searchAttrs["name"],
		Description:  searchAttrs["description"],
		SupplierName: searchAttrs["supplier_name"],
		OrderField:   normalizeOrderField(paginationAttrs["order_field"]),
		OrderDir:     normalizeOrderDir(paginationAttrs["order_by"]),
		Page:         positiveIntOrDefault(paginationAttrs["page"], defaultPage),
		PerPage:      positiveIntOrDefault(paginationAttrs["per_page"], defaultPerPage),
	}

	// A non-numeric price filter is dropped rather than rejected, matching
	// the lenient handling of the pagination attributes.
	if raw := searchAttrs["price"]; raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			query.Price = &price
		}
	}

	page, err := s.products.Search(query)
	if err != nil {
		return nil, apperrors.Persistence("Failed to search products", err)
	}
	return page, nil
}

// guardItem runs the duplicate-name and supplier-existence guards. These are
// fast-path checks; the unique index on products.name resolves races between
// concurrent writers.
func (s *ProductService) guardItem(item map[string]interface{}, failureMessage string) error {
	_, err := s.products.GetByName(stringField(item, "name"))
	if err == nil {
		return apperrors.Duplicate("Product already exists")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return apperrors.Persistence(failureMessage, err)
	}

	_, err = s.suppliers.GetByID(stringField(item, "supplier_id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.Reference("Supplier does not exist")
		}
		return apperrors.Persistence(failureMessage, err)
	}
	return nil
}

func (s *ProductService) publish(event string, product *models.Product) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"id":          product.ID,
		"name":        product.Name,
		"price":       product.Price,
		"supplier_id": product.SupplierID,
	}
	if err := s.events.Publish(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}

func normalizeOrderField(field string) string {
	if orderFields[field] {
		return field
	}
	return "id"
}

func normalizeOrderDir(dir string) string {
	if dir == "asc" || dir == "desc" {
		return dir
	}
	return "asc"
}

func positiveIntOrDefault(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
