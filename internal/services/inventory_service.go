package services

import (
	"errors"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// InventoryService stores and retrieves stock records. Inventory carries no
// business rules: records are created independently of products and nothing
// acts on the reorder threshold here.
type InventoryService struct {
	inventory repositories.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventory repositories.InventoryRepository) *InventoryService {
	return &InventoryService{
		inventory: inventory,
	}
}

// Create persists a new inventory record.
func (s *InventoryService) Create(record *models.Inventory) error {
	if record.Quantity < 0 || record.Threshold < 0 {
		return apperrors.Validation("Quantity and threshold must be non-negative")
	}
	if err := s.inventory.Create(record); err != nil {
		return apperrors.Persistence("Failed to create inventory record", err)
	}
	return nil
}

// View retrieves a single inventory record by its ID.
func (s *InventoryService) View(id string) (*models.Inventory, error) {
	record, err := s.inventory.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Inventory record does not exist")
		}
		return nil, apperrors.Persistence("Failed to retrieve inventory record", err)
	}
	return record, nil
}

// ListByProduct retrieves all inventory records for a product.
func (s *InventoryService) ListByProduct(productID string) ([]models.Inventory, error) {
	records, err := s.inventory.ListByProduct(productID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to list inventory records", err)
	}
	return records, nil
}

// UpdateQuantity sets the stock quantity of an existing record.
func (s *InventoryService) UpdateQuantity(id string, quantity int) (*models.Inventory, error) {
	if quantity < 0 {
		return nil, apperrors.Validation("Quantity must be a non-negative number")
	}

	record, err := s.inventory.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Inventory record does not exist")
		}
		return nil, apperrors.Persistence("Failed to update inventory record", err)
	}

	record.Quantity = quantity
	if err := s.inventory.Update(record); err != nil {
		return nil, apperrors.Persistence("Failed to update inventory record", err)
	}
	return record, nil
}
