package repositories

import "gudang/internal/models"

// InventoryRepository defines the interface for inventory data access.
type InventoryRepository interface {
	GetByID(id string) (*models.Inventory, error)
	ListByProduct(productID string) ([]models.Inventory, error)
	Create(record *models.Inventory) error
	Update(record *models.Inventory) error
}
