package repositories

import "gudang/internal/models"

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetByID(id string) (*models.Supplier, error)
	GetByName(name string) (*models.Supplier, error)
	GetByEmail(email string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
}
