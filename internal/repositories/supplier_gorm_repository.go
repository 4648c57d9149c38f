package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// GetByID retrieves a supplier by its ID.
func (r *GORMSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	return r.first("id = ?", id)
}

// GetByName retrieves a supplier by its exact name.
func (r *GORMSupplierRepository) GetByName(name string) (*models.Supplier, error) {
	return r.first("name = ?", name)
}

// GetByEmail retrieves a supplier by its email address.
func (r *GORMSupplierRepository) GetByEmail(email string) (*models.Supplier, error) {
	return r.first("email = ?", email)
}

func (r *GORMSupplierRepository) first(cond string, value string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, cond, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier (%s %s): %w", cond, value, err)
	}
	return &supplier, nil
}

// Create creates a new supplier, assigning an ID when none is set.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}
