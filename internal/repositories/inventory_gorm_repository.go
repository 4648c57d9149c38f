package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// GetByID retrieves an inventory record by its ID.
func (r *GORMInventoryRepository) GetByID(id string) (*models.Inventory, error) {
	var record models.Inventory
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inventory record by ID %s: %w", id, err)
	}
	return &record, nil
}

// ListByProduct retrieves all inventory records for a product.
func (r *GORMInventoryRepository) ListByProduct(productID string) ([]models.Inventory, error) {
	var records []models.Inventory
	if err := r.db.Find(&records, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory for product %s: %w", productID, err)
	}
	return records, nil
}

// Create creates a new inventory record, assigning an ID when none is set.
func (r *GORMInventoryRepository) Create(record *models.Inventory) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create inventory record: %w", err)
	}
	return nil
}

// Update updates an existing inventory record.
func (r *GORMInventoryRepository) Update(record *models.Inventory) error {
	res := r.db.Save(record)
	if res.Error != nil {
		return fmt.Errorf("failed to update inventory record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
