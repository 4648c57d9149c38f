package repositories

import (
	"sync"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockInventoryRepository is an in-memory implementation of InventoryRepository.
type MockInventoryRepository struct {
	records map[string]models.Inventory
	mu      sync.RWMutex
}

// NewMockInventoryRepository creates a new instance of MockInventoryRepository.
func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{
		records: make(map[string]models.Inventory),
	}
}

// GetByID returns an inventory record by its ID.
func (r *MockInventoryRepository) GetByID(id string) (*models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// ListByProduct returns all inventory records for a product.
func (r *MockInventoryRepository) ListByProduct(productID string) ([]models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.Inventory, 0)
	for _, rec := range r.records {
		if rec.ProductID == productID {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Create adds a new inventory record.
func (r *MockInventoryRepository) Create(record *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	r.records[record.ID] = *record
	return nil
}

// Update modifies an existing inventory record.
func (r *MockInventoryRepository) Update(record *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return ErrNotFound
	}
	r.records[record.ID] = *record
	return nil
}
