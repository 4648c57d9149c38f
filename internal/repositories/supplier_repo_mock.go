package repositories

import (
	"sync"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockSupplierRepository is an in-memory implementation of SupplierRepository.
type MockSupplierRepository struct {
	suppliers map[string]models.Supplier
	mu        sync.RWMutex
}

// NewMockSupplierRepository creates a new instance of MockSupplierRepository.
func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{
		suppliers: make(map[string]models.Supplier),
	}
}

// GetByID returns a supplier by its ID.
func (r *MockSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &supplier, nil
}

// GetByName returns a supplier by its exact name.
func (r *MockSupplierRepository) GetByName(name string) (*models.Supplier, error) {
	return r.find(func(s models.Supplier) bool { return s.Name == name })
}

// GetByEmail returns a supplier by its email address.
func (r *MockSupplierRepository) GetByEmail(email string) (*models.Supplier, error) {
	return r.find(func(s models.Supplier) bool { return s.Email == email })
}

func (r *MockSupplierRepository) find(match func(models.Supplier) bool) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.suppliers {
		if match(s) {
			supplier := s
			return &supplier, nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a new supplier.
func (r *MockSupplierRepository) Create(supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	r.suppliers[supplier.ID] = *supplier
	return nil
}
