package repositories

import (
	"sort"
	"sync"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Supplier-name filtering and ordering resolve names through the supplied
// SupplierRepository; products whose supplier is missing resolve to "".
type MockProductRepository struct {
	products  map[string]models.Product
	suppliers SupplierRepository
	mu        sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository(suppliers SupplierRepository) *MockProductRepository {
	return &MockProductRepository{
		products:  make(map[string]models.Product),
		suppliers: suppliers,
	}
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// GetByName returns a product by its exact name.
func (r *MockProductRepository) GetByName(name string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

// Search applies the normalized query in memory.
func (r *MockProductRepository) Search(query ProductQuery) (*ProductPage, error) {
	r.mu.RLock()
	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if query.Name != "" && p.Name != query.Name {
			continue
		}
		if query.Description != "" && p.Description != query.Description {
			continue
		}
		if query.Price != nil && p.Price != *query.Price {
			continue
		}
		if query.SupplierName != "" && r.supplierName(p.SupplierID) != query.SupplierName {
			continue
		}
		matched = append(matched, p)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if query.OrderDir == "desc" {
			return r.less(matched[j], matched[i], query.OrderField)
		}
		return r.less(matched[i], matched[j], query.OrderField)
	})

	total := int64(len(matched))
	start := (query.Page - 1) * query.PerPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + query.PerPage
	if end > len(matched) {
		end = len(matched)
	}

	return &ProductPage{
		Items:   matched[start:end],
		Page:    query.Page,
		PerPage: query.PerPage,
		Total:   total,
	}, nil
}

func (r *MockProductRepository) supplierName(id string) string {
	if r.suppliers == nil {
		return ""
	}
	supplier, err := r.suppliers.GetByID(id)
	if err != nil {
		return ""
	}
	return supplier.Name
}

func (r *MockProductRepository) less(a, b models.Product, field string) bool {
	switch field {
	case "name":
		return a.Name < b.Name
	case "description":
		return a.Description < b.Description
	case "price":
		return a.Price < b.Price
	case "supplier_name":
		return r.supplierName(a.SupplierID) < r.supplierName(b.SupplierID)
	default:
		return a.ID < b.ID
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}
