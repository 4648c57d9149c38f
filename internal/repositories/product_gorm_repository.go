package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns maps normalized order fields to their SQL columns. The service
// guarantees OrderField is one of these keys.
var orderColumns = map[string]string{
	"id":            "products.id",
	"name":          "products.name",
	"description":   "products.description",
	"price":         "products.price",
	"supplier_name": "suppliers.name",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByName retrieves a single product by its exact name.
func (r *GORMProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by name %s: %w", name, err)
	}
	return &product, nil
}

// Search applies the normalized query and returns one page of products with
// the total match count.
func (r *GORMProductRepository) Search(query ProductQuery) (*ProductPage, error) {
	tx := r.db.Model(&models.Product{})

	// The supplier join is only needed when the query filters or orders on
	// the supplier's name.
	if query.SupplierName != "" || query.OrderField == "supplier_name" {
		tx = tx.Joins("JOIN suppliers ON suppliers.id = products.supplier_id")
	}

	if query.Name != "" {
		tx = tx.Where("products.name = ?", query.Name)
	}
	if query.Description != "" {
		tx = tx.Where("products.description = ?", query.Description)
	}
	if query.Price != nil {
		tx = tx.Where("products.price = ?", *query.Price)
	}
	if query.SupplierName != "" {
		tx = tx.Where("suppliers.name = ?", query.SupplierName)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	column, ok := orderColumns[query.OrderField]
	if !ok {
		column = orderColumns["id"]
	}

	var items []models.Product
	err := tx.Session(&gorm.Session{}).
		Order(fmt.Sprintf("%s %s", column, query.OrderDir)).
		Limit(query.PerPage).
		Offset((query.Page - 1) * query.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return &ProductPage{
		Items:   items,
		Page:    query.Page,
		PerPage: query.PerPage,
		Total:   total,
	}, nil
}

// Create creates a new product, assigning an ID when none is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save writes all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save does not return ErrRecordNotFound for a no-op update,
		// so RowsAffected is the only signal.
		return ErrNotFound
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
