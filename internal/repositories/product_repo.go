package repositories

import (
	"gudang/internal/models"
)

// ProductQuery describes a normalized product search: equality filters,
// ordering, and pagination. The service layer is responsible for normalizing
// raw request attributes into this form; repositories apply it verbatim.
type ProductQuery struct {
	Name         string
	Description  string
	Price        *float64
	SupplierName string

	OrderField string // one of: id, name, description, price, supplier_name
	OrderDir   string // asc or desc

	Page    int
	PerPage int
}

// ProductPage is a bounded, ordered slice of the product collection plus its
// pagination metadata. An empty page is a valid result.
type ProductPage struct {
	Items   []models.Product `json:"data"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
	Total   int64            `json:"total"`
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	Search(query ProductQuery) (*ProductPage, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
