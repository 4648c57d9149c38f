package models

import "time"

// Product represents a product offered by a supplier.
// The name is unique among products; the service-level guard is the fast path
// and the unique index is the backstop under concurrent creates.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(255);uniqueIndex" validate:"required"`
	Description string    `json:"description" gorm:"type:text" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	SupplierID  string    `json:"supplier_id" gorm:"type:varchar(36);index" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
