package models

import "time"

// Inventory tracks the stock level of a product. Records are created
// independently of products; nothing cascades on product deletion.
type Inventory struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);index" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
	Threshold int       `json:"threshold" validate:"gte=0"` // reorder trigger level
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the singular table name used by the schema.
func (Inventory) TableName() string {
	return "inventory"
}
