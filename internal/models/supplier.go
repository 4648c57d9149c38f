package models

import "time"

// Supplier represents a supplier of products. Email and name carry unique
// indexes so the store resolves races the duplicate guards cannot.
type Supplier struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(255);uniqueIndex" validate:"required,max=255"`
	Address   string    `json:"address" gorm:"type:varchar(255)" validate:"required,max=255"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Mobile    string    `json:"mobile,omitempty" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Fax       string    `json:"fax,omitempty" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
