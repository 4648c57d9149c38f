package database

import (
	"errors"
	"fmt"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seedSuppliers = 10
	seedProducts  = 50
)

// Seed populates the database with an admin user, suppliers, products, and
// inventory records for local development. Running it twice is a no-op for
// the admin user and fails on the unique indexes for the rest, so it is meant
// for a fresh database.
func Seed(db *gorm.DB, adminPassword string) error {
	users := repositories.NewGORMUserRepository(db)
	suppliers := repositories.NewGORMSupplierRepository(db)
	products := repositories.NewGORMProductRepository(db)
	inventory := repositories.NewGORMInventoryRepository(db)

	if _, err := users.GetByUsername("admin"); errors.Is(err, repositories.ErrNotFound) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := &models.User{
			Username: "admin",
			Email:    "admin@example.com",
			Password: string(hashed),
		}
		if err := users.Create(admin); err != nil {
			return err
		}
		log.Println("Seeded admin user")
	}

	supplierIDs := make([]string, 0, seedSuppliers)
	for i := 1; i <= seedSuppliers; i++ {
		supplier := &models.Supplier{
			Name:    fmt.Sprintf("Supplier %02d", i),
			Address: fmt.Sprintf("%d Industrial Road", i),
			Email:   fmt.Sprintf("supplier%02d@example.com", i),
			Phone:   fmt.Sprintf("+1-555-01%02d", i),
			Mobile:  fmt.Sprintf("+1-555-02%02d", i),
		}
		if err := suppliers.Create(supplier); err != nil {
			return err
		}
		supplierIDs = append(supplierIDs, supplier.ID)
	}
	log.Printf("Seeded %d suppliers", seedSuppliers)

	for i := 1; i <= seedProducts; i++ {
		product := &models.Product{
			Name:        fmt.Sprintf("Product %02d", i),
			Description: fmt.Sprintf("Description for product %02d", i),
			Price:       float64(i) * 4.75,
			SupplierID:  supplierIDs[(i-1)%len(supplierIDs)],
		}
		if err := products.Create(product); err != nil {
			return err
		}

		record := &models.Inventory{
			ProductID: product.ID,
			Quantity:  (i * 7) % 100,
			Threshold: 10,
		}
		if err := inventory.Create(record); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d products with inventory records", seedProducts)

	return nil
}
