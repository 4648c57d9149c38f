package services

import (
	"errors"
	"log"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/events"

	"github.com/go-playground/validator/v10"
)

// optionalContactFields are the supplier fields that may be omitted but must
// be strings of at most 50 characters when present.
var optionalContactFields = []struct {
	key   string
	label string
}{
	{"phone", "Phone"},
	{"mobile", "Mobile"},
	{"fax", "Fax"},
}

// SupplierService handles business logic related to suppliers. Only creation
// is exposed; there is no update, delete, or search surface for suppliers.
type SupplierService struct {
	suppliers repositories.SupplierRepository
	events    events.Publisher
	validate  *validator.Validate
}

// NewSupplierService creates a new SupplierService. The publisher may be nil;
// lifecycle events are then skipped.
func NewSupplierService(suppliers repositories.SupplierRepository, publisher events.Publisher) *SupplierService {
	return &SupplierService{
		suppliers: suppliers,
		events:    publisher,
		validate:  validator.New(),
	}
}

// Validate checks the raw supplier fields and fails on the first violation.
func (s *SupplierService) Validate(item map[string]interface{}) error {
	name, nameIsString := item["name"].(string)
	if !nameIsString || name == "" || len(name) > 255 {
		return apperrors.Validation("Supplier name is required and must be a string with a maximum length of 255 characters.")
	}

	address, addressIsString := item["address"].(string)
	if !addressIsString || address == "" || len(address) > 255 {
		return apperrors.Validation("Supplier address is required and must be a string with a maximum length of 255 characters.")
	}

	email, emailIsString := item["email"].(string)
	if !emailIsString || email == "" || s.validate.Var(email, "email") != nil {
		return apperrors.Validation("A valid email address is required.")
	}

	for _, field := range optionalContactFields {
		value, present := item[field.key]
		if !present || value == nil {
			continue
		}
		str, isString := value.(string)
		if !isString {
			return apperrors.Validation(field.label + " must be a string.")
		}
		if len(str) > 50 {
			return apperrors.Validation(field.label + " number must not exceed 50 characters.")
		}
	}

	return nil
}

// Create validates the item, guards email and name uniqueness independently,
// and persists the supplier.
func (s *SupplierService) Create(item map[string]interface{}) (*models.Supplier, error) {
	if err := s.Validate(item); err != nil {
		return nil, err
	}

	if err := s.checkEmailExists(stringField(item, "email")); err != nil {
		return nil, err
	}
	if err := s.checkNameExists(stringField(item, "name")); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		Name:    stringField(item, "name"),
		Address: stringField(item, "address"),
		Email:   stringField(item, "email"),
		Phone:   stringField(item, "phone"),
		Mobile:  stringField(item, "mobile"),
		Fax:     stringField(item, "fax"),
	}

	if err := s.suppliers.Create(supplier); err != nil {
		return nil, apperrors.Persistence("Failed to create supplier", err)
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"id":    supplier.ID,
			"name":  supplier.Name,
			"email": supplier.Email,
		}
		if err := s.events.Publish("supplier.created", payload); err != nil {
			log.Printf("Warning: failed to publish supplier.created event for supplier %s: %v", supplier.ID, err)
		}
	}

	return supplier, nil
}

func (s *SupplierService) checkEmailExists(email string) error {
	_, err := s.suppliers.GetByEmail(email)
	if err == nil {
		return apperrors.Duplicate("Supplier Email already exists")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return apperrors.Persistence("Failed to create supplier", err)
	}
	return nil
}

func (s *SupplierService) checkNameExists(name string) error {
	_, err := s.suppliers.GetByName(name)
	if err == nil {
		return apperrors.Duplicate("Supplier Name already exists")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return apperrors.Persistence("Failed to create supplier", err)
	}
	return nil
}
