package services_test

import (
	"errors"
	"testing"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductService() (*services.ProductService, *MockProductRepository, *MockSupplierRepository) {
	productRepo := new(MockProductRepository)
	supplierRepo := new(MockSupplierRepository)
	return services.NewProductService(productRepo, supplierRepo, nil), productRepo, supplierRepo
}

func validProductItem() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Widget",
		"description": "A useful widget",
		"price":       9.99,
		"supplier_id": "sup-1",
	}
}

func TestProductService_Validate(t *testing.T) {
	service, _, _ := newProductService()

	cases := []struct {
		name    string
		item    map[string]interface{}
		message string
	}{
		{
			name:    "missing name",
			item:    map[string]interface{}{"description": "d", "price": 1.0},
			message: "Name is required and cannot be empty",
		},
		{
			name:    "empty name",
			item:    map[string]interface{}{"name": "", "description": "d", "price": 1.0},
			message: "Name is required and cannot be empty",
		},
		{
			name:    "missing description",
			item:    map[string]interface{}{"name": "Widget", "price": 1.0},
			message: "Description is required and cannot be empty",
		},
		{
			name:    "missing price",
			item:    map[string]interface{}{"name": "Widget", "description": "d"},
			message: "Price is required",
		},
		{
			name:    "nil price",
			item:    map[string]interface{}{"name": "Widget", "description": "d", "price": nil},
			message: "Price is required",
		},
		{
			name:    "negative price",
			item:    map[string]interface{}{"name": "Widget", "description": "d", "price": -10.0},
			message: "Price must be a non-negative number",
		},
		{
			name:    "non-numeric price",
			item:    map[string]interface{}{"name": "Widget", "description": "d", "price": "not a number"},
			message: "Price must be a non-negative number",
		},
		{
			name: "first failure wins",
			item: map[string]interface{}{"price": "not a number"},
			// name is checked before price
			message: "Name is required and cannot be empty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.Validate(tc.item)
			assert.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.EqualError(t, err, tc.message)
		})
	}

	t.Run("valid item", func(t *testing.T) {
		assert.NoError(t, service.Validate(validProductItem()))
	})

	t.Run("numeric string price", func(t *testing.T) {
		item := validProductItem()
		item["price"] = "12.50"
		assert.NoError(t, service.Validate(item))
	})
}

func TestProductService_Create(t *testing.T) {
	supplier := &models.Supplier{ID: "sup-1", Name: "Acme", Address: "1 Rd", Email: "a@x.com"}

	t.Run("success", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(supplier, nil).Once()
		productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := service.Create(validProductItem())

		assert.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, "A useful widget", product.Description)
		assert.Equal(t, 9.99, product.Price)
		assert.Equal(t, "sup-1", product.SupplierID)
		productRepo.AssertExpectations(t)
		supplierRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		existing := &models.Product{ID: "p-1", Name: "Widget"}
		productRepo.On("GetByName", "Widget").Return(existing, nil).Once()

		product, err := service.Create(validProductItem())

		assert.Nil(t, product)
		assert.True(t, apperrors.IsDuplicate(err))
		assert.EqualError(t, err, "Product already exists")
		productRepo.AssertNotCalled(t, "Create", mock.Anything)
		supplierRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("supplier does not exist", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(nil, repositories.ErrNotFound).Once()

		product, err := service.Create(validProductItem())

		assert.Nil(t, product)
		assert.True(t, apperrors.IsReference(err))
		assert.EqualError(t, err, "Supplier does not exist")
		productRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(supplier, nil).Once()
		productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(errors.New("disk full")).Once()

		product, err := service.Create(validProductItem())

		assert.Nil(t, product)
		assert.True(t, apperrors.IsPersistence(err))
		appErr, _ := apperrors.As(err)
		assert.Equal(t, "Failed to create product", appErr.Message)
	})

	t.Run("publishes created event", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		supplierRepo := new(MockSupplierRepository)
		publisher := new(MockPublisher)
		service := services.NewProductService(productRepo, supplierRepo, publisher)

		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(supplier, nil).Once()
		productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
		publisher.On("Publish", "product.created", mock.Anything).Return(nil).Once()

		_, err := service.Create(validProductItem())

		assert.NoError(t, err)
		publisher.AssertExpectations(t)
	})
}

func TestProductService_Update(t *testing.T) {
	supplier := &models.Supplier{ID: "sup-1", Name: "Acme"}

	t.Run("success", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		existing := &models.Product{ID: "p-1", Name: "Old Widget", Description: "old", Price: 1.0, SupplierID: "sup-1"}
		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(supplier, nil).Once()
		productRepo.On("GetByID", "p-1").Return(existing, nil).Once()
		productRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := service.Update("p-1", validProductItem())

		assert.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, 9.99, product.Price)
		productRepo.AssertExpectations(t)
	})

	t.Run("product does not exist", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(supplier, nil).Once()
		productRepo.On("GetByID", "p-404").Return(nil, repositories.ErrNotFound).Once()

		product, err := service.Update("p-404", validProductItem())

		assert.Nil(t, product)
		assert.True(t, apperrors.IsNotFound(err))
		assert.EqualError(t, err, "Product does not exist")
	})

	t.Run("new name taken", func(t *testing.T) {
		service, productRepo, _ := newProductService()

		other := &models.Product{ID: "p-2", Name: "Widget"}
		productRepo.On("GetByName", "Widget").Return(other, nil).Once()

		product, err := service.Update("p-1", validProductItem())

		assert.Nil(t, product)
		assert.True(t, apperrors.IsDuplicate(err))
		assert.EqualError(t, err, "Product already exists")
	})

	t.Run("store no-op", func(t *testing.T) {
		service, productRepo, supplierRepo := newProductService()

		existing := &models.Product{ID: "p-1", Name: "Old Widget", SupplierID: "sup-1"}
		productRepo.On("GetByName", "Widget").Return(nil, repositories.ErrNotFound).Once()
		supplierRepo.On("GetByID", "sup-1").Return(supplier, nil).Once()
		productRepo.On("GetByID", "p-1").Return(existing, nil).Once()
		productRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(repositories.ErrNotFound).Once()

		product, err := service.Update("p-1", validProductItem())

		assert.Nil(t, product)
		assert.True(t, apperrors.IsPersistence(err))
		appErr, _ := apperrors.As(err)
		assert.Equal(t, "Failed to update product", appErr.Message)
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, productRepo, _ := newProductService()

		existing := &models.Product{ID: "p-1", Name: "Widget"}
		productRepo.On("GetByID", "p-1").Return(existing, nil).Once()
		productRepo.On("Delete", "p-1").Return(nil).Once()

		deleted, err := service.Delete("p-1")

		assert.NoError(t, err)
		assert.True(t, deleted)
		productRepo.AssertExpectations(t)
	})

	t.Run("product does not exist", func(t *testing.T) {
		service, productRepo, _ := newProductService()

		productRepo.On("GetByID", "p-404").Return(nil, repositories.ErrNotFound).Once()

		deleted, err := service.Delete("p-404")

		assert.False(t, deleted)
		assert.True(t, apperrors.IsNotFound(err))
		assert.EqualError(t, err, "Product does not exist")
	})

	t.Run("deletion not acknowledged", func(t *testing.T) {
		service, productRepo, _ := newProductService()

		existing := &models.Product{ID: "p-1", Name: "Widget"}
		productRepo.On("GetByID", "p-1").Return(existing, nil).Once()
		productRepo.On("Delete", "p-1").Return(errors.New("lock timeout")).Once()

		deleted, err := service.Delete("p-1")

		assert.False(t, deleted)
		assert.True(t, apperrors.IsPersistence(err))
		appErr, _ := apperrors.As(err)
		assert.Equal(t, "Failed to delete product", appErr.Message)
	})
}

func TestProductService_View(t *testing.T) {
	service, productRepo, _ := newProductService()

	expected := &models.Product{ID: "p-1", Name: "Widget", Price: 9.99, SupplierID: "sup-1"}
	productRepo.On("GetByID", "p-1").Return(expected, nil).Once()

	product, err := service.View("p-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	productRepo.On("GetByID", "p-404").Return(nil, repositories.ErrNotFound).Once()

	product, err = service.View("p-404")
	assert.Nil(t, product)
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, "Product does not exist")
}

func TestProductService_SearchNormalization(t *testing.T) {
	cases := []struct {
		name       string
		search     map[string]string
		pagination map[string]string
		check      func(t *testing.T, q repositories.ProductQuery)
	}{
		{
			name:       "empty attributes use defaults",
			search:     map[string]string{},
			pagination: map[string]string{},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, 15, q.PerPage)
				assert.Equal(t, "id", q.OrderField)
				assert.Equal(t, "asc", q.OrderDir)
				assert.Nil(t, q.Price)
			},
		},
		{
			name:       "non-numeric pagination falls back to defaults",
			search:     map[string]string{},
			pagination: map[string]string{"page": "first", "per_page": "many"},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, 15, q.PerPage)
			},
		},
		{
			name:       "zero and negative pagination fall back to defaults",
			search:     map[string]string{},
			pagination: map[string]string{"page": "0", "per_page": "-3"},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, 15, q.PerPage)
			},
		},
		{
			name:       "numeric pagination is honored",
			search:     map[string]string{},
			pagination: map[string]string{"page": "3", "per_page": "25"},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, 3, q.Page)
				assert.Equal(t, 25, q.PerPage)
			},
		},
		{
			name:       "order field outside whitelist falls back to id",
			search:     map[string]string{},
			pagination: map[string]string{"order_field": "stock"},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, "id", q.OrderField)
			},
		},
		{
			name:       "price orders by price",
			search:     map[string]string{},
			pagination: map[string]string{"order_field": "price", "order_by": "desc"},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, "price", q.OrderField)
				assert.Equal(t, "desc", q.OrderDir)
			},
		},
		{
			name:       "unknown order direction falls back to asc",
			search:     map[string]string{},
			pagination: map[string]string{"order_by": "descending"},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, "asc", q.OrderDir)
			},
		},
		{
			name:       "filters are passed through",
			search:     map[string]string{"name": "Widget", "description": "d", "price": "9.99", "supplier_name": "Acme"},
			pagination: map[string]string{},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Equal(t, "Widget", q.Name)
				assert.Equal(t, "d", q.Description)
				assert.Equal(t, "Acme", q.SupplierName)
				if assert.NotNil(t, q.Price) {
					assert.Equal(t, 9.99, *q.Price)
				}
			},
		},
		{
			name:       "non-numeric price filter is dropped",
			search:     map[string]string{"price": "expensive"},
			pagination: map[string]string{},
			check: func(t *testing.T, q repositories.ProductQuery) {
				assert.Nil(t, q.Price)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, productRepo, _ := newProductService()

			var got repositories.ProductQuery
			empty := &repositories.ProductPage{Items: []models.Product{}}
			productRepo.On("Search", mock.AnythingOfType("repositories.ProductQuery")).
				Run(func(args mock.Arguments) {
					got = args.Get(0).(repositories.ProductQuery)
				}).
				Return(empty, nil).Once()

			page, err := service.Search(tc.search, tc.pagination)

			assert.NoError(t, err)
			assert.NotNil(t, page)
			tc.check(t, got)
		})
	}
}

func TestProductService_SearchEmptyResultIsNotAnError(t *testing.T) {
	service, productRepo, _ := newProductService()

	empty := &repositories.ProductPage{Items: []models.Product{}, Page: 1, PerPage: 15, Total: 0}
	productRepo.On("Search", mock.AnythingOfType("repositories.ProductQuery")).Return(empty, nil).Once()

	page, err := service.Search(map[string]string{"name": "no such product"}, map[string]string{})

	assert.NoError(t, err)
	assert.Len(t, page.Items, 0)
	assert.Equal(t, int64(0), page.Total)
}
