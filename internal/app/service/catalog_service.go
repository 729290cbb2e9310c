package service

import (
	"errors"

	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// ProductFilter narrows a catalog listing. Search wins over CategoryID when
// both are set, mirroring the storefront's search box behavior.
type ProductFilter struct {
	CategoryID *uint
	Search     string
}

type CatalogService interface {
	ListCategories() []model.Category
	GetCategory(id uint) (model.Category, error)
	CreateCategory(in model.NewCategory) model.Category
	UpdateCategory(id uint, in model.CategoryUpdate) (model.Category, error)
	DeleteCategory(id uint) error

	ListProducts(filter ProductFilter) []model.Product
	GetProduct(id uint) (model.Product, error)
	CreateProduct(in model.NewProduct) model.Product
	UpdateProduct(id uint, in model.ProductUpdate) (model.Product, error)
	DeleteProduct(id uint) error
}

type catalogService struct {
	store storage.Storage
}

func NewCatalogService(store storage.Storage) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) ListCategories() []model.Category {
	return s.store.GetAllCategories()
}

func (s *catalogService) GetCategory(id uint) (model.Category, error) {
	category, ok := s.store.GetCategory(id)
	if !ok {
		return model.Category{}, ErrCategoryNotFound
	}
	return category, nil
}

func (s *catalogService) CreateCategory(in model.NewCategory) model.Category {
	category := s.store.CreateCategory(in)
	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return category
}

func (s *catalogService) UpdateCategory(id uint, in model.CategoryUpdate) (model.Category, error) {
	category, ok := s.store.UpdateCategory(id, in)
	if !ok {
		logger.Warn("Category update failed: not found", map[string]interface{}{
			"category_id": id,
		})
		return model.Category{}, ErrCategoryNotFound
	}
	logger.Info("Category updated", map[string]interface{}{
		"category_id": id,
	})
	return category, nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	// Hard removal. Products keep a dangling category reference; the
	// catalog treats that as "uncategorized".
	if !s.store.DeleteCategory(id) {
		return ErrCategoryNotFound
	}
	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return nil
}

func (s *catalogService) ListProducts(filter ProductFilter) []model.Product {
	if filter.Search != "" {
		return s.store.SearchProducts(filter.Search)
	}
	if filter.CategoryID != nil {
		return s.store.GetProductsByCategory(*filter.CategoryID)
	}
	return s.store.GetAllProducts()
}

func (s *catalogService) GetProduct(id uint) (model.Product, error) {
	// Soft-deleted products still resolve here so existing orders and
	// carts referencing them render.
	product, ok := s.store.GetProduct(id)
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) CreateProduct(in model.NewProduct) model.Product {
	product := s.store.CreateProduct(in)
	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
	})
	return product
}

func (s *catalogService) UpdateProduct(id uint, in model.ProductUpdate) (model.Product, error) {
	product, ok := s.store.UpdateProduct(id, in)
	if !ok {
		logger.Warn("Product update failed: not found", map[string]interface{}{
			"product_id": id,
		})
		return model.Product{}, ErrProductNotFound
	}
	logger.Info("Product updated", map[string]interface{}{
		"product_id": id,
	})
	return product, nil
}

func (s *catalogService) DeleteProduct(id uint) error {
	if !s.store.DeleteProduct(id) {
		return ErrProductNotFound
	}
	logger.Info("Product soft-deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
