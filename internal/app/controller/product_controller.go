package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/errors"
	"github.com/shopflow/shopflow-backend/internal/middleware"
)

type ProductController struct {
	catalogService service.CatalogService
}

func NewProductController(catalogService service.CatalogService) *ProductController {
	return &ProductController{catalogService: catalogService}
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	CategoryID  *uint  `json:"categoryId"`
	ImageURL    string `json:"imageUrl"`
	Stock       *int   `json:"stock" binding:"omitempty,gte=0"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	CategoryID  *uint   `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	Stock       *int    `json:"stock" binding:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

// ListProducts returns active products, optionally narrowed by the
// category and search query parameters.
// GET /api/products?category=1&search=laptop
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := service.ProductFilter{Search: c.Query("search")}
	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 32)
		if err != nil {
			log.Warn("Invalid category filter", map[string]interface{}{
				"category": categoryStr,
			})
			errors.BadRequest(c, errors.ValidationInvalidID, "Invalid category ID")
			return
		}
		id := uint(categoryID)
		filter.CategoryID = &id
	}

	c.JSON(http.StatusOK, ctrl.catalogService.ListProducts(filter))
}

// GetProduct returns one product by id, soft-deleted ones included.
// GET /api/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := ctrl.catalogService.GetProduct(id)
	if err != nil {
		errors.NotFound(c, errors.ProductNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product.
// POST /api/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create product request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	product := ctrl.catalogService.CreateProduct(model.NewProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct merges the provided fields over an existing product.
// PUT /api/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update product request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	product, err := ctrl.catalogService.UpdateProduct(id, model.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft-deletes a product; it disappears from listings but
// stays resolvable by id.
// DELETE /api/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteProduct(id); err != nil {
		errors.NotFound(c, errors.ProductNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
