package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/errors"
	"github.com/shopflow/shopflow-backend/internal/middleware"
)

type CategoryController struct {
	catalogService service.CatalogService
}

func NewCategoryController(catalogService service.CatalogService) *CategoryController {
	return &CategoryController{catalogService: catalogService}
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ListCategories returns every category.
// GET /api/categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.catalogService.ListCategories())
}

// GetCategory returns one category by id.
// GET /api/categories/:id
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := ctrl.catalogService.GetCategory(id)
	if err != nil {
		errors.NotFound(c, errors.CategoryNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a category.
// POST /api/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create category request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	category := ctrl.catalogService.CreateCategory(model.NewCategory{
		Name:        req.Name,
		Description: req.Description,
	})
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory merges the provided fields over an existing category.
// PUT /api/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update category request", map[string]interface{}{
			"category_id": id,
			"error":       err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(id, model.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrCategoryNotFound) {
			errors.NotFound(c, errors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		errors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory hard-removes a category.
// DELETE /api/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteCategory(id); err != nil {
		errors.NotFound(c, errors.CategoryNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
