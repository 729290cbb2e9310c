package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/errors"
	"github.com/shopflow/shopflow-backend/internal/middleware"
	"github.com/shopflow/shopflow-backend/internal/storage"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type AddToCartRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UserID    *uint   `json:"userId"`
	SessionID *string `json:"sessionId"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// cartOwners resolves the owner criteria for reads and clears: an explicit
// userId query plus the guest session (query parameter or cookie, resolved
// by the session middleware). When both are present items of either owner
// match.
func cartOwners(c *gin.Context) []storage.CartOwner {
	var owners []storage.CartOwner
	if userStr := c.Query("userId"); userStr != "" {
		if userID, err := strconv.ParseUint(userStr, 10, 32); err == nil {
			owners = append(owners, storage.OwnerUser(uint(userID)))
		}
	}
	if sessionID, ok := middleware.GetSessionID(c); ok {
		owners = append(owners, storage.OwnerSession(sessionID))
	}
	return owners
}

// GetCart returns the cart items of the requesting owner, each enriched
// with its product.
// GET /api/cart?sessionId=...
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.cartService.GetCart(cartOwners(c)...))
}

// AddToCart adds a product to the cart, merging into an existing line for
// the same product and owner.
// POST /api/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	// A user id in the payload wins over the guest session.
	var owner storage.CartOwner
	switch {
	case req.UserID != nil:
		owner = storage.OwnerUser(*req.UserID)
	case req.SessionID != nil:
		owner = storage.OwnerSession(*req.SessionID)
	default:
		if sessionID, ok := middleware.GetSessionID(c); ok {
			owner = storage.OwnerSession(sessionID)
		}
	}

	item, err := ctrl.cartService.AddToCart(owner, req.ProductID, req.Quantity)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		if stderrors.Is(err, service.ErrProductUnavailable) {
			errors.BadRequest(c, errors.ProductUnavailable, "Product is no longer available")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateCartItem replaces a cart line's quantity.
// PUT /api/cart/:id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"cart_item_id": id,
			"error":        err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	item, err := ctrl.cartService.UpdateQuantity(id, req.Quantity)
	if err != nil {
		errors.NotFound(c, errors.CartItemNotFound, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveFromCart deletes one cart line.
// DELETE /api/cart/:id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.cartService.Remove(id); err != nil {
		errors.NotFound(c, errors.CartItemNotFound, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully"})
}

// ClearCart deletes every cart line of the requesting owner.
// DELETE /api/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.Clear(cartOwners(c)...); err != nil {
		errors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
