package service

import (
	"errors"

	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
)

var (
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrProductUnavailable = errors.New("product is not available")
)

type CartService interface {
	GetCart(owners ...storage.CartOwner) []model.CartItemDetail
	AddToCart(owner storage.CartOwner, productID uint, quantity int) (model.CartItem, error)
	UpdateQuantity(id uint, quantity int) (model.CartItem, error)
	Remove(id uint) error
	Clear(owners ...storage.CartOwner) error
}

type cartService struct {
	store storage.Storage
}

func NewCartService(store storage.Storage) CartService {
	return &cartService{store: store}
}

func (s *cartService) GetCart(owners ...storage.CartOwner) []model.CartItemDetail {
	items := s.store.GetCartItems(owners...)
	details := make([]model.CartItemDetail, 0, len(items))
	for _, item := range items {
		detail := model.CartItemDetail{CartItem: item}
		// Soft-deleted products still resolve so existing lines render.
		if product, ok := s.store.GetProduct(item.ProductID); ok {
			detail.Product = &product
		}
		details = append(details, detail)
	}

	logger.Debug("Cart fetched", map[string]interface{}{
		"count": len(details),
	})
	return details
}

func (s *cartService) AddToCart(owner storage.CartOwner, productID uint, quantity int) (model.CartItem, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	})

	// The storage engine would happily store a dangling reference; reject
	// unknown and retired products here at the boundary instead.
	product, ok := s.store.GetProduct(productID)
	if !ok {
		logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
			"product_id": productID,
		})
		return model.CartItem{}, ErrProductNotFound
	}
	if !product.IsActive {
		logger.Warn("Cannot add to cart: product retired", map[string]interface{}{
			"product_id": productID,
		})
		return model.CartItem{}, ErrProductUnavailable
	}

	item := s.store.AddToCart(storage.NewCartItem{
		Owner:     owner,
		ProductID: productID,
		Quantity:  quantity,
	})

	logger.Info("Cart item stored", map[string]interface{}{
		"cart_item_id": item.ID,
		"quantity":     item.Quantity,
	})
	return item, nil
}

func (s *cartService) UpdateQuantity(id uint, quantity int) (model.CartItem, error) {
	item, ok := s.store.UpdateCartItem(id, quantity)
	if !ok {
		logger.Warn("Cart item update failed: not found", map[string]interface{}{
			"cart_item_id": id,
		})
		return model.CartItem{}, ErrCartItemNotFound
	}

	logger.Info("Cart item quantity updated", map[string]interface{}{
		"cart_item_id": id,
		"quantity":     quantity,
	})
	return item, nil
}

func (s *cartService) Remove(id uint) error {
	if !s.store.RemoveFromCart(id) {
		logger.Warn("Cart item removal failed: not found", map[string]interface{}{
			"cart_item_id": id,
		})
		return ErrCartItemNotFound
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"cart_item_id": id,
	})
	return nil
}

func (s *cartService) Clear(owners ...storage.CartOwner) error {
	s.store.ClearCart(owners...)
	logger.Info("Cart cleared")
	return nil
}
