package service

import (
	"errors"

	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// CheckoutItem is one line of a checkout payload. Price is the snapshot the
// client captured when the item went into the cart; it is stored verbatim.
type CheckoutItem struct {
	ProductID uint
	Quantity  int
	Price     string
}

// CheckoutInput is the full checkout payload. SessionID identifies the
// guest cart to clear after the order is placed.
type CheckoutInput struct {
	UserID          *uint
	Status          model.OrderStatus
	Total           string
	ShippingAddress string
	SessionID       *string
	Items           []CheckoutItem
}

type OrderService interface {
	Checkout(in CheckoutInput) (model.OrderDetail, error)
	ListOrders(userID *uint) []model.Order
	GetOrder(id uint) (model.OrderDetail, error)
	GetOrderItems(orderID uint) []model.OrderItemDetail
	UpdateStatus(id uint, status model.OrderStatus) (model.Order, error)
}

type orderService struct {
	store storage.Storage
}

func NewOrderService(store storage.Storage) OrderService {
	return &orderService{store: store}
}

func (s *orderService) Checkout(in CheckoutInput) (model.OrderDetail, error) {
	logger.Info("Placing order", map[string]interface{}{
		"user_id":    in.UserID,
		"total":      in.Total,
		"item_count": len(in.Items),
	})

	if len(in.Items) == 0 {
		logger.Warn("Checkout rejected: no items")
		return model.OrderDetail{}, ErrEmptyOrder
	}

	order := s.store.CreateOrder(model.NewOrder{
		UserID:          in.UserID,
		Status:          in.Status,
		Total:           in.Total,
		ShippingAddress: in.ShippingAddress,
	})

	items := make([]model.OrderItemDetail, 0, len(in.Items))
	for _, line := range in.Items {
		item := s.store.CreateOrderItem(model.NewOrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
		detail := model.OrderItemDetail{OrderItem: item}
		if product, ok := s.store.GetProduct(line.ProductID); ok {
			detail.Product = &product
		}
		items = append(items, detail)
	}

	// The submitted cart is done with; clear every owner the checkout
	// identified (guest session, authenticated user, or both).
	var owners []storage.CartOwner
	if in.UserID != nil {
		owners = append(owners, storage.OwnerUser(*in.UserID))
	}
	if in.SessionID != nil {
		owners = append(owners, storage.OwnerSession(*in.SessionID))
	}
	if len(owners) > 0 {
		s.store.ClearCart(owners...)
	}

	logger.Info("Order placed", map[string]interface{}{
		"order_id":   order.ID,
		"status":     order.Status,
		"total":      order.Total,
		"item_count": len(items),
	})
	return s.detail(order, items), nil
}

func (s *orderService) ListOrders(userID *uint) []model.Order {
	if userID != nil {
		return s.store.GetOrdersByUser(*userID)
	}
	return s.store.GetAllOrders()
}

func (s *orderService) GetOrder(id uint) (model.OrderDetail, error) {
	order, ok := s.store.GetOrder(id)
	if !ok {
		return model.OrderDetail{}, ErrOrderNotFound
	}
	return s.detail(order, s.GetOrderItems(order.ID)), nil
}

func (s *orderService) GetOrderItems(orderID uint) []model.OrderItemDetail {
	items := s.store.GetOrderItems(orderID)
	details := make([]model.OrderItemDetail, 0, len(items))
	for _, item := range items {
		detail := model.OrderItemDetail{OrderItem: item}
		if product, ok := s.store.GetProduct(item.ProductID); ok {
			detail.Product = &product
		}
		details = append(details, detail)
	}
	return details
}

func (s *orderService) UpdateStatus(id uint, status model.OrderStatus) (model.Order, error) {
	// The storage engine stores any label; the recognized-status check
	// lives here at the boundary.
	if !model.ValidOrderStatus(status) {
		logger.Warn("Order status update rejected: unrecognized status", map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return model.Order{}, ErrInvalidOrderStatus
	}

	order, ok := s.store.UpdateOrderStatus(id, status)
	if !ok {
		logger.Warn("Order status update failed: not found", map[string]interface{}{
			"order_id": id,
		})
		return model.Order{}, ErrOrderNotFound
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return order, nil
}

func (s *orderService) detail(order model.Order, items []model.OrderItemDetail) model.OrderDetail {
	detail := model.OrderDetail{Order: order, Items: items}
	if order.UserID != nil {
		if user, ok := s.store.GetUser(*order.UserID); ok {
			detail.User = &user
		}
	}
	return detail
}
