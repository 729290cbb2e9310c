package storage

import (
	"strings"
	"sync"
	"time"

	"github.com/shopflow/shopflow-backend/internal/app/model"
)

// MemStorage is the in-memory implementation of Storage. State is volatile:
// it lives for the process lifetime and every construction starts from the
// demo seed dataset. A single RWMutex keeps each operation atomic under
// concurrent HTTP handlers.
type MemStorage struct {
	mu         sync.RWMutex
	users      *table[model.User]
	categories *table[model.Category]
	products   *table[model.Product]
	orders     *table[model.Order]
	orderItems *table[model.OrderItem]
	cartItems  *table[model.CartItem]
	now        func() time.Time
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage builds a fresh engine pre-populated with the demo dataset.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:      newTable[model.User](),
		categories: newTable[model.Category](),
		products:   newTable[model.Product](),
		orders:     newTable[model.Order](),
		orderItems: newTable[model.OrderItem](),
		cartItems:  newTable[model.CartItem](),
		now:        time.Now,
	}
	s.seed()
	return s
}

// Users

func (s *MemStorage) GetUser(id uint) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

func (s *MemStorage) GetUserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.find(func(u model.User) bool { return u.Username == username })
}

func (s *MemStorage) GetUserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.find(func(u model.User) bool { return u.Email == email })
}

func (s *MemStorage) CreateUser(in model.NewUser) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.insert(func(id uint) model.User {
		return model.User{
			ID:        id,
			Username:  in.Username,
			Password:  in.Password,
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			IsAdmin:   false,
		}
	})
}

func (s *MemStorage) GetAllUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.all()
}

// Categories

func (s *MemStorage) GetAllCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.all()
}

func (s *MemStorage) GetCategory(id uint) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.get(id)
}

func (s *MemStorage) CreateCategory(in model.NewCategory) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.insert(func(id uint) model.Category {
		return model.Category{ID: id, Name: in.Name, Description: in.Description}
	})
}

func (s *MemStorage) UpdateCategory(id uint, in model.CategoryUpdate) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	category, ok := s.categories.get(id)
	if !ok {
		return model.Category{}, false
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = in.Description
	}
	s.categories.put(id, category)
	return category, true
}

func (s *MemStorage) DeleteCategory(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.remove(id)
}

// Products

func (s *MemStorage) GetAllProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.where(func(p model.Product) bool { return p.IsActive })
}

func (s *MemStorage) GetProduct(id uint) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.get(id)
}

func (s *MemStorage) GetProductsByCategory(categoryID uint) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.where(func(p model.Product) bool {
		return p.IsActive && p.CategoryID != nil && *p.CategoryID == categoryID
	})
}

func (s *MemStorage) SearchProducts(query string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(query)
	return s.products.where(func(p model.Product) bool {
		return p.IsActive &&
			(strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q))
	})
}

func (s *MemStorage) CreateProduct(in model.NewProduct) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return s.products.insert(func(id uint) model.Product {
		return model.Product{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			CategoryID:  in.CategoryID,
			ImageURL:    in.ImageURL,
			Stock:       stock,
			IsActive:    active,
		}
	})
}

func (s *MemStorage) UpdateProduct(id uint, in model.ProductUpdate) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products.get(id)
	if !ok {
		return model.Product{}, false
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	s.products.put(id, product)
	return product, true
}

func (s *MemStorage) DeleteProduct(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products.get(id)
	if !ok {
		return false
	}
	product.IsActive = false
	s.products.put(id, product)
	return true
}

// Orders

func (s *MemStorage) GetAllOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.all()
}

func (s *MemStorage) GetOrder(id uint) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.get(id)
}

func (s *MemStorage) GetOrdersByUser(userID uint) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.where(func(o model.Order) bool {
		return o.UserID != nil && *o.UserID == userID
	})
}

func (s *MemStorage) CreateOrder(in model.NewOrder) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := in.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	return s.orders.insert(func(id uint) model.Order {
		return model.Order{
			ID:              id,
			UserID:          in.UserID,
			Status:          status,
			Total:           in.Total,
			ShippingAddress: in.ShippingAddress,
			CreatedAt:       s.now(),
		}
	})
}

func (s *MemStorage) UpdateOrderStatus(id uint, status model.OrderStatus) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders.get(id)
	if !ok {
		return model.Order{}, false
	}
	order.Status = status
	s.orders.put(id, order)
	return order, true
}

// Order items

func (s *MemStorage) GetOrderItems(orderID uint) []model.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderItems.where(func(it model.OrderItem) bool { return it.OrderID == orderID })
}

func (s *MemStorage) CreateOrderItem(in model.NewOrderItem) model.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderItems.insert(func(id uint) model.OrderItem {
		return model.OrderItem{
			ID:        id,
			OrderID:   in.OrderID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price,
		}
	})
}

// Cart

func (s *MemStorage) GetCartItems(owners ...CartOwner) []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartItems.where(func(it model.CartItem) bool { return ownedByAny(it, owners) })
}

func (s *MemStorage) AddToCart(in NewCartItem) model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.cartItems.find(func(it model.CartItem) bool {
		return it.ProductID == in.ProductID && in.Owner.Owns(it)
	})
	if ok {
		existing.Quantity += in.Quantity
		s.cartItems.put(existing.ID, existing)
		return existing
	}
	return s.cartItems.insert(func(id uint) model.CartItem {
		item := model.CartItem{ID: id, ProductID: in.ProductID, Quantity: in.Quantity}
		in.Owner.stamp(&item)
		return item
	})
}

func (s *MemStorage) UpdateCartItem(id uint, quantity int) (model.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cartItems.get(id)
	if !ok {
		return model.CartItem{}, false
	}
	item.Quantity = quantity
	s.cartItems.put(id, item)
	return item, true
}

func (s *MemStorage) RemoveFromCart(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartItems.remove(id)
}

func (s *MemStorage) ClearCart(owners ...CartOwner) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.cartItems.where(func(it model.CartItem) bool { return ownedByAny(it, owners) }) {
		s.cartItems.remove(it.ID)
	}
	return true
}

func (s *MemStorage) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := s.products.where(func(p model.Product) bool { return p.IsActive })
	return Counts{
		Users:          s.users.size(),
		Categories:     s.categories.size(),
		Products:       s.products.size(),
		ActiveProducts: len(active),
		Orders:         s.orders.size(),
		OrderItems:     s.orderItems.size(),
		CartItems:      s.cartItems.size(),
	}
}
