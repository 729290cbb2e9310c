// Package storage is the exclusive owner of all entity state in the
// ShopFlow backend: users, categories, products, orders, order items and
// cart items. Operations are atomic per call; absence is reported with a
// false second return, never with an error.
package storage

import "github.com/shopflow/shopflow-backend/internal/app/model"

// NewCartItem carries the fields for adding a product to a cart. Owner may
// be zero, in which case the stored line belongs to nobody.
type NewCartItem struct {
	Owner     CartOwner
	ProductID uint
	Quantity  int
}

// Counts is a point-in-time snapshot of table sizes, used by the stats
// scheduler.
type Counts struct {
	Users          int `json:"users"`
	Categories     int `json:"categories"`
	Products       int `json:"products"`
	ActiveProducts int `json:"activeProducts"`
	Orders         int `json:"orders"`
	OrderItems     int `json:"orderItems"`
	CartItems      int `json:"cartItems"`
}

// Storage is the storage engine boundary consumed by the service layer.
type Storage interface {
	// Users
	GetUser(id uint) (model.User, bool)
	GetUserByUsername(username string) (model.User, bool)
	GetUserByEmail(email string) (model.User, bool)
	// CreateUser always stores a regular (non-admin) user.
	CreateUser(in model.NewUser) model.User
	GetAllUsers() []model.User

	// Categories
	GetAllCategories() []model.Category
	GetCategory(id uint) (model.Category, bool)
	CreateCategory(in model.NewCategory) model.Category
	UpdateCategory(id uint, in model.CategoryUpdate) (model.Category, bool)
	// DeleteCategory hard-removes the record. Products keep their now
	// dangling category reference.
	DeleteCategory(id uint) bool

	// Products
	// GetAllProducts returns active products only.
	GetAllProducts() []model.Product
	// GetProduct resolves any product, soft-deleted ones included.
	GetProduct(id uint) (model.Product, bool)
	GetProductsByCategory(categoryID uint) []model.Product
	// SearchProducts matches query as a case-insensitive substring of an
	// active product's name or description. An empty query matches every
	// active product.
	SearchProducts(query string) []model.Product
	CreateProduct(in model.NewProduct) model.Product
	UpdateProduct(id uint, in model.ProductUpdate) (model.Product, bool)
	// DeleteProduct soft-deletes: the record stays resolvable by GetProduct
	// with IsActive false.
	DeleteProduct(id uint) bool

	// Orders
	GetAllOrders() []model.Order
	GetOrder(id uint) (model.Order, bool)
	GetOrdersByUser(userID uint) []model.Order
	CreateOrder(in model.NewOrder) model.Order
	// UpdateOrderStatus replaces the status label verbatim. Membership in
	// the recognized status set is the caller's concern.
	UpdateOrderStatus(id uint, status model.OrderStatus) (model.Order, bool)

	// Order items
	GetOrderItems(orderID uint) []model.OrderItem
	CreateOrderItem(in model.NewOrderItem) model.OrderItem

	// Cart
	// GetCartItems returns items belonging to any of the given owners.
	GetCartItems(owners ...CartOwner) []model.CartItem
	// AddToCart merges into an existing line with the same product and
	// owner by incrementing its quantity; otherwise it inserts a new line.
	AddToCart(in NewCartItem) model.CartItem
	UpdateCartItem(id uint, quantity int) (model.CartItem, bool)
	RemoveFromCart(id uint) bool
	// ClearCart removes every item belonging to any of the given owners
	// and always reports success.
	ClearCart(owners ...CartOwner) bool

	Counts() Counts
}
