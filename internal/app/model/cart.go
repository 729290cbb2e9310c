package model

// CartItem is one line of a cart. Exactly one of UserID and SessionID is
// expected to be set: UserID for an authenticated user's cart, SessionID
// for a guest session cart.
type CartItem struct {
	ID        uint    `json:"id"`
	UserID    *uint   `json:"userId"`
	SessionID *string `json:"sessionId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
}

// CartItemDetail is a cart item enriched with its product for API
// responses. Product is nil when the reference dangles.
type CartItemDetail struct {
	CartItem
	Product *Product `json:"product,omitempty"`
}
