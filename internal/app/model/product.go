package model

// Product is a catalog entry. Price is an exact-precision decimal string;
// it is never parsed into a float anywhere in the backend.
type Product struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CategoryID  *uint  `json:"categoryId"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
	IsActive    bool   `json:"isActive"`
}

// NewProduct carries the fields for product creation. Stock defaults to 0
// and IsActive to true when nil.
type NewProduct struct {
	Name        string
	Description string
	Price       string
	CategoryID  *uint
	ImageURL    string
	Stock       *int
	IsActive    *bool
}

// ProductUpdate is a partial update: nil fields keep their prior values.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *string
	CategoryID  *uint
	ImageURL    *string
	Stock       *int
	IsActive    *bool
}
