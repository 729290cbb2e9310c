package model

// User is a storefront account. The password is held as plain text inside
// the storage engine (inherited contract of the original system) and is
// never serialized to API clients.
type User struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
}

// NewUser carries the caller-supplied fields for user creation. There is no
// IsAdmin field: the storage engine always creates regular users.
type NewUser struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}
