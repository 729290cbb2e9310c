package model

type Category struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type NewCategory struct {
	Name        string
	Description *string
}

// CategoryUpdate is a partial update: nil fields keep their prior values.
type CategoryUpdate struct {
	Name        *string
	Description *string
}
