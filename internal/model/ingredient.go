package model

// Ingredient represents an entry in the pre-seeded ingredient catalog.
type Ingredient struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
