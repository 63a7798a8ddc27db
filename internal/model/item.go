package model

import "time"

// Item is a single piece of clothing.
type Item struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CategoryID int64     `json:"category_id"`
	LocationID *int64    `json:"location_id"`
	Color      *string   `json:"color"`
	Fit        *string   `json:"fit"`
	Brand      *string   `json:"brand"`
	Notes      *string   `json:"notes"`
	Season     *string   `json:"season"`
	Rating     *int      `json:"rating"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	Tags       []Tag     `json:"tags"`
}

// Tag is a free-form label shared between items.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating bounds.
const (
	RatingMin = 1
	RatingMax = 5
)

// ItemCreate is the request body for creating an item.
type ItemCreate struct {
	Name       string   `json:"name"`
	CategoryID int64    `json:"category_id"`
	LocationID *int64   `json:"location_id"`
	Color      *string  `json:"color"`
	Fit        *string  `json:"fit"`
	Brand      *string  `json:"brand"`
	Notes      *string  `json:"notes"`
	Season     *string  `json:"season"`
	Rating     *int     `json:"rating"`
	ImageURL   *string  `json:"image_url"`
	Tags       []string `json:"tags"`
}

// Validate checks required fields and value ranges.
func (in *ItemCreate) Validate() error {
	if isBlank(in.Name) {
		return &ValidationError{Field: "name", Message: "required"}
	}
	if in.CategoryID <= 0 {
		return &ValidationError{Field: "category_id", Message: "required"}
	}
	if in.Rating != nil {
		if err := validateRating(*in.Rating); err != nil {
			return err
		}
	}
	return nil
}

// ItemUpdate is the request body for a partial item update.
// Omitted fields are left unchanged; null clears nullable fields.
type ItemUpdate struct {
	Name       Optional[string]   `json:"name"`
	CategoryID Optional[int64]    `json:"category_id"`
	LocationID Optional[int64]    `json:"location_id"`
	Color      Optional[string]   `json:"color"`
	Fit        Optional[string]   `json:"fit"`
	Brand      Optional[string]   `json:"brand"`
	Notes      Optional[string]   `json:"notes"`
	Season     Optional[string]   `json:"season"`
	Rating     Optional[int]      `json:"rating"`
	ImageURL   Optional[string]   `json:"image_url"`
	Tags       Optional[[]string] `json:"tags"`
}

// Validate rejects nulls on required fields and out-of-range values.
func (in *ItemUpdate) Validate() error {
	if in.Name.Set && (in.Name.Null || isBlank(in.Name.Value)) {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if in.CategoryID.Set && (in.CategoryID.Null || in.CategoryID.Value <= 0) {
		return &ValidationError{Field: "category_id", Message: "cannot be empty"}
	}
	if in.Rating.Present() {
		if err := validateRating(in.Rating.Value); err != nil {
			return err
		}
	}
	return nil
}

func validateRating(r int) error {
	if r < RatingMin || r > RatingMax {
		return &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	return nil
}
