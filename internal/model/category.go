package model

// Category groups items by kind (shirts, shoes, ...).
type Category struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Comments *string `json:"comments"`
}

// CategoryCreate is the request body for creating a category.
type CategoryCreate struct {
	Name     string  `json:"name"`
	Comments *string `json:"comments"`
}

func (in *CategoryCreate) Validate() error {
	if isBlank(in.Name) {
		return &ValidationError{Field: "name", Message: "required"}
	}
	return nil
}

// CategoryUpdate is the request body for a partial category update.
type CategoryUpdate struct {
	Name     Optional[string] `json:"name"`
	Comments Optional[string] `json:"comments"`
}

func (in *CategoryUpdate) Validate() error {
	if in.Name.Set && (in.Name.Null || isBlank(in.Name.Value)) {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	return nil
}
