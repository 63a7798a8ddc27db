package model

// Location is a physical place in the wardrobe (shelf, drawer, rack).
// Width, Height and the grid coordinates are layout hints for clients and
// are not validated against each other.
type Location struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Comments    *string  `json:"comments"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	GridX       *int     `json:"grid_x"`
	GridY       *int     `json:"grid_y"`
}

// LocationCreate is the request body for creating a location.
type LocationCreate struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Comments    *string  `json:"comments"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	GridX       *int     `json:"grid_x"`
	GridY       *int     `json:"grid_y"`
}

func (in *LocationCreate) Validate() error {
	if isBlank(in.Name) {
		return &ValidationError{Field: "name", Message: "required"}
	}
	return nil
}

// LocationUpdate is the request body for a partial location update.
type LocationUpdate struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Comments    Optional[string]  `json:"comments"`
	Width       Optional[float64] `json:"width"`
	Height      Optional[float64] `json:"height"`
	GridX       Optional[int]     `json:"grid_x"`
	GridY       Optional[int]     `json:"grid_y"`
}

func (in *LocationUpdate) Validate() error {
	if in.Name.Set && (in.Name.Null || isBlank(in.Name.Value)) {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	return nil
}
