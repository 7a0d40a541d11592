package products

// SaveProductRequest is the payload for creating or replacing a product.
type SaveProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description,omitempty"`
	HSNCode     string  `json:"hsnCode,omitempty" validate:"max=20"`
	Unit        string  `json:"unit" validate:"required,max=20"`
	DefaultRate float64 `json:"defaultRate" validate:"gte=0"`
	TaxRate     float64 `json:"taxRate" validate:"gte=0,lte=100"`
}

// ListProductsRequest filters the product listing.
type ListProductsRequest struct {
	Search  string `json:"search,omitempty"`
	Page    int    `json:"page" validate:"gte=0"`
	PerPage int    `json:"perPage" validate:"gte=0,lte=200"`
}
