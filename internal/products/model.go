package products

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry used to pre-fill invoice lines. Invoices copy
// its values at entry time and never reference it by id.
type Product struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	HSNCode     string    `json:"hsnCode,omitempty"`
	Unit        string    `json:"unit"`
	DefaultRate float64   `json:"defaultRate"`
	TaxRate     float64   `json:"taxRate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
