package invoices

import "github.com/google/uuid"

// LineItemRequest is one document line as entered. Quantity may be
// fractional; negative or non-finite values degrade to zero rather than
// failing the save.
type LineItemRequest struct {
	Description string  `json:"description" validate:"required"`
	HSNCode     string  `json:"hsnCode,omitempty" validate:"max=20"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Unit        string  `json:"unit,omitempty" validate:"max=20"`
}

// SaveInvoiceRequest creates a document or replaces one wholesale; there
// are no partial updates. Freight is the raw user-entered string — blank
// or malformed input reads as zero.
type SaveInvoiceRequest struct {
	DocumentType    string           `json:"documentType" validate:"required,oneof='Tax Invoice' 'Proforma Invoice' 'Quotation'"`
	Date            string           `json:"date" validate:"required,datetime=2006-01-02"`
	BuyerID         uuid.UUID        `json:"buyerId" validate:"required"`
	ConsigneeID     *uuid.UUID       `json:"consigneeId,omitempty"`
	Lines           []LineItemRequest `json:"lines" validate:"required,min=1,dive"`
	Freight         string           `json:"freight,omitempty"`
	TaxRatePercent  float64          `json:"taxRatePercent,omitempty" validate:"gte=0,lte=100"`
	EWayBillNo      string           `json:"eWayBillNo,omitempty" validate:"max=20"`
	VehicleNo       string           `json:"vehicleNo,omitempty" validate:"max=20"`
	DispatchDocNo   string           `json:"dispatchDocNo,omitempty" validate:"max=50"`
	ModeOfPayment   string           `json:"modeOfPayment,omitempty" validate:"max=50"`
	TermsOfDelivery string           `json:"termsOfDelivery,omitempty"`
}

// ListInvoicesRequest filters the document listing.
type ListInvoicesRequest struct {
	DocumentType string     `json:"documentType,omitempty"`
	BuyerID      *uuid.UUID `json:"buyerId,omitempty"`
	DateFrom     string     `json:"dateFrom,omitempty"`
	DateTo       string     `json:"dateTo,omitempty"`
	Page         int        `json:"page" validate:"gte=0"`
	PerPage      int        `json:"perPage" validate:"gte=0,lte=200"`
}
