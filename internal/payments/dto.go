package payments

import "github.com/google/uuid"

// SavePaymentRequest creates or wholly replaces a payment. Unlike
// document amounts, a payment amount is strict: zero or negative values
// are rejected rather than degraded.
type SavePaymentRequest struct {
	PartyID     uuid.UUID `json:"partyId" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Mode        string    `json:"mode" validate:"required,oneof='Bank Transfer' 'Cash' 'Cheque' 'UPI' 'Adjustment'"`
	ReferenceNo string    `json:"referenceNo,omitempty" validate:"max=50"`
	Description string    `json:"description,omitempty"`
}

// ListPaymentsRequest filters the payment listing.
type ListPaymentsRequest struct {
	PartyID  *uuid.UUID `json:"partyId,omitempty"`
	DateFrom string     `json:"dateFrom,omitempty"`
	DateTo   string     `json:"dateTo,omitempty"`
	Page     int        `json:"page" validate:"gte=0"`
	PerPage  int        `json:"perPage" validate:"gte=0,lte=200"`
}
