package payments

import (
	"time"

	"github.com/google/uuid"
)

// Mode is how a payment was received.
type Mode string

const (
	ModeBankTransfer Mode = "Bank Transfer"
	ModeCash         Mode = "Cash"
	ModeCheque       Mode = "Cheque"
	ModeUPI          Mode = "UPI"
	ModeAdjustment   Mode = "Adjustment"
)

// Payment records money received from a party. Payments are the credit
// side of the party ledger; tax invoices are the debit side.
type Payment struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"-"`
	PartyID     uuid.UUID `json:"partyId"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Mode        Mode      `json:"mode"`
	ReferenceNo string    `json:"referenceNo,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
