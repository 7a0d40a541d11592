package parties

import (
	"time"

	"github.com/google/uuid"
)

// PartyType distinguishes who the party acts as on a document.
type PartyType string

const (
	PartyTypeBuyer     PartyType = "buyer"
	PartyTypeConsignee PartyType = "consignee"
)

// Party is a counterparty the tenant bills or ships to. Invoices keep an
// immutable snapshot of these fields at save time, so editing a party
// never rewrites history.
type Party struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"-"`
	Name            string    `json:"name"`
	Type            PartyType `json:"type"`
	GSTIN           string    `json:"gstin,omitempty"`
	State           string    `json:"state,omitempty"`
	StateCode       string    `json:"stateCode,omitempty"`
	Address         string    `json:"address,omitempty"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
