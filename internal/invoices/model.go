package invoices

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/docnum"
	"github.com/ledgerline/ledgerline/internal/tax"
)

// LineItem is one row of a sales document. Amount is derived from
// quantity times rate on every save; the stored value exists for display
// and is never an input to calculation.
type LineItem struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsnCode,omitempty"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Unit        string  `json:"unit,omitempty"`
	Amount      float64 `json:"amount"`
}

// PartySnapshot freezes a party's details as they stood when the document
// was saved. Historical documents stay stable when the party record is
// edited later.
type PartySnapshot struct {
	PartyID         uuid.UUID `json:"partyId"`
	Name            string    `json:"name"`
	GSTIN           string    `json:"gstin,omitempty"`
	State           string    `json:"state,omitempty"`
	StateCode       string    `json:"stateCode,omitempty"`
	Address         string    `json:"address,omitempty"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
}

// Invoice is a sales document: tax invoice, proforma invoice or
// quotation, all sharing one shape. Raw lines, freight and the
// jurisdiction snapshot are the source of truth; Totals is a cache
// recomputed and overwritten on every save.
type Invoice struct {
	ID              uuid.UUID      `json:"id"`
	TenantID        uuid.UUID      `json:"-"`
	DocumentType    docnum.Type    `json:"documentType"`
	Number          string         `json:"number"`
	Date            time.Time      `json:"date"`
	Buyer           PartySnapshot  `json:"buyer"`
	Consignee       *PartySnapshot `json:"consignee,omitempty"`
	Lines           []LineItem     `json:"lines"`
	Freight         float64        `json:"freight"`
	TaxRatePercent  float64        `json:"taxRatePercent"`
	CompanyState    string         `json:"companyStateCode,omitempty"`
	EWayBillNo      string         `json:"eWayBillNo,omitempty"`
	VehicleNo       string         `json:"vehicleNo,omitempty"`
	DispatchDocNo   string         `json:"dispatchDocNo,omitempty"`
	ModeOfPayment   string         `json:"modeOfPayment,omitempty"`
	TermsOfDelivery string         `json:"termsOfDelivery,omitempty"`
	Totals          tax.Result     `json:"totals"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// taxLines converts stored lines into calculation inputs.
func (inv *Invoice) taxLines() []tax.Line {
	lines := make([]tax.Line, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = tax.Line{Quantity: l.Quantity, Rate: l.Rate}
	}
	return lines
}

// Recompute refreshes derived line amounts and the cached totals from the
// raw inputs.
func (inv *Invoice) Recompute() {
	for i := range inv.Lines {
		inv.Lines[i].Amount = tax.LineAmount(tax.Line{Quantity: inv.Lines[i].Quantity, Rate: inv.Lines[i].Rate})
	}
	inv.Totals = tax.Compute(inv.taxLines(), inv.Freight, inv.CompanyState, inv.Buyer.StateCode, inv.TaxRatePercent)
}
