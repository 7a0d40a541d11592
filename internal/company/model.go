package company

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the tenant's own business identity: one per tenant, created
// during onboarding and edited through settings. Its state code is one
// half of every jurisdiction comparison.
type Profile struct {
	TenantID  uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	GSTIN     string    `json:"gstin,omitempty"`
	State     string    `json:"state,omitempty"`
	StateCode string    `json:"stateCode,omitempty"`
	BankName  string    `json:"bankName,omitempty"`
	AccountNo string    `json:"accountNo,omitempty"`
	IFSC      string    `json:"ifsc,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
