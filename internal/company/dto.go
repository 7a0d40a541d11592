package company

// SaveProfileRequest creates or replaces the tenant's company profile.
type SaveProfileRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Address   string `json:"address,omitempty"`
	GSTIN     string `json:"gstin,omitempty" validate:"max=20"`
	State     string `json:"state,omitempty" validate:"max=100"`
	StateCode string `json:"stateCode,omitempty" validate:"max=10"`
	BankName  string `json:"bankName,omitempty" validate:"max=100"`
	AccountNo string `json:"accountNo,omitempty" validate:"max=30"`
	IFSC      string `json:"ifsc,omitempty" validate:"max=15"`
	Branch    string `json:"branch,omitempty" validate:"max=100"`
}
