package parties

// CreatePartyRequest is the payload for creating a party.
type CreatePartyRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Type            string `json:"type" validate:"required,oneof=buyer consignee"`
	GSTIN           string `json:"gstin,omitempty" validate:"max=20"`
	State           string `json:"state,omitempty" validate:"max=100"`
	StateCode       string `json:"stateCode,omitempty" validate:"max=10"`
	Address         string `json:"address,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
}

// UpdatePartyRequest replaces a party's mutable fields.
type UpdatePartyRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Type            string `json:"type" validate:"required,oneof=buyer consignee"`
	GSTIN           string `json:"gstin,omitempty" validate:"max=20"`
	State           string `json:"state,omitempty" validate:"max=100"`
	StateCode       string `json:"stateCode,omitempty" validate:"max=10"`
	Address         string `json:"address,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
}

// ListPartiesRequest filters the party listing.
type ListPartiesRequest struct {
	Search  string `json:"search,omitempty"`
	Page    int    `json:"page" validate:"gte=0"`
	PerPage int    `json:"perPage" validate:"gte=0,lte=200"`
}
