package dto

type AddressPayload struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

type FamilyMemberPayload struct {
	Name string `json:"name"`
	NIC  string `json:"nic"`
}

type CreateCustomerRequest struct {
	Name          string                `json:"name" validate:"required"`
	Dob           string                `json:"dob" validate:"required"`
	NIC           string                `json:"nic" validate:"required"`
	Mobiles       []string              `json:"mobiles"`
	Addresses     []AddressPayload      `json:"addresses"`
	FamilyMembers []FamilyMemberPayload `json:"familyMembers"`
}
type UpdateCustomerRequest = CreateCustomerRequest
