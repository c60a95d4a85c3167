package dto

type CustomerResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Dob           string                `json:"dob"`
	NIC           string                `json:"nic"`
	Mobiles       []string              `json:"mobiles"`
	Addresses     []AddressPayload      `json:"addresses"`
	FamilyMembers []FamilyMemberPayload `json:"familyMembers"`
}
