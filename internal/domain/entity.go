package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is embedded in its customer document; it has no identity of
// its own beyond its position in the Addresses slice.
type Address struct {
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2" json:"addressLine2"`
	City         string `bson:"city" json:"city"`
	Country      string `bson:"country" json:"country"`
}

// FamilyMember shares the name/nic shape with Customer but is a plain
// embedded value; its NIC is not subject to the customer unique index.
type FamilyMember struct {
	Name string `bson:"name" json:"name"`
	NIC  string `bson:"nic" json:"nic"`
}

type Customer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Dob           time.Time          `bson:"dob" json:"dob"`
	NIC           string             `bson:"nic" json:"nic"`
	Mobiles       []string           `bson:"mobiles" json:"mobiles"`
	Addresses     []Address          `bson:"addresses" json:"addresses"`
	FamilyMembers []FamilyMember     `bson:"familyMembers" json:"familyMembers"`
}

// Validate checks the mandatory fields before any persistence attempt.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.NIC) == "" || c.Dob.IsZero() {
		return ErrMissingFields
	}
	return nil
}

// ImportSummary is the aggregate outcome of a bulk import: how many
// customers were newly inserted and how many existing ones were modified.
type ImportSummary struct {
	Created int64
	Updated int64
}
