package importer

import (
	"strings"
	"time"

	"github.com/amathumitha2210/Customer-Management/internal/domain"
)

var dobLayouts = []string{"2006-01-02", time.RFC3339}

// parseRow validates a decoded row and normalizes it into a customer
// patch. Running this for every row before any batch is submitted keeps
// one malformed row from blocking writes for its siblings.
func parseRow(r Row) (domain.Customer, error) {
	name := strings.TrimSpace(r.Name)
	dobRaw := strings.TrimSpace(r.DOB)
	nic := strings.TrimSpace(r.NIC)
	if name == "" || dobRaw == "" || nic == "" {
		return domain.Customer{}, &domain.RowError{Line: r.Line, Row: r.raw, Reason: "missing mandatory fields"}
	}

	dob, err := parseDate(dobRaw)
	if err != nil {
		return domain.Customer{}, &domain.RowError{Line: r.Line, Row: r.raw, Reason: "invalid DOB"}
	}

	return domain.Customer{
		Name:    name,
		Dob:     dob,
		NIC:     nic,
		Mobiles: splitList(r.Mobiles),
		Addresses: []domain.Address{{
			AddressLine1: strings.TrimSpace(r.AddressLine1),
			AddressLine2: strings.TrimSpace(r.AddressLine2),
			City:         strings.TrimSpace(r.City),
			Country:      strings.TrimSpace(r.Country),
		}},
		FamilyMembers: parseFamilyMembers(r.FamilyMembers),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dobLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// splitList splits a comma-separated cell, trimming each piece and
// dropping empties. An empty cell yields an empty, non-nil slice.
func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseFamilyMembers reads the compact Name1:NIC1,Name2:NIC2 encoding.
// Entries missing either side are dropped silently rather than failing
// the row.
func parseFamilyMembers(s string) []domain.FamilyMember {
	out := []domain.FamilyMember{}
	for _, entry := range strings.Split(s, ",") {
		name, nic, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		nic = strings.TrimSpace(nic)
		if name == "" || nic == "" {
			continue
		}
		out = append(out, domain.FamilyMember{Name: name, NIC: nic})
	}
	return out
}
