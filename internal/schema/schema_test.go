package schema

import (
	"testing"
	"unicode"

	"entgo.io/ent"
)

// entc derives Go constant names from enum values. A value containing a rune
// that cannot appear in an identifier (blood types like "A+") must carry an
// explicit name via NamedValues or code generation fails.
func TestEnumValuesGenerateValidIdentifiers(t *testing.T) {
	schemas := []struct {
		name   string
		fields []ent.Field
	}{
		{"Appointment", Appointment{}.Fields()},
		{"BloodDonation", BloodDonation{}.Fields()},
		{"BloodRequest", BloodRequest{}.Fields()},
		{"Doctor", Doctor{}.Fields()},
		{"Donation", Donation{}.Fields()},
		{"DonationInitiative", DonationInitiative{}.Fields()},
		{"EmergencyContact", EmergencyContact{}.Fields()},
		{"FamilyMember", FamilyMember{}.Fields()},
		{"HealthMetric", HealthMetric{}.Fields()},
		{"Medication", Medication{}.Fields()},
		{"Notification", Notification{}.Fields()},
		{"Pharmacy", Pharmacy{}.Fields()},
		{"Profile", Profile{}.Fields()},
		{"TimeSlot", TimeSlot{}.Fields()},
		{"UserSession", UserSession{}.Fields()},
		{"Workshop", Workshop{}.Fields()},
		{"WorkshopEnrollment", WorkshopEnrollment{}.Fields()},
	}

	for _, s := range schemas {
		for _, f := range s.fields {
			d := f.Descriptor()
			for _, e := range d.Enums {
				name := e.N
				if name == "" {
					name = e.V
				}
				for _, r := range name {
					if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
						t.Errorf("%s.%s: enum value %q needs an explicit Go name (got %q)", s.name, d.Name, e.V, name)
						break
					}
				}
			}
		}
	}
}

func TestBloodTypeValuesStable(t *testing.T) {
	want := map[string]bool{
		"A+": true, "A-": true,
		"B+": true, "B-": true,
		"AB+": true, "AB-": true,
		"O+": true, "O-": true,
	}

	for _, fields := range [][]ent.Field{
		Profile{}.Fields(),
		FamilyMember{}.Fields(),
		BloodRequest{}.Fields(),
		BloodDonation{}.Fields(),
	} {
		found := false
		for _, f := range fields {
			d := f.Descriptor()
			if d.Name != "blood_type" {
				continue
			}
			found = true
			if len(d.Enums) != len(want) {
				t.Errorf("blood_type: got %d values, want %d", len(d.Enums), len(want))
			}
			for _, e := range d.Enums {
				if !want[e.V] {
					t.Errorf("blood_type: unexpected stored value %q", e.V)
				}
			}
		}
		if !found {
			t.Error("schema missing blood_type field")
		}
	}
}
