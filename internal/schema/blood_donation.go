package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BloodDonation is a completed donation record. Append-only.
type BloodDonation struct {
	ent.Schema
}

func (BloodDonation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (BloodDonation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("donor_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.UUID("request_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → blood_requests.id; nil for walk-in donations"),

		field.Enum("blood_type").
			NamedValues(
				"APositive", "A+",
				"ANegative", "A-",
				"BPositive", "B+",
				"BNegative", "B-",
				"ABPositive", "AB+",
				"ABNegative", "AB-",
				"OPositive", "O+",
				"ONegative", "O-",
			),

		field.Int("units").
			Default(1),

		field.Time("donated_at"),

		field.String("location").
			Default(""),
	}
}

func (BloodDonation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("donor_id", "donated_at"),
		index.Fields("request_id"),
	}
}
