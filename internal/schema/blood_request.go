package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BloodRequest is a call for compatible donors.
type BloodRequest struct {
	ent.Schema
}

func (BloodRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BloodRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("requester_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.String("patient_name"),

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

		field.Int("units_needed").
			Default(1),

		field.Int("units_fulfilled").
			Default(0),

		field.String("hospital"),

		field.String("city"),

		field.Enum("urgency").
			Values("routine", "urgent", "critical").
			Default("routine"),

		field.Enum("status").
			Values("open", "matched", "fulfilled", "cancelled").
			Default("open"),

		field.String("contact_phone").
			Comment("E.164 normalized phone number"),

		field.Time("needed_by").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (BloodRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "city", "blood_type"),
		index.Fields("requester_id"),
	}
}
