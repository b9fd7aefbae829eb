package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FamilyMember is a person whose health records live under an account.
// Every account gets a self member at registration.
type FamilyMember struct {
	ent.Schema
}

func (FamilyMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (FamilyMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.String("full_name"),

		field.Enum("relationship").
			Values("self", "spouse", "child", "parent", "sibling", "other").
			Default("other"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

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
			).
			Optional().
			Nillable(),

		field.Strings("allergies").
			Optional(),

		field.Strings("conditions").
			Optional(),

		field.String("insurance_provider").
			Optional().
			Nillable(),

		field.String("insurance_policy_encrypted").
			Optional().
			Nillable().
			Sensitive(),

		field.Time("insurance_valid_until").
			Optional().
			Nillable(),

		field.Int64("insurance_coverage_amount").
			Optional().
			Nillable().
			Comment("Smallest currency unit"),

		field.String("device_name").
			Optional().
			Nillable().
			Comment("Linked smartwatch, if any"),

		field.Bool("device_connected").
			Default(false),

		field.Time("device_last_synced_at").
			Optional().
			Nillable(),
	}
}

func (FamilyMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "relationship"),
	}
}
