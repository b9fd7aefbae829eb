package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EmergencyContact is a person to call on behalf of an account holder.
type EmergencyContact struct {
	ent.Schema
}

func (EmergencyContact) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (EmergencyContact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.String("full_name"),

		field.String("phone").
			Comment("E.164 normalized phone number"),

		field.String("relationship").
			Default(""),

		field.Bool("is_primary").
			Default(false).
			Comment("At most one per user; setting primary clears the others"),
	}
}

func (EmergencyContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_primary"),
	}
}
