package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Medication is an active or historical prescription for a family member.
type Medication struct {
	ent.Schema
}

func (Medication) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Medication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id (account owner)"),

		field.UUID("member_id", uuid.UUID{}).
			Comment("FK → family_members.id"),

		field.String("name"),

		field.String("dosage").
			Comment("Free-form strength, e.g. 500mg"),

		field.Enum("frequency").
			Values("once_daily", "twice_daily", "three_times_daily", "weekly", "as_needed").
			Default("once_daily"),

		field.Strings("reminder_times").
			Optional().
			Comment("HH:MM entries in the member's local time"),

		field.Time("start_date"),

		field.Time("end_date").
			Optional().
			Nillable(),

		field.Text("instructions").
			Optional().
			Nillable(),

		field.Bool("active").
			Default(true),
	}
}

func (Medication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "active"),
		index.Fields("user_id"),
	}
}
