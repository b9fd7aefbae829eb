package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HealthMetric is an append-only measurement for a family member.
type HealthMetric struct {
	ent.Schema
}

func (HealthMetric) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (HealthMetric) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id (account owner)"),

		field.UUID("member_id", uuid.UUID{}).
			Comment("FK → family_members.id"),

		field.Enum("metric_type").
			Values("blood_pressure", "heart_rate", "weight", "blood_glucose", "temperature", "oxygen_saturation"),

		field.Float("value").
			Comment("Primary reading (systolic for blood pressure)"),

		field.Float("value_secondary").
			Optional().
			Nillable().
			Comment("Diastolic for blood pressure; unused otherwise"),

		field.String("unit"),

		field.Time("recorded_at"),

		field.Text("note").
			Optional().
			Nillable(),
	}
}

func (HealthMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "metric_type", "recorded_at"),
		index.Fields("user_id", "recorded_at"),
	}
}
