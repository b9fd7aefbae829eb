package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Workshop is a health education session with limited capacity.
type Workshop struct {
	ent.Schema
}

func (Workshop) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Workshop) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("organizer_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.String("title"),

		field.Text("description").
			Default(""),

		field.String("topic").
			Default("").
			Comment("e.g. nutrition, first aid, mental health"),

		field.Time("starts_at"),

		field.Int("duration_minutes").
			Default(60),

		field.Int("capacity").
			Comment("Maximum enrollments; 0 means unlimited"),

		field.Int("enrolled_count").
			Default(0).
			Comment("Maintained atomically against capacity"),

		field.Bool("online").
			Default(false),

		field.String("location").
			Optional().
			Nillable(),

		field.String("meeting_url").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled").
			Default("scheduled"),
	}
}

func (Workshop) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "starts_at"),
		index.Fields("organizer_id"),
	}
}
