package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is an in-app message delivered to a user's inbox.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.Enum("kind").
			Values("appointment", "medication", "blood", "donation", "workshop", "system").
			Default("system"),

		field.String("title"),

		field.Text("body").
			Default(""),

		field.JSON("data", map[string]string{}).
			Optional().
			Comment("Deep-link payload, e.g. appointment_id"),

		field.Bool("read").
			Default(false),

		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read", "created_at"),
	}
}
