package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WorkshopEnrollment ties a user to a workshop seat.
type WorkshopEnrollment struct {
	ent.Schema
}

func (WorkshopEnrollment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WorkshopEnrollment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("workshop_id", uuid.UUID{}).
			Comment("FK → workshops.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.Enum("status").
			Values("enrolled", "cancelled", "attended").
			Default("enrolled"),
	}
}

func (WorkshopEnrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workshop_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}
