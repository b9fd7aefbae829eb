package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TimeSlot is a bookable window on a doctor's calendar.
type TimeSlot struct {
	ent.Schema
}

func (TimeSlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TimeSlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("available", "booked", "blocked").
			Default("available"),
	}
}

func (TimeSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_time").Unique(),
		index.Fields("doctor_id", "status", "start_time"),
	}
}
