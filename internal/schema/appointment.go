package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a confirmed booking against a time slot. Fee and coverage
// are snapshotted at booking time so later catalog edits never change what
// the patient was quoted.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → profiles.id (booking account)"),

		field.UUID("member_id", uuid.UUID{}).
			Comment("FK → family_members.id (who the visit is for)"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("time_slot_id", uuid.UUID{}).
			Unique().
			Comment("FK → time_slots.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("visit_type").
			Values("in_person", "video").
			Default("in_person"),

		field.Enum("status").
			Values("scheduled", "confirmed", "in_progress", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Enum("payment_status").
			Values("unpaid", "partially_paid", "paid", "refunded").
			Default("unpaid"),

		field.Int64("paid_amount").
			Default(0),

		field.String("booking_code").
			Unique().
			Comment("Short code shown at the front desk"),

		field.Text("symptoms").
			Optional().
			Nillable(),

		field.Int64("consultation_fee").
			Comment("Snapshot of the doctor's fee at booking"),

		field.Int64("covered_amount").
			Default(0),

		field.Int64("payable_amount"),

		field.String("insurance_provider").
			Optional().
			Nillable().
			Comment("Snapshot of the insurer the coverage was computed against"),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.String("cancellation_reason").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "start_time"),
		index.Fields("doctor_id", "start_time"),
		index.Fields("status", "start_time"),
	}
}
