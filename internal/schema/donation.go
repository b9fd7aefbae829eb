package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Donation is a single contribution to an initiative. Append-only.
type Donation struct {
	ent.Schema
}

func (Donation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Donation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("initiative_id", uuid.UUID{}).
			Comment("FK → donation_initiatives.id"),

		field.UUID("donor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → profiles.id; nil when donated without an account"),

		field.Int64("amount").
			Comment("Smallest currency unit, positive"),

		field.Bool("anonymous").
			Default(false),

		field.Text("message").
			Optional().
			Nillable(),

		field.String("receipt_reference").
			Unique().
			Comment("Opaque reference printed on the emailed receipt"),
	}
}

func (Donation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("initiative_id", "created_at"),
		index.Fields("donor_id"),
	}
}
