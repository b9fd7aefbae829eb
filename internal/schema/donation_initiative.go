package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DonationInitiative is a fundraising campaign run by an organizer.
type DonationInitiative struct {
	ent.Schema
}

func (DonationInitiative) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (DonationInitiative) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("organizer_id", uuid.UUID{}).
			Comment("FK → profiles.id"),

		field.String("title"),

		field.Text("description").
			Default(""),

		field.Enum("category").
			Values("medical_bills", "equipment", "research", "community").
			Default("community"),

		field.Int64("goal_amount").
			Comment("Smallest currency unit"),

		field.Int64("raised_amount").
			Default(0).
			Comment("Maintained atomically as donations land"),

		field.Int("donor_count").
			Default(0),

		field.Enum("status").
			Values("active", "completed", "cancelled").
			Default("active"),

		field.Time("ends_at").
			Optional().
			Nillable(),

		field.String("image_url").
			Optional().
			Nillable(),
	}
}

func (DonationInitiative) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "category"),
		index.Fields("organizer_id"),
	}
}
