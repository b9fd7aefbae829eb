package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is a bookable practitioner listing.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → profiles.id when the doctor has a linked account"),

		field.String("full_name"),

		field.String("specialty").
			Comment("e.g. cardiology, dermatology, general"),

		field.String("hospital").
			Default(""),

		field.String("city").
			Default(""),

		field.Int64("consultation_fee").
			Comment("Smallest currency unit"),

		field.Strings("accepted_insurers").
			Optional().
			Comment("Insurance providers whose members get coverage"),

		field.Float("rating").
			Default(0),

		field.Int("review_count").
			Default(0),

		field.Int("years_experience").
			Default(0),

		field.Text("bio").
			Optional().
			Nillable(),

		field.String("avatar_url").
			Optional().
			Nillable(),

		field.Bool("video_visits").
			Default(false),

		field.Bool("accepting_patients").
			Default(true),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specialty", "city"),
		index.Fields("accepting_patients"),
	}
}
