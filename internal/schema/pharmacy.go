package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pharmacy is a storefront that participates in price comparison.
type Pharmacy struct {
	ent.Schema
}

func (Pharmacy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Pharmacy) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),

		field.String("address").
			Default(""),

		field.String("city").
			Default(""),

		field.String("phone").
			Optional().
			Nillable(),

		field.Float("rating").
			Default(0),

		field.Float("distance_km").
			Default(0).
			Comment("Static distance from the city centre"),

		field.Bool("delivery_available").
			Default(false),

		field.Int("delivery_minutes").
			Default(0).
			Comment("Estimated delivery time; ignored when delivery is unavailable"),

		field.Strings("insurer_networks").
			Optional().
			Comment("Insurance providers whose members get a co-pay here"),

		field.String("opens_at").
			Default("08:00").
			Comment("HH:MM local time"),

		field.String("closes_at").
			Default("22:00").
			Comment("HH:MM local time"),

		field.Bool("open_24h").
			Default(false),
	}
}

func (Pharmacy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("city"),
	}
}
