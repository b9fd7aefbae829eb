package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a registered account holder.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("phone").
			Unique().
			Comment("E.164 normalized phone number"),

		field.Bool("phone_verified").
			Default(false),

		field.String("email").
			Optional().
			Nillable(),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive().
			Comment("Argon2id PHC string; nil for OTP-only accounts"),

		field.String("full_name").
			Default(""),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

		field.Enum("blood_type").
			NamedValues(
				"APositive", "A+",
				"ANegative", "A-",
				"BPositive", "B+",
				"BNegative", "B-",
				"ABPositive", "AB+",
				"ABNegative", "AB-",
				"OPositive", "O+",
				"ONegative", "O-",
			).
			Optional().
			Nillable(),

		field.String("insurance_provider").
			Optional().
			Nillable(),

		field.String("insurance_policy_encrypted").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM encrypted policy number"),

		field.String("avatar_url").
			Optional().
			Nillable(),

		field.Bool("blood_donor").
			Default(false).
			Comment("Opted in to receive compatible blood request alerts"),

		field.String("city").
			Optional().
			Nillable(),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),

		field.Time("locked_until").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "locked", "disabled").
			Default("active"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone").Unique(),
		index.Fields("blood_donor", "city"),
	}
}
