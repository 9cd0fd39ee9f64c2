package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CompanyProfile holds the company-facing data attached to a user account.
// A company cannot post internships until an admin sets approved = true.
type CompanyProfile struct {
	ent.Schema
}

func (CompanyProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CompanyProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("company_name").
			NotEmpty().
			MaxLen(255),

		field.String("industry").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("website").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("location").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("contact_phone").
			Optional().
			Nillable().
			MaxLen(20),

		// S3 object key, not a public URL
		field.String("logo_key").
			Optional().
			Nillable().
			MaxLen(512),

		field.Bool("approved").
			Default(false),

		field.Time("approved_at").
			Optional().
			Nillable(),
	}
}

func (CompanyProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("approved"),
	}
}

func (CompanyProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}
