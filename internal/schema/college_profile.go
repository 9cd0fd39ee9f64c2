package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CollegeProfile holds the college-facing data attached to a user account.
type CollegeProfile struct {
	ent.Schema
}

func (CollegeProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CollegeProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("college_name").
			NotEmpty().
			MaxLen(255),

		field.String("location").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("website").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("accreditation").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("contact_phone").
			Optional().
			Nillable().
			MaxLen(20),
	}
}

func (CollegeProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

func (CollegeProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}
