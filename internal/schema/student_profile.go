package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// StudentProfile holds the student-facing data attached to a user account.
type StudentProfile struct {
	ent.Schema
}

func (StudentProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (StudentProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("first_name").
			NotEmpty().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("college").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Free-text college name as entered by the student"),

		field.String("degree").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("branch").
			Optional().
			Nillable().
			MaxLen(100),

		field.Int("graduation_year").
			Optional().
			Nillable(),

		field.Text("skills").
			Optional().
			Nillable(),

		field.Text("bio").
			Optional().
			Nillable(),

		// S3 object key, not a public URL
		field.String("resume_key").
			Optional().
			Nillable().
			MaxLen(512),
	}
}

func (StudentProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

func (StudentProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}
