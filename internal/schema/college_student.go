package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CollegeStudent associates a student with a college, pending until the
// college verifies the association.
type CollegeStudent struct {
	ent.Schema
}

func (CollegeStudent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CollegeStudent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("college_id", uuid.UUID{}).
			Comment("FK → users.id of the college"),

		field.UUID("student_id", uuid.UUID{}).
			Comment("FK → users.id of the student"),

		field.Enum("verification_status").
			Values("pending", "verified", "rejected").
			Default("pending"),

		field.Time("verified_at").
			Optional().
			Nillable(),
	}
}

func (CollegeStudent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("college_id", "student_id").Unique(),
		index.Fields("college_id", "verification_status"),
	}
}

func (CollegeStudent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("college", User.Type).
			Unique().
			Required().
			Field("college_id"),
		edge.To("student", User.Type).
			Unique().
			Required().
			Field("student_id"),
	}
}
