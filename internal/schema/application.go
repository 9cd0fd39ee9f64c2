package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Application records a student applying to an internship.
// The (student_id, internship_id) pair is unique at the database level so
// a concurrent duplicate apply surfaces as a constraint violation.
type Application struct {
	ent.Schema
}

func (Application) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("student_id", uuid.UUID{}).
			Comment("FK → users.id of the applying student"),

		field.UUID("internship_id", uuid.UUID{}).
			Comment("FK → internships.id"),

		field.Text("cover_letter").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "shortlisted", "rejected", "selected").
			Default("pending"),

		field.Time("applied_at").
			Optional().
			Nillable().
			Immutable(),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "internship_id").Unique(),
		index.Fields("internship_id", "status"),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("student", User.Type).
			Unique().
			Required().
			Field("student_id"),
		edge.To("internship", Internship.Type).
			Unique().
			Required().
			Field("internship_id"),
	}
}
