package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Internship is a posting created by an approved company.
type Internship struct {
	ent.Schema
}

func (Internship) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Internship) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("company_id", uuid.UUID{}).
			Comment("FK → users.id of the posting company"),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Text("requirements").
			Optional().
			Nillable(),

		field.String("location").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("work_mode").
			Values("onsite", "remote", "hybrid").
			Default("onsite"),

		field.String("duration").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("stipend").
			Optional().
			Nillable().
			MaxLen(100),

		field.Time("application_deadline").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("open", "closed").
			Default("open"),
	}
}

func (Internship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("status"),
	}
}

func (Internship) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("company", User.Type).
			Unique().
			Required().
			Field("company_id"),
	}
}
