// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStudentID, v))
}

// InternshipID applies equality check predicate on the "internship_id" field. It's identical to InternshipIDEQ.
func InternshipID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInternshipID, v))
}

// CoverLetter applies equality check predicate on the "cover_letter" field. It's identical to CoverLetterEQ.
func CoverLetter(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCoverLetter, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAppliedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStudentID, vs...))
}

// InternshipIDEQ applies the EQ predicate on the "internship_id" field.
func InternshipIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInternshipID, v))
}

// InternshipIDNEQ applies the NEQ predicate on the "internship_id" field.
func InternshipIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldInternshipID, v))
}

// InternshipIDIn applies the In predicate on the "internship_id" field.
func InternshipIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldInternshipID, vs...))
}

// InternshipIDNotIn applies the NotIn predicate on the "internship_id" field.
func InternshipIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldInternshipID, vs...))
}

// CoverLetterEQ applies the EQ predicate on the "cover_letter" field.
func CoverLetterEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCoverLetter, v))
}

// CoverLetterNEQ applies the NEQ predicate on the "cover_letter" field.
func CoverLetterNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCoverLetter, v))
}

// CoverLetterIn applies the In predicate on the "cover_letter" field.
func CoverLetterIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCoverLetter, vs...))
}

// CoverLetterNotIn applies the NotIn predicate on the "cover_letter" field.
func CoverLetterNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCoverLetter, vs...))
}

// CoverLetterGT applies the GT predicate on the "cover_letter" field.
func CoverLetterGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCoverLetter, v))
}

// CoverLetterGTE applies the GTE predicate on the "cover_letter" field.
func CoverLetterGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCoverLetter, v))
}

// CoverLetterLT applies the LT predicate on the "cover_letter" field.
func CoverLetterLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCoverLetter, v))
}

// CoverLetterLTE applies the LTE predicate on the "cover_letter" field.
func CoverLetterLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCoverLetter, v))
}

// CoverLetterContains applies the Contains predicate on the "cover_letter" field.
func CoverLetterContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldCoverLetter, v))
}

// CoverLetterHasPrefix applies the HasPrefix predicate on the "cover_letter" field.
func CoverLetterHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldCoverLetter, v))
}

// CoverLetterHasSuffix applies the HasSuffix predicate on the "cover_letter" field.
func CoverLetterHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldCoverLetter, v))
}

// CoverLetterIsNil applies the IsNil predicate on the "cover_letter" field.
func CoverLetterIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldCoverLetter))
}

// CoverLetterNotNil applies the NotNil predicate on the "cover_letter" field.
func CoverLetterNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldCoverLetter))
}

// CoverLetterEqualFold applies the EqualFold predicate on the "cover_letter" field.
func CoverLetterEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldCoverLetter, v))
}

// CoverLetterContainsFold applies the ContainsFold predicate on the "cover_letter" field.
func CoverLetterContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldCoverLetter, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldAppliedAt))
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.User) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInternship applies the HasEdge predicate on the "internship" edge.
func HasInternship() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, InternshipTable, InternshipColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInternshipWith applies the HasEdge predicate on the "internship" edge with a given conditions (other predicates).
func HasInternshipWith(preds ...predicate.Internship) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newInternshipStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
