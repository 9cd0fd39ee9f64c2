// Code generated by ent, DO NOT EDIT.

package collegestudent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldUpdatedAt, v))
}

// CollegeID applies equality check predicate on the "college_id" field. It's identical to CollegeIDEQ.
func CollegeID(v uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldCollegeID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldStudentID, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldVerifiedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLTE(FieldUpdatedAt, v))
}

// CollegeIDEQ applies the EQ predicate on the "college_id" field.
func CollegeIDEQ(v uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldCollegeID, v))
}

// CollegeIDNEQ applies the NEQ predicate on the "college_id" field.
func CollegeIDNEQ(v uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldCollegeID, v))
}

// CollegeIDIn applies the In predicate on the "college_id" field.
func CollegeIDIn(vs ...uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldCollegeID, vs...))
}

// CollegeIDNotIn applies the NotIn predicate on the "college_id" field.
func CollegeIDNotIn(vs ...uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldCollegeID, vs...))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldStudentID, vs...))
}

// VerificationStatusEQ applies the EQ predicate on the "verification_status" field.
func VerificationStatusEQ(v VerificationStatus) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldVerificationStatus, v))
}

// VerificationStatusNEQ applies the NEQ predicate on the "verification_status" field.
func VerificationStatusNEQ(v VerificationStatus) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldVerificationStatus, v))
}

// VerificationStatusIn applies the In predicate on the "verification_status" field.
func VerificationStatusIn(vs ...VerificationStatus) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldVerificationStatus, vs...))
}

// VerificationStatusNotIn applies the NotIn predicate on the "verification_status" field.
func VerificationStatusNotIn(vs ...VerificationStatus) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldVerificationStatus, vs...))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.FieldNotNull(FieldVerifiedAt))
}

// HasCollege applies the HasEdge predicate on the "college" edge.
func HasCollege() predicate.CollegeStudent {
	return predicate.CollegeStudent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CollegeTable, CollegeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCollegeWith applies the HasEdge predicate on the "college" edge with a given conditions (other predicates).
func HasCollegeWith(preds ...predicate.User) predicate.CollegeStudent {
	return predicate.CollegeStudent(func(s *sql.Selector) {
		step := newCollegeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.CollegeStudent {
	return predicate.CollegeStudent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.User) predicate.CollegeStudent {
	return predicate.CollegeStudent(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollegeStudent) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollegeStudent) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollegeStudent) predicate.CollegeStudent {
	return predicate.CollegeStudent(sql.NotPredicates(p))
}
