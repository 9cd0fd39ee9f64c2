// Code generated by ent, DO NOT EDIT.

package studentprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUserID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldLastName, v))
}

// College applies equality check predicate on the "college" field. It's identical to CollegeEQ.
func College(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCollege, v))
}

// Degree applies equality check predicate on the "degree" field. It's identical to DegreeEQ.
func Degree(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldDegree, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldBranch, v))
}

// GraduationYear applies equality check predicate on the "graduation_year" field. It's identical to GraduationYearEQ.
func GraduationYear(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldGraduationYear, v))
}

// Skills applies equality check predicate on the "skills" field. It's identical to SkillsEQ.
func Skills(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldSkills, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldBio, v))
}

// ResumeKey applies equality check predicate on the "resume_key" field. It's identical to ResumeKeyEQ.
func ResumeKey(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldResumeKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldLastName, v))
}

// CollegeEQ applies the EQ predicate on the "college" field.
func CollegeEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCollege, v))
}

// CollegeNEQ applies the NEQ predicate on the "college" field.
func CollegeNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCollege, v))
}

// CollegeIn applies the In predicate on the "college" field.
func CollegeIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCollege, vs...))
}

// CollegeNotIn applies the NotIn predicate on the "college" field.
func CollegeNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCollege, vs...))
}

// CollegeGT applies the GT predicate on the "college" field.
func CollegeGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCollege, v))
}

// CollegeGTE applies the GTE predicate on the "college" field.
func CollegeGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCollege, v))
}

// CollegeLT applies the LT predicate on the "college" field.
func CollegeLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCollege, v))
}

// CollegeLTE applies the LTE predicate on the "college" field.
func CollegeLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCollege, v))
}

// CollegeContains applies the Contains predicate on the "college" field.
func CollegeContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldCollege, v))
}

// CollegeHasPrefix applies the HasPrefix predicate on the "college" field.
func CollegeHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldCollege, v))
}

// CollegeHasSuffix applies the HasSuffix predicate on the "college" field.
func CollegeHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldCollege, v))
}

// CollegeIsNil applies the IsNil predicate on the "college" field.
func CollegeIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldCollege))
}

// CollegeNotNil applies the NotNil predicate on the "college" field.
func CollegeNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldCollege))
}

// CollegeEqualFold applies the EqualFold predicate on the "college" field.
func CollegeEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldCollege, v))
}

// CollegeContainsFold applies the ContainsFold predicate on the "college" field.
func CollegeContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldCollege, v))
}

// DegreeEQ applies the EQ predicate on the "degree" field.
func DegreeEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldDegree, v))
}

// DegreeNEQ applies the NEQ predicate on the "degree" field.
func DegreeNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldDegree, v))
}

// DegreeIn applies the In predicate on the "degree" field.
func DegreeIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldDegree, vs...))
}

// DegreeNotIn applies the NotIn predicate on the "degree" field.
func DegreeNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldDegree, vs...))
}

// DegreeGT applies the GT predicate on the "degree" field.
func DegreeGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldDegree, v))
}

// DegreeGTE applies the GTE predicate on the "degree" field.
func DegreeGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldDegree, v))
}

// DegreeLT applies the LT predicate on the "degree" field.
func DegreeLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldDegree, v))
}

// DegreeLTE applies the LTE predicate on the "degree" field.
func DegreeLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldDegree, v))
}

// DegreeContains applies the Contains predicate on the "degree" field.
func DegreeContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldDegree, v))
}

// DegreeHasPrefix applies the HasPrefix predicate on the "degree" field.
func DegreeHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldDegree, v))
}

// DegreeHasSuffix applies the HasSuffix predicate on the "degree" field.
func DegreeHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldDegree, v))
}

// DegreeIsNil applies the IsNil predicate on the "degree" field.
func DegreeIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldDegree))
}

// DegreeNotNil applies the NotNil predicate on the "degree" field.
func DegreeNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldDegree))
}

// DegreeEqualFold applies the EqualFold predicate on the "degree" field.
func DegreeEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldDegree, v))
}

// DegreeContainsFold applies the ContainsFold predicate on the "degree" field.
func DegreeContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldDegree, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchIsNil applies the IsNil predicate on the "branch" field.
func BranchIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldBranch))
}

// BranchNotNil applies the NotNil predicate on the "branch" field.
func BranchNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldBranch))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldBranch, v))
}

// GraduationYearEQ applies the EQ predicate on the "graduation_year" field.
func GraduationYearEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldGraduationYear, v))
}

// GraduationYearNEQ applies the NEQ predicate on the "graduation_year" field.
func GraduationYearNEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldGraduationYear, v))
}

// GraduationYearIn applies the In predicate on the "graduation_year" field.
func GraduationYearIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldGraduationYear, vs...))
}

// GraduationYearNotIn applies the NotIn predicate on the "graduation_year" field.
func GraduationYearNotIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldGraduationYear, vs...))
}

// GraduationYearGT applies the GT predicate on the "graduation_year" field.
func GraduationYearGT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldGraduationYear, v))
}

// GraduationYearGTE applies the GTE predicate on the "graduation_year" field.
func GraduationYearGTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldGraduationYear, v))
}

// GraduationYearLT applies the LT predicate on the "graduation_year" field.
func GraduationYearLT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldGraduationYear, v))
}

// GraduationYearLTE applies the LTE predicate on the "graduation_year" field.
func GraduationYearLTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldGraduationYear, v))
}

// GraduationYearIsNil applies the IsNil predicate on the "graduation_year" field.
func GraduationYearIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldGraduationYear))
}

// GraduationYearNotNil applies the NotNil predicate on the "graduation_year" field.
func GraduationYearNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldGraduationYear))
}

// SkillsEQ applies the EQ predicate on the "skills" field.
func SkillsEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldSkills, v))
}

// SkillsNEQ applies the NEQ predicate on the "skills" field.
func SkillsNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldSkills, v))
}

// SkillsIn applies the In predicate on the "skills" field.
func SkillsIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldSkills, vs...))
}

// SkillsNotIn applies the NotIn predicate on the "skills" field.
func SkillsNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldSkills, vs...))
}

// SkillsGT applies the GT predicate on the "skills" field.
func SkillsGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldSkills, v))
}

// SkillsGTE applies the GTE predicate on the "skills" field.
func SkillsGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldSkills, v))
}

// SkillsLT applies the LT predicate on the "skills" field.
func SkillsLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldSkills, v))
}

// SkillsLTE applies the LTE predicate on the "skills" field.
func SkillsLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldSkills, v))
}

// SkillsContains applies the Contains predicate on the "skills" field.
func SkillsContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldSkills, v))
}

// SkillsHasPrefix applies the HasPrefix predicate on the "skills" field.
func SkillsHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldSkills, v))
}

// SkillsHasSuffix applies the HasSuffix predicate on the "skills" field.
func SkillsHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldSkills, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldSkills))
}

// SkillsEqualFold applies the EqualFold predicate on the "skills" field.
func SkillsEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldSkills, v))
}

// SkillsContainsFold applies the ContainsFold predicate on the "skills" field.
func SkillsContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldSkills, v))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldBio, v))
}

// ResumeKeyEQ applies the EQ predicate on the "resume_key" field.
func ResumeKeyEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldResumeKey, v))
}

// ResumeKeyNEQ applies the NEQ predicate on the "resume_key" field.
func ResumeKeyNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldResumeKey, v))
}

// ResumeKeyIn applies the In predicate on the "resume_key" field.
func ResumeKeyIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldResumeKey, vs...))
}

// ResumeKeyNotIn applies the NotIn predicate on the "resume_key" field.
func ResumeKeyNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldResumeKey, vs...))
}

// ResumeKeyGT applies the GT predicate on the "resume_key" field.
func ResumeKeyGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldResumeKey, v))
}

// ResumeKeyGTE applies the GTE predicate on the "resume_key" field.
func ResumeKeyGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldResumeKey, v))
}

// ResumeKeyLT applies the LT predicate on the "resume_key" field.
func ResumeKeyLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldResumeKey, v))
}

// ResumeKeyLTE applies the LTE predicate on the "resume_key" field.
func ResumeKeyLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldResumeKey, v))
}

// ResumeKeyContains applies the Contains predicate on the "resume_key" field.
func ResumeKeyContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldResumeKey, v))
}

// ResumeKeyHasPrefix applies the HasPrefix predicate on the "resume_key" field.
func ResumeKeyHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldResumeKey, v))
}

// ResumeKeyHasSuffix applies the HasSuffix predicate on the "resume_key" field.
func ResumeKeyHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldResumeKey, v))
}

// ResumeKeyIsNil applies the IsNil predicate on the "resume_key" field.
func ResumeKeyIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldResumeKey))
}

// ResumeKeyNotNil applies the NotNil predicate on the "resume_key" field.
func ResumeKeyNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldResumeKey))
}

// ResumeKeyEqualFold applies the EqualFold predicate on the "resume_key" field.
func ResumeKeyEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldResumeKey, v))
}

// ResumeKeyContainsFold applies the ContainsFold predicate on the "resume_key" field.
func ResumeKeyContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldResumeKey, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.StudentProfile {
	return predicate.StudentProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.StudentProfile {
	return predicate.StudentProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.NotPredicates(p))
}
