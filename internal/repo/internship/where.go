// Code generated by ent, DO NOT EDIT.

package internship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldCompanyID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldDescription, v))
}

// Requirements applies equality check predicate on the "requirements" field. It's identical to RequirementsEQ.
func Requirements(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldRequirements, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldLocation, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldDuration, v))
}

// Stipend applies equality check predicate on the "stipend" field. It's identical to StipendEQ.
func Stipend(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldStipend, v))
}

// ApplicationDeadline applies equality check predicate on the "application_deadline" field. It's identical to ApplicationDeadlineEQ.
func ApplicationDeadline(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldApplicationDeadline, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldCompanyID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Internship {
	return predicate.Internship(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Internship {
	return predicate.Internship(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContainsFold(FieldDescription, v))
}

// RequirementsEQ applies the EQ predicate on the "requirements" field.
func RequirementsEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldRequirements, v))
}

// RequirementsNEQ applies the NEQ predicate on the "requirements" field.
func RequirementsNEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldRequirements, v))
}

// RequirementsIn applies the In predicate on the "requirements" field.
func RequirementsIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldRequirements, vs...))
}

// RequirementsNotIn applies the NotIn predicate on the "requirements" field.
func RequirementsNotIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldRequirements, vs...))
}

// RequirementsGT applies the GT predicate on the "requirements" field.
func RequirementsGT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldRequirements, v))
}

// RequirementsGTE applies the GTE predicate on the "requirements" field.
func RequirementsGTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldRequirements, v))
}

// RequirementsLT applies the LT predicate on the "requirements" field.
func RequirementsLT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldRequirements, v))
}

// RequirementsLTE applies the LTE predicate on the "requirements" field.
func RequirementsLTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldRequirements, v))
}

// RequirementsContains applies the Contains predicate on the "requirements" field.
func RequirementsContains(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContains(FieldRequirements, v))
}

// RequirementsHasPrefix applies the HasPrefix predicate on the "requirements" field.
func RequirementsHasPrefix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasPrefix(FieldRequirements, v))
}

// RequirementsHasSuffix applies the HasSuffix predicate on the "requirements" field.
func RequirementsHasSuffix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasSuffix(FieldRequirements, v))
}

// RequirementsIsNil applies the IsNil predicate on the "requirements" field.
func RequirementsIsNil() predicate.Internship {
	return predicate.Internship(sql.FieldIsNull(FieldRequirements))
}

// RequirementsNotNil applies the NotNil predicate on the "requirements" field.
func RequirementsNotNil() predicate.Internship {
	return predicate.Internship(sql.FieldNotNull(FieldRequirements))
}

// RequirementsEqualFold applies the EqualFold predicate on the "requirements" field.
func RequirementsEqualFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEqualFold(FieldRequirements, v))
}

// RequirementsContainsFold applies the ContainsFold predicate on the "requirements" field.
func RequirementsContainsFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContainsFold(FieldRequirements, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Internship {
	return predicate.Internship(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Internship {
	return predicate.Internship(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContainsFold(FieldLocation, v))
}

// WorkModeEQ applies the EQ predicate on the "work_mode" field.
func WorkModeEQ(v WorkMode) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldWorkMode, v))
}

// WorkModeNEQ applies the NEQ predicate on the "work_mode" field.
func WorkModeNEQ(v WorkMode) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldWorkMode, v))
}

// WorkModeIn applies the In predicate on the "work_mode" field.
func WorkModeIn(vs ...WorkMode) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldWorkMode, vs...))
}

// WorkModeNotIn applies the NotIn predicate on the "work_mode" field.
func WorkModeNotIn(vs ...WorkMode) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldWorkMode, vs...))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationIsNil applies the IsNil predicate on the "duration" field.
func DurationIsNil() predicate.Internship {
	return predicate.Internship(sql.FieldIsNull(FieldDuration))
}

// DurationNotNil applies the NotNil predicate on the "duration" field.
func DurationNotNil() predicate.Internship {
	return predicate.Internship(sql.FieldNotNull(FieldDuration))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContainsFold(FieldDuration, v))
}

// StipendEQ applies the EQ predicate on the "stipend" field.
func StipendEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldStipend, v))
}

// StipendNEQ applies the NEQ predicate on the "stipend" field.
func StipendNEQ(v string) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldStipend, v))
}

// StipendIn applies the In predicate on the "stipend" field.
func StipendIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldStipend, vs...))
}

// StipendNotIn applies the NotIn predicate on the "stipend" field.
func StipendNotIn(vs ...string) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldStipend, vs...))
}

// StipendGT applies the GT predicate on the "stipend" field.
func StipendGT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldStipend, v))
}

// StipendGTE applies the GTE predicate on the "stipend" field.
func StipendGTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldStipend, v))
}

// StipendLT applies the LT predicate on the "stipend" field.
func StipendLT(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldStipend, v))
}

// StipendLTE applies the LTE predicate on the "stipend" field.
func StipendLTE(v string) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldStipend, v))
}

// StipendContains applies the Contains predicate on the "stipend" field.
func StipendContains(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContains(FieldStipend, v))
}

// StipendHasPrefix applies the HasPrefix predicate on the "stipend" field.
func StipendHasPrefix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasPrefix(FieldStipend, v))
}

// StipendHasSuffix applies the HasSuffix predicate on the "stipend" field.
func StipendHasSuffix(v string) predicate.Internship {
	return predicate.Internship(sql.FieldHasSuffix(FieldStipend, v))
}

// StipendIsNil applies the IsNil predicate on the "stipend" field.
func StipendIsNil() predicate.Internship {
	return predicate.Internship(sql.FieldIsNull(FieldStipend))
}

// StipendNotNil applies the NotNil predicate on the "stipend" field.
func StipendNotNil() predicate.Internship {
	return predicate.Internship(sql.FieldNotNull(FieldStipend))
}

// StipendEqualFold applies the EqualFold predicate on the "stipend" field.
func StipendEqualFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldEqualFold(FieldStipend, v))
}

// StipendContainsFold applies the ContainsFold predicate on the "stipend" field.
func StipendContainsFold(v string) predicate.Internship {
	return predicate.Internship(sql.FieldContainsFold(FieldStipend, v))
}

// ApplicationDeadlineEQ applies the EQ predicate on the "application_deadline" field.
func ApplicationDeadlineEQ(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldApplicationDeadline, v))
}

// ApplicationDeadlineNEQ applies the NEQ predicate on the "application_deadline" field.
func ApplicationDeadlineNEQ(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldApplicationDeadline, v))
}

// ApplicationDeadlineIn applies the In predicate on the "application_deadline" field.
func ApplicationDeadlineIn(vs ...time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldApplicationDeadline, vs...))
}

// ApplicationDeadlineNotIn applies the NotIn predicate on the "application_deadline" field.
func ApplicationDeadlineNotIn(vs ...time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldApplicationDeadline, vs...))
}

// ApplicationDeadlineGT applies the GT predicate on the "application_deadline" field.
func ApplicationDeadlineGT(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldGT(FieldApplicationDeadline, v))
}

// ApplicationDeadlineGTE applies the GTE predicate on the "application_deadline" field.
func ApplicationDeadlineGTE(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldGTE(FieldApplicationDeadline, v))
}

// ApplicationDeadlineLT applies the LT predicate on the "application_deadline" field.
func ApplicationDeadlineLT(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldLT(FieldApplicationDeadline, v))
}

// ApplicationDeadlineLTE applies the LTE predicate on the "application_deadline" field.
func ApplicationDeadlineLTE(v time.Time) predicate.Internship {
	return predicate.Internship(sql.FieldLTE(FieldApplicationDeadline, v))
}

// ApplicationDeadlineIsNil applies the IsNil predicate on the "application_deadline" field.
func ApplicationDeadlineIsNil() predicate.Internship {
	return predicate.Internship(sql.FieldIsNull(FieldApplicationDeadline))
}

// ApplicationDeadlineNotNil applies the NotNil predicate on the "application_deadline" field.
func ApplicationDeadlineNotNil() predicate.Internship {
	return predicate.Internship(sql.FieldNotNull(FieldApplicationDeadline))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Internship {
	return predicate.Internship(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Internship {
	return predicate.Internship(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Internship {
	return predicate.Internship(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Internship {
	return predicate.Internship(sql.FieldNotIn(FieldStatus, vs...))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Internship {
	return predicate.Internship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.User) predicate.Internship {
	return predicate.Internship(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Internship) predicate.Internship {
	return predicate.Internship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Internship) predicate.Internship {
	return predicate.Internship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Internship) predicate.Internship {
	return predicate.Internship(sql.NotPredicates(p))
}
