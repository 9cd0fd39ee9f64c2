// Code generated by ent, DO NOT EDIT.

package collegeprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldUserID, v))
}

// CollegeName applies equality check predicate on the "college_name" field. It's identical to CollegeNameEQ.
func CollegeName(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldCollegeName, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldLocation, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldWebsite, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldDescription, v))
}

// Accreditation applies equality check predicate on the "accreditation" field. It's identical to AccreditationEQ.
func Accreditation(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldAccreditation, v))
}

// ContactPhone applies equality check predicate on the "contact_phone" field. It's identical to ContactPhoneEQ.
func ContactPhone(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldContactPhone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// CollegeNameEQ applies the EQ predicate on the "college_name" field.
func CollegeNameEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldCollegeName, v))
}

// CollegeNameNEQ applies the NEQ predicate on the "college_name" field.
func CollegeNameNEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldCollegeName, v))
}

// CollegeNameIn applies the In predicate on the "college_name" field.
func CollegeNameIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldCollegeName, vs...))
}

// CollegeNameNotIn applies the NotIn predicate on the "college_name" field.
func CollegeNameNotIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldCollegeName, vs...))
}

// CollegeNameGT applies the GT predicate on the "college_name" field.
func CollegeNameGT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldCollegeName, v))
}

// CollegeNameGTE applies the GTE predicate on the "college_name" field.
func CollegeNameGTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldCollegeName, v))
}

// CollegeNameLT applies the LT predicate on the "college_name" field.
func CollegeNameLT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldCollegeName, v))
}

// CollegeNameLTE applies the LTE predicate on the "college_name" field.
func CollegeNameLTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldCollegeName, v))
}

// CollegeNameContains applies the Contains predicate on the "college_name" field.
func CollegeNameContains(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContains(FieldCollegeName, v))
}

// CollegeNameHasPrefix applies the HasPrefix predicate on the "college_name" field.
func CollegeNameHasPrefix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasPrefix(FieldCollegeName, v))
}

// CollegeNameHasSuffix applies the HasSuffix predicate on the "college_name" field.
func CollegeNameHasSuffix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasSuffix(FieldCollegeName, v))
}

// CollegeNameEqualFold applies the EqualFold predicate on the "college_name" field.
func CollegeNameEqualFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEqualFold(FieldCollegeName, v))
}

// CollegeNameContainsFold applies the ContainsFold predicate on the "college_name" field.
func CollegeNameContainsFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContainsFold(FieldCollegeName, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContainsFold(FieldLocation, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContainsFold(FieldWebsite, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContainsFold(FieldDescription, v))
}

// AccreditationEQ applies the EQ predicate on the "accreditation" field.
func AccreditationEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldAccreditation, v))
}

// AccreditationNEQ applies the NEQ predicate on the "accreditation" field.
func AccreditationNEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldAccreditation, v))
}

// AccreditationIn applies the In predicate on the "accreditation" field.
func AccreditationIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldAccreditation, vs...))
}

// AccreditationNotIn applies the NotIn predicate on the "accreditation" field.
func AccreditationNotIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldAccreditation, vs...))
}

// AccreditationGT applies the GT predicate on the "accreditation" field.
func AccreditationGT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldAccreditation, v))
}

// AccreditationGTE applies the GTE predicate on the "accreditation" field.
func AccreditationGTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldAccreditation, v))
}

// AccreditationLT applies the LT predicate on the "accreditation" field.
func AccreditationLT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldAccreditation, v))
}

// AccreditationLTE applies the LTE predicate on the "accreditation" field.
func AccreditationLTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldAccreditation, v))
}

// AccreditationContains applies the Contains predicate on the "accreditation" field.
func AccreditationContains(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContains(FieldAccreditation, v))
}

// AccreditationHasPrefix applies the HasPrefix predicate on the "accreditation" field.
func AccreditationHasPrefix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasPrefix(FieldAccreditation, v))
}

// AccreditationHasSuffix applies the HasSuffix predicate on the "accreditation" field.
func AccreditationHasSuffix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasSuffix(FieldAccreditation, v))
}

// AccreditationIsNil applies the IsNil predicate on the "accreditation" field.
func AccreditationIsNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIsNull(FieldAccreditation))
}

// AccreditationNotNil applies the NotNil predicate on the "accreditation" field.
func AccreditationNotNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotNull(FieldAccreditation))
}

// AccreditationEqualFold applies the EqualFold predicate on the "accreditation" field.
func AccreditationEqualFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEqualFold(FieldAccreditation, v))
}

// AccreditationContainsFold applies the ContainsFold predicate on the "accreditation" field.
func AccreditationContainsFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContainsFold(FieldAccreditation, v))
}

// ContactPhoneEQ applies the EQ predicate on the "contact_phone" field.
func ContactPhoneEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEQ(FieldContactPhone, v))
}

// ContactPhoneNEQ applies the NEQ predicate on the "contact_phone" field.
func ContactPhoneNEQ(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNEQ(FieldContactPhone, v))
}

// ContactPhoneIn applies the In predicate on the "contact_phone" field.
func ContactPhoneIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIn(FieldContactPhone, vs...))
}

// ContactPhoneNotIn applies the NotIn predicate on the "contact_phone" field.
func ContactPhoneNotIn(vs ...string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotIn(FieldContactPhone, vs...))
}

// ContactPhoneGT applies the GT predicate on the "contact_phone" field.
func ContactPhoneGT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGT(FieldContactPhone, v))
}

// ContactPhoneGTE applies the GTE predicate on the "contact_phone" field.
func ContactPhoneGTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldGTE(FieldContactPhone, v))
}

// ContactPhoneLT applies the LT predicate on the "contact_phone" field.
func ContactPhoneLT(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLT(FieldContactPhone, v))
}

// ContactPhoneLTE applies the LTE predicate on the "contact_phone" field.
func ContactPhoneLTE(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldLTE(FieldContactPhone, v))
}

// ContactPhoneContains applies the Contains predicate on the "contact_phone" field.
func ContactPhoneContains(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContains(FieldContactPhone, v))
}

// ContactPhoneHasPrefix applies the HasPrefix predicate on the "contact_phone" field.
func ContactPhoneHasPrefix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasPrefix(FieldContactPhone, v))
}

// ContactPhoneHasSuffix applies the HasSuffix predicate on the "contact_phone" field.
func ContactPhoneHasSuffix(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldHasSuffix(FieldContactPhone, v))
}

// ContactPhoneIsNil applies the IsNil predicate on the "contact_phone" field.
func ContactPhoneIsNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldIsNull(FieldContactPhone))
}

// ContactPhoneNotNil applies the NotNil predicate on the "contact_phone" field.
func ContactPhoneNotNil() predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldNotNull(FieldContactPhone))
}

// ContactPhoneEqualFold applies the EqualFold predicate on the "contact_phone" field.
func ContactPhoneEqualFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldEqualFold(FieldContactPhone, v))
}

// ContactPhoneContainsFold applies the ContainsFold predicate on the "contact_phone" field.
func ContactPhoneContainsFold(v string) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.FieldContainsFold(FieldContactPhone, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CollegeProfile {
	return predicate.CollegeProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CollegeProfile {
	return predicate.CollegeProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollegeProfile) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollegeProfile) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollegeProfile) predicate.CollegeProfile {
	return predicate.CollegeProfile(sql.NotPredicates(p))
}
