// Code generated by ent, DO NOT EDIT.

package companyprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldUserID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldCompanyName, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldIndustry, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldWebsite, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldLocation, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldDescription, v))
}

// ContactPhone applies equality check predicate on the "contact_phone" field. It's identical to ContactPhoneEQ.
func ContactPhone(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldContactPhone, v))
}

// LogoKey applies equality check predicate on the "logo_key" field. It's identical to LogoKeyEQ.
func LogoKey(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldLogoKey, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldApproved, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldApprovedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldCompanyName, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryIsNil applies the IsNil predicate on the "industry" field.
func IndustryIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldIndustry))
}

// IndustryNotNil applies the NotNil predicate on the "industry" field.
func IndustryNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldIndustry))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldIndustry, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldWebsite, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldLocation, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldDescription, v))
}

// ContactPhoneEQ applies the EQ predicate on the "contact_phone" field.
func ContactPhoneEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldContactPhone, v))
}

// ContactPhoneNEQ applies the NEQ predicate on the "contact_phone" field.
func ContactPhoneNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldContactPhone, v))
}

// ContactPhoneIn applies the In predicate on the "contact_phone" field.
func ContactPhoneIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldContactPhone, vs...))
}

// ContactPhoneNotIn applies the NotIn predicate on the "contact_phone" field.
func ContactPhoneNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldContactPhone, vs...))
}

// ContactPhoneGT applies the GT predicate on the "contact_phone" field.
func ContactPhoneGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldContactPhone, v))
}

// ContactPhoneGTE applies the GTE predicate on the "contact_phone" field.
func ContactPhoneGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldContactPhone, v))
}

// ContactPhoneLT applies the LT predicate on the "contact_phone" field.
func ContactPhoneLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldContactPhone, v))
}

// ContactPhoneLTE applies the LTE predicate on the "contact_phone" field.
func ContactPhoneLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldContactPhone, v))
}

// ContactPhoneContains applies the Contains predicate on the "contact_phone" field.
func ContactPhoneContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldContactPhone, v))
}

// ContactPhoneHasPrefix applies the HasPrefix predicate on the "contact_phone" field.
func ContactPhoneHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldContactPhone, v))
}

// ContactPhoneHasSuffix applies the HasSuffix predicate on the "contact_phone" field.
func ContactPhoneHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldContactPhone, v))
}

// ContactPhoneIsNil applies the IsNil predicate on the "contact_phone" field.
func ContactPhoneIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldContactPhone))
}

// ContactPhoneNotNil applies the NotNil predicate on the "contact_phone" field.
func ContactPhoneNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldContactPhone))
}

// ContactPhoneEqualFold applies the EqualFold predicate on the "contact_phone" field.
func ContactPhoneEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldContactPhone, v))
}

// ContactPhoneContainsFold applies the ContainsFold predicate on the "contact_phone" field.
func ContactPhoneContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldContactPhone, v))
}

// LogoKeyEQ applies the EQ predicate on the "logo_key" field.
func LogoKeyEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldLogoKey, v))
}

// LogoKeyNEQ applies the NEQ predicate on the "logo_key" field.
func LogoKeyNEQ(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldLogoKey, v))
}

// LogoKeyIn applies the In predicate on the "logo_key" field.
func LogoKeyIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldLogoKey, vs...))
}

// LogoKeyNotIn applies the NotIn predicate on the "logo_key" field.
func LogoKeyNotIn(vs ...string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldLogoKey, vs...))
}

// LogoKeyGT applies the GT predicate on the "logo_key" field.
func LogoKeyGT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldLogoKey, v))
}

// LogoKeyGTE applies the GTE predicate on the "logo_key" field.
func LogoKeyGTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldLogoKey, v))
}

// LogoKeyLT applies the LT predicate on the "logo_key" field.
func LogoKeyLT(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldLogoKey, v))
}

// LogoKeyLTE applies the LTE predicate on the "logo_key" field.
func LogoKeyLTE(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldLogoKey, v))
}

// LogoKeyContains applies the Contains predicate on the "logo_key" field.
func LogoKeyContains(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContains(FieldLogoKey, v))
}

// LogoKeyHasPrefix applies the HasPrefix predicate on the "logo_key" field.
func LogoKeyHasPrefix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasPrefix(FieldLogoKey, v))
}

// LogoKeyHasSuffix applies the HasSuffix predicate on the "logo_key" field.
func LogoKeyHasSuffix(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldHasSuffix(FieldLogoKey, v))
}

// LogoKeyIsNil applies the IsNil predicate on the "logo_key" field.
func LogoKeyIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldLogoKey))
}

// LogoKeyNotNil applies the NotNil predicate on the "logo_key" field.
func LogoKeyNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldLogoKey))
}

// LogoKeyEqualFold applies the EqualFold predicate on the "logo_key" field.
func LogoKeyEqualFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEqualFold(FieldLogoKey, v))
}

// LogoKeyContainsFold applies the ContainsFold predicate on the "logo_key" field.
func LogoKeyContainsFold(v string) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldContainsFold(FieldLogoKey, v))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldApproved, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.FieldNotNull(FieldApprovedAt))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CompanyProfile {
	return predicate.CompanyProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CompanyProfile {
	return predicate.CompanyProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompanyProfile) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompanyProfile) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompanyProfile) predicate.CompanyProfile {
	return predicate.CompanyProfile(sql.NotPredicates(p))
}
