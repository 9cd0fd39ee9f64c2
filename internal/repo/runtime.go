// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/application"
	"github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	"github.com/internlink/internlink_backend/internal/repo/collegestudent"
	"github.com/internlink/internlink_backend/internal/repo/companyprofile"
	"github.com/internlink/internlink_backend/internal/repo/internship"
	"github.com/internlink/internlink_backend/internal/repo/notification"
	"github.com/internlink/internlink_backend/internal/repo/studentprofile"
	"github.com/internlink/internlink_backend/internal/repo/user"
	"github.com/internlink/internlink_backend/internal/repo/usersession"
	"github.com/internlink/internlink_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationMixin := schema.Application{}.Mixin()
	applicationMixinFields0 := applicationMixin[0].Fields()
	_ = applicationMixinFields0
	applicationMixinFields1 := applicationMixin[1].Fields()
	_ = applicationMixinFields1
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationMixinFields1[0].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationMixinFields1[1].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationMixinFields0[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	collegeprofileMixin := schema.CollegeProfile{}.Mixin()
	collegeprofileMixinFields0 := collegeprofileMixin[0].Fields()
	_ = collegeprofileMixinFields0
	collegeprofileMixinFields1 := collegeprofileMixin[1].Fields()
	_ = collegeprofileMixinFields1
	collegeprofileFields := schema.CollegeProfile{}.Fields()
	_ = collegeprofileFields
	// collegeprofileDescCreatedAt is the schema descriptor for created_at field.
	collegeprofileDescCreatedAt := collegeprofileMixinFields1[0].Descriptor()
	// collegeprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	collegeprofile.DefaultCreatedAt = collegeprofileDescCreatedAt.Default.(func() time.Time)
	// collegeprofileDescUpdatedAt is the schema descriptor for updated_at field.
	collegeprofileDescUpdatedAt := collegeprofileMixinFields1[1].Descriptor()
	// collegeprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collegeprofile.DefaultUpdatedAt = collegeprofileDescUpdatedAt.Default.(func() time.Time)
	// collegeprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	collegeprofile.UpdateDefaultUpdatedAt = collegeprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// collegeprofileDescCollegeName is the schema descriptor for college_name field.
	collegeprofileDescCollegeName := collegeprofileFields[1].Descriptor()
	// collegeprofile.CollegeNameValidator is a validator for the "college_name" field. It is called by the builders before save.
	collegeprofile.CollegeNameValidator = func() func(string) error {
		validators := collegeprofileDescCollegeName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(college_name string) error {
			for _, fn := range fns {
				if err := fn(college_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// collegeprofileDescLocation is the schema descriptor for location field.
	collegeprofileDescLocation := collegeprofileFields[2].Descriptor()
	// collegeprofile.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	collegeprofile.LocationValidator = collegeprofileDescLocation.Validators[0].(func(string) error)
	// collegeprofileDescWebsite is the schema descriptor for website field.
	collegeprofileDescWebsite := collegeprofileFields[3].Descriptor()
	// collegeprofile.WebsiteValidator is a validator for the "website" field. It is called by the builders before save.
	collegeprofile.WebsiteValidator = collegeprofileDescWebsite.Validators[0].(func(string) error)
	// collegeprofileDescAccreditation is the schema descriptor for accreditation field.
	collegeprofileDescAccreditation := collegeprofileFields[5].Descriptor()
	// collegeprofile.AccreditationValidator is a validator for the "accreditation" field. It is called by the builders before save.
	collegeprofile.AccreditationValidator = collegeprofileDescAccreditation.Validators[0].(func(string) error)
	// collegeprofileDescContactPhone is the schema descriptor for contact_phone field.
	collegeprofileDescContactPhone := collegeprofileFields[6].Descriptor()
	// collegeprofile.ContactPhoneValidator is a validator for the "contact_phone" field. It is called by the builders before save.
	collegeprofile.ContactPhoneValidator = collegeprofileDescContactPhone.Validators[0].(func(string) error)
	// collegeprofileDescID is the schema descriptor for id field.
	collegeprofileDescID := collegeprofileMixinFields0[0].Descriptor()
	// collegeprofile.DefaultID holds the default value on creation for the id field.
	collegeprofile.DefaultID = collegeprofileDescID.Default.(func() uuid.UUID)
	collegestudentMixin := schema.CollegeStudent{}.Mixin()
	collegestudentMixinFields0 := collegestudentMixin[0].Fields()
	_ = collegestudentMixinFields0
	collegestudentMixinFields1 := collegestudentMixin[1].Fields()
	_ = collegestudentMixinFields1
	collegestudentFields := schema.CollegeStudent{}.Fields()
	_ = collegestudentFields
	// collegestudentDescCreatedAt is the schema descriptor for created_at field.
	collegestudentDescCreatedAt := collegestudentMixinFields1[0].Descriptor()
	// collegestudent.DefaultCreatedAt holds the default value on creation for the created_at field.
	collegestudent.DefaultCreatedAt = collegestudentDescCreatedAt.Default.(func() time.Time)
	// collegestudentDescUpdatedAt is the schema descriptor for updated_at field.
	collegestudentDescUpdatedAt := collegestudentMixinFields1[1].Descriptor()
	// collegestudent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collegestudent.DefaultUpdatedAt = collegestudentDescUpdatedAt.Default.(func() time.Time)
	// collegestudent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	collegestudent.UpdateDefaultUpdatedAt = collegestudentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// collegestudentDescID is the schema descriptor for id field.
	collegestudentDescID := collegestudentMixinFields0[0].Descriptor()
	// collegestudent.DefaultID holds the default value on creation for the id field.
	collegestudent.DefaultID = collegestudentDescID.Default.(func() uuid.UUID)
	companyprofileMixin := schema.CompanyProfile{}.Mixin()
	companyprofileMixinFields0 := companyprofileMixin[0].Fields()
	_ = companyprofileMixinFields0
	companyprofileMixinFields1 := companyprofileMixin[1].Fields()
	_ = companyprofileMixinFields1
	companyprofileFields := schema.CompanyProfile{}.Fields()
	_ = companyprofileFields
	// companyprofileDescCreatedAt is the schema descriptor for created_at field.
	companyprofileDescCreatedAt := companyprofileMixinFields1[0].Descriptor()
	// companyprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	companyprofile.DefaultCreatedAt = companyprofileDescCreatedAt.Default.(func() time.Time)
	// companyprofileDescUpdatedAt is the schema descriptor for updated_at field.
	companyprofileDescUpdatedAt := companyprofileMixinFields1[1].Descriptor()
	// companyprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	companyprofile.DefaultUpdatedAt = companyprofileDescUpdatedAt.Default.(func() time.Time)
	// companyprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	companyprofile.UpdateDefaultUpdatedAt = companyprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyprofileDescCompanyName is the schema descriptor for company_name field.
	companyprofileDescCompanyName := companyprofileFields[1].Descriptor()
	// companyprofile.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	companyprofile.CompanyNameValidator = func() func(string) error {
		validators := companyprofileDescCompanyName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(company_name string) error {
			for _, fn := range fns {
				if err := fn(company_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyprofileDescIndustry is the schema descriptor for industry field.
	companyprofileDescIndustry := companyprofileFields[2].Descriptor()
	// companyprofile.IndustryValidator is a validator for the "industry" field. It is called by the builders before save.
	companyprofile.IndustryValidator = companyprofileDescIndustry.Validators[0].(func(string) error)
	// companyprofileDescWebsite is the schema descriptor for website field.
	companyprofileDescWebsite := companyprofileFields[3].Descriptor()
	// companyprofile.WebsiteValidator is a validator for the "website" field. It is called by the builders before save.
	companyprofile.WebsiteValidator = companyprofileDescWebsite.Validators[0].(func(string) error)
	// companyprofileDescLocation is the schema descriptor for location field.
	companyprofileDescLocation := companyprofileFields[4].Descriptor()
	// companyprofile.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	companyprofile.LocationValidator = companyprofileDescLocation.Validators[0].(func(string) error)
	// companyprofileDescContactPhone is the schema descriptor for contact_phone field.
	companyprofileDescContactPhone := companyprofileFields[6].Descriptor()
	// companyprofile.ContactPhoneValidator is a validator for the "contact_phone" field. It is called by the builders before save.
	companyprofile.ContactPhoneValidator = companyprofileDescContactPhone.Validators[0].(func(string) error)
	// companyprofileDescLogoKey is the schema descriptor for logo_key field.
	companyprofileDescLogoKey := companyprofileFields[7].Descriptor()
	// companyprofile.LogoKeyValidator is a validator for the "logo_key" field. It is called by the builders before save.
	companyprofile.LogoKeyValidator = companyprofileDescLogoKey.Validators[0].(func(string) error)
	// companyprofileDescApproved is the schema descriptor for approved field.
	companyprofileDescApproved := companyprofileFields[8].Descriptor()
	// companyprofile.DefaultApproved holds the default value on creation for the approved field.
	companyprofile.DefaultApproved = companyprofileDescApproved.Default.(bool)
	// companyprofileDescID is the schema descriptor for id field.
	companyprofileDescID := companyprofileMixinFields0[0].Descriptor()
	// companyprofile.DefaultID holds the default value on creation for the id field.
	companyprofile.DefaultID = companyprofileDescID.Default.(func() uuid.UUID)
	internshipMixin := schema.Internship{}.Mixin()
	internshipMixinFields0 := internshipMixin[0].Fields()
	_ = internshipMixinFields0
	internshipMixinFields1 := internshipMixin[1].Fields()
	_ = internshipMixinFields1
	internshipFields := schema.Internship{}.Fields()
	_ = internshipFields
	// internshipDescCreatedAt is the schema descriptor for created_at field.
	internshipDescCreatedAt := internshipMixinFields1[0].Descriptor()
	// internship.DefaultCreatedAt holds the default value on creation for the created_at field.
	internship.DefaultCreatedAt = internshipDescCreatedAt.Default.(func() time.Time)
	// internshipDescUpdatedAt is the schema descriptor for updated_at field.
	internshipDescUpdatedAt := internshipMixinFields1[1].Descriptor()
	// internship.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	internship.DefaultUpdatedAt = internshipDescUpdatedAt.Default.(func() time.Time)
	// internship.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	internship.UpdateDefaultUpdatedAt = internshipDescUpdatedAt.UpdateDefault.(func() time.Time)
	// internshipDescTitle is the schema descriptor for title field.
	internshipDescTitle := internshipFields[1].Descriptor()
	// internship.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	internship.TitleValidator = func() func(string) error {
		validators := internshipDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// internshipDescLocation is the schema descriptor for location field.
	internshipDescLocation := internshipFields[4].Descriptor()
	// internship.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	internship.LocationValidator = internshipDescLocation.Validators[0].(func(string) error)
	// internshipDescDuration is the schema descriptor for duration field.
	internshipDescDuration := internshipFields[6].Descriptor()
	// internship.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	internship.DurationValidator = internshipDescDuration.Validators[0].(func(string) error)
	// internshipDescStipend is the schema descriptor for stipend field.
	internshipDescStipend := internshipFields[7].Descriptor()
	// internship.StipendValidator is a validator for the "stipend" field. It is called by the builders before save.
	internship.StipendValidator = internshipDescStipend.Validators[0].(func(string) error)
	// internshipDescID is the schema descriptor for id field.
	internshipDescID := internshipMixinFields0[0].Descriptor()
	// internship.DefaultID holds the default value on creation for the id field.
	internship.DefaultID = internshipDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	studentprofileMixin := schema.StudentProfile{}.Mixin()
	studentprofileMixinFields0 := studentprofileMixin[0].Fields()
	_ = studentprofileMixinFields0
	studentprofileMixinFields1 := studentprofileMixin[1].Fields()
	_ = studentprofileMixinFields1
	studentprofileFields := schema.StudentProfile{}.Fields()
	_ = studentprofileFields
	// studentprofileDescCreatedAt is the schema descriptor for created_at field.
	studentprofileDescCreatedAt := studentprofileMixinFields1[0].Descriptor()
	// studentprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	studentprofile.DefaultCreatedAt = studentprofileDescCreatedAt.Default.(func() time.Time)
	// studentprofileDescUpdatedAt is the schema descriptor for updated_at field.
	studentprofileDescUpdatedAt := studentprofileMixinFields1[1].Descriptor()
	// studentprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentprofile.DefaultUpdatedAt = studentprofileDescUpdatedAt.Default.(func() time.Time)
	// studentprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentprofile.UpdateDefaultUpdatedAt = studentprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// studentprofileDescFirstName is the schema descriptor for first_name field.
	studentprofileDescFirstName := studentprofileFields[1].Descriptor()
	// studentprofile.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	studentprofile.FirstNameValidator = func() func(string) error {
		validators := studentprofileDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentprofileDescLastName is the schema descriptor for last_name field.
	studentprofileDescLastName := studentprofileFields[2].Descriptor()
	// studentprofile.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	studentprofile.LastNameValidator = studentprofileDescLastName.Validators[0].(func(string) error)
	// studentprofileDescCollege is the schema descriptor for college field.
	studentprofileDescCollege := studentprofileFields[3].Descriptor()
	// studentprofile.CollegeValidator is a validator for the "college" field. It is called by the builders before save.
	studentprofile.CollegeValidator = studentprofileDescCollege.Validators[0].(func(string) error)
	// studentprofileDescDegree is the schema descriptor for degree field.
	studentprofileDescDegree := studentprofileFields[4].Descriptor()
	// studentprofile.DegreeValidator is a validator for the "degree" field. It is called by the builders before save.
	studentprofile.DegreeValidator = studentprofileDescDegree.Validators[0].(func(string) error)
	// studentprofileDescBranch is the schema descriptor for branch field.
	studentprofileDescBranch := studentprofileFields[5].Descriptor()
	// studentprofile.BranchValidator is a validator for the "branch" field. It is called by the builders before save.
	studentprofile.BranchValidator = studentprofileDescBranch.Validators[0].(func(string) error)
	// studentprofileDescResumeKey is the schema descriptor for resume_key field.
	studentprofileDescResumeKey := studentprofileFields[9].Descriptor()
	// studentprofile.ResumeKeyValidator is a validator for the "resume_key" field. It is called by the builders before save.
	studentprofile.ResumeKeyValidator = studentprofileDescResumeKey.Validators[0].(func(string) error)
	// studentprofileDescID is the schema descriptor for id field.
	studentprofileDescID := studentprofileMixinFields0[0].Descriptor()
	// studentprofile.DefaultID holds the default value on creation for the id field.
	studentprofile.DefaultID = studentprofileDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[4].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
