// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/companyprofile"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CompanyProfileUpdate is the builder for updating CompanyProfile entities.
type CompanyProfileUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyProfileMutation
}

// Where appends a list predicates to the CompanyProfileUpdate builder.
func (_u *CompanyProfileUpdate) Where(ps ...predicate.CompanyProfile) *CompanyProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyProfileUpdate) SetUpdatedAt(v time.Time) *CompanyProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CompanyProfileUpdate) SetUserID(v uuid.UUID) *CompanyProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableUserID(v *uuid.UUID) *CompanyProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *CompanyProfileUpdate) SetCompanyName(v string) *CompanyProfileUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableCompanyName(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *CompanyProfileUpdate) SetIndustry(v string) *CompanyProfileUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableIndustry(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *CompanyProfileUpdate) ClearIndustry() *CompanyProfileUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *CompanyProfileUpdate) SetWebsite(v string) *CompanyProfileUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableWebsite(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *CompanyProfileUpdate) ClearWebsite() *CompanyProfileUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetLocation sets the "location" field.
func (_u *CompanyProfileUpdate) SetLocation(v string) *CompanyProfileUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableLocation(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CompanyProfileUpdate) ClearLocation() *CompanyProfileUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CompanyProfileUpdate) SetDescription(v string) *CompanyProfileUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableDescription(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CompanyProfileUpdate) ClearDescription() *CompanyProfileUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *CompanyProfileUpdate) SetContactPhone(v string) *CompanyProfileUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableContactPhone(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *CompanyProfileUpdate) ClearContactPhone() *CompanyProfileUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *CompanyProfileUpdate) SetLogoKey(v string) *CompanyProfileUpdate {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableLogoKey(v *string) *CompanyProfileUpdate {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *CompanyProfileUpdate) ClearLogoKey() *CompanyProfileUpdate {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *CompanyProfileUpdate) SetApproved(v bool) *CompanyProfileUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableApproved(v *bool) *CompanyProfileUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *CompanyProfileUpdate) SetApprovedAt(v time.Time) *CompanyProfileUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *CompanyProfileUpdate) SetNillableApprovedAt(v *time.Time) *CompanyProfileUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *CompanyProfileUpdate) ClearApprovedAt() *CompanyProfileUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CompanyProfileUpdate) SetUser(v *User) *CompanyProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the CompanyProfileMutation object of the builder.
func (_u *CompanyProfileUpdate) Mutation() *CompanyProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CompanyProfileUpdate) ClearUser() *CompanyProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := companyprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyProfileUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := companyprofile.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Industry(); ok {
		if err := companyprofile.IndustryValidator(v); err != nil {
			return &ValidationError{Name: "industry", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.industry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Website(); ok {
		if err := companyprofile.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.website": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := companyprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactPhone(); ok {
		if err := companyprofile.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.contact_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogoKey(); ok {
		if err := companyprofile.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.logo_key": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CompanyProfile.user"`)
	}
	return nil
}

func (_u *CompanyProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyprofile.Table, companyprofile.Columns, sqlgraph.NewFieldSpec(companyprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(companyprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(companyprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(companyprofile.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(companyprofile.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(companyprofile.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(companyprofile.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(companyprofile.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(companyprofile.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(companyprofile.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(companyprofile.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(companyprofile.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(companyprofile.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(companyprofile.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(companyprofile.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(companyprofile.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(companyprofile.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(companyprofile.FieldApprovedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   companyprofile.UserTable,
			Columns: []string{companyprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   companyprofile.UserTable,
			Columns: []string{companyprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyProfileUpdateOne is the builder for updating a single CompanyProfile entity.
type CompanyProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyProfileUpdateOne) SetUpdatedAt(v time.Time) *CompanyProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CompanyProfileUpdateOne) SetUserID(v uuid.UUID) *CompanyProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *CompanyProfileUpdateOne) SetCompanyName(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableCompanyName(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *CompanyProfileUpdateOne) SetIndustry(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableIndustry(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *CompanyProfileUpdateOne) ClearIndustry() *CompanyProfileUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *CompanyProfileUpdateOne) SetWebsite(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableWebsite(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *CompanyProfileUpdateOne) ClearWebsite() *CompanyProfileUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetLocation sets the "location" field.
func (_u *CompanyProfileUpdateOne) SetLocation(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableLocation(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CompanyProfileUpdateOne) ClearLocation() *CompanyProfileUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CompanyProfileUpdateOne) SetDescription(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableDescription(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CompanyProfileUpdateOne) ClearDescription() *CompanyProfileUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *CompanyProfileUpdateOne) SetContactPhone(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableContactPhone(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *CompanyProfileUpdateOne) ClearContactPhone() *CompanyProfileUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *CompanyProfileUpdateOne) SetLogoKey(v string) *CompanyProfileUpdateOne {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableLogoKey(v *string) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *CompanyProfileUpdateOne) ClearLogoKey() *CompanyProfileUpdateOne {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *CompanyProfileUpdateOne) SetApproved(v bool) *CompanyProfileUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableApproved(v *bool) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *CompanyProfileUpdateOne) SetApprovedAt(v time.Time) *CompanyProfileUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *CompanyProfileUpdateOne) SetNillableApprovedAt(v *time.Time) *CompanyProfileUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *CompanyProfileUpdateOne) ClearApprovedAt() *CompanyProfileUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CompanyProfileUpdateOne) SetUser(v *User) *CompanyProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the CompanyProfileMutation object of the builder.
func (_u *CompanyProfileUpdateOne) Mutation() *CompanyProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CompanyProfileUpdateOne) ClearUser() *CompanyProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the CompanyProfileUpdate builder.
func (_u *CompanyProfileUpdateOne) Where(ps ...predicate.CompanyProfile) *CompanyProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyProfileUpdateOne) Select(field string, fields ...string) *CompanyProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompanyProfile entity.
func (_u *CompanyProfileUpdateOne) Save(ctx context.Context) (*CompanyProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyProfileUpdateOne) SaveX(ctx context.Context) *CompanyProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := companyprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyProfileUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := companyprofile.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Industry(); ok {
		if err := companyprofile.IndustryValidator(v); err != nil {
			return &ValidationError{Name: "industry", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.industry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Website(); ok {
		if err := companyprofile.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.website": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := companyprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactPhone(); ok {
		if err := companyprofile.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.contact_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogoKey(); ok {
		if err := companyprofile.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.logo_key": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CompanyProfile.user"`)
	}
	return nil
}

func (_u *CompanyProfileUpdateOne) sqlSave(ctx context.Context) (_node *CompanyProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyprofile.Table, companyprofile.Columns, sqlgraph.NewFieldSpec(companyprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CompanyProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, companyprofile.FieldID)
		for _, f := range fields {
			if !companyprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != companyprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(companyprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(companyprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(companyprofile.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(companyprofile.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(companyprofile.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(companyprofile.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(companyprofile.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(companyprofile.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(companyprofile.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(companyprofile.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(companyprofile.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(companyprofile.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(companyprofile.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(companyprofile.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(companyprofile.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(companyprofile.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(companyprofile.FieldApprovedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   companyprofile.UserTable,
			Columns: []string{companyprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   companyprofile.UserTable,
			Columns: []string{companyprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CompanyProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
