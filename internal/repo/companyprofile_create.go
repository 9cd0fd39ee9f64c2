// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/internlink/internlink_backend/internal/repo/companyprofile"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CompanyProfileCreate is the builder for creating a CompanyProfile entity.
type CompanyProfileCreate struct {
	config
	mutation *CompanyProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyProfileCreate) SetCreatedAt(v time.Time) *CompanyProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableCreatedAt(v *time.Time) *CompanyProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyProfileCreate) SetUpdatedAt(v time.Time) *CompanyProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableUpdatedAt(v *time.Time) *CompanyProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CompanyProfileCreate) SetUserID(v uuid.UUID) *CompanyProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *CompanyProfileCreate) SetCompanyName(v string) *CompanyProfileCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *CompanyProfileCreate) SetIndustry(v string) *CompanyProfileCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableIndustry(v *string) *CompanyProfileCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *CompanyProfileCreate) SetWebsite(v string) *CompanyProfileCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableWebsite(v *string) *CompanyProfileCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *CompanyProfileCreate) SetLocation(v string) *CompanyProfileCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableLocation(v *string) *CompanyProfileCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CompanyProfileCreate) SetDescription(v string) *CompanyProfileCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableDescription(v *string) *CompanyProfileCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *CompanyProfileCreate) SetContactPhone(v string) *CompanyProfileCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableContactPhone(v *string) *CompanyProfileCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetLogoKey sets the "logo_key" field.
func (_c *CompanyProfileCreate) SetLogoKey(v string) *CompanyProfileCreate {
	_c.mutation.SetLogoKey(v)
	return _c
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableLogoKey(v *string) *CompanyProfileCreate {
	if v != nil {
		_c.SetLogoKey(*v)
	}
	return _c
}

// SetApproved sets the "approved" field.
func (_c *CompanyProfileCreate) SetApproved(v bool) *CompanyProfileCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableApproved(v *bool) *CompanyProfileCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *CompanyProfileCreate) SetApprovedAt(v time.Time) *CompanyProfileCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableApprovedAt(v *time.Time) *CompanyProfileCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyProfileCreate) SetID(v uuid.UUID) *CompanyProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CompanyProfileCreate) SetNillableID(v *uuid.UUID) *CompanyProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CompanyProfileCreate) SetUser(v *User) *CompanyProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the CompanyProfileMutation object of the builder.
func (_c *CompanyProfileCreate) Mutation() *CompanyProfileMutation {
	return _c.mutation
}

// Save creates the CompanyProfile in the database.
func (_c *CompanyProfileCreate) Save(ctx context.Context) (*CompanyProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyProfileCreate) SaveX(ctx context.Context) *CompanyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := companyprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := companyprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Approved(); !ok {
		v := companyprofile.DefaultApproved
		_c.mutation.SetApproved(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := companyprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CompanyProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CompanyProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "CompanyProfile.user_id"`)}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`repo: missing required field "CompanyProfile.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := companyprofile.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.company_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Industry(); ok {
		if err := companyprofile.IndustryValidator(v); err != nil {
			return &ValidationError{Name: "industry", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.industry": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Website(); ok {
		if err := companyprofile.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.website": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := companyprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.location": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContactPhone(); ok {
		if err := companyprofile.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.contact_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LogoKey(); ok {
		if err := companyprofile.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "CompanyProfile.logo_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`repo: missing required field "CompanyProfile.approved"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "CompanyProfile.user"`)}
	}
	return nil
}

func (_c *CompanyProfileCreate) sqlSave(ctx context.Context) (*CompanyProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyProfileCreate) createSpec() (*CompanyProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &CompanyProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(companyprofile.Table, sqlgraph.NewFieldSpec(companyprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(companyprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(companyprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(companyprofile.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(companyprofile.FieldIndustry, field.TypeString, value)
		_node.Industry = &value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(companyprofile.FieldWebsite, field.TypeString, value)
		_node.Website = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(companyprofile.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(companyprofile.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(companyprofile.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = &value
	}
	if value, ok := _c.mutation.LogoKey(); ok {
		_spec.SetField(companyprofile.FieldLogoKey, field.TypeString, value)
		_node.LogoKey = &value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(companyprofile.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(companyprofile.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CompanyProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyProfileCreate) OnConflict(opts ...sql.ConflictOption) *CompanyProfileUpsertOne {
	_c.conflict = opts
	return &CompanyProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CompanyProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyProfileCreate) OnConflictColumns(columns ...string) *CompanyProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyProfileUpsertOne{
		create: _c,
	}
}

type (
	// CompanyProfileUpsertOne is the builder for "upsert"-ing
	//  one CompanyProfile node.
	CompanyProfileUpsertOne struct {
		create *CompanyProfileCreate
	}

	// CompanyProfileUpsert is the "OnConflict" setter.
	CompanyProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyProfileUpsert) SetUpdatedAt(v time.Time) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateUpdatedAt() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompanyProfileUpsert) SetUserID(v uuid.UUID) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateUserID() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldUserID)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *CompanyProfileUpsert) SetCompanyName(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateCompanyName() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldCompanyName)
	return u
}

// SetIndustry sets the "industry" field.
func (u *CompanyProfileUpsert) SetIndustry(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldIndustry, v)
	return u
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateIndustry() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldIndustry)
	return u
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyProfileUpsert) ClearIndustry() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldIndustry)
	return u
}

// SetWebsite sets the "website" field.
func (u *CompanyProfileUpsert) SetWebsite(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateWebsite() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldWebsite)
	return u
}

// ClearWebsite clears the value of the "website" field.
func (u *CompanyProfileUpsert) ClearWebsite() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldWebsite)
	return u
}

// SetLocation sets the "location" field.
func (u *CompanyProfileUpsert) SetLocation(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateLocation() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *CompanyProfileUpsert) ClearLocation() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldLocation)
	return u
}

// SetDescription sets the "description" field.
func (u *CompanyProfileUpsert) SetDescription(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateDescription() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CompanyProfileUpsert) ClearDescription() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldDescription)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *CompanyProfileUpsert) SetContactPhone(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateContactPhone() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldContactPhone)
	return u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *CompanyProfileUpsert) ClearContactPhone() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldContactPhone)
	return u
}

// SetLogoKey sets the "logo_key" field.
func (u *CompanyProfileUpsert) SetLogoKey(v string) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldLogoKey, v)
	return u
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateLogoKey() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldLogoKey)
	return u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *CompanyProfileUpsert) ClearLogoKey() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldLogoKey)
	return u
}

// SetApproved sets the "approved" field.
func (u *CompanyProfileUpsert) SetApproved(v bool) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldApproved, v)
	return u
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateApproved() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldApproved)
	return u
}

// SetApprovedAt sets the "approved_at" field.
func (u *CompanyProfileUpsert) SetApprovedAt(v time.Time) *CompanyProfileUpsert {
	u.Set(companyprofile.FieldApprovedAt, v)
	return u
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *CompanyProfileUpsert) UpdateApprovedAt() *CompanyProfileUpsert {
	u.SetExcluded(companyprofile.FieldApprovedAt)
	return u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *CompanyProfileUpsert) ClearApprovedAt() *CompanyProfileUpsert {
	u.SetNull(companyprofile.FieldApprovedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CompanyProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(companyprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CompanyProfileUpsertOne) UpdateNewValues() *CompanyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(companyprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(companyprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CompanyProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompanyProfileUpsertOne) Ignore() *CompanyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyProfileUpsertOne) DoNothing() *CompanyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyProfileCreate.OnConflict
// documentation for more info.
func (u *CompanyProfileUpsertOne) Update(set func(*CompanyProfileUpsert)) *CompanyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyProfileUpsertOne) SetUpdatedAt(v time.Time) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateUpdatedAt() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *CompanyProfileUpsertOne) SetUserID(v uuid.UUID) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateUserID() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *CompanyProfileUpsertOne) SetCompanyName(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateCompanyName() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateCompanyName()
	})
}

// SetIndustry sets the "industry" field.
func (u *CompanyProfileUpsertOne) SetIndustry(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateIndustry() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyProfileUpsertOne) ClearIndustry() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearIndustry()
	})
}

// SetWebsite sets the "website" field.
func (u *CompanyProfileUpsertOne) SetWebsite(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateWebsite() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *CompanyProfileUpsertOne) ClearWebsite() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearWebsite()
	})
}

// SetLocation sets the "location" field.
func (u *CompanyProfileUpsertOne) SetLocation(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateLocation() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CompanyProfileUpsertOne) ClearLocation() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearLocation()
	})
}

// SetDescription sets the "description" field.
func (u *CompanyProfileUpsertOne) SetDescription(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateDescription() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CompanyProfileUpsertOne) ClearDescription() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearDescription()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *CompanyProfileUpsertOne) SetContactPhone(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateContactPhone() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *CompanyProfileUpsertOne) ClearContactPhone() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearContactPhone()
	})
}

// SetLogoKey sets the "logo_key" field.
func (u *CompanyProfileUpsertOne) SetLogoKey(v string) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetLogoKey(v)
	})
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateLogoKey() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateLogoKey()
	})
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *CompanyProfileUpsertOne) ClearLogoKey() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearLogoKey()
	})
}

// SetApproved sets the "approved" field.
func (u *CompanyProfileUpsertOne) SetApproved(v bool) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetApproved(v)
	})
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateApproved() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateApproved()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *CompanyProfileUpsertOne) SetApprovedAt(v time.Time) *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *CompanyProfileUpsertOne) UpdateApprovedAt() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *CompanyProfileUpsertOne) ClearApprovedAt() *CompanyProfileUpsertOne {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearApprovedAt()
	})
}

// Exec executes the query.
func (u *CompanyProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CompanyProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompanyProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CompanyProfileUpsertOne.ID is not supported by MySQL driver. Use CompanyProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompanyProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompanyProfileCreateBulk is the builder for creating many CompanyProfile entities in bulk.
type CompanyProfileCreateBulk struct {
	config
	err      error
	builders []*CompanyProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the CompanyProfile entities in the database.
func (_c *CompanyProfileCreateBulk) Save(ctx context.Context) ([]*CompanyProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompanyProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CompanyProfileCreateBulk) SaveX(ctx context.Context) []*CompanyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CompanyProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompanyProfileUpsertBulk {
	_c.conflict = opts
	return &CompanyProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CompanyProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyProfileCreateBulk) OnConflictColumns(columns ...string) *CompanyProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyProfileUpsertBulk{
		create: _c,
	}
}

// CompanyProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of CompanyProfile nodes.
type CompanyProfileUpsertBulk struct {
	create *CompanyProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CompanyProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(companyprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CompanyProfileUpsertBulk) UpdateNewValues() *CompanyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(companyprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(companyprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CompanyProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompanyProfileUpsertBulk) Ignore() *CompanyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyProfileUpsertBulk) DoNothing() *CompanyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyProfileCreateBulk.OnConflict
// documentation for more info.
func (u *CompanyProfileUpsertBulk) Update(set func(*CompanyProfileUpsert)) *CompanyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyProfileUpsertBulk) SetUpdatedAt(v time.Time) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateUpdatedAt() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *CompanyProfileUpsertBulk) SetUserID(v uuid.UUID) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateUserID() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *CompanyProfileUpsertBulk) SetCompanyName(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateCompanyName() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateCompanyName()
	})
}

// SetIndustry sets the "industry" field.
func (u *CompanyProfileUpsertBulk) SetIndustry(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetIndustry(v)
	})
}

// UpdateIndustry sets the "industry" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateIndustry() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateIndustry()
	})
}

// ClearIndustry clears the value of the "industry" field.
func (u *CompanyProfileUpsertBulk) ClearIndustry() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearIndustry()
	})
}

// SetWebsite sets the "website" field.
func (u *CompanyProfileUpsertBulk) SetWebsite(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateWebsite() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *CompanyProfileUpsertBulk) ClearWebsite() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearWebsite()
	})
}

// SetLocation sets the "location" field.
func (u *CompanyProfileUpsertBulk) SetLocation(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateLocation() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CompanyProfileUpsertBulk) ClearLocation() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearLocation()
	})
}

// SetDescription sets the "description" field.
func (u *CompanyProfileUpsertBulk) SetDescription(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateDescription() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CompanyProfileUpsertBulk) ClearDescription() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearDescription()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *CompanyProfileUpsertBulk) SetContactPhone(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateContactPhone() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *CompanyProfileUpsertBulk) ClearContactPhone() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearContactPhone()
	})
}

// SetLogoKey sets the "logo_key" field.
func (u *CompanyProfileUpsertBulk) SetLogoKey(v string) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetLogoKey(v)
	})
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateLogoKey() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateLogoKey()
	})
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *CompanyProfileUpsertBulk) ClearLogoKey() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearLogoKey()
	})
}

// SetApproved sets the "approved" field.
func (u *CompanyProfileUpsertBulk) SetApproved(v bool) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetApproved(v)
	})
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateApproved() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateApproved()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *CompanyProfileUpsertBulk) SetApprovedAt(v time.Time) *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *CompanyProfileUpsertBulk) UpdateApprovedAt() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *CompanyProfileUpsertBulk) ClearApprovedAt() *CompanyProfileUpsertBulk {
	return u.Update(func(s *CompanyProfileUpsert) {
		s.ClearApprovedAt()
	})
}

// Exec executes the query.
func (u *CompanyProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CompanyProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CompanyProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
