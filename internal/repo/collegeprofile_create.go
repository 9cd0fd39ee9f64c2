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
	"github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CollegeProfileCreate is the builder for creating a CollegeProfile entity.
type CollegeProfileCreate struct {
	config
	mutation *CollegeProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollegeProfileCreate) SetCreatedAt(v time.Time) *CollegeProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableCreatedAt(v *time.Time) *CollegeProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CollegeProfileCreate) SetUpdatedAt(v time.Time) *CollegeProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableUpdatedAt(v *time.Time) *CollegeProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CollegeProfileCreate) SetUserID(v uuid.UUID) *CollegeProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCollegeName sets the "college_name" field.
func (_c *CollegeProfileCreate) SetCollegeName(v string) *CollegeProfileCreate {
	_c.mutation.SetCollegeName(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *CollegeProfileCreate) SetLocation(v string) *CollegeProfileCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableLocation(v *string) *CollegeProfileCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *CollegeProfileCreate) SetWebsite(v string) *CollegeProfileCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableWebsite(v *string) *CollegeProfileCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CollegeProfileCreate) SetDescription(v string) *CollegeProfileCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableDescription(v *string) *CollegeProfileCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAccreditation sets the "accreditation" field.
func (_c *CollegeProfileCreate) SetAccreditation(v string) *CollegeProfileCreate {
	_c.mutation.SetAccreditation(v)
	return _c
}

// SetNillableAccreditation sets the "accreditation" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableAccreditation(v *string) *CollegeProfileCreate {
	if v != nil {
		_c.SetAccreditation(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *CollegeProfileCreate) SetContactPhone(v string) *CollegeProfileCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableContactPhone(v *string) *CollegeProfileCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollegeProfileCreate) SetID(v uuid.UUID) *CollegeProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CollegeProfileCreate) SetNillableID(v *uuid.UUID) *CollegeProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CollegeProfileCreate) SetUser(v *User) *CollegeProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the CollegeProfileMutation object of the builder.
func (_c *CollegeProfileCreate) Mutation() *CollegeProfileMutation {
	return _c.mutation
}

// Save creates the CollegeProfile in the database.
func (_c *CollegeProfileCreate) Save(ctx context.Context) (*CollegeProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollegeProfileCreate) SaveX(ctx context.Context) *CollegeProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollegeProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollegeProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollegeProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := collegeprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := collegeprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := collegeprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollegeProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CollegeProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CollegeProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "CollegeProfile.user_id"`)}
	}
	if _, ok := _c.mutation.CollegeName(); !ok {
		return &ValidationError{Name: "college_name", err: errors.New(`repo: missing required field "CollegeProfile.college_name"`)}
	}
	if v, ok := _c.mutation.CollegeName(); ok {
		if err := collegeprofile.CollegeNameValidator(v); err != nil {
			return &ValidationError{Name: "college_name", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.college_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := collegeprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.location": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Website(); ok {
		if err := collegeprofile.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.website": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Accreditation(); ok {
		if err := collegeprofile.AccreditationValidator(v); err != nil {
			return &ValidationError{Name: "accreditation", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.accreditation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContactPhone(); ok {
		if err := collegeprofile.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.contact_phone": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "CollegeProfile.user"`)}
	}
	return nil
}

func (_c *CollegeProfileCreate) sqlSave(ctx context.Context) (*CollegeProfile, error) {
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

func (_c *CollegeProfileCreate) createSpec() (*CollegeProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &CollegeProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collegeprofile.Table, sqlgraph.NewFieldSpec(collegeprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collegeprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(collegeprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CollegeName(); ok {
		_spec.SetField(collegeprofile.FieldCollegeName, field.TypeString, value)
		_node.CollegeName = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(collegeprofile.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(collegeprofile.FieldWebsite, field.TypeString, value)
		_node.Website = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(collegeprofile.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Accreditation(); ok {
		_spec.SetField(collegeprofile.FieldAccreditation, field.TypeString, value)
		_node.Accreditation = &value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(collegeprofile.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegeprofile.UserTable,
			Columns: []string{collegeprofile.UserColumn},
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
//	client.CollegeProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollegeProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CollegeProfileCreate) OnConflict(opts ...sql.ConflictOption) *CollegeProfileUpsertOne {
	_c.conflict = opts
	return &CollegeProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollegeProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollegeProfileCreate) OnConflictColumns(columns ...string) *CollegeProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollegeProfileUpsertOne{
		create: _c,
	}
}

type (
	// CollegeProfileUpsertOne is the builder for "upsert"-ing
	//  one CollegeProfile node.
	CollegeProfileUpsertOne struct {
		create *CollegeProfileCreate
	}

	// CollegeProfileUpsert is the "OnConflict" setter.
	CollegeProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CollegeProfileUpsert) SetUpdatedAt(v time.Time) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateUpdatedAt() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *CollegeProfileUpsert) SetUserID(v uuid.UUID) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateUserID() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldUserID)
	return u
}

// SetCollegeName sets the "college_name" field.
func (u *CollegeProfileUpsert) SetCollegeName(v string) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldCollegeName, v)
	return u
}

// UpdateCollegeName sets the "college_name" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateCollegeName() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldCollegeName)
	return u
}

// SetLocation sets the "location" field.
func (u *CollegeProfileUpsert) SetLocation(v string) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateLocation() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *CollegeProfileUpsert) ClearLocation() *CollegeProfileUpsert {
	u.SetNull(collegeprofile.FieldLocation)
	return u
}

// SetWebsite sets the "website" field.
func (u *CollegeProfileUpsert) SetWebsite(v string) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateWebsite() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldWebsite)
	return u
}

// ClearWebsite clears the value of the "website" field.
func (u *CollegeProfileUpsert) ClearWebsite() *CollegeProfileUpsert {
	u.SetNull(collegeprofile.FieldWebsite)
	return u
}

// SetDescription sets the "description" field.
func (u *CollegeProfileUpsert) SetDescription(v string) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateDescription() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CollegeProfileUpsert) ClearDescription() *CollegeProfileUpsert {
	u.SetNull(collegeprofile.FieldDescription)
	return u
}

// SetAccreditation sets the "accreditation" field.
func (u *CollegeProfileUpsert) SetAccreditation(v string) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldAccreditation, v)
	return u
}

// UpdateAccreditation sets the "accreditation" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateAccreditation() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldAccreditation)
	return u
}

// ClearAccreditation clears the value of the "accreditation" field.
func (u *CollegeProfileUpsert) ClearAccreditation() *CollegeProfileUpsert {
	u.SetNull(collegeprofile.FieldAccreditation)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *CollegeProfileUpsert) SetContactPhone(v string) *CollegeProfileUpsert {
	u.Set(collegeprofile.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *CollegeProfileUpsert) UpdateContactPhone() *CollegeProfileUpsert {
	u.SetExcluded(collegeprofile.FieldContactPhone)
	return u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *CollegeProfileUpsert) ClearContactPhone() *CollegeProfileUpsert {
	u.SetNull(collegeprofile.FieldContactPhone)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CollegeProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collegeprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollegeProfileUpsertOne) UpdateNewValues() *CollegeProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(collegeprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(collegeprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollegeProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollegeProfileUpsertOne) Ignore() *CollegeProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollegeProfileUpsertOne) DoNothing() *CollegeProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollegeProfileCreate.OnConflict
// documentation for more info.
func (u *CollegeProfileUpsertOne) Update(set func(*CollegeProfileUpsert)) *CollegeProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollegeProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollegeProfileUpsertOne) SetUpdatedAt(v time.Time) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateUpdatedAt() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *CollegeProfileUpsertOne) SetUserID(v uuid.UUID) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateUserID() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetCollegeName sets the "college_name" field.
func (u *CollegeProfileUpsertOne) SetCollegeName(v string) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetCollegeName(v)
	})
}

// UpdateCollegeName sets the "college_name" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateCollegeName() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateCollegeName()
	})
}

// SetLocation sets the "location" field.
func (u *CollegeProfileUpsertOne) SetLocation(v string) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateLocation() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CollegeProfileUpsertOne) ClearLocation() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearLocation()
	})
}

// SetWebsite sets the "website" field.
func (u *CollegeProfileUpsertOne) SetWebsite(v string) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateWebsite() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *CollegeProfileUpsertOne) ClearWebsite() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearWebsite()
	})
}

// SetDescription sets the "description" field.
func (u *CollegeProfileUpsertOne) SetDescription(v string) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateDescription() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CollegeProfileUpsertOne) ClearDescription() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearDescription()
	})
}

// SetAccreditation sets the "accreditation" field.
func (u *CollegeProfileUpsertOne) SetAccreditation(v string) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetAccreditation(v)
	})
}

// UpdateAccreditation sets the "accreditation" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateAccreditation() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateAccreditation()
	})
}

// ClearAccreditation clears the value of the "accreditation" field.
func (u *CollegeProfileUpsertOne) ClearAccreditation() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearAccreditation()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *CollegeProfileUpsertOne) SetContactPhone(v string) *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *CollegeProfileUpsertOne) UpdateContactPhone() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *CollegeProfileUpsertOne) ClearContactPhone() *CollegeProfileUpsertOne {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearContactPhone()
	})
}

// Exec executes the query.
func (u *CollegeProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CollegeProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollegeProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollegeProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CollegeProfileUpsertOne.ID is not supported by MySQL driver. Use CollegeProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollegeProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollegeProfileCreateBulk is the builder for creating many CollegeProfile entities in bulk.
type CollegeProfileCreateBulk struct {
	config
	err      error
	builders []*CollegeProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the CollegeProfile entities in the database.
func (_c *CollegeProfileCreateBulk) Save(ctx context.Context) ([]*CollegeProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollegeProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollegeProfileMutation)
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
func (_c *CollegeProfileCreateBulk) SaveX(ctx context.Context) []*CollegeProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollegeProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollegeProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollegeProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollegeProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CollegeProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollegeProfileUpsertBulk {
	_c.conflict = opts
	return &CollegeProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollegeProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollegeProfileCreateBulk) OnConflictColumns(columns ...string) *CollegeProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollegeProfileUpsertBulk{
		create: _c,
	}
}

// CollegeProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of CollegeProfile nodes.
type CollegeProfileUpsertBulk struct {
	create *CollegeProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollegeProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collegeprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollegeProfileUpsertBulk) UpdateNewValues() *CollegeProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(collegeprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(collegeprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollegeProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollegeProfileUpsertBulk) Ignore() *CollegeProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollegeProfileUpsertBulk) DoNothing() *CollegeProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollegeProfileCreateBulk.OnConflict
// documentation for more info.
func (u *CollegeProfileUpsertBulk) Update(set func(*CollegeProfileUpsert)) *CollegeProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollegeProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollegeProfileUpsertBulk) SetUpdatedAt(v time.Time) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateUpdatedAt() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *CollegeProfileUpsertBulk) SetUserID(v uuid.UUID) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateUserID() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetCollegeName sets the "college_name" field.
func (u *CollegeProfileUpsertBulk) SetCollegeName(v string) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetCollegeName(v)
	})
}

// UpdateCollegeName sets the "college_name" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateCollegeName() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateCollegeName()
	})
}

// SetLocation sets the "location" field.
func (u *CollegeProfileUpsertBulk) SetLocation(v string) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateLocation() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CollegeProfileUpsertBulk) ClearLocation() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearLocation()
	})
}

// SetWebsite sets the "website" field.
func (u *CollegeProfileUpsertBulk) SetWebsite(v string) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateWebsite() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *CollegeProfileUpsertBulk) ClearWebsite() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearWebsite()
	})
}

// SetDescription sets the "description" field.
func (u *CollegeProfileUpsertBulk) SetDescription(v string) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateDescription() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CollegeProfileUpsertBulk) ClearDescription() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearDescription()
	})
}

// SetAccreditation sets the "accreditation" field.
func (u *CollegeProfileUpsertBulk) SetAccreditation(v string) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetAccreditation(v)
	})
}

// UpdateAccreditation sets the "accreditation" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateAccreditation() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateAccreditation()
	})
}

// ClearAccreditation clears the value of the "accreditation" field.
func (u *CollegeProfileUpsertBulk) ClearAccreditation() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearAccreditation()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *CollegeProfileUpsertBulk) SetContactPhone(v string) *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *CollegeProfileUpsertBulk) UpdateContactPhone() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *CollegeProfileUpsertBulk) ClearContactPhone() *CollegeProfileUpsertBulk {
	return u.Update(func(s *CollegeProfileUpsert) {
		s.ClearContactPhone()
	})
}

// Exec executes the query.
func (u *CollegeProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CollegeProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CollegeProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollegeProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
