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
	"github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CollegeProfileUpdate is the builder for updating CollegeProfile entities.
type CollegeProfileUpdate struct {
	config
	hooks    []Hook
	mutation *CollegeProfileMutation
}

// Where appends a list predicates to the CollegeProfileUpdate builder.
func (_u *CollegeProfileUpdate) Where(ps ...predicate.CollegeProfile) *CollegeProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollegeProfileUpdate) SetUpdatedAt(v time.Time) *CollegeProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CollegeProfileUpdate) SetUserID(v uuid.UUID) *CollegeProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableUserID(v *uuid.UUID) *CollegeProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCollegeName sets the "college_name" field.
func (_u *CollegeProfileUpdate) SetCollegeName(v string) *CollegeProfileUpdate {
	_u.mutation.SetCollegeName(v)
	return _u
}

// SetNillableCollegeName sets the "college_name" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableCollegeName(v *string) *CollegeProfileUpdate {
	if v != nil {
		_u.SetCollegeName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *CollegeProfileUpdate) SetLocation(v string) *CollegeProfileUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableLocation(v *string) *CollegeProfileUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CollegeProfileUpdate) ClearLocation() *CollegeProfileUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *CollegeProfileUpdate) SetWebsite(v string) *CollegeProfileUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableWebsite(v *string) *CollegeProfileUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *CollegeProfileUpdate) ClearWebsite() *CollegeProfileUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CollegeProfileUpdate) SetDescription(v string) *CollegeProfileUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableDescription(v *string) *CollegeProfileUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CollegeProfileUpdate) ClearDescription() *CollegeProfileUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAccreditation sets the "accreditation" field.
func (_u *CollegeProfileUpdate) SetAccreditation(v string) *CollegeProfileUpdate {
	_u.mutation.SetAccreditation(v)
	return _u
}

// SetNillableAccreditation sets the "accreditation" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableAccreditation(v *string) *CollegeProfileUpdate {
	if v != nil {
		_u.SetAccreditation(*v)
	}
	return _u
}

// ClearAccreditation clears the value of the "accreditation" field.
func (_u *CollegeProfileUpdate) ClearAccreditation() *CollegeProfileUpdate {
	_u.mutation.ClearAccreditation()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *CollegeProfileUpdate) SetContactPhone(v string) *CollegeProfileUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *CollegeProfileUpdate) SetNillableContactPhone(v *string) *CollegeProfileUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *CollegeProfileUpdate) ClearContactPhone() *CollegeProfileUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CollegeProfileUpdate) SetUser(v *User) *CollegeProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the CollegeProfileMutation object of the builder.
func (_u *CollegeProfileUpdate) Mutation() *CollegeProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CollegeProfileUpdate) ClearUser() *CollegeProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollegeProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollegeProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollegeProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollegeProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollegeProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collegeprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollegeProfileUpdate) check() error {
	if v, ok := _u.mutation.CollegeName(); ok {
		if err := collegeprofile.CollegeNameValidator(v); err != nil {
			return &ValidationError{Name: "college_name", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.college_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := collegeprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Website(); ok {
		if err := collegeprofile.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.website": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accreditation(); ok {
		if err := collegeprofile.AccreditationValidator(v); err != nil {
			return &ValidationError{Name: "accreditation", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.accreditation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactPhone(); ok {
		if err := collegeprofile.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.contact_phone": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CollegeProfile.user"`)
	}
	return nil
}

func (_u *CollegeProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collegeprofile.Table, collegeprofile.Columns, sqlgraph.NewFieldSpec(collegeprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collegeprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollegeName(); ok {
		_spec.SetField(collegeprofile.FieldCollegeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(collegeprofile.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(collegeprofile.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(collegeprofile.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(collegeprofile.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(collegeprofile.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(collegeprofile.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Accreditation(); ok {
		_spec.SetField(collegeprofile.FieldAccreditation, field.TypeString, value)
	}
	if _u.mutation.AccreditationCleared() {
		_spec.ClearField(collegeprofile.FieldAccreditation, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(collegeprofile.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(collegeprofile.FieldContactPhone, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collegeprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollegeProfileUpdateOne is the builder for updating a single CollegeProfile entity.
type CollegeProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollegeProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollegeProfileUpdateOne) SetUpdatedAt(v time.Time) *CollegeProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CollegeProfileUpdateOne) SetUserID(v uuid.UUID) *CollegeProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCollegeName sets the "college_name" field.
func (_u *CollegeProfileUpdateOne) SetCollegeName(v string) *CollegeProfileUpdateOne {
	_u.mutation.SetCollegeName(v)
	return _u
}

// SetNillableCollegeName sets the "college_name" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableCollegeName(v *string) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetCollegeName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *CollegeProfileUpdateOne) SetLocation(v string) *CollegeProfileUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableLocation(v *string) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CollegeProfileUpdateOne) ClearLocation() *CollegeProfileUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *CollegeProfileUpdateOne) SetWebsite(v string) *CollegeProfileUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableWebsite(v *string) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *CollegeProfileUpdateOne) ClearWebsite() *CollegeProfileUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CollegeProfileUpdateOne) SetDescription(v string) *CollegeProfileUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableDescription(v *string) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CollegeProfileUpdateOne) ClearDescription() *CollegeProfileUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAccreditation sets the "accreditation" field.
func (_u *CollegeProfileUpdateOne) SetAccreditation(v string) *CollegeProfileUpdateOne {
	_u.mutation.SetAccreditation(v)
	return _u
}

// SetNillableAccreditation sets the "accreditation" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableAccreditation(v *string) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetAccreditation(*v)
	}
	return _u
}

// ClearAccreditation clears the value of the "accreditation" field.
func (_u *CollegeProfileUpdateOne) ClearAccreditation() *CollegeProfileUpdateOne {
	_u.mutation.ClearAccreditation()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *CollegeProfileUpdateOne) SetContactPhone(v string) *CollegeProfileUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *CollegeProfileUpdateOne) SetNillableContactPhone(v *string) *CollegeProfileUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *CollegeProfileUpdateOne) ClearContactPhone() *CollegeProfileUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CollegeProfileUpdateOne) SetUser(v *User) *CollegeProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the CollegeProfileMutation object of the builder.
func (_u *CollegeProfileUpdateOne) Mutation() *CollegeProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CollegeProfileUpdateOne) ClearUser() *CollegeProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the CollegeProfileUpdate builder.
func (_u *CollegeProfileUpdateOne) Where(ps ...predicate.CollegeProfile) *CollegeProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollegeProfileUpdateOne) Select(field string, fields ...string) *CollegeProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollegeProfile entity.
func (_u *CollegeProfileUpdateOne) Save(ctx context.Context) (*CollegeProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollegeProfileUpdateOne) SaveX(ctx context.Context) *CollegeProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollegeProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollegeProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollegeProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collegeprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollegeProfileUpdateOne) check() error {
	if v, ok := _u.mutation.CollegeName(); ok {
		if err := collegeprofile.CollegeNameValidator(v); err != nil {
			return &ValidationError{Name: "college_name", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.college_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := collegeprofile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Website(); ok {
		if err := collegeprofile.WebsiteValidator(v); err != nil {
			return &ValidationError{Name: "website", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.website": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Accreditation(); ok {
		if err := collegeprofile.AccreditationValidator(v); err != nil {
			return &ValidationError{Name: "accreditation", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.accreditation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactPhone(); ok {
		if err := collegeprofile.ContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "contact_phone", err: fmt.Errorf(`repo: validator failed for field "CollegeProfile.contact_phone": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CollegeProfile.user"`)
	}
	return nil
}

func (_u *CollegeProfileUpdateOne) sqlSave(ctx context.Context) (_node *CollegeProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collegeprofile.Table, collegeprofile.Columns, sqlgraph.NewFieldSpec(collegeprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CollegeProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collegeprofile.FieldID)
		for _, f := range fields {
			if !collegeprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != collegeprofile.FieldID {
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
		_spec.SetField(collegeprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollegeName(); ok {
		_spec.SetField(collegeprofile.FieldCollegeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(collegeprofile.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(collegeprofile.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(collegeprofile.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(collegeprofile.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(collegeprofile.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(collegeprofile.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Accreditation(); ok {
		_spec.SetField(collegeprofile.FieldAccreditation, field.TypeString, value)
	}
	if _u.mutation.AccreditationCleared() {
		_spec.ClearField(collegeprofile.FieldAccreditation, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(collegeprofile.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(collegeprofile.FieldContactPhone, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CollegeProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collegeprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
