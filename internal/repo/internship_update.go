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
	"github.com/internlink/internlink_backend/internal/repo/internship"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// InternshipUpdate is the builder for updating Internship entities.
type InternshipUpdate struct {
	config
	hooks    []Hook
	mutation *InternshipMutation
}

// Where appends a list predicates to the InternshipUpdate builder.
func (_u *InternshipUpdate) Where(ps ...predicate.Internship) *InternshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InternshipUpdate) SetUpdatedAt(v time.Time) *InternshipUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *InternshipUpdate) SetCompanyID(v uuid.UUID) *InternshipUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableCompanyID(v *uuid.UUID) *InternshipUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InternshipUpdate) SetTitle(v string) *InternshipUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableTitle(v *string) *InternshipUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InternshipUpdate) SetDescription(v string) *InternshipUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableDescription(v *string) *InternshipUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InternshipUpdate) ClearDescription() *InternshipUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *InternshipUpdate) SetRequirements(v string) *InternshipUpdate {
	_u.mutation.SetRequirements(v)
	return _u
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableRequirements(v *string) *InternshipUpdate {
	if v != nil {
		_u.SetRequirements(*v)
	}
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *InternshipUpdate) ClearRequirements() *InternshipUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// SetLocation sets the "location" field.
func (_u *InternshipUpdate) SetLocation(v string) *InternshipUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableLocation(v *string) *InternshipUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *InternshipUpdate) ClearLocation() *InternshipUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetWorkMode sets the "work_mode" field.
func (_u *InternshipUpdate) SetWorkMode(v internship.WorkMode) *InternshipUpdate {
	_u.mutation.SetWorkMode(v)
	return _u
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableWorkMode(v *internship.WorkMode) *InternshipUpdate {
	if v != nil {
		_u.SetWorkMode(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *InternshipUpdate) SetDuration(v string) *InternshipUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableDuration(v *string) *InternshipUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *InternshipUpdate) ClearDuration() *InternshipUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetStipend sets the "stipend" field.
func (_u *InternshipUpdate) SetStipend(v string) *InternshipUpdate {
	_u.mutation.SetStipend(v)
	return _u
}

// SetNillableStipend sets the "stipend" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableStipend(v *string) *InternshipUpdate {
	if v != nil {
		_u.SetStipend(*v)
	}
	return _u
}

// ClearStipend clears the value of the "stipend" field.
func (_u *InternshipUpdate) ClearStipend() *InternshipUpdate {
	_u.mutation.ClearStipend()
	return _u
}

// SetApplicationDeadline sets the "application_deadline" field.
func (_u *InternshipUpdate) SetApplicationDeadline(v time.Time) *InternshipUpdate {
	_u.mutation.SetApplicationDeadline(v)
	return _u
}

// SetNillableApplicationDeadline sets the "application_deadline" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableApplicationDeadline(v *time.Time) *InternshipUpdate {
	if v != nil {
		_u.SetApplicationDeadline(*v)
	}
	return _u
}

// ClearApplicationDeadline clears the value of the "application_deadline" field.
func (_u *InternshipUpdate) ClearApplicationDeadline() *InternshipUpdate {
	_u.mutation.ClearApplicationDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InternshipUpdate) SetStatus(v internship.Status) *InternshipUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InternshipUpdate) SetNillableStatus(v *internship.Status) *InternshipUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the User entity.
func (_u *InternshipUpdate) SetCompany(v *User) *InternshipUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the InternshipMutation object of the builder.
func (_u *InternshipUpdate) Mutation() *InternshipMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the User entity.
func (_u *InternshipUpdate) ClearCompany() *InternshipUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InternshipUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InternshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InternshipUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := internship.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternshipUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := internship.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Internship.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := internship.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Internship.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkMode(); ok {
		if err := internship.WorkModeValidator(v); err != nil {
			return &ValidationError{Name: "work_mode", err: fmt.Errorf(`repo: validator failed for field "Internship.work_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := internship.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Internship.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stipend(); ok {
		if err := internship.StipendValidator(v); err != nil {
			return &ValidationError{Name: "stipend", err: fmt.Errorf(`repo: validator failed for field "Internship.stipend": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := internship.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Internship.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Internship.company"`)
	}
	return nil
}

func (_u *InternshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internship.Table, internship.Columns, sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(internship.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(internship.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(internship.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(internship.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(internship.FieldRequirements, field.TypeString, value)
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(internship.FieldRequirements, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(internship.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(internship.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.WorkMode(); ok {
		_spec.SetField(internship.FieldWorkMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(internship.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(internship.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Stipend(); ok {
		_spec.SetField(internship.FieldStipend, field.TypeString, value)
	}
	if _u.mutation.StipendCleared() {
		_spec.ClearField(internship.FieldStipend, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicationDeadline(); ok {
		_spec.SetField(internship.FieldApplicationDeadline, field.TypeTime, value)
	}
	if _u.mutation.ApplicationDeadlineCleared() {
		_spec.ClearField(internship.FieldApplicationDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(internship.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   internship.CompanyTable,
			Columns: []string{internship.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   internship.CompanyTable,
			Columns: []string{internship.CompanyColumn},
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
			err = &NotFoundError{internship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InternshipUpdateOne is the builder for updating a single Internship entity.
type InternshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InternshipMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InternshipUpdateOne) SetUpdatedAt(v time.Time) *InternshipUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *InternshipUpdateOne) SetCompanyID(v uuid.UUID) *InternshipUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableCompanyID(v *uuid.UUID) *InternshipUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InternshipUpdateOne) SetTitle(v string) *InternshipUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableTitle(v *string) *InternshipUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InternshipUpdateOne) SetDescription(v string) *InternshipUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableDescription(v *string) *InternshipUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InternshipUpdateOne) ClearDescription() *InternshipUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *InternshipUpdateOne) SetRequirements(v string) *InternshipUpdateOne {
	_u.mutation.SetRequirements(v)
	return _u
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableRequirements(v *string) *InternshipUpdateOne {
	if v != nil {
		_u.SetRequirements(*v)
	}
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *InternshipUpdateOne) ClearRequirements() *InternshipUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// SetLocation sets the "location" field.
func (_u *InternshipUpdateOne) SetLocation(v string) *InternshipUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableLocation(v *string) *InternshipUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *InternshipUpdateOne) ClearLocation() *InternshipUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetWorkMode sets the "work_mode" field.
func (_u *InternshipUpdateOne) SetWorkMode(v internship.WorkMode) *InternshipUpdateOne {
	_u.mutation.SetWorkMode(v)
	return _u
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableWorkMode(v *internship.WorkMode) *InternshipUpdateOne {
	if v != nil {
		_u.SetWorkMode(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *InternshipUpdateOne) SetDuration(v string) *InternshipUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableDuration(v *string) *InternshipUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *InternshipUpdateOne) ClearDuration() *InternshipUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetStipend sets the "stipend" field.
func (_u *InternshipUpdateOne) SetStipend(v string) *InternshipUpdateOne {
	_u.mutation.SetStipend(v)
	return _u
}

// SetNillableStipend sets the "stipend" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableStipend(v *string) *InternshipUpdateOne {
	if v != nil {
		_u.SetStipend(*v)
	}
	return _u
}

// ClearStipend clears the value of the "stipend" field.
func (_u *InternshipUpdateOne) ClearStipend() *InternshipUpdateOne {
	_u.mutation.ClearStipend()
	return _u
}

// SetApplicationDeadline sets the "application_deadline" field.
func (_u *InternshipUpdateOne) SetApplicationDeadline(v time.Time) *InternshipUpdateOne {
	_u.mutation.SetApplicationDeadline(v)
	return _u
}

// SetNillableApplicationDeadline sets the "application_deadline" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableApplicationDeadline(v *time.Time) *InternshipUpdateOne {
	if v != nil {
		_u.SetApplicationDeadline(*v)
	}
	return _u
}

// ClearApplicationDeadline clears the value of the "application_deadline" field.
func (_u *InternshipUpdateOne) ClearApplicationDeadline() *InternshipUpdateOne {
	_u.mutation.ClearApplicationDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InternshipUpdateOne) SetStatus(v internship.Status) *InternshipUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InternshipUpdateOne) SetNillableStatus(v *internship.Status) *InternshipUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the User entity.
func (_u *InternshipUpdateOne) SetCompany(v *User) *InternshipUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the InternshipMutation object of the builder.
func (_u *InternshipUpdateOne) Mutation() *InternshipMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the User entity.
func (_u *InternshipUpdateOne) ClearCompany() *InternshipUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the InternshipUpdate builder.
func (_u *InternshipUpdateOne) Where(ps ...predicate.Internship) *InternshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InternshipUpdateOne) Select(field string, fields ...string) *InternshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Internship entity.
func (_u *InternshipUpdateOne) Save(ctx context.Context) (*Internship, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InternshipUpdateOne) SaveX(ctx context.Context) *Internship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InternshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InternshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InternshipUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := internship.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InternshipUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := internship.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Internship.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := internship.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Internship.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkMode(); ok {
		if err := internship.WorkModeValidator(v); err != nil {
			return &ValidationError{Name: "work_mode", err: fmt.Errorf(`repo: validator failed for field "Internship.work_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := internship.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Internship.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stipend(); ok {
		if err := internship.StipendValidator(v); err != nil {
			return &ValidationError{Name: "stipend", err: fmt.Errorf(`repo: validator failed for field "Internship.stipend": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := internship.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Internship.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Internship.company"`)
	}
	return nil
}

func (_u *InternshipUpdateOne) sqlSave(ctx context.Context) (_node *Internship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(internship.Table, internship.Columns, sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Internship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, internship.FieldID)
		for _, f := range fields {
			if !internship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != internship.FieldID {
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
		_spec.SetField(internship.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(internship.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(internship.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(internship.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(internship.FieldRequirements, field.TypeString, value)
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(internship.FieldRequirements, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(internship.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(internship.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.WorkMode(); ok {
		_spec.SetField(internship.FieldWorkMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(internship.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(internship.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Stipend(); ok {
		_spec.SetField(internship.FieldStipend, field.TypeString, value)
	}
	if _u.mutation.StipendCleared() {
		_spec.ClearField(internship.FieldStipend, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicationDeadline(); ok {
		_spec.SetField(internship.FieldApplicationDeadline, field.TypeTime, value)
	}
	if _u.mutation.ApplicationDeadlineCleared() {
		_spec.ClearField(internship.FieldApplicationDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(internship.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   internship.CompanyTable,
			Columns: []string{internship.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   internship.CompanyTable,
			Columns: []string{internship.CompanyColumn},
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
	_node = &Internship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{internship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
