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
	"github.com/internlink/internlink_backend/internal/repo/application"
	"github.com/internlink/internlink_backend/internal/repo/internship"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ApplicationUpdate) SetStudentID(v uuid.UUID) *ApplicationUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStudentID(v *uuid.UUID) *ApplicationUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetInternshipID sets the "internship_id" field.
func (_u *ApplicationUpdate) SetInternshipID(v uuid.UUID) *ApplicationUpdate {
	_u.mutation.SetInternshipID(v)
	return _u
}

// SetNillableInternshipID sets the "internship_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableInternshipID(v *uuid.UUID) *ApplicationUpdate {
	if v != nil {
		_u.SetInternshipID(*v)
	}
	return _u
}

// SetCoverLetter sets the "cover_letter" field.
func (_u *ApplicationUpdate) SetCoverLetter(v string) *ApplicationUpdate {
	_u.mutation.SetCoverLetter(v)
	return _u
}

// SetNillableCoverLetter sets the "cover_letter" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCoverLetter(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetCoverLetter(*v)
	}
	return _u
}

// ClearCoverLetter clears the value of the "cover_letter" field.
func (_u *ApplicationUpdate) ClearCoverLetter() *ApplicationUpdate {
	_u.mutation.ClearCoverLetter()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v application.Status) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *application.Status) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStudent sets the "student" edge to the User entity.
func (_u *ApplicationUpdate) SetStudent(v *User) *ApplicationUpdate {
	return _u.SetStudentID(v.ID)
}

// SetInternship sets the "internship" edge to the Internship entity.
func (_u *ApplicationUpdate) SetInternship(v *Internship) *ApplicationUpdate {
	return _u.SetInternshipID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *ApplicationUpdate) ClearStudent() *ApplicationUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// ClearInternship clears the "internship" edge to the Internship entity.
func (_u *ApplicationUpdate) ClearInternship() *ApplicationUpdate {
	_u.mutation.ClearInternship()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Application.student"`)
	}
	if _u.mutation.InternshipCleared() && len(_u.mutation.InternshipIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Application.internship"`)
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CoverLetter(); ok {
		_spec.SetField(application.FieldCoverLetter, field.TypeString, value)
	}
	if _u.mutation.CoverLetterCleared() {
		_spec.ClearField(application.FieldCoverLetter, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(application.FieldAppliedAt, field.TypeTime)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.StudentTable,
			Columns: []string{application.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.StudentTable,
			Columns: []string{application.StudentColumn},
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
	if _u.mutation.InternshipCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.InternshipTable,
			Columns: []string{application.InternshipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InternshipIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.InternshipTable,
			Columns: []string{application.InternshipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ApplicationUpdateOne) SetStudentID(v uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStudentID(v *uuid.UUID) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetInternshipID sets the "internship_id" field.
func (_u *ApplicationUpdateOne) SetInternshipID(v uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.SetInternshipID(v)
	return _u
}

// SetNillableInternshipID sets the "internship_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableInternshipID(v *uuid.UUID) *ApplicationUpdateOne {
	if v != nil {
		_u.SetInternshipID(*v)
	}
	return _u
}

// SetCoverLetter sets the "cover_letter" field.
func (_u *ApplicationUpdateOne) SetCoverLetter(v string) *ApplicationUpdateOne {
	_u.mutation.SetCoverLetter(v)
	return _u
}

// SetNillableCoverLetter sets the "cover_letter" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCoverLetter(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCoverLetter(*v)
	}
	return _u
}

// ClearCoverLetter clears the value of the "cover_letter" field.
func (_u *ApplicationUpdateOne) ClearCoverLetter() *ApplicationUpdateOne {
	_u.mutation.ClearCoverLetter()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v application.Status) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *application.Status) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStudent sets the "student" edge to the User entity.
func (_u *ApplicationUpdateOne) SetStudent(v *User) *ApplicationUpdateOne {
	return _u.SetStudentID(v.ID)
}

// SetInternship sets the "internship" edge to the Internship entity.
func (_u *ApplicationUpdateOne) SetInternship(v *Internship) *ApplicationUpdateOne {
	return _u.SetInternshipID(v.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *ApplicationUpdateOne) ClearStudent() *ApplicationUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// ClearInternship clears the "internship" edge to the Internship entity.
func (_u *ApplicationUpdateOne) ClearInternship() *ApplicationUpdateOne {
	_u.mutation.ClearInternship()
	return _u
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Application.student"`)
	}
	if _u.mutation.InternshipCleared() && len(_u.mutation.InternshipIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Application.internship"`)
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != application.FieldID {
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
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CoverLetter(); ok {
		_spec.SetField(application.FieldCoverLetter, field.TypeString, value)
	}
	if _u.mutation.CoverLetterCleared() {
		_spec.ClearField(application.FieldCoverLetter, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(application.FieldAppliedAt, field.TypeTime)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.StudentTable,
			Columns: []string{application.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.StudentTable,
			Columns: []string{application.StudentColumn},
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
	if _u.mutation.InternshipCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.InternshipTable,
			Columns: []string{application.InternshipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InternshipIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   application.InternshipTable,
			Columns: []string{application.InternshipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
