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
	"github.com/internlink/internlink_backend/internal/repo/collegestudent"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CollegeStudentUpdate is the builder for updating CollegeStudent entities.
type CollegeStudentUpdate struct {
	config
	hooks    []Hook
	mutation *CollegeStudentMutation
}

// Where appends a list predicates to the CollegeStudentUpdate builder.
func (_u *CollegeStudentUpdate) Where(ps ...predicate.CollegeStudent) *CollegeStudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollegeStudentUpdate) SetUpdatedAt(v time.Time) *CollegeStudentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCollegeID sets the "college_id" field.
func (_u *CollegeStudentUpdate) SetCollegeID(v uuid.UUID) *CollegeStudentUpdate {
	_u.mutation.SetCollegeID(v)
	return _u
}

// SetNillableCollegeID sets the "college_id" field if the given value is not nil.
func (_u *CollegeStudentUpdate) SetNillableCollegeID(v *uuid.UUID) *CollegeStudentUpdate {
	if v != nil {
		_u.SetCollegeID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *CollegeStudentUpdate) SetStudentID(v uuid.UUID) *CollegeStudentUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *CollegeStudentUpdate) SetNillableStudentID(v *uuid.UUID) *CollegeStudentUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *CollegeStudentUpdate) SetVerificationStatus(v collegestudent.VerificationStatus) *CollegeStudentUpdate {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *CollegeStudentUpdate) SetNillableVerificationStatus(v *collegestudent.VerificationStatus) *CollegeStudentUpdate {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *CollegeStudentUpdate) SetVerifiedAt(v time.Time) *CollegeStudentUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *CollegeStudentUpdate) SetNillableVerifiedAt(v *time.Time) *CollegeStudentUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *CollegeStudentUpdate) ClearVerifiedAt() *CollegeStudentUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetCollege sets the "college" edge to the User entity.
func (_u *CollegeStudentUpdate) SetCollege(v *User) *CollegeStudentUpdate {
	return _u.SetCollegeID(v.ID)
}

// SetStudent sets the "student" edge to the User entity.
func (_u *CollegeStudentUpdate) SetStudent(v *User) *CollegeStudentUpdate {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the CollegeStudentMutation object of the builder.
func (_u *CollegeStudentUpdate) Mutation() *CollegeStudentMutation {
	return _u.mutation
}

// ClearCollege clears the "college" edge to the User entity.
func (_u *CollegeStudentUpdate) ClearCollege() *CollegeStudentUpdate {
	_u.mutation.ClearCollege()
	return _u
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *CollegeStudentUpdate) ClearStudent() *CollegeStudentUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollegeStudentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollegeStudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollegeStudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollegeStudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollegeStudentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collegestudent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollegeStudentUpdate) check() error {
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := collegestudent.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`repo: validator failed for field "CollegeStudent.verification_status": %w`, err)}
		}
	}
	if _u.mutation.CollegeCleared() && len(_u.mutation.CollegeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CollegeStudent.college"`)
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CollegeStudent.student"`)
	}
	return nil
}

func (_u *CollegeStudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collegestudent.Table, collegestudent.Columns, sqlgraph.NewFieldSpec(collegestudent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collegestudent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(collegestudent.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(collegestudent.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(collegestudent.FieldVerifiedAt, field.TypeTime)
	}
	if _u.mutation.CollegeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegestudent.CollegeTable,
			Columns: []string{collegestudent.CollegeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CollegeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegestudent.CollegeTable,
			Columns: []string{collegestudent.CollegeColumn},
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
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegestudent.StudentTable,
			Columns: []string{collegestudent.StudentColumn},
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
			Table:   collegestudent.StudentTable,
			Columns: []string{collegestudent.StudentColumn},
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
			err = &NotFoundError{collegestudent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollegeStudentUpdateOne is the builder for updating a single CollegeStudent entity.
type CollegeStudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollegeStudentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollegeStudentUpdateOne) SetUpdatedAt(v time.Time) *CollegeStudentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCollegeID sets the "college_id" field.
func (_u *CollegeStudentUpdateOne) SetCollegeID(v uuid.UUID) *CollegeStudentUpdateOne {
	_u.mutation.SetCollegeID(v)
	return _u
}

// SetNillableCollegeID sets the "college_id" field if the given value is not nil.
func (_u *CollegeStudentUpdateOne) SetNillableCollegeID(v *uuid.UUID) *CollegeStudentUpdateOne {
	if v != nil {
		_u.SetCollegeID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *CollegeStudentUpdateOne) SetStudentID(v uuid.UUID) *CollegeStudentUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *CollegeStudentUpdateOne) SetNillableStudentID(v *uuid.UUID) *CollegeStudentUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *CollegeStudentUpdateOne) SetVerificationStatus(v collegestudent.VerificationStatus) *CollegeStudentUpdateOne {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *CollegeStudentUpdateOne) SetNillableVerificationStatus(v *collegestudent.VerificationStatus) *CollegeStudentUpdateOne {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *CollegeStudentUpdateOne) SetVerifiedAt(v time.Time) *CollegeStudentUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *CollegeStudentUpdateOne) SetNillableVerifiedAt(v *time.Time) *CollegeStudentUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *CollegeStudentUpdateOne) ClearVerifiedAt() *CollegeStudentUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetCollege sets the "college" edge to the User entity.
func (_u *CollegeStudentUpdateOne) SetCollege(v *User) *CollegeStudentUpdateOne {
	return _u.SetCollegeID(v.ID)
}

// SetStudent sets the "student" edge to the User entity.
func (_u *CollegeStudentUpdateOne) SetStudent(v *User) *CollegeStudentUpdateOne {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the CollegeStudentMutation object of the builder.
func (_u *CollegeStudentUpdateOne) Mutation() *CollegeStudentMutation {
	return _u.mutation
}

// ClearCollege clears the "college" edge to the User entity.
func (_u *CollegeStudentUpdateOne) ClearCollege() *CollegeStudentUpdateOne {
	_u.mutation.ClearCollege()
	return _u
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *CollegeStudentUpdateOne) ClearStudent() *CollegeStudentUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// Where appends a list predicates to the CollegeStudentUpdate builder.
func (_u *CollegeStudentUpdateOne) Where(ps ...predicate.CollegeStudent) *CollegeStudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollegeStudentUpdateOne) Select(field string, fields ...string) *CollegeStudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollegeStudent entity.
func (_u *CollegeStudentUpdateOne) Save(ctx context.Context) (*CollegeStudent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollegeStudentUpdateOne) SaveX(ctx context.Context) *CollegeStudent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollegeStudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollegeStudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollegeStudentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collegestudent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollegeStudentUpdateOne) check() error {
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := collegestudent.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`repo: validator failed for field "CollegeStudent.verification_status": %w`, err)}
		}
	}
	if _u.mutation.CollegeCleared() && len(_u.mutation.CollegeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CollegeStudent.college"`)
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CollegeStudent.student"`)
	}
	return nil
}

func (_u *CollegeStudentUpdateOne) sqlSave(ctx context.Context) (_node *CollegeStudent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collegestudent.Table, collegestudent.Columns, sqlgraph.NewFieldSpec(collegestudent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CollegeStudent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collegestudent.FieldID)
		for _, f := range fields {
			if !collegestudent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != collegestudent.FieldID {
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
		_spec.SetField(collegestudent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(collegestudent.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(collegestudent.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(collegestudent.FieldVerifiedAt, field.TypeTime)
	}
	if _u.mutation.CollegeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegestudent.CollegeTable,
			Columns: []string{collegestudent.CollegeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CollegeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegestudent.CollegeTable,
			Columns: []string{collegestudent.CollegeColumn},
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
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   collegestudent.StudentTable,
			Columns: []string{collegestudent.StudentColumn},
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
			Table:   collegestudent.StudentTable,
			Columns: []string{collegestudent.StudentColumn},
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
	_node = &CollegeStudent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collegestudent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
