// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/internlink/internlink_backend/internal/repo/collegestudent"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// CollegeStudentDelete is the builder for deleting a CollegeStudent entity.
type CollegeStudentDelete struct {
	config
	hooks    []Hook
	mutation *CollegeStudentMutation
}

// Where appends a list predicates to the CollegeStudentDelete builder.
func (_d *CollegeStudentDelete) Where(ps ...predicate.CollegeStudent) *CollegeStudentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CollegeStudentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollegeStudentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CollegeStudentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(collegestudent.Table, sqlgraph.NewFieldSpec(collegestudent.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CollegeStudentDeleteOne is the builder for deleting a single CollegeStudent entity.
type CollegeStudentDeleteOne struct {
	_d *CollegeStudentDelete
}

// Where appends a list predicates to the CollegeStudentDelete builder.
func (_d *CollegeStudentDeleteOne) Where(ps ...predicate.CollegeStudent) *CollegeStudentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CollegeStudentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{collegestudent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollegeStudentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
