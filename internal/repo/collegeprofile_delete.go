// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/internlink/internlink_backend/internal/repo/collegeprofile"
	"github.com/internlink/internlink_backend/internal/repo/predicate"
)

// CollegeProfileDelete is the builder for deleting a CollegeProfile entity.
type CollegeProfileDelete struct {
	config
	hooks    []Hook
	mutation *CollegeProfileMutation
}

// Where appends a list predicates to the CollegeProfileDelete builder.
func (_d *CollegeProfileDelete) Where(ps ...predicate.CollegeProfile) *CollegeProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CollegeProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollegeProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CollegeProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(collegeprofile.Table, sqlgraph.NewFieldSpec(collegeprofile.FieldID, field.TypeUUID))
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

// CollegeProfileDeleteOne is the builder for deleting a single CollegeProfile entity.
type CollegeProfileDeleteOne struct {
	_d *CollegeProfileDelete
}

// Where appends a list predicates to the CollegeProfileDelete builder.
func (_d *CollegeProfileDeleteOne) Where(ps ...predicate.CollegeProfile) *CollegeProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CollegeProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{collegeprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollegeProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
