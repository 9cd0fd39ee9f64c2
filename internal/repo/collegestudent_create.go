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
	"github.com/internlink/internlink_backend/internal/repo/collegestudent"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// CollegeStudentCreate is the builder for creating a CollegeStudent entity.
type CollegeStudentCreate struct {
	config
	mutation *CollegeStudentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollegeStudentCreate) SetCreatedAt(v time.Time) *CollegeStudentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CollegeStudentCreate) SetNillableCreatedAt(v *time.Time) *CollegeStudentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CollegeStudentCreate) SetUpdatedAt(v time.Time) *CollegeStudentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CollegeStudentCreate) SetNillableUpdatedAt(v *time.Time) *CollegeStudentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCollegeID sets the "college_id" field.
func (_c *CollegeStudentCreate) SetCollegeID(v uuid.UUID) *CollegeStudentCreate {
	_c.mutation.SetCollegeID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *CollegeStudentCreate) SetStudentID(v uuid.UUID) *CollegeStudentCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetVerificationStatus sets the "verification_status" field.
func (_c *CollegeStudentCreate) SetVerificationStatus(v collegestudent.VerificationStatus) *CollegeStudentCreate {
	_c.mutation.SetVerificationStatus(v)
	return _c
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_c *CollegeStudentCreate) SetNillableVerificationStatus(v *collegestudent.VerificationStatus) *CollegeStudentCreate {
	if v != nil {
		_c.SetVerificationStatus(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *CollegeStudentCreate) SetVerifiedAt(v time.Time) *CollegeStudentCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *CollegeStudentCreate) SetNillableVerifiedAt(v *time.Time) *CollegeStudentCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollegeStudentCreate) SetID(v uuid.UUID) *CollegeStudentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CollegeStudentCreate) SetNillableID(v *uuid.UUID) *CollegeStudentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCollege sets the "college" edge to the User entity.
func (_c *CollegeStudentCreate) SetCollege(v *User) *CollegeStudentCreate {
	return _c.SetCollegeID(v.ID)
}

// SetStudent sets the "student" edge to the User entity.
func (_c *CollegeStudentCreate) SetStudent(v *User) *CollegeStudentCreate {
	return _c.SetStudentID(v.ID)
}

// Mutation returns the CollegeStudentMutation object of the builder.
func (_c *CollegeStudentCreate) Mutation() *CollegeStudentMutation {
	return _c.mutation
}

// Save creates the CollegeStudent in the database.
func (_c *CollegeStudentCreate) Save(ctx context.Context) (*CollegeStudent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollegeStudentCreate) SaveX(ctx context.Context) *CollegeStudent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollegeStudentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollegeStudentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollegeStudentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := collegestudent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := collegestudent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		v := collegestudent.DefaultVerificationStatus
		_c.mutation.SetVerificationStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := collegestudent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollegeStudentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CollegeStudent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CollegeStudent.updated_at"`)}
	}
	if _, ok := _c.mutation.CollegeID(); !ok {
		return &ValidationError{Name: "college_id", err: errors.New(`repo: missing required field "CollegeStudent.college_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`repo: missing required field "CollegeStudent.student_id"`)}
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		return &ValidationError{Name: "verification_status", err: errors.New(`repo: missing required field "CollegeStudent.verification_status"`)}
	}
	if v, ok := _c.mutation.VerificationStatus(); ok {
		if err := collegestudent.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`repo: validator failed for field "CollegeStudent.verification_status": %w`, err)}
		}
	}
	if len(_c.mutation.CollegeIDs()) == 0 {
		return &ValidationError{Name: "college", err: errors.New(`repo: missing required edge "CollegeStudent.college"`)}
	}
	if len(_c.mutation.StudentIDs()) == 0 {
		return &ValidationError{Name: "student", err: errors.New(`repo: missing required edge "CollegeStudent.student"`)}
	}
	return nil
}

func (_c *CollegeStudentCreate) sqlSave(ctx context.Context) (*CollegeStudent, error) {
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

func (_c *CollegeStudentCreate) createSpec() (*CollegeStudent, *sqlgraph.CreateSpec) {
	var (
		_node = &CollegeStudent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collegestudent.Table, sqlgraph.NewFieldSpec(collegestudent.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collegestudent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(collegestudent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.VerificationStatus(); ok {
		_spec.SetField(collegestudent.FieldVerificationStatus, field.TypeEnum, value)
		_node.VerificationStatus = value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(collegestudent.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if nodes := _c.mutation.CollegeIDs(); len(nodes) > 0 {
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
		_node.CollegeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
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
		_node.StudentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollegeStudent.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollegeStudentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CollegeStudentCreate) OnConflict(opts ...sql.ConflictOption) *CollegeStudentUpsertOne {
	_c.conflict = opts
	return &CollegeStudentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollegeStudent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollegeStudentCreate) OnConflictColumns(columns ...string) *CollegeStudentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollegeStudentUpsertOne{
		create: _c,
	}
}

type (
	// CollegeStudentUpsertOne is the builder for "upsert"-ing
	//  one CollegeStudent node.
	CollegeStudentUpsertOne struct {
		create *CollegeStudentCreate
	}

	// CollegeStudentUpsert is the "OnConflict" setter.
	CollegeStudentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CollegeStudentUpsert) SetUpdatedAt(v time.Time) *CollegeStudentUpsert {
	u.Set(collegestudent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollegeStudentUpsert) UpdateUpdatedAt() *CollegeStudentUpsert {
	u.SetExcluded(collegestudent.FieldUpdatedAt)
	return u
}

// SetCollegeID sets the "college_id" field.
func (u *CollegeStudentUpsert) SetCollegeID(v uuid.UUID) *CollegeStudentUpsert {
	u.Set(collegestudent.FieldCollegeID, v)
	return u
}

// UpdateCollegeID sets the "college_id" field to the value that was provided on create.
func (u *CollegeStudentUpsert) UpdateCollegeID() *CollegeStudentUpsert {
	u.SetExcluded(collegestudent.FieldCollegeID)
	return u
}

// SetStudentID sets the "student_id" field.
func (u *CollegeStudentUpsert) SetStudentID(v uuid.UUID) *CollegeStudentUpsert {
	u.Set(collegestudent.FieldStudentID, v)
	return u
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *CollegeStudentUpsert) UpdateStudentID() *CollegeStudentUpsert {
	u.SetExcluded(collegestudent.FieldStudentID)
	return u
}

// SetVerificationStatus sets the "verification_status" field.
func (u *CollegeStudentUpsert) SetVerificationStatus(v collegestudent.VerificationStatus) *CollegeStudentUpsert {
	u.Set(collegestudent.FieldVerificationStatus, v)
	return u
}

// UpdateVerificationStatus sets the "verification_status" field to the value that was provided on create.
func (u *CollegeStudentUpsert) UpdateVerificationStatus() *CollegeStudentUpsert {
	u.SetExcluded(collegestudent.FieldVerificationStatus)
	return u
}

// SetVerifiedAt sets the "verified_at" field.
func (u *CollegeStudentUpsert) SetVerifiedAt(v time.Time) *CollegeStudentUpsert {
	u.Set(collegestudent.FieldVerifiedAt, v)
	return u
}

// UpdateVerifiedAt sets the "verified_at" field to the value that was provided on create.
func (u *CollegeStudentUpsert) UpdateVerifiedAt() *CollegeStudentUpsert {
	u.SetExcluded(collegestudent.FieldVerifiedAt)
	return u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (u *CollegeStudentUpsert) ClearVerifiedAt() *CollegeStudentUpsert {
	u.SetNull(collegestudent.FieldVerifiedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CollegeStudent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collegestudent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollegeStudentUpsertOne) UpdateNewValues() *CollegeStudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(collegestudent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(collegestudent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollegeStudent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollegeStudentUpsertOne) Ignore() *CollegeStudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollegeStudentUpsertOne) DoNothing() *CollegeStudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollegeStudentCreate.OnConflict
// documentation for more info.
func (u *CollegeStudentUpsertOne) Update(set func(*CollegeStudentUpsert)) *CollegeStudentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollegeStudentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollegeStudentUpsertOne) SetUpdatedAt(v time.Time) *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollegeStudentUpsertOne) UpdateUpdatedAt() *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCollegeID sets the "college_id" field.
func (u *CollegeStudentUpsertOne) SetCollegeID(v uuid.UUID) *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetCollegeID(v)
	})
}

// UpdateCollegeID sets the "college_id" field to the value that was provided on create.
func (u *CollegeStudentUpsertOne) UpdateCollegeID() *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateCollegeID()
	})
}

// SetStudentID sets the "student_id" field.
func (u *CollegeStudentUpsertOne) SetStudentID(v uuid.UUID) *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetStudentID(v)
	})
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *CollegeStudentUpsertOne) UpdateStudentID() *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateStudentID()
	})
}

// SetVerificationStatus sets the "verification_status" field.
func (u *CollegeStudentUpsertOne) SetVerificationStatus(v collegestudent.VerificationStatus) *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetVerificationStatus(v)
	})
}

// UpdateVerificationStatus sets the "verification_status" field to the value that was provided on create.
func (u *CollegeStudentUpsertOne) UpdateVerificationStatus() *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateVerificationStatus()
	})
}

// SetVerifiedAt sets the "verified_at" field.
func (u *CollegeStudentUpsertOne) SetVerifiedAt(v time.Time) *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetVerifiedAt(v)
	})
}

// UpdateVerifiedAt sets the "verified_at" field to the value that was provided on create.
func (u *CollegeStudentUpsertOne) UpdateVerifiedAt() *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateVerifiedAt()
	})
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (u *CollegeStudentUpsertOne) ClearVerifiedAt() *CollegeStudentUpsertOne {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.ClearVerifiedAt()
	})
}

// Exec executes the query.
func (u *CollegeStudentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CollegeStudentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollegeStudentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollegeStudentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CollegeStudentUpsertOne.ID is not supported by MySQL driver. Use CollegeStudentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollegeStudentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollegeStudentCreateBulk is the builder for creating many CollegeStudent entities in bulk.
type CollegeStudentCreateBulk struct {
	config
	err      error
	builders []*CollegeStudentCreate
	conflict []sql.ConflictOption
}

// Save creates the CollegeStudent entities in the database.
func (_c *CollegeStudentCreateBulk) Save(ctx context.Context) ([]*CollegeStudent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollegeStudent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollegeStudentMutation)
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
func (_c *CollegeStudentCreateBulk) SaveX(ctx context.Context) []*CollegeStudent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollegeStudentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollegeStudentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollegeStudent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollegeStudentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CollegeStudentCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollegeStudentUpsertBulk {
	_c.conflict = opts
	return &CollegeStudentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollegeStudent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollegeStudentCreateBulk) OnConflictColumns(columns ...string) *CollegeStudentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollegeStudentUpsertBulk{
		create: _c,
	}
}

// CollegeStudentUpsertBulk is the builder for "upsert"-ing
// a bulk of CollegeStudent nodes.
type CollegeStudentUpsertBulk struct {
	create *CollegeStudentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollegeStudent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collegestudent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollegeStudentUpsertBulk) UpdateNewValues() *CollegeStudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(collegestudent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(collegestudent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollegeStudent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollegeStudentUpsertBulk) Ignore() *CollegeStudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollegeStudentUpsertBulk) DoNothing() *CollegeStudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollegeStudentCreateBulk.OnConflict
// documentation for more info.
func (u *CollegeStudentUpsertBulk) Update(set func(*CollegeStudentUpsert)) *CollegeStudentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollegeStudentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollegeStudentUpsertBulk) SetUpdatedAt(v time.Time) *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollegeStudentUpsertBulk) UpdateUpdatedAt() *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCollegeID sets the "college_id" field.
func (u *CollegeStudentUpsertBulk) SetCollegeID(v uuid.UUID) *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetCollegeID(v)
	})
}

// UpdateCollegeID sets the "college_id" field to the value that was provided on create.
func (u *CollegeStudentUpsertBulk) UpdateCollegeID() *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateCollegeID()
	})
}

// SetStudentID sets the "student_id" field.
func (u *CollegeStudentUpsertBulk) SetStudentID(v uuid.UUID) *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetStudentID(v)
	})
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *CollegeStudentUpsertBulk) UpdateStudentID() *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateStudentID()
	})
}

// SetVerificationStatus sets the "verification_status" field.
func (u *CollegeStudentUpsertBulk) SetVerificationStatus(v collegestudent.VerificationStatus) *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetVerificationStatus(v)
	})
}

// UpdateVerificationStatus sets the "verification_status" field to the value that was provided on create.
func (u *CollegeStudentUpsertBulk) UpdateVerificationStatus() *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateVerificationStatus()
	})
}

// SetVerifiedAt sets the "verified_at" field.
func (u *CollegeStudentUpsertBulk) SetVerifiedAt(v time.Time) *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.SetVerifiedAt(v)
	})
}

// UpdateVerifiedAt sets the "verified_at" field to the value that was provided on create.
func (u *CollegeStudentUpsertBulk) UpdateVerifiedAt() *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.UpdateVerifiedAt()
	})
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (u *CollegeStudentUpsertBulk) ClearVerifiedAt() *CollegeStudentUpsertBulk {
	return u.Update(func(s *CollegeStudentUpsert) {
		s.ClearVerifiedAt()
	})
}

// Exec executes the query.
func (u *CollegeStudentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CollegeStudentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CollegeStudentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollegeStudentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
