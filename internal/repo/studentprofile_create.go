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
	"github.com/internlink/internlink_backend/internal/repo/studentprofile"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// StudentProfileCreate is the builder for creating a StudentProfile entity.
type StudentProfileCreate struct {
	config
	mutation *StudentProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentProfileCreate) SetCreatedAt(v time.Time) *StudentProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCreatedAt(v *time.Time) *StudentProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentProfileCreate) SetUpdatedAt(v time.Time) *StudentProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableUpdatedAt(v *time.Time) *StudentProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StudentProfileCreate) SetUserID(v uuid.UUID) *StudentProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *StudentProfileCreate) SetFirstName(v string) *StudentProfileCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *StudentProfileCreate) SetLastName(v string) *StudentProfileCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableLastName(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetCollege sets the "college" field.
func (_c *StudentProfileCreate) SetCollege(v string) *StudentProfileCreate {
	_c.mutation.SetCollege(v)
	return _c
}

// SetNillableCollege sets the "college" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCollege(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetCollege(*v)
	}
	return _c
}

// SetDegree sets the "degree" field.
func (_c *StudentProfileCreate) SetDegree(v string) *StudentProfileCreate {
	_c.mutation.SetDegree(v)
	return _c
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableDegree(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetDegree(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *StudentProfileCreate) SetBranch(v string) *StudentProfileCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableBranch(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetGraduationYear sets the "graduation_year" field.
func (_c *StudentProfileCreate) SetGraduationYear(v int) *StudentProfileCreate {
	_c.mutation.SetGraduationYear(v)
	return _c
}

// SetNillableGraduationYear sets the "graduation_year" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableGraduationYear(v *int) *StudentProfileCreate {
	if v != nil {
		_c.SetGraduationYear(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *StudentProfileCreate) SetSkills(v string) *StudentProfileCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableSkills(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetSkills(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *StudentProfileCreate) SetBio(v string) *StudentProfileCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableBio(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetResumeKey sets the "resume_key" field.
func (_c *StudentProfileCreate) SetResumeKey(v string) *StudentProfileCreate {
	_c.mutation.SetResumeKey(v)
	return _c
}

// SetNillableResumeKey sets the "resume_key" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableResumeKey(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetResumeKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentProfileCreate) SetID(v uuid.UUID) *StudentProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableID(v *uuid.UUID) *StudentProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *StudentProfileCreate) SetUser(v *User) *StudentProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_c *StudentProfileCreate) Mutation() *StudentProfileMutation {
	return _c.mutation
}

// Save creates the StudentProfile in the database.
func (_c *StudentProfileCreate) Save(ctx context.Context) (*StudentProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentProfileCreate) SaveX(ctx context.Context) *StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studentprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studentprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StudentProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "StudentProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "StudentProfile.user_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "StudentProfile.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := studentprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := studentprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.College(); ok {
		if err := studentprofile.CollegeValidator(v); err != nil {
			return &ValidationError{Name: "college", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.college": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Degree(); ok {
		if err := studentprofile.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.degree": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Branch(); ok {
		if err := studentprofile.BranchValidator(v); err != nil {
			return &ValidationError{Name: "branch", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.branch": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResumeKey(); ok {
		if err := studentprofile.ResumeKeyValidator(v); err != nil {
			return &ValidationError{Name: "resume_key", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.resume_key": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "StudentProfile.user"`)}
	}
	return nil
}

func (_c *StudentProfileCreate) sqlSave(ctx context.Context) (*StudentProfile, error) {
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

func (_c *StudentProfileCreate) createSpec() (*StudentProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentprofile.Table, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studentprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(studentprofile.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(studentprofile.FieldLastName, field.TypeString, value)
		_node.LastName = &value
	}
	if value, ok := _c.mutation.College(); ok {
		_spec.SetField(studentprofile.FieldCollege, field.TypeString, value)
		_node.College = &value
	}
	if value, ok := _c.mutation.Degree(); ok {
		_spec.SetField(studentprofile.FieldDegree, field.TypeString, value)
		_node.Degree = &value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(studentprofile.FieldBranch, field.TypeString, value)
		_node.Branch = &value
	}
	if value, ok := _c.mutation.GraduationYear(); ok {
		_spec.SetField(studentprofile.FieldGraduationYear, field.TypeInt, value)
		_node.GraduationYear = &value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(studentprofile.FieldSkills, field.TypeString, value)
		_node.Skills = &value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(studentprofile.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.ResumeKey(); ok {
		_spec.SetField(studentprofile.FieldResumeKey, field.TypeString, value)
		_node.ResumeKey = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   studentprofile.UserTable,
			Columns: []string{studentprofile.UserColumn},
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
//	client.StudentProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentProfileCreate) OnConflict(opts ...sql.ConflictOption) *StudentProfileUpsertOne {
	_c.conflict = opts
	return &StudentProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentProfileCreate) OnConflictColumns(columns ...string) *StudentProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentProfileUpsertOne{
		create: _c,
	}
}

type (
	// StudentProfileUpsertOne is the builder for "upsert"-ing
	//  one StudentProfile node.
	StudentProfileUpsertOne struct {
		create *StudentProfileCreate
	}

	// StudentProfileUpsert is the "OnConflict" setter.
	StudentProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentProfileUpsert) SetUpdatedAt(v time.Time) *StudentProfileUpsert {
	u.Set(studentprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateUpdatedAt() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudentProfileUpsert) SetUserID(v uuid.UUID) *StudentProfileUpsert {
	u.Set(studentprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateUserID() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldUserID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *StudentProfileUpsert) SetFirstName(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateFirstName() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *StudentProfileUpsert) SetLastName(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateLastName() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldLastName)
	return u
}

// ClearLastName clears the value of the "last_name" field.
func (u *StudentProfileUpsert) ClearLastName() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldLastName)
	return u
}

// SetCollege sets the "college" field.
func (u *StudentProfileUpsert) SetCollege(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldCollege, v)
	return u
}

// UpdateCollege sets the "college" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateCollege() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldCollege)
	return u
}

// ClearCollege clears the value of the "college" field.
func (u *StudentProfileUpsert) ClearCollege() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldCollege)
	return u
}

// SetDegree sets the "degree" field.
func (u *StudentProfileUpsert) SetDegree(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldDegree, v)
	return u
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateDegree() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldDegree)
	return u
}

// ClearDegree clears the value of the "degree" field.
func (u *StudentProfileUpsert) ClearDegree() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldDegree)
	return u
}

// SetBranch sets the "branch" field.
func (u *StudentProfileUpsert) SetBranch(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldBranch, v)
	return u
}

// UpdateBranch sets the "branch" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateBranch() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldBranch)
	return u
}

// ClearBranch clears the value of the "branch" field.
func (u *StudentProfileUpsert) ClearBranch() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldBranch)
	return u
}

// SetGraduationYear sets the "graduation_year" field.
func (u *StudentProfileUpsert) SetGraduationYear(v int) *StudentProfileUpsert {
	u.Set(studentprofile.FieldGraduationYear, v)
	return u
}

// UpdateGraduationYear sets the "graduation_year" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateGraduationYear() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldGraduationYear)
	return u
}

// AddGraduationYear adds v to the "graduation_year" field.
func (u *StudentProfileUpsert) AddGraduationYear(v int) *StudentProfileUpsert {
	u.Add(studentprofile.FieldGraduationYear, v)
	return u
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (u *StudentProfileUpsert) ClearGraduationYear() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldGraduationYear)
	return u
}

// SetSkills sets the "skills" field.
func (u *StudentProfileUpsert) SetSkills(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateSkills() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldSkills)
	return u
}

// ClearSkills clears the value of the "skills" field.
func (u *StudentProfileUpsert) ClearSkills() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldSkills)
	return u
}

// SetBio sets the "bio" field.
func (u *StudentProfileUpsert) SetBio(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateBio() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *StudentProfileUpsert) ClearBio() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldBio)
	return u
}

// SetResumeKey sets the "resume_key" field.
func (u *StudentProfileUpsert) SetResumeKey(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldResumeKey, v)
	return u
}

// UpdateResumeKey sets the "resume_key" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateResumeKey() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldResumeKey)
	return u
}

// ClearResumeKey clears the value of the "resume_key" field.
func (u *StudentProfileUpsert) ClearResumeKey() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldResumeKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentProfileUpsertOne) UpdateNewValues() *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studentprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studentprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudentProfileUpsertOne) Ignore() *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentProfileUpsertOne) DoNothing() *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentProfileCreate.OnConflict
// documentation for more info.
func (u *StudentProfileUpsertOne) Update(set func(*StudentProfileUpsert)) *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentProfileUpsertOne) SetUpdatedAt(v time.Time) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateUpdatedAt() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *StudentProfileUpsertOne) SetUserID(v uuid.UUID) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateUserID() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *StudentProfileUpsertOne) SetFirstName(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateFirstName() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *StudentProfileUpsertOne) SetLastName(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateLastName() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *StudentProfileUpsertOne) ClearLastName() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearLastName()
	})
}

// SetCollege sets the "college" field.
func (u *StudentProfileUpsertOne) SetCollege(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetCollege(v)
	})
}

// UpdateCollege sets the "college" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateCollege() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateCollege()
	})
}

// ClearCollege clears the value of the "college" field.
func (u *StudentProfileUpsertOne) ClearCollege() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearCollege()
	})
}

// SetDegree sets the "degree" field.
func (u *StudentProfileUpsertOne) SetDegree(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetDegree(v)
	})
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateDegree() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateDegree()
	})
}

// ClearDegree clears the value of the "degree" field.
func (u *StudentProfileUpsertOne) ClearDegree() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearDegree()
	})
}

// SetBranch sets the "branch" field.
func (u *StudentProfileUpsertOne) SetBranch(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetBranch(v)
	})
}

// UpdateBranch sets the "branch" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateBranch() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateBranch()
	})
}

// ClearBranch clears the value of the "branch" field.
func (u *StudentProfileUpsertOne) ClearBranch() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearBranch()
	})
}

// SetGraduationYear sets the "graduation_year" field.
func (u *StudentProfileUpsertOne) SetGraduationYear(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetGraduationYear(v)
	})
}

// AddGraduationYear adds v to the "graduation_year" field.
func (u *StudentProfileUpsertOne) AddGraduationYear(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddGraduationYear(v)
	})
}

// UpdateGraduationYear sets the "graduation_year" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateGraduationYear() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateGraduationYear()
	})
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (u *StudentProfileUpsertOne) ClearGraduationYear() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearGraduationYear()
	})
}

// SetSkills sets the "skills" field.
func (u *StudentProfileUpsertOne) SetSkills(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateSkills() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *StudentProfileUpsertOne) ClearSkills() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearSkills()
	})
}

// SetBio sets the "bio" field.
func (u *StudentProfileUpsertOne) SetBio(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateBio() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *StudentProfileUpsertOne) ClearBio() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearBio()
	})
}

// SetResumeKey sets the "resume_key" field.
func (u *StudentProfileUpsertOne) SetResumeKey(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetResumeKey(v)
	})
}

// UpdateResumeKey sets the "resume_key" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateResumeKey() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateResumeKey()
	})
}

// ClearResumeKey clears the value of the "resume_key" field.
func (u *StudentProfileUpsertOne) ClearResumeKey() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearResumeKey()
	})
}

// Exec executes the query.
func (u *StudentProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StudentProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudentProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StudentProfileUpsertOne.ID is not supported by MySQL driver. Use StudentProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudentProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudentProfileCreateBulk is the builder for creating many StudentProfile entities in bulk.
type StudentProfileCreateBulk struct {
	config
	err      error
	builders []*StudentProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the StudentProfile entities in the database.
func (_c *StudentProfileCreateBulk) Save(ctx context.Context) ([]*StudentProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentProfileMutation)
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
func (_c *StudentProfileCreateBulk) SaveX(ctx context.Context) []*StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudentProfileUpsertBulk {
	_c.conflict = opts
	return &StudentProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentProfileCreateBulk) OnConflictColumns(columns ...string) *StudentProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentProfileUpsertBulk{
		create: _c,
	}
}

// StudentProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of StudentProfile nodes.
type StudentProfileUpsertBulk struct {
	create *StudentProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentProfileUpsertBulk) UpdateNewValues() *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studentprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studentprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudentProfileUpsertBulk) Ignore() *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentProfileUpsertBulk) DoNothing() *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentProfileCreateBulk.OnConflict
// documentation for more info.
func (u *StudentProfileUpsertBulk) Update(set func(*StudentProfileUpsert)) *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentProfileUpsertBulk) SetUpdatedAt(v time.Time) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateUpdatedAt() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *StudentProfileUpsertBulk) SetUserID(v uuid.UUID) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateUserID() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *StudentProfileUpsertBulk) SetFirstName(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateFirstName() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *StudentProfileUpsertBulk) SetLastName(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateLastName() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *StudentProfileUpsertBulk) ClearLastName() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearLastName()
	})
}

// SetCollege sets the "college" field.
func (u *StudentProfileUpsertBulk) SetCollege(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetCollege(v)
	})
}

// UpdateCollege sets the "college" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateCollege() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateCollege()
	})
}

// ClearCollege clears the value of the "college" field.
func (u *StudentProfileUpsertBulk) ClearCollege() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearCollege()
	})
}

// SetDegree sets the "degree" field.
func (u *StudentProfileUpsertBulk) SetDegree(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetDegree(v)
	})
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateDegree() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateDegree()
	})
}

// ClearDegree clears the value of the "degree" field.
func (u *StudentProfileUpsertBulk) ClearDegree() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearDegree()
	})
}

// SetBranch sets the "branch" field.
func (u *StudentProfileUpsertBulk) SetBranch(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetBranch(v)
	})
}

// UpdateBranch sets the "branch" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateBranch() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateBranch()
	})
}

// ClearBranch clears the value of the "branch" field.
func (u *StudentProfileUpsertBulk) ClearBranch() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearBranch()
	})
}

// SetGraduationYear sets the "graduation_year" field.
func (u *StudentProfileUpsertBulk) SetGraduationYear(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetGraduationYear(v)
	})
}

// AddGraduationYear adds v to the "graduation_year" field.
func (u *StudentProfileUpsertBulk) AddGraduationYear(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddGraduationYear(v)
	})
}

// UpdateGraduationYear sets the "graduation_year" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateGraduationYear() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateGraduationYear()
	})
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (u *StudentProfileUpsertBulk) ClearGraduationYear() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearGraduationYear()
	})
}

// SetSkills sets the "skills" field.
func (u *StudentProfileUpsertBulk) SetSkills(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateSkills() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *StudentProfileUpsertBulk) ClearSkills() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearSkills()
	})
}

// SetBio sets the "bio" field.
func (u *StudentProfileUpsertBulk) SetBio(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateBio() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *StudentProfileUpsertBulk) ClearBio() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearBio()
	})
}

// SetResumeKey sets the "resume_key" field.
func (u *StudentProfileUpsertBulk) SetResumeKey(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetResumeKey(v)
	})
}

// UpdateResumeKey sets the "resume_key" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateResumeKey() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateResumeKey()
	})
}

// ClearResumeKey clears the value of the "resume_key" field.
func (u *StudentProfileUpsertBulk) ClearResumeKey() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearResumeKey()
	})
}

// Exec executes the query.
func (u *StudentProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StudentProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StudentProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
