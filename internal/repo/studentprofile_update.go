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
	"github.com/internlink/internlink_backend/internal/repo/predicate"
	"github.com/internlink/internlink_backend/internal/repo/studentprofile"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// StudentProfileUpdate is the builder for updating StudentProfile entities.
type StudentProfileUpdate struct {
	config
	hooks    []Hook
	mutation *StudentProfileMutation
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdate) Where(ps ...predicate.StudentProfile) *StudentProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProfileUpdate) SetUpdatedAt(v time.Time) *StudentProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudentProfileUpdate) SetUserID(v uuid.UUID) *StudentProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableUserID(v *uuid.UUID) *StudentProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *StudentProfileUpdate) SetFirstName(v string) *StudentProfileUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableFirstName(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *StudentProfileUpdate) SetLastName(v string) *StudentProfileUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableLastName(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *StudentProfileUpdate) ClearLastName() *StudentProfileUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetCollege sets the "college" field.
func (_u *StudentProfileUpdate) SetCollege(v string) *StudentProfileUpdate {
	_u.mutation.SetCollege(v)
	return _u
}

// SetNillableCollege sets the "college" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableCollege(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetCollege(*v)
	}
	return _u
}

// ClearCollege clears the value of the "college" field.
func (_u *StudentProfileUpdate) ClearCollege() *StudentProfileUpdate {
	_u.mutation.ClearCollege()
	return _u
}

// SetDegree sets the "degree" field.
func (_u *StudentProfileUpdate) SetDegree(v string) *StudentProfileUpdate {
	_u.mutation.SetDegree(v)
	return _u
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableDegree(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetDegree(*v)
	}
	return _u
}

// ClearDegree clears the value of the "degree" field.
func (_u *StudentProfileUpdate) ClearDegree() *StudentProfileUpdate {
	_u.mutation.ClearDegree()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *StudentProfileUpdate) SetBranch(v string) *StudentProfileUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableBranch(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *StudentProfileUpdate) ClearBranch() *StudentProfileUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetGraduationYear sets the "graduation_year" field.
func (_u *StudentProfileUpdate) SetGraduationYear(v int) *StudentProfileUpdate {
	_u.mutation.ResetGraduationYear()
	_u.mutation.SetGraduationYear(v)
	return _u
}

// SetNillableGraduationYear sets the "graduation_year" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableGraduationYear(v *int) *StudentProfileUpdate {
	if v != nil {
		_u.SetGraduationYear(*v)
	}
	return _u
}

// AddGraduationYear adds value to the "graduation_year" field.
func (_u *StudentProfileUpdate) AddGraduationYear(v int) *StudentProfileUpdate {
	_u.mutation.AddGraduationYear(v)
	return _u
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (_u *StudentProfileUpdate) ClearGraduationYear() *StudentProfileUpdate {
	_u.mutation.ClearGraduationYear()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *StudentProfileUpdate) SetSkills(v string) *StudentProfileUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableSkills(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetSkills(*v)
	}
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *StudentProfileUpdate) ClearSkills() *StudentProfileUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetBio sets the "bio" field.
func (_u *StudentProfileUpdate) SetBio(v string) *StudentProfileUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableBio(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *StudentProfileUpdate) ClearBio() *StudentProfileUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetResumeKey sets the "resume_key" field.
func (_u *StudentProfileUpdate) SetResumeKey(v string) *StudentProfileUpdate {
	_u.mutation.SetResumeKey(v)
	return _u
}

// SetNillableResumeKey sets the "resume_key" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableResumeKey(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetResumeKey(*v)
	}
	return _u
}

// ClearResumeKey clears the value of the "resume_key" field.
func (_u *StudentProfileUpdate) ClearResumeKey() *StudentProfileUpdate {
	_u.mutation.ClearResumeKey()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *StudentProfileUpdate) SetUser(v *User) *StudentProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdate) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *StudentProfileUpdate) ClearUser() *StudentProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := studentprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := studentprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.College(); ok {
		if err := studentprofile.CollegeValidator(v); err != nil {
			return &ValidationError{Name: "college", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.college": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Degree(); ok {
		if err := studentprofile.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.degree": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Branch(); ok {
		if err := studentprofile.BranchValidator(v); err != nil {
			return &ValidationError{Name: "branch", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.branch": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResumeKey(); ok {
		if err := studentprofile.ResumeKeyValidator(v); err != nil {
			return &ValidationError{Name: "resume_key", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.resume_key": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StudentProfile.user"`)
	}
	return nil
}

func (_u *StudentProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(studentprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(studentprofile.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(studentprofile.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.College(); ok {
		_spec.SetField(studentprofile.FieldCollege, field.TypeString, value)
	}
	if _u.mutation.CollegeCleared() {
		_spec.ClearField(studentprofile.FieldCollege, field.TypeString)
	}
	if value, ok := _u.mutation.Degree(); ok {
		_spec.SetField(studentprofile.FieldDegree, field.TypeString, value)
	}
	if _u.mutation.DegreeCleared() {
		_spec.ClearField(studentprofile.FieldDegree, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(studentprofile.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(studentprofile.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.GraduationYear(); ok {
		_spec.SetField(studentprofile.FieldGraduationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraduationYear(); ok {
		_spec.AddField(studentprofile.FieldGraduationYear, field.TypeInt, value)
	}
	if _u.mutation.GraduationYearCleared() {
		_spec.ClearField(studentprofile.FieldGraduationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(studentprofile.FieldSkills, field.TypeString, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(studentprofile.FieldSkills, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(studentprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(studentprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.ResumeKey(); ok {
		_spec.SetField(studentprofile.FieldResumeKey, field.TypeString, value)
	}
	if _u.mutation.ResumeKeyCleared() {
		_spec.ClearField(studentprofile.FieldResumeKey, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentProfileUpdateOne is the builder for updating a single StudentProfile entity.
type StudentProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProfileUpdateOne) SetUpdatedAt(v time.Time) *StudentProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudentProfileUpdateOne) SetUserID(v uuid.UUID) *StudentProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *StudentProfileUpdateOne) SetFirstName(v string) *StudentProfileUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableFirstName(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *StudentProfileUpdateOne) SetLastName(v string) *StudentProfileUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableLastName(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *StudentProfileUpdateOne) ClearLastName() *StudentProfileUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetCollege sets the "college" field.
func (_u *StudentProfileUpdateOne) SetCollege(v string) *StudentProfileUpdateOne {
	_u.mutation.SetCollege(v)
	return _u
}

// SetNillableCollege sets the "college" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableCollege(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetCollege(*v)
	}
	return _u
}

// ClearCollege clears the value of the "college" field.
func (_u *StudentProfileUpdateOne) ClearCollege() *StudentProfileUpdateOne {
	_u.mutation.ClearCollege()
	return _u
}

// SetDegree sets the "degree" field.
func (_u *StudentProfileUpdateOne) SetDegree(v string) *StudentProfileUpdateOne {
	_u.mutation.SetDegree(v)
	return _u
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableDegree(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetDegree(*v)
	}
	return _u
}

// ClearDegree clears the value of the "degree" field.
func (_u *StudentProfileUpdateOne) ClearDegree() *StudentProfileUpdateOne {
	_u.mutation.ClearDegree()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *StudentProfileUpdateOne) SetBranch(v string) *StudentProfileUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableBranch(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *StudentProfileUpdateOne) ClearBranch() *StudentProfileUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetGraduationYear sets the "graduation_year" field.
func (_u *StudentProfileUpdateOne) SetGraduationYear(v int) *StudentProfileUpdateOne {
	_u.mutation.ResetGraduationYear()
	_u.mutation.SetGraduationYear(v)
	return _u
}

// SetNillableGraduationYear sets the "graduation_year" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableGraduationYear(v *int) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetGraduationYear(*v)
	}
	return _u
}

// AddGraduationYear adds value to the "graduation_year" field.
func (_u *StudentProfileUpdateOne) AddGraduationYear(v int) *StudentProfileUpdateOne {
	_u.mutation.AddGraduationYear(v)
	return _u
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (_u *StudentProfileUpdateOne) ClearGraduationYear() *StudentProfileUpdateOne {
	_u.mutation.ClearGraduationYear()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *StudentProfileUpdateOne) SetSkills(v string) *StudentProfileUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// SetNillableSkills sets the "skills" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableSkills(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetSkills(*v)
	}
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *StudentProfileUpdateOne) ClearSkills() *StudentProfileUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetBio sets the "bio" field.
func (_u *StudentProfileUpdateOne) SetBio(v string) *StudentProfileUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableBio(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *StudentProfileUpdateOne) ClearBio() *StudentProfileUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetResumeKey sets the "resume_key" field.
func (_u *StudentProfileUpdateOne) SetResumeKey(v string) *StudentProfileUpdateOne {
	_u.mutation.SetResumeKey(v)
	return _u
}

// SetNillableResumeKey sets the "resume_key" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableResumeKey(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetResumeKey(*v)
	}
	return _u
}

// ClearResumeKey clears the value of the "resume_key" field.
func (_u *StudentProfileUpdateOne) ClearResumeKey() *StudentProfileUpdateOne {
	_u.mutation.ClearResumeKey()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *StudentProfileUpdateOne) SetUser(v *User) *StudentProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdateOne) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *StudentProfileUpdateOne) ClearUser() *StudentProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdateOne) Where(ps ...predicate.StudentProfile) *StudentProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentProfileUpdateOne) Select(field string, fields ...string) *StudentProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentProfile entity.
func (_u *StudentProfileUpdateOne) Save(ctx context.Context) (*StudentProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) SaveX(ctx context.Context) *StudentProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := studentprofile.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := studentprofile.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.College(); ok {
		if err := studentprofile.CollegeValidator(v); err != nil {
			return &ValidationError{Name: "college", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.college": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Degree(); ok {
		if err := studentprofile.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.degree": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Branch(); ok {
		if err := studentprofile.BranchValidator(v); err != nil {
			return &ValidationError{Name: "branch", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.branch": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResumeKey(); ok {
		if err := studentprofile.ResumeKeyValidator(v); err != nil {
			return &ValidationError{Name: "resume_key", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.resume_key": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StudentProfile.user"`)
	}
	return nil
}

func (_u *StudentProfileUpdateOne) sqlSave(ctx context.Context) (_node *StudentProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StudentProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentprofile.FieldID)
		for _, f := range fields {
			if !studentprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != studentprofile.FieldID {
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
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(studentprofile.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(studentprofile.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(studentprofile.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.College(); ok {
		_spec.SetField(studentprofile.FieldCollege, field.TypeString, value)
	}
	if _u.mutation.CollegeCleared() {
		_spec.ClearField(studentprofile.FieldCollege, field.TypeString)
	}
	if value, ok := _u.mutation.Degree(); ok {
		_spec.SetField(studentprofile.FieldDegree, field.TypeString, value)
	}
	if _u.mutation.DegreeCleared() {
		_spec.ClearField(studentprofile.FieldDegree, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(studentprofile.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(studentprofile.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.GraduationYear(); ok {
		_spec.SetField(studentprofile.FieldGraduationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraduationYear(); ok {
		_spec.AddField(studentprofile.FieldGraduationYear, field.TypeInt, value)
	}
	if _u.mutation.GraduationYearCleared() {
		_spec.ClearField(studentprofile.FieldGraduationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(studentprofile.FieldSkills, field.TypeString, value)
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(studentprofile.FieldSkills, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(studentprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(studentprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.ResumeKey(); ok {
		_spec.SetField(studentprofile.FieldResumeKey, field.TypeString, value)
	}
	if _u.mutation.ResumeKeyCleared() {
		_spec.ClearField(studentprofile.FieldResumeKey, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudentProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
