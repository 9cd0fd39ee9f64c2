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
	"github.com/internlink/internlink_backend/internal/repo/internship"
	"github.com/internlink/internlink_backend/internal/repo/user"
)

// InternshipCreate is the builder for creating a Internship entity.
type InternshipCreate struct {
	config
	mutation *InternshipMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InternshipCreate) SetCreatedAt(v time.Time) *InternshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableCreatedAt(v *time.Time) *InternshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InternshipCreate) SetUpdatedAt(v time.Time) *InternshipCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableUpdatedAt(v *time.Time) *InternshipCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *InternshipCreate) SetCompanyID(v uuid.UUID) *InternshipCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InternshipCreate) SetTitle(v string) *InternshipCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InternshipCreate) SetDescription(v string) *InternshipCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableDescription(v *string) *InternshipCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequirements sets the "requirements" field.
func (_c *InternshipCreate) SetRequirements(v string) *InternshipCreate {
	_c.mutation.SetRequirements(v)
	return _c
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableRequirements(v *string) *InternshipCreate {
	if v != nil {
		_c.SetRequirements(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *InternshipCreate) SetLocation(v string) *InternshipCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableLocation(v *string) *InternshipCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetWorkMode sets the "work_mode" field.
func (_c *InternshipCreate) SetWorkMode(v internship.WorkMode) *InternshipCreate {
	_c.mutation.SetWorkMode(v)
	return _c
}

// SetNillableWorkMode sets the "work_mode" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableWorkMode(v *internship.WorkMode) *InternshipCreate {
	if v != nil {
		_c.SetWorkMode(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *InternshipCreate) SetDuration(v string) *InternshipCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableDuration(v *string) *InternshipCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetStipend sets the "stipend" field.
func (_c *InternshipCreate) SetStipend(v string) *InternshipCreate {
	_c.mutation.SetStipend(v)
	return _c
}

// SetNillableStipend sets the "stipend" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableStipend(v *string) *InternshipCreate {
	if v != nil {
		_c.SetStipend(*v)
	}
	return _c
}

// SetApplicationDeadline sets the "application_deadline" field.
func (_c *InternshipCreate) SetApplicationDeadline(v time.Time) *InternshipCreate {
	_c.mutation.SetApplicationDeadline(v)
	return _c
}

// SetNillableApplicationDeadline sets the "application_deadline" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableApplicationDeadline(v *time.Time) *InternshipCreate {
	if v != nil {
		_c.SetApplicationDeadline(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InternshipCreate) SetStatus(v internship.Status) *InternshipCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableStatus(v *internship.Status) *InternshipCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InternshipCreate) SetID(v uuid.UUID) *InternshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InternshipCreate) SetNillableID(v *uuid.UUID) *InternshipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the User entity.
func (_c *InternshipCreate) SetCompany(v *User) *InternshipCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the InternshipMutation object of the builder.
func (_c *InternshipCreate) Mutation() *InternshipMutation {
	return _c.mutation
}

// Save creates the Internship in the database.
func (_c *InternshipCreate) Save(ctx context.Context) (*Internship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InternshipCreate) SaveX(ctx context.Context) *Internship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InternshipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := internship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := internship.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.WorkMode(); !ok {
		v := internship.DefaultWorkMode
		_c.mutation.SetWorkMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := internship.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := internship.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InternshipCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Internship.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Internship.updated_at"`)}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`repo: missing required field "Internship.company_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Internship.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := internship.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Internship.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := internship.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Internship.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkMode(); !ok {
		return &ValidationError{Name: "work_mode", err: errors.New(`repo: missing required field "Internship.work_mode"`)}
	}
	if v, ok := _c.mutation.WorkMode(); ok {
		if err := internship.WorkModeValidator(v); err != nil {
			return &ValidationError{Name: "work_mode", err: fmt.Errorf(`repo: validator failed for field "Internship.work_mode": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := internship.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "Internship.duration": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Stipend(); ok {
		if err := internship.StipendValidator(v); err != nil {
			return &ValidationError{Name: "stipend", err: fmt.Errorf(`repo: validator failed for field "Internship.stipend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Internship.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := internship.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Internship.status": %w`, err)}
		}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`repo: missing required edge "Internship.company"`)}
	}
	return nil
}

func (_c *InternshipCreate) sqlSave(ctx context.Context) (*Internship, error) {
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

func (_c *InternshipCreate) createSpec() (*Internship, *sqlgraph.CreateSpec) {
	var (
		_node = &Internship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(internship.Table, sqlgraph.NewFieldSpec(internship.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(internship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(internship.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(internship.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(internship.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Requirements(); ok {
		_spec.SetField(internship.FieldRequirements, field.TypeString, value)
		_node.Requirements = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(internship.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.WorkMode(); ok {
		_spec.SetField(internship.FieldWorkMode, field.TypeEnum, value)
		_node.WorkMode = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(internship.FieldDuration, field.TypeString, value)
		_node.Duration = &value
	}
	if value, ok := _c.mutation.Stipend(); ok {
		_spec.SetField(internship.FieldStipend, field.TypeString, value)
		_node.Stipend = &value
	}
	if value, ok := _c.mutation.ApplicationDeadline(); ok {
		_spec.SetField(internship.FieldApplicationDeadline, field.TypeTime, value)
		_node.ApplicationDeadline = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(internship.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Internship.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InternshipUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InternshipCreate) OnConflict(opts ...sql.ConflictOption) *InternshipUpsertOne {
	_c.conflict = opts
	return &InternshipUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Internship.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InternshipCreate) OnConflictColumns(columns ...string) *InternshipUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InternshipUpsertOne{
		create: _c,
	}
}

type (
	// InternshipUpsertOne is the builder for "upsert"-ing
	//  one Internship node.
	InternshipUpsertOne struct {
		create *InternshipCreate
	}

	// InternshipUpsert is the "OnConflict" setter.
	InternshipUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InternshipUpsert) SetUpdatedAt(v time.Time) *InternshipUpsert {
	u.Set(internship.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateUpdatedAt() *InternshipUpsert {
	u.SetExcluded(internship.FieldUpdatedAt)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *InternshipUpsert) SetCompanyID(v uuid.UUID) *InternshipUpsert {
	u.Set(internship.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateCompanyID() *InternshipUpsert {
	u.SetExcluded(internship.FieldCompanyID)
	return u
}

// SetTitle sets the "title" field.
func (u *InternshipUpsert) SetTitle(v string) *InternshipUpsert {
	u.Set(internship.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateTitle() *InternshipUpsert {
	u.SetExcluded(internship.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *InternshipUpsert) SetDescription(v string) *InternshipUpsert {
	u.Set(internship.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateDescription() *InternshipUpsert {
	u.SetExcluded(internship.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *InternshipUpsert) ClearDescription() *InternshipUpsert {
	u.SetNull(internship.FieldDescription)
	return u
}

// SetRequirements sets the "requirements" field.
func (u *InternshipUpsert) SetRequirements(v string) *InternshipUpsert {
	u.Set(internship.FieldRequirements, v)
	return u
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateRequirements() *InternshipUpsert {
	u.SetExcluded(internship.FieldRequirements)
	return u
}

// ClearRequirements clears the value of the "requirements" field.
func (u *InternshipUpsert) ClearRequirements() *InternshipUpsert {
	u.SetNull(internship.FieldRequirements)
	return u
}

// SetLocation sets the "location" field.
func (u *InternshipUpsert) SetLocation(v string) *InternshipUpsert {
	u.Set(internship.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateLocation() *InternshipUpsert {
	u.SetExcluded(internship.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *InternshipUpsert) ClearLocation() *InternshipUpsert {
	u.SetNull(internship.FieldLocation)
	return u
}

// SetWorkMode sets the "work_mode" field.
func (u *InternshipUpsert) SetWorkMode(v internship.WorkMode) *InternshipUpsert {
	u.Set(internship.FieldWorkMode, v)
	return u
}

// UpdateWorkMode sets the "work_mode" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateWorkMode() *InternshipUpsert {
	u.SetExcluded(internship.FieldWorkMode)
	return u
}

// SetDuration sets the "duration" field.
func (u *InternshipUpsert) SetDuration(v string) *InternshipUpsert {
	u.Set(internship.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateDuration() *InternshipUpsert {
	u.SetExcluded(internship.FieldDuration)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *InternshipUpsert) ClearDuration() *InternshipUpsert {
	u.SetNull(internship.FieldDuration)
	return u
}

// SetStipend sets the "stipend" field.
func (u *InternshipUpsert) SetStipend(v string) *InternshipUpsert {
	u.Set(internship.FieldStipend, v)
	return u
}

// UpdateStipend sets the "stipend" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateStipend() *InternshipUpsert {
	u.SetExcluded(internship.FieldStipend)
	return u
}

// ClearStipend clears the value of the "stipend" field.
func (u *InternshipUpsert) ClearStipend() *InternshipUpsert {
	u.SetNull(internship.FieldStipend)
	return u
}

// SetApplicationDeadline sets the "application_deadline" field.
func (u *InternshipUpsert) SetApplicationDeadline(v time.Time) *InternshipUpsert {
	u.Set(internship.FieldApplicationDeadline, v)
	return u
}

// UpdateApplicationDeadline sets the "application_deadline" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateApplicationDeadline() *InternshipUpsert {
	u.SetExcluded(internship.FieldApplicationDeadline)
	return u
}

// ClearApplicationDeadline clears the value of the "application_deadline" field.
func (u *InternshipUpsert) ClearApplicationDeadline() *InternshipUpsert {
	u.SetNull(internship.FieldApplicationDeadline)
	return u
}

// SetStatus sets the "status" field.
func (u *InternshipUpsert) SetStatus(v internship.Status) *InternshipUpsert {
	u.Set(internship.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InternshipUpsert) UpdateStatus() *InternshipUpsert {
	u.SetExcluded(internship.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Internship.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(internship.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InternshipUpsertOne) UpdateNewValues() *InternshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(internship.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(internship.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Internship.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InternshipUpsertOne) Ignore() *InternshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InternshipUpsertOne) DoNothing() *InternshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InternshipCreate.OnConflict
// documentation for more info.
func (u *InternshipUpsertOne) Update(set func(*InternshipUpsert)) *InternshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InternshipUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InternshipUpsertOne) SetUpdatedAt(v time.Time) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateUpdatedAt() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *InternshipUpsertOne) SetCompanyID(v uuid.UUID) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateCompanyID() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateCompanyID()
	})
}

// SetTitle sets the "title" field.
func (u *InternshipUpsertOne) SetTitle(v string) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateTitle() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *InternshipUpsertOne) SetDescription(v string) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateDescription() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InternshipUpsertOne) ClearDescription() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearDescription()
	})
}

// SetRequirements sets the "requirements" field.
func (u *InternshipUpsertOne) SetRequirements(v string) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetRequirements(v)
	})
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateRequirements() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateRequirements()
	})
}

// ClearRequirements clears the value of the "requirements" field.
func (u *InternshipUpsertOne) ClearRequirements() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearRequirements()
	})
}

// SetLocation sets the "location" field.
func (u *InternshipUpsertOne) SetLocation(v string) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateLocation() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *InternshipUpsertOne) ClearLocation() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearLocation()
	})
}

// SetWorkMode sets the "work_mode" field.
func (u *InternshipUpsertOne) SetWorkMode(v internship.WorkMode) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetWorkMode(v)
	})
}

// UpdateWorkMode sets the "work_mode" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateWorkMode() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateWorkMode()
	})
}

// SetDuration sets the "duration" field.
func (u *InternshipUpsertOne) SetDuration(v string) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateDuration() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *InternshipUpsertOne) ClearDuration() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearDuration()
	})
}

// SetStipend sets the "stipend" field.
func (u *InternshipUpsertOne) SetStipend(v string) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetStipend(v)
	})
}

// UpdateStipend sets the "stipend" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateStipend() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateStipend()
	})
}

// ClearStipend clears the value of the "stipend" field.
func (u *InternshipUpsertOne) ClearStipend() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearStipend()
	})
}

// SetApplicationDeadline sets the "application_deadline" field.
func (u *InternshipUpsertOne) SetApplicationDeadline(v time.Time) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetApplicationDeadline(v)
	})
}

// UpdateApplicationDeadline sets the "application_deadline" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateApplicationDeadline() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateApplicationDeadline()
	})
}

// ClearApplicationDeadline clears the value of the "application_deadline" field.
func (u *InternshipUpsertOne) ClearApplicationDeadline() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearApplicationDeadline()
	})
}

// SetStatus sets the "status" field.
func (u *InternshipUpsertOne) SetStatus(v internship.Status) *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InternshipUpsertOne) UpdateStatus() *InternshipUpsertOne {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *InternshipUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InternshipCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InternshipUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InternshipUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InternshipUpsertOne.ID is not supported by MySQL driver. Use InternshipUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InternshipUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InternshipCreateBulk is the builder for creating many Internship entities in bulk.
type InternshipCreateBulk struct {
	config
	err      error
	builders []*InternshipCreate
	conflict []sql.ConflictOption
}

// Save creates the Internship entities in the database.
func (_c *InternshipCreateBulk) Save(ctx context.Context) ([]*Internship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Internship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InternshipMutation)
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
func (_c *InternshipCreateBulk) SaveX(ctx context.Context) []*Internship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InternshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InternshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Internship.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InternshipUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InternshipCreateBulk) OnConflict(opts ...sql.ConflictOption) *InternshipUpsertBulk {
	_c.conflict = opts
	return &InternshipUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Internship.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InternshipCreateBulk) OnConflictColumns(columns ...string) *InternshipUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InternshipUpsertBulk{
		create: _c,
	}
}

// InternshipUpsertBulk is the builder for "upsert"-ing
// a bulk of Internship nodes.
type InternshipUpsertBulk struct {
	create *InternshipCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Internship.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(internship.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InternshipUpsertBulk) UpdateNewValues() *InternshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(internship.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(internship.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Internship.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InternshipUpsertBulk) Ignore() *InternshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InternshipUpsertBulk) DoNothing() *InternshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InternshipCreateBulk.OnConflict
// documentation for more info.
func (u *InternshipUpsertBulk) Update(set func(*InternshipUpsert)) *InternshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InternshipUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InternshipUpsertBulk) SetUpdatedAt(v time.Time) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateUpdatedAt() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *InternshipUpsertBulk) SetCompanyID(v uuid.UUID) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateCompanyID() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateCompanyID()
	})
}

// SetTitle sets the "title" field.
func (u *InternshipUpsertBulk) SetTitle(v string) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateTitle() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *InternshipUpsertBulk) SetDescription(v string) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateDescription() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InternshipUpsertBulk) ClearDescription() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearDescription()
	})
}

// SetRequirements sets the "requirements" field.
func (u *InternshipUpsertBulk) SetRequirements(v string) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetRequirements(v)
	})
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateRequirements() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateRequirements()
	})
}

// ClearRequirements clears the value of the "requirements" field.
func (u *InternshipUpsertBulk) ClearRequirements() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearRequirements()
	})
}

// SetLocation sets the "location" field.
func (u *InternshipUpsertBulk) SetLocation(v string) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateLocation() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *InternshipUpsertBulk) ClearLocation() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearLocation()
	})
}

// SetWorkMode sets the "work_mode" field.
func (u *InternshipUpsertBulk) SetWorkMode(v internship.WorkMode) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetWorkMode(v)
	})
}

// UpdateWorkMode sets the "work_mode" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateWorkMode() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateWorkMode()
	})
}

// SetDuration sets the "duration" field.
func (u *InternshipUpsertBulk) SetDuration(v string) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateDuration() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *InternshipUpsertBulk) ClearDuration() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearDuration()
	})
}

// SetStipend sets the "stipend" field.
func (u *InternshipUpsertBulk) SetStipend(v string) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetStipend(v)
	})
}

// UpdateStipend sets the "stipend" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateStipend() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateStipend()
	})
}

// ClearStipend clears the value of the "stipend" field.
func (u *InternshipUpsertBulk) ClearStipend() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearStipend()
	})
}

// SetApplicationDeadline sets the "application_deadline" field.
func (u *InternshipUpsertBulk) SetApplicationDeadline(v time.Time) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetApplicationDeadline(v)
	})
}

// UpdateApplicationDeadline sets the "application_deadline" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateApplicationDeadline() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateApplicationDeadline()
	})
}

// ClearApplicationDeadline clears the value of the "application_deadline" field.
func (u *InternshipUpsertBulk) ClearApplicationDeadline() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.ClearApplicationDeadline()
	})
}

// SetStatus sets the "status" field.
func (u *InternshipUpsertBulk) SetStatus(v internship.Status) *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InternshipUpsertBulk) UpdateStatus() *InternshipUpsertBulk {
	return u.Update(func(s *InternshipUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *InternshipUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InternshipCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InternshipCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InternshipUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
