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
	"github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
	"github.com/google/uuid"
)

// WorkshopEnrollmentCreate is the builder for creating a WorkshopEnrollment entity.
type WorkshopEnrollmentCreate struct {
	config
	mutation *WorkshopEnrollmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkshopEnrollmentCreate) SetCreatedAt(v time.Time) *WorkshopEnrollmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkshopEnrollmentCreate) SetNillableCreatedAt(v *time.Time) *WorkshopEnrollmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkshopEnrollmentCreate) SetUpdatedAt(v time.Time) *WorkshopEnrollmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkshopEnrollmentCreate) SetNillableUpdatedAt(v *time.Time) *WorkshopEnrollmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkshopID sets the "workshop_id" field.
func (_c *WorkshopEnrollmentCreate) SetWorkshopID(v uuid.UUID) *WorkshopEnrollmentCreate {
	_c.mutation.SetWorkshopID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WorkshopEnrollmentCreate) SetUserID(v uuid.UUID) *WorkshopEnrollmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkshopEnrollmentCreate) SetStatus(v workshopenrollment.Status) *WorkshopEnrollmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkshopEnrollmentCreate) SetNillableStatus(v *workshopenrollment.Status) *WorkshopEnrollmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkshopEnrollmentCreate) SetID(v uuid.UUID) *WorkshopEnrollmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkshopEnrollmentCreate) SetNillableID(v *uuid.UUID) *WorkshopEnrollmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WorkshopEnrollmentMutation object of the builder.
func (_c *WorkshopEnrollmentCreate) Mutation() *WorkshopEnrollmentMutation {
	return _c.mutation
}

// Save creates the WorkshopEnrollment in the database.
func (_c *WorkshopEnrollmentCreate) Save(ctx context.Context) (*WorkshopEnrollment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkshopEnrollmentCreate) SaveX(ctx context.Context) *WorkshopEnrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkshopEnrollmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkshopEnrollmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkshopEnrollmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workshopenrollment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workshopenrollment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workshopenrollment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workshopenrollment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkshopEnrollmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WorkshopEnrollment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "WorkshopEnrollment.updated_at"`)}
	}
	if _, ok := _c.mutation.WorkshopID(); !ok {
		return &ValidationError{Name: "workshop_id", err: errors.New(`repo: missing required field "WorkshopEnrollment.workshop_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "WorkshopEnrollment.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "WorkshopEnrollment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workshopenrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "WorkshopEnrollment.status": %w`, err)}
		}
	}
	return nil
}

func (_c *WorkshopEnrollmentCreate) sqlSave(ctx context.Context) (*WorkshopEnrollment, error) {
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

func (_c *WorkshopEnrollmentCreate) createSpec() (*WorkshopEnrollment, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkshopEnrollment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workshopenrollment.Table, sqlgraph.NewFieldSpec(workshopenrollment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workshopenrollment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workshopenrollment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.WorkshopID(); ok {
		_spec.SetField(workshopenrollment.FieldWorkshopID, field.TypeUUID, value)
		_node.WorkshopID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workshopenrollment.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workshopenrollment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkshopEnrollment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkshopEnrollmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkshopEnrollmentCreate) OnConflict(opts ...sql.ConflictOption) *WorkshopEnrollmentUpsertOne {
	_c.conflict = opts
	return &WorkshopEnrollmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkshopEnrollment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkshopEnrollmentCreate) OnConflictColumns(columns ...string) *WorkshopEnrollmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkshopEnrollmentUpsertOne{
		create: _c,
	}
}

type (
	// WorkshopEnrollmentUpsertOne is the builder for "upsert"-ing
	//  one WorkshopEnrollment node.
	WorkshopEnrollmentUpsertOne struct {
		create *WorkshopEnrollmentCreate
	}

	// WorkshopEnrollmentUpsert is the "OnConflict" setter.
	WorkshopEnrollmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkshopEnrollmentUpsert) SetUpdatedAt(v time.Time) *WorkshopEnrollmentUpsert {
	u.Set(workshopenrollment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsert) UpdateUpdatedAt() *WorkshopEnrollmentUpsert {
	u.SetExcluded(workshopenrollment.FieldUpdatedAt)
	return u
}

// SetWorkshopID sets the "workshop_id" field.
func (u *WorkshopEnrollmentUpsert) SetWorkshopID(v uuid.UUID) *WorkshopEnrollmentUpsert {
	u.Set(workshopenrollment.FieldWorkshopID, v)
	return u
}

// UpdateWorkshopID sets the "workshop_id" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsert) UpdateWorkshopID() *WorkshopEnrollmentUpsert {
	u.SetExcluded(workshopenrollment.FieldWorkshopID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *WorkshopEnrollmentUpsert) SetUserID(v uuid.UUID) *WorkshopEnrollmentUpsert {
	u.Set(workshopenrollment.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsert) UpdateUserID() *WorkshopEnrollmentUpsert {
	u.SetExcluded(workshopenrollment.FieldUserID)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkshopEnrollmentUpsert) SetStatus(v workshopenrollment.Status) *WorkshopEnrollmentUpsert {
	u.Set(workshopenrollment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsert) UpdateStatus() *WorkshopEnrollmentUpsert {
	u.SetExcluded(workshopenrollment.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkshopEnrollment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workshopenrollment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkshopEnrollmentUpsertOne) UpdateNewValues() *WorkshopEnrollmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workshopenrollment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workshopenrollment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkshopEnrollment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkshopEnrollmentUpsertOne) Ignore() *WorkshopEnrollmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkshopEnrollmentUpsertOne) DoNothing() *WorkshopEnrollmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkshopEnrollmentCreate.OnConflict
// documentation for more info.
func (u *WorkshopEnrollmentUpsertOne) Update(set func(*WorkshopEnrollmentUpsert)) *WorkshopEnrollmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkshopEnrollmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkshopEnrollmentUpsertOne) SetUpdatedAt(v time.Time) *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertOne) UpdateUpdatedAt() *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetWorkshopID sets the "workshop_id" field.
func (u *WorkshopEnrollmentUpsertOne) SetWorkshopID(v uuid.UUID) *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetWorkshopID(v)
	})
}

// UpdateWorkshopID sets the "workshop_id" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertOne) UpdateWorkshopID() *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateWorkshopID()
	})
}

// SetUserID sets the "user_id" field.
func (u *WorkshopEnrollmentUpsertOne) SetUserID(v uuid.UUID) *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertOne) UpdateUserID() *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *WorkshopEnrollmentUpsertOne) SetStatus(v workshopenrollment.Status) *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertOne) UpdateStatus() *WorkshopEnrollmentUpsertOne {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *WorkshopEnrollmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for WorkshopEnrollmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkshopEnrollmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkshopEnrollmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: WorkshopEnrollmentUpsertOne.ID is not supported by MySQL driver. Use WorkshopEnrollmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkshopEnrollmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkshopEnrollmentCreateBulk is the builder for creating many WorkshopEnrollment entities in bulk.
type WorkshopEnrollmentCreateBulk struct {
	config
	err      error
	builders []*WorkshopEnrollmentCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkshopEnrollment entities in the database.
func (_c *WorkshopEnrollmentCreateBulk) Save(ctx context.Context) ([]*WorkshopEnrollment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkshopEnrollment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkshopEnrollmentMutation)
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
func (_c *WorkshopEnrollmentCreateBulk) SaveX(ctx context.Context) []*WorkshopEnrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkshopEnrollmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkshopEnrollmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkshopEnrollment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkshopEnrollmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkshopEnrollmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkshopEnrollmentUpsertBulk {
	_c.conflict = opts
	return &WorkshopEnrollmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkshopEnrollment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkshopEnrollmentCreateBulk) OnConflictColumns(columns ...string) *WorkshopEnrollmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkshopEnrollmentUpsertBulk{
		create: _c,
	}
}

// WorkshopEnrollmentUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkshopEnrollment nodes.
type WorkshopEnrollmentUpsertBulk struct {
	create *WorkshopEnrollmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkshopEnrollment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workshopenrollment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkshopEnrollmentUpsertBulk) UpdateNewValues() *WorkshopEnrollmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workshopenrollment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workshopenrollment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkshopEnrollment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkshopEnrollmentUpsertBulk) Ignore() *WorkshopEnrollmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkshopEnrollmentUpsertBulk) DoNothing() *WorkshopEnrollmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkshopEnrollmentCreateBulk.OnConflict
// documentation for more info.
func (u *WorkshopEnrollmentUpsertBulk) Update(set func(*WorkshopEnrollmentUpsert)) *WorkshopEnrollmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkshopEnrollmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkshopEnrollmentUpsertBulk) SetUpdatedAt(v time.Time) *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertBulk) UpdateUpdatedAt() *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetWorkshopID sets the "workshop_id" field.
func (u *WorkshopEnrollmentUpsertBulk) SetWorkshopID(v uuid.UUID) *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetWorkshopID(v)
	})
}

// UpdateWorkshopID sets the "workshop_id" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertBulk) UpdateWorkshopID() *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateWorkshopID()
	})
}

// SetUserID sets the "user_id" field.
func (u *WorkshopEnrollmentUpsertBulk) SetUserID(v uuid.UUID) *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertBulk) UpdateUserID() *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *WorkshopEnrollmentUpsertBulk) SetStatus(v workshopenrollment.Status) *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkshopEnrollmentUpsertBulk) UpdateStatus() *WorkshopEnrollmentUpsertBulk {
	return u.Update(func(s *WorkshopEnrollmentUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *WorkshopEnrollmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the WorkshopEnrollmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for WorkshopEnrollmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkshopEnrollmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
