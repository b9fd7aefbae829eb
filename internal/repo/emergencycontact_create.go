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
	"github.com/auxillium/auxillium_backend/internal/repo/emergencycontact"
	"github.com/google/uuid"
)

// EmergencyContactCreate is the builder for creating a EmergencyContact entity.
type EmergencyContactCreate struct {
	config
	mutation *EmergencyContactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmergencyContactCreate) SetCreatedAt(v time.Time) *EmergencyContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableCreatedAt(v *time.Time) *EmergencyContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmergencyContactCreate) SetUpdatedAt(v time.Time) *EmergencyContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableUpdatedAt(v *time.Time) *EmergencyContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EmergencyContactCreate) SetUserID(v uuid.UUID) *EmergencyContactCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *EmergencyContactCreate) SetFullName(v string) *EmergencyContactCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *EmergencyContactCreate) SetPhone(v string) *EmergencyContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *EmergencyContactCreate) SetRelationship(v string) *EmergencyContactCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableRelationship(v *string) *EmergencyContactCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *EmergencyContactCreate) SetIsPrimary(v bool) *EmergencyContactCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableIsPrimary(v *bool) *EmergencyContactCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmergencyContactCreate) SetID(v uuid.UUID) *EmergencyContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmergencyContactCreate) SetNillableID(v *uuid.UUID) *EmergencyContactCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EmergencyContactMutation object of the builder.
func (_c *EmergencyContactCreate) Mutation() *EmergencyContactMutation {
	return _c.mutation
}

// Save creates the EmergencyContact in the database.
func (_c *EmergencyContactCreate) Save(ctx context.Context) (*EmergencyContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmergencyContactCreate) SaveX(ctx context.Context) *EmergencyContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmergencyContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmergencyContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmergencyContactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emergencycontact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := emergencycontact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Relationship(); !ok {
		v := emergencycontact.DefaultRelationship
		_c.mutation.SetRelationship(v)
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := emergencycontact.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emergencycontact.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmergencyContactCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "EmergencyContact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "EmergencyContact.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "EmergencyContact.user_id"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "EmergencyContact.full_name"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "EmergencyContact.phone"`)}
	}
	if _, ok := _c.mutation.Relationship(); !ok {
		return &ValidationError{Name: "relationship", err: errors.New(`repo: missing required field "EmergencyContact.relationship"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`repo: missing required field "EmergencyContact.is_primary"`)}
	}
	return nil
}

func (_c *EmergencyContactCreate) sqlSave(ctx context.Context) (*EmergencyContact, error) {
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

func (_c *EmergencyContactCreate) createSpec() (*EmergencyContact, *sqlgraph.CreateSpec) {
	var (
		_node = &EmergencyContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emergencycontact.Table, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emergencycontact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emergencycontact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(emergencycontact.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(emergencycontact.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(emergencycontact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(emergencycontact.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(emergencycontact.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmergencyContact.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmergencyContactUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmergencyContactCreate) OnConflict(opts ...sql.ConflictOption) *EmergencyContactUpsertOne {
	_c.conflict = opts
	return &EmergencyContactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmergencyContact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmergencyContactCreate) OnConflictColumns(columns ...string) *EmergencyContactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmergencyContactUpsertOne{
		create: _c,
	}
}

type (
	// EmergencyContactUpsertOne is the builder for "upsert"-ing
	//  one EmergencyContact node.
	EmergencyContactUpsertOne struct {
		create *EmergencyContactCreate
	}

	// EmergencyContactUpsert is the "OnConflict" setter.
	EmergencyContactUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EmergencyContactUpsert) SetUpdatedAt(v time.Time) *EmergencyContactUpsert {
	u.Set(emergencycontact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmergencyContactUpsert) UpdateUpdatedAt() *EmergencyContactUpsert {
	u.SetExcluded(emergencycontact.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *EmergencyContactUpsert) SetUserID(v uuid.UUID) *EmergencyContactUpsert {
	u.Set(emergencycontact.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmergencyContactUpsert) UpdateUserID() *EmergencyContactUpsert {
	u.SetExcluded(emergencycontact.FieldUserID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *EmergencyContactUpsert) SetFullName(v string) *EmergencyContactUpsert {
	u.Set(emergencycontact.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *EmergencyContactUpsert) UpdateFullName() *EmergencyContactUpsert {
	u.SetExcluded(emergencycontact.FieldFullName)
	return u
}

// SetPhone sets the "phone" field.
func (u *EmergencyContactUpsert) SetPhone(v string) *EmergencyContactUpsert {
	u.Set(emergencycontact.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *EmergencyContactUpsert) UpdatePhone() *EmergencyContactUpsert {
	u.SetExcluded(emergencycontact.FieldPhone)
	return u
}

// SetRelationship sets the "relationship" field.
func (u *EmergencyContactUpsert) SetRelationship(v string) *EmergencyContactUpsert {
	u.Set(emergencycontact.FieldRelationship, v)
	return u
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *EmergencyContactUpsert) UpdateRelationship() *EmergencyContactUpsert {
	u.SetExcluded(emergencycontact.FieldRelationship)
	return u
}

// SetIsPrimary sets the "is_primary" field.
func (u *EmergencyContactUpsert) SetIsPrimary(v bool) *EmergencyContactUpsert {
	u.Set(emergencycontact.FieldIsPrimary, v)
	return u
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *EmergencyContactUpsert) UpdateIsPrimary() *EmergencyContactUpsert {
	u.SetExcluded(emergencycontact.FieldIsPrimary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmergencyContact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emergencycontact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmergencyContactUpsertOne) UpdateNewValues() *EmergencyContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emergencycontact.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(emergencycontact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmergencyContact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmergencyContactUpsertOne) Ignore() *EmergencyContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmergencyContactUpsertOne) DoNothing() *EmergencyContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmergencyContactCreate.OnConflict
// documentation for more info.
func (u *EmergencyContactUpsertOne) Update(set func(*EmergencyContactUpsert)) *EmergencyContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmergencyContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmergencyContactUpsertOne) SetUpdatedAt(v time.Time) *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmergencyContactUpsertOne) UpdateUpdatedAt() *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *EmergencyContactUpsertOne) SetUserID(v uuid.UUID) *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmergencyContactUpsertOne) UpdateUserID() *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *EmergencyContactUpsertOne) SetFullName(v string) *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *EmergencyContactUpsertOne) UpdateFullName() *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateFullName()
	})
}

// SetPhone sets the "phone" field.
func (u *EmergencyContactUpsertOne) SetPhone(v string) *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *EmergencyContactUpsertOne) UpdatePhone() *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdatePhone()
	})
}

// SetRelationship sets the "relationship" field.
func (u *EmergencyContactUpsertOne) SetRelationship(v string) *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetRelationship(v)
	})
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *EmergencyContactUpsertOne) UpdateRelationship() *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateRelationship()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *EmergencyContactUpsertOne) SetIsPrimary(v bool) *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *EmergencyContactUpsertOne) UpdateIsPrimary() *EmergencyContactUpsertOne {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateIsPrimary()
	})
}

// Exec executes the query.
func (u *EmergencyContactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmergencyContactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmergencyContactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmergencyContactUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EmergencyContactUpsertOne.ID is not supported by MySQL driver. Use EmergencyContactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmergencyContactUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmergencyContactCreateBulk is the builder for creating many EmergencyContact entities in bulk.
type EmergencyContactCreateBulk struct {
	config
	err      error
	builders []*EmergencyContactCreate
	conflict []sql.ConflictOption
}

// Save creates the EmergencyContact entities in the database.
func (_c *EmergencyContactCreateBulk) Save(ctx context.Context) ([]*EmergencyContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmergencyContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmergencyContactMutation)
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
func (_c *EmergencyContactCreateBulk) SaveX(ctx context.Context) []*EmergencyContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmergencyContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmergencyContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmergencyContact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmergencyContactUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmergencyContactCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmergencyContactUpsertBulk {
	_c.conflict = opts
	return &EmergencyContactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmergencyContact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmergencyContactCreateBulk) OnConflictColumns(columns ...string) *EmergencyContactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmergencyContactUpsertBulk{
		create: _c,
	}
}

// EmergencyContactUpsertBulk is the builder for "upsert"-ing
// a bulk of EmergencyContact nodes.
type EmergencyContactUpsertBulk struct {
	create *EmergencyContactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmergencyContact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emergencycontact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmergencyContactUpsertBulk) UpdateNewValues() *EmergencyContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emergencycontact.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(emergencycontact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmergencyContact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmergencyContactUpsertBulk) Ignore() *EmergencyContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmergencyContactUpsertBulk) DoNothing() *EmergencyContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmergencyContactCreateBulk.OnConflict
// documentation for more info.
func (u *EmergencyContactUpsertBulk) Update(set func(*EmergencyContactUpsert)) *EmergencyContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmergencyContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmergencyContactUpsertBulk) SetUpdatedAt(v time.Time) *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmergencyContactUpsertBulk) UpdateUpdatedAt() *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *EmergencyContactUpsertBulk) SetUserID(v uuid.UUID) *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *EmergencyContactUpsertBulk) UpdateUserID() *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *EmergencyContactUpsertBulk) SetFullName(v string) *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *EmergencyContactUpsertBulk) UpdateFullName() *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateFullName()
	})
}

// SetPhone sets the "phone" field.
func (u *EmergencyContactUpsertBulk) SetPhone(v string) *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *EmergencyContactUpsertBulk) UpdatePhone() *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdatePhone()
	})
}

// SetRelationship sets the "relationship" field.
func (u *EmergencyContactUpsertBulk) SetRelationship(v string) *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetRelationship(v)
	})
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *EmergencyContactUpsertBulk) UpdateRelationship() *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateRelationship()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *EmergencyContactUpsertBulk) SetIsPrimary(v bool) *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *EmergencyContactUpsertBulk) UpdateIsPrimary() *EmergencyContactUpsertBulk {
	return u.Update(func(s *EmergencyContactUpsert) {
		s.UpdateIsPrimary()
	})
}

// Exec executes the query.
func (u *EmergencyContactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EmergencyContactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmergencyContactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmergencyContactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
