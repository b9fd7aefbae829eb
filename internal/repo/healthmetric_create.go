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
	"github.com/auxillium/auxillium_backend/internal/repo/healthmetric"
	"github.com/google/uuid"
)

// HealthMetricCreate is the builder for creating a HealthMetric entity.
type HealthMetricCreate struct {
	config
	mutation *HealthMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HealthMetricCreate) SetCreatedAt(v time.Time) *HealthMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HealthMetricCreate) SetNillableCreatedAt(v *time.Time) *HealthMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *HealthMetricCreate) SetUserID(v uuid.UUID) *HealthMetricCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *HealthMetricCreate) SetMemberID(v uuid.UUID) *HealthMetricCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetMetricType sets the "metric_type" field.
func (_c *HealthMetricCreate) SetMetricType(v healthmetric.MetricType) *HealthMetricCreate {
	_c.mutation.SetMetricType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *HealthMetricCreate) SetValue(v float64) *HealthMetricCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetValueSecondary sets the "value_secondary" field.
func (_c *HealthMetricCreate) SetValueSecondary(v float64) *HealthMetricCreate {
	_c.mutation.SetValueSecondary(v)
	return _c
}

// SetNillableValueSecondary sets the "value_secondary" field if the given value is not nil.
func (_c *HealthMetricCreate) SetNillableValueSecondary(v *float64) *HealthMetricCreate {
	if v != nil {
		_c.SetValueSecondary(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *HealthMetricCreate) SetUnit(v string) *HealthMetricCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *HealthMetricCreate) SetRecordedAt(v time.Time) *HealthMetricCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *HealthMetricCreate) SetNote(v string) *HealthMetricCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *HealthMetricCreate) SetNillableNote(v *string) *HealthMetricCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HealthMetricCreate) SetID(v uuid.UUID) *HealthMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HealthMetricCreate) SetNillableID(v *uuid.UUID) *HealthMetricCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HealthMetricMutation object of the builder.
func (_c *HealthMetricCreate) Mutation() *HealthMetricMutation {
	return _c.mutation
}

// Save creates the HealthMetric in the database.
func (_c *HealthMetricCreate) Save(ctx context.Context) (*HealthMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthMetricCreate) SaveX(ctx context.Context) *HealthMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthMetricCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := healthmetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := healthmetric.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthMetricCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HealthMetric.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "HealthMetric.user_id"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`repo: missing required field "HealthMetric.member_id"`)}
	}
	if _, ok := _c.mutation.MetricType(); !ok {
		return &ValidationError{Name: "metric_type", err: errors.New(`repo: missing required field "HealthMetric.metric_type"`)}
	}
	if v, ok := _c.mutation.MetricType(); ok {
		if err := healthmetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`repo: validator failed for field "HealthMetric.metric_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`repo: missing required field "HealthMetric.value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`repo: missing required field "HealthMetric.unit"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`repo: missing required field "HealthMetric.recorded_at"`)}
	}
	return nil
}

func (_c *HealthMetricCreate) sqlSave(ctx context.Context) (*HealthMetric, error) {
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

func (_c *HealthMetricCreate) createSpec() (*HealthMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthmetric.Table, sqlgraph.NewFieldSpec(healthmetric.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(healthmetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(healthmetric.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(healthmetric.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.MetricType(); ok {
		_spec.SetField(healthmetric.FieldMetricType, field.TypeEnum, value)
		_node.MetricType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(healthmetric.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.ValueSecondary(); ok {
		_spec.SetField(healthmetric.FieldValueSecondary, field.TypeFloat64, value)
		_node.ValueSecondary = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(healthmetric.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(healthmetric.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(healthmetric.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthMetric.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthMetricUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthMetricCreate) OnConflict(opts ...sql.ConflictOption) *HealthMetricUpsertOne {
	_c.conflict = opts
	return &HealthMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthMetricCreate) OnConflictColumns(columns ...string) *HealthMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthMetricUpsertOne{
		create: _c,
	}
}

type (
	// HealthMetricUpsertOne is the builder for "upsert"-ing
	//  one HealthMetric node.
	HealthMetricUpsertOne struct {
		create *HealthMetricCreate
	}

	// HealthMetricUpsert is the "OnConflict" setter.
	HealthMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *HealthMetricUpsert) SetUserID(v uuid.UUID) *HealthMetricUpsert {
	u.Set(healthmetric.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateUserID() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldUserID)
	return u
}

// SetMemberID sets the "member_id" field.
func (u *HealthMetricUpsert) SetMemberID(v uuid.UUID) *HealthMetricUpsert {
	u.Set(healthmetric.FieldMemberID, v)
	return u
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateMemberID() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldMemberID)
	return u
}

// SetMetricType sets the "metric_type" field.
func (u *HealthMetricUpsert) SetMetricType(v healthmetric.MetricType) *HealthMetricUpsert {
	u.Set(healthmetric.FieldMetricType, v)
	return u
}

// UpdateMetricType sets the "metric_type" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateMetricType() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldMetricType)
	return u
}

// SetValue sets the "value" field.
func (u *HealthMetricUpsert) SetValue(v float64) *HealthMetricUpsert {
	u.Set(healthmetric.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateValue() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *HealthMetricUpsert) AddValue(v float64) *HealthMetricUpsert {
	u.Add(healthmetric.FieldValue, v)
	return u
}

// SetValueSecondary sets the "value_secondary" field.
func (u *HealthMetricUpsert) SetValueSecondary(v float64) *HealthMetricUpsert {
	u.Set(healthmetric.FieldValueSecondary, v)
	return u
}

// UpdateValueSecondary sets the "value_secondary" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateValueSecondary() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldValueSecondary)
	return u
}

// AddValueSecondary adds v to the "value_secondary" field.
func (u *HealthMetricUpsert) AddValueSecondary(v float64) *HealthMetricUpsert {
	u.Add(healthmetric.FieldValueSecondary, v)
	return u
}

// ClearValueSecondary clears the value of the "value_secondary" field.
func (u *HealthMetricUpsert) ClearValueSecondary() *HealthMetricUpsert {
	u.SetNull(healthmetric.FieldValueSecondary)
	return u
}

// SetUnit sets the "unit" field.
func (u *HealthMetricUpsert) SetUnit(v string) *HealthMetricUpsert {
	u.Set(healthmetric.FieldUnit, v)
	return u
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateUnit() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldUnit)
	return u
}

// SetRecordedAt sets the "recorded_at" field.
func (u *HealthMetricUpsert) SetRecordedAt(v time.Time) *HealthMetricUpsert {
	u.Set(healthmetric.FieldRecordedAt, v)
	return u
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateRecordedAt() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldRecordedAt)
	return u
}

// SetNote sets the "note" field.
func (u *HealthMetricUpsert) SetNote(v string) *HealthMetricUpsert {
	u.Set(healthmetric.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *HealthMetricUpsert) UpdateNote() *HealthMetricUpsert {
	u.SetExcluded(healthmetric.FieldNote)
	return u
}

// ClearNote clears the value of the "note" field.
func (u *HealthMetricUpsert) ClearNote() *HealthMetricUpsert {
	u.SetNull(healthmetric.FieldNote)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HealthMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthmetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthMetricUpsertOne) UpdateNewValues() *HealthMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(healthmetric.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(healthmetric.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HealthMetricUpsertOne) Ignore() *HealthMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthMetricUpsertOne) DoNothing() *HealthMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthMetricCreate.OnConflict
// documentation for more info.
func (u *HealthMetricUpsertOne) Update(set func(*HealthMetricUpsert)) *HealthMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *HealthMetricUpsertOne) SetUserID(v uuid.UUID) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateUserID() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateUserID()
	})
}

// SetMemberID sets the "member_id" field.
func (u *HealthMetricUpsertOne) SetMemberID(v uuid.UUID) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateMemberID() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateMemberID()
	})
}

// SetMetricType sets the "metric_type" field.
func (u *HealthMetricUpsertOne) SetMetricType(v healthmetric.MetricType) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetMetricType(v)
	})
}

// UpdateMetricType sets the "metric_type" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateMetricType() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateMetricType()
	})
}

// SetValue sets the "value" field.
func (u *HealthMetricUpsertOne) SetValue(v float64) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *HealthMetricUpsertOne) AddValue(v float64) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateValue() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateValue()
	})
}

// SetValueSecondary sets the "value_secondary" field.
func (u *HealthMetricUpsertOne) SetValueSecondary(v float64) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetValueSecondary(v)
	})
}

// AddValueSecondary adds v to the "value_secondary" field.
func (u *HealthMetricUpsertOne) AddValueSecondary(v float64) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.AddValueSecondary(v)
	})
}

// UpdateValueSecondary sets the "value_secondary" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateValueSecondary() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateValueSecondary()
	})
}

// ClearValueSecondary clears the value of the "value_secondary" field.
func (u *HealthMetricUpsertOne) ClearValueSecondary() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.ClearValueSecondary()
	})
}

// SetUnit sets the "unit" field.
func (u *HealthMetricUpsertOne) SetUnit(v string) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateUnit() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateUnit()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *HealthMetricUpsertOne) SetRecordedAt(v time.Time) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateRecordedAt() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateRecordedAt()
	})
}

// SetNote sets the "note" field.
func (u *HealthMetricUpsertOne) SetNote(v string) *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *HealthMetricUpsertOne) UpdateNote() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *HealthMetricUpsertOne) ClearNote() *HealthMetricUpsertOne {
	return u.Update(func(s *HealthMetricUpsert) {
		s.ClearNote()
	})
}

// Exec executes the query.
func (u *HealthMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HealthMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HealthMetricUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HealthMetricUpsertOne.ID is not supported by MySQL driver. Use HealthMetricUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HealthMetricUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HealthMetricCreateBulk is the builder for creating many HealthMetric entities in bulk.
type HealthMetricCreateBulk struct {
	config
	err      error
	builders []*HealthMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the HealthMetric entities in the database.
func (_c *HealthMetricCreateBulk) Save(ctx context.Context) ([]*HealthMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthMetricMutation)
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
func (_c *HealthMetricCreateBulk) SaveX(ctx context.Context) []*HealthMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthMetricUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *HealthMetricUpsertBulk {
	_c.conflict = opts
	return &HealthMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthMetricCreateBulk) OnConflictColumns(columns ...string) *HealthMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthMetricUpsertBulk{
		create: _c,
	}
}

// HealthMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of HealthMetric nodes.
type HealthMetricUpsertBulk struct {
	create *HealthMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HealthMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthmetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthMetricUpsertBulk) UpdateNewValues() *HealthMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(healthmetric.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(healthmetric.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HealthMetricUpsertBulk) Ignore() *HealthMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthMetricUpsertBulk) DoNothing() *HealthMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthMetricCreateBulk.OnConflict
// documentation for more info.
func (u *HealthMetricUpsertBulk) Update(set func(*HealthMetricUpsert)) *HealthMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *HealthMetricUpsertBulk) SetUserID(v uuid.UUID) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateUserID() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateUserID()
	})
}

// SetMemberID sets the "member_id" field.
func (u *HealthMetricUpsertBulk) SetMemberID(v uuid.UUID) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateMemberID() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateMemberID()
	})
}

// SetMetricType sets the "metric_type" field.
func (u *HealthMetricUpsertBulk) SetMetricType(v healthmetric.MetricType) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetMetricType(v)
	})
}

// UpdateMetricType sets the "metric_type" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateMetricType() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateMetricType()
	})
}

// SetValue sets the "value" field.
func (u *HealthMetricUpsertBulk) SetValue(v float64) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *HealthMetricUpsertBulk) AddValue(v float64) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateValue() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateValue()
	})
}

// SetValueSecondary sets the "value_secondary" field.
func (u *HealthMetricUpsertBulk) SetValueSecondary(v float64) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetValueSecondary(v)
	})
}

// AddValueSecondary adds v to the "value_secondary" field.
func (u *HealthMetricUpsertBulk) AddValueSecondary(v float64) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.AddValueSecondary(v)
	})
}

// UpdateValueSecondary sets the "value_secondary" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateValueSecondary() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateValueSecondary()
	})
}

// ClearValueSecondary clears the value of the "value_secondary" field.
func (u *HealthMetricUpsertBulk) ClearValueSecondary() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.ClearValueSecondary()
	})
}

// SetUnit sets the "unit" field.
func (u *HealthMetricUpsertBulk) SetUnit(v string) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateUnit() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateUnit()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *HealthMetricUpsertBulk) SetRecordedAt(v time.Time) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateRecordedAt() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateRecordedAt()
	})
}

// SetNote sets the "note" field.
func (u *HealthMetricUpsertBulk) SetNote(v string) *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *HealthMetricUpsertBulk) UpdateNote() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *HealthMetricUpsertBulk) ClearNote() *HealthMetricUpsertBulk {
	return u.Update(func(s *HealthMetricUpsert) {
		s.ClearNote()
	})
}

// Exec executes the query.
func (u *HealthMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HealthMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HealthMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
