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
	"github.com/auxillium/auxillium_backend/internal/repo/blooddonation"
	"github.com/google/uuid"
)

// BloodDonationCreate is the builder for creating a BloodDonation entity.
type BloodDonationCreate struct {
	config
	mutation *BloodDonationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BloodDonationCreate) SetCreatedAt(v time.Time) *BloodDonationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BloodDonationCreate) SetNillableCreatedAt(v *time.Time) *BloodDonationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDonorID sets the "donor_id" field.
func (_c *BloodDonationCreate) SetDonorID(v uuid.UUID) *BloodDonationCreate {
	_c.mutation.SetDonorID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *BloodDonationCreate) SetRequestID(v uuid.UUID) *BloodDonationCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *BloodDonationCreate) SetNillableRequestID(v *uuid.UUID) *BloodDonationCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *BloodDonationCreate) SetBloodType(v blooddonation.BloodType) *BloodDonationCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetUnits sets the "units" field.
func (_c *BloodDonationCreate) SetUnits(v int) *BloodDonationCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_c *BloodDonationCreate) SetNillableUnits(v *int) *BloodDonationCreate {
	if v != nil {
		_c.SetUnits(*v)
	}
	return _c
}

// SetDonatedAt sets the "donated_at" field.
func (_c *BloodDonationCreate) SetDonatedAt(v time.Time) *BloodDonationCreate {
	_c.mutation.SetDonatedAt(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *BloodDonationCreate) SetLocation(v string) *BloodDonationCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *BloodDonationCreate) SetNillableLocation(v *string) *BloodDonationCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BloodDonationCreate) SetID(v uuid.UUID) *BloodDonationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BloodDonationCreate) SetNillableID(v *uuid.UUID) *BloodDonationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BloodDonationMutation object of the builder.
func (_c *BloodDonationCreate) Mutation() *BloodDonationMutation {
	return _c.mutation
}

// Save creates the BloodDonation in the database.
func (_c *BloodDonationCreate) Save(ctx context.Context) (*BloodDonation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BloodDonationCreate) SaveX(ctx context.Context) *BloodDonation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BloodDonationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BloodDonationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BloodDonationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blooddonation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Units(); !ok {
		v := blooddonation.DefaultUnits
		_c.mutation.SetUnits(v)
	}
	if _, ok := _c.mutation.Location(); !ok {
		v := blooddonation.DefaultLocation
		_c.mutation.SetLocation(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blooddonation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BloodDonationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BloodDonation.created_at"`)}
	}
	if _, ok := _c.mutation.DonorID(); !ok {
		return &ValidationError{Name: "donor_id", err: errors.New(`repo: missing required field "BloodDonation.donor_id"`)}
	}
	if _, ok := _c.mutation.BloodType(); !ok {
		return &ValidationError{Name: "blood_type", err: errors.New(`repo: missing required field "BloodDonation.blood_type"`)}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := blooddonation.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "BloodDonation.blood_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Units(); !ok {
		return &ValidationError{Name: "units", err: errors.New(`repo: missing required field "BloodDonation.units"`)}
	}
	if _, ok := _c.mutation.DonatedAt(); !ok {
		return &ValidationError{Name: "donated_at", err: errors.New(`repo: missing required field "BloodDonation.donated_at"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`repo: missing required field "BloodDonation.location"`)}
	}
	return nil
}

func (_c *BloodDonationCreate) sqlSave(ctx context.Context) (*BloodDonation, error) {
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

func (_c *BloodDonationCreate) createSpec() (*BloodDonation, *sqlgraph.CreateSpec) {
	var (
		_node = &BloodDonation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blooddonation.Table, sqlgraph.NewFieldSpec(blooddonation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blooddonation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DonorID(); ok {
		_spec.SetField(blooddonation.FieldDonorID, field.TypeUUID, value)
		_node.DonorID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(blooddonation.FieldRequestID, field.TypeUUID, value)
		_node.RequestID = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(blooddonation.FieldBloodType, field.TypeEnum, value)
		_node.BloodType = value
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(blooddonation.FieldUnits, field.TypeInt, value)
		_node.Units = value
	}
	if value, ok := _c.mutation.DonatedAt(); ok {
		_spec.SetField(blooddonation.FieldDonatedAt, field.TypeTime, value)
		_node.DonatedAt = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(blooddonation.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BloodDonation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BloodDonationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BloodDonationCreate) OnConflict(opts ...sql.ConflictOption) *BloodDonationUpsertOne {
	_c.conflict = opts
	return &BloodDonationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BloodDonation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BloodDonationCreate) OnConflictColumns(columns ...string) *BloodDonationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BloodDonationUpsertOne{
		create: _c,
	}
}

type (
	// BloodDonationUpsertOne is the builder for "upsert"-ing
	//  one BloodDonation node.
	BloodDonationUpsertOne struct {
		create *BloodDonationCreate
	}

	// BloodDonationUpsert is the "OnConflict" setter.
	BloodDonationUpsert struct {
		*sql.UpdateSet
	}
)

// SetDonorID sets the "donor_id" field.
func (u *BloodDonationUpsert) SetDonorID(v uuid.UUID) *BloodDonationUpsert {
	u.Set(blooddonation.FieldDonorID, v)
	return u
}

// UpdateDonorID sets the "donor_id" field to the value that was provided on create.
func (u *BloodDonationUpsert) UpdateDonorID() *BloodDonationUpsert {
	u.SetExcluded(blooddonation.FieldDonorID)
	return u
}

// SetRequestID sets the "request_id" field.
func (u *BloodDonationUpsert) SetRequestID(v uuid.UUID) *BloodDonationUpsert {
	u.Set(blooddonation.FieldRequestID, v)
	return u
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *BloodDonationUpsert) UpdateRequestID() *BloodDonationUpsert {
	u.SetExcluded(blooddonation.FieldRequestID)
	return u
}

// ClearRequestID clears the value of the "request_id" field.
func (u *BloodDonationUpsert) ClearRequestID() *BloodDonationUpsert {
	u.SetNull(blooddonation.FieldRequestID)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *BloodDonationUpsert) SetBloodType(v blooddonation.BloodType) *BloodDonationUpsert {
	u.Set(blooddonation.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *BloodDonationUpsert) UpdateBloodType() *BloodDonationUpsert {
	u.SetExcluded(blooddonation.FieldBloodType)
	return u
}

// SetUnits sets the "units" field.
func (u *BloodDonationUpsert) SetUnits(v int) *BloodDonationUpsert {
	u.Set(blooddonation.FieldUnits, v)
	return u
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *BloodDonationUpsert) UpdateUnits() *BloodDonationUpsert {
	u.SetExcluded(blooddonation.FieldUnits)
	return u
}

// AddUnits adds v to the "units" field.
func (u *BloodDonationUpsert) AddUnits(v int) *BloodDonationUpsert {
	u.Add(blooddonation.FieldUnits, v)
	return u
}

// SetDonatedAt sets the "donated_at" field.
func (u *BloodDonationUpsert) SetDonatedAt(v time.Time) *BloodDonationUpsert {
	u.Set(blooddonation.FieldDonatedAt, v)
	return u
}

// UpdateDonatedAt sets the "donated_at" field to the value that was provided on create.
func (u *BloodDonationUpsert) UpdateDonatedAt() *BloodDonationUpsert {
	u.SetExcluded(blooddonation.FieldDonatedAt)
	return u
}

// SetLocation sets the "location" field.
func (u *BloodDonationUpsert) SetLocation(v string) *BloodDonationUpsert {
	u.Set(blooddonation.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *BloodDonationUpsert) UpdateLocation() *BloodDonationUpsert {
	u.SetExcluded(blooddonation.FieldLocation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BloodDonation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blooddonation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BloodDonationUpsertOne) UpdateNewValues() *BloodDonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(blooddonation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(blooddonation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BloodDonation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BloodDonationUpsertOne) Ignore() *BloodDonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BloodDonationUpsertOne) DoNothing() *BloodDonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BloodDonationCreate.OnConflict
// documentation for more info.
func (u *BloodDonationUpsertOne) Update(set func(*BloodDonationUpsert)) *BloodDonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BloodDonationUpsert{UpdateSet: update})
	}))
	return u
}

// SetDonorID sets the "donor_id" field.
func (u *BloodDonationUpsertOne) SetDonorID(v uuid.UUID) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetDonorID(v)
	})
}

// UpdateDonorID sets the "donor_id" field to the value that was provided on create.
func (u *BloodDonationUpsertOne) UpdateDonorID() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateDonorID()
	})
}

// SetRequestID sets the "request_id" field.
func (u *BloodDonationUpsertOne) SetRequestID(v uuid.UUID) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *BloodDonationUpsertOne) UpdateRequestID() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *BloodDonationUpsertOne) ClearRequestID() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.ClearRequestID()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *BloodDonationUpsertOne) SetBloodType(v blooddonation.BloodType) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *BloodDonationUpsertOne) UpdateBloodType() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateBloodType()
	})
}

// SetUnits sets the "units" field.
func (u *BloodDonationUpsertOne) SetUnits(v int) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetUnits(v)
	})
}

// AddUnits adds v to the "units" field.
func (u *BloodDonationUpsertOne) AddUnits(v int) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.AddUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *BloodDonationUpsertOne) UpdateUnits() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateUnits()
	})
}

// SetDonatedAt sets the "donated_at" field.
func (u *BloodDonationUpsertOne) SetDonatedAt(v time.Time) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetDonatedAt(v)
	})
}

// UpdateDonatedAt sets the "donated_at" field to the value that was provided on create.
func (u *BloodDonationUpsertOne) UpdateDonatedAt() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateDonatedAt()
	})
}

// SetLocation sets the "location" field.
func (u *BloodDonationUpsertOne) SetLocation(v string) *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *BloodDonationUpsertOne) UpdateLocation() *BloodDonationUpsertOne {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateLocation()
	})
}

// Exec executes the query.
func (u *BloodDonationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BloodDonationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BloodDonationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BloodDonationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BloodDonationUpsertOne.ID is not supported by MySQL driver. Use BloodDonationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BloodDonationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BloodDonationCreateBulk is the builder for creating many BloodDonation entities in bulk.
type BloodDonationCreateBulk struct {
	config
	err      error
	builders []*BloodDonationCreate
	conflict []sql.ConflictOption
}

// Save creates the BloodDonation entities in the database.
func (_c *BloodDonationCreateBulk) Save(ctx context.Context) ([]*BloodDonation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BloodDonation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BloodDonationMutation)
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
func (_c *BloodDonationCreateBulk) SaveX(ctx context.Context) []*BloodDonation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BloodDonationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BloodDonationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BloodDonation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BloodDonationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BloodDonationCreateBulk) OnConflict(opts ...sql.ConflictOption) *BloodDonationUpsertBulk {
	_c.conflict = opts
	return &BloodDonationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BloodDonation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BloodDonationCreateBulk) OnConflictColumns(columns ...string) *BloodDonationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BloodDonationUpsertBulk{
		create: _c,
	}
}

// BloodDonationUpsertBulk is the builder for "upsert"-ing
// a bulk of BloodDonation nodes.
type BloodDonationUpsertBulk struct {
	create *BloodDonationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BloodDonation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(blooddonation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BloodDonationUpsertBulk) UpdateNewValues() *BloodDonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(blooddonation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(blooddonation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BloodDonation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BloodDonationUpsertBulk) Ignore() *BloodDonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BloodDonationUpsertBulk) DoNothing() *BloodDonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BloodDonationCreateBulk.OnConflict
// documentation for more info.
func (u *BloodDonationUpsertBulk) Update(set func(*BloodDonationUpsert)) *BloodDonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BloodDonationUpsert{UpdateSet: update})
	}))
	return u
}

// SetDonorID sets the "donor_id" field.
func (u *BloodDonationUpsertBulk) SetDonorID(v uuid.UUID) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetDonorID(v)
	})
}

// UpdateDonorID sets the "donor_id" field to the value that was provided on create.
func (u *BloodDonationUpsertBulk) UpdateDonorID() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateDonorID()
	})
}

// SetRequestID sets the "request_id" field.
func (u *BloodDonationUpsertBulk) SetRequestID(v uuid.UUID) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *BloodDonationUpsertBulk) UpdateRequestID() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *BloodDonationUpsertBulk) ClearRequestID() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.ClearRequestID()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *BloodDonationUpsertBulk) SetBloodType(v blooddonation.BloodType) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *BloodDonationUpsertBulk) UpdateBloodType() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateBloodType()
	})
}

// SetUnits sets the "units" field.
func (u *BloodDonationUpsertBulk) SetUnits(v int) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetUnits(v)
	})
}

// AddUnits adds v to the "units" field.
func (u *BloodDonationUpsertBulk) AddUnits(v int) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.AddUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *BloodDonationUpsertBulk) UpdateUnits() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateUnits()
	})
}

// SetDonatedAt sets the "donated_at" field.
func (u *BloodDonationUpsertBulk) SetDonatedAt(v time.Time) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetDonatedAt(v)
	})
}

// UpdateDonatedAt sets the "donated_at" field to the value that was provided on create.
func (u *BloodDonationUpsertBulk) UpdateDonatedAt() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateDonatedAt()
	})
}

// SetLocation sets the "location" field.
func (u *BloodDonationUpsertBulk) SetLocation(v string) *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *BloodDonationUpsertBulk) UpdateLocation() *BloodDonationUpsertBulk {
	return u.Update(func(s *BloodDonationUpsert) {
		s.UpdateLocation()
	})
}

// Exec executes the query.
func (u *BloodDonationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BloodDonationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BloodDonationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BloodDonationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
