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
	"github.com/auxillium/auxillium_backend/internal/repo/donation"
	"github.com/google/uuid"
)

// DonationCreate is the builder for creating a Donation entity.
type DonationCreate struct {
	config
	mutation *DonationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DonationCreate) SetCreatedAt(v time.Time) *DonationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DonationCreate) SetNillableCreatedAt(v *time.Time) *DonationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInitiativeID sets the "initiative_id" field.
func (_c *DonationCreate) SetInitiativeID(v uuid.UUID) *DonationCreate {
	_c.mutation.SetInitiativeID(v)
	return _c
}

// SetDonorID sets the "donor_id" field.
func (_c *DonationCreate) SetDonorID(v uuid.UUID) *DonationCreate {
	_c.mutation.SetDonorID(v)
	return _c
}

// SetNillableDonorID sets the "donor_id" field if the given value is not nil.
func (_c *DonationCreate) SetNillableDonorID(v *uuid.UUID) *DonationCreate {
	if v != nil {
		_c.SetDonorID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *DonationCreate) SetAmount(v int64) *DonationCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetAnonymous sets the "anonymous" field.
func (_c *DonationCreate) SetAnonymous(v bool) *DonationCreate {
	_c.mutation.SetAnonymous(v)
	return _c
}

// SetNillableAnonymous sets the "anonymous" field if the given value is not nil.
func (_c *DonationCreate) SetNillableAnonymous(v *bool) *DonationCreate {
	if v != nil {
		_c.SetAnonymous(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *DonationCreate) SetMessage(v string) *DonationCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *DonationCreate) SetNillableMessage(v *string) *DonationCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetReceiptReference sets the "receipt_reference" field.
func (_c *DonationCreate) SetReceiptReference(v string) *DonationCreate {
	_c.mutation.SetReceiptReference(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DonationCreate) SetID(v uuid.UUID) *DonationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DonationCreate) SetNillableID(v *uuid.UUID) *DonationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DonationMutation object of the builder.
func (_c *DonationCreate) Mutation() *DonationMutation {
	return _c.mutation
}

// Save creates the Donation in the database.
func (_c *DonationCreate) Save(ctx context.Context) (*Donation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DonationCreate) SaveX(ctx context.Context) *Donation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DonationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DonationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DonationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := donation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Anonymous(); !ok {
		v := donation.DefaultAnonymous
		_c.mutation.SetAnonymous(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := donation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DonationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Donation.created_at"`)}
	}
	if _, ok := _c.mutation.InitiativeID(); !ok {
		return &ValidationError{Name: "initiative_id", err: errors.New(`repo: missing required field "Donation.initiative_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "Donation.amount"`)}
	}
	if _, ok := _c.mutation.Anonymous(); !ok {
		return &ValidationError{Name: "anonymous", err: errors.New(`repo: missing required field "Donation.anonymous"`)}
	}
	if _, ok := _c.mutation.ReceiptReference(); !ok {
		return &ValidationError{Name: "receipt_reference", err: errors.New(`repo: missing required field "Donation.receipt_reference"`)}
	}
	return nil
}

func (_c *DonationCreate) sqlSave(ctx context.Context) (*Donation, error) {
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

func (_c *DonationCreate) createSpec() (*Donation, *sqlgraph.CreateSpec) {
	var (
		_node = &Donation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(donation.Table, sqlgraph.NewFieldSpec(donation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(donation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.InitiativeID(); ok {
		_spec.SetField(donation.FieldInitiativeID, field.TypeUUID, value)
		_node.InitiativeID = value
	}
	if value, ok := _c.mutation.DonorID(); ok {
		_spec.SetField(donation.FieldDonorID, field.TypeUUID, value)
		_node.DonorID = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(donation.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Anonymous(); ok {
		_spec.SetField(donation.FieldAnonymous, field.TypeBool, value)
		_node.Anonymous = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(donation.FieldMessage, field.TypeString, value)
		_node.Message = &value
	}
	if value, ok := _c.mutation.ReceiptReference(); ok {
		_spec.SetField(donation.FieldReceiptReference, field.TypeString, value)
		_node.ReceiptReference = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Donation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DonationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DonationCreate) OnConflict(opts ...sql.ConflictOption) *DonationUpsertOne {
	_c.conflict = opts
	return &DonationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DonationCreate) OnConflictColumns(columns ...string) *DonationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DonationUpsertOne{
		create: _c,
	}
}

type (
	// DonationUpsertOne is the builder for "upsert"-ing
	//  one Donation node.
	DonationUpsertOne struct {
		create *DonationCreate
	}

	// DonationUpsert is the "OnConflict" setter.
	DonationUpsert struct {
		*sql.UpdateSet
	}
)

// SetInitiativeID sets the "initiative_id" field.
func (u *DonationUpsert) SetInitiativeID(v uuid.UUID) *DonationUpsert {
	u.Set(donation.FieldInitiativeID, v)
	return u
}

// UpdateInitiativeID sets the "initiative_id" field to the value that was provided on create.
func (u *DonationUpsert) UpdateInitiativeID() *DonationUpsert {
	u.SetExcluded(donation.FieldInitiativeID)
	return u
}

// SetDonorID sets the "donor_id" field.
func (u *DonationUpsert) SetDonorID(v uuid.UUID) *DonationUpsert {
	u.Set(donation.FieldDonorID, v)
	return u
}

// UpdateDonorID sets the "donor_id" field to the value that was provided on create.
func (u *DonationUpsert) UpdateDonorID() *DonationUpsert {
	u.SetExcluded(donation.FieldDonorID)
	return u
}

// ClearDonorID clears the value of the "donor_id" field.
func (u *DonationUpsert) ClearDonorID() *DonationUpsert {
	u.SetNull(donation.FieldDonorID)
	return u
}

// SetAmount sets the "amount" field.
func (u *DonationUpsert) SetAmount(v int64) *DonationUpsert {
	u.Set(donation.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DonationUpsert) UpdateAmount() *DonationUpsert {
	u.SetExcluded(donation.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *DonationUpsert) AddAmount(v int64) *DonationUpsert {
	u.Add(donation.FieldAmount, v)
	return u
}

// SetAnonymous sets the "anonymous" field.
func (u *DonationUpsert) SetAnonymous(v bool) *DonationUpsert {
	u.Set(donation.FieldAnonymous, v)
	return u
}

// UpdateAnonymous sets the "anonymous" field to the value that was provided on create.
func (u *DonationUpsert) UpdateAnonymous() *DonationUpsert {
	u.SetExcluded(donation.FieldAnonymous)
	return u
}

// SetMessage sets the "message" field.
func (u *DonationUpsert) SetMessage(v string) *DonationUpsert {
	u.Set(donation.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *DonationUpsert) UpdateMessage() *DonationUpsert {
	u.SetExcluded(donation.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *DonationUpsert) ClearMessage() *DonationUpsert {
	u.SetNull(donation.FieldMessage)
	return u
}

// SetReceiptReference sets the "receipt_reference" field.
func (u *DonationUpsert) SetReceiptReference(v string) *DonationUpsert {
	u.Set(donation.FieldReceiptReference, v)
	return u
}

// UpdateReceiptReference sets the "receipt_reference" field to the value that was provided on create.
func (u *DonationUpsert) UpdateReceiptReference() *DonationUpsert {
	u.SetExcluded(donation.FieldReceiptReference)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(donation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DonationUpsertOne) UpdateNewValues() *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(donation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(donation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Donation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DonationUpsertOne) Ignore() *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DonationUpsertOne) DoNothing() *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DonationCreate.OnConflict
// documentation for more info.
func (u *DonationUpsertOne) Update(set func(*DonationUpsert)) *DonationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DonationUpsert{UpdateSet: update})
	}))
	return u
}

// SetInitiativeID sets the "initiative_id" field.
func (u *DonationUpsertOne) SetInitiativeID(v uuid.UUID) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetInitiativeID(v)
	})
}

// UpdateInitiativeID sets the "initiative_id" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateInitiativeID() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateInitiativeID()
	})
}

// SetDonorID sets the "donor_id" field.
func (u *DonationUpsertOne) SetDonorID(v uuid.UUID) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetDonorID(v)
	})
}

// UpdateDonorID sets the "donor_id" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateDonorID() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateDonorID()
	})
}

// ClearDonorID clears the value of the "donor_id" field.
func (u *DonationUpsertOne) ClearDonorID() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearDonorID()
	})
}

// SetAmount sets the "amount" field.
func (u *DonationUpsertOne) SetAmount(v int64) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *DonationUpsertOne) AddAmount(v int64) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateAmount() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateAmount()
	})
}

// SetAnonymous sets the "anonymous" field.
func (u *DonationUpsertOne) SetAnonymous(v bool) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetAnonymous(v)
	})
}

// UpdateAnonymous sets the "anonymous" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateAnonymous() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateAnonymous()
	})
}

// SetMessage sets the "message" field.
func (u *DonationUpsertOne) SetMessage(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateMessage() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *DonationUpsertOne) ClearMessage() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.ClearMessage()
	})
}

// SetReceiptReference sets the "receipt_reference" field.
func (u *DonationUpsertOne) SetReceiptReference(v string) *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.SetReceiptReference(v)
	})
}

// UpdateReceiptReference sets the "receipt_reference" field to the value that was provided on create.
func (u *DonationUpsertOne) UpdateReceiptReference() *DonationUpsertOne {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateReceiptReference()
	})
}

// Exec executes the query.
func (u *DonationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DonationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DonationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DonationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DonationUpsertOne.ID is not supported by MySQL driver. Use DonationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DonationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DonationCreateBulk is the builder for creating many Donation entities in bulk.
type DonationCreateBulk struct {
	config
	err      error
	builders []*DonationCreate
	conflict []sql.ConflictOption
}

// Save creates the Donation entities in the database.
func (_c *DonationCreateBulk) Save(ctx context.Context) ([]*Donation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Donation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DonationMutation)
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
func (_c *DonationCreateBulk) SaveX(ctx context.Context) []*Donation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DonationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DonationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Donation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DonationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DonationCreateBulk) OnConflict(opts ...sql.ConflictOption) *DonationUpsertBulk {
	_c.conflict = opts
	return &DonationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DonationCreateBulk) OnConflictColumns(columns ...string) *DonationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DonationUpsertBulk{
		create: _c,
	}
}

// DonationUpsertBulk is the builder for "upsert"-ing
// a bulk of Donation nodes.
type DonationUpsertBulk struct {
	create *DonationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(donation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DonationUpsertBulk) UpdateNewValues() *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(donation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(donation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Donation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DonationUpsertBulk) Ignore() *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DonationUpsertBulk) DoNothing() *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DonationCreateBulk.OnConflict
// documentation for more info.
func (u *DonationUpsertBulk) Update(set func(*DonationUpsert)) *DonationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DonationUpsert{UpdateSet: update})
	}))
	return u
}

// SetInitiativeID sets the "initiative_id" field.
func (u *DonationUpsertBulk) SetInitiativeID(v uuid.UUID) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetInitiativeID(v)
	})
}

// UpdateInitiativeID sets the "initiative_id" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateInitiativeID() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateInitiativeID()
	})
}

// SetDonorID sets the "donor_id" field.
func (u *DonationUpsertBulk) SetDonorID(v uuid.UUID) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetDonorID(v)
	})
}

// UpdateDonorID sets the "donor_id" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateDonorID() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateDonorID()
	})
}

// ClearDonorID clears the value of the "donor_id" field.
func (u *DonationUpsertBulk) ClearDonorID() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearDonorID()
	})
}

// SetAmount sets the "amount" field.
func (u *DonationUpsertBulk) SetAmount(v int64) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *DonationUpsertBulk) AddAmount(v int64) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateAmount() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateAmount()
	})
}

// SetAnonymous sets the "anonymous" field.
func (u *DonationUpsertBulk) SetAnonymous(v bool) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetAnonymous(v)
	})
}

// UpdateAnonymous sets the "anonymous" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateAnonymous() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateAnonymous()
	})
}

// SetMessage sets the "message" field.
func (u *DonationUpsertBulk) SetMessage(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateMessage() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *DonationUpsertBulk) ClearMessage() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.ClearMessage()
	})
}

// SetReceiptReference sets the "receipt_reference" field.
func (u *DonationUpsertBulk) SetReceiptReference(v string) *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.SetReceiptReference(v)
	})
}

// UpdateReceiptReference sets the "receipt_reference" field to the value that was provided on create.
func (u *DonationUpsertBulk) UpdateReceiptReference() *DonationUpsertBulk {
	return u.Update(func(s *DonationUpsert) {
		s.UpdateReceiptReference()
	})
}

// Exec executes the query.
func (u *DonationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DonationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DonationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DonationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
