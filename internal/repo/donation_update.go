// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/donation"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DonationUpdate is the builder for updating Donation entities.
type DonationUpdate struct {
	config
	hooks    []Hook
	mutation *DonationMutation
}

// Where appends a list predicates to the DonationUpdate builder.
func (_u *DonationUpdate) Where(ps ...predicate.Donation) *DonationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInitiativeID sets the "initiative_id" field.
func (_u *DonationUpdate) SetInitiativeID(v uuid.UUID) *DonationUpdate {
	_u.mutation.SetInitiativeID(v)
	return _u
}

// SetNillableInitiativeID sets the "initiative_id" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableInitiativeID(v *uuid.UUID) *DonationUpdate {
	if v != nil {
		_u.SetInitiativeID(*v)
	}
	return _u
}

// SetDonorID sets the "donor_id" field.
func (_u *DonationUpdate) SetDonorID(v uuid.UUID) *DonationUpdate {
	_u.mutation.SetDonorID(v)
	return _u
}

// SetNillableDonorID sets the "donor_id" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableDonorID(v *uuid.UUID) *DonationUpdate {
	if v != nil {
		_u.SetDonorID(*v)
	}
	return _u
}

// ClearDonorID clears the value of the "donor_id" field.
func (_u *DonationUpdate) ClearDonorID() *DonationUpdate {
	_u.mutation.ClearDonorID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DonationUpdate) SetAmount(v int64) *DonationUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableAmount(v *int64) *DonationUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DonationUpdate) AddAmount(v int64) *DonationUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetAnonymous sets the "anonymous" field.
func (_u *DonationUpdate) SetAnonymous(v bool) *DonationUpdate {
	_u.mutation.SetAnonymous(v)
	return _u
}

// SetNillableAnonymous sets the "anonymous" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableAnonymous(v *bool) *DonationUpdate {
	if v != nil {
		_u.SetAnonymous(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *DonationUpdate) SetMessage(v string) *DonationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableMessage(v *string) *DonationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *DonationUpdate) ClearMessage() *DonationUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetReceiptReference sets the "receipt_reference" field.
func (_u *DonationUpdate) SetReceiptReference(v string) *DonationUpdate {
	_u.mutation.SetReceiptReference(v)
	return _u
}

// SetNillableReceiptReference sets the "receipt_reference" field if the given value is not nil.
func (_u *DonationUpdate) SetNillableReceiptReference(v *string) *DonationUpdate {
	if v != nil {
		_u.SetReceiptReference(*v)
	}
	return _u
}

// Mutation returns the DonationMutation object of the builder.
func (_u *DonationUpdate) Mutation() *DonationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DonationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DonationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DonationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DonationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DonationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(donation.Table, donation.Columns, sqlgraph.NewFieldSpec(donation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InitiativeID(); ok {
		_spec.SetField(donation.FieldInitiativeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DonorID(); ok {
		_spec.SetField(donation.FieldDonorID, field.TypeUUID, value)
	}
	if _u.mutation.DonorIDCleared() {
		_spec.ClearField(donation.FieldDonorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Anonymous(); ok {
		_spec.SetField(donation.FieldAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(donation.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(donation.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReceiptReference(); ok {
		_spec.SetField(donation.FieldReceiptReference, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{donation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DonationUpdateOne is the builder for updating a single Donation entity.
type DonationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DonationMutation
}

// SetInitiativeID sets the "initiative_id" field.
func (_u *DonationUpdateOne) SetInitiativeID(v uuid.UUID) *DonationUpdateOne {
	_u.mutation.SetInitiativeID(v)
	return _u
}

// SetNillableInitiativeID sets the "initiative_id" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableInitiativeID(v *uuid.UUID) *DonationUpdateOne {
	if v != nil {
		_u.SetInitiativeID(*v)
	}
	return _u
}

// SetDonorID sets the "donor_id" field.
func (_u *DonationUpdateOne) SetDonorID(v uuid.UUID) *DonationUpdateOne {
	_u.mutation.SetDonorID(v)
	return _u
}

// SetNillableDonorID sets the "donor_id" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableDonorID(v *uuid.UUID) *DonationUpdateOne {
	if v != nil {
		_u.SetDonorID(*v)
	}
	return _u
}

// ClearDonorID clears the value of the "donor_id" field.
func (_u *DonationUpdateOne) ClearDonorID() *DonationUpdateOne {
	_u.mutation.ClearDonorID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DonationUpdateOne) SetAmount(v int64) *DonationUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableAmount(v *int64) *DonationUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DonationUpdateOne) AddAmount(v int64) *DonationUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetAnonymous sets the "anonymous" field.
func (_u *DonationUpdateOne) SetAnonymous(v bool) *DonationUpdateOne {
	_u.mutation.SetAnonymous(v)
	return _u
}

// SetNillableAnonymous sets the "anonymous" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableAnonymous(v *bool) *DonationUpdateOne {
	if v != nil {
		_u.SetAnonymous(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *DonationUpdateOne) SetMessage(v string) *DonationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableMessage(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *DonationUpdateOne) ClearMessage() *DonationUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetReceiptReference sets the "receipt_reference" field.
func (_u *DonationUpdateOne) SetReceiptReference(v string) *DonationUpdateOne {
	_u.mutation.SetReceiptReference(v)
	return _u
}

// SetNillableReceiptReference sets the "receipt_reference" field if the given value is not nil.
func (_u *DonationUpdateOne) SetNillableReceiptReference(v *string) *DonationUpdateOne {
	if v != nil {
		_u.SetReceiptReference(*v)
	}
	return _u
}

// Mutation returns the DonationMutation object of the builder.
func (_u *DonationUpdateOne) Mutation() *DonationMutation {
	return _u.mutation
}

// Where appends a list predicates to the DonationUpdate builder.
func (_u *DonationUpdateOne) Where(ps ...predicate.Donation) *DonationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DonationUpdateOne) Select(field string, fields ...string) *DonationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Donation entity.
func (_u *DonationUpdateOne) Save(ctx context.Context) (*Donation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DonationUpdateOne) SaveX(ctx context.Context) *Donation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DonationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DonationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DonationUpdateOne) sqlSave(ctx context.Context) (_node *Donation, err error) {
	_spec := sqlgraph.NewUpdateSpec(donation.Table, donation.Columns, sqlgraph.NewFieldSpec(donation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Donation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, donation.FieldID)
		for _, f := range fields {
			if !donation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != donation.FieldID {
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
	if value, ok := _u.mutation.InitiativeID(); ok {
		_spec.SetField(donation.FieldInitiativeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DonorID(); ok {
		_spec.SetField(donation.FieldDonorID, field.TypeUUID, value)
	}
	if _u.mutation.DonorIDCleared() {
		_spec.ClearField(donation.FieldDonorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(donation.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Anonymous(); ok {
		_spec.SetField(donation.FieldAnonymous, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(donation.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(donation.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReceiptReference(); ok {
		_spec.SetField(donation.FieldReceiptReference, field.TypeString, value)
	}
	_node = &Donation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{donation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
