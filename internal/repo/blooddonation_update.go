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
	"github.com/auxillium/auxillium_backend/internal/repo/blooddonation"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BloodDonationUpdate is the builder for updating BloodDonation entities.
type BloodDonationUpdate struct {
	config
	hooks    []Hook
	mutation *BloodDonationMutation
}

// Where appends a list predicates to the BloodDonationUpdate builder.
func (_u *BloodDonationUpdate) Where(ps ...predicate.BloodDonation) *BloodDonationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDonorID sets the "donor_id" field.
func (_u *BloodDonationUpdate) SetDonorID(v uuid.UUID) *BloodDonationUpdate {
	_u.mutation.SetDonorID(v)
	return _u
}

// SetNillableDonorID sets the "donor_id" field if the given value is not nil.
func (_u *BloodDonationUpdate) SetNillableDonorID(v *uuid.UUID) *BloodDonationUpdate {
	if v != nil {
		_u.SetDonorID(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *BloodDonationUpdate) SetRequestID(v uuid.UUID) *BloodDonationUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *BloodDonationUpdate) SetNillableRequestID(v *uuid.UUID) *BloodDonationUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *BloodDonationUpdate) ClearRequestID() *BloodDonationUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *BloodDonationUpdate) SetBloodType(v blooddonation.BloodType) *BloodDonationUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *BloodDonationUpdate) SetNillableBloodType(v *blooddonation.BloodType) *BloodDonationUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *BloodDonationUpdate) SetUnits(v int) *BloodDonationUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *BloodDonationUpdate) SetNillableUnits(v *int) *BloodDonationUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *BloodDonationUpdate) AddUnits(v int) *BloodDonationUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// SetDonatedAt sets the "donated_at" field.
func (_u *BloodDonationUpdate) SetDonatedAt(v time.Time) *BloodDonationUpdate {
	_u.mutation.SetDonatedAt(v)
	return _u
}

// SetNillableDonatedAt sets the "donated_at" field if the given value is not nil.
func (_u *BloodDonationUpdate) SetNillableDonatedAt(v *time.Time) *BloodDonationUpdate {
	if v != nil {
		_u.SetDonatedAt(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *BloodDonationUpdate) SetLocation(v string) *BloodDonationUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *BloodDonationUpdate) SetNillableLocation(v *string) *BloodDonationUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// Mutation returns the BloodDonationMutation object of the builder.
func (_u *BloodDonationUpdate) Mutation() *BloodDonationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BloodDonationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BloodDonationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BloodDonationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BloodDonationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BloodDonationUpdate) check() error {
	if v, ok := _u.mutation.BloodType(); ok {
		if err := blooddonation.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "BloodDonation.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BloodDonationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blooddonation.Table, blooddonation.Columns, sqlgraph.NewFieldSpec(blooddonation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DonorID(); ok {
		_spec.SetField(blooddonation.FieldDonorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(blooddonation.FieldRequestID, field.TypeUUID, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(blooddonation.FieldRequestID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(blooddonation.FieldBloodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(blooddonation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(blooddonation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DonatedAt(); ok {
		_spec.SetField(blooddonation.FieldDonatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(blooddonation.FieldLocation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blooddonation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BloodDonationUpdateOne is the builder for updating a single BloodDonation entity.
type BloodDonationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BloodDonationMutation
}

// SetDonorID sets the "donor_id" field.
func (_u *BloodDonationUpdateOne) SetDonorID(v uuid.UUID) *BloodDonationUpdateOne {
	_u.mutation.SetDonorID(v)
	return _u
}

// SetNillableDonorID sets the "donor_id" field if the given value is not nil.
func (_u *BloodDonationUpdateOne) SetNillableDonorID(v *uuid.UUID) *BloodDonationUpdateOne {
	if v != nil {
		_u.SetDonorID(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *BloodDonationUpdateOne) SetRequestID(v uuid.UUID) *BloodDonationUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *BloodDonationUpdateOne) SetNillableRequestID(v *uuid.UUID) *BloodDonationUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *BloodDonationUpdateOne) ClearRequestID() *BloodDonationUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *BloodDonationUpdateOne) SetBloodType(v blooddonation.BloodType) *BloodDonationUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *BloodDonationUpdateOne) SetNillableBloodType(v *blooddonation.BloodType) *BloodDonationUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *BloodDonationUpdateOne) SetUnits(v int) *BloodDonationUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *BloodDonationUpdateOne) SetNillableUnits(v *int) *BloodDonationUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *BloodDonationUpdateOne) AddUnits(v int) *BloodDonationUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// SetDonatedAt sets the "donated_at" field.
func (_u *BloodDonationUpdateOne) SetDonatedAt(v time.Time) *BloodDonationUpdateOne {
	_u.mutation.SetDonatedAt(v)
	return _u
}

// SetNillableDonatedAt sets the "donated_at" field if the given value is not nil.
func (_u *BloodDonationUpdateOne) SetNillableDonatedAt(v *time.Time) *BloodDonationUpdateOne {
	if v != nil {
		_u.SetDonatedAt(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *BloodDonationUpdateOne) SetLocation(v string) *BloodDonationUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *BloodDonationUpdateOne) SetNillableLocation(v *string) *BloodDonationUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// Mutation returns the BloodDonationMutation object of the builder.
func (_u *BloodDonationUpdateOne) Mutation() *BloodDonationMutation {
	return _u.mutation
}

// Where appends a list predicates to the BloodDonationUpdate builder.
func (_u *BloodDonationUpdateOne) Where(ps ...predicate.BloodDonation) *BloodDonationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BloodDonationUpdateOne) Select(field string, fields ...string) *BloodDonationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BloodDonation entity.
func (_u *BloodDonationUpdateOne) Save(ctx context.Context) (*BloodDonation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BloodDonationUpdateOne) SaveX(ctx context.Context) *BloodDonation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BloodDonationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BloodDonationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BloodDonationUpdateOne) check() error {
	if v, ok := _u.mutation.BloodType(); ok {
		if err := blooddonation.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "BloodDonation.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BloodDonationUpdateOne) sqlSave(ctx context.Context) (_node *BloodDonation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blooddonation.Table, blooddonation.Columns, sqlgraph.NewFieldSpec(blooddonation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BloodDonation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blooddonation.FieldID)
		for _, f := range fields {
			if !blooddonation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blooddonation.FieldID {
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
	if value, ok := _u.mutation.DonorID(); ok {
		_spec.SetField(blooddonation.FieldDonorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(blooddonation.FieldRequestID, field.TypeUUID, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(blooddonation.FieldRequestID, field.TypeUUID)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(blooddonation.FieldBloodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(blooddonation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(blooddonation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DonatedAt(); ok {
		_spec.SetField(blooddonation.FieldDonatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(blooddonation.FieldLocation, field.TypeString, value)
	}
	_node = &BloodDonation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blooddonation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
