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
	"github.com/auxillium/auxillium_backend/internal/repo/bloodrequest"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BloodRequestUpdate is the builder for updating BloodRequest entities.
type BloodRequestUpdate struct {
	config
	hooks    []Hook
	mutation *BloodRequestMutation
}

// Where appends a list predicates to the BloodRequestUpdate builder.
func (_u *BloodRequestUpdate) Where(ps ...predicate.BloodRequest) *BloodRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BloodRequestUpdate) SetUpdatedAt(v time.Time) *BloodRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *BloodRequestUpdate) SetRequesterID(v uuid.UUID) *BloodRequestUpdate {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableRequesterID(v *uuid.UUID) *BloodRequestUpdate {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *BloodRequestUpdate) SetPatientName(v string) *BloodRequestUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillablePatientName(v *string) *BloodRequestUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *BloodRequestUpdate) SetBloodType(v bloodrequest.BloodType) *BloodRequestUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableBloodType(v *bloodrequest.BloodType) *BloodRequestUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// SetUnitsNeeded sets the "units_needed" field.
func (_u *BloodRequestUpdate) SetUnitsNeeded(v int) *BloodRequestUpdate {
	_u.mutation.ResetUnitsNeeded()
	_u.mutation.SetUnitsNeeded(v)
	return _u
}

// SetNillableUnitsNeeded sets the "units_needed" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableUnitsNeeded(v *int) *BloodRequestUpdate {
	if v != nil {
		_u.SetUnitsNeeded(*v)
	}
	return _u
}

// AddUnitsNeeded adds value to the "units_needed" field.
func (_u *BloodRequestUpdate) AddUnitsNeeded(v int) *BloodRequestUpdate {
	_u.mutation.AddUnitsNeeded(v)
	return _u
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (_u *BloodRequestUpdate) SetUnitsFulfilled(v int) *BloodRequestUpdate {
	_u.mutation.ResetUnitsFulfilled()
	_u.mutation.SetUnitsFulfilled(v)
	return _u
}

// SetNillableUnitsFulfilled sets the "units_fulfilled" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableUnitsFulfilled(v *int) *BloodRequestUpdate {
	if v != nil {
		_u.SetUnitsFulfilled(*v)
	}
	return _u
}

// AddUnitsFulfilled adds value to the "units_fulfilled" field.
func (_u *BloodRequestUpdate) AddUnitsFulfilled(v int) *BloodRequestUpdate {
	_u.mutation.AddUnitsFulfilled(v)
	return _u
}

// SetHospital sets the "hospital" field.
func (_u *BloodRequestUpdate) SetHospital(v string) *BloodRequestUpdate {
	_u.mutation.SetHospital(v)
	return _u
}

// SetNillableHospital sets the "hospital" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableHospital(v *string) *BloodRequestUpdate {
	if v != nil {
		_u.SetHospital(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *BloodRequestUpdate) SetCity(v string) *BloodRequestUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableCity(v *string) *BloodRequestUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *BloodRequestUpdate) SetUrgency(v bloodrequest.Urgency) *BloodRequestUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableUrgency(v *bloodrequest.Urgency) *BloodRequestUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BloodRequestUpdate) SetStatus(v bloodrequest.Status) *BloodRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableStatus(v *bloodrequest.Status) *BloodRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *BloodRequestUpdate) SetContactPhone(v string) *BloodRequestUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableContactPhone(v *string) *BloodRequestUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// SetNeededBy sets the "needed_by" field.
func (_u *BloodRequestUpdate) SetNeededBy(v time.Time) *BloodRequestUpdate {
	_u.mutation.SetNeededBy(v)
	return _u
}

// SetNillableNeededBy sets the "needed_by" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableNeededBy(v *time.Time) *BloodRequestUpdate {
	if v != nil {
		_u.SetNeededBy(*v)
	}
	return _u
}

// ClearNeededBy clears the value of the "needed_by" field.
func (_u *BloodRequestUpdate) ClearNeededBy() *BloodRequestUpdate {
	_u.mutation.ClearNeededBy()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BloodRequestUpdate) SetNotes(v string) *BloodRequestUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BloodRequestUpdate) SetNillableNotes(v *string) *BloodRequestUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BloodRequestUpdate) ClearNotes() *BloodRequestUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the BloodRequestMutation object of the builder.
func (_u *BloodRequestUpdate) Mutation() *BloodRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BloodRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BloodRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BloodRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BloodRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BloodRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bloodrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BloodRequestUpdate) check() error {
	if v, ok := _u.mutation.BloodType(); ok {
		if err := bloodrequest.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := bloodrequest.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bloodrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BloodRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bloodrequest.Table, bloodrequest.Columns, sqlgraph.NewFieldSpec(bloodrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bloodrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(bloodrequest.FieldRequesterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(bloodrequest.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(bloodrequest.FieldBloodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UnitsNeeded(); ok {
		_spec.SetField(bloodrequest.FieldUnitsNeeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsNeeded(); ok {
		_spec.AddField(bloodrequest.FieldUnitsNeeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsFulfilled(); ok {
		_spec.SetField(bloodrequest.FieldUnitsFulfilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsFulfilled(); ok {
		_spec.AddField(bloodrequest.FieldUnitsFulfilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hospital(); ok {
		_spec.SetField(bloodrequest.FieldHospital, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(bloodrequest.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(bloodrequest.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bloodrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(bloodrequest.FieldContactPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeededBy(); ok {
		_spec.SetField(bloodrequest.FieldNeededBy, field.TypeTime, value)
	}
	if _u.mutation.NeededByCleared() {
		_spec.ClearField(bloodrequest.FieldNeededBy, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(bloodrequest.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(bloodrequest.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bloodrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BloodRequestUpdateOne is the builder for updating a single BloodRequest entity.
type BloodRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BloodRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BloodRequestUpdateOne) SetUpdatedAt(v time.Time) *BloodRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRequesterID sets the "requester_id" field.
func (_u *BloodRequestUpdateOne) SetRequesterID(v uuid.UUID) *BloodRequestUpdateOne {
	_u.mutation.SetRequesterID(v)
	return _u
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableRequesterID(v *uuid.UUID) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetRequesterID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *BloodRequestUpdateOne) SetPatientName(v string) *BloodRequestUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillablePatientName(v *string) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *BloodRequestUpdateOne) SetBloodType(v bloodrequest.BloodType) *BloodRequestUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableBloodType(v *bloodrequest.BloodType) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// SetUnitsNeeded sets the "units_needed" field.
func (_u *BloodRequestUpdateOne) SetUnitsNeeded(v int) *BloodRequestUpdateOne {
	_u.mutation.ResetUnitsNeeded()
	_u.mutation.SetUnitsNeeded(v)
	return _u
}

// SetNillableUnitsNeeded sets the "units_needed" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableUnitsNeeded(v *int) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetUnitsNeeded(*v)
	}
	return _u
}

// AddUnitsNeeded adds value to the "units_needed" field.
func (_u *BloodRequestUpdateOne) AddUnitsNeeded(v int) *BloodRequestUpdateOne {
	_u.mutation.AddUnitsNeeded(v)
	return _u
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (_u *BloodRequestUpdateOne) SetUnitsFulfilled(v int) *BloodRequestUpdateOne {
	_u.mutation.ResetUnitsFulfilled()
	_u.mutation.SetUnitsFulfilled(v)
	return _u
}

// SetNillableUnitsFulfilled sets the "units_fulfilled" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableUnitsFulfilled(v *int) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetUnitsFulfilled(*v)
	}
	return _u
}

// AddUnitsFulfilled adds value to the "units_fulfilled" field.
func (_u *BloodRequestUpdateOne) AddUnitsFulfilled(v int) *BloodRequestUpdateOne {
	_u.mutation.AddUnitsFulfilled(v)
	return _u
}

// SetHospital sets the "hospital" field.
func (_u *BloodRequestUpdateOne) SetHospital(v string) *BloodRequestUpdateOne {
	_u.mutation.SetHospital(v)
	return _u
}

// SetNillableHospital sets the "hospital" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableHospital(v *string) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetHospital(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *BloodRequestUpdateOne) SetCity(v string) *BloodRequestUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableCity(v *string) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *BloodRequestUpdateOne) SetUrgency(v bloodrequest.Urgency) *BloodRequestUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableUrgency(v *bloodrequest.Urgency) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BloodRequestUpdateOne) SetStatus(v bloodrequest.Status) *BloodRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableStatus(v *bloodrequest.Status) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *BloodRequestUpdateOne) SetContactPhone(v string) *BloodRequestUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableContactPhone(v *string) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// SetNeededBy sets the "needed_by" field.
func (_u *BloodRequestUpdateOne) SetNeededBy(v time.Time) *BloodRequestUpdateOne {
	_u.mutation.SetNeededBy(v)
	return _u
}

// SetNillableNeededBy sets the "needed_by" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableNeededBy(v *time.Time) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetNeededBy(*v)
	}
	return _u
}

// ClearNeededBy clears the value of the "needed_by" field.
func (_u *BloodRequestUpdateOne) ClearNeededBy() *BloodRequestUpdateOne {
	_u.mutation.ClearNeededBy()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BloodRequestUpdateOne) SetNotes(v string) *BloodRequestUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BloodRequestUpdateOne) SetNillableNotes(v *string) *BloodRequestUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BloodRequestUpdateOne) ClearNotes() *BloodRequestUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the BloodRequestMutation object of the builder.
func (_u *BloodRequestUpdateOne) Mutation() *BloodRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the BloodRequestUpdate builder.
func (_u *BloodRequestUpdateOne) Where(ps ...predicate.BloodRequest) *BloodRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BloodRequestUpdateOne) Select(field string, fields ...string) *BloodRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BloodRequest entity.
func (_u *BloodRequestUpdateOne) Save(ctx context.Context) (*BloodRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BloodRequestUpdateOne) SaveX(ctx context.Context) *BloodRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BloodRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BloodRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BloodRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bloodrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BloodRequestUpdateOne) check() error {
	if v, ok := _u.mutation.BloodType(); ok {
		if err := bloodrequest.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := bloodrequest.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bloodrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BloodRequestUpdateOne) sqlSave(ctx context.Context) (_node *BloodRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bloodrequest.Table, bloodrequest.Columns, sqlgraph.NewFieldSpec(bloodrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BloodRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bloodrequest.FieldID)
		for _, f := range fields {
			if !bloodrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != bloodrequest.FieldID {
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
		_spec.SetField(bloodrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RequesterID(); ok {
		_spec.SetField(bloodrequest.FieldRequesterID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(bloodrequest.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(bloodrequest.FieldBloodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UnitsNeeded(); ok {
		_spec.SetField(bloodrequest.FieldUnitsNeeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsNeeded(); ok {
		_spec.AddField(bloodrequest.FieldUnitsNeeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsFulfilled(); ok {
		_spec.SetField(bloodrequest.FieldUnitsFulfilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsFulfilled(); ok {
		_spec.AddField(bloodrequest.FieldUnitsFulfilled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hospital(); ok {
		_spec.SetField(bloodrequest.FieldHospital, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(bloodrequest.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(bloodrequest.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bloodrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(bloodrequest.FieldContactPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeededBy(); ok {
		_spec.SetField(bloodrequest.FieldNeededBy, field.TypeTime, value)
	}
	if _u.mutation.NeededByCleared() {
		_spec.ClearField(bloodrequest.FieldNeededBy, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(bloodrequest.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(bloodrequest.FieldNotes, field.TypeString)
	}
	_node = &BloodRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bloodrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
