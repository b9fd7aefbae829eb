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
	"github.com/auxillium/auxillium_backend/internal/repo/bloodrequest"
	"github.com/google/uuid"
)

// BloodRequestCreate is the builder for creating a BloodRequest entity.
type BloodRequestCreate struct {
	config
	mutation *BloodRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BloodRequestCreate) SetCreatedAt(v time.Time) *BloodRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableCreatedAt(v *time.Time) *BloodRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BloodRequestCreate) SetUpdatedAt(v time.Time) *BloodRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableUpdatedAt(v *time.Time) *BloodRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRequesterID sets the "requester_id" field.
func (_c *BloodRequestCreate) SetRequesterID(v uuid.UUID) *BloodRequestCreate {
	_c.mutation.SetRequesterID(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *BloodRequestCreate) SetPatientName(v string) *BloodRequestCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *BloodRequestCreate) SetBloodType(v bloodrequest.BloodType) *BloodRequestCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetUnitsNeeded sets the "units_needed" field.
func (_c *BloodRequestCreate) SetUnitsNeeded(v int) *BloodRequestCreate {
	_c.mutation.SetUnitsNeeded(v)
	return _c
}

// SetNillableUnitsNeeded sets the "units_needed" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableUnitsNeeded(v *int) *BloodRequestCreate {
	if v != nil {
		_c.SetUnitsNeeded(*v)
	}
	return _c
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (_c *BloodRequestCreate) SetUnitsFulfilled(v int) *BloodRequestCreate {
	_c.mutation.SetUnitsFulfilled(v)
	return _c
}

// SetNillableUnitsFulfilled sets the "units_fulfilled" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableUnitsFulfilled(v *int) *BloodRequestCreate {
	if v != nil {
		_c.SetUnitsFulfilled(*v)
	}
	return _c
}

// SetHospital sets the "hospital" field.
func (_c *BloodRequestCreate) SetHospital(v string) *BloodRequestCreate {
	_c.mutation.SetHospital(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *BloodRequestCreate) SetCity(v string) *BloodRequestCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *BloodRequestCreate) SetUrgency(v bloodrequest.Urgency) *BloodRequestCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableUrgency(v *bloodrequest.Urgency) *BloodRequestCreate {
	if v != nil {
		_c.SetUrgency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BloodRequestCreate) SetStatus(v bloodrequest.Status) *BloodRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableStatus(v *bloodrequest.Status) *BloodRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *BloodRequestCreate) SetContactPhone(v string) *BloodRequestCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNeededBy sets the "needed_by" field.
func (_c *BloodRequestCreate) SetNeededBy(v time.Time) *BloodRequestCreate {
	_c.mutation.SetNeededBy(v)
	return _c
}

// SetNillableNeededBy sets the "needed_by" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableNeededBy(v *time.Time) *BloodRequestCreate {
	if v != nil {
		_c.SetNeededBy(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BloodRequestCreate) SetNotes(v string) *BloodRequestCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableNotes(v *string) *BloodRequestCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BloodRequestCreate) SetID(v uuid.UUID) *BloodRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BloodRequestCreate) SetNillableID(v *uuid.UUID) *BloodRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BloodRequestMutation object of the builder.
func (_c *BloodRequestCreate) Mutation() *BloodRequestMutation {
	return _c.mutation
}

// Save creates the BloodRequest in the database.
func (_c *BloodRequestCreate) Save(ctx context.Context) (*BloodRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BloodRequestCreate) SaveX(ctx context.Context) *BloodRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BloodRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BloodRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BloodRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bloodrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bloodrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.UnitsNeeded(); !ok {
		v := bloodrequest.DefaultUnitsNeeded
		_c.mutation.SetUnitsNeeded(v)
	}
	if _, ok := _c.mutation.UnitsFulfilled(); !ok {
		v := bloodrequest.DefaultUnitsFulfilled
		_c.mutation.SetUnitsFulfilled(v)
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		v := bloodrequest.DefaultUrgency
		_c.mutation.SetUrgency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := bloodrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bloodrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BloodRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BloodRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BloodRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.RequesterID(); !ok {
		return &ValidationError{Name: "requester_id", err: errors.New(`repo: missing required field "BloodRequest.requester_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "BloodRequest.patient_name"`)}
	}
	if _, ok := _c.mutation.BloodType(); !ok {
		return &ValidationError{Name: "blood_type", err: errors.New(`repo: missing required field "BloodRequest.blood_type"`)}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := bloodrequest.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.blood_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitsNeeded(); !ok {
		return &ValidationError{Name: "units_needed", err: errors.New(`repo: missing required field "BloodRequest.units_needed"`)}
	}
	if _, ok := _c.mutation.UnitsFulfilled(); !ok {
		return &ValidationError{Name: "units_fulfilled", err: errors.New(`repo: missing required field "BloodRequest.units_fulfilled"`)}
	}
	if _, ok := _c.mutation.Hospital(); !ok {
		return &ValidationError{Name: "hospital", err: errors.New(`repo: missing required field "BloodRequest.hospital"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`repo: missing required field "BloodRequest.city"`)}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`repo: missing required field "BloodRequest.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := bloodrequest.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "BloodRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bloodrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "BloodRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContactPhone(); !ok {
		return &ValidationError{Name: "contact_phone", err: errors.New(`repo: missing required field "BloodRequest.contact_phone"`)}
	}
	return nil
}

func (_c *BloodRequestCreate) sqlSave(ctx context.Context) (*BloodRequest, error) {
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

func (_c *BloodRequestCreate) createSpec() (*BloodRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &BloodRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bloodrequest.Table, sqlgraph.NewFieldSpec(bloodrequest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bloodrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bloodrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RequesterID(); ok {
		_spec.SetField(bloodrequest.FieldRequesterID, field.TypeUUID, value)
		_node.RequesterID = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(bloodrequest.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(bloodrequest.FieldBloodType, field.TypeEnum, value)
		_node.BloodType = value
	}
	if value, ok := _c.mutation.UnitsNeeded(); ok {
		_spec.SetField(bloodrequest.FieldUnitsNeeded, field.TypeInt, value)
		_node.UnitsNeeded = value
	}
	if value, ok := _c.mutation.UnitsFulfilled(); ok {
		_spec.SetField(bloodrequest.FieldUnitsFulfilled, field.TypeInt, value)
		_node.UnitsFulfilled = value
	}
	if value, ok := _c.mutation.Hospital(); ok {
		_spec.SetField(bloodrequest.FieldHospital, field.TypeString, value)
		_node.Hospital = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(bloodrequest.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(bloodrequest.FieldUrgency, field.TypeEnum, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bloodrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(bloodrequest.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := _c.mutation.NeededBy(); ok {
		_spec.SetField(bloodrequest.FieldNeededBy, field.TypeTime, value)
		_node.NeededBy = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(bloodrequest.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BloodRequest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BloodRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BloodRequestCreate) OnConflict(opts ...sql.ConflictOption) *BloodRequestUpsertOne {
	_c.conflict = opts
	return &BloodRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BloodRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BloodRequestCreate) OnConflictColumns(columns ...string) *BloodRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BloodRequestUpsertOne{
		create: _c,
	}
}

type (
	// BloodRequestUpsertOne is the builder for "upsert"-ing
	//  one BloodRequest node.
	BloodRequestUpsertOne struct {
		create *BloodRequestCreate
	}

	// BloodRequestUpsert is the "OnConflict" setter.
	BloodRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BloodRequestUpsert) SetUpdatedAt(v time.Time) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateUpdatedAt() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldUpdatedAt)
	return u
}

// SetRequesterID sets the "requester_id" field.
func (u *BloodRequestUpsert) SetRequesterID(v uuid.UUID) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldRequesterID, v)
	return u
}

// UpdateRequesterID sets the "requester_id" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateRequesterID() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldRequesterID)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *BloodRequestUpsert) SetPatientName(v string) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdatePatientName() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldPatientName)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *BloodRequestUpsert) SetBloodType(v bloodrequest.BloodType) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateBloodType() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldBloodType)
	return u
}

// SetUnitsNeeded sets the "units_needed" field.
func (u *BloodRequestUpsert) SetUnitsNeeded(v int) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldUnitsNeeded, v)
	return u
}

// UpdateUnitsNeeded sets the "units_needed" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateUnitsNeeded() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldUnitsNeeded)
	return u
}

// AddUnitsNeeded adds v to the "units_needed" field.
func (u *BloodRequestUpsert) AddUnitsNeeded(v int) *BloodRequestUpsert {
	u.Add(bloodrequest.FieldUnitsNeeded, v)
	return u
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (u *BloodRequestUpsert) SetUnitsFulfilled(v int) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldUnitsFulfilled, v)
	return u
}

// UpdateUnitsFulfilled sets the "units_fulfilled" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateUnitsFulfilled() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldUnitsFulfilled)
	return u
}

// AddUnitsFulfilled adds v to the "units_fulfilled" field.
func (u *BloodRequestUpsert) AddUnitsFulfilled(v int) *BloodRequestUpsert {
	u.Add(bloodrequest.FieldUnitsFulfilled, v)
	return u
}

// SetHospital sets the "hospital" field.
func (u *BloodRequestUpsert) SetHospital(v string) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldHospital, v)
	return u
}

// UpdateHospital sets the "hospital" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateHospital() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldHospital)
	return u
}

// SetCity sets the "city" field.
func (u *BloodRequestUpsert) SetCity(v string) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateCity() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldCity)
	return u
}

// SetUrgency sets the "urgency" field.
func (u *BloodRequestUpsert) SetUrgency(v bloodrequest.Urgency) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldUrgency, v)
	return u
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateUrgency() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldUrgency)
	return u
}

// SetStatus sets the "status" field.
func (u *BloodRequestUpsert) SetStatus(v bloodrequest.Status) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateStatus() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldStatus)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *BloodRequestUpsert) SetContactPhone(v string) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateContactPhone() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldContactPhone)
	return u
}

// SetNeededBy sets the "needed_by" field.
func (u *BloodRequestUpsert) SetNeededBy(v time.Time) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldNeededBy, v)
	return u
}

// UpdateNeededBy sets the "needed_by" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateNeededBy() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldNeededBy)
	return u
}

// ClearNeededBy clears the value of the "needed_by" field.
func (u *BloodRequestUpsert) ClearNeededBy() *BloodRequestUpsert {
	u.SetNull(bloodrequest.FieldNeededBy)
	return u
}

// SetNotes sets the "notes" field.
func (u *BloodRequestUpsert) SetNotes(v string) *BloodRequestUpsert {
	u.Set(bloodrequest.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BloodRequestUpsert) UpdateNotes() *BloodRequestUpsert {
	u.SetExcluded(bloodrequest.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *BloodRequestUpsert) ClearNotes() *BloodRequestUpsert {
	u.SetNull(bloodrequest.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BloodRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bloodrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BloodRequestUpsertOne) UpdateNewValues() *BloodRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(bloodrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bloodrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BloodRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BloodRequestUpsertOne) Ignore() *BloodRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BloodRequestUpsertOne) DoNothing() *BloodRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BloodRequestCreate.OnConflict
// documentation for more info.
func (u *BloodRequestUpsertOne) Update(set func(*BloodRequestUpsert)) *BloodRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BloodRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BloodRequestUpsertOne) SetUpdatedAt(v time.Time) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateUpdatedAt() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRequesterID sets the "requester_id" field.
func (u *BloodRequestUpsertOne) SetRequesterID(v uuid.UUID) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetRequesterID(v)
	})
}

// UpdateRequesterID sets the "requester_id" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateRequesterID() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateRequesterID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *BloodRequestUpsertOne) SetPatientName(v string) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdatePatientName() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdatePatientName()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *BloodRequestUpsertOne) SetBloodType(v bloodrequest.BloodType) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateBloodType() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateBloodType()
	})
}

// SetUnitsNeeded sets the "units_needed" field.
func (u *BloodRequestUpsertOne) SetUnitsNeeded(v int) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUnitsNeeded(v)
	})
}

// AddUnitsNeeded adds v to the "units_needed" field.
func (u *BloodRequestUpsertOne) AddUnitsNeeded(v int) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.AddUnitsNeeded(v)
	})
}

// UpdateUnitsNeeded sets the "units_needed" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateUnitsNeeded() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUnitsNeeded()
	})
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (u *BloodRequestUpsertOne) SetUnitsFulfilled(v int) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUnitsFulfilled(v)
	})
}

// AddUnitsFulfilled adds v to the "units_fulfilled" field.
func (u *BloodRequestUpsertOne) AddUnitsFulfilled(v int) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.AddUnitsFulfilled(v)
	})
}

// UpdateUnitsFulfilled sets the "units_fulfilled" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateUnitsFulfilled() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUnitsFulfilled()
	})
}

// SetHospital sets the "hospital" field.
func (u *BloodRequestUpsertOne) SetHospital(v string) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetHospital(v)
	})
}

// UpdateHospital sets the "hospital" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateHospital() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateHospital()
	})
}

// SetCity sets the "city" field.
func (u *BloodRequestUpsertOne) SetCity(v string) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateCity() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateCity()
	})
}

// SetUrgency sets the "urgency" field.
func (u *BloodRequestUpsertOne) SetUrgency(v bloodrequest.Urgency) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateUrgency() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUrgency()
	})
}

// SetStatus sets the "status" field.
func (u *BloodRequestUpsertOne) SetStatus(v bloodrequest.Status) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateStatus() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *BloodRequestUpsertOne) SetContactPhone(v string) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateContactPhone() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateContactPhone()
	})
}

// SetNeededBy sets the "needed_by" field.
func (u *BloodRequestUpsertOne) SetNeededBy(v time.Time) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetNeededBy(v)
	})
}

// UpdateNeededBy sets the "needed_by" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateNeededBy() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateNeededBy()
	})
}

// ClearNeededBy clears the value of the "needed_by" field.
func (u *BloodRequestUpsertOne) ClearNeededBy() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.ClearNeededBy()
	})
}

// SetNotes sets the "notes" field.
func (u *BloodRequestUpsertOne) SetNotes(v string) *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BloodRequestUpsertOne) UpdateNotes() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *BloodRequestUpsertOne) ClearNotes() *BloodRequestUpsertOne {
	return u.Update(func(s *BloodRequestUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *BloodRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BloodRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BloodRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BloodRequestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BloodRequestUpsertOne.ID is not supported by MySQL driver. Use BloodRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BloodRequestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BloodRequestCreateBulk is the builder for creating many BloodRequest entities in bulk.
type BloodRequestCreateBulk struct {
	config
	err      error
	builders []*BloodRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the BloodRequest entities in the database.
func (_c *BloodRequestCreateBulk) Save(ctx context.Context) ([]*BloodRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BloodRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BloodRequestMutation)
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
func (_c *BloodRequestCreateBulk) SaveX(ctx context.Context) []*BloodRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BloodRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BloodRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BloodRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BloodRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BloodRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *BloodRequestUpsertBulk {
	_c.conflict = opts
	return &BloodRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BloodRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BloodRequestCreateBulk) OnConflictColumns(columns ...string) *BloodRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BloodRequestUpsertBulk{
		create: _c,
	}
}

// BloodRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of BloodRequest nodes.
type BloodRequestUpsertBulk struct {
	create *BloodRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BloodRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bloodrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BloodRequestUpsertBulk) UpdateNewValues() *BloodRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(bloodrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bloodrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BloodRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BloodRequestUpsertBulk) Ignore() *BloodRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BloodRequestUpsertBulk) DoNothing() *BloodRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BloodRequestCreateBulk.OnConflict
// documentation for more info.
func (u *BloodRequestUpsertBulk) Update(set func(*BloodRequestUpsert)) *BloodRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BloodRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BloodRequestUpsertBulk) SetUpdatedAt(v time.Time) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateUpdatedAt() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRequesterID sets the "requester_id" field.
func (u *BloodRequestUpsertBulk) SetRequesterID(v uuid.UUID) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetRequesterID(v)
	})
}

// UpdateRequesterID sets the "requester_id" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateRequesterID() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateRequesterID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *BloodRequestUpsertBulk) SetPatientName(v string) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdatePatientName() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdatePatientName()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *BloodRequestUpsertBulk) SetBloodType(v bloodrequest.BloodType) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateBloodType() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateBloodType()
	})
}

// SetUnitsNeeded sets the "units_needed" field.
func (u *BloodRequestUpsertBulk) SetUnitsNeeded(v int) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUnitsNeeded(v)
	})
}

// AddUnitsNeeded adds v to the "units_needed" field.
func (u *BloodRequestUpsertBulk) AddUnitsNeeded(v int) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.AddUnitsNeeded(v)
	})
}

// UpdateUnitsNeeded sets the "units_needed" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateUnitsNeeded() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUnitsNeeded()
	})
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (u *BloodRequestUpsertBulk) SetUnitsFulfilled(v int) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUnitsFulfilled(v)
	})
}

// AddUnitsFulfilled adds v to the "units_fulfilled" field.
func (u *BloodRequestUpsertBulk) AddUnitsFulfilled(v int) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.AddUnitsFulfilled(v)
	})
}

// UpdateUnitsFulfilled sets the "units_fulfilled" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateUnitsFulfilled() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUnitsFulfilled()
	})
}

// SetHospital sets the "hospital" field.
func (u *BloodRequestUpsertBulk) SetHospital(v string) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetHospital(v)
	})
}

// UpdateHospital sets the "hospital" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateHospital() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateHospital()
	})
}

// SetCity sets the "city" field.
func (u *BloodRequestUpsertBulk) SetCity(v string) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateCity() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateCity()
	})
}

// SetUrgency sets the "urgency" field.
func (u *BloodRequestUpsertBulk) SetUrgency(v bloodrequest.Urgency) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateUrgency() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateUrgency()
	})
}

// SetStatus sets the "status" field.
func (u *BloodRequestUpsertBulk) SetStatus(v bloodrequest.Status) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateStatus() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *BloodRequestUpsertBulk) SetContactPhone(v string) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateContactPhone() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateContactPhone()
	})
}

// SetNeededBy sets the "needed_by" field.
func (u *BloodRequestUpsertBulk) SetNeededBy(v time.Time) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetNeededBy(v)
	})
}

// UpdateNeededBy sets the "needed_by" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateNeededBy() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateNeededBy()
	})
}

// ClearNeededBy clears the value of the "needed_by" field.
func (u *BloodRequestUpsertBulk) ClearNeededBy() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.ClearNeededBy()
	})
}

// SetNotes sets the "notes" field.
func (u *BloodRequestUpsertBulk) SetNotes(v string) *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BloodRequestUpsertBulk) UpdateNotes() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *BloodRequestUpsertBulk) ClearNotes() *BloodRequestUpsertBulk {
	return u.Update(func(s *BloodRequestUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *BloodRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BloodRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BloodRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BloodRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
