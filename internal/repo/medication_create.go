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
	"github.com/auxillium/auxillium_backend/internal/repo/medication"
	"github.com/google/uuid"
)

// MedicationCreate is the builder for creating a Medication entity.
type MedicationCreate struct {
	config
	mutation *MedicationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicationCreate) SetCreatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableCreatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicationCreate) SetUpdatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableUpdatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MedicationCreate) SetDeletedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableDeletedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MedicationCreate) SetUserID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *MedicationCreate) SetMemberID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MedicationCreate) SetName(v string) *MedicationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *MedicationCreate) SetDosage(v string) *MedicationCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *MedicationCreate) SetFrequency(v medication.Frequency) *MedicationCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableFrequency(v *medication.Frequency) *MedicationCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetReminderTimes sets the "reminder_times" field.
func (_c *MedicationCreate) SetReminderTimes(v []string) *MedicationCreate {
	_c.mutation.SetReminderTimes(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *MedicationCreate) SetStartDate(v time.Time) *MedicationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *MedicationCreate) SetEndDate(v time.Time) *MedicationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableEndDate(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *MedicationCreate) SetInstructions(v string) *MedicationCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableInstructions(v *string) *MedicationCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *MedicationCreate) SetActive(v bool) *MedicationCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableActive(v *bool) *MedicationCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicationCreate) SetID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableID(v *uuid.UUID) *MedicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicationMutation object of the builder.
func (_c *MedicationCreate) Mutation() *MedicationMutation {
	return _c.mutation
}

// Save creates the Medication in the database.
func (_c *MedicationCreate) Save(ctx context.Context) (*Medication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicationCreate) SaveX(ctx context.Context) *Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		v := medication.DefaultFrequency
		_c.mutation.SetFrequency(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := medication.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medication.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Medication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Medication.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Medication.user_id"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`repo: missing required field "Medication.member_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Medication.name"`)}
	}
	if _, ok := _c.mutation.Dosage(); !ok {
		return &ValidationError{Name: "dosage", err: errors.New(`repo: missing required field "Medication.dosage"`)}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`repo: missing required field "Medication.frequency"`)}
	}
	if v, ok := _c.mutation.Frequency(); ok {
		if err := medication.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Medication.frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "Medication.start_date"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "Medication.active"`)}
	}
	return nil
}

func (_c *MedicationCreate) sqlSave(ctx context.Context) (*Medication, error) {
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

func (_c *MedicationCreate) createSpec() (*Medication, *sqlgraph.CreateSpec) {
	var (
		_node = &Medication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medication.Table, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(medication.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(medication.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(medication.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(medication.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(medication.FieldFrequency, field.TypeEnum, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.ReminderTimes(); ok {
		_spec.SetField(medication.FieldReminderTimes, field.TypeJSON, value)
		_node.ReminderTimes = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(medication.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(medication.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(medication.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(medication.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medication.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationCreate) OnConflict(opts ...sql.ConflictOption) *MedicationUpsertOne {
	_c.conflict = opts
	return &MedicationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationCreate) OnConflictColumns(columns ...string) *MedicationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationUpsertOne{
		create: _c,
	}
}

type (
	// MedicationUpsertOne is the builder for "upsert"-ing
	//  one Medication node.
	MedicationUpsertOne struct {
		create *MedicationCreate
	}

	// MedicationUpsert is the "OnConflict" setter.
	MedicationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsert) SetUpdatedAt(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateUpdatedAt() *MedicationUpsert {
	u.SetExcluded(medication.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MedicationUpsert) SetDeletedAt(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateDeletedAt() *MedicationUpsert {
	u.SetExcluded(medication.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MedicationUpsert) ClearDeletedAt() *MedicationUpsert {
	u.SetNull(medication.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *MedicationUpsert) SetUserID(v uuid.UUID) *MedicationUpsert {
	u.Set(medication.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateUserID() *MedicationUpsert {
	u.SetExcluded(medication.FieldUserID)
	return u
}

// SetMemberID sets the "member_id" field.
func (u *MedicationUpsert) SetMemberID(v uuid.UUID) *MedicationUpsert {
	u.Set(medication.FieldMemberID, v)
	return u
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateMemberID() *MedicationUpsert {
	u.SetExcluded(medication.FieldMemberID)
	return u
}

// SetName sets the "name" field.
func (u *MedicationUpsert) SetName(v string) *MedicationUpsert {
	u.Set(medication.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateName() *MedicationUpsert {
	u.SetExcluded(medication.FieldName)
	return u
}

// SetDosage sets the "dosage" field.
func (u *MedicationUpsert) SetDosage(v string) *MedicationUpsert {
	u.Set(medication.FieldDosage, v)
	return u
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateDosage() *MedicationUpsert {
	u.SetExcluded(medication.FieldDosage)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *MedicationUpsert) SetFrequency(v medication.Frequency) *MedicationUpsert {
	u.Set(medication.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateFrequency() *MedicationUpsert {
	u.SetExcluded(medication.FieldFrequency)
	return u
}

// SetReminderTimes sets the "reminder_times" field.
func (u *MedicationUpsert) SetReminderTimes(v []string) *MedicationUpsert {
	u.Set(medication.FieldReminderTimes, v)
	return u
}

// UpdateReminderTimes sets the "reminder_times" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateReminderTimes() *MedicationUpsert {
	u.SetExcluded(medication.FieldReminderTimes)
	return u
}

// ClearReminderTimes clears the value of the "reminder_times" field.
func (u *MedicationUpsert) ClearReminderTimes() *MedicationUpsert {
	u.SetNull(medication.FieldReminderTimes)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *MedicationUpsert) SetStartDate(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateStartDate() *MedicationUpsert {
	u.SetExcluded(medication.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *MedicationUpsert) SetEndDate(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateEndDate() *MedicationUpsert {
	u.SetExcluded(medication.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *MedicationUpsert) ClearEndDate() *MedicationUpsert {
	u.SetNull(medication.FieldEndDate)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *MedicationUpsert) SetInstructions(v string) *MedicationUpsert {
	u.Set(medication.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateInstructions() *MedicationUpsert {
	u.SetExcluded(medication.FieldInstructions)
	return u
}

// ClearInstructions clears the value of the "instructions" field.
func (u *MedicationUpsert) ClearInstructions() *MedicationUpsert {
	u.SetNull(medication.FieldInstructions)
	return u
}

// SetActive sets the "active" field.
func (u *MedicationUpsert) SetActive(v bool) *MedicationUpsert {
	u.Set(medication.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateActive() *MedicationUpsert {
	u.SetExcluded(medication.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationUpsertOne) UpdateNewValues() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medication.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medication.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicationUpsertOne) Ignore() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationUpsertOne) DoNothing() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationCreate.OnConflict
// documentation for more info.
func (u *MedicationUpsertOne) Update(set func(*MedicationUpsert)) *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsertOne) SetUpdatedAt(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateUpdatedAt() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MedicationUpsertOne) SetDeletedAt(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateDeletedAt() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MedicationUpsertOne) ClearDeletedAt() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *MedicationUpsertOne) SetUserID(v uuid.UUID) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateUserID() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUserID()
	})
}

// SetMemberID sets the "member_id" field.
func (u *MedicationUpsertOne) SetMemberID(v uuid.UUID) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateMemberID() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateMemberID()
	})
}

// SetName sets the "name" field.
func (u *MedicationUpsertOne) SetName(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateName() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateName()
	})
}

// SetDosage sets the "dosage" field.
func (u *MedicationUpsertOne) SetDosage(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateDosage() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *MedicationUpsertOne) SetFrequency(v medication.Frequency) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateFrequency() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateFrequency()
	})
}

// SetReminderTimes sets the "reminder_times" field.
func (u *MedicationUpsertOne) SetReminderTimes(v []string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetReminderTimes(v)
	})
}

// UpdateReminderTimes sets the "reminder_times" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateReminderTimes() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateReminderTimes()
	})
}

// ClearReminderTimes clears the value of the "reminder_times" field.
func (u *MedicationUpsertOne) ClearReminderTimes() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearReminderTimes()
	})
}

// SetStartDate sets the "start_date" field.
func (u *MedicationUpsertOne) SetStartDate(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateStartDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *MedicationUpsertOne) SetEndDate(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateEndDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *MedicationUpsertOne) ClearEndDate() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearEndDate()
	})
}

// SetInstructions sets the "instructions" field.
func (u *MedicationUpsertOne) SetInstructions(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateInstructions() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *MedicationUpsertOne) ClearInstructions() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearInstructions()
	})
}

// SetActive sets the "active" field.
func (u *MedicationUpsertOne) SetActive(v bool) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateActive() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *MedicationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicationUpsertOne.ID is not supported by MySQL driver. Use MedicationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicationCreateBulk is the builder for creating many Medication entities in bulk.
type MedicationCreateBulk struct {
	config
	err      error
	builders []*MedicationCreate
	conflict []sql.ConflictOption
}

// Save creates the Medication entities in the database.
func (_c *MedicationCreateBulk) Save(ctx context.Context) ([]*Medication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Medication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicationMutation)
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
func (_c *MedicationCreateBulk) SaveX(ctx context.Context) []*Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medication.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicationUpsertBulk {
	_c.conflict = opts
	return &MedicationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationCreateBulk) OnConflictColumns(columns ...string) *MedicationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationUpsertBulk{
		create: _c,
	}
}

// MedicationUpsertBulk is the builder for "upsert"-ing
// a bulk of Medication nodes.
type MedicationUpsertBulk struct {
	create *MedicationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationUpsertBulk) UpdateNewValues() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medication.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medication.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicationUpsertBulk) Ignore() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationUpsertBulk) DoNothing() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationCreateBulk.OnConflict
// documentation for more info.
func (u *MedicationUpsertBulk) Update(set func(*MedicationUpsert)) *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsertBulk) SetUpdatedAt(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateUpdatedAt() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MedicationUpsertBulk) SetDeletedAt(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateDeletedAt() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MedicationUpsertBulk) ClearDeletedAt() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *MedicationUpsertBulk) SetUserID(v uuid.UUID) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateUserID() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUserID()
	})
}

// SetMemberID sets the "member_id" field.
func (u *MedicationUpsertBulk) SetMemberID(v uuid.UUID) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateMemberID() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateMemberID()
	})
}

// SetName sets the "name" field.
func (u *MedicationUpsertBulk) SetName(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateName() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateName()
	})
}

// SetDosage sets the "dosage" field.
func (u *MedicationUpsertBulk) SetDosage(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateDosage() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDosage()
	})
}

// SetFrequency sets the "frequency" field.
func (u *MedicationUpsertBulk) SetFrequency(v medication.Frequency) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateFrequency() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateFrequency()
	})
}

// SetReminderTimes sets the "reminder_times" field.
func (u *MedicationUpsertBulk) SetReminderTimes(v []string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetReminderTimes(v)
	})
}

// UpdateReminderTimes sets the "reminder_times" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateReminderTimes() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateReminderTimes()
	})
}

// ClearReminderTimes clears the value of the "reminder_times" field.
func (u *MedicationUpsertBulk) ClearReminderTimes() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearReminderTimes()
	})
}

// SetStartDate sets the "start_date" field.
func (u *MedicationUpsertBulk) SetStartDate(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateStartDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *MedicationUpsertBulk) SetEndDate(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateEndDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *MedicationUpsertBulk) ClearEndDate() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearEndDate()
	})
}

// SetInstructions sets the "instructions" field.
func (u *MedicationUpsertBulk) SetInstructions(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateInstructions() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *MedicationUpsertBulk) ClearInstructions() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearInstructions()
	})
}

// SetActive sets the "active" field.
func (u *MedicationUpsertBulk) SetActive(v bool) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateActive() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *MedicationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
