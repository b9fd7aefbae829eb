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
	"github.com/auxillium/auxillium_backend/internal/repo/familymember"
	"github.com/google/uuid"
)

// FamilyMemberCreate is the builder for creating a FamilyMember entity.
type FamilyMemberCreate struct {
	config
	mutation *FamilyMemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FamilyMemberCreate) SetCreatedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableCreatedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FamilyMemberCreate) SetUpdatedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableUpdatedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *FamilyMemberCreate) SetDeletedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableDeletedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FamilyMemberCreate) SetUserID(v uuid.UUID) *FamilyMemberCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *FamilyMemberCreate) SetFullName(v string) *FamilyMemberCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *FamilyMemberCreate) SetRelationship(v familymember.Relationship) *FamilyMemberCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableRelationship(v *familymember.Relationship) *FamilyMemberCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *FamilyMemberCreate) SetDateOfBirth(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableDateOfBirth(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *FamilyMemberCreate) SetGender(v familymember.Gender) *FamilyMemberCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableGender(v *familymember.Gender) *FamilyMemberCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *FamilyMemberCreate) SetBloodType(v familymember.BloodType) *FamilyMemberCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableBloodType(v *familymember.BloodType) *FamilyMemberCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *FamilyMemberCreate) SetAllergies(v []string) *FamilyMemberCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *FamilyMemberCreate) SetConditions(v []string) *FamilyMemberCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_c *FamilyMemberCreate) SetInsuranceProvider(v string) *FamilyMemberCreate {
	_c.mutation.SetInsuranceProvider(v)
	return _c
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableInsuranceProvider(v *string) *FamilyMemberCreate {
	if v != nil {
		_c.SetInsuranceProvider(*v)
	}
	return _c
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (_c *FamilyMemberCreate) SetInsurancePolicyEncrypted(v string) *FamilyMemberCreate {
	_c.mutation.SetInsurancePolicyEncrypted(v)
	return _c
}

// SetNillableInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableInsurancePolicyEncrypted(v *string) *FamilyMemberCreate {
	if v != nil {
		_c.SetInsurancePolicyEncrypted(*v)
	}
	return _c
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (_c *FamilyMemberCreate) SetInsuranceValidUntil(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetInsuranceValidUntil(v)
	return _c
}

// SetNillableInsuranceValidUntil sets the "insurance_valid_until" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableInsuranceValidUntil(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetInsuranceValidUntil(*v)
	}
	return _c
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (_c *FamilyMemberCreate) SetInsuranceCoverageAmount(v int64) *FamilyMemberCreate {
	_c.mutation.SetInsuranceCoverageAmount(v)
	return _c
}

// SetNillableInsuranceCoverageAmount sets the "insurance_coverage_amount" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableInsuranceCoverageAmount(v *int64) *FamilyMemberCreate {
	if v != nil {
		_c.SetInsuranceCoverageAmount(*v)
	}
	return _c
}

// SetDeviceName sets the "device_name" field.
func (_c *FamilyMemberCreate) SetDeviceName(v string) *FamilyMemberCreate {
	_c.mutation.SetDeviceName(v)
	return _c
}

// SetNillableDeviceName sets the "device_name" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableDeviceName(v *string) *FamilyMemberCreate {
	if v != nil {
		_c.SetDeviceName(*v)
	}
	return _c
}

// SetDeviceConnected sets the "device_connected" field.
func (_c *FamilyMemberCreate) SetDeviceConnected(v bool) *FamilyMemberCreate {
	_c.mutation.SetDeviceConnected(v)
	return _c
}

// SetNillableDeviceConnected sets the "device_connected" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableDeviceConnected(v *bool) *FamilyMemberCreate {
	if v != nil {
		_c.SetDeviceConnected(*v)
	}
	return _c
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (_c *FamilyMemberCreate) SetDeviceLastSyncedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetDeviceLastSyncedAt(v)
	return _c
}

// SetNillableDeviceLastSyncedAt sets the "device_last_synced_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableDeviceLastSyncedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetDeviceLastSyncedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FamilyMemberCreate) SetID(v uuid.UUID) *FamilyMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableID(v *uuid.UUID) *FamilyMemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_c *FamilyMemberCreate) Mutation() *FamilyMemberMutation {
	return _c.mutation
}

// Save creates the FamilyMember in the database.
func (_c *FamilyMemberCreate) Save(ctx context.Context) (*FamilyMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FamilyMemberCreate) SaveX(ctx context.Context) *FamilyMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FamilyMemberCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := familymember.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := familymember.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Relationship(); !ok {
		v := familymember.DefaultRelationship
		_c.mutation.SetRelationship(v)
	}
	if _, ok := _c.mutation.DeviceConnected(); !ok {
		v := familymember.DefaultDeviceConnected
		_c.mutation.SetDeviceConnected(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := familymember.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FamilyMemberCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "FamilyMember.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "FamilyMember.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "FamilyMember.user_id"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "FamilyMember.full_name"`)}
	}
	if _, ok := _c.mutation.Relationship(); !ok {
		return &ValidationError{Name: "relationship", err: errors.New(`repo: missing required field "FamilyMember.relationship"`)}
	}
	if v, ok := _c.mutation.Relationship(); ok {
		if err := familymember.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.relationship": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := familymember.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.gender": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := familymember.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.blood_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeviceConnected(); !ok {
		return &ValidationError{Name: "device_connected", err: errors.New(`repo: missing required field "FamilyMember.device_connected"`)}
	}
	return nil
}

func (_c *FamilyMemberCreate) sqlSave(ctx context.Context) (*FamilyMember, error) {
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

func (_c *FamilyMemberCreate) createSpec() (*FamilyMember, *sqlgraph.CreateSpec) {
	var (
		_node = &FamilyMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(familymember.Table, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(familymember.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(familymember.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(familymember.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(familymember.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(familymember.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(familymember.FieldRelationship, field.TypeEnum, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(familymember.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(familymember.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(familymember.FieldBloodType, field.TypeEnum, value)
		_node.BloodType = &value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(familymember.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(familymember.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.InsuranceProvider(); ok {
		_spec.SetField(familymember.FieldInsuranceProvider, field.TypeString, value)
		_node.InsuranceProvider = &value
	}
	if value, ok := _c.mutation.InsurancePolicyEncrypted(); ok {
		_spec.SetField(familymember.FieldInsurancePolicyEncrypted, field.TypeString, value)
		_node.InsurancePolicyEncrypted = &value
	}
	if value, ok := _c.mutation.InsuranceValidUntil(); ok {
		_spec.SetField(familymember.FieldInsuranceValidUntil, field.TypeTime, value)
		_node.InsuranceValidUntil = &value
	}
	if value, ok := _c.mutation.InsuranceCoverageAmount(); ok {
		_spec.SetField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64, value)
		_node.InsuranceCoverageAmount = &value
	}
	if value, ok := _c.mutation.DeviceName(); ok {
		_spec.SetField(familymember.FieldDeviceName, field.TypeString, value)
		_node.DeviceName = &value
	}
	if value, ok := _c.mutation.DeviceConnected(); ok {
		_spec.SetField(familymember.FieldDeviceConnected, field.TypeBool, value)
		_node.DeviceConnected = value
	}
	if value, ok := _c.mutation.DeviceLastSyncedAt(); ok {
		_spec.SetField(familymember.FieldDeviceLastSyncedAt, field.TypeTime, value)
		_node.DeviceLastSyncedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FamilyMember.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FamilyMemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FamilyMemberCreate) OnConflict(opts ...sql.ConflictOption) *FamilyMemberUpsertOne {
	_c.conflict = opts
	return &FamilyMemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FamilyMemberCreate) OnConflictColumns(columns ...string) *FamilyMemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FamilyMemberUpsertOne{
		create: _c,
	}
}

type (
	// FamilyMemberUpsertOne is the builder for "upsert"-ing
	//  one FamilyMember node.
	FamilyMemberUpsertOne struct {
		create *FamilyMemberCreate
	}

	// FamilyMemberUpsert is the "OnConflict" setter.
	FamilyMemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *FamilyMemberUpsert) SetUpdatedAt(v time.Time) *FamilyMemberUpsert {
	u.Set(familymember.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateUpdatedAt() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *FamilyMemberUpsert) SetDeletedAt(v time.Time) *FamilyMemberUpsert {
	u.Set(familymember.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateDeletedAt() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *FamilyMemberUpsert) ClearDeletedAt() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *FamilyMemberUpsert) SetUserID(v uuid.UUID) *FamilyMemberUpsert {
	u.Set(familymember.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateUserID() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldUserID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *FamilyMemberUpsert) SetFullName(v string) *FamilyMemberUpsert {
	u.Set(familymember.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateFullName() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldFullName)
	return u
}

// SetRelationship sets the "relationship" field.
func (u *FamilyMemberUpsert) SetRelationship(v familymember.Relationship) *FamilyMemberUpsert {
	u.Set(familymember.FieldRelationship, v)
	return u
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateRelationship() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldRelationship)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *FamilyMemberUpsert) SetDateOfBirth(v time.Time) *FamilyMemberUpsert {
	u.Set(familymember.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateDateOfBirth() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *FamilyMemberUpsert) ClearDateOfBirth() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldDateOfBirth)
	return u
}

// SetGender sets the "gender" field.
func (u *FamilyMemberUpsert) SetGender(v familymember.Gender) *FamilyMemberUpsert {
	u.Set(familymember.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateGender() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *FamilyMemberUpsert) ClearGender() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldGender)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *FamilyMemberUpsert) SetBloodType(v familymember.BloodType) *FamilyMemberUpsert {
	u.Set(familymember.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateBloodType() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldBloodType)
	return u
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *FamilyMemberUpsert) ClearBloodType() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldBloodType)
	return u
}

// SetAllergies sets the "allergies" field.
func (u *FamilyMemberUpsert) SetAllergies(v []string) *FamilyMemberUpsert {
	u.Set(familymember.FieldAllergies, v)
	return u
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateAllergies() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldAllergies)
	return u
}

// ClearAllergies clears the value of the "allergies" field.
func (u *FamilyMemberUpsert) ClearAllergies() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldAllergies)
	return u
}

// SetConditions sets the "conditions" field.
func (u *FamilyMemberUpsert) SetConditions(v []string) *FamilyMemberUpsert {
	u.Set(familymember.FieldConditions, v)
	return u
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateConditions() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldConditions)
	return u
}

// ClearConditions clears the value of the "conditions" field.
func (u *FamilyMemberUpsert) ClearConditions() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldConditions)
	return u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *FamilyMemberUpsert) SetInsuranceProvider(v string) *FamilyMemberUpsert {
	u.Set(familymember.FieldInsuranceProvider, v)
	return u
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateInsuranceProvider() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldInsuranceProvider)
	return u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *FamilyMemberUpsert) ClearInsuranceProvider() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldInsuranceProvider)
	return u
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (u *FamilyMemberUpsert) SetInsurancePolicyEncrypted(v string) *FamilyMemberUpsert {
	u.Set(familymember.FieldInsurancePolicyEncrypted, v)
	return u
}

// UpdateInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateInsurancePolicyEncrypted() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldInsurancePolicyEncrypted)
	return u
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (u *FamilyMemberUpsert) ClearInsurancePolicyEncrypted() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldInsurancePolicyEncrypted)
	return u
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (u *FamilyMemberUpsert) SetInsuranceValidUntil(v time.Time) *FamilyMemberUpsert {
	u.Set(familymember.FieldInsuranceValidUntil, v)
	return u
}

// UpdateInsuranceValidUntil sets the "insurance_valid_until" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateInsuranceValidUntil() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldInsuranceValidUntil)
	return u
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (u *FamilyMemberUpsert) ClearInsuranceValidUntil() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldInsuranceValidUntil)
	return u
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsert) SetInsuranceCoverageAmount(v int64) *FamilyMemberUpsert {
	u.Set(familymember.FieldInsuranceCoverageAmount, v)
	return u
}

// UpdateInsuranceCoverageAmount sets the "insurance_coverage_amount" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateInsuranceCoverageAmount() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldInsuranceCoverageAmount)
	return u
}

// AddInsuranceCoverageAmount adds v to the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsert) AddInsuranceCoverageAmount(v int64) *FamilyMemberUpsert {
	u.Add(familymember.FieldInsuranceCoverageAmount, v)
	return u
}

// ClearInsuranceCoverageAmount clears the value of the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsert) ClearInsuranceCoverageAmount() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldInsuranceCoverageAmount)
	return u
}

// SetDeviceName sets the "device_name" field.
func (u *FamilyMemberUpsert) SetDeviceName(v string) *FamilyMemberUpsert {
	u.Set(familymember.FieldDeviceName, v)
	return u
}

// UpdateDeviceName sets the "device_name" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateDeviceName() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldDeviceName)
	return u
}

// ClearDeviceName clears the value of the "device_name" field.
func (u *FamilyMemberUpsert) ClearDeviceName() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldDeviceName)
	return u
}

// SetDeviceConnected sets the "device_connected" field.
func (u *FamilyMemberUpsert) SetDeviceConnected(v bool) *FamilyMemberUpsert {
	u.Set(familymember.FieldDeviceConnected, v)
	return u
}

// UpdateDeviceConnected sets the "device_connected" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateDeviceConnected() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldDeviceConnected)
	return u
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (u *FamilyMemberUpsert) SetDeviceLastSyncedAt(v time.Time) *FamilyMemberUpsert {
	u.Set(familymember.FieldDeviceLastSyncedAt, v)
	return u
}

// UpdateDeviceLastSyncedAt sets the "device_last_synced_at" field to the value that was provided on create.
func (u *FamilyMemberUpsert) UpdateDeviceLastSyncedAt() *FamilyMemberUpsert {
	u.SetExcluded(familymember.FieldDeviceLastSyncedAt)
	return u
}

// ClearDeviceLastSyncedAt clears the value of the "device_last_synced_at" field.
func (u *FamilyMemberUpsert) ClearDeviceLastSyncedAt() *FamilyMemberUpsert {
	u.SetNull(familymember.FieldDeviceLastSyncedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(familymember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FamilyMemberUpsertOne) UpdateNewValues() *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(familymember.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(familymember.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FamilyMemberUpsertOne) Ignore() *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FamilyMemberUpsertOne) DoNothing() *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FamilyMemberCreate.OnConflict
// documentation for more info.
func (u *FamilyMemberUpsertOne) Update(set func(*FamilyMemberUpsert)) *FamilyMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FamilyMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FamilyMemberUpsertOne) SetUpdatedAt(v time.Time) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateUpdatedAt() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *FamilyMemberUpsertOne) SetDeletedAt(v time.Time) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateDeletedAt() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *FamilyMemberUpsertOne) ClearDeletedAt() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *FamilyMemberUpsertOne) SetUserID(v uuid.UUID) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateUserID() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *FamilyMemberUpsertOne) SetFullName(v string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateFullName() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateFullName()
	})
}

// SetRelationship sets the "relationship" field.
func (u *FamilyMemberUpsertOne) SetRelationship(v familymember.Relationship) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetRelationship(v)
	})
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateRelationship() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateRelationship()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *FamilyMemberUpsertOne) SetDateOfBirth(v time.Time) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateDateOfBirth() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *FamilyMemberUpsertOne) ClearDateOfBirth() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *FamilyMemberUpsertOne) SetGender(v familymember.Gender) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateGender() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *FamilyMemberUpsertOne) ClearGender() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearGender()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *FamilyMemberUpsertOne) SetBloodType(v familymember.BloodType) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateBloodType() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *FamilyMemberUpsertOne) ClearBloodType() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearBloodType()
	})
}

// SetAllergies sets the "allergies" field.
func (u *FamilyMemberUpsertOne) SetAllergies(v []string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateAllergies() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *FamilyMemberUpsertOne) ClearAllergies() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearAllergies()
	})
}

// SetConditions sets the "conditions" field.
func (u *FamilyMemberUpsertOne) SetConditions(v []string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateConditions() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *FamilyMemberUpsertOne) ClearConditions() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearConditions()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *FamilyMemberUpsertOne) SetInsuranceProvider(v string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateInsuranceProvider() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *FamilyMemberUpsertOne) ClearInsuranceProvider() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (u *FamilyMemberUpsertOne) SetInsurancePolicyEncrypted(v string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsurancePolicyEncrypted(v)
	})
}

// UpdateInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateInsurancePolicyEncrypted() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsurancePolicyEncrypted()
	})
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (u *FamilyMemberUpsertOne) ClearInsurancePolicyEncrypted() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsurancePolicyEncrypted()
	})
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (u *FamilyMemberUpsertOne) SetInsuranceValidUntil(v time.Time) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsuranceValidUntil(v)
	})
}

// UpdateInsuranceValidUntil sets the "insurance_valid_until" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateInsuranceValidUntil() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsuranceValidUntil()
	})
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (u *FamilyMemberUpsertOne) ClearInsuranceValidUntil() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsuranceValidUntil()
	})
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsertOne) SetInsuranceCoverageAmount(v int64) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsuranceCoverageAmount(v)
	})
}

// AddInsuranceCoverageAmount adds v to the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsertOne) AddInsuranceCoverageAmount(v int64) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.AddInsuranceCoverageAmount(v)
	})
}

// UpdateInsuranceCoverageAmount sets the "insurance_coverage_amount" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateInsuranceCoverageAmount() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsuranceCoverageAmount()
	})
}

// ClearInsuranceCoverageAmount clears the value of the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsertOne) ClearInsuranceCoverageAmount() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsuranceCoverageAmount()
	})
}

// SetDeviceName sets the "device_name" field.
func (u *FamilyMemberUpsertOne) SetDeviceName(v string) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeviceName(v)
	})
}

// UpdateDeviceName sets the "device_name" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateDeviceName() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeviceName()
	})
}

// ClearDeviceName clears the value of the "device_name" field.
func (u *FamilyMemberUpsertOne) ClearDeviceName() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDeviceName()
	})
}

// SetDeviceConnected sets the "device_connected" field.
func (u *FamilyMemberUpsertOne) SetDeviceConnected(v bool) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeviceConnected(v)
	})
}

// UpdateDeviceConnected sets the "device_connected" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateDeviceConnected() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeviceConnected()
	})
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (u *FamilyMemberUpsertOne) SetDeviceLastSyncedAt(v time.Time) *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeviceLastSyncedAt(v)
	})
}

// UpdateDeviceLastSyncedAt sets the "device_last_synced_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertOne) UpdateDeviceLastSyncedAt() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeviceLastSyncedAt()
	})
}

// ClearDeviceLastSyncedAt clears the value of the "device_last_synced_at" field.
func (u *FamilyMemberUpsertOne) ClearDeviceLastSyncedAt() *FamilyMemberUpsertOne {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDeviceLastSyncedAt()
	})
}

// Exec executes the query.
func (u *FamilyMemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FamilyMemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FamilyMemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FamilyMemberUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FamilyMemberUpsertOne.ID is not supported by MySQL driver. Use FamilyMemberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FamilyMemberUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FamilyMemberCreateBulk is the builder for creating many FamilyMember entities in bulk.
type FamilyMemberCreateBulk struct {
	config
	err      error
	builders []*FamilyMemberCreate
	conflict []sql.ConflictOption
}

// Save creates the FamilyMember entities in the database.
func (_c *FamilyMemberCreateBulk) Save(ctx context.Context) ([]*FamilyMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FamilyMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FamilyMemberMutation)
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
func (_c *FamilyMemberCreateBulk) SaveX(ctx context.Context) []*FamilyMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FamilyMember.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FamilyMemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FamilyMemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *FamilyMemberUpsertBulk {
	_c.conflict = opts
	return &FamilyMemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FamilyMemberCreateBulk) OnConflictColumns(columns ...string) *FamilyMemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FamilyMemberUpsertBulk{
		create: _c,
	}
}

// FamilyMemberUpsertBulk is the builder for "upsert"-ing
// a bulk of FamilyMember nodes.
type FamilyMemberUpsertBulk struct {
	create *FamilyMemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(familymember.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FamilyMemberUpsertBulk) UpdateNewValues() *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(familymember.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(familymember.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FamilyMember.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FamilyMemberUpsertBulk) Ignore() *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FamilyMemberUpsertBulk) DoNothing() *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FamilyMemberCreateBulk.OnConflict
// documentation for more info.
func (u *FamilyMemberUpsertBulk) Update(set func(*FamilyMemberUpsert)) *FamilyMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FamilyMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FamilyMemberUpsertBulk) SetUpdatedAt(v time.Time) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateUpdatedAt() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *FamilyMemberUpsertBulk) SetDeletedAt(v time.Time) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateDeletedAt() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *FamilyMemberUpsertBulk) ClearDeletedAt() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *FamilyMemberUpsertBulk) SetUserID(v uuid.UUID) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateUserID() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *FamilyMemberUpsertBulk) SetFullName(v string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateFullName() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateFullName()
	})
}

// SetRelationship sets the "relationship" field.
func (u *FamilyMemberUpsertBulk) SetRelationship(v familymember.Relationship) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetRelationship(v)
	})
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateRelationship() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateRelationship()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *FamilyMemberUpsertBulk) SetDateOfBirth(v time.Time) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateDateOfBirth() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *FamilyMemberUpsertBulk) ClearDateOfBirth() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *FamilyMemberUpsertBulk) SetGender(v familymember.Gender) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateGender() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *FamilyMemberUpsertBulk) ClearGender() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearGender()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *FamilyMemberUpsertBulk) SetBloodType(v familymember.BloodType) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateBloodType() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *FamilyMemberUpsertBulk) ClearBloodType() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearBloodType()
	})
}

// SetAllergies sets the "allergies" field.
func (u *FamilyMemberUpsertBulk) SetAllergies(v []string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateAllergies() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *FamilyMemberUpsertBulk) ClearAllergies() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearAllergies()
	})
}

// SetConditions sets the "conditions" field.
func (u *FamilyMemberUpsertBulk) SetConditions(v []string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateConditions() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *FamilyMemberUpsertBulk) ClearConditions() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearConditions()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *FamilyMemberUpsertBulk) SetInsuranceProvider(v string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateInsuranceProvider() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *FamilyMemberUpsertBulk) ClearInsuranceProvider() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (u *FamilyMemberUpsertBulk) SetInsurancePolicyEncrypted(v string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsurancePolicyEncrypted(v)
	})
}

// UpdateInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateInsurancePolicyEncrypted() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsurancePolicyEncrypted()
	})
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (u *FamilyMemberUpsertBulk) ClearInsurancePolicyEncrypted() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsurancePolicyEncrypted()
	})
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (u *FamilyMemberUpsertBulk) SetInsuranceValidUntil(v time.Time) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsuranceValidUntil(v)
	})
}

// UpdateInsuranceValidUntil sets the "insurance_valid_until" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateInsuranceValidUntil() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsuranceValidUntil()
	})
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (u *FamilyMemberUpsertBulk) ClearInsuranceValidUntil() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsuranceValidUntil()
	})
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsertBulk) SetInsuranceCoverageAmount(v int64) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetInsuranceCoverageAmount(v)
	})
}

// AddInsuranceCoverageAmount adds v to the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsertBulk) AddInsuranceCoverageAmount(v int64) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.AddInsuranceCoverageAmount(v)
	})
}

// UpdateInsuranceCoverageAmount sets the "insurance_coverage_amount" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateInsuranceCoverageAmount() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateInsuranceCoverageAmount()
	})
}

// ClearInsuranceCoverageAmount clears the value of the "insurance_coverage_amount" field.
func (u *FamilyMemberUpsertBulk) ClearInsuranceCoverageAmount() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearInsuranceCoverageAmount()
	})
}

// SetDeviceName sets the "device_name" field.
func (u *FamilyMemberUpsertBulk) SetDeviceName(v string) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeviceName(v)
	})
}

// UpdateDeviceName sets the "device_name" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateDeviceName() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeviceName()
	})
}

// ClearDeviceName clears the value of the "device_name" field.
func (u *FamilyMemberUpsertBulk) ClearDeviceName() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDeviceName()
	})
}

// SetDeviceConnected sets the "device_connected" field.
func (u *FamilyMemberUpsertBulk) SetDeviceConnected(v bool) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeviceConnected(v)
	})
}

// UpdateDeviceConnected sets the "device_connected" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateDeviceConnected() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeviceConnected()
	})
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (u *FamilyMemberUpsertBulk) SetDeviceLastSyncedAt(v time.Time) *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.SetDeviceLastSyncedAt(v)
	})
}

// UpdateDeviceLastSyncedAt sets the "device_last_synced_at" field to the value that was provided on create.
func (u *FamilyMemberUpsertBulk) UpdateDeviceLastSyncedAt() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.UpdateDeviceLastSyncedAt()
	})
}

// ClearDeviceLastSyncedAt clears the value of the "device_last_synced_at" field.
func (u *FamilyMemberUpsertBulk) ClearDeviceLastSyncedAt() *FamilyMemberUpsertBulk {
	return u.Update(func(s *FamilyMemberUpsert) {
		s.ClearDeviceLastSyncedAt()
	})
}

// Exec executes the query.
func (u *FamilyMemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FamilyMemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FamilyMemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FamilyMemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
