// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/familymember"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// FamilyMemberUpdate is the builder for updating FamilyMember entities.
type FamilyMemberUpdate struct {
	config
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// Where appends a list predicates to the FamilyMemberUpdate builder.
func (_u *FamilyMemberUpdate) Where(ps ...predicate.FamilyMember) *FamilyMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FamilyMemberUpdate) SetUpdatedAt(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *FamilyMemberUpdate) SetDeletedAt(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableDeletedAt(v *time.Time) *FamilyMemberUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *FamilyMemberUpdate) ClearDeletedAt() *FamilyMemberUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FamilyMemberUpdate) SetUserID(v uuid.UUID) *FamilyMemberUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableUserID(v *uuid.UUID) *FamilyMemberUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *FamilyMemberUpdate) SetFullName(v string) *FamilyMemberUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableFullName(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *FamilyMemberUpdate) SetRelationship(v familymember.Relationship) *FamilyMemberUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableRelationship(v *familymember.Relationship) *FamilyMemberUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *FamilyMemberUpdate) SetDateOfBirth(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableDateOfBirth(v *time.Time) *FamilyMemberUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *FamilyMemberUpdate) ClearDateOfBirth() *FamilyMemberUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *FamilyMemberUpdate) SetGender(v familymember.Gender) *FamilyMemberUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableGender(v *familymember.Gender) *FamilyMemberUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *FamilyMemberUpdate) ClearGender() *FamilyMemberUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *FamilyMemberUpdate) SetBloodType(v familymember.BloodType) *FamilyMemberUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableBloodType(v *familymember.BloodType) *FamilyMemberUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *FamilyMemberUpdate) ClearBloodType() *FamilyMemberUpdate {
	_u.mutation.ClearBloodType()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *FamilyMemberUpdate) SetAllergies(v []string) *FamilyMemberUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *FamilyMemberUpdate) AppendAllergies(v []string) *FamilyMemberUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *FamilyMemberUpdate) ClearAllergies() *FamilyMemberUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *FamilyMemberUpdate) SetConditions(v []string) *FamilyMemberUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *FamilyMemberUpdate) AppendConditions(v []string) *FamilyMemberUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *FamilyMemberUpdate) ClearConditions() *FamilyMemberUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *FamilyMemberUpdate) SetInsuranceProvider(v string) *FamilyMemberUpdate {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableInsuranceProvider(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *FamilyMemberUpdate) ClearInsuranceProvider() *FamilyMemberUpdate {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (_u *FamilyMemberUpdate) SetInsurancePolicyEncrypted(v string) *FamilyMemberUpdate {
	_u.mutation.SetInsurancePolicyEncrypted(v)
	return _u
}

// SetNillableInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableInsurancePolicyEncrypted(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetInsurancePolicyEncrypted(*v)
	}
	return _u
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (_u *FamilyMemberUpdate) ClearInsurancePolicyEncrypted() *FamilyMemberUpdate {
	_u.mutation.ClearInsurancePolicyEncrypted()
	return _u
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (_u *FamilyMemberUpdate) SetInsuranceValidUntil(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetInsuranceValidUntil(v)
	return _u
}

// SetNillableInsuranceValidUntil sets the "insurance_valid_until" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableInsuranceValidUntil(v *time.Time) *FamilyMemberUpdate {
	if v != nil {
		_u.SetInsuranceValidUntil(*v)
	}
	return _u
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (_u *FamilyMemberUpdate) ClearInsuranceValidUntil() *FamilyMemberUpdate {
	_u.mutation.ClearInsuranceValidUntil()
	return _u
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (_u *FamilyMemberUpdate) SetInsuranceCoverageAmount(v int64) *FamilyMemberUpdate {
	_u.mutation.ResetInsuranceCoverageAmount()
	_u.mutation.SetInsuranceCoverageAmount(v)
	return _u
}

// SetNillableInsuranceCoverageAmount sets the "insurance_coverage_amount" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableInsuranceCoverageAmount(v *int64) *FamilyMemberUpdate {
	if v != nil {
		_u.SetInsuranceCoverageAmount(*v)
	}
	return _u
}

// AddInsuranceCoverageAmount adds value to the "insurance_coverage_amount" field.
func (_u *FamilyMemberUpdate) AddInsuranceCoverageAmount(v int64) *FamilyMemberUpdate {
	_u.mutation.AddInsuranceCoverageAmount(v)
	return _u
}

// ClearInsuranceCoverageAmount clears the value of the "insurance_coverage_amount" field.
func (_u *FamilyMemberUpdate) ClearInsuranceCoverageAmount() *FamilyMemberUpdate {
	_u.mutation.ClearInsuranceCoverageAmount()
	return _u
}

// SetDeviceName sets the "device_name" field.
func (_u *FamilyMemberUpdate) SetDeviceName(v string) *FamilyMemberUpdate {
	_u.mutation.SetDeviceName(v)
	return _u
}

// SetNillableDeviceName sets the "device_name" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableDeviceName(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetDeviceName(*v)
	}
	return _u
}

// ClearDeviceName clears the value of the "device_name" field.
func (_u *FamilyMemberUpdate) ClearDeviceName() *FamilyMemberUpdate {
	_u.mutation.ClearDeviceName()
	return _u
}

// SetDeviceConnected sets the "device_connected" field.
func (_u *FamilyMemberUpdate) SetDeviceConnected(v bool) *FamilyMemberUpdate {
	_u.mutation.SetDeviceConnected(v)
	return _u
}

// SetNillableDeviceConnected sets the "device_connected" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableDeviceConnected(v *bool) *FamilyMemberUpdate {
	if v != nil {
		_u.SetDeviceConnected(*v)
	}
	return _u
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (_u *FamilyMemberUpdate) SetDeviceLastSyncedAt(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetDeviceLastSyncedAt(v)
	return _u
}

// SetNillableDeviceLastSyncedAt sets the "device_last_synced_at" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableDeviceLastSyncedAt(v *time.Time) *FamilyMemberUpdate {
	if v != nil {
		_u.SetDeviceLastSyncedAt(*v)
	}
	return _u
}

// ClearDeviceLastSyncedAt clears the value of the "device_last_synced_at" field.
func (_u *FamilyMemberUpdate) ClearDeviceLastSyncedAt() *FamilyMemberUpdate {
	_u.mutation.ClearDeviceLastSyncedAt()
	return _u
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_u *FamilyMemberUpdate) Mutation() *FamilyMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FamilyMemberUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FamilyMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FamilyMemberUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := familymember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FamilyMemberUpdate) check() error {
	if v, ok := _u.mutation.Relationship(); ok {
		if err := familymember.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.relationship": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := familymember.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := familymember.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_u *FamilyMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(familymember.Table, familymember.Columns, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(familymember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(familymember.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(familymember.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(familymember.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(familymember.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(familymember.FieldRelationship, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(familymember.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(familymember.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(familymember.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(familymember.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(familymember.FieldBloodType, field.TypeEnum, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(familymember.FieldBloodType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(familymember.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, familymember.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(familymember.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(familymember.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, familymember.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(familymember.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(familymember.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(familymember.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsurancePolicyEncrypted(); ok {
		_spec.SetField(familymember.FieldInsurancePolicyEncrypted, field.TypeString, value)
	}
	if _u.mutation.InsurancePolicyEncryptedCleared() {
		_spec.ClearField(familymember.FieldInsurancePolicyEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceValidUntil(); ok {
		_spec.SetField(familymember.FieldInsuranceValidUntil, field.TypeTime, value)
	}
	if _u.mutation.InsuranceValidUntilCleared() {
		_spec.ClearField(familymember.FieldInsuranceValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.InsuranceCoverageAmount(); ok {
		_spec.SetField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInsuranceCoverageAmount(); ok {
		_spec.AddField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64, value)
	}
	if _u.mutation.InsuranceCoverageAmountCleared() {
		_spec.ClearField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.DeviceName(); ok {
		_spec.SetField(familymember.FieldDeviceName, field.TypeString, value)
	}
	if _u.mutation.DeviceNameCleared() {
		_spec.ClearField(familymember.FieldDeviceName, field.TypeString)
	}
	if value, ok := _u.mutation.DeviceConnected(); ok {
		_spec.SetField(familymember.FieldDeviceConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeviceLastSyncedAt(); ok {
		_spec.SetField(familymember.FieldDeviceLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.DeviceLastSyncedAtCleared() {
		_spec.ClearField(familymember.FieldDeviceLastSyncedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familymember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FamilyMemberUpdateOne is the builder for updating a single FamilyMember entity.
type FamilyMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FamilyMemberUpdateOne) SetUpdatedAt(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *FamilyMemberUpdateOne) SetDeletedAt(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableDeletedAt(v *time.Time) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *FamilyMemberUpdateOne) ClearDeletedAt() *FamilyMemberUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FamilyMemberUpdateOne) SetUserID(v uuid.UUID) *FamilyMemberUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableUserID(v *uuid.UUID) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *FamilyMemberUpdateOne) SetFullName(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableFullName(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *FamilyMemberUpdateOne) SetRelationship(v familymember.Relationship) *FamilyMemberUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableRelationship(v *familymember.Relationship) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *FamilyMemberUpdateOne) SetDateOfBirth(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableDateOfBirth(v *time.Time) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *FamilyMemberUpdateOne) ClearDateOfBirth() *FamilyMemberUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *FamilyMemberUpdateOne) SetGender(v familymember.Gender) *FamilyMemberUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableGender(v *familymember.Gender) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *FamilyMemberUpdateOne) ClearGender() *FamilyMemberUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *FamilyMemberUpdateOne) SetBloodType(v familymember.BloodType) *FamilyMemberUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableBloodType(v *familymember.BloodType) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *FamilyMemberUpdateOne) ClearBloodType() *FamilyMemberUpdateOne {
	_u.mutation.ClearBloodType()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *FamilyMemberUpdateOne) SetAllergies(v []string) *FamilyMemberUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *FamilyMemberUpdateOne) AppendAllergies(v []string) *FamilyMemberUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *FamilyMemberUpdateOne) ClearAllergies() *FamilyMemberUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *FamilyMemberUpdateOne) SetConditions(v []string) *FamilyMemberUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *FamilyMemberUpdateOne) AppendConditions(v []string) *FamilyMemberUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *FamilyMemberUpdateOne) ClearConditions() *FamilyMemberUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *FamilyMemberUpdateOne) SetInsuranceProvider(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableInsuranceProvider(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *FamilyMemberUpdateOne) ClearInsuranceProvider() *FamilyMemberUpdateOne {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (_u *FamilyMemberUpdateOne) SetInsurancePolicyEncrypted(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetInsurancePolicyEncrypted(v)
	return _u
}

// SetNillableInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableInsurancePolicyEncrypted(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetInsurancePolicyEncrypted(*v)
	}
	return _u
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (_u *FamilyMemberUpdateOne) ClearInsurancePolicyEncrypted() *FamilyMemberUpdateOne {
	_u.mutation.ClearInsurancePolicyEncrypted()
	return _u
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (_u *FamilyMemberUpdateOne) SetInsuranceValidUntil(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetInsuranceValidUntil(v)
	return _u
}

// SetNillableInsuranceValidUntil sets the "insurance_valid_until" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableInsuranceValidUntil(v *time.Time) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetInsuranceValidUntil(*v)
	}
	return _u
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (_u *FamilyMemberUpdateOne) ClearInsuranceValidUntil() *FamilyMemberUpdateOne {
	_u.mutation.ClearInsuranceValidUntil()
	return _u
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (_u *FamilyMemberUpdateOne) SetInsuranceCoverageAmount(v int64) *FamilyMemberUpdateOne {
	_u.mutation.ResetInsuranceCoverageAmount()
	_u.mutation.SetInsuranceCoverageAmount(v)
	return _u
}

// SetNillableInsuranceCoverageAmount sets the "insurance_coverage_amount" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableInsuranceCoverageAmount(v *int64) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetInsuranceCoverageAmount(*v)
	}
	return _u
}

// AddInsuranceCoverageAmount adds value to the "insurance_coverage_amount" field.
func (_u *FamilyMemberUpdateOne) AddInsuranceCoverageAmount(v int64) *FamilyMemberUpdateOne {
	_u.mutation.AddInsuranceCoverageAmount(v)
	return _u
}

// ClearInsuranceCoverageAmount clears the value of the "insurance_coverage_amount" field.
func (_u *FamilyMemberUpdateOne) ClearInsuranceCoverageAmount() *FamilyMemberUpdateOne {
	_u.mutation.ClearInsuranceCoverageAmount()
	return _u
}

// SetDeviceName sets the "device_name" field.
func (_u *FamilyMemberUpdateOne) SetDeviceName(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetDeviceName(v)
	return _u
}

// SetNillableDeviceName sets the "device_name" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableDeviceName(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetDeviceName(*v)
	}
	return _u
}

// ClearDeviceName clears the value of the "device_name" field.
func (_u *FamilyMemberUpdateOne) ClearDeviceName() *FamilyMemberUpdateOne {
	_u.mutation.ClearDeviceName()
	return _u
}

// SetDeviceConnected sets the "device_connected" field.
func (_u *FamilyMemberUpdateOne) SetDeviceConnected(v bool) *FamilyMemberUpdateOne {
	_u.mutation.SetDeviceConnected(v)
	return _u
}

// SetNillableDeviceConnected sets the "device_connected" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableDeviceConnected(v *bool) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetDeviceConnected(*v)
	}
	return _u
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (_u *FamilyMemberUpdateOne) SetDeviceLastSyncedAt(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetDeviceLastSyncedAt(v)
	return _u
}

// SetNillableDeviceLastSyncedAt sets the "device_last_synced_at" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableDeviceLastSyncedAt(v *time.Time) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetDeviceLastSyncedAt(*v)
	}
	return _u
}

// ClearDeviceLastSyncedAt clears the value of the "device_last_synced_at" field.
func (_u *FamilyMemberUpdateOne) ClearDeviceLastSyncedAt() *FamilyMemberUpdateOne {
	_u.mutation.ClearDeviceLastSyncedAt()
	return _u
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_u *FamilyMemberUpdateOne) Mutation() *FamilyMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the FamilyMemberUpdate builder.
func (_u *FamilyMemberUpdateOne) Where(ps ...predicate.FamilyMember) *FamilyMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FamilyMemberUpdateOne) Select(field string, fields ...string) *FamilyMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FamilyMember entity.
func (_u *FamilyMemberUpdateOne) Save(ctx context.Context) (*FamilyMember, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyMemberUpdateOne) SaveX(ctx context.Context) *FamilyMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FamilyMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FamilyMemberUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := familymember.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FamilyMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Relationship(); ok {
		if err := familymember.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.relationship": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := familymember.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := familymember.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "FamilyMember.blood_type": %w`, err)}
		}
	}
	return nil
}

func (_u *FamilyMemberUpdateOne) sqlSave(ctx context.Context) (_node *FamilyMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(familymember.Table, familymember.Columns, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FamilyMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, familymember.FieldID)
		for _, f := range fields {
			if !familymember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != familymember.FieldID {
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
		_spec.SetField(familymember.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(familymember.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(familymember.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(familymember.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(familymember.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(familymember.FieldRelationship, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(familymember.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(familymember.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(familymember.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(familymember.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(familymember.FieldBloodType, field.TypeEnum, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(familymember.FieldBloodType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(familymember.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, familymember.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(familymember.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(familymember.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, familymember.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(familymember.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(familymember.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(familymember.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsurancePolicyEncrypted(); ok {
		_spec.SetField(familymember.FieldInsurancePolicyEncrypted, field.TypeString, value)
	}
	if _u.mutation.InsurancePolicyEncryptedCleared() {
		_spec.ClearField(familymember.FieldInsurancePolicyEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceValidUntil(); ok {
		_spec.SetField(familymember.FieldInsuranceValidUntil, field.TypeTime, value)
	}
	if _u.mutation.InsuranceValidUntilCleared() {
		_spec.ClearField(familymember.FieldInsuranceValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.InsuranceCoverageAmount(); ok {
		_spec.SetField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInsuranceCoverageAmount(); ok {
		_spec.AddField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64, value)
	}
	if _u.mutation.InsuranceCoverageAmountCleared() {
		_spec.ClearField(familymember.FieldInsuranceCoverageAmount, field.TypeInt64)
	}
	if value, ok := _u.mutation.DeviceName(); ok {
		_spec.SetField(familymember.FieldDeviceName, field.TypeString, value)
	}
	if _u.mutation.DeviceNameCleared() {
		_spec.ClearField(familymember.FieldDeviceName, field.TypeString)
	}
	if value, ok := _u.mutation.DeviceConnected(); ok {
		_spec.SetField(familymember.FieldDeviceConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeviceLastSyncedAt(); ok {
		_spec.SetField(familymember.FieldDeviceLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.DeviceLastSyncedAtCleared() {
		_spec.ClearField(familymember.FieldDeviceLastSyncedAt, field.TypeTime)
	}
	_node = &FamilyMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familymember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
