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
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/auxillium/auxillium_backend/internal/repo/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProfileUpdate) SetDeletedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDeletedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProfileUpdate) ClearDeletedAt() *ProfileUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProfileUpdate) SetPhone(v string) *ProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePhone(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetPhoneVerified sets the "phone_verified" field.
func (_u *ProfileUpdate) SetPhoneVerified(v bool) *ProfileUpdate {
	_u.mutation.SetPhoneVerified(v)
	return _u
}

// SetNillablePhoneVerified sets the "phone_verified" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePhoneVerified(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetPhoneVerified(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfileUpdate) ClearEmail() *ProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *ProfileUpdate) SetPasswordHash(v string) *ProfileUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePasswordHash(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *ProfileUpdate) ClearPasswordHash() *ProfileUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfileUpdate) SetFullName(v string) *ProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableFullName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ProfileUpdate) SetDateOfBirth(v time.Time) *ProfileUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDateOfBirth(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ProfileUpdate) ClearDateOfBirth() *ProfileUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *ProfileUpdate) SetGender(v profile.Gender) *ProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableGender(v *profile.Gender) *ProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *ProfileUpdate) ClearGender() *ProfileUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *ProfileUpdate) SetBloodType(v profile.BloodType) *ProfileUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableBloodType(v *profile.BloodType) *ProfileUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *ProfileUpdate) ClearBloodType() *ProfileUpdate {
	_u.mutation.ClearBloodType()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *ProfileUpdate) SetInsuranceProvider(v string) *ProfileUpdate {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableInsuranceProvider(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *ProfileUpdate) ClearInsuranceProvider() *ProfileUpdate {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (_u *ProfileUpdate) SetInsurancePolicyEncrypted(v string) *ProfileUpdate {
	_u.mutation.SetInsurancePolicyEncrypted(v)
	return _u
}

// SetNillableInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableInsurancePolicyEncrypted(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetInsurancePolicyEncrypted(*v)
	}
	return _u
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (_u *ProfileUpdate) ClearInsurancePolicyEncrypted() *ProfileUpdate {
	_u.mutation.ClearInsurancePolicyEncrypted()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *ProfileUpdate) SetAvatarURL(v string) *ProfileUpdate {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAvatarURL(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *ProfileUpdate) ClearAvatarURL() *ProfileUpdate {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetBloodDonor sets the "blood_donor" field.
func (_u *ProfileUpdate) SetBloodDonor(v bool) *ProfileUpdate {
	_u.mutation.SetBloodDonor(v)
	return _u
}

// SetNillableBloodDonor sets the "blood_donor" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableBloodDonor(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetBloodDonor(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ProfileUpdate) SetCity(v string) *ProfileUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCity(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProfileUpdate) ClearCity() *ProfileUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *ProfileUpdate) SetLastLoginAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastLoginAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *ProfileUpdate) ClearLastLoginAt() *ProfileUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *ProfileUpdate) SetFailedLoginAttempts(v int) *ProfileUpdate {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableFailedLoginAttempts(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *ProfileUpdate) AddFailedLoginAttempts(v int) *ProfileUpdate {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_u *ProfileUpdate) SetLastFailedLoginAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastFailedLoginAt(v)
	return _u
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastFailedLoginAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastFailedLoginAt(*v)
	}
	return _u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (_u *ProfileUpdate) ClearLastFailedLoginAt() *ProfileUpdate {
	_u.mutation.ClearLastFailedLoginAt()
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *ProfileUpdate) SetLockedUntil(v time.Time) *ProfileUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLockedUntil(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *ProfileUpdate) ClearLockedUntil() *ProfileUpdate {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProfileUpdate) SetStatus(v profile.Status) *ProfileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStatus(v *profile.Status) *ProfileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := profile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Profile.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := profile.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Profile.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := profile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Profile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(profile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(profile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneVerified(); ok {
		_spec.SetField(profile.FieldPhoneVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(profile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(profile.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(profile.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(profile.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(profile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(profile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(profile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(profile.FieldBloodType, field.TypeEnum, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(profile.FieldBloodType, field.TypeEnum)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(profile.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(profile.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsurancePolicyEncrypted(); ok {
		_spec.SetField(profile.FieldInsurancePolicyEncrypted, field.TypeString, value)
	}
	if _u.mutation.InsurancePolicyEncryptedCleared() {
		_spec.ClearField(profile.FieldInsurancePolicyEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(profile.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(profile.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.BloodDonor(); ok {
		_spec.SetField(profile.FieldBloodDonor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(profile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(profile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(profile.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(profile.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(profile.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(profile.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(profile.FieldLastFailedLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedLoginAtCleared() {
		_spec.ClearField(profile.FieldLastFailedLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(profile.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(profile.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(profile.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProfileUpdateOne) SetDeletedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDeletedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProfileUpdateOne) ClearDeletedAt() *ProfileUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProfileUpdateOne) SetPhone(v string) *ProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePhone(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetPhoneVerified sets the "phone_verified" field.
func (_u *ProfileUpdateOne) SetPhoneVerified(v bool) *ProfileUpdateOne {
	_u.mutation.SetPhoneVerified(v)
	return _u
}

// SetNillablePhoneVerified sets the "phone_verified" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePhoneVerified(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetPhoneVerified(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProfileUpdateOne) ClearEmail() *ProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *ProfileUpdateOne) SetPasswordHash(v string) *ProfileUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePasswordHash(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *ProfileUpdateOne) ClearPasswordHash() *ProfileUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfileUpdateOne) SetFullName(v string) *ProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableFullName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ProfileUpdateOne) SetDateOfBirth(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDateOfBirth(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ProfileUpdateOne) ClearDateOfBirth() *ProfileUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetGender sets the "gender" field.
func (_u *ProfileUpdateOne) SetGender(v profile.Gender) *ProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableGender(v *profile.Gender) *ProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *ProfileUpdateOne) ClearGender() *ProfileUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *ProfileUpdateOne) SetBloodType(v profile.BloodType) *ProfileUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableBloodType(v *profile.BloodType) *ProfileUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *ProfileUpdateOne) ClearBloodType() *ProfileUpdateOne {
	_u.mutation.ClearBloodType()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *ProfileUpdateOne) SetInsuranceProvider(v string) *ProfileUpdateOne {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableInsuranceProvider(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *ProfileUpdateOne) ClearInsuranceProvider() *ProfileUpdateOne {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (_u *ProfileUpdateOne) SetInsurancePolicyEncrypted(v string) *ProfileUpdateOne {
	_u.mutation.SetInsurancePolicyEncrypted(v)
	return _u
}

// SetNillableInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableInsurancePolicyEncrypted(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetInsurancePolicyEncrypted(*v)
	}
	return _u
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (_u *ProfileUpdateOne) ClearInsurancePolicyEncrypted() *ProfileUpdateOne {
	_u.mutation.ClearInsurancePolicyEncrypted()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *ProfileUpdateOne) SetAvatarURL(v string) *ProfileUpdateOne {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAvatarURL(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *ProfileUpdateOne) ClearAvatarURL() *ProfileUpdateOne {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetBloodDonor sets the "blood_donor" field.
func (_u *ProfileUpdateOne) SetBloodDonor(v bool) *ProfileUpdateOne {
	_u.mutation.SetBloodDonor(v)
	return _u
}

// SetNillableBloodDonor sets the "blood_donor" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableBloodDonor(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetBloodDonor(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ProfileUpdateOne) SetCity(v string) *ProfileUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCity(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProfileUpdateOne) ClearCity() *ProfileUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *ProfileUpdateOne) SetLastLoginAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastLoginAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *ProfileUpdateOne) ClearLastLoginAt() *ProfileUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *ProfileUpdateOne) SetFailedLoginAttempts(v int) *ProfileUpdateOne {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableFailedLoginAttempts(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *ProfileUpdateOne) AddFailedLoginAttempts(v int) *ProfileUpdateOne {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_u *ProfileUpdateOne) SetLastFailedLoginAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastFailedLoginAt(v)
	return _u
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastFailedLoginAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastFailedLoginAt(*v)
	}
	return _u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (_u *ProfileUpdateOne) ClearLastFailedLoginAt() *ProfileUpdateOne {
	_u.mutation.ClearLastFailedLoginAt()
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *ProfileUpdateOne) SetLockedUntil(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLockedUntil(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *ProfileUpdateOne) ClearLockedUntil() *ProfileUpdateOne {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProfileUpdateOne) SetStatus(v profile.Status) *ProfileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStatus(v *profile.Status) *ProfileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := profile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Profile.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BloodType(); ok {
		if err := profile.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Profile.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := profile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Profile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(profile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(profile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneVerified(); ok {
		_spec.SetField(profile.FieldPhoneVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(profile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(profile.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(profile.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(profile.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(profile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(profile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(profile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(profile.FieldBloodType, field.TypeEnum, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(profile.FieldBloodType, field.TypeEnum)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(profile.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(profile.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InsurancePolicyEncrypted(); ok {
		_spec.SetField(profile.FieldInsurancePolicyEncrypted, field.TypeString, value)
	}
	if _u.mutation.InsurancePolicyEncryptedCleared() {
		_spec.ClearField(profile.FieldInsurancePolicyEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(profile.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(profile.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.BloodDonor(); ok {
		_spec.SetField(profile.FieldBloodDonor, field.TypeBool, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(profile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(profile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(profile.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(profile.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(profile.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(profile.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(profile.FieldLastFailedLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedLoginAtCleared() {
		_spec.ClearField(profile.FieldLastFailedLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(profile.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(profile.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(profile.FieldStatus, field.TypeEnum, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
