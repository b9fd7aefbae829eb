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
	"github.com/auxillium/auxillium_backend/internal/repo/profile"
	"github.com/google/uuid"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProfileCreate) SetCreatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ProfileCreate) SetDeletedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDeletedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ProfileCreate) SetPhone(v string) *ProfileCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetPhoneVerified sets the "phone_verified" field.
func (_c *ProfileCreate) SetPhoneVerified(v bool) *ProfileCreate {
	_c.mutation.SetPhoneVerified(v)
	return _c
}

// SetNillablePhoneVerified sets the "phone_verified" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePhoneVerified(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetPhoneVerified(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProfileCreate) SetEmail(v string) *ProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableEmail(v *string) *ProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *ProfileCreate) SetPasswordHash(v string) *ProfileCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePasswordHash(v *string) *ProfileCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *ProfileCreate) SetFullName(v string) *ProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableFullName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *ProfileCreate) SetDateOfBirth(v time.Time) *ProfileCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDateOfBirth(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *ProfileCreate) SetGender(v profile.Gender) *ProfileCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableGender(v *profile.Gender) *ProfileCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetBloodType sets the "blood_type" field.
func (_c *ProfileCreate) SetBloodType(v profile.BloodType) *ProfileCreate {
	_c.mutation.SetBloodType(v)
	return _c
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableBloodType(v *profile.BloodType) *ProfileCreate {
	if v != nil {
		_c.SetBloodType(*v)
	}
	return _c
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_c *ProfileCreate) SetInsuranceProvider(v string) *ProfileCreate {
	_c.mutation.SetInsuranceProvider(v)
	return _c
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableInsuranceProvider(v *string) *ProfileCreate {
	if v != nil {
		_c.SetInsuranceProvider(*v)
	}
	return _c
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (_c *ProfileCreate) SetInsurancePolicyEncrypted(v string) *ProfileCreate {
	_c.mutation.SetInsurancePolicyEncrypted(v)
	return _c
}

// SetNillableInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableInsurancePolicyEncrypted(v *string) *ProfileCreate {
	if v != nil {
		_c.SetInsurancePolicyEncrypted(*v)
	}
	return _c
}

// SetAvatarURL sets the "avatar_url" field.
func (_c *ProfileCreate) SetAvatarURL(v string) *ProfileCreate {
	_c.mutation.SetAvatarURL(v)
	return _c
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAvatarURL(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAvatarURL(*v)
	}
	return _c
}

// SetBloodDonor sets the "blood_donor" field.
func (_c *ProfileCreate) SetBloodDonor(v bool) *ProfileCreate {
	_c.mutation.SetBloodDonor(v)
	return _c
}

// SetNillableBloodDonor sets the "blood_donor" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableBloodDonor(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetBloodDonor(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ProfileCreate) SetCity(v string) *ProfileCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCity(v *string) *ProfileCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *ProfileCreate) SetLastLoginAt(v time.Time) *ProfileCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastLoginAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_c *ProfileCreate) SetFailedLoginAttempts(v int) *ProfileCreate {
	_c.mutation.SetFailedLoginAttempts(v)
	return _c
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableFailedLoginAttempts(v *int) *ProfileCreate {
	if v != nil {
		_c.SetFailedLoginAttempts(*v)
	}
	return _c
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_c *ProfileCreate) SetLastFailedLoginAt(v time.Time) *ProfileCreate {
	_c.mutation.SetLastFailedLoginAt(v)
	return _c
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastFailedLoginAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastFailedLoginAt(*v)
	}
	return _c
}

// SetLockedUntil sets the "locked_until" field.
func (_c *ProfileCreate) SetLockedUntil(v time.Time) *ProfileCreate {
	_c.mutation.SetLockedUntil(v)
	return _c
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLockedUntil(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLockedUntil(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProfileCreate) SetStatus(v profile.Status) *ProfileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStatus(v *profile.Status) *ProfileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v uuid.UUID) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableID(v *uuid.UUID) *ProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PhoneVerified(); !ok {
		v := profile.DefaultPhoneVerified
		_c.mutation.SetPhoneVerified(v)
	}
	if _, ok := _c.mutation.FullName(); !ok {
		v := profile.DefaultFullName
		_c.mutation.SetFullName(v)
	}
	if _, ok := _c.mutation.BloodDonor(); !ok {
		v := profile.DefaultBloodDonor
		_c.mutation.SetBloodDonor(v)
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		v := profile.DefaultFailedLoginAttempts
		_c.mutation.SetFailedLoginAttempts(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := profile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := profile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Profile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Profile.updated_at"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "Profile.phone"`)}
	}
	if _, ok := _c.mutation.PhoneVerified(); !ok {
		return &ValidationError{Name: "phone_verified", err: errors.New(`repo: missing required field "Profile.phone_verified"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Profile.full_name"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := profile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Profile.gender": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BloodType(); ok {
		if err := profile.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Profile.blood_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BloodDonor(); !ok {
		return &ValidationError{Name: "blood_donor", err: errors.New(`repo: missing required field "Profile.blood_donor"`)}
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		return &ValidationError{Name: "failed_login_attempts", err: errors.New(`repo: missing required field "Profile.failed_login_attempts"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Profile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := profile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Profile.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(profile.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.PhoneVerified(); ok {
		_spec.SetField(profile.FieldPhoneVerified, field.TypeBool, value)
		_node.PhoneVerified = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(profile.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(profile.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(profile.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.BloodType(); ok {
		_spec.SetField(profile.FieldBloodType, field.TypeEnum, value)
		_node.BloodType = &value
	}
	if value, ok := _c.mutation.InsuranceProvider(); ok {
		_spec.SetField(profile.FieldInsuranceProvider, field.TypeString, value)
		_node.InsuranceProvider = &value
	}
	if value, ok := _c.mutation.InsurancePolicyEncrypted(); ok {
		_spec.SetField(profile.FieldInsurancePolicyEncrypted, field.TypeString, value)
		_node.InsurancePolicyEncrypted = &value
	}
	if value, ok := _c.mutation.AvatarURL(); ok {
		_spec.SetField(profile.FieldAvatarURL, field.TypeString, value)
		_node.AvatarURL = &value
	}
	if value, ok := _c.mutation.BloodDonor(); ok {
		_spec.SetField(profile.FieldBloodDonor, field.TypeBool, value)
		_node.BloodDonor = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(profile.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(profile.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(profile.FieldFailedLoginAttempts, field.TypeInt, value)
		_node.FailedLoginAttempts = value
	}
	if value, ok := _c.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(profile.FieldLastFailedLoginAt, field.TypeTime, value)
		_node.LastFailedLoginAt = &value
	}
	if value, ok := _c.mutation.LockedUntil(); ok {
		_spec.SetField(profile.FieldLockedUntil, field.TypeTime, value)
		_node.LockedUntil = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(profile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	_c.conflict = opts
	return &ProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: _c,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsert) SetUpdatedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateUpdatedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ProfileUpsert) SetDeletedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateDeletedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ProfileUpsert) ClearDeletedAt() *ProfileUpsert {
	u.SetNull(profile.FieldDeletedAt)
	return u
}

// SetPhone sets the "phone" field.
func (u *ProfileUpsert) SetPhone(v string) *ProfileUpsert {
	u.Set(profile.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePhone() *ProfileUpsert {
	u.SetExcluded(profile.FieldPhone)
	return u
}

// SetPhoneVerified sets the "phone_verified" field.
func (u *ProfileUpsert) SetPhoneVerified(v bool) *ProfileUpsert {
	u.Set(profile.FieldPhoneVerified, v)
	return u
}

// UpdatePhoneVerified sets the "phone_verified" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePhoneVerified() *ProfileUpsert {
	u.SetExcluded(profile.FieldPhoneVerified)
	return u
}

// SetEmail sets the "email" field.
func (u *ProfileUpsert) SetEmail(v string) *ProfileUpsert {
	u.Set(profile.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateEmail() *ProfileUpsert {
	u.SetExcluded(profile.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *ProfileUpsert) ClearEmail() *ProfileUpsert {
	u.SetNull(profile.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *ProfileUpsert) SetPasswordHash(v string) *ProfileUpsert {
	u.Set(profile.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePasswordHash() *ProfileUpsert {
	u.SetExcluded(profile.FieldPasswordHash)
	return u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *ProfileUpsert) ClearPasswordHash() *ProfileUpsert {
	u.SetNull(profile.FieldPasswordHash)
	return u
}

// SetFullName sets the "full_name" field.
func (u *ProfileUpsert) SetFullName(v string) *ProfileUpsert {
	u.Set(profile.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateFullName() *ProfileUpsert {
	u.SetExcluded(profile.FieldFullName)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *ProfileUpsert) SetDateOfBirth(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateDateOfBirth() *ProfileUpsert {
	u.SetExcluded(profile.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *ProfileUpsert) ClearDateOfBirth() *ProfileUpsert {
	u.SetNull(profile.FieldDateOfBirth)
	return u
}

// SetGender sets the "gender" field.
func (u *ProfileUpsert) SetGender(v profile.Gender) *ProfileUpsert {
	u.Set(profile.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateGender() *ProfileUpsert {
	u.SetExcluded(profile.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *ProfileUpsert) ClearGender() *ProfileUpsert {
	u.SetNull(profile.FieldGender)
	return u
}

// SetBloodType sets the "blood_type" field.
func (u *ProfileUpsert) SetBloodType(v profile.BloodType) *ProfileUpsert {
	u.Set(profile.FieldBloodType, v)
	return u
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateBloodType() *ProfileUpsert {
	u.SetExcluded(profile.FieldBloodType)
	return u
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *ProfileUpsert) ClearBloodType() *ProfileUpsert {
	u.SetNull(profile.FieldBloodType)
	return u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *ProfileUpsert) SetInsuranceProvider(v string) *ProfileUpsert {
	u.Set(profile.FieldInsuranceProvider, v)
	return u
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateInsuranceProvider() *ProfileUpsert {
	u.SetExcluded(profile.FieldInsuranceProvider)
	return u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *ProfileUpsert) ClearInsuranceProvider() *ProfileUpsert {
	u.SetNull(profile.FieldInsuranceProvider)
	return u
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (u *ProfileUpsert) SetInsurancePolicyEncrypted(v string) *ProfileUpsert {
	u.Set(profile.FieldInsurancePolicyEncrypted, v)
	return u
}

// UpdateInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateInsurancePolicyEncrypted() *ProfileUpsert {
	u.SetExcluded(profile.FieldInsurancePolicyEncrypted)
	return u
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (u *ProfileUpsert) ClearInsurancePolicyEncrypted() *ProfileUpsert {
	u.SetNull(profile.FieldInsurancePolicyEncrypted)
	return u
}

// SetAvatarURL sets the "avatar_url" field.
func (u *ProfileUpsert) SetAvatarURL(v string) *ProfileUpsert {
	u.Set(profile.FieldAvatarURL, v)
	return u
}

// UpdateAvatarURL sets the "avatar_url" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateAvatarURL() *ProfileUpsert {
	u.SetExcluded(profile.FieldAvatarURL)
	return u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (u *ProfileUpsert) ClearAvatarURL() *ProfileUpsert {
	u.SetNull(profile.FieldAvatarURL)
	return u
}

// SetBloodDonor sets the "blood_donor" field.
func (u *ProfileUpsert) SetBloodDonor(v bool) *ProfileUpsert {
	u.Set(profile.FieldBloodDonor, v)
	return u
}

// UpdateBloodDonor sets the "blood_donor" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateBloodDonor() *ProfileUpsert {
	u.SetExcluded(profile.FieldBloodDonor)
	return u
}

// SetCity sets the "city" field.
func (u *ProfileUpsert) SetCity(v string) *ProfileUpsert {
	u.Set(profile.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateCity() *ProfileUpsert {
	u.SetExcluded(profile.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *ProfileUpsert) ClearCity() *ProfileUpsert {
	u.SetNull(profile.FieldCity)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *ProfileUpsert) SetLastLoginAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLastLoginAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *ProfileUpsert) ClearLastLoginAt() *ProfileUpsert {
	u.SetNull(profile.FieldLastLoginAt)
	return u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *ProfileUpsert) SetFailedLoginAttempts(v int) *ProfileUpsert {
	u.Set(profile.FieldFailedLoginAttempts, v)
	return u
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateFailedLoginAttempts() *ProfileUpsert {
	u.SetExcluded(profile.FieldFailedLoginAttempts)
	return u
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *ProfileUpsert) AddFailedLoginAttempts(v int) *ProfileUpsert {
	u.Add(profile.FieldFailedLoginAttempts, v)
	return u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (u *ProfileUpsert) SetLastFailedLoginAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldLastFailedLoginAt, v)
	return u
}

// UpdateLastFailedLoginAt sets the "last_failed_login_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLastFailedLoginAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldLastFailedLoginAt)
	return u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (u *ProfileUpsert) ClearLastFailedLoginAt() *ProfileUpsert {
	u.SetNull(profile.FieldLastFailedLoginAt)
	return u
}

// SetLockedUntil sets the "locked_until" field.
func (u *ProfileUpsert) SetLockedUntil(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldLockedUntil, v)
	return u
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLockedUntil() *ProfileUpsert {
	u.SetExcluded(profile.FieldLockedUntil)
	return u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *ProfileUpsert) ClearLockedUntil() *ProfileUpsert {
	u.SetNull(profile.FieldLockedUntil)
	return u
}

// SetStatus sets the "status" field.
func (u *ProfileUpsert) SetStatus(v profile.Status) *ProfileUpsert {
	u.Set(profile.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateStatus() *ProfileUpsert {
	u.SetExcluded(profile.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(profile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertOne) SetUpdatedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateUpdatedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ProfileUpsertOne) SetDeletedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateDeletedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ProfileUpsertOne) ClearDeletedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPhone sets the "phone" field.
func (u *ProfileUpsertOne) SetPhone(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePhone() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePhone()
	})
}

// SetPhoneVerified sets the "phone_verified" field.
func (u *ProfileUpsertOne) SetPhoneVerified(v bool) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPhoneVerified(v)
	})
}

// UpdatePhoneVerified sets the "phone_verified" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePhoneVerified() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePhoneVerified()
	})
}

// SetEmail sets the "email" field.
func (u *ProfileUpsertOne) SetEmail(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateEmail() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ProfileUpsertOne) ClearEmail() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *ProfileUpsertOne) SetPasswordHash(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePasswordHash() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *ProfileUpsertOne) ClearPasswordHash() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearPasswordHash()
	})
}

// SetFullName sets the "full_name" field.
func (u *ProfileUpsertOne) SetFullName(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateFullName() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFullName()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *ProfileUpsertOne) SetDateOfBirth(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateDateOfBirth() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *ProfileUpsertOne) ClearDateOfBirth() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *ProfileUpsertOne) SetGender(v profile.Gender) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateGender() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *ProfileUpsertOne) ClearGender() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearGender()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *ProfileUpsertOne) SetBloodType(v profile.BloodType) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateBloodType() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *ProfileUpsertOne) ClearBloodType() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearBloodType()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *ProfileUpsertOne) SetInsuranceProvider(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateInsuranceProvider() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *ProfileUpsertOne) ClearInsuranceProvider() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (u *ProfileUpsertOne) SetInsurancePolicyEncrypted(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetInsurancePolicyEncrypted(v)
	})
}

// UpdateInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateInsurancePolicyEncrypted() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateInsurancePolicyEncrypted()
	})
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (u *ProfileUpsertOne) ClearInsurancePolicyEncrypted() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearInsurancePolicyEncrypted()
	})
}

// SetAvatarURL sets the "avatar_url" field.
func (u *ProfileUpsertOne) SetAvatarURL(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAvatarURL(v)
	})
}

// UpdateAvatarURL sets the "avatar_url" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateAvatarURL() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAvatarURL()
	})
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (u *ProfileUpsertOne) ClearAvatarURL() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAvatarURL()
	})
}

// SetBloodDonor sets the "blood_donor" field.
func (u *ProfileUpsertOne) SetBloodDonor(v bool) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBloodDonor(v)
	})
}

// UpdateBloodDonor sets the "blood_donor" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateBloodDonor() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBloodDonor()
	})
}

// SetCity sets the "city" field.
func (u *ProfileUpsertOne) SetCity(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateCity() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ProfileUpsertOne) ClearCity() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearCity()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *ProfileUpsertOne) SetLastLoginAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLastLoginAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *ProfileUpsertOne) ClearLastLoginAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *ProfileUpsertOne) SetFailedLoginAttempts(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFailedLoginAttempts(v)
	})
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *ProfileUpsertOne) AddFailedLoginAttempts(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.AddFailedLoginAttempts(v)
	})
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateFailedLoginAttempts() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFailedLoginAttempts()
	})
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (u *ProfileUpsertOne) SetLastFailedLoginAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLastFailedLoginAt(v)
	})
}

// UpdateLastFailedLoginAt sets the "last_failed_login_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLastFailedLoginAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLastFailedLoginAt()
	})
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (u *ProfileUpsertOne) ClearLastFailedLoginAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLastFailedLoginAt()
	})
}

// SetLockedUntil sets the "locked_until" field.
func (u *ProfileUpsertOne) SetLockedUntil(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLockedUntil(v)
	})
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLockedUntil() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLockedUntil()
	})
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *ProfileUpsertOne) ClearLockedUntil() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLockedUntil()
	})
}

// SetStatus sets the "status" field.
func (u *ProfileUpsertOne) SetStatus(v profile.Status) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateStatus() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ProfileUpsertOne.ID is not supported by MySQL driver. Use ProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	_c.conflict = opts
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(profile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertBulk) SetUpdatedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateUpdatedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ProfileUpsertBulk) SetDeletedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateDeletedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ProfileUpsertBulk) ClearDeletedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPhone sets the "phone" field.
func (u *ProfileUpsertBulk) SetPhone(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePhone() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePhone()
	})
}

// SetPhoneVerified sets the "phone_verified" field.
func (u *ProfileUpsertBulk) SetPhoneVerified(v bool) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPhoneVerified(v)
	})
}

// UpdatePhoneVerified sets the "phone_verified" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePhoneVerified() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePhoneVerified()
	})
}

// SetEmail sets the "email" field.
func (u *ProfileUpsertBulk) SetEmail(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateEmail() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ProfileUpsertBulk) ClearEmail() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *ProfileUpsertBulk) SetPasswordHash(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePasswordHash() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *ProfileUpsertBulk) ClearPasswordHash() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearPasswordHash()
	})
}

// SetFullName sets the "full_name" field.
func (u *ProfileUpsertBulk) SetFullName(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateFullName() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFullName()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *ProfileUpsertBulk) SetDateOfBirth(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateDateOfBirth() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *ProfileUpsertBulk) ClearDateOfBirth() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *ProfileUpsertBulk) SetGender(v profile.Gender) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateGender() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *ProfileUpsertBulk) ClearGender() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearGender()
	})
}

// SetBloodType sets the "blood_type" field.
func (u *ProfileUpsertBulk) SetBloodType(v profile.BloodType) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBloodType(v)
	})
}

// UpdateBloodType sets the "blood_type" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateBloodType() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBloodType()
	})
}

// ClearBloodType clears the value of the "blood_type" field.
func (u *ProfileUpsertBulk) ClearBloodType() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearBloodType()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *ProfileUpsertBulk) SetInsuranceProvider(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateInsuranceProvider() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *ProfileUpsertBulk) ClearInsuranceProvider() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (u *ProfileUpsertBulk) SetInsurancePolicyEncrypted(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetInsurancePolicyEncrypted(v)
	})
}

// UpdateInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateInsurancePolicyEncrypted() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateInsurancePolicyEncrypted()
	})
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (u *ProfileUpsertBulk) ClearInsurancePolicyEncrypted() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearInsurancePolicyEncrypted()
	})
}

// SetAvatarURL sets the "avatar_url" field.
func (u *ProfileUpsertBulk) SetAvatarURL(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAvatarURL(v)
	})
}

// UpdateAvatarURL sets the "avatar_url" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateAvatarURL() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAvatarURL()
	})
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (u *ProfileUpsertBulk) ClearAvatarURL() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAvatarURL()
	})
}

// SetBloodDonor sets the "blood_donor" field.
func (u *ProfileUpsertBulk) SetBloodDonor(v bool) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBloodDonor(v)
	})
}

// UpdateBloodDonor sets the "blood_donor" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateBloodDonor() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBloodDonor()
	})
}

// SetCity sets the "city" field.
func (u *ProfileUpsertBulk) SetCity(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateCity() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ProfileUpsertBulk) ClearCity() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearCity()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *ProfileUpsertBulk) SetLastLoginAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLastLoginAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *ProfileUpsertBulk) ClearLastLoginAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *ProfileUpsertBulk) SetFailedLoginAttempts(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFailedLoginAttempts(v)
	})
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *ProfileUpsertBulk) AddFailedLoginAttempts(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.AddFailedLoginAttempts(v)
	})
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateFailedLoginAttempts() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFailedLoginAttempts()
	})
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (u *ProfileUpsertBulk) SetLastFailedLoginAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLastFailedLoginAt(v)
	})
}

// UpdateLastFailedLoginAt sets the "last_failed_login_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLastFailedLoginAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLastFailedLoginAt()
	})
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (u *ProfileUpsertBulk) ClearLastFailedLoginAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLastFailedLoginAt()
	})
}

// SetLockedUntil sets the "locked_until" field.
func (u *ProfileUpsertBulk) SetLockedUntil(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLockedUntil(v)
	})
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLockedUntil() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLockedUntil()
	})
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *ProfileUpsertBulk) ClearLockedUntil() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLockedUntil()
	})
}

// SetStatus sets the "status" field.
func (u *ProfileUpsertBulk) SetStatus(v profile.Status) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateStatus() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
