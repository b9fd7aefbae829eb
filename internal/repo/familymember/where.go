// Code generated by ent, DO NOT EDIT.

package familymember

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeletedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldUserID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldFullName, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDateOfBirth, v))
}

// InsuranceProvider applies equality check predicate on the "insurance_provider" field. It's identical to InsuranceProviderEQ.
func InsuranceProvider(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsurancePolicyEncrypted applies equality check predicate on the "insurance_policy_encrypted" field. It's identical to InsurancePolicyEncryptedEQ.
func InsurancePolicyEncrypted(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsurancePolicyEncrypted, v))
}

// InsuranceValidUntil applies equality check predicate on the "insurance_valid_until" field. It's identical to InsuranceValidUntilEQ.
func InsuranceValidUntil(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsuranceValidUntil, v))
}

// InsuranceCoverageAmount applies equality check predicate on the "insurance_coverage_amount" field. It's identical to InsuranceCoverageAmountEQ.
func InsuranceCoverageAmount(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsuranceCoverageAmount, v))
}

// DeviceName applies equality check predicate on the "device_name" field. It's identical to DeviceNameEQ.
func DeviceName(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeviceName, v))
}

// DeviceConnected applies equality check predicate on the "device_connected" field. It's identical to DeviceConnectedEQ.
func DeviceConnected(v bool) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeviceConnected, v))
}

// DeviceLastSyncedAt applies equality check predicate on the "device_last_synced_at" field. It's identical to DeviceLastSyncedAtEQ.
func DeviceLastSyncedAt(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeviceLastSyncedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldDeletedAt))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldUserID, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContainsFold(FieldFullName, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v Relationship) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v Relationship) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...Relationship) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...Relationship) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldRelationship, vs...))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldDateOfBirth))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldGender, vs...))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldGender))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v BloodType) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v BloodType) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...BloodType) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...BloodType) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldBloodType, vs...))
}

// BloodTypeIsNil applies the IsNil predicate on the "blood_type" field.
func BloodTypeIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldBloodType))
}

// BloodTypeNotNil applies the NotNil predicate on the "blood_type" field.
func BloodTypeNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldBloodType))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldAllergies))
}

// ConditionsIsNil applies the IsNil predicate on the "conditions" field.
func ConditionsIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldConditions))
}

// ConditionsNotNil applies the NotNil predicate on the "conditions" field.
func ConditionsNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldConditions))
}

// InsuranceProviderEQ applies the EQ predicate on the "insurance_provider" field.
func InsuranceProviderEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderNEQ applies the NEQ predicate on the "insurance_provider" field.
func InsuranceProviderNEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderIn applies the In predicate on the "insurance_provider" field.
func InsuranceProviderIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderNotIn applies the NotIn predicate on the "insurance_provider" field.
func InsuranceProviderNotIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderGT applies the GT predicate on the "insurance_provider" field.
func InsuranceProviderGT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldInsuranceProvider, v))
}

// InsuranceProviderGTE applies the GTE predicate on the "insurance_provider" field.
func InsuranceProviderGTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldInsuranceProvider, v))
}

// InsuranceProviderLT applies the LT predicate on the "insurance_provider" field.
func InsuranceProviderLT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldInsuranceProvider, v))
}

// InsuranceProviderLTE applies the LTE predicate on the "insurance_provider" field.
func InsuranceProviderLTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldInsuranceProvider, v))
}

// InsuranceProviderContains applies the Contains predicate on the "insurance_provider" field.
func InsuranceProviderContains(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContains(FieldInsuranceProvider, v))
}

// InsuranceProviderHasPrefix applies the HasPrefix predicate on the "insurance_provider" field.
func InsuranceProviderHasPrefix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasPrefix(FieldInsuranceProvider, v))
}

// InsuranceProviderHasSuffix applies the HasSuffix predicate on the "insurance_provider" field.
func InsuranceProviderHasSuffix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasSuffix(FieldInsuranceProvider, v))
}

// InsuranceProviderIsNil applies the IsNil predicate on the "insurance_provider" field.
func InsuranceProviderIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldInsuranceProvider))
}

// InsuranceProviderNotNil applies the NotNil predicate on the "insurance_provider" field.
func InsuranceProviderNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldInsuranceProvider))
}

// InsuranceProviderEqualFold applies the EqualFold predicate on the "insurance_provider" field.
func InsuranceProviderEqualFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEqualFold(FieldInsuranceProvider, v))
}

// InsuranceProviderContainsFold applies the ContainsFold predicate on the "insurance_provider" field.
func InsuranceProviderContainsFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContainsFold(FieldInsuranceProvider, v))
}

// InsurancePolicyEncryptedEQ applies the EQ predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedNEQ applies the NEQ predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedNEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedIn applies the In predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldInsurancePolicyEncrypted, vs...))
}

// InsurancePolicyEncryptedNotIn applies the NotIn predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedNotIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldInsurancePolicyEncrypted, vs...))
}

// InsurancePolicyEncryptedGT applies the GT predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedGT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedGTE applies the GTE predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedGTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedLT applies the LT predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedLT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedLTE applies the LTE predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedLTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedContains applies the Contains predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedContains(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContains(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedHasPrefix applies the HasPrefix predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedHasPrefix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasPrefix(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedHasSuffix applies the HasSuffix predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedHasSuffix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasSuffix(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedIsNil applies the IsNil predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldInsurancePolicyEncrypted))
}

// InsurancePolicyEncryptedNotNil applies the NotNil predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldInsurancePolicyEncrypted))
}

// InsurancePolicyEncryptedEqualFold applies the EqualFold predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedEqualFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEqualFold(FieldInsurancePolicyEncrypted, v))
}

// InsurancePolicyEncryptedContainsFold applies the ContainsFold predicate on the "insurance_policy_encrypted" field.
func InsurancePolicyEncryptedContainsFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContainsFold(FieldInsurancePolicyEncrypted, v))
}

// InsuranceValidUntilEQ applies the EQ predicate on the "insurance_valid_until" field.
func InsuranceValidUntilEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilNEQ applies the NEQ predicate on the "insurance_valid_until" field.
func InsuranceValidUntilNEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilIn applies the In predicate on the "insurance_valid_until" field.
func InsuranceValidUntilIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldInsuranceValidUntil, vs...))
}

// InsuranceValidUntilNotIn applies the NotIn predicate on the "insurance_valid_until" field.
func InsuranceValidUntilNotIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldInsuranceValidUntil, vs...))
}

// InsuranceValidUntilGT applies the GT predicate on the "insurance_valid_until" field.
func InsuranceValidUntilGT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilGTE applies the GTE predicate on the "insurance_valid_until" field.
func InsuranceValidUntilGTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilLT applies the LT predicate on the "insurance_valid_until" field.
func InsuranceValidUntilLT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilLTE applies the LTE predicate on the "insurance_valid_until" field.
func InsuranceValidUntilLTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldInsuranceValidUntil, v))
}

// InsuranceValidUntilIsNil applies the IsNil predicate on the "insurance_valid_until" field.
func InsuranceValidUntilIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldInsuranceValidUntil))
}

// InsuranceValidUntilNotNil applies the NotNil predicate on the "insurance_valid_until" field.
func InsuranceValidUntilNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldInsuranceValidUntil))
}

// InsuranceCoverageAmountEQ applies the EQ predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountEQ(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldInsuranceCoverageAmount, v))
}

// InsuranceCoverageAmountNEQ applies the NEQ predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountNEQ(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldInsuranceCoverageAmount, v))
}

// InsuranceCoverageAmountIn applies the In predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountIn(vs ...int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldInsuranceCoverageAmount, vs...))
}

// InsuranceCoverageAmountNotIn applies the NotIn predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountNotIn(vs ...int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldInsuranceCoverageAmount, vs...))
}

// InsuranceCoverageAmountGT applies the GT predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountGT(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldInsuranceCoverageAmount, v))
}

// InsuranceCoverageAmountGTE applies the GTE predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountGTE(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldInsuranceCoverageAmount, v))
}

// InsuranceCoverageAmountLT applies the LT predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountLT(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldInsuranceCoverageAmount, v))
}

// InsuranceCoverageAmountLTE applies the LTE predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountLTE(v int64) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldInsuranceCoverageAmount, v))
}

// InsuranceCoverageAmountIsNil applies the IsNil predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldInsuranceCoverageAmount))
}

// InsuranceCoverageAmountNotNil applies the NotNil predicate on the "insurance_coverage_amount" field.
func InsuranceCoverageAmountNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldInsuranceCoverageAmount))
}

// DeviceNameEQ applies the EQ predicate on the "device_name" field.
func DeviceNameEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeviceName, v))
}

// DeviceNameNEQ applies the NEQ predicate on the "device_name" field.
func DeviceNameNEQ(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldDeviceName, v))
}

// DeviceNameIn applies the In predicate on the "device_name" field.
func DeviceNameIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldDeviceName, vs...))
}

// DeviceNameNotIn applies the NotIn predicate on the "device_name" field.
func DeviceNameNotIn(vs ...string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldDeviceName, vs...))
}

// DeviceNameGT applies the GT predicate on the "device_name" field.
func DeviceNameGT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldDeviceName, v))
}

// DeviceNameGTE applies the GTE predicate on the "device_name" field.
func DeviceNameGTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldDeviceName, v))
}

// DeviceNameLT applies the LT predicate on the "device_name" field.
func DeviceNameLT(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldDeviceName, v))
}

// DeviceNameLTE applies the LTE predicate on the "device_name" field.
func DeviceNameLTE(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldDeviceName, v))
}

// DeviceNameContains applies the Contains predicate on the "device_name" field.
func DeviceNameContains(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContains(FieldDeviceName, v))
}

// DeviceNameHasPrefix applies the HasPrefix predicate on the "device_name" field.
func DeviceNameHasPrefix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasPrefix(FieldDeviceName, v))
}

// DeviceNameHasSuffix applies the HasSuffix predicate on the "device_name" field.
func DeviceNameHasSuffix(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldHasSuffix(FieldDeviceName, v))
}

// DeviceNameIsNil applies the IsNil predicate on the "device_name" field.
func DeviceNameIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldDeviceName))
}

// DeviceNameNotNil applies the NotNil predicate on the "device_name" field.
func DeviceNameNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldDeviceName))
}

// DeviceNameEqualFold applies the EqualFold predicate on the "device_name" field.
func DeviceNameEqualFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEqualFold(FieldDeviceName, v))
}

// DeviceNameContainsFold applies the ContainsFold predicate on the "device_name" field.
func DeviceNameContainsFold(v string) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldContainsFold(FieldDeviceName, v))
}

// DeviceConnectedEQ applies the EQ predicate on the "device_connected" field.
func DeviceConnectedEQ(v bool) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeviceConnected, v))
}

// DeviceConnectedNEQ applies the NEQ predicate on the "device_connected" field.
func DeviceConnectedNEQ(v bool) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldDeviceConnected, v))
}

// DeviceLastSyncedAtEQ applies the EQ predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldEQ(FieldDeviceLastSyncedAt, v))
}

// DeviceLastSyncedAtNEQ applies the NEQ predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtNEQ(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNEQ(FieldDeviceLastSyncedAt, v))
}

// DeviceLastSyncedAtIn applies the In predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIn(FieldDeviceLastSyncedAt, vs...))
}

// DeviceLastSyncedAtNotIn applies the NotIn predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtNotIn(vs ...time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotIn(FieldDeviceLastSyncedAt, vs...))
}

// DeviceLastSyncedAtGT applies the GT predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtGT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGT(FieldDeviceLastSyncedAt, v))
}

// DeviceLastSyncedAtGTE applies the GTE predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtGTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldGTE(FieldDeviceLastSyncedAt, v))
}

// DeviceLastSyncedAtLT applies the LT predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtLT(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLT(FieldDeviceLastSyncedAt, v))
}

// DeviceLastSyncedAtLTE applies the LTE predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtLTE(v time.Time) predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldLTE(FieldDeviceLastSyncedAt, v))
}

// DeviceLastSyncedAtIsNil applies the IsNil predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtIsNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldIsNull(FieldDeviceLastSyncedAt))
}

// DeviceLastSyncedAtNotNil applies the NotNil predicate on the "device_last_synced_at" field.
func DeviceLastSyncedAtNotNil() predicate.FamilyMember {
	return predicate.FamilyMember(sql.FieldNotNull(FieldDeviceLastSyncedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FamilyMember) predicate.FamilyMember {
	return predicate.FamilyMember(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FamilyMember) predicate.FamilyMember {
	return predicate.FamilyMember(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FamilyMember) predicate.FamilyMember {
	return predicate.FamilyMember(sql.NotPredicates(p))
}
