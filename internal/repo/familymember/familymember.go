// Code generated by ent, DO NOT EDIT.

package familymember

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the familymember type in the database.
	Label = "family_member"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldBloodType holds the string denoting the blood_type field in the database.
	FieldBloodType = "blood_type"
	// FieldAllergies holds the string denoting the allergies field in the database.
	FieldAllergies = "allergies"
	// FieldConditions holds the string denoting the conditions field in the database.
	FieldConditions = "conditions"
	// FieldInsuranceProvider holds the string denoting the insurance_provider field in the database.
	FieldInsuranceProvider = "insurance_provider"
	// FieldInsurancePolicyEncrypted holds the string denoting the insurance_policy_encrypted field in the database.
	FieldInsurancePolicyEncrypted = "insurance_policy_encrypted"
	// FieldInsuranceValidUntil holds the string denoting the insurance_valid_until field in the database.
	FieldInsuranceValidUntil = "insurance_valid_until"
	// FieldInsuranceCoverageAmount holds the string denoting the insurance_coverage_amount field in the database.
	FieldInsuranceCoverageAmount = "insurance_coverage_amount"
	// FieldDeviceName holds the string denoting the device_name field in the database.
	FieldDeviceName = "device_name"
	// FieldDeviceConnected holds the string denoting the device_connected field in the database.
	FieldDeviceConnected = "device_connected"
	// FieldDeviceLastSyncedAt holds the string denoting the device_last_synced_at field in the database.
	FieldDeviceLastSyncedAt = "device_last_synced_at"
	// Table holds the table name of the familymember in the database.
	Table = "family_members"
)

// Columns holds all SQL columns for familymember fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldUserID,
	FieldFullName,
	FieldRelationship,
	FieldDateOfBirth,
	FieldGender,
	FieldBloodType,
	FieldAllergies,
	FieldConditions,
	FieldInsuranceProvider,
	FieldInsurancePolicyEncrypted,
	FieldInsuranceValidUntil,
	FieldInsuranceCoverageAmount,
	FieldDeviceName,
	FieldDeviceConnected,
	FieldDeviceLastSyncedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultDeviceConnected holds the default value on creation for the "device_connected" field.
	DefaultDeviceConnected bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Relationship defines the type for the "relationship" enum field.
type Relationship string

// RelationshipOther is the default value of the Relationship enum.
const DefaultRelationship = RelationshipOther

// Relationship values.
const (
	RelationshipSelf    Relationship = "self"
	RelationshipSpouse  Relationship = "spouse"
	RelationshipChild   Relationship = "child"
	RelationshipParent  Relationship = "parent"
	RelationshipSibling Relationship = "sibling"
	RelationshipOther   Relationship = "other"
)

func (r Relationship) String() string {
	return string(r)
}

// RelationshipValidator is a validator for the "relationship" field enum values. It is called by the builders before save.
func RelationshipValidator(r Relationship) error {
	switch r {
	case RelationshipSelf, RelationshipSpouse, RelationshipChild, RelationshipParent, RelationshipSibling, RelationshipOther:
		return nil
	default:
		return fmt.Errorf("familymember: invalid enum value for relationship field: %q", r)
	}
}

// Gender defines the type for the "gender" enum field.
type Gender string

// Gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (ge Gender) String() string {
	return string(ge)
}

// GenderValidator is a validator for the "gender" field enum values. It is called by the builders before save.
func GenderValidator(ge Gender) error {
	switch ge {
	case GenderMale, GenderFemale, GenderOther:
		return nil
	default:
		return fmt.Errorf("familymember: invalid enum value for gender field: %q", ge)
	}
}

// BloodType defines the type for the "blood_type" enum field.
type BloodType string

// BloodType values.
const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

func (bt BloodType) String() string {
	return string(bt)
}

// BloodTypeValidator is a validator for the "blood_type" field enum values. It is called by the builders before save.
func BloodTypeValidator(bt BloodType) error {
	switch bt {
	case BloodTypeAPositive, BloodTypeANegative, BloodTypeBPositive, BloodTypeBNegative, BloodTypeABPositive, BloodTypeABNegative, BloodTypeOPositive, BloodTypeONegative:
		return nil
	default:
		return fmt.Errorf("familymember: invalid enum value for blood_type field: %q", bt)
	}
}

// OrderOption defines the ordering options for the FamilyMember queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByBloodType orders the results by the blood_type field.
func ByBloodType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodType, opts...).ToFunc()
}

// ByInsuranceProvider orders the results by the insurance_provider field.
func ByInsuranceProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceProvider, opts...).ToFunc()
}

// ByInsurancePolicyEncrypted orders the results by the insurance_policy_encrypted field.
func ByInsurancePolicyEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsurancePolicyEncrypted, opts...).ToFunc()
}

// ByInsuranceValidUntil orders the results by the insurance_valid_until field.
func ByInsuranceValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceValidUntil, opts...).ToFunc()
}

// ByInsuranceCoverageAmount orders the results by the insurance_coverage_amount field.
func ByInsuranceCoverageAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceCoverageAmount, opts...).ToFunc()
}

// ByDeviceName orders the results by the device_name field.
func ByDeviceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceName, opts...).ToFunc()
}

// ByDeviceConnected orders the results by the device_connected field.
func ByDeviceConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceConnected, opts...).ToFunc()
}

// ByDeviceLastSyncedAt orders the results by the device_last_synced_at field.
func ByDeviceLastSyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceLastSyncedAt, opts...).ToFunc()
}
