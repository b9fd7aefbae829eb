// Code generated by ent, DO NOT EDIT.

package blooddonation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the blooddonation type in the database.
	Label = "blood_donation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDonorID holds the string denoting the donor_id field in the database.
	FieldDonorID = "donor_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldBloodType holds the string denoting the blood_type field in the database.
	FieldBloodType = "blood_type"
	// FieldUnits holds the string denoting the units field in the database.
	FieldUnits = "units"
	// FieldDonatedAt holds the string denoting the donated_at field in the database.
	FieldDonatedAt = "donated_at"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// Table holds the table name of the blooddonation in the database.
	Table = "blood_donations"
)

// Columns holds all SQL columns for blooddonation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDonorID,
	FieldRequestID,
	FieldBloodType,
	FieldUnits,
	FieldDonatedAt,
	FieldLocation,
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
	// DefaultUnits holds the default value on creation for the "units" field.
	DefaultUnits int
	// DefaultLocation holds the default value on creation for the "location" field.
	DefaultLocation string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

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
		return fmt.Errorf("blooddonation: invalid enum value for blood_type field: %q", bt)
	}
}

// OrderOption defines the ordering options for the BloodDonation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDonorID orders the results by the donor_id field.
func ByDonorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonorID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByBloodType orders the results by the blood_type field.
func ByBloodType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodType, opts...).ToFunc()
}

// ByUnits orders the results by the units field.
func ByUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnits, opts...).ToFunc()
}

// ByDonatedAt orders the results by the donated_at field.
func ByDonatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonatedAt, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}
