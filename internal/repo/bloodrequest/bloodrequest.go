// Code generated by ent, DO NOT EDIT.

package bloodrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bloodrequest type in the database.
	Label = "blood_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRequesterID holds the string denoting the requester_id field in the database.
	FieldRequesterID = "requester_id"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldBloodType holds the string denoting the blood_type field in the database.
	FieldBloodType = "blood_type"
	// FieldUnitsNeeded holds the string denoting the units_needed field in the database.
	FieldUnitsNeeded = "units_needed"
	// FieldUnitsFulfilled holds the string denoting the units_fulfilled field in the database.
	FieldUnitsFulfilled = "units_fulfilled"
	// FieldHospital holds the string denoting the hospital field in the database.
	FieldHospital = "hospital"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContactPhone holds the string denoting the contact_phone field in the database.
	FieldContactPhone = "contact_phone"
	// FieldNeededBy holds the string denoting the needed_by field in the database.
	FieldNeededBy = "needed_by"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the bloodrequest in the database.
	Table = "blood_requests"
)

// Columns holds all SQL columns for bloodrequest fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRequesterID,
	FieldPatientName,
	FieldBloodType,
	FieldUnitsNeeded,
	FieldUnitsFulfilled,
	FieldHospital,
	FieldCity,
	FieldUrgency,
	FieldStatus,
	FieldContactPhone,
	FieldNeededBy,
	FieldNotes,
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
	// DefaultUnitsNeeded holds the default value on creation for the "units_needed" field.
	DefaultUnitsNeeded int
	// DefaultUnitsFulfilled holds the default value on creation for the "units_fulfilled" field.
	DefaultUnitsFulfilled int
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
		return fmt.Errorf("bloodrequest: invalid enum value for blood_type field: %q", bt)
	}
}

// Urgency defines the type for the "urgency" enum field.
type Urgency string

// UrgencyRoutine is the default value of the Urgency enum.
const DefaultUrgency = UrgencyRoutine

// Urgency values.
const (
	UrgencyRoutine  Urgency = "routine"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyCritical Urgency = "critical"
)

func (u Urgency) String() string {
	return string(u)
}

// UrgencyValidator is a validator for the "urgency" field enum values. It is called by the builders before save.
func UrgencyValidator(u Urgency) error {
	switch u {
	case UrgencyRoutine, UrgencyUrgent, UrgencyCritical:
		return nil
	default:
		return fmt.Errorf("bloodrequest: invalid enum value for urgency field: %q", u)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen      Status = "open"
	StatusMatched   Status = "matched"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusMatched, StatusFulfilled, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("bloodrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BloodRequest queries.
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

// ByRequesterID orders the results by the requester_id field.
func ByRequesterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequesterID, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByBloodType orders the results by the blood_type field.
func ByBloodType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodType, opts...).ToFunc()
}

// ByUnitsNeeded orders the results by the units_needed field.
func ByUnitsNeeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitsNeeded, opts...).ToFunc()
}

// ByUnitsFulfilled orders the results by the units_fulfilled field.
func ByUnitsFulfilled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitsFulfilled, opts...).ToFunc()
}

// ByHospital orders the results by the hospital field.
func ByHospital(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHospital, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByContactPhone orders the results by the contact_phone field.
func ByContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactPhone, opts...).ToFunc()
}

// ByNeededBy orders the results by the needed_by field.
func ByNeededBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeededBy, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
