// Code generated by ent, DO NOT EDIT.

package healthmetric

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the healthmetric type in the database.
	Label = "health_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldMetricType holds the string denoting the metric_type field in the database.
	FieldMetricType = "metric_type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldValueSecondary holds the string denoting the value_secondary field in the database.
	FieldValueSecondary = "value_secondary"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// Table holds the table name of the healthmetric in the database.
	Table = "health_metrics"
)

// Columns holds all SQL columns for healthmetric fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUserID,
	FieldMemberID,
	FieldMetricType,
	FieldValue,
	FieldValueSecondary,
	FieldUnit,
	FieldRecordedAt,
	FieldNote,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// MetricType defines the type for the "metric_type" enum field.
type MetricType string

// MetricType values.
const (
	MetricTypeBloodPressure    MetricType = "blood_pressure"
	MetricTypeHeartRate        MetricType = "heart_rate"
	MetricTypeWeight           MetricType = "weight"
	MetricTypeBloodGlucose     MetricType = "blood_glucose"
	MetricTypeTemperature      MetricType = "temperature"
	MetricTypeOxygenSaturation MetricType = "oxygen_saturation"
)

func (mt MetricType) String() string {
	return string(mt)
}

// MetricTypeValidator is a validator for the "metric_type" field enum values. It is called by the builders before save.
func MetricTypeValidator(mt MetricType) error {
	switch mt {
	case MetricTypeBloodPressure, MetricTypeHeartRate, MetricTypeWeight, MetricTypeBloodGlucose, MetricTypeTemperature, MetricTypeOxygenSaturation:
		return nil
	default:
		return fmt.Errorf("healthmetric: invalid enum value for metric_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the HealthMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByMetricType orders the results by the metric_type field.
func ByMetricType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByValueSecondary orders the results by the value_secondary field.
func ByValueSecondary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueSecondary, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}
