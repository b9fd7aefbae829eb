// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/healthmetric"
	"github.com/google/uuid"
)

// HealthMetric is the model entity for the HealthMetric schema.
type HealthMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → profiles.id (account owner)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → family_members.id
	MemberID uuid.UUID `json:"member_id,omitempty"`
	// MetricType holds the value of the "metric_type" field.
	MetricType healthmetric.MetricType `json:"metric_type,omitempty"`
	// Primary reading (systolic for blood pressure)
	Value float64 `json:"value,omitempty"`
	// Diastolic for blood pressure; unused otherwise
	ValueSecondary *float64 `json:"value_secondary,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Note holds the value of the "note" field.
	Note         *string `json:"note,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthmetric.FieldValue, healthmetric.FieldValueSecondary:
			values[i] = new(sql.NullFloat64)
		case healthmetric.FieldMetricType, healthmetric.FieldUnit, healthmetric.FieldNote:
			values[i] = new(sql.NullString)
		case healthmetric.FieldCreatedAt, healthmetric.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case healthmetric.FieldID, healthmetric.FieldUserID, healthmetric.FieldMemberID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthMetric fields.
func (_m *HealthMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthmetric.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case healthmetric.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case healthmetric.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case healthmetric.FieldMemberID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value != nil {
				_m.MemberID = *value
			}
		case healthmetric.FieldMetricType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_type", values[i])
			} else if value.Valid {
				_m.MetricType = healthmetric.MetricType(value.String)
			}
		case healthmetric.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case healthmetric.FieldValueSecondary:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value_secondary", values[i])
			} else if value.Valid {
				_m.ValueSecondary = new(float64)
				*_m.ValueSecondary = value.Float64
			}
		case healthmetric.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case healthmetric.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case healthmetric.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the HealthMetric.
// This includes values selected through modifiers, order, etc.
func (_m *HealthMetric) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HealthMetric.
// Note that you need to call HealthMetric.Unwrap() before calling this method if this HealthMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthMetric) Update() *HealthMetricUpdateOne {
	return NewHealthMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthMetric) Unwrap() *HealthMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HealthMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthMetric) String() string {
	var builder strings.Builder
	builder.WriteString("HealthMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("member_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberID))
	builder.WriteString(", ")
	builder.WriteString("metric_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricType))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	if v := _m.ValueSecondary; v != nil {
		builder.WriteString("value_secondary=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// HealthMetrics is a parsable slice of HealthMetric.
type HealthMetrics []*HealthMetric
