// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
	"github.com/google/uuid"
)

// WorkshopEnrollment is the model entity for the WorkshopEnrollment schema.
type WorkshopEnrollment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → workshops.id
	WorkshopID uuid.UUID `json:"workshop_id,omitempty"`
	// FK → profiles.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status       workshopenrollment.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkshopEnrollment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workshopenrollment.FieldStatus:
			values[i] = new(sql.NullString)
		case workshopenrollment.FieldCreatedAt, workshopenrollment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case workshopenrollment.FieldID, workshopenrollment.FieldWorkshopID, workshopenrollment.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkshopEnrollment fields.
func (_m *WorkshopEnrollment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workshopenrollment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workshopenrollment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workshopenrollment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workshopenrollment.FieldWorkshopID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workshop_id", values[i])
			} else if value != nil {
				_m.WorkshopID = *value
			}
		case workshopenrollment.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case workshopenrollment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workshopenrollment.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkshopEnrollment.
// This includes values selected through modifiers, order, etc.
func (_m *WorkshopEnrollment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkshopEnrollment.
// Note that you need to call WorkshopEnrollment.Unwrap() before calling this method if this WorkshopEnrollment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkshopEnrollment) Update() *WorkshopEnrollmentUpdateOne {
	return NewWorkshopEnrollmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkshopEnrollment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkshopEnrollment) Unwrap() *WorkshopEnrollment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WorkshopEnrollment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkshopEnrollment) String() string {
	var builder strings.Builder
	builder.WriteString("WorkshopEnrollment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workshop_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkshopID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// WorkshopEnrollments is a parsable slice of WorkshopEnrollment.
type WorkshopEnrollments []*WorkshopEnrollment
