// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/bloodrequest"
	"github.com/google/uuid"
)

// BloodRequest is the model entity for the BloodRequest schema.
type BloodRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → profiles.id
	RequesterID uuid.UUID `json:"requester_id,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// BloodType holds the value of the "blood_type" field.
	BloodType bloodrequest.BloodType `json:"blood_type,omitempty"`
	// UnitsNeeded holds the value of the "units_needed" field.
	UnitsNeeded int `json:"units_needed,omitempty"`
	// UnitsFulfilled holds the value of the "units_fulfilled" field.
	UnitsFulfilled int `json:"units_fulfilled,omitempty"`
	// Hospital holds the value of the "hospital" field.
	Hospital string `json:"hospital,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Urgency holds the value of the "urgency" field.
	Urgency bloodrequest.Urgency `json:"urgency,omitempty"`
	// Status holds the value of the "status" field.
	Status bloodrequest.Status `json:"status,omitempty"`
	// E.164 normalized phone number
	ContactPhone string `json:"contact_phone,omitempty"`
	// NeededBy holds the value of the "needed_by" field.
	NeededBy *time.Time `json:"needed_by,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        *string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BloodRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bloodrequest.FieldUnitsNeeded, bloodrequest.FieldUnitsFulfilled:
			values[i] = new(sql.NullInt64)
		case bloodrequest.FieldPatientName, bloodrequest.FieldBloodType, bloodrequest.FieldHospital, bloodrequest.FieldCity, bloodrequest.FieldUrgency, bloodrequest.FieldStatus, bloodrequest.FieldContactPhone, bloodrequest.FieldNotes:
			values[i] = new(sql.NullString)
		case bloodrequest.FieldCreatedAt, bloodrequest.FieldUpdatedAt, bloodrequest.FieldNeededBy:
			values[i] = new(sql.NullTime)
		case bloodrequest.FieldID, bloodrequest.FieldRequesterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BloodRequest fields.
func (_m *BloodRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bloodrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bloodrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bloodrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case bloodrequest.FieldRequesterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field requester_id", values[i])
			} else if value != nil {
				_m.RequesterID = *value
			}
		case bloodrequest.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case bloodrequest.FieldBloodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_type", values[i])
			} else if value.Valid {
				_m.BloodType = bloodrequest.BloodType(value.String)
			}
		case bloodrequest.FieldUnitsNeeded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units_needed", values[i])
			} else if value.Valid {
				_m.UnitsNeeded = int(value.Int64)
			}
		case bloodrequest.FieldUnitsFulfilled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units_fulfilled", values[i])
			} else if value.Valid {
				_m.UnitsFulfilled = int(value.Int64)
			}
		case bloodrequest.FieldHospital:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hospital", values[i])
			} else if value.Valid {
				_m.Hospital = value.String
			}
		case bloodrequest.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case bloodrequest.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = bloodrequest.Urgency(value.String)
			}
		case bloodrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = bloodrequest.Status(value.String)
			}
		case bloodrequest.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				_m.ContactPhone = value.String
			}
		case bloodrequest.FieldNeededBy:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field needed_by", values[i])
			} else if value.Valid {
				_m.NeededBy = new(time.Time)
				*_m.NeededBy = value.Time
			}
		case bloodrequest.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BloodRequest.
// This includes values selected through modifiers, order, etc.
func (_m *BloodRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BloodRequest.
// Note that you need to call BloodRequest.Unwrap() before calling this method if this BloodRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BloodRequest) Update() *BloodRequestUpdateOne {
	return NewBloodRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BloodRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BloodRequest) Unwrap() *BloodRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BloodRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BloodRequest) String() string {
	var builder strings.Builder
	builder.WriteString("BloodRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("requester_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequesterID))
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("blood_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BloodType))
	builder.WriteString(", ")
	builder.WriteString("units_needed=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsNeeded))
	builder.WriteString(", ")
	builder.WriteString("units_fulfilled=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsFulfilled))
	builder.WriteString(", ")
	builder.WriteString("hospital=")
	builder.WriteString(_m.Hospital)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Urgency))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("contact_phone=")
	builder.WriteString(_m.ContactPhone)
	builder.WriteString(", ")
	if v := _m.NeededBy; v != nil {
		builder.WriteString("needed_by=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// BloodRequests is a parsable slice of BloodRequest.
type BloodRequests []*BloodRequest
