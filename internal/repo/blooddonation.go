// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/blooddonation"
	"github.com/google/uuid"
)

// BloodDonation is the model entity for the BloodDonation schema.
type BloodDonation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → profiles.id
	DonorID uuid.UUID `json:"donor_id,omitempty"`
	// FK → blood_requests.id; nil for walk-in donations
	RequestID *uuid.UUID `json:"request_id,omitempty"`
	// BloodType holds the value of the "blood_type" field.
	BloodType blooddonation.BloodType `json:"blood_type,omitempty"`
	// Units holds the value of the "units" field.
	Units int `json:"units,omitempty"`
	// DonatedAt holds the value of the "donated_at" field.
	DonatedAt time.Time `json:"donated_at,omitempty"`
	// Location holds the value of the "location" field.
	Location     string `json:"location,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BloodDonation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blooddonation.FieldRequestID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case blooddonation.FieldUnits:
			values[i] = new(sql.NullInt64)
		case blooddonation.FieldBloodType, blooddonation.FieldLocation:
			values[i] = new(sql.NullString)
		case blooddonation.FieldCreatedAt, blooddonation.FieldDonatedAt:
			values[i] = new(sql.NullTime)
		case blooddonation.FieldID, blooddonation.FieldDonorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BloodDonation fields.
func (_m *BloodDonation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blooddonation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case blooddonation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blooddonation.FieldDonorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field donor_id", values[i])
			} else if value != nil {
				_m.DonorID = *value
			}
		case blooddonation.FieldRequestID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = new(uuid.UUID)
				*_m.RequestID = *value.S.(*uuid.UUID)
			}
		case blooddonation.FieldBloodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_type", values[i])
			} else if value.Valid {
				_m.BloodType = blooddonation.BloodType(value.String)
			}
		case blooddonation.FieldUnits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units", values[i])
			} else if value.Valid {
				_m.Units = int(value.Int64)
			}
		case blooddonation.FieldDonatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field donated_at", values[i])
			} else if value.Valid {
				_m.DonatedAt = value.Time
			}
		case blooddonation.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BloodDonation.
// This includes values selected through modifiers, order, etc.
func (_m *BloodDonation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BloodDonation.
// Note that you need to call BloodDonation.Unwrap() before calling this method if this BloodDonation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BloodDonation) Update() *BloodDonationUpdateOne {
	return NewBloodDonationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BloodDonation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BloodDonation) Unwrap() *BloodDonation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BloodDonation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BloodDonation) String() string {
	var builder strings.Builder
	builder.WriteString("BloodDonation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("donor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DonorID))
	builder.WriteString(", ")
	if v := _m.RequestID; v != nil {
		builder.WriteString("request_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("blood_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BloodType))
	builder.WriteString(", ")
	builder.WriteString("units=")
	builder.WriteString(fmt.Sprintf("%v", _m.Units))
	builder.WriteString(", ")
	builder.WriteString("donated_at=")
	builder.WriteString(_m.DonatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteByte(')')
	return builder.String()
}

// BloodDonations is a parsable slice of BloodDonation.
type BloodDonations []*BloodDonation
