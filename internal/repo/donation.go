// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/donation"
	"github.com/google/uuid"
)

// Donation is the model entity for the Donation schema.
type Donation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → donation_initiatives.id
	InitiativeID uuid.UUID `json:"initiative_id,omitempty"`
	// FK → profiles.id; nil when donated without an account
	DonorID *uuid.UUID `json:"donor_id,omitempty"`
	// Smallest currency unit, positive
	Amount int64 `json:"amount,omitempty"`
	// Anonymous holds the value of the "anonymous" field.
	Anonymous bool `json:"anonymous,omitempty"`
	// Message holds the value of the "message" field.
	Message *string `json:"message,omitempty"`
	// Opaque reference printed on the emailed receipt
	ReceiptReference string `json:"receipt_reference,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Donation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case donation.FieldDonorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case donation.FieldAnonymous:
			values[i] = new(sql.NullBool)
		case donation.FieldAmount:
			values[i] = new(sql.NullInt64)
		case donation.FieldMessage, donation.FieldReceiptReference:
			values[i] = new(sql.NullString)
		case donation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case donation.FieldID, donation.FieldInitiativeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Donation fields.
func (_m *Donation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case donation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case donation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case donation.FieldInitiativeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field initiative_id", values[i])
			} else if value != nil {
				_m.InitiativeID = *value
			}
		case donation.FieldDonorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field donor_id", values[i])
			} else if value.Valid {
				_m.DonorID = new(uuid.UUID)
				*_m.DonorID = *value.S.(*uuid.UUID)
			}
		case donation.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Int64
			}
		case donation.FieldAnonymous:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field anonymous", values[i])
			} else if value.Valid {
				_m.Anonymous = value.Bool
			}
		case donation.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = new(string)
				*_m.Message = value.String
			}
		case donation.FieldReceiptReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_reference", values[i])
			} else if value.Valid {
				_m.ReceiptReference = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Donation.
// This includes values selected through modifiers, order, etc.
func (_m *Donation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Donation.
// Note that you need to call Donation.Unwrap() before calling this method if this Donation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Donation) Update() *DonationUpdateOne {
	return NewDonationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Donation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Donation) Unwrap() *Donation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Donation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Donation) String() string {
	var builder strings.Builder
	builder.WriteString("Donation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("initiative_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InitiativeID))
	builder.WriteString(", ")
	if v := _m.DonorID; v != nil {
		builder.WriteString("donor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("anonymous=")
	builder.WriteString(fmt.Sprintf("%v", _m.Anonymous))
	builder.WriteString(", ")
	if v := _m.Message; v != nil {
		builder.WriteString("message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("receipt_reference=")
	builder.WriteString(_m.ReceiptReference)
	builder.WriteByte(')')
	return builder.String()
}

// Donations is a parsable slice of Donation.
type Donations []*Donation
