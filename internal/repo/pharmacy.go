// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/pharmacy"
	"github.com/google/uuid"
)

// Pharmacy is the model entity for the Pharmacy schema.
type Pharmacy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating float64 `json:"rating,omitempty"`
	// Static distance from the city centre
	DistanceKm float64 `json:"distance_km,omitempty"`
	// DeliveryAvailable holds the value of the "delivery_available" field.
	DeliveryAvailable bool `json:"delivery_available,omitempty"`
	// Estimated delivery time; ignored when delivery is unavailable
	DeliveryMinutes int `json:"delivery_minutes,omitempty"`
	// Insurance providers whose members get a co-pay here
	InsurerNetworks []string `json:"insurer_networks,omitempty"`
	// HH:MM local time
	OpensAt string `json:"opens_at,omitempty"`
	// HH:MM local time
	ClosesAt string `json:"closes_at,omitempty"`
	// Open24h holds the value of the "open_24h" field.
	Open24h      bool `json:"open_24h,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pharmacy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pharmacy.FieldInsurerNetworks:
			values[i] = new([]byte)
		case pharmacy.FieldDeliveryAvailable, pharmacy.FieldOpen24h:
			values[i] = new(sql.NullBool)
		case pharmacy.FieldRating, pharmacy.FieldDistanceKm:
			values[i] = new(sql.NullFloat64)
		case pharmacy.FieldDeliveryMinutes:
			values[i] = new(sql.NullInt64)
		case pharmacy.FieldName, pharmacy.FieldAddress, pharmacy.FieldCity, pharmacy.FieldPhone, pharmacy.FieldOpensAt, pharmacy.FieldClosesAt:
			values[i] = new(sql.NullString)
		case pharmacy.FieldCreatedAt, pharmacy.FieldUpdatedAt, pharmacy.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case pharmacy.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pharmacy fields.
func (_m *Pharmacy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pharmacy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pharmacy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pharmacy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case pharmacy.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case pharmacy.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pharmacy.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case pharmacy.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case pharmacy.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case pharmacy.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case pharmacy.FieldDistanceKm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance_km", values[i])
			} else if value.Valid {
				_m.DistanceKm = value.Float64
			}
		case pharmacy.FieldDeliveryAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_available", values[i])
			} else if value.Valid {
				_m.DeliveryAvailable = value.Bool
			}
		case pharmacy.FieldDeliveryMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_minutes", values[i])
			} else if value.Valid {
				_m.DeliveryMinutes = int(value.Int64)
			}
		case pharmacy.FieldInsurerNetworks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insurer_networks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InsurerNetworks); err != nil {
					return fmt.Errorf("unmarshal field insurer_networks: %w", err)
				}
			}
		case pharmacy.FieldOpensAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opens_at", values[i])
			} else if value.Valid {
				_m.OpensAt = value.String
			}
		case pharmacy.FieldClosesAt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field closes_at", values[i])
			} else if value.Valid {
				_m.ClosesAt = value.String
			}
		case pharmacy.FieldOpen24h:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field open_24h", values[i])
			} else if value.Valid {
				_m.Open24h = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pharmacy.
// This includes values selected through modifiers, order, etc.
func (_m *Pharmacy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Pharmacy.
// Note that you need to call Pharmacy.Unwrap() before calling this method if this Pharmacy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pharmacy) Update() *PharmacyUpdateOne {
	return NewPharmacyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pharmacy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pharmacy) Unwrap() *Pharmacy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Pharmacy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pharmacy) String() string {
	var builder strings.Builder
	builder.WriteString("Pharmacy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("distance_km=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistanceKm))
	builder.WriteString(", ")
	builder.WriteString("delivery_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryAvailable))
	builder.WriteString(", ")
	builder.WriteString("delivery_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryMinutes))
	builder.WriteString(", ")
	builder.WriteString("insurer_networks=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsurerNetworks))
	builder.WriteString(", ")
	builder.WriteString("opens_at=")
	builder.WriteString(_m.OpensAt)
	builder.WriteString(", ")
	builder.WriteString("closes_at=")
	builder.WriteString(_m.ClosesAt)
	builder.WriteString(", ")
	builder.WriteString("open_24h=")
	builder.WriteString(fmt.Sprintf("%v", _m.Open24h))
	builder.WriteByte(')')
	return builder.String()
}

// Pharmacies is a parsable slice of Pharmacy.
type Pharmacies []*Pharmacy
