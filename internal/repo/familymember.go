// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/familymember"
	"github.com/google/uuid"
)

// FamilyMember is the model entity for the FamilyMember schema.
type FamilyMember struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → profiles.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship familymember.Relationship `json:"relationship,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *familymember.Gender `json:"gender,omitempty"`
	// BloodType holds the value of the "blood_type" field.
	BloodType *familymember.BloodType `json:"blood_type,omitempty"`
	// Allergies holds the value of the "allergies" field.
	Allergies []string `json:"allergies,omitempty"`
	// Conditions holds the value of the "conditions" field.
	Conditions []string `json:"conditions,omitempty"`
	// InsuranceProvider holds the value of the "insurance_provider" field.
	InsuranceProvider *string `json:"insurance_provider,omitempty"`
	// InsurancePolicyEncrypted holds the value of the "insurance_policy_encrypted" field.
	InsurancePolicyEncrypted *string `json:"-"`
	// InsuranceValidUntil holds the value of the "insurance_valid_until" field.
	InsuranceValidUntil *time.Time `json:"insurance_valid_until,omitempty"`
	// Smallest currency unit
	InsuranceCoverageAmount *int64 `json:"insurance_coverage_amount,omitempty"`
	// Linked smartwatch, if any
	DeviceName *string `json:"device_name,omitempty"`
	// DeviceConnected holds the value of the "device_connected" field.
	DeviceConnected bool `json:"device_connected,omitempty"`
	// DeviceLastSyncedAt holds the value of the "device_last_synced_at" field.
	DeviceLastSyncedAt *time.Time `json:"device_last_synced_at,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FamilyMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case familymember.FieldAllergies, familymember.FieldConditions:
			values[i] = new([]byte)
		case familymember.FieldDeviceConnected:
			values[i] = new(sql.NullBool)
		case familymember.FieldInsuranceCoverageAmount:
			values[i] = new(sql.NullInt64)
		case familymember.FieldFullName, familymember.FieldRelationship, familymember.FieldGender, familymember.FieldBloodType, familymember.FieldInsuranceProvider, familymember.FieldInsurancePolicyEncrypted, familymember.FieldDeviceName:
			values[i] = new(sql.NullString)
		case familymember.FieldCreatedAt, familymember.FieldUpdatedAt, familymember.FieldDeletedAt, familymember.FieldDateOfBirth, familymember.FieldInsuranceValidUntil, familymember.FieldDeviceLastSyncedAt:
			values[i] = new(sql.NullTime)
		case familymember.FieldID, familymember.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FamilyMember fields.
func (_m *FamilyMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case familymember.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case familymember.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case familymember.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case familymember.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case familymember.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case familymember.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case familymember.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				_m.Relationship = familymember.Relationship(value.String)
			}
		case familymember.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = new(time.Time)
				*_m.DateOfBirth = value.Time
			}
		case familymember.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(familymember.Gender)
				*_m.Gender = familymember.Gender(value.String)
			}
		case familymember.FieldBloodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_type", values[i])
			} else if value.Valid {
				_m.BloodType = new(familymember.BloodType)
				*_m.BloodType = familymember.BloodType(value.String)
			}
		case familymember.FieldAllergies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergies); err != nil {
					return fmt.Errorf("unmarshal field allergies: %w", err)
				}
			}
		case familymember.FieldConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conditions); err != nil {
					return fmt.Errorf("unmarshal field conditions: %w", err)
				}
			}
		case familymember.FieldInsuranceProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_provider", values[i])
			} else if value.Valid {
				_m.InsuranceProvider = new(string)
				*_m.InsuranceProvider = value.String
			}
		case familymember.FieldInsurancePolicyEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_policy_encrypted", values[i])
			} else if value.Valid {
				_m.InsurancePolicyEncrypted = new(string)
				*_m.InsurancePolicyEncrypted = value.String
			}
		case familymember.FieldInsuranceValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_valid_until", values[i])
			} else if value.Valid {
				_m.InsuranceValidUntil = new(time.Time)
				*_m.InsuranceValidUntil = value.Time
			}
		case familymember.FieldInsuranceCoverageAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_coverage_amount", values[i])
			} else if value.Valid {
				_m.InsuranceCoverageAmount = new(int64)
				*_m.InsuranceCoverageAmount = value.Int64
			}
		case familymember.FieldDeviceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_name", values[i])
			} else if value.Valid {
				_m.DeviceName = new(string)
				*_m.DeviceName = value.String
			}
		case familymember.FieldDeviceConnected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field device_connected", values[i])
			} else if value.Valid {
				_m.DeviceConnected = value.Bool
			}
		case familymember.FieldDeviceLastSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field device_last_synced_at", values[i])
			} else if value.Valid {
				_m.DeviceLastSyncedAt = new(time.Time)
				*_m.DeviceLastSyncedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FamilyMember.
// This includes values selected through modifiers, order, etc.
func (_m *FamilyMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FamilyMember.
// Note that you need to call FamilyMember.Unwrap() before calling this method if this FamilyMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FamilyMember) Update() *FamilyMemberUpdateOne {
	return NewFamilyMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FamilyMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FamilyMember) Unwrap() *FamilyMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: FamilyMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FamilyMember) String() string {
	var builder strings.Builder
	builder.WriteString("FamilyMember(")
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
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relationship))
	builder.WriteString(", ")
	if v := _m.DateOfBirth; v != nil {
		builder.WriteString("date_of_birth=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BloodType; v != nil {
		builder.WriteString("blood_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("allergies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergies))
	builder.WriteString(", ")
	builder.WriteString("conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conditions))
	builder.WriteString(", ")
	if v := _m.InsuranceProvider; v != nil {
		builder.WriteString("insurance_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("insurance_policy_encrypted=<sensitive>")
	builder.WriteString(", ")
	if v := _m.InsuranceValidUntil; v != nil {
		builder.WriteString("insurance_valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.InsuranceCoverageAmount; v != nil {
		builder.WriteString("insurance_coverage_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeviceName; v != nil {
		builder.WriteString("device_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("device_connected=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceConnected))
	builder.WriteString(", ")
	if v := _m.DeviceLastSyncedAt; v != nil {
		builder.WriteString("device_last_synced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// FamilyMembers is a parsable slice of FamilyMember.
type FamilyMembers []*FamilyMember
