// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	"github.com/google/uuid"
)

// DonationInitiative is the model entity for the DonationInitiative schema.
type DonationInitiative struct {
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
	OrganizerID uuid.UUID `json:"organizer_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category holds the value of the "category" field.
	Category donationinitiative.Category `json:"category,omitempty"`
	// Smallest currency unit
	GoalAmount int64 `json:"goal_amount,omitempty"`
	// Maintained atomically as donations land
	RaisedAmount int64 `json:"raised_amount,omitempty"`
	// DonorCount holds the value of the "donor_count" field.
	DonorCount int `json:"donor_count,omitempty"`
	// Status holds the value of the "status" field.
	Status donationinitiative.Status `json:"status,omitempty"`
	// EndsAt holds the value of the "ends_at" field.
	EndsAt *time.Time `json:"ends_at,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL     *string `json:"image_url,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DonationInitiative) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case donationinitiative.FieldGoalAmount, donationinitiative.FieldRaisedAmount, donationinitiative.FieldDonorCount:
			values[i] = new(sql.NullInt64)
		case donationinitiative.FieldTitle, donationinitiative.FieldDescription, donationinitiative.FieldCategory, donationinitiative.FieldStatus, donationinitiative.FieldImageURL:
			values[i] = new(sql.NullString)
		case donationinitiative.FieldCreatedAt, donationinitiative.FieldUpdatedAt, donationinitiative.FieldDeletedAt, donationinitiative.FieldEndsAt:
			values[i] = new(sql.NullTime)
		case donationinitiative.FieldID, donationinitiative.FieldOrganizerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DonationInitiative fields.
func (_m *DonationInitiative) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case donationinitiative.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case donationinitiative.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case donationinitiative.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case donationinitiative.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case donationinitiative.FieldOrganizerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organizer_id", values[i])
			} else if value != nil {
				_m.OrganizerID = *value
			}
		case donationinitiative.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case donationinitiative.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case donationinitiative.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = donationinitiative.Category(value.String)
			}
		case donationinitiative.FieldGoalAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field goal_amount", values[i])
			} else if value.Valid {
				_m.GoalAmount = value.Int64
			}
		case donationinitiative.FieldRaisedAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raised_amount", values[i])
			} else if value.Valid {
				_m.RaisedAmount = value.Int64
			}
		case donationinitiative.FieldDonorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field donor_count", values[i])
			} else if value.Valid {
				_m.DonorCount = int(value.Int64)
			}
		case donationinitiative.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = donationinitiative.Status(value.String)
			}
		case donationinitiative.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = new(time.Time)
				*_m.EndsAt = value.Time
			}
		case donationinitiative.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = new(string)
				*_m.ImageURL = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DonationInitiative.
// This includes values selected through modifiers, order, etc.
func (_m *DonationInitiative) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DonationInitiative.
// Note that you need to call DonationInitiative.Unwrap() before calling this method if this DonationInitiative
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DonationInitiative) Update() *DonationInitiativeUpdateOne {
	return NewDonationInitiativeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DonationInitiative entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DonationInitiative) Unwrap() *DonationInitiative {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DonationInitiative is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DonationInitiative) String() string {
	var builder strings.Builder
	builder.WriteString("DonationInitiative(")
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
	builder.WriteString("organizer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizerID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("goal_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoalAmount))
	builder.WriteString(", ")
	builder.WriteString("raised_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.RaisedAmount))
	builder.WriteString(", ")
	builder.WriteString("donor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DonorCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.EndsAt; v != nil {
		builder.WriteString("ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ImageURL; v != nil {
		builder.WriteString("image_url=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DonationInitiatives is a parsable slice of DonationInitiative.
type DonationInitiatives []*DonationInitiative
