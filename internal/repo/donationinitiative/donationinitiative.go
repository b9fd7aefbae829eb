// Code generated by ent, DO NOT EDIT.

package donationinitiative

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the donationinitiative type in the database.
	Label = "donation_initiative"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldOrganizerID holds the string denoting the organizer_id field in the database.
	FieldOrganizerID = "organizer_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldGoalAmount holds the string denoting the goal_amount field in the database.
	FieldGoalAmount = "goal_amount"
	// FieldRaisedAmount holds the string denoting the raised_amount field in the database.
	FieldRaisedAmount = "raised_amount"
	// FieldDonorCount holds the string denoting the donor_count field in the database.
	FieldDonorCount = "donor_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEndsAt holds the string denoting the ends_at field in the database.
	FieldEndsAt = "ends_at"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// Table holds the table name of the donationinitiative in the database.
	Table = "donation_initiatives"
)

// Columns holds all SQL columns for donationinitiative fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldOrganizerID,
	FieldTitle,
	FieldDescription,
	FieldCategory,
	FieldGoalAmount,
	FieldRaisedAmount,
	FieldDonorCount,
	FieldStatus,
	FieldEndsAt,
	FieldImageURL,
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
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultRaisedAmount holds the default value on creation for the "raised_amount" field.
	DefaultRaisedAmount int64
	// DefaultDonorCount holds the default value on creation for the "donor_count" field.
	DefaultDonorCount int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryCommunity is the default value of the Category enum.
const DefaultCategory = CategoryCommunity

// Category values.
const (
	CategoryMedicalBills Category = "medical_bills"
	CategoryEquipment    Category = "equipment"
	CategoryResearch     Category = "research"
	CategoryCommunity    Category = "community"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryMedicalBills, CategoryEquipment, CategoryResearch, CategoryCommunity:
		return nil
	default:
		return fmt.Errorf("donationinitiative: invalid enum value for category field: %q", c)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("donationinitiative: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DonationInitiative queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByOrganizerID orders the results by the organizer_id field.
func ByOrganizerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizerID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByGoalAmount orders the results by the goal_amount field.
func ByGoalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalAmount, opts...).ToFunc()
}

// ByRaisedAmount orders the results by the raised_amount field.
func ByRaisedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRaisedAmount, opts...).ToFunc()
}

// ByDonorCount orders the results by the donor_count field.
func ByDonorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonorCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEndsAt orders the results by the ends_at field.
func ByEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndsAt, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}
