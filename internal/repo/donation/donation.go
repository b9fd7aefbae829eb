// Code generated by ent, DO NOT EDIT.

package donation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the donation type in the database.
	Label = "donation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldInitiativeID holds the string denoting the initiative_id field in the database.
	FieldInitiativeID = "initiative_id"
	// FieldDonorID holds the string denoting the donor_id field in the database.
	FieldDonorID = "donor_id"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldAnonymous holds the string denoting the anonymous field in the database.
	FieldAnonymous = "anonymous"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldReceiptReference holds the string denoting the receipt_reference field in the database.
	FieldReceiptReference = "receipt_reference"
	// Table holds the table name of the donation in the database.
	Table = "donations"
)

// Columns holds all SQL columns for donation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldInitiativeID,
	FieldDonorID,
	FieldAmount,
	FieldAnonymous,
	FieldMessage,
	FieldReceiptReference,
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
	// DefaultAnonymous holds the default value on creation for the "anonymous" field.
	DefaultAnonymous bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Donation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInitiativeID orders the results by the initiative_id field.
func ByInitiativeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiativeID, opts...).ToFunc()
}

// ByDonorID orders the results by the donor_id field.
func ByDonorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDonorID, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByAnonymous orders the results by the anonymous field.
func ByAnonymous(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnonymous, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByReceiptReference orders the results by the receipt_reference field.
func ByReceiptReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptReference, opts...).ToFunc()
}
