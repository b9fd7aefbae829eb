// Code generated by ent, DO NOT EDIT.

package pharmacy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pharmacy type in the database.
	Label = "pharmacy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldDistanceKm holds the string denoting the distance_km field in the database.
	FieldDistanceKm = "distance_km"
	// FieldDeliveryAvailable holds the string denoting the delivery_available field in the database.
	FieldDeliveryAvailable = "delivery_available"
	// FieldDeliveryMinutes holds the string denoting the delivery_minutes field in the database.
	FieldDeliveryMinutes = "delivery_minutes"
	// FieldInsurerNetworks holds the string denoting the insurer_networks field in the database.
	FieldInsurerNetworks = "insurer_networks"
	// FieldOpensAt holds the string denoting the opens_at field in the database.
	FieldOpensAt = "opens_at"
	// FieldClosesAt holds the string denoting the closes_at field in the database.
	FieldClosesAt = "closes_at"
	// FieldOpen24h holds the string denoting the open_24h field in the database.
	FieldOpen24h = "open_24h"
	// Table holds the table name of the pharmacy in the database.
	Table = "pharmacies"
)

// Columns holds all SQL columns for pharmacy fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldName,
	FieldAddress,
	FieldCity,
	FieldPhone,
	FieldRating,
	FieldDistanceKm,
	FieldDeliveryAvailable,
	FieldDeliveryMinutes,
	FieldInsurerNetworks,
	FieldOpensAt,
	FieldClosesAt,
	FieldOpen24h,
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
	// DefaultAddress holds the default value on creation for the "address" field.
	DefaultAddress string
	// DefaultCity holds the default value on creation for the "city" field.
	DefaultCity string
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating float64
	// DefaultDistanceKm holds the default value on creation for the "distance_km" field.
	DefaultDistanceKm float64
	// DefaultDeliveryAvailable holds the default value on creation for the "delivery_available" field.
	DefaultDeliveryAvailable bool
	// DefaultDeliveryMinutes holds the default value on creation for the "delivery_minutes" field.
	DefaultDeliveryMinutes int
	// DefaultOpensAt holds the default value on creation for the "opens_at" field.
	DefaultOpensAt string
	// DefaultClosesAt holds the default value on creation for the "closes_at" field.
	DefaultClosesAt string
	// DefaultOpen24h holds the default value on creation for the "open_24h" field.
	DefaultOpen24h bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Pharmacy queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByDistanceKm orders the results by the distance_km field.
func ByDistanceKm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistanceKm, opts...).ToFunc()
}

// ByDeliveryAvailable orders the results by the delivery_available field.
func ByDeliveryAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryAvailable, opts...).ToFunc()
}

// ByDeliveryMinutes orders the results by the delivery_minutes field.
func ByDeliveryMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryMinutes, opts...).ToFunc()
}

// ByOpensAt orders the results by the opens_at field.
func ByOpensAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpensAt, opts...).ToFunc()
}

// ByClosesAt orders the results by the closes_at field.
func ByClosesAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosesAt, opts...).ToFunc()
}

// ByOpen24h orders the results by the open_24h field.
func ByOpen24h(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpen24h, opts...).ToFunc()
}
