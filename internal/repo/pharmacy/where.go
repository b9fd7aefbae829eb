// Code generated by ent, DO NOT EDIT.

package pharmacy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldName, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldCity, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldPhone, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldRating, v))
}

// DistanceKm applies equality check predicate on the "distance_km" field. It's identical to DistanceKmEQ.
func DistanceKm(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDistanceKm, v))
}

// DeliveryAvailable applies equality check predicate on the "delivery_available" field. It's identical to DeliveryAvailableEQ.
func DeliveryAvailable(v bool) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDeliveryAvailable, v))
}

// DeliveryMinutes applies equality check predicate on the "delivery_minutes" field. It's identical to DeliveryMinutesEQ.
func DeliveryMinutes(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDeliveryMinutes, v))
}

// OpensAt applies equality check predicate on the "opens_at" field. It's identical to OpensAtEQ.
func OpensAt(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldOpensAt, v))
}

// ClosesAt applies equality check predicate on the "closes_at" field. It's identical to ClosesAtEQ.
func ClosesAt(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldClosesAt, v))
}

// Open24h applies equality check predicate on the "open_24h" field. It's identical to Open24hEQ.
func Open24h(v bool) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldOpen24h, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContainsFold(FieldName, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContainsFold(FieldCity, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContainsFold(FieldPhone, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldRating, v))
}

// DistanceKmEQ applies the EQ predicate on the "distance_km" field.
func DistanceKmEQ(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDistanceKm, v))
}

// DistanceKmNEQ applies the NEQ predicate on the "distance_km" field.
func DistanceKmNEQ(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldDistanceKm, v))
}

// DistanceKmIn applies the In predicate on the "distance_km" field.
func DistanceKmIn(vs ...float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldDistanceKm, vs...))
}

// DistanceKmNotIn applies the NotIn predicate on the "distance_km" field.
func DistanceKmNotIn(vs ...float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldDistanceKm, vs...))
}

// DistanceKmGT applies the GT predicate on the "distance_km" field.
func DistanceKmGT(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldDistanceKm, v))
}

// DistanceKmGTE applies the GTE predicate on the "distance_km" field.
func DistanceKmGTE(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldDistanceKm, v))
}

// DistanceKmLT applies the LT predicate on the "distance_km" field.
func DistanceKmLT(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldDistanceKm, v))
}

// DistanceKmLTE applies the LTE predicate on the "distance_km" field.
func DistanceKmLTE(v float64) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldDistanceKm, v))
}

// DeliveryAvailableEQ applies the EQ predicate on the "delivery_available" field.
func DeliveryAvailableEQ(v bool) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDeliveryAvailable, v))
}

// DeliveryAvailableNEQ applies the NEQ predicate on the "delivery_available" field.
func DeliveryAvailableNEQ(v bool) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldDeliveryAvailable, v))
}

// DeliveryMinutesEQ applies the EQ predicate on the "delivery_minutes" field.
func DeliveryMinutesEQ(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldDeliveryMinutes, v))
}

// DeliveryMinutesNEQ applies the NEQ predicate on the "delivery_minutes" field.
func DeliveryMinutesNEQ(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldDeliveryMinutes, v))
}

// DeliveryMinutesIn applies the In predicate on the "delivery_minutes" field.
func DeliveryMinutesIn(vs ...int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldDeliveryMinutes, vs...))
}

// DeliveryMinutesNotIn applies the NotIn predicate on the "delivery_minutes" field.
func DeliveryMinutesNotIn(vs ...int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldDeliveryMinutes, vs...))
}

// DeliveryMinutesGT applies the GT predicate on the "delivery_minutes" field.
func DeliveryMinutesGT(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldDeliveryMinutes, v))
}

// DeliveryMinutesGTE applies the GTE predicate on the "delivery_minutes" field.
func DeliveryMinutesGTE(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldDeliveryMinutes, v))
}

// DeliveryMinutesLT applies the LT predicate on the "delivery_minutes" field.
func DeliveryMinutesLT(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldDeliveryMinutes, v))
}

// DeliveryMinutesLTE applies the LTE predicate on the "delivery_minutes" field.
func DeliveryMinutesLTE(v int) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldDeliveryMinutes, v))
}

// InsurerNetworksIsNil applies the IsNil predicate on the "insurer_networks" field.
func InsurerNetworksIsNil() predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIsNull(FieldInsurerNetworks))
}

// InsurerNetworksNotNil applies the NotNil predicate on the "insurer_networks" field.
func InsurerNetworksNotNil() predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotNull(FieldInsurerNetworks))
}

// OpensAtEQ applies the EQ predicate on the "opens_at" field.
func OpensAtEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldOpensAt, v))
}

// OpensAtNEQ applies the NEQ predicate on the "opens_at" field.
func OpensAtNEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldOpensAt, v))
}

// OpensAtIn applies the In predicate on the "opens_at" field.
func OpensAtIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldOpensAt, vs...))
}

// OpensAtNotIn applies the NotIn predicate on the "opens_at" field.
func OpensAtNotIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldOpensAt, vs...))
}

// OpensAtGT applies the GT predicate on the "opens_at" field.
func OpensAtGT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldOpensAt, v))
}

// OpensAtGTE applies the GTE predicate on the "opens_at" field.
func OpensAtGTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldOpensAt, v))
}

// OpensAtLT applies the LT predicate on the "opens_at" field.
func OpensAtLT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldOpensAt, v))
}

// OpensAtLTE applies the LTE predicate on the "opens_at" field.
func OpensAtLTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldOpensAt, v))
}

// OpensAtContains applies the Contains predicate on the "opens_at" field.
func OpensAtContains(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContains(FieldOpensAt, v))
}

// OpensAtHasPrefix applies the HasPrefix predicate on the "opens_at" field.
func OpensAtHasPrefix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasPrefix(FieldOpensAt, v))
}

// OpensAtHasSuffix applies the HasSuffix predicate on the "opens_at" field.
func OpensAtHasSuffix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasSuffix(FieldOpensAt, v))
}

// OpensAtEqualFold applies the EqualFold predicate on the "opens_at" field.
func OpensAtEqualFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEqualFold(FieldOpensAt, v))
}

// OpensAtContainsFold applies the ContainsFold predicate on the "opens_at" field.
func OpensAtContainsFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContainsFold(FieldOpensAt, v))
}

// ClosesAtEQ applies the EQ predicate on the "closes_at" field.
func ClosesAtEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldClosesAt, v))
}

// ClosesAtNEQ applies the NEQ predicate on the "closes_at" field.
func ClosesAtNEQ(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldClosesAt, v))
}

// ClosesAtIn applies the In predicate on the "closes_at" field.
func ClosesAtIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldIn(FieldClosesAt, vs...))
}

// ClosesAtNotIn applies the NotIn predicate on the "closes_at" field.
func ClosesAtNotIn(vs ...string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNotIn(FieldClosesAt, vs...))
}

// ClosesAtGT applies the GT predicate on the "closes_at" field.
func ClosesAtGT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGT(FieldClosesAt, v))
}

// ClosesAtGTE applies the GTE predicate on the "closes_at" field.
func ClosesAtGTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldGTE(FieldClosesAt, v))
}

// ClosesAtLT applies the LT predicate on the "closes_at" field.
func ClosesAtLT(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLT(FieldClosesAt, v))
}

// ClosesAtLTE applies the LTE predicate on the "closes_at" field.
func ClosesAtLTE(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldLTE(FieldClosesAt, v))
}

// ClosesAtContains applies the Contains predicate on the "closes_at" field.
func ClosesAtContains(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContains(FieldClosesAt, v))
}

// ClosesAtHasPrefix applies the HasPrefix predicate on the "closes_at" field.
func ClosesAtHasPrefix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasPrefix(FieldClosesAt, v))
}

// ClosesAtHasSuffix applies the HasSuffix predicate on the "closes_at" field.
func ClosesAtHasSuffix(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldHasSuffix(FieldClosesAt, v))
}

// ClosesAtEqualFold applies the EqualFold predicate on the "closes_at" field.
func ClosesAtEqualFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEqualFold(FieldClosesAt, v))
}

// ClosesAtContainsFold applies the ContainsFold predicate on the "closes_at" field.
func ClosesAtContainsFold(v string) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldContainsFold(FieldClosesAt, v))
}

// Open24hEQ applies the EQ predicate on the "open_24h" field.
func Open24hEQ(v bool) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldEQ(FieldOpen24h, v))
}

// Open24hNEQ applies the NEQ predicate on the "open_24h" field.
func Open24hNEQ(v bool) predicate.Pharmacy {
	return predicate.Pharmacy(sql.FieldNEQ(FieldOpen24h, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Pharmacy) predicate.Pharmacy {
	return predicate.Pharmacy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Pharmacy) predicate.Pharmacy {
	return predicate.Pharmacy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Pharmacy) predicate.Pharmacy {
	return predicate.Pharmacy(sql.NotPredicates(p))
}
