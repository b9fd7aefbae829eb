// Code generated by ent, DO NOT EDIT.

package blooddonation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldCreatedAt, v))
}

// DonorID applies equality check predicate on the "donor_id" field. It's identical to DonorIDEQ.
func DonorID(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldDonorID, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldRequestID, v))
}

// Units applies equality check predicate on the "units" field. It's identical to UnitsEQ.
func Units(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldUnits, v))
}

// DonatedAt applies equality check predicate on the "donated_at" field. It's identical to DonatedAtEQ.
func DonatedAt(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldDonatedAt, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldLocation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldCreatedAt, v))
}

// DonorIDEQ applies the EQ predicate on the "donor_id" field.
func DonorIDEQ(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldDonorID, v))
}

// DonorIDNEQ applies the NEQ predicate on the "donor_id" field.
func DonorIDNEQ(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldDonorID, v))
}

// DonorIDIn applies the In predicate on the "donor_id" field.
func DonorIDIn(vs ...uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldDonorID, vs...))
}

// DonorIDNotIn applies the NotIn predicate on the "donor_id" field.
func DonorIDNotIn(vs ...uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldDonorID, vs...))
}

// DonorIDGT applies the GT predicate on the "donor_id" field.
func DonorIDGT(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldDonorID, v))
}

// DonorIDGTE applies the GTE predicate on the "donor_id" field.
func DonorIDGTE(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldDonorID, v))
}

// DonorIDLT applies the LT predicate on the "donor_id" field.
func DonorIDLT(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldDonorID, v))
}

// DonorIDLTE applies the LTE predicate on the "donor_id" field.
func DonorIDLTE(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldDonorID, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v uuid.UUID) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDIsNil applies the IsNil predicate on the "request_id" field.
func RequestIDIsNil() predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIsNull(FieldRequestID))
}

// RequestIDNotNil applies the NotNil predicate on the "request_id" field.
func RequestIDNotNil() predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotNull(FieldRequestID))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v BloodType) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v BloodType) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...BloodType) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...BloodType) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldBloodType, vs...))
}

// UnitsEQ applies the EQ predicate on the "units" field.
func UnitsEQ(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldUnits, v))
}

// UnitsNEQ applies the NEQ predicate on the "units" field.
func UnitsNEQ(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldUnits, v))
}

// UnitsIn applies the In predicate on the "units" field.
func UnitsIn(vs ...int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldUnits, vs...))
}

// UnitsNotIn applies the NotIn predicate on the "units" field.
func UnitsNotIn(vs ...int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldUnits, vs...))
}

// UnitsGT applies the GT predicate on the "units" field.
func UnitsGT(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldUnits, v))
}

// UnitsGTE applies the GTE predicate on the "units" field.
func UnitsGTE(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldUnits, v))
}

// UnitsLT applies the LT predicate on the "units" field.
func UnitsLT(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldUnits, v))
}

// UnitsLTE applies the LTE predicate on the "units" field.
func UnitsLTE(v int) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldUnits, v))
}

// DonatedAtEQ applies the EQ predicate on the "donated_at" field.
func DonatedAtEQ(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldDonatedAt, v))
}

// DonatedAtNEQ applies the NEQ predicate on the "donated_at" field.
func DonatedAtNEQ(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldDonatedAt, v))
}

// DonatedAtIn applies the In predicate on the "donated_at" field.
func DonatedAtIn(vs ...time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldDonatedAt, vs...))
}

// DonatedAtNotIn applies the NotIn predicate on the "donated_at" field.
func DonatedAtNotIn(vs ...time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldDonatedAt, vs...))
}

// DonatedAtGT applies the GT predicate on the "donated_at" field.
func DonatedAtGT(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldDonatedAt, v))
}

// DonatedAtGTE applies the GTE predicate on the "donated_at" field.
func DonatedAtGTE(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldDonatedAt, v))
}

// DonatedAtLT applies the LT predicate on the "donated_at" field.
func DonatedAtLT(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldDonatedAt, v))
}

// DonatedAtLTE applies the LTE predicate on the "donated_at" field.
func DonatedAtLTE(v time.Time) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldDonatedAt, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.BloodDonation {
	return predicate.BloodDonation(sql.FieldContainsFold(FieldLocation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BloodDonation) predicate.BloodDonation {
	return predicate.BloodDonation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BloodDonation) predicate.BloodDonation {
	return predicate.BloodDonation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BloodDonation) predicate.BloodDonation {
	return predicate.BloodDonation(sql.NotPredicates(p))
}
