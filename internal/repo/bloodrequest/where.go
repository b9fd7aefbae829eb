// Code generated by ent, DO NOT EDIT.

package bloodrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequesterID applies equality check predicate on the "requester_id" field. It's identical to RequesterIDEQ.
func RequesterID(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldRequesterID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldPatientName, v))
}

// UnitsNeeded applies equality check predicate on the "units_needed" field. It's identical to UnitsNeededEQ.
func UnitsNeeded(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUnitsNeeded, v))
}

// UnitsFulfilled applies equality check predicate on the "units_fulfilled" field. It's identical to UnitsFulfilledEQ.
func UnitsFulfilled(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUnitsFulfilled, v))
}

// Hospital applies equality check predicate on the "hospital" field. It's identical to HospitalEQ.
func Hospital(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldHospital, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldCity, v))
}

// ContactPhone applies equality check predicate on the "contact_phone" field. It's identical to ContactPhoneEQ.
func ContactPhone(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldContactPhone, v))
}

// NeededBy applies equality check predicate on the "needed_by" field. It's identical to NeededByEQ.
func NeededBy(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldNeededBy, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// RequesterIDEQ applies the EQ predicate on the "requester_id" field.
func RequesterIDEQ(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterIDNEQ applies the NEQ predicate on the "requester_id" field.
func RequesterIDNEQ(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldRequesterID, v))
}

// RequesterIDIn applies the In predicate on the "requester_id" field.
func RequesterIDIn(vs ...uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldRequesterID, vs...))
}

// RequesterIDNotIn applies the NotIn predicate on the "requester_id" field.
func RequesterIDNotIn(vs ...uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldRequesterID, vs...))
}

// RequesterIDGT applies the GT predicate on the "requester_id" field.
func RequesterIDGT(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldRequesterID, v))
}

// RequesterIDGTE applies the GTE predicate on the "requester_id" field.
func RequesterIDGTE(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldRequesterID, v))
}

// RequesterIDLT applies the LT predicate on the "requester_id" field.
func RequesterIDLT(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldRequesterID, v))
}

// RequesterIDLTE applies the LTE predicate on the "requester_id" field.
func RequesterIDLTE(v uuid.UUID) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldRequesterID, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContainsFold(FieldPatientName, v))
}

// BloodTypeEQ applies the EQ predicate on the "blood_type" field.
func BloodTypeEQ(v BloodType) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldBloodType, v))
}

// BloodTypeNEQ applies the NEQ predicate on the "blood_type" field.
func BloodTypeNEQ(v BloodType) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldBloodType, v))
}

// BloodTypeIn applies the In predicate on the "blood_type" field.
func BloodTypeIn(vs ...BloodType) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldBloodType, vs...))
}

// BloodTypeNotIn applies the NotIn predicate on the "blood_type" field.
func BloodTypeNotIn(vs ...BloodType) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldBloodType, vs...))
}

// UnitsNeededEQ applies the EQ predicate on the "units_needed" field.
func UnitsNeededEQ(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUnitsNeeded, v))
}

// UnitsNeededNEQ applies the NEQ predicate on the "units_needed" field.
func UnitsNeededNEQ(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldUnitsNeeded, v))
}

// UnitsNeededIn applies the In predicate on the "units_needed" field.
func UnitsNeededIn(vs ...int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldUnitsNeeded, vs...))
}

// UnitsNeededNotIn applies the NotIn predicate on the "units_needed" field.
func UnitsNeededNotIn(vs ...int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldUnitsNeeded, vs...))
}

// UnitsNeededGT applies the GT predicate on the "units_needed" field.
func UnitsNeededGT(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldUnitsNeeded, v))
}

// UnitsNeededGTE applies the GTE predicate on the "units_needed" field.
func UnitsNeededGTE(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldUnitsNeeded, v))
}

// UnitsNeededLT applies the LT predicate on the "units_needed" field.
func UnitsNeededLT(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldUnitsNeeded, v))
}

// UnitsNeededLTE applies the LTE predicate on the "units_needed" field.
func UnitsNeededLTE(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldUnitsNeeded, v))
}

// UnitsFulfilledEQ applies the EQ predicate on the "units_fulfilled" field.
func UnitsFulfilledEQ(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUnitsFulfilled, v))
}

// UnitsFulfilledNEQ applies the NEQ predicate on the "units_fulfilled" field.
func UnitsFulfilledNEQ(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldUnitsFulfilled, v))
}

// UnitsFulfilledIn applies the In predicate on the "units_fulfilled" field.
func UnitsFulfilledIn(vs ...int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldUnitsFulfilled, vs...))
}

// UnitsFulfilledNotIn applies the NotIn predicate on the "units_fulfilled" field.
func UnitsFulfilledNotIn(vs ...int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldUnitsFulfilled, vs...))
}

// UnitsFulfilledGT applies the GT predicate on the "units_fulfilled" field.
func UnitsFulfilledGT(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldUnitsFulfilled, v))
}

// UnitsFulfilledGTE applies the GTE predicate on the "units_fulfilled" field.
func UnitsFulfilledGTE(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldUnitsFulfilled, v))
}

// UnitsFulfilledLT applies the LT predicate on the "units_fulfilled" field.
func UnitsFulfilledLT(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldUnitsFulfilled, v))
}

// UnitsFulfilledLTE applies the LTE predicate on the "units_fulfilled" field.
func UnitsFulfilledLTE(v int) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldUnitsFulfilled, v))
}

// HospitalEQ applies the EQ predicate on the "hospital" field.
func HospitalEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldHospital, v))
}

// HospitalNEQ applies the NEQ predicate on the "hospital" field.
func HospitalNEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldHospital, v))
}

// HospitalIn applies the In predicate on the "hospital" field.
func HospitalIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldHospital, vs...))
}

// HospitalNotIn applies the NotIn predicate on the "hospital" field.
func HospitalNotIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldHospital, vs...))
}

// HospitalGT applies the GT predicate on the "hospital" field.
func HospitalGT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldHospital, v))
}

// HospitalGTE applies the GTE predicate on the "hospital" field.
func HospitalGTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldHospital, v))
}

// HospitalLT applies the LT predicate on the "hospital" field.
func HospitalLT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldHospital, v))
}

// HospitalLTE applies the LTE predicate on the "hospital" field.
func HospitalLTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldHospital, v))
}

// HospitalContains applies the Contains predicate on the "hospital" field.
func HospitalContains(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContains(FieldHospital, v))
}

// HospitalHasPrefix applies the HasPrefix predicate on the "hospital" field.
func HospitalHasPrefix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasPrefix(FieldHospital, v))
}

// HospitalHasSuffix applies the HasSuffix predicate on the "hospital" field.
func HospitalHasSuffix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasSuffix(FieldHospital, v))
}

// HospitalEqualFold applies the EqualFold predicate on the "hospital" field.
func HospitalEqualFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEqualFold(FieldHospital, v))
}

// HospitalContainsFold applies the ContainsFold predicate on the "hospital" field.
func HospitalContainsFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContainsFold(FieldHospital, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContainsFold(FieldCity, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v Urgency) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v Urgency) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...Urgency) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...Urgency) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldUrgency, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ContactPhoneEQ applies the EQ predicate on the "contact_phone" field.
func ContactPhoneEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldContactPhone, v))
}

// ContactPhoneNEQ applies the NEQ predicate on the "contact_phone" field.
func ContactPhoneNEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldContactPhone, v))
}

// ContactPhoneIn applies the In predicate on the "contact_phone" field.
func ContactPhoneIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldContactPhone, vs...))
}

// ContactPhoneNotIn applies the NotIn predicate on the "contact_phone" field.
func ContactPhoneNotIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldContactPhone, vs...))
}

// ContactPhoneGT applies the GT predicate on the "contact_phone" field.
func ContactPhoneGT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldContactPhone, v))
}

// ContactPhoneGTE applies the GTE predicate on the "contact_phone" field.
func ContactPhoneGTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldContactPhone, v))
}

// ContactPhoneLT applies the LT predicate on the "contact_phone" field.
func ContactPhoneLT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldContactPhone, v))
}

// ContactPhoneLTE applies the LTE predicate on the "contact_phone" field.
func ContactPhoneLTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldContactPhone, v))
}

// ContactPhoneContains applies the Contains predicate on the "contact_phone" field.
func ContactPhoneContains(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContains(FieldContactPhone, v))
}

// ContactPhoneHasPrefix applies the HasPrefix predicate on the "contact_phone" field.
func ContactPhoneHasPrefix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasPrefix(FieldContactPhone, v))
}

// ContactPhoneHasSuffix applies the HasSuffix predicate on the "contact_phone" field.
func ContactPhoneHasSuffix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasSuffix(FieldContactPhone, v))
}

// ContactPhoneEqualFold applies the EqualFold predicate on the "contact_phone" field.
func ContactPhoneEqualFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEqualFold(FieldContactPhone, v))
}

// ContactPhoneContainsFold applies the ContainsFold predicate on the "contact_phone" field.
func ContactPhoneContainsFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContainsFold(FieldContactPhone, v))
}

// NeededByEQ applies the EQ predicate on the "needed_by" field.
func NeededByEQ(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldNeededBy, v))
}

// NeededByNEQ applies the NEQ predicate on the "needed_by" field.
func NeededByNEQ(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldNeededBy, v))
}

// NeededByIn applies the In predicate on the "needed_by" field.
func NeededByIn(vs ...time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldNeededBy, vs...))
}

// NeededByNotIn applies the NotIn predicate on the "needed_by" field.
func NeededByNotIn(vs ...time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldNeededBy, vs...))
}

// NeededByGT applies the GT predicate on the "needed_by" field.
func NeededByGT(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldNeededBy, v))
}

// NeededByGTE applies the GTE predicate on the "needed_by" field.
func NeededByGTE(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldNeededBy, v))
}

// NeededByLT applies the LT predicate on the "needed_by" field.
func NeededByLT(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldNeededBy, v))
}

// NeededByLTE applies the LTE predicate on the "needed_by" field.
func NeededByLTE(v time.Time) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldNeededBy, v))
}

// NeededByIsNil applies the IsNil predicate on the "needed_by" field.
func NeededByIsNil() predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIsNull(FieldNeededBy))
}

// NeededByNotNil applies the NotNil predicate on the "needed_by" field.
func NeededByNotNil() predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotNull(FieldNeededBy))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.BloodRequest {
	return predicate.BloodRequest(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BloodRequest) predicate.BloodRequest {
	return predicate.BloodRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BloodRequest) predicate.BloodRequest {
	return predicate.BloodRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BloodRequest) predicate.BloodRequest {
	return predicate.BloodRequest(sql.NotPredicates(p))
}
