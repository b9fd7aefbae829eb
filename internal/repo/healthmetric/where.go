// Code generated by ent, DO NOT EDIT.

package healthmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldUserID, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldMemberID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldValue, v))
}

// ValueSecondary applies equality check predicate on the "value_secondary" field. It's identical to ValueSecondaryEQ.
func ValueSecondary(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldValueSecondary, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldUnit, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldRecordedAt, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldUserID, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v uuid.UUID) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldMemberID, v))
}

// MetricTypeEQ applies the EQ predicate on the "metric_type" field.
func MetricTypeEQ(v MetricType) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldMetricType, v))
}

// MetricTypeNEQ applies the NEQ predicate on the "metric_type" field.
func MetricTypeNEQ(v MetricType) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldMetricType, v))
}

// MetricTypeIn applies the In predicate on the "metric_type" field.
func MetricTypeIn(vs ...MetricType) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldMetricType, vs...))
}

// MetricTypeNotIn applies the NotIn predicate on the "metric_type" field.
func MetricTypeNotIn(vs ...MetricType) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldMetricType, vs...))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldValue, v))
}

// ValueSecondaryEQ applies the EQ predicate on the "value_secondary" field.
func ValueSecondaryEQ(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldValueSecondary, v))
}

// ValueSecondaryNEQ applies the NEQ predicate on the "value_secondary" field.
func ValueSecondaryNEQ(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldValueSecondary, v))
}

// ValueSecondaryIn applies the In predicate on the "value_secondary" field.
func ValueSecondaryIn(vs ...float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldValueSecondary, vs...))
}

// ValueSecondaryNotIn applies the NotIn predicate on the "value_secondary" field.
func ValueSecondaryNotIn(vs ...float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldValueSecondary, vs...))
}

// ValueSecondaryGT applies the GT predicate on the "value_secondary" field.
func ValueSecondaryGT(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldValueSecondary, v))
}

// ValueSecondaryGTE applies the GTE predicate on the "value_secondary" field.
func ValueSecondaryGTE(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldValueSecondary, v))
}

// ValueSecondaryLT applies the LT predicate on the "value_secondary" field.
func ValueSecondaryLT(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldValueSecondary, v))
}

// ValueSecondaryLTE applies the LTE predicate on the "value_secondary" field.
func ValueSecondaryLTE(v float64) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldValueSecondary, v))
}

// ValueSecondaryIsNil applies the IsNil predicate on the "value_secondary" field.
func ValueSecondaryIsNil() predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIsNull(FieldValueSecondary))
}

// ValueSecondaryNotNil applies the NotNil predicate on the "value_secondary" field.
func ValueSecondaryNotNil() predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotNull(FieldValueSecondary))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldContainsFold(FieldUnit, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldRecordedAt, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.HealthMetric {
	return predicate.HealthMetric(sql.FieldContainsFold(FieldNote, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthMetric) predicate.HealthMetric {
	return predicate.HealthMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthMetric) predicate.HealthMetric {
	return predicate.HealthMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthMetric) predicate.HealthMetric {
	return predicate.HealthMetric(sql.NotPredicates(p))
}
