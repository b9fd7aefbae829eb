// Code generated by ent, DO NOT EDIT.

package workshopenrollment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkshopID applies equality check predicate on the "workshop_id" field. It's identical to WorkshopIDEQ.
func WorkshopID(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldWorkshopID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLTE(FieldUpdatedAt, v))
}

// WorkshopIDEQ applies the EQ predicate on the "workshop_id" field.
func WorkshopIDEQ(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldWorkshopID, v))
}

// WorkshopIDNEQ applies the NEQ predicate on the "workshop_id" field.
func WorkshopIDNEQ(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNEQ(FieldWorkshopID, v))
}

// WorkshopIDIn applies the In predicate on the "workshop_id" field.
func WorkshopIDIn(vs ...uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldIn(FieldWorkshopID, vs...))
}

// WorkshopIDNotIn applies the NotIn predicate on the "workshop_id" field.
func WorkshopIDNotIn(vs ...uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNotIn(FieldWorkshopID, vs...))
}

// WorkshopIDGT applies the GT predicate on the "workshop_id" field.
func WorkshopIDGT(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGT(FieldWorkshopID, v))
}

// WorkshopIDGTE applies the GTE predicate on the "workshop_id" field.
func WorkshopIDGTE(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGTE(FieldWorkshopID, v))
}

// WorkshopIDLT applies the LT predicate on the "workshop_id" field.
func WorkshopIDLT(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLT(FieldWorkshopID, v))
}

// WorkshopIDLTE applies the LTE predicate on the "workshop_id" field.
func WorkshopIDLTE(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLTE(FieldWorkshopID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldLTE(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkshopEnrollment) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkshopEnrollment) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkshopEnrollment) predicate.WorkshopEnrollment {
	return predicate.WorkshopEnrollment(sql.NotPredicates(p))
}
