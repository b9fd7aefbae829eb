// Code generated by ent, DO NOT EDIT.

package donation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCreatedAt, v))
}

// InitiativeID applies equality check predicate on the "initiative_id" field. It's identical to InitiativeIDEQ.
func InitiativeID(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldInitiativeID, v))
}

// DonorID applies equality check predicate on the "donor_id" field. It's identical to DonorIDEQ.
func DonorID(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldDonorID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldAmount, v))
}

// Anonymous applies equality check predicate on the "anonymous" field. It's identical to AnonymousEQ.
func Anonymous(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldAnonymous, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldMessage, v))
}

// ReceiptReference applies equality check predicate on the "receipt_reference" field. It's identical to ReceiptReferenceEQ.
func ReceiptReference(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldReceiptReference, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldCreatedAt, v))
}

// InitiativeIDEQ applies the EQ predicate on the "initiative_id" field.
func InitiativeIDEQ(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldInitiativeID, v))
}

// InitiativeIDNEQ applies the NEQ predicate on the "initiative_id" field.
func InitiativeIDNEQ(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldInitiativeID, v))
}

// InitiativeIDIn applies the In predicate on the "initiative_id" field.
func InitiativeIDIn(vs ...uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldInitiativeID, vs...))
}

// InitiativeIDNotIn applies the NotIn predicate on the "initiative_id" field.
func InitiativeIDNotIn(vs ...uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldInitiativeID, vs...))
}

// InitiativeIDGT applies the GT predicate on the "initiative_id" field.
func InitiativeIDGT(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldInitiativeID, v))
}

// InitiativeIDGTE applies the GTE predicate on the "initiative_id" field.
func InitiativeIDGTE(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldInitiativeID, v))
}

// InitiativeIDLT applies the LT predicate on the "initiative_id" field.
func InitiativeIDLT(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldInitiativeID, v))
}

// InitiativeIDLTE applies the LTE predicate on the "initiative_id" field.
func InitiativeIDLTE(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldInitiativeID, v))
}

// DonorIDEQ applies the EQ predicate on the "donor_id" field.
func DonorIDEQ(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldDonorID, v))
}

// DonorIDNEQ applies the NEQ predicate on the "donor_id" field.
func DonorIDNEQ(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldDonorID, v))
}

// DonorIDIn applies the In predicate on the "donor_id" field.
func DonorIDIn(vs ...uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldDonorID, vs...))
}

// DonorIDNotIn applies the NotIn predicate on the "donor_id" field.
func DonorIDNotIn(vs ...uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldDonorID, vs...))
}

// DonorIDGT applies the GT predicate on the "donor_id" field.
func DonorIDGT(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldDonorID, v))
}

// DonorIDGTE applies the GTE predicate on the "donor_id" field.
func DonorIDGTE(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldDonorID, v))
}

// DonorIDLT applies the LT predicate on the "donor_id" field.
func DonorIDLT(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldDonorID, v))
}

// DonorIDLTE applies the LTE predicate on the "donor_id" field.
func DonorIDLTE(v uuid.UUID) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldDonorID, v))
}

// DonorIDIsNil applies the IsNil predicate on the "donor_id" field.
func DonorIDIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldDonorID))
}

// DonorIDNotNil applies the NotNil predicate on the "donor_id" field.
func DonorIDNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldDonorID))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldAmount, v))
}

// AnonymousEQ applies the EQ predicate on the "anonymous" field.
func AnonymousEQ(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldAnonymous, v))
}

// AnonymousNEQ applies the NEQ predicate on the "anonymous" field.
func AnonymousNEQ(v bool) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldAnonymous, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.Donation {
	return predicate.Donation(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.Donation {
	return predicate.Donation(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldMessage, v))
}

// ReceiptReferenceEQ applies the EQ predicate on the "receipt_reference" field.
func ReceiptReferenceEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEQ(FieldReceiptReference, v))
}

// ReceiptReferenceNEQ applies the NEQ predicate on the "receipt_reference" field.
func ReceiptReferenceNEQ(v string) predicate.Donation {
	return predicate.Donation(sql.FieldNEQ(FieldReceiptReference, v))
}

// ReceiptReferenceIn applies the In predicate on the "receipt_reference" field.
func ReceiptReferenceIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldIn(FieldReceiptReference, vs...))
}

// ReceiptReferenceNotIn applies the NotIn predicate on the "receipt_reference" field.
func ReceiptReferenceNotIn(vs ...string) predicate.Donation {
	return predicate.Donation(sql.FieldNotIn(FieldReceiptReference, vs...))
}

// ReceiptReferenceGT applies the GT predicate on the "receipt_reference" field.
func ReceiptReferenceGT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGT(FieldReceiptReference, v))
}

// ReceiptReferenceGTE applies the GTE predicate on the "receipt_reference" field.
func ReceiptReferenceGTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldGTE(FieldReceiptReference, v))
}

// ReceiptReferenceLT applies the LT predicate on the "receipt_reference" field.
func ReceiptReferenceLT(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLT(FieldReceiptReference, v))
}

// ReceiptReferenceLTE applies the LTE predicate on the "receipt_reference" field.
func ReceiptReferenceLTE(v string) predicate.Donation {
	return predicate.Donation(sql.FieldLTE(FieldReceiptReference, v))
}

// ReceiptReferenceContains applies the Contains predicate on the "receipt_reference" field.
func ReceiptReferenceContains(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContains(FieldReceiptReference, v))
}

// ReceiptReferenceHasPrefix applies the HasPrefix predicate on the "receipt_reference" field.
func ReceiptReferenceHasPrefix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasPrefix(FieldReceiptReference, v))
}

// ReceiptReferenceHasSuffix applies the HasSuffix predicate on the "receipt_reference" field.
func ReceiptReferenceHasSuffix(v string) predicate.Donation {
	return predicate.Donation(sql.FieldHasSuffix(FieldReceiptReference, v))
}

// ReceiptReferenceEqualFold applies the EqualFold predicate on the "receipt_reference" field.
func ReceiptReferenceEqualFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldEqualFold(FieldReceiptReference, v))
}

// ReceiptReferenceContainsFold applies the ContainsFold predicate on the "receipt_reference" field.
func ReceiptReferenceContainsFold(v string) predicate.Donation {
	return predicate.Donation(sql.FieldContainsFold(FieldReceiptReference, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Donation) predicate.Donation {
	return predicate.Donation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Donation) predicate.Donation {
	return predicate.Donation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Donation) predicate.Donation {
	return predicate.Donation(sql.NotPredicates(p))
}
