// Code generated by ent, DO NOT EDIT.

package donationinitiative

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldDeletedAt, v))
}

// OrganizerID applies equality check predicate on the "organizer_id" field. It's identical to OrganizerIDEQ.
func OrganizerID(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldOrganizerID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldDescription, v))
}

// GoalAmount applies equality check predicate on the "goal_amount" field. It's identical to GoalAmountEQ.
func GoalAmount(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldGoalAmount, v))
}

// RaisedAmount applies equality check predicate on the "raised_amount" field. It's identical to RaisedAmountEQ.
func RaisedAmount(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldRaisedAmount, v))
}

// DonorCount applies equality check predicate on the "donor_count" field. It's identical to DonorCountEQ.
func DonorCount(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldDonorCount, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldEndsAt, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldImageURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotNull(FieldDeletedAt))
}

// OrganizerIDEQ applies the EQ predicate on the "organizer_id" field.
func OrganizerIDEQ(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldOrganizerID, v))
}

// OrganizerIDNEQ applies the NEQ predicate on the "organizer_id" field.
func OrganizerIDNEQ(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldOrganizerID, v))
}

// OrganizerIDIn applies the In predicate on the "organizer_id" field.
func OrganizerIDIn(vs ...uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldOrganizerID, vs...))
}

// OrganizerIDNotIn applies the NotIn predicate on the "organizer_id" field.
func OrganizerIDNotIn(vs ...uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldOrganizerID, vs...))
}

// OrganizerIDGT applies the GT predicate on the "organizer_id" field.
func OrganizerIDGT(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldOrganizerID, v))
}

// OrganizerIDGTE applies the GTE predicate on the "organizer_id" field.
func OrganizerIDGTE(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldOrganizerID, v))
}

// OrganizerIDLT applies the LT predicate on the "organizer_id" field.
func OrganizerIDLT(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldOrganizerID, v))
}

// OrganizerIDLTE applies the LTE predicate on the "organizer_id" field.
func OrganizerIDLTE(v uuid.UUID) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldOrganizerID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldCategory, vs...))
}

// GoalAmountEQ applies the EQ predicate on the "goal_amount" field.
func GoalAmountEQ(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldGoalAmount, v))
}

// GoalAmountNEQ applies the NEQ predicate on the "goal_amount" field.
func GoalAmountNEQ(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldGoalAmount, v))
}

// GoalAmountIn applies the In predicate on the "goal_amount" field.
func GoalAmountIn(vs ...int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldGoalAmount, vs...))
}

// GoalAmountNotIn applies the NotIn predicate on the "goal_amount" field.
func GoalAmountNotIn(vs ...int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldGoalAmount, vs...))
}

// GoalAmountGT applies the GT predicate on the "goal_amount" field.
func GoalAmountGT(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldGoalAmount, v))
}

// GoalAmountGTE applies the GTE predicate on the "goal_amount" field.
func GoalAmountGTE(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldGoalAmount, v))
}

// GoalAmountLT applies the LT predicate on the "goal_amount" field.
func GoalAmountLT(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldGoalAmount, v))
}

// GoalAmountLTE applies the LTE predicate on the "goal_amount" field.
func GoalAmountLTE(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldGoalAmount, v))
}

// RaisedAmountEQ applies the EQ predicate on the "raised_amount" field.
func RaisedAmountEQ(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldRaisedAmount, v))
}

// RaisedAmountNEQ applies the NEQ predicate on the "raised_amount" field.
func RaisedAmountNEQ(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldRaisedAmount, v))
}

// RaisedAmountIn applies the In predicate on the "raised_amount" field.
func RaisedAmountIn(vs ...int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldRaisedAmount, vs...))
}

// RaisedAmountNotIn applies the NotIn predicate on the "raised_amount" field.
func RaisedAmountNotIn(vs ...int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldRaisedAmount, vs...))
}

// RaisedAmountGT applies the GT predicate on the "raised_amount" field.
func RaisedAmountGT(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldRaisedAmount, v))
}

// RaisedAmountGTE applies the GTE predicate on the "raised_amount" field.
func RaisedAmountGTE(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldRaisedAmount, v))
}

// RaisedAmountLT applies the LT predicate on the "raised_amount" field.
func RaisedAmountLT(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldRaisedAmount, v))
}

// RaisedAmountLTE applies the LTE predicate on the "raised_amount" field.
func RaisedAmountLTE(v int64) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldRaisedAmount, v))
}

// DonorCountEQ applies the EQ predicate on the "donor_count" field.
func DonorCountEQ(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldDonorCount, v))
}

// DonorCountNEQ applies the NEQ predicate on the "donor_count" field.
func DonorCountNEQ(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldDonorCount, v))
}

// DonorCountIn applies the In predicate on the "donor_count" field.
func DonorCountIn(vs ...int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldDonorCount, vs...))
}

// DonorCountNotIn applies the NotIn predicate on the "donor_count" field.
func DonorCountNotIn(vs ...int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldDonorCount, vs...))
}

// DonorCountGT applies the GT predicate on the "donor_count" field.
func DonorCountGT(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldDonorCount, v))
}

// DonorCountGTE applies the GTE predicate on the "donor_count" field.
func DonorCountGTE(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldDonorCount, v))
}

// DonorCountLT applies the LT predicate on the "donor_count" field.
func DonorCountLT(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldDonorCount, v))
}

// DonorCountLTE applies the LTE predicate on the "donor_count" field.
func DonorCountLTE(v int) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldDonorCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldStatus, vs...))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldEndsAt, v))
}

// EndsAtIsNil applies the IsNil predicate on the "ends_at" field.
func EndsAtIsNil() predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIsNull(FieldEndsAt))
}

// EndsAtNotNil applies the NotNil predicate on the "ends_at" field.
func EndsAtNotNil() predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotNull(FieldEndsAt))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.FieldContainsFold(FieldImageURL, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DonationInitiative) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DonationInitiative) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DonationInitiative) predicate.DonationInitiative {
	return predicate.DonationInitiative(sql.NotPredicates(p))
}
