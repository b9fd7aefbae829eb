// Code generated by ent, DO NOT EDIT.

package workshop

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldDeletedAt, v))
}

// OrganizerID applies equality check predicate on the "organizer_id" field. It's identical to OrganizerIDEQ.
func OrganizerID(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldOrganizerID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldDescription, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldTopic, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldStartsAt, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldDurationMinutes, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldCapacity, v))
}

// EnrolledCount applies equality check predicate on the "enrolled_count" field. It's identical to EnrolledCountEQ.
func EnrolledCount(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldEnrolledCount, v))
}

// Online applies equality check predicate on the "online" field. It's identical to OnlineEQ.
func Online(v bool) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldOnline, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldLocation, v))
}

// MeetingURL applies equality check predicate on the "meeting_url" field. It's identical to MeetingURLEQ.
func MeetingURL(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldMeetingURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Workshop {
	return predicate.Workshop(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Workshop {
	return predicate.Workshop(sql.FieldNotNull(FieldDeletedAt))
}

// OrganizerIDEQ applies the EQ predicate on the "organizer_id" field.
func OrganizerIDEQ(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldOrganizerID, v))
}

// OrganizerIDNEQ applies the NEQ predicate on the "organizer_id" field.
func OrganizerIDNEQ(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldOrganizerID, v))
}

// OrganizerIDIn applies the In predicate on the "organizer_id" field.
func OrganizerIDIn(vs ...uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldOrganizerID, vs...))
}

// OrganizerIDNotIn applies the NotIn predicate on the "organizer_id" field.
func OrganizerIDNotIn(vs ...uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldOrganizerID, vs...))
}

// OrganizerIDGT applies the GT predicate on the "organizer_id" field.
func OrganizerIDGT(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldOrganizerID, v))
}

// OrganizerIDGTE applies the GTE predicate on the "organizer_id" field.
func OrganizerIDGTE(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldOrganizerID, v))
}

// OrganizerIDLT applies the LT predicate on the "organizer_id" field.
func OrganizerIDLT(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldOrganizerID, v))
}

// OrganizerIDLTE applies the LTE predicate on the "organizer_id" field.
func OrganizerIDLTE(v uuid.UUID) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldOrganizerID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContainsFold(FieldDescription, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContainsFold(FieldTopic, v))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldStartsAt, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldDurationMinutes, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldCapacity, v))
}

// EnrolledCountEQ applies the EQ predicate on the "enrolled_count" field.
func EnrolledCountEQ(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldEnrolledCount, v))
}

// EnrolledCountNEQ applies the NEQ predicate on the "enrolled_count" field.
func EnrolledCountNEQ(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldEnrolledCount, v))
}

// EnrolledCountIn applies the In predicate on the "enrolled_count" field.
func EnrolledCountIn(vs ...int) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldEnrolledCount, vs...))
}

// EnrolledCountNotIn applies the NotIn predicate on the "enrolled_count" field.
func EnrolledCountNotIn(vs ...int) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldEnrolledCount, vs...))
}

// EnrolledCountGT applies the GT predicate on the "enrolled_count" field.
func EnrolledCountGT(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldEnrolledCount, v))
}

// EnrolledCountGTE applies the GTE predicate on the "enrolled_count" field.
func EnrolledCountGTE(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldEnrolledCount, v))
}

// EnrolledCountLT applies the LT predicate on the "enrolled_count" field.
func EnrolledCountLT(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldEnrolledCount, v))
}

// EnrolledCountLTE applies the LTE predicate on the "enrolled_count" field.
func EnrolledCountLTE(v int) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldEnrolledCount, v))
}

// OnlineEQ applies the EQ predicate on the "online" field.
func OnlineEQ(v bool) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldOnline, v))
}

// OnlineNEQ applies the NEQ predicate on the "online" field.
func OnlineNEQ(v bool) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldOnline, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Workshop {
	return predicate.Workshop(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Workshop {
	return predicate.Workshop(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContainsFold(FieldLocation, v))
}

// MeetingURLEQ applies the EQ predicate on the "meeting_url" field.
func MeetingURLEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldMeetingURL, v))
}

// MeetingURLNEQ applies the NEQ predicate on the "meeting_url" field.
func MeetingURLNEQ(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldMeetingURL, v))
}

// MeetingURLIn applies the In predicate on the "meeting_url" field.
func MeetingURLIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldMeetingURL, vs...))
}

// MeetingURLNotIn applies the NotIn predicate on the "meeting_url" field.
func MeetingURLNotIn(vs ...string) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldMeetingURL, vs...))
}

// MeetingURLGT applies the GT predicate on the "meeting_url" field.
func MeetingURLGT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGT(FieldMeetingURL, v))
}

// MeetingURLGTE applies the GTE predicate on the "meeting_url" field.
func MeetingURLGTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldGTE(FieldMeetingURL, v))
}

// MeetingURLLT applies the LT predicate on the "meeting_url" field.
func MeetingURLLT(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLT(FieldMeetingURL, v))
}

// MeetingURLLTE applies the LTE predicate on the "meeting_url" field.
func MeetingURLLTE(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldLTE(FieldMeetingURL, v))
}

// MeetingURLContains applies the Contains predicate on the "meeting_url" field.
func MeetingURLContains(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContains(FieldMeetingURL, v))
}

// MeetingURLHasPrefix applies the HasPrefix predicate on the "meeting_url" field.
func MeetingURLHasPrefix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasPrefix(FieldMeetingURL, v))
}

// MeetingURLHasSuffix applies the HasSuffix predicate on the "meeting_url" field.
func MeetingURLHasSuffix(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldHasSuffix(FieldMeetingURL, v))
}

// MeetingURLIsNil applies the IsNil predicate on the "meeting_url" field.
func MeetingURLIsNil() predicate.Workshop {
	return predicate.Workshop(sql.FieldIsNull(FieldMeetingURL))
}

// MeetingURLNotNil applies the NotNil predicate on the "meeting_url" field.
func MeetingURLNotNil() predicate.Workshop {
	return predicate.Workshop(sql.FieldNotNull(FieldMeetingURL))
}

// MeetingURLEqualFold applies the EqualFold predicate on the "meeting_url" field.
func MeetingURLEqualFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldEqualFold(FieldMeetingURL, v))
}

// MeetingURLContainsFold applies the ContainsFold predicate on the "meeting_url" field.
func MeetingURLContainsFold(v string) predicate.Workshop {
	return predicate.Workshop(sql.FieldContainsFold(FieldMeetingURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workshop {
	return predicate.Workshop(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workshop {
	return predicate.Workshop(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workshop {
	return predicate.Workshop(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workshop {
	return predicate.Workshop(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workshop) predicate.Workshop {
	return predicate.Workshop(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workshop) predicate.Workshop {
	return predicate.Workshop(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workshop) predicate.Workshop {
	return predicate.Workshop(sql.NotPredicates(p))
}
