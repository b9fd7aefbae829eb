// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUserID, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMemberID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// TimeSlotID applies equality check predicate on the "time_slot_id" field. It's identical to TimeSlotIDEQ.
func TimeSlotID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldTimeSlotID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// PaidAmount applies equality check predicate on the "paid_amount" field. It's identical to PaidAmountEQ.
func PaidAmount(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaidAmount, v))
}

// BookingCode applies equality check predicate on the "booking_code" field. It's identical to BookingCodeEQ.
func BookingCode(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookingCode, v))
}

// Symptoms applies equality check predicate on the "symptoms" field. It's identical to SymptomsEQ.
func Symptoms(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSymptoms, v))
}

// ConsultationFee applies equality check predicate on the "consultation_fee" field. It's identical to ConsultationFeeEQ.
func ConsultationFee(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConsultationFee, v))
}

// CoveredAmount applies equality check predicate on the "covered_amount" field. It's identical to CoveredAmountEQ.
func CoveredAmount(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCoveredAmount, v))
}

// PayableAmount applies equality check predicate on the "payable_amount" field. It's identical to PayableAmountEQ.
func PayableAmount(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPayableAmount, v))
}

// InsuranceProvider applies equality check predicate on the "insurance_provider" field. It's identical to InsuranceProviderEQ.
func InsuranceProvider(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldInsuranceProvider, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUserID, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldMemberID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDoctorID, v))
}

// TimeSlotIDEQ applies the EQ predicate on the "time_slot_id" field.
func TimeSlotIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldTimeSlotID, v))
}

// TimeSlotIDNEQ applies the NEQ predicate on the "time_slot_id" field.
func TimeSlotIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldTimeSlotID, v))
}

// TimeSlotIDIn applies the In predicate on the "time_slot_id" field.
func TimeSlotIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldTimeSlotID, vs...))
}

// TimeSlotIDNotIn applies the NotIn predicate on the "time_slot_id" field.
func TimeSlotIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldTimeSlotID, vs...))
}

// TimeSlotIDGT applies the GT predicate on the "time_slot_id" field.
func TimeSlotIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldTimeSlotID, v))
}

// TimeSlotIDGTE applies the GTE predicate on the "time_slot_id" field.
func TimeSlotIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldTimeSlotID, v))
}

// TimeSlotIDLT applies the LT predicate on the "time_slot_id" field.
func TimeSlotIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldTimeSlotID, v))
}

// TimeSlotIDLTE applies the LTE predicate on the "time_slot_id" field.
func TimeSlotIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldTimeSlotID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEndTime, v))
}

// VisitTypeEQ applies the EQ predicate on the "visit_type" field.
func VisitTypeEQ(v VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldVisitType, v))
}

// VisitTypeNEQ applies the NEQ predicate on the "visit_type" field.
func VisitTypeNEQ(v VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldVisitType, v))
}

// VisitTypeIn applies the In predicate on the "visit_type" field.
func VisitTypeIn(vs ...VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldVisitType, vs...))
}

// VisitTypeNotIn applies the NotIn predicate on the "visit_type" field.
func VisitTypeNotIn(vs ...VisitType) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldVisitType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// PaidAmountEQ applies the EQ predicate on the "paid_amount" field.
func PaidAmountEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPaidAmount, v))
}

// PaidAmountNEQ applies the NEQ predicate on the "paid_amount" field.
func PaidAmountNEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPaidAmount, v))
}

// PaidAmountIn applies the In predicate on the "paid_amount" field.
func PaidAmountIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPaidAmount, vs...))
}

// PaidAmountNotIn applies the NotIn predicate on the "paid_amount" field.
func PaidAmountNotIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPaidAmount, vs...))
}

// PaidAmountGT applies the GT predicate on the "paid_amount" field.
func PaidAmountGT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPaidAmount, v))
}

// PaidAmountGTE applies the GTE predicate on the "paid_amount" field.
func PaidAmountGTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPaidAmount, v))
}

// PaidAmountLT applies the LT predicate on the "paid_amount" field.
func PaidAmountLT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPaidAmount, v))
}

// PaidAmountLTE applies the LTE predicate on the "paid_amount" field.
func PaidAmountLTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPaidAmount, v))
}

// BookingCodeEQ applies the EQ predicate on the "booking_code" field.
func BookingCodeEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldBookingCode, v))
}

// BookingCodeNEQ applies the NEQ predicate on the "booking_code" field.
func BookingCodeNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldBookingCode, v))
}

// BookingCodeIn applies the In predicate on the "booking_code" field.
func BookingCodeIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldBookingCode, vs...))
}

// BookingCodeNotIn applies the NotIn predicate on the "booking_code" field.
func BookingCodeNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldBookingCode, vs...))
}

// BookingCodeGT applies the GT predicate on the "booking_code" field.
func BookingCodeGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldBookingCode, v))
}

// BookingCodeGTE applies the GTE predicate on the "booking_code" field.
func BookingCodeGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldBookingCode, v))
}

// BookingCodeLT applies the LT predicate on the "booking_code" field.
func BookingCodeLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldBookingCode, v))
}

// BookingCodeLTE applies the LTE predicate on the "booking_code" field.
func BookingCodeLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldBookingCode, v))
}

// BookingCodeContains applies the Contains predicate on the "booking_code" field.
func BookingCodeContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldBookingCode, v))
}

// BookingCodeHasPrefix applies the HasPrefix predicate on the "booking_code" field.
func BookingCodeHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldBookingCode, v))
}

// BookingCodeHasSuffix applies the HasSuffix predicate on the "booking_code" field.
func BookingCodeHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldBookingCode, v))
}

// BookingCodeEqualFold applies the EqualFold predicate on the "booking_code" field.
func BookingCodeEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldBookingCode, v))
}

// BookingCodeContainsFold applies the ContainsFold predicate on the "booking_code" field.
func BookingCodeContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldBookingCode, v))
}

// SymptomsEQ applies the EQ predicate on the "symptoms" field.
func SymptomsEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSymptoms, v))
}

// SymptomsNEQ applies the NEQ predicate on the "symptoms" field.
func SymptomsNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldSymptoms, v))
}

// SymptomsIn applies the In predicate on the "symptoms" field.
func SymptomsIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldSymptoms, vs...))
}

// SymptomsNotIn applies the NotIn predicate on the "symptoms" field.
func SymptomsNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldSymptoms, vs...))
}

// SymptomsGT applies the GT predicate on the "symptoms" field.
func SymptomsGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldSymptoms, v))
}

// SymptomsGTE applies the GTE predicate on the "symptoms" field.
func SymptomsGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldSymptoms, v))
}

// SymptomsLT applies the LT predicate on the "symptoms" field.
func SymptomsLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldSymptoms, v))
}

// SymptomsLTE applies the LTE predicate on the "symptoms" field.
func SymptomsLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldSymptoms, v))
}

// SymptomsContains applies the Contains predicate on the "symptoms" field.
func SymptomsContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldSymptoms, v))
}

// SymptomsHasPrefix applies the HasPrefix predicate on the "symptoms" field.
func SymptomsHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldSymptoms, v))
}

// SymptomsHasSuffix applies the HasSuffix predicate on the "symptoms" field.
func SymptomsHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldSymptoms, v))
}

// SymptomsIsNil applies the IsNil predicate on the "symptoms" field.
func SymptomsIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldSymptoms))
}

// SymptomsNotNil applies the NotNil predicate on the "symptoms" field.
func SymptomsNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldSymptoms))
}

// SymptomsEqualFold applies the EqualFold predicate on the "symptoms" field.
func SymptomsEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldSymptoms, v))
}

// SymptomsContainsFold applies the ContainsFold predicate on the "symptoms" field.
func SymptomsContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldSymptoms, v))
}

// ConsultationFeeEQ applies the EQ predicate on the "consultation_fee" field.
func ConsultationFeeEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConsultationFee, v))
}

// ConsultationFeeNEQ applies the NEQ predicate on the "consultation_fee" field.
func ConsultationFeeNEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldConsultationFee, v))
}

// ConsultationFeeIn applies the In predicate on the "consultation_fee" field.
func ConsultationFeeIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldConsultationFee, vs...))
}

// ConsultationFeeNotIn applies the NotIn predicate on the "consultation_fee" field.
func ConsultationFeeNotIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldConsultationFee, vs...))
}

// ConsultationFeeGT applies the GT predicate on the "consultation_fee" field.
func ConsultationFeeGT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldConsultationFee, v))
}

// ConsultationFeeGTE applies the GTE predicate on the "consultation_fee" field.
func ConsultationFeeGTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldConsultationFee, v))
}

// ConsultationFeeLT applies the LT predicate on the "consultation_fee" field.
func ConsultationFeeLT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldConsultationFee, v))
}

// ConsultationFeeLTE applies the LTE predicate on the "consultation_fee" field.
func ConsultationFeeLTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldConsultationFee, v))
}

// CoveredAmountEQ applies the EQ predicate on the "covered_amount" field.
func CoveredAmountEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCoveredAmount, v))
}

// CoveredAmountNEQ applies the NEQ predicate on the "covered_amount" field.
func CoveredAmountNEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCoveredAmount, v))
}

// CoveredAmountIn applies the In predicate on the "covered_amount" field.
func CoveredAmountIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCoveredAmount, vs...))
}

// CoveredAmountNotIn applies the NotIn predicate on the "covered_amount" field.
func CoveredAmountNotIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCoveredAmount, vs...))
}

// CoveredAmountGT applies the GT predicate on the "covered_amount" field.
func CoveredAmountGT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCoveredAmount, v))
}

// CoveredAmountGTE applies the GTE predicate on the "covered_amount" field.
func CoveredAmountGTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCoveredAmount, v))
}

// CoveredAmountLT applies the LT predicate on the "covered_amount" field.
func CoveredAmountLT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCoveredAmount, v))
}

// CoveredAmountLTE applies the LTE predicate on the "covered_amount" field.
func CoveredAmountLTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCoveredAmount, v))
}

// PayableAmountEQ applies the EQ predicate on the "payable_amount" field.
func PayableAmountEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPayableAmount, v))
}

// PayableAmountNEQ applies the NEQ predicate on the "payable_amount" field.
func PayableAmountNEQ(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPayableAmount, v))
}

// PayableAmountIn applies the In predicate on the "payable_amount" field.
func PayableAmountIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPayableAmount, vs...))
}

// PayableAmountNotIn applies the NotIn predicate on the "payable_amount" field.
func PayableAmountNotIn(vs ...int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPayableAmount, vs...))
}

// PayableAmountGT applies the GT predicate on the "payable_amount" field.
func PayableAmountGT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPayableAmount, v))
}

// PayableAmountGTE applies the GTE predicate on the "payable_amount" field.
func PayableAmountGTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPayableAmount, v))
}

// PayableAmountLT applies the LT predicate on the "payable_amount" field.
func PayableAmountLT(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPayableAmount, v))
}

// PayableAmountLTE applies the LTE predicate on the "payable_amount" field.
func PayableAmountLTE(v int64) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPayableAmount, v))
}

// InsuranceProviderEQ applies the EQ predicate on the "insurance_provider" field.
func InsuranceProviderEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderNEQ applies the NEQ predicate on the "insurance_provider" field.
func InsuranceProviderNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldInsuranceProvider, v))
}

// InsuranceProviderIn applies the In predicate on the "insurance_provider" field.
func InsuranceProviderIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderNotIn applies the NotIn predicate on the "insurance_provider" field.
func InsuranceProviderNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldInsuranceProvider, vs...))
}

// InsuranceProviderGT applies the GT predicate on the "insurance_provider" field.
func InsuranceProviderGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldInsuranceProvider, v))
}

// InsuranceProviderGTE applies the GTE predicate on the "insurance_provider" field.
func InsuranceProviderGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldInsuranceProvider, v))
}

// InsuranceProviderLT applies the LT predicate on the "insurance_provider" field.
func InsuranceProviderLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldInsuranceProvider, v))
}

// InsuranceProviderLTE applies the LTE predicate on the "insurance_provider" field.
func InsuranceProviderLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldInsuranceProvider, v))
}

// InsuranceProviderContains applies the Contains predicate on the "insurance_provider" field.
func InsuranceProviderContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldInsuranceProvider, v))
}

// InsuranceProviderHasPrefix applies the HasPrefix predicate on the "insurance_provider" field.
func InsuranceProviderHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldInsuranceProvider, v))
}

// InsuranceProviderHasSuffix applies the HasSuffix predicate on the "insurance_provider" field.
func InsuranceProviderHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldInsuranceProvider, v))
}

// InsuranceProviderIsNil applies the IsNil predicate on the "insurance_provider" field.
func InsuranceProviderIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldInsuranceProvider))
}

// InsuranceProviderNotNil applies the NotNil predicate on the "insurance_provider" field.
func InsuranceProviderNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldInsuranceProvider))
}

// InsuranceProviderEqualFold applies the EqualFold predicate on the "insurance_provider" field.
func InsuranceProviderEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldInsuranceProvider, v))
}

// InsuranceProviderContainsFold applies the ContainsFold predicate on the "insurance_provider" field.
func InsuranceProviderContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldInsuranceProvider, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledAt))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCancellationReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
