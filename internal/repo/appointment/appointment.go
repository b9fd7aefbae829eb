// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointment type in the database.
	Label = "appointment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldTimeSlotID holds the string denoting the time_slot_id field in the database.
	FieldTimeSlotID = "time_slot_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldVisitType holds the string denoting the visit_type field in the database.
	FieldVisitType = "visit_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPaymentStatus holds the string denoting the payment_status field in the database.
	FieldPaymentStatus = "payment_status"
	// FieldPaidAmount holds the string denoting the paid_amount field in the database.
	FieldPaidAmount = "paid_amount"
	// FieldBookingCode holds the string denoting the booking_code field in the database.
	FieldBookingCode = "booking_code"
	// FieldSymptoms holds the string denoting the symptoms field in the database.
	FieldSymptoms = "symptoms"
	// FieldConsultationFee holds the string denoting the consultation_fee field in the database.
	FieldConsultationFee = "consultation_fee"
	// FieldCoveredAmount holds the string denoting the covered_amount field in the database.
	FieldCoveredAmount = "covered_amount"
	// FieldPayableAmount holds the string denoting the payable_amount field in the database.
	FieldPayableAmount = "payable_amount"
	// FieldInsuranceProvider holds the string denoting the insurance_provider field in the database.
	FieldInsuranceProvider = "insurance_provider"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// Table holds the table name of the appointment in the database.
	Table = "appointments"
)

// Columns holds all SQL columns for appointment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldMemberID,
	FieldDoctorID,
	FieldTimeSlotID,
	FieldStartTime,
	FieldEndTime,
	FieldVisitType,
	FieldStatus,
	FieldPaymentStatus,
	FieldPaidAmount,
	FieldBookingCode,
	FieldSymptoms,
	FieldConsultationFee,
	FieldCoveredAmount,
	FieldPayableAmount,
	FieldInsuranceProvider,
	FieldCancelledAt,
	FieldCancellationReason,
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
	// DefaultPaidAmount holds the default value on creation for the "paid_amount" field.
	DefaultPaidAmount int64
	// DefaultCoveredAmount holds the default value on creation for the "covered_amount" field.
	DefaultCoveredAmount int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// VisitType defines the type for the "visit_type" enum field.
type VisitType string

// VisitTypeInPerson is the default value of the VisitType enum.
const DefaultVisitType = VisitTypeInPerson

// VisitType values.
const (
	VisitTypeInPerson VisitType = "in_person"
	VisitTypeVideo    VisitType = "video"
)

func (vt VisitType) String() string {
	return string(vt)
}

// VisitTypeValidator is a validator for the "visit_type" field enum values. It is called by the builders before save.
func VisitTypeValidator(vt VisitType) error {
	switch vt {
	case VisitTypeInPerson, VisitTypeVideo:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for visit_type field: %q", vt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for status field: %q", s)
	}
}

// PaymentStatus defines the type for the "payment_status" enum field.
type PaymentStatus string

// PaymentStatusUnpaid is the default value of the PaymentStatus enum.
const DefaultPaymentStatus = PaymentStatusUnpaid

// PaymentStatus values.
const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

// PaymentStatusValidator is a validator for the "payment_status" field enum values. It is called by the builders before save.
func PaymentStatusValidator(ps PaymentStatus) error {
	switch ps {
	case PaymentStatusUnpaid, PaymentStatusPartiallyPaid, PaymentStatusPaid, PaymentStatusRefunded:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for payment_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the Appointment queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByTimeSlotID orders the results by the time_slot_id field.
func ByTimeSlotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSlotID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByVisitType orders the results by the visit_type field.
func ByVisitType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPaymentStatus orders the results by the payment_status field.
func ByPaymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentStatus, opts...).ToFunc()
}

// ByPaidAmount orders the results by the paid_amount field.
func ByPaidAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAmount, opts...).ToFunc()
}

// ByBookingCode orders the results by the booking_code field.
func ByBookingCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingCode, opts...).ToFunc()
}

// BySymptoms orders the results by the symptoms field.
func BySymptoms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymptoms, opts...).ToFunc()
}

// ByConsultationFee orders the results by the consultation_fee field.
func ByConsultationFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationFee, opts...).ToFunc()
}

// ByCoveredAmount orders the results by the covered_amount field.
func ByCoveredAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoveredAmount, opts...).ToFunc()
}

// ByPayableAmount orders the results by the payable_amount field.
func ByPayableAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayableAmount, opts...).ToFunc()
}

// ByInsuranceProvider orders the results by the insurance_provider field.
func ByInsuranceProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceProvider, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}
