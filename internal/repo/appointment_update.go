// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/appointment"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AppointmentUpdate) SetUserID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableUserID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *AppointmentUpdate) SetMemberID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableMemberID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetTimeSlotID sets the "time_slot_id" field.
func (_u *AppointmentUpdate) SetTimeSlotID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetTimeSlotID(v)
	return _u
}

// SetNillableTimeSlotID sets the "time_slot_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTimeSlotID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetTimeSlotID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdate) SetStartTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdate) SetEndTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEndTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetVisitType sets the "visit_type" field.
func (_u *AppointmentUpdate) SetVisitType(v appointment.VisitType) *AppointmentUpdate {
	_u.mutation.SetVisitType(v)
	return _u
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableVisitType(v *appointment.VisitType) *AppointmentUpdate {
	if v != nil {
		_u.SetVisitType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *AppointmentUpdate) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePaymentStatus(v *appointment.PaymentStatus) *AppointmentUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetPaidAmount sets the "paid_amount" field.
func (_u *AppointmentUpdate) SetPaidAmount(v int64) *AppointmentUpdate {
	_u.mutation.ResetPaidAmount()
	_u.mutation.SetPaidAmount(v)
	return _u
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePaidAmount(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetPaidAmount(*v)
	}
	return _u
}

// AddPaidAmount adds value to the "paid_amount" field.
func (_u *AppointmentUpdate) AddPaidAmount(v int64) *AppointmentUpdate {
	_u.mutation.AddPaidAmount(v)
	return _u
}

// SetBookingCode sets the "booking_code" field.
func (_u *AppointmentUpdate) SetBookingCode(v string) *AppointmentUpdate {
	_u.mutation.SetBookingCode(v)
	return _u
}

// SetNillableBookingCode sets the "booking_code" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableBookingCode(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetBookingCode(*v)
	}
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *AppointmentUpdate) SetSymptoms(v string) *AppointmentUpdate {
	_u.mutation.SetSymptoms(v)
	return _u
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSymptoms(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetSymptoms(*v)
	}
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *AppointmentUpdate) ClearSymptoms() *AppointmentUpdate {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *AppointmentUpdate) SetConsultationFee(v int64) *AppointmentUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableConsultationFee(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *AppointmentUpdate) AddConsultationFee(v int64) *AppointmentUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetCoveredAmount sets the "covered_amount" field.
func (_u *AppointmentUpdate) SetCoveredAmount(v int64) *AppointmentUpdate {
	_u.mutation.ResetCoveredAmount()
	_u.mutation.SetCoveredAmount(v)
	return _u
}

// SetNillableCoveredAmount sets the "covered_amount" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCoveredAmount(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetCoveredAmount(*v)
	}
	return _u
}

// AddCoveredAmount adds value to the "covered_amount" field.
func (_u *AppointmentUpdate) AddCoveredAmount(v int64) *AppointmentUpdate {
	_u.mutation.AddCoveredAmount(v)
	return _u
}

// SetPayableAmount sets the "payable_amount" field.
func (_u *AppointmentUpdate) SetPayableAmount(v int64) *AppointmentUpdate {
	_u.mutation.ResetPayableAmount()
	_u.mutation.SetPayableAmount(v)
	return _u
}

// SetNillablePayableAmount sets the "payable_amount" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePayableAmount(v *int64) *AppointmentUpdate {
	if v != nil {
		_u.SetPayableAmount(*v)
	}
	return _u
}

// AddPayableAmount adds value to the "payable_amount" field.
func (_u *AppointmentUpdate) AddPayableAmount(v int64) *AppointmentUpdate {
	_u.mutation.AddPayableAmount(v)
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *AppointmentUpdate) SetInsuranceProvider(v string) *AppointmentUpdate {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableInsuranceProvider(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *AppointmentUpdate) ClearInsuranceProvider() *AppointmentUpdate {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdate) SetCancellationReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancellationReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdate) ClearCancellationReason() *AppointmentUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.VisitType(); ok {
		if err := appointment.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.visit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := appointment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(appointment.FieldMemberID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TimeSlotID(); ok {
		_spec.SetField(appointment.FieldTimeSlotID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitType(); ok {
		_spec.SetField(appointment.FieldVisitType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(appointment.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaidAmount(); ok {
		_spec.SetField(appointment.FieldPaidAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPaidAmount(); ok {
		_spec.AddField(appointment.FieldPaidAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BookingCode(); ok {
		_spec.SetField(appointment.FieldBookingCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(appointment.FieldSymptoms, field.TypeString, value)
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(appointment.FieldSymptoms, field.TypeString)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(appointment.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(appointment.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CoveredAmount(); ok {
		_spec.SetField(appointment.FieldCoveredAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCoveredAmount(); ok {
		_spec.AddField(appointment.FieldCoveredAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PayableAmount(); ok {
		_spec.SetField(appointment.FieldPayableAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPayableAmount(); ok {
		_spec.AddField(appointment.FieldPayableAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(appointment.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(appointment.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AppointmentUpdateOne) SetUserID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableUserID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *AppointmentUpdateOne) SetMemberID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableMemberID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetTimeSlotID sets the "time_slot_id" field.
func (_u *AppointmentUpdateOne) SetTimeSlotID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetTimeSlotID(v)
	return _u
}

// SetNillableTimeSlotID sets the "time_slot_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTimeSlotID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTimeSlotID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdateOne) SetStartTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdateOne) SetEndTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEndTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetVisitType sets the "visit_type" field.
func (_u *AppointmentUpdateOne) SetVisitType(v appointment.VisitType) *AppointmentUpdateOne {
	_u.mutation.SetVisitType(v)
	return _u
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableVisitType(v *appointment.VisitType) *AppointmentUpdateOne {
	if v != nil {
		_u.SetVisitType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *AppointmentUpdateOne) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePaymentStatus(v *appointment.PaymentStatus) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetPaidAmount sets the "paid_amount" field.
func (_u *AppointmentUpdateOne) SetPaidAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetPaidAmount()
	_u.mutation.SetPaidAmount(v)
	return _u
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePaidAmount(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPaidAmount(*v)
	}
	return _u
}

// AddPaidAmount adds value to the "paid_amount" field.
func (_u *AppointmentUpdateOne) AddPaidAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.AddPaidAmount(v)
	return _u
}

// SetBookingCode sets the "booking_code" field.
func (_u *AppointmentUpdateOne) SetBookingCode(v string) *AppointmentUpdateOne {
	_u.mutation.SetBookingCode(v)
	return _u
}

// SetNillableBookingCode sets the "booking_code" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableBookingCode(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetBookingCode(*v)
	}
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *AppointmentUpdateOne) SetSymptoms(v string) *AppointmentUpdateOne {
	_u.mutation.SetSymptoms(v)
	return _u
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSymptoms(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSymptoms(*v)
	}
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *AppointmentUpdateOne) ClearSymptoms() *AppointmentUpdateOne {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *AppointmentUpdateOne) SetConsultationFee(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableConsultationFee(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *AppointmentUpdateOne) AddConsultationFee(v int64) *AppointmentUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetCoveredAmount sets the "covered_amount" field.
func (_u *AppointmentUpdateOne) SetCoveredAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetCoveredAmount()
	_u.mutation.SetCoveredAmount(v)
	return _u
}

// SetNillableCoveredAmount sets the "covered_amount" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCoveredAmount(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCoveredAmount(*v)
	}
	return _u
}

// AddCoveredAmount adds value to the "covered_amount" field.
func (_u *AppointmentUpdateOne) AddCoveredAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.AddCoveredAmount(v)
	return _u
}

// SetPayableAmount sets the "payable_amount" field.
func (_u *AppointmentUpdateOne) SetPayableAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.ResetPayableAmount()
	_u.mutation.SetPayableAmount(v)
	return _u
}

// SetNillablePayableAmount sets the "payable_amount" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePayableAmount(v *int64) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPayableAmount(*v)
	}
	return _u
}

// AddPayableAmount adds value to the "payable_amount" field.
func (_u *AppointmentUpdateOne) AddPayableAmount(v int64) *AppointmentUpdateOne {
	_u.mutation.AddPayableAmount(v)
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *AppointmentUpdateOne) SetInsuranceProvider(v string) *AppointmentUpdateOne {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableInsuranceProvider(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *AppointmentUpdateOne) ClearInsuranceProvider() *AppointmentUpdateOne {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) SetCancellationReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancellationReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) ClearCancellationReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.VisitType(); ok {
		if err := appointment.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.visit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := appointment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(appointment.FieldMemberID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TimeSlotID(); ok {
		_spec.SetField(appointment.FieldTimeSlotID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitType(); ok {
		_spec.SetField(appointment.FieldVisitType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(appointment.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaidAmount(); ok {
		_spec.SetField(appointment.FieldPaidAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPaidAmount(); ok {
		_spec.AddField(appointment.FieldPaidAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BookingCode(); ok {
		_spec.SetField(appointment.FieldBookingCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(appointment.FieldSymptoms, field.TypeString, value)
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(appointment.FieldSymptoms, field.TypeString)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(appointment.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(appointment.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CoveredAmount(); ok {
		_spec.SetField(appointment.FieldCoveredAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCoveredAmount(); ok {
		_spec.AddField(appointment.FieldCoveredAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PayableAmount(); ok {
		_spec.SetField(appointment.FieldPayableAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPayableAmount(); ok {
		_spec.AddField(appointment.FieldPayableAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(appointment.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(appointment.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
