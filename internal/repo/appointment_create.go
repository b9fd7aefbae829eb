// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/appointment"
	"github.com/google/uuid"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AppointmentCreate) SetUserID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *AppointmentCreate) SetMemberID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AppointmentCreate) SetDoctorID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetTimeSlotID sets the "time_slot_id" field.
func (_c *AppointmentCreate) SetTimeSlotID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetTimeSlotID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AppointmentCreate) SetStartTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AppointmentCreate) SetEndTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetVisitType sets the "visit_type" field.
func (_c *AppointmentCreate) SetVisitType(v appointment.VisitType) *AppointmentCreate {
	_c.mutation.SetVisitType(v)
	return _c
}

// SetNillableVisitType sets the "visit_type" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableVisitType(v *appointment.VisitType) *AppointmentCreate {
	if v != nil {
		_c.SetVisitType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *AppointmentCreate) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePaymentStatus(v *appointment.PaymentStatus) *AppointmentCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetPaidAmount sets the "paid_amount" field.
func (_c *AppointmentCreate) SetPaidAmount(v int64) *AppointmentCreate {
	_c.mutation.SetPaidAmount(v)
	return _c
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePaidAmount(v *int64) *AppointmentCreate {
	if v != nil {
		_c.SetPaidAmount(*v)
	}
	return _c
}

// SetBookingCode sets the "booking_code" field.
func (_c *AppointmentCreate) SetBookingCode(v string) *AppointmentCreate {
	_c.mutation.SetBookingCode(v)
	return _c
}

// SetSymptoms sets the "symptoms" field.
func (_c *AppointmentCreate) SetSymptoms(v string) *AppointmentCreate {
	_c.mutation.SetSymptoms(v)
	return _c
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableSymptoms(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetSymptoms(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *AppointmentCreate) SetConsultationFee(v int64) *AppointmentCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetCoveredAmount sets the "covered_amount" field.
func (_c *AppointmentCreate) SetCoveredAmount(v int64) *AppointmentCreate {
	_c.mutation.SetCoveredAmount(v)
	return _c
}

// SetNillableCoveredAmount sets the "covered_amount" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCoveredAmount(v *int64) *AppointmentCreate {
	if v != nil {
		_c.SetCoveredAmount(*v)
	}
	return _c
}

// SetPayableAmount sets the "payable_amount" field.
func (_c *AppointmentCreate) SetPayableAmount(v int64) *AppointmentCreate {
	_c.mutation.SetPayableAmount(v)
	return _c
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_c *AppointmentCreate) SetInsuranceProvider(v string) *AppointmentCreate {
	_c.mutation.SetInsuranceProvider(v)
	return _c
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableInsuranceProvider(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetInsuranceProvider(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *AppointmentCreate) SetCancellationReason(v string) *AppointmentCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancellationReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.VisitType(); !ok {
		v := appointment.DefaultVisitType
		_c.mutation.SetVisitType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := appointment.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.PaidAmount(); !ok {
		v := appointment.DefaultPaidAmount
		_c.mutation.SetPaidAmount(v)
	}
	if _, ok := _c.mutation.CoveredAmount(); !ok {
		v := appointment.DefaultCoveredAmount
		_c.mutation.SetCoveredAmount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Appointment.user_id"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`repo: missing required field "Appointment.member_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Appointment.doctor_id"`)}
	}
	if _, ok := _c.mutation.TimeSlotID(); !ok {
		return &ValidationError{Name: "time_slot_id", err: errors.New(`repo: missing required field "Appointment.time_slot_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Appointment.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Appointment.end_time"`)}
	}
	if _, ok := _c.mutation.VisitType(); !ok {
		return &ValidationError{Name: "visit_type", err: errors.New(`repo: missing required field "Appointment.visit_type"`)}
	}
	if v, ok := _c.mutation.VisitType(); ok {
		if err := appointment.VisitTypeValidator(v); err != nil {
			return &ValidationError{Name: "visit_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.visit_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`repo: missing required field "Appointment.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := appointment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Appointment.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaidAmount(); !ok {
		return &ValidationError{Name: "paid_amount", err: errors.New(`repo: missing required field "Appointment.paid_amount"`)}
	}
	if _, ok := _c.mutation.BookingCode(); !ok {
		return &ValidationError{Name: "booking_code", err: errors.New(`repo: missing required field "Appointment.booking_code"`)}
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		return &ValidationError{Name: "consultation_fee", err: errors.New(`repo: missing required field "Appointment.consultation_fee"`)}
	}
	if _, ok := _c.mutation.CoveredAmount(); !ok {
		return &ValidationError{Name: "covered_amount", err: errors.New(`repo: missing required field "Appointment.covered_amount"`)}
	}
	if _, ok := _c.mutation.PayableAmount(); !ok {
		return &ValidationError{Name: "payable_amount", err: errors.New(`repo: missing required field "Appointment.payable_amount"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(appointment.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.TimeSlotID(); ok {
		_spec.SetField(appointment.FieldTimeSlotID, field.TypeUUID, value)
		_node.TimeSlotID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.VisitType(); ok {
		_spec.SetField(appointment.FieldVisitType, field.TypeEnum, value)
		_node.VisitType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(appointment.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.PaidAmount(); ok {
		_spec.SetField(appointment.FieldPaidAmount, field.TypeInt64, value)
		_node.PaidAmount = value
	}
	if value, ok := _c.mutation.BookingCode(); ok {
		_spec.SetField(appointment.FieldBookingCode, field.TypeString, value)
		_node.BookingCode = value
	}
	if value, ok := _c.mutation.Symptoms(); ok {
		_spec.SetField(appointment.FieldSymptoms, field.TypeString, value)
		_node.Symptoms = &value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(appointment.FieldConsultationFee, field.TypeInt64, value)
		_node.ConsultationFee = value
	}
	if value, ok := _c.mutation.CoveredAmount(); ok {
		_spec.SetField(appointment.FieldCoveredAmount, field.TypeInt64, value)
		_node.CoveredAmount = value
	}
	if value, ok := _c.mutation.PayableAmount(); ok {
		_spec.SetField(appointment.FieldPayableAmount, field.TypeInt64, value)
		_node.PayableAmount = value
	}
	if value, ok := _c.mutation.InsuranceProvider(); ok {
		_spec.SetField(appointment.FieldInsuranceProvider, field.TypeString, value)
		_node.InsuranceProvider = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertOne {
	_c.conflict = opts
	return &AppointmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflictColumns(columns ...string) *AppointmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertOne{
		create: _c,
	}
}

type (
	// AppointmentUpsertOne is the builder for "upsert"-ing
	//  one Appointment node.
	AppointmentUpsertOne struct {
		create *AppointmentCreate
	}

	// AppointmentUpsert is the "OnConflict" setter.
	AppointmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsert) SetUpdatedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateUpdatedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *AppointmentUpsert) SetUserID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateUserID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldUserID)
	return u
}

// SetMemberID sets the "member_id" field.
func (u *AppointmentUpsert) SetMemberID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldMemberID, v)
	return u
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateMemberID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldMemberID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *AppointmentUpsert) SetDoctorID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateDoctorID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldDoctorID)
	return u
}

// SetTimeSlotID sets the "time_slot_id" field.
func (u *AppointmentUpsert) SetTimeSlotID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldTimeSlotID, v)
	return u
}

// UpdateTimeSlotID sets the "time_slot_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateTimeSlotID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldTimeSlotID)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsert) SetStartTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStartTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *AppointmentUpsert) SetEndTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateEndTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldEndTime)
	return u
}

// SetVisitType sets the "visit_type" field.
func (u *AppointmentUpsert) SetVisitType(v appointment.VisitType) *AppointmentUpsert {
	u.Set(appointment.FieldVisitType, v)
	return u
}

// UpdateVisitType sets the "visit_type" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateVisitType() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldVisitType)
	return u
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsert) SetStatus(v appointment.Status) *AppointmentUpsert {
	u.Set(appointment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStatus() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStatus)
	return u
}

// SetPaymentStatus sets the "payment_status" field.
func (u *AppointmentUpsert) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpsert {
	u.Set(appointment.FieldPaymentStatus, v)
	return u
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePaymentStatus() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPaymentStatus)
	return u
}

// SetPaidAmount sets the "paid_amount" field.
func (u *AppointmentUpsert) SetPaidAmount(v int64) *AppointmentUpsert {
	u.Set(appointment.FieldPaidAmount, v)
	return u
}

// UpdatePaidAmount sets the "paid_amount" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePaidAmount() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPaidAmount)
	return u
}

// AddPaidAmount adds v to the "paid_amount" field.
func (u *AppointmentUpsert) AddPaidAmount(v int64) *AppointmentUpsert {
	u.Add(appointment.FieldPaidAmount, v)
	return u
}

// SetBookingCode sets the "booking_code" field.
func (u *AppointmentUpsert) SetBookingCode(v string) *AppointmentUpsert {
	u.Set(appointment.FieldBookingCode, v)
	return u
}

// UpdateBookingCode sets the "booking_code" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateBookingCode() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldBookingCode)
	return u
}

// SetSymptoms sets the "symptoms" field.
func (u *AppointmentUpsert) SetSymptoms(v string) *AppointmentUpsert {
	u.Set(appointment.FieldSymptoms, v)
	return u
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateSymptoms() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldSymptoms)
	return u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *AppointmentUpsert) ClearSymptoms() *AppointmentUpsert {
	u.SetNull(appointment.FieldSymptoms)
	return u
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *AppointmentUpsert) SetConsultationFee(v int64) *AppointmentUpsert {
	u.Set(appointment.FieldConsultationFee, v)
	return u
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateConsultationFee() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldConsultationFee)
	return u
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *AppointmentUpsert) AddConsultationFee(v int64) *AppointmentUpsert {
	u.Add(appointment.FieldConsultationFee, v)
	return u
}

// SetCoveredAmount sets the "covered_amount" field.
func (u *AppointmentUpsert) SetCoveredAmount(v int64) *AppointmentUpsert {
	u.Set(appointment.FieldCoveredAmount, v)
	return u
}

// UpdateCoveredAmount sets the "covered_amount" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCoveredAmount() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCoveredAmount)
	return u
}

// AddCoveredAmount adds v to the "covered_amount" field.
func (u *AppointmentUpsert) AddCoveredAmount(v int64) *AppointmentUpsert {
	u.Add(appointment.FieldCoveredAmount, v)
	return u
}

// SetPayableAmount sets the "payable_amount" field.
func (u *AppointmentUpsert) SetPayableAmount(v int64) *AppointmentUpsert {
	u.Set(appointment.FieldPayableAmount, v)
	return u
}

// UpdatePayableAmount sets the "payable_amount" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePayableAmount() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPayableAmount)
	return u
}

// AddPayableAmount adds v to the "payable_amount" field.
func (u *AppointmentUpsert) AddPayableAmount(v int64) *AppointmentUpsert {
	u.Add(appointment.FieldPayableAmount, v)
	return u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *AppointmentUpsert) SetInsuranceProvider(v string) *AppointmentUpsert {
	u.Set(appointment.FieldInsuranceProvider, v)
	return u
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateInsuranceProvider() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldInsuranceProvider)
	return u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *AppointmentUpsert) ClearInsuranceProvider() *AppointmentUpsert {
	u.SetNull(appointment.FieldInsuranceProvider)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsert) SetCancelledAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancelledAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsert) ClearCancelledAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancelledAt)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *AppointmentUpsert) SetCancellationReason(v string) *AppointmentUpsert {
	u.Set(appointment.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancellationReason() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancellationReason)
	return u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *AppointmentUpsert) ClearCancellationReason() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancellationReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertOne) UpdateNewValues() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appointment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appointment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppointmentUpsertOne) Ignore() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertOne) DoNothing() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreate.OnConflict
// documentation for more info.
func (u *AppointmentUpsertOne) Update(set func(*AppointmentUpsert)) *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertOne) SetUpdatedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *AppointmentUpsertOne) SetUserID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateUserID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUserID()
	})
}

// SetMemberID sets the "member_id" field.
func (u *AppointmentUpsertOne) SetMemberID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateMemberID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateMemberID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AppointmentUpsertOne) SetDoctorID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateDoctorID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetTimeSlotID sets the "time_slot_id" field.
func (u *AppointmentUpsertOne) SetTimeSlotID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetTimeSlotID(v)
	})
}

// UpdateTimeSlotID sets the "time_slot_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateTimeSlotID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateTimeSlotID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsertOne) SetStartTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStartTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AppointmentUpsertOne) SetEndTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateEndTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateEndTime()
	})
}

// SetVisitType sets the "visit_type" field.
func (u *AppointmentUpsertOne) SetVisitType(v appointment.VisitType) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetVisitType(v)
	})
}

// UpdateVisitType sets the "visit_type" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateVisitType() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateVisitType()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertOne) SetStatus(v appointment.Status) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStatus() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *AppointmentUpsertOne) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePaymentStatus() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetPaidAmount sets the "paid_amount" field.
func (u *AppointmentUpsertOne) SetPaidAmount(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPaidAmount(v)
	})
}

// AddPaidAmount adds v to the "paid_amount" field.
func (u *AppointmentUpsertOne) AddPaidAmount(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddPaidAmount(v)
	})
}

// UpdatePaidAmount sets the "paid_amount" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePaidAmount() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePaidAmount()
	})
}

// SetBookingCode sets the "booking_code" field.
func (u *AppointmentUpsertOne) SetBookingCode(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetBookingCode(v)
	})
}

// UpdateBookingCode sets the "booking_code" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateBookingCode() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateBookingCode()
	})
}

// SetSymptoms sets the "symptoms" field.
func (u *AppointmentUpsertOne) SetSymptoms(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetSymptoms(v)
	})
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateSymptoms() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateSymptoms()
	})
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *AppointmentUpsertOne) ClearSymptoms() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearSymptoms()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *AppointmentUpsertOne) SetConsultationFee(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *AppointmentUpsertOne) AddConsultationFee(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateConsultationFee() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetCoveredAmount sets the "covered_amount" field.
func (u *AppointmentUpsertOne) SetCoveredAmount(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCoveredAmount(v)
	})
}

// AddCoveredAmount adds v to the "covered_amount" field.
func (u *AppointmentUpsertOne) AddCoveredAmount(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddCoveredAmount(v)
	})
}

// UpdateCoveredAmount sets the "covered_amount" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCoveredAmount() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCoveredAmount()
	})
}

// SetPayableAmount sets the "payable_amount" field.
func (u *AppointmentUpsertOne) SetPayableAmount(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPayableAmount(v)
	})
}

// AddPayableAmount adds v to the "payable_amount" field.
func (u *AppointmentUpsertOne) AddPayableAmount(v int64) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddPayableAmount(v)
	})
}

// UpdatePayableAmount sets the "payable_amount" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePayableAmount() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePayableAmount()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *AppointmentUpsertOne) SetInsuranceProvider(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateInsuranceProvider() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *AppointmentUpsertOne) ClearInsuranceProvider() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertOne) SetCancelledAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertOne) ClearCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *AppointmentUpsertOne) SetCancellationReason(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancellationReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *AppointmentUpsertOne) ClearCancellationReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancellationReason()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppointmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AppointmentUpsertOne.ID is not supported by MySQL driver. Use AppointmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppointmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertBulk {
	_c.conflict = opts
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflictColumns(columns ...string) *AppointmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// AppointmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Appointment nodes.
type AppointmentUpsertBulk struct {
	create *AppointmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) UpdateNewValues() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appointment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appointment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) Ignore() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertBulk) DoNothing() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreateBulk.OnConflict
// documentation for more info.
func (u *AppointmentUpsertBulk) Update(set func(*AppointmentUpsert)) *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertBulk) SetUpdatedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *AppointmentUpsertBulk) SetUserID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateUserID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUserID()
	})
}

// SetMemberID sets the "member_id" field.
func (u *AppointmentUpsertBulk) SetMemberID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateMemberID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateMemberID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AppointmentUpsertBulk) SetDoctorID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateDoctorID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetTimeSlotID sets the "time_slot_id" field.
func (u *AppointmentUpsertBulk) SetTimeSlotID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetTimeSlotID(v)
	})
}

// UpdateTimeSlotID sets the "time_slot_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateTimeSlotID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateTimeSlotID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsertBulk) SetStartTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStartTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AppointmentUpsertBulk) SetEndTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateEndTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateEndTime()
	})
}

// SetVisitType sets the "visit_type" field.
func (u *AppointmentUpsertBulk) SetVisitType(v appointment.VisitType) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetVisitType(v)
	})
}

// UpdateVisitType sets the "visit_type" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateVisitType() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateVisitType()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertBulk) SetStatus(v appointment.Status) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStatus() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *AppointmentUpsertBulk) SetPaymentStatus(v appointment.PaymentStatus) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePaymentStatus() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetPaidAmount sets the "paid_amount" field.
func (u *AppointmentUpsertBulk) SetPaidAmount(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPaidAmount(v)
	})
}

// AddPaidAmount adds v to the "paid_amount" field.
func (u *AppointmentUpsertBulk) AddPaidAmount(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddPaidAmount(v)
	})
}

// UpdatePaidAmount sets the "paid_amount" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePaidAmount() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePaidAmount()
	})
}

// SetBookingCode sets the "booking_code" field.
func (u *AppointmentUpsertBulk) SetBookingCode(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetBookingCode(v)
	})
}

// UpdateBookingCode sets the "booking_code" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateBookingCode() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateBookingCode()
	})
}

// SetSymptoms sets the "symptoms" field.
func (u *AppointmentUpsertBulk) SetSymptoms(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetSymptoms(v)
	})
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateSymptoms() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateSymptoms()
	})
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *AppointmentUpsertBulk) ClearSymptoms() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearSymptoms()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *AppointmentUpsertBulk) SetConsultationFee(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *AppointmentUpsertBulk) AddConsultationFee(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateConsultationFee() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetCoveredAmount sets the "covered_amount" field.
func (u *AppointmentUpsertBulk) SetCoveredAmount(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCoveredAmount(v)
	})
}

// AddCoveredAmount adds v to the "covered_amount" field.
func (u *AppointmentUpsertBulk) AddCoveredAmount(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddCoveredAmount(v)
	})
}

// UpdateCoveredAmount sets the "covered_amount" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCoveredAmount() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCoveredAmount()
	})
}

// SetPayableAmount sets the "payable_amount" field.
func (u *AppointmentUpsertBulk) SetPayableAmount(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPayableAmount(v)
	})
}

// AddPayableAmount adds v to the "payable_amount" field.
func (u *AppointmentUpsertBulk) AddPayableAmount(v int64) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddPayableAmount(v)
	})
}

// UpdatePayableAmount sets the "payable_amount" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePayableAmount() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePayableAmount()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *AppointmentUpsertBulk) SetInsuranceProvider(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateInsuranceProvider() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *AppointmentUpsertBulk) ClearInsuranceProvider() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertBulk) SetCancelledAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertBulk) ClearCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *AppointmentUpsertBulk) SetCancellationReason(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancellationReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *AppointmentUpsertBulk) ClearCancellationReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancellationReason()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AppointmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
