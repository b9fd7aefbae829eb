// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/auxillium/auxillium_backend/internal/repo/appointment"
	"github.com/auxillium/auxillium_backend/internal/repo/blooddonation"
	"github.com/auxillium/auxillium_backend/internal/repo/bloodrequest"
	"github.com/auxillium/auxillium_backend/internal/repo/doctor"
	"github.com/auxillium/auxillium_backend/internal/repo/donation"
	"github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	"github.com/auxillium/auxillium_backend/internal/repo/emergencycontact"
	"github.com/auxillium/auxillium_backend/internal/repo/familymember"
	"github.com/auxillium/auxillium_backend/internal/repo/healthmetric"
	"github.com/auxillium/auxillium_backend/internal/repo/medication"
	"github.com/auxillium/auxillium_backend/internal/repo/notification"
	"github.com/auxillium/auxillium_backend/internal/repo/pharmacy"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/auxillium/auxillium_backend/internal/repo/profile"
	"github.com/auxillium/auxillium_backend/internal/repo/timeslot"
	"github.com/auxillium/auxillium_backend/internal/repo/usersession"
	"github.com/auxillium/auxillium_backend/internal/repo/workshop"
	"github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment        = "Appointment"
	TypeBloodDonation      = "BloodDonation"
	TypeBloodRequest       = "BloodRequest"
	TypeDoctor             = "Doctor"
	TypeDonation           = "Donation"
	TypeDonationInitiative = "DonationInitiative"
	TypeEmergencyContact   = "EmergencyContact"
	TypeFamilyMember       = "FamilyMember"
	TypeHealthMetric       = "HealthMetric"
	TypeMedication         = "Medication"
	TypeNotification       = "Notification"
	TypePharmacy           = "Pharmacy"
	TypeProfile            = "Profile"
	TypeTimeSlot           = "TimeSlot"
	TypeUserSession        = "UserSession"
	TypeWorkshop           = "Workshop"
	TypeWorkshopEnrollment = "WorkshopEnrollment"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	user_id             *uuid.UUID
	member_id           *uuid.UUID
	doctor_id           *uuid.UUID
	time_slot_id        *uuid.UUID
	start_time          *time.Time
	end_time            *time.Time
	visit_type          *appointment.VisitType
	status              *appointment.Status
	payment_status      *appointment.PaymentStatus
	paid_amount         *int64
	addpaid_amount      *int64
	booking_code        *string
	symptoms            *string
	consultation_fee    *int64
	addconsultation_fee *int64
	covered_amount      *int64
	addcovered_amount   *int64
	payable_amount      *int64
	addpayable_amount   *int64
	insurance_provider  *string
	cancelled_at        *time.Time
	cancellation_reason *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Appointment, error)
	predicates          []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *AppointmentMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AppointmentMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AppointmentMutation) ResetUserID() {
	m.user_id = nil
}

// SetMemberID sets the "member_id" field.
func (m *AppointmentMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *AppointmentMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *AppointmentMutation) ResetMemberID() {
	m.member_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *AppointmentMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *AppointmentMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *AppointmentMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetTimeSlotID sets the "time_slot_id" field.
func (m *AppointmentMutation) SetTimeSlotID(u uuid.UUID) {
	m.time_slot_id = &u
}

// TimeSlotID returns the value of the "time_slot_id" field in the mutation.
func (m *AppointmentMutation) TimeSlotID() (r uuid.UUID, exists bool) {
	v := m.time_slot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSlotID returns the old "time_slot_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTimeSlotID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSlotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSlotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSlotID: %w", err)
	}
	return oldValue.TimeSlotID, nil
}

// ResetTimeSlotID resets all changes to the "time_slot_id" field.
func (m *AppointmentMutation) ResetTimeSlotID() {
	m.time_slot_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *AppointmentMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AppointmentMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AppointmentMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AppointmentMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AppointmentMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AppointmentMutation) ResetEndTime() {
	m.end_time = nil
}

// SetVisitType sets the "visit_type" field.
func (m *AppointmentMutation) SetVisitType(at appointment.VisitType) {
	m.visit_type = &at
}

// VisitType returns the value of the "visit_type" field in the mutation.
func (m *AppointmentMutation) VisitType() (r appointment.VisitType, exists bool) {
	v := m.visit_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitType returns the old "visit_type" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldVisitType(ctx context.Context) (v appointment.VisitType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitType: %w", err)
	}
	return oldValue.VisitType, nil
}

// ResetVisitType resets all changes to the "visit_type" field.
func (m *AppointmentMutation) ResetVisitType() {
	m.visit_type = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *AppointmentMutation) SetPaymentStatus(as appointment.PaymentStatus) {
	m.payment_status = &as
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *AppointmentMutation) PaymentStatus() (r appointment.PaymentStatus, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPaymentStatus(ctx context.Context) (v appointment.PaymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *AppointmentMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetPaidAmount sets the "paid_amount" field.
func (m *AppointmentMutation) SetPaidAmount(i int64) {
	m.paid_amount = &i
	m.addpaid_amount = nil
}

// PaidAmount returns the value of the "paid_amount" field in the mutation.
func (m *AppointmentMutation) PaidAmount() (r int64, exists bool) {
	v := m.paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAmount returns the old "paid_amount" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPaidAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAmount: %w", err)
	}
	return oldValue.PaidAmount, nil
}

// AddPaidAmount adds i to the "paid_amount" field.
func (m *AppointmentMutation) AddPaidAmount(i int64) {
	if m.addpaid_amount != nil {
		*m.addpaid_amount += i
	} else {
		m.addpaid_amount = &i
	}
}

// AddedPaidAmount returns the value that was added to the "paid_amount" field in this mutation.
func (m *AppointmentMutation) AddedPaidAmount() (r int64, exists bool) {
	v := m.addpaid_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaidAmount resets all changes to the "paid_amount" field.
func (m *AppointmentMutation) ResetPaidAmount() {
	m.paid_amount = nil
	m.addpaid_amount = nil
}

// SetBookingCode sets the "booking_code" field.
func (m *AppointmentMutation) SetBookingCode(s string) {
	m.booking_code = &s
}

// BookingCode returns the value of the "booking_code" field in the mutation.
func (m *AppointmentMutation) BookingCode() (r string, exists bool) {
	v := m.booking_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingCode returns the old "booking_code" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldBookingCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingCode: %w", err)
	}
	return oldValue.BookingCode, nil
}

// ResetBookingCode resets all changes to the "booking_code" field.
func (m *AppointmentMutation) ResetBookingCode() {
	m.booking_code = nil
}

// SetSymptoms sets the "symptoms" field.
func (m *AppointmentMutation) SetSymptoms(s string) {
	m.symptoms = &s
}

// Symptoms returns the value of the "symptoms" field in the mutation.
func (m *AppointmentMutation) Symptoms() (r string, exists bool) {
	v := m.symptoms
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptoms returns the old "symptoms" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldSymptoms(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptoms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptoms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptoms: %w", err)
	}
	return oldValue.Symptoms, nil
}

// ClearSymptoms clears the value of the "symptoms" field.
func (m *AppointmentMutation) ClearSymptoms() {
	m.symptoms = nil
	m.clearedFields[appointment.FieldSymptoms] = struct{}{}
}

// SymptomsCleared returns if the "symptoms" field was cleared in this mutation.
func (m *AppointmentMutation) SymptomsCleared() bool {
	_, ok := m.clearedFields[appointment.FieldSymptoms]
	return ok
}

// ResetSymptoms resets all changes to the "symptoms" field.
func (m *AppointmentMutation) ResetSymptoms() {
	m.symptoms = nil
	delete(m.clearedFields, appointment.FieldSymptoms)
}

// SetConsultationFee sets the "consultation_fee" field.
func (m *AppointmentMutation) SetConsultationFee(i int64) {
	m.consultation_fee = &i
	m.addconsultation_fee = nil
}

// ConsultationFee returns the value of the "consultation_fee" field in the mutation.
func (m *AppointmentMutation) ConsultationFee() (r int64, exists bool) {
	v := m.consultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationFee returns the old "consultation_fee" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldConsultationFee(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationFee: %w", err)
	}
	return oldValue.ConsultationFee, nil
}

// AddConsultationFee adds i to the "consultation_fee" field.
func (m *AppointmentMutation) AddConsultationFee(i int64) {
	if m.addconsultation_fee != nil {
		*m.addconsultation_fee += i
	} else {
		m.addconsultation_fee = &i
	}
}

// AddedConsultationFee returns the value that was added to the "consultation_fee" field in this mutation.
func (m *AppointmentMutation) AddedConsultationFee() (r int64, exists bool) {
	v := m.addconsultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultationFee resets all changes to the "consultation_fee" field.
func (m *AppointmentMutation) ResetConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
}

// SetCoveredAmount sets the "covered_amount" field.
func (m *AppointmentMutation) SetCoveredAmount(i int64) {
	m.covered_amount = &i
	m.addcovered_amount = nil
}

// CoveredAmount returns the value of the "covered_amount" field in the mutation.
func (m *AppointmentMutation) CoveredAmount() (r int64, exists bool) {
	v := m.covered_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCoveredAmount returns the old "covered_amount" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCoveredAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoveredAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoveredAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoveredAmount: %w", err)
	}
	return oldValue.CoveredAmount, nil
}

// AddCoveredAmount adds i to the "covered_amount" field.
func (m *AppointmentMutation) AddCoveredAmount(i int64) {
	if m.addcovered_amount != nil {
		*m.addcovered_amount += i
	} else {
		m.addcovered_amount = &i
	}
}

// AddedCoveredAmount returns the value that was added to the "covered_amount" field in this mutation.
func (m *AppointmentMutation) AddedCoveredAmount() (r int64, exists bool) {
	v := m.addcovered_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoveredAmount resets all changes to the "covered_amount" field.
func (m *AppointmentMutation) ResetCoveredAmount() {
	m.covered_amount = nil
	m.addcovered_amount = nil
}

// SetPayableAmount sets the "payable_amount" field.
func (m *AppointmentMutation) SetPayableAmount(i int64) {
	m.payable_amount = &i
	m.addpayable_amount = nil
}

// PayableAmount returns the value of the "payable_amount" field in the mutation.
func (m *AppointmentMutation) PayableAmount() (r int64, exists bool) {
	v := m.payable_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPayableAmount returns the old "payable_amount" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPayableAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayableAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayableAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayableAmount: %w", err)
	}
	return oldValue.PayableAmount, nil
}

// AddPayableAmount adds i to the "payable_amount" field.
func (m *AppointmentMutation) AddPayableAmount(i int64) {
	if m.addpayable_amount != nil {
		*m.addpayable_amount += i
	} else {
		m.addpayable_amount = &i
	}
}

// AddedPayableAmount returns the value that was added to the "payable_amount" field in this mutation.
func (m *AppointmentMutation) AddedPayableAmount() (r int64, exists bool) {
	v := m.addpayable_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetPayableAmount resets all changes to the "payable_amount" field.
func (m *AppointmentMutation) ResetPayableAmount() {
	m.payable_amount = nil
	m.addpayable_amount = nil
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (m *AppointmentMutation) SetInsuranceProvider(s string) {
	m.insurance_provider = &s
}

// InsuranceProvider returns the value of the "insurance_provider" field in the mutation.
func (m *AppointmentMutation) InsuranceProvider() (r string, exists bool) {
	v := m.insurance_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceProvider returns the old "insurance_provider" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldInsuranceProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceProvider: %w", err)
	}
	return oldValue.InsuranceProvider, nil
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (m *AppointmentMutation) ClearInsuranceProvider() {
	m.insurance_provider = nil
	m.clearedFields[appointment.FieldInsuranceProvider] = struct{}{}
}

// InsuranceProviderCleared returns if the "insurance_provider" field was cleared in this mutation.
func (m *AppointmentMutation) InsuranceProviderCleared() bool {
	_, ok := m.clearedFields[appointment.FieldInsuranceProvider]
	return ok
}

// ResetInsuranceProvider resets all changes to the "insurance_provider" field.
func (m *AppointmentMutation) ResetInsuranceProvider() {
	m.insurance_provider = nil
	delete(m.clearedFields, appointment.FieldInsuranceProvider)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *AppointmentMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *AppointmentMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *AppointmentMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[appointment.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *AppointmentMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, appointment.FieldCancelledAt)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *AppointmentMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *AppointmentMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *AppointmentMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[appointment.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *AppointmentMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *AppointmentMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, appointment.FieldCancellationReason)
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, appointment.FieldUserID)
	}
	if m.member_id != nil {
		fields = append(fields, appointment.FieldMemberID)
	}
	if m.doctor_id != nil {
		fields = append(fields, appointment.FieldDoctorID)
	}
	if m.time_slot_id != nil {
		fields = append(fields, appointment.FieldTimeSlotID)
	}
	if m.start_time != nil {
		fields = append(fields, appointment.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, appointment.FieldEndTime)
	}
	if m.visit_type != nil {
		fields = append(fields, appointment.FieldVisitType)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.payment_status != nil {
		fields = append(fields, appointment.FieldPaymentStatus)
	}
	if m.paid_amount != nil {
		fields = append(fields, appointment.FieldPaidAmount)
	}
	if m.booking_code != nil {
		fields = append(fields, appointment.FieldBookingCode)
	}
	if m.symptoms != nil {
		fields = append(fields, appointment.FieldSymptoms)
	}
	if m.consultation_fee != nil {
		fields = append(fields, appointment.FieldConsultationFee)
	}
	if m.covered_amount != nil {
		fields = append(fields, appointment.FieldCoveredAmount)
	}
	if m.payable_amount != nil {
		fields = append(fields, appointment.FieldPayableAmount)
	}
	if m.insurance_provider != nil {
		fields = append(fields, appointment.FieldInsuranceProvider)
	}
	if m.cancelled_at != nil {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldUserID:
		return m.UserID()
	case appointment.FieldMemberID:
		return m.MemberID()
	case appointment.FieldDoctorID:
		return m.DoctorID()
	case appointment.FieldTimeSlotID:
		return m.TimeSlotID()
	case appointment.FieldStartTime:
		return m.StartTime()
	case appointment.FieldEndTime:
		return m.EndTime()
	case appointment.FieldVisitType:
		return m.VisitType()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldPaymentStatus:
		return m.PaymentStatus()
	case appointment.FieldPaidAmount:
		return m.PaidAmount()
	case appointment.FieldBookingCode:
		return m.BookingCode()
	case appointment.FieldSymptoms:
		return m.Symptoms()
	case appointment.FieldConsultationFee:
		return m.ConsultationFee()
	case appointment.FieldCoveredAmount:
		return m.CoveredAmount()
	case appointment.FieldPayableAmount:
		return m.PayableAmount()
	case appointment.FieldInsuranceProvider:
		return m.InsuranceProvider()
	case appointment.FieldCancelledAt:
		return m.CancelledAt()
	case appointment.FieldCancellationReason:
		return m.CancellationReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldUserID:
		return m.OldUserID(ctx)
	case appointment.FieldMemberID:
		return m.OldMemberID(ctx)
	case appointment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case appointment.FieldTimeSlotID:
		return m.OldTimeSlotID(ctx)
	case appointment.FieldStartTime:
		return m.OldStartTime(ctx)
	case appointment.FieldEndTime:
		return m.OldEndTime(ctx)
	case appointment.FieldVisitType:
		return m.OldVisitType(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case appointment.FieldPaidAmount:
		return m.OldPaidAmount(ctx)
	case appointment.FieldBookingCode:
		return m.OldBookingCode(ctx)
	case appointment.FieldSymptoms:
		return m.OldSymptoms(ctx)
	case appointment.FieldConsultationFee:
		return m.OldConsultationFee(ctx)
	case appointment.FieldCoveredAmount:
		return m.OldCoveredAmount(ctx)
	case appointment.FieldPayableAmount:
		return m.OldPayableAmount(ctx)
	case appointment.FieldInsuranceProvider:
		return m.OldInsuranceProvider(ctx)
	case appointment.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case appointment.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case appointment.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case appointment.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case appointment.FieldTimeSlotID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSlotID(v)
		return nil
	case appointment.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case appointment.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case appointment.FieldVisitType:
		v, ok := value.(appointment.VisitType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitType(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldPaymentStatus:
		v, ok := value.(appointment.PaymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case appointment.FieldPaidAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAmount(v)
		return nil
	case appointment.FieldBookingCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingCode(v)
		return nil
	case appointment.FieldSymptoms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptoms(v)
		return nil
	case appointment.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationFee(v)
		return nil
	case appointment.FieldCoveredAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoveredAmount(v)
		return nil
	case appointment.FieldPayableAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayableAmount(v)
		return nil
	case appointment.FieldInsuranceProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceProvider(v)
		return nil
	case appointment.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case appointment.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addpaid_amount != nil {
		fields = append(fields, appointment.FieldPaidAmount)
	}
	if m.addconsultation_fee != nil {
		fields = append(fields, appointment.FieldConsultationFee)
	}
	if m.addcovered_amount != nil {
		fields = append(fields, appointment.FieldCoveredAmount)
	}
	if m.addpayable_amount != nil {
		fields = append(fields, appointment.FieldPayableAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldPaidAmount:
		return m.AddedPaidAmount()
	case appointment.FieldConsultationFee:
		return m.AddedConsultationFee()
	case appointment.FieldCoveredAmount:
		return m.AddedCoveredAmount()
	case appointment.FieldPayableAmount:
		return m.AddedPayableAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldPaidAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaidAmount(v)
		return nil
	case appointment.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationFee(v)
		return nil
	case appointment.FieldCoveredAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoveredAmount(v)
		return nil
	case appointment.FieldPayableAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPayableAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldSymptoms) {
		fields = append(fields, appointment.FieldSymptoms)
	}
	if m.FieldCleared(appointment.FieldInsuranceProvider) {
		fields = append(fields, appointment.FieldInsuranceProvider)
	}
	if m.FieldCleared(appointment.FieldCancelledAt) {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.FieldCleared(appointment.FieldCancellationReason) {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldSymptoms:
		m.ClearSymptoms()
		return nil
	case appointment.FieldInsuranceProvider:
		m.ClearInsuranceProvider()
		return nil
	case appointment.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case appointment.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldUserID:
		m.ResetUserID()
		return nil
	case appointment.FieldMemberID:
		m.ResetMemberID()
		return nil
	case appointment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case appointment.FieldTimeSlotID:
		m.ResetTimeSlotID()
		return nil
	case appointment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case appointment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case appointment.FieldVisitType:
		m.ResetVisitType()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case appointment.FieldPaidAmount:
		m.ResetPaidAmount()
		return nil
	case appointment.FieldBookingCode:
		m.ResetBookingCode()
		return nil
	case appointment.FieldSymptoms:
		m.ResetSymptoms()
		return nil
	case appointment.FieldConsultationFee:
		m.ResetConsultationFee()
		return nil
	case appointment.FieldCoveredAmount:
		m.ResetCoveredAmount()
		return nil
	case appointment.FieldPayableAmount:
		m.ResetPayableAmount()
		return nil
	case appointment.FieldInsuranceProvider:
		m.ResetInsuranceProvider()
		return nil
	case appointment.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case appointment.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// BloodDonationMutation represents an operation that mutates the BloodDonation nodes in the graph.
type BloodDonationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	donor_id      *uuid.UUID
	request_id    *uuid.UUID
	blood_type    *blooddonation.BloodType
	units         *int
	addunits      *int
	donated_at    *time.Time
	location      *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BloodDonation, error)
	predicates    []predicate.BloodDonation
}

var _ ent.Mutation = (*BloodDonationMutation)(nil)

// blooddonationOption allows management of the mutation configuration using functional options.
type blooddonationOption func(*BloodDonationMutation)

// newBloodDonationMutation creates new mutation for the BloodDonation entity.
func newBloodDonationMutation(c config, op Op, opts ...blooddonationOption) *BloodDonationMutation {
	m := &BloodDonationMutation{
		config:        c,
		op:            op,
		typ:           TypeBloodDonation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBloodDonationID sets the ID field of the mutation.
func withBloodDonationID(id uuid.UUID) blooddonationOption {
	return func(m *BloodDonationMutation) {
		var (
			err   error
			once  sync.Once
			value *BloodDonation
		)
		m.oldValue = func(ctx context.Context) (*BloodDonation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BloodDonation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBloodDonation sets the old BloodDonation of the mutation.
func withBloodDonation(node *BloodDonation) blooddonationOption {
	return func(m *BloodDonationMutation) {
		m.oldValue = func(context.Context) (*BloodDonation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BloodDonationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BloodDonationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BloodDonation entities.
func (m *BloodDonationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BloodDonationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BloodDonationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BloodDonation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BloodDonationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BloodDonationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BloodDonationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDonorID sets the "donor_id" field.
func (m *BloodDonationMutation) SetDonorID(u uuid.UUID) {
	m.donor_id = &u
}

// DonorID returns the value of the "donor_id" field in the mutation.
func (m *BloodDonationMutation) DonorID() (r uuid.UUID, exists bool) {
	v := m.donor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDonorID returns the old "donor_id" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldDonorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonorID: %w", err)
	}
	return oldValue.DonorID, nil
}

// ResetDonorID resets all changes to the "donor_id" field.
func (m *BloodDonationMutation) ResetDonorID() {
	m.donor_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *BloodDonationMutation) SetRequestID(u uuid.UUID) {
	m.request_id = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *BloodDonationMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldRequestID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *BloodDonationMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[blooddonation.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *BloodDonationMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[blooddonation.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *BloodDonationMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, blooddonation.FieldRequestID)
}

// SetBloodType sets the "blood_type" field.
func (m *BloodDonationMutation) SetBloodType(bt blooddonation.BloodType) {
	m.blood_type = &bt
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *BloodDonationMutation) BloodType() (r blooddonation.BloodType, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldBloodType(ctx context.Context) (v blooddonation.BloodType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *BloodDonationMutation) ResetBloodType() {
	m.blood_type = nil
}

// SetUnits sets the "units" field.
func (m *BloodDonationMutation) SetUnits(i int) {
	m.units = &i
	m.addunits = nil
}

// Units returns the value of the "units" field in the mutation.
func (m *BloodDonationMutation) Units() (r int, exists bool) {
	v := m.units
	if v == nil {
		return
	}
	return *v, true
}

// OldUnits returns the old "units" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldUnits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnits: %w", err)
	}
	return oldValue.Units, nil
}

// AddUnits adds i to the "units" field.
func (m *BloodDonationMutation) AddUnits(i int) {
	if m.addunits != nil {
		*m.addunits += i
	} else {
		m.addunits = &i
	}
}

// AddedUnits returns the value that was added to the "units" field in this mutation.
func (m *BloodDonationMutation) AddedUnits() (r int, exists bool) {
	v := m.addunits
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnits resets all changes to the "units" field.
func (m *BloodDonationMutation) ResetUnits() {
	m.units = nil
	m.addunits = nil
}

// SetDonatedAt sets the "donated_at" field.
func (m *BloodDonationMutation) SetDonatedAt(t time.Time) {
	m.donated_at = &t
}

// DonatedAt returns the value of the "donated_at" field in the mutation.
func (m *BloodDonationMutation) DonatedAt() (r time.Time, exists bool) {
	v := m.donated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDonatedAt returns the old "donated_at" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldDonatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonatedAt: %w", err)
	}
	return oldValue.DonatedAt, nil
}

// ResetDonatedAt resets all changes to the "donated_at" field.
func (m *BloodDonationMutation) ResetDonatedAt() {
	m.donated_at = nil
}

// SetLocation sets the "location" field.
func (m *BloodDonationMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *BloodDonationMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the BloodDonation entity.
// If the BloodDonation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodDonationMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *BloodDonationMutation) ResetLocation() {
	m.location = nil
}

// Where appends a list predicates to the BloodDonationMutation builder.
func (m *BloodDonationMutation) Where(ps ...predicate.BloodDonation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BloodDonationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BloodDonationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BloodDonation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BloodDonationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BloodDonationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BloodDonation).
func (m *BloodDonationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BloodDonationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, blooddonation.FieldCreatedAt)
	}
	if m.donor_id != nil {
		fields = append(fields, blooddonation.FieldDonorID)
	}
	if m.request_id != nil {
		fields = append(fields, blooddonation.FieldRequestID)
	}
	if m.blood_type != nil {
		fields = append(fields, blooddonation.FieldBloodType)
	}
	if m.units != nil {
		fields = append(fields, blooddonation.FieldUnits)
	}
	if m.donated_at != nil {
		fields = append(fields, blooddonation.FieldDonatedAt)
	}
	if m.location != nil {
		fields = append(fields, blooddonation.FieldLocation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BloodDonationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blooddonation.FieldCreatedAt:
		return m.CreatedAt()
	case blooddonation.FieldDonorID:
		return m.DonorID()
	case blooddonation.FieldRequestID:
		return m.RequestID()
	case blooddonation.FieldBloodType:
		return m.BloodType()
	case blooddonation.FieldUnits:
		return m.Units()
	case blooddonation.FieldDonatedAt:
		return m.DonatedAt()
	case blooddonation.FieldLocation:
		return m.Location()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BloodDonationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blooddonation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blooddonation.FieldDonorID:
		return m.OldDonorID(ctx)
	case blooddonation.FieldRequestID:
		return m.OldRequestID(ctx)
	case blooddonation.FieldBloodType:
		return m.OldBloodType(ctx)
	case blooddonation.FieldUnits:
		return m.OldUnits(ctx)
	case blooddonation.FieldDonatedAt:
		return m.OldDonatedAt(ctx)
	case blooddonation.FieldLocation:
		return m.OldLocation(ctx)
	}
	return nil, fmt.Errorf("unknown BloodDonation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BloodDonationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blooddonation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blooddonation.FieldDonorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonorID(v)
		return nil
	case blooddonation.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case blooddonation.FieldBloodType:
		v, ok := value.(blooddonation.BloodType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case blooddonation.FieldUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnits(v)
		return nil
	case blooddonation.FieldDonatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonatedAt(v)
		return nil
	case blooddonation.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	}
	return fmt.Errorf("unknown BloodDonation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BloodDonationMutation) AddedFields() []string {
	var fields []string
	if m.addunits != nil {
		fields = append(fields, blooddonation.FieldUnits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BloodDonationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blooddonation.FieldUnits:
		return m.AddedUnits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BloodDonationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blooddonation.FieldUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnits(v)
		return nil
	}
	return fmt.Errorf("unknown BloodDonation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BloodDonationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blooddonation.FieldRequestID) {
		fields = append(fields, blooddonation.FieldRequestID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BloodDonationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BloodDonationMutation) ClearField(name string) error {
	switch name {
	case blooddonation.FieldRequestID:
		m.ClearRequestID()
		return nil
	}
	return fmt.Errorf("unknown BloodDonation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BloodDonationMutation) ResetField(name string) error {
	switch name {
	case blooddonation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blooddonation.FieldDonorID:
		m.ResetDonorID()
		return nil
	case blooddonation.FieldRequestID:
		m.ResetRequestID()
		return nil
	case blooddonation.FieldBloodType:
		m.ResetBloodType()
		return nil
	case blooddonation.FieldUnits:
		m.ResetUnits()
		return nil
	case blooddonation.FieldDonatedAt:
		m.ResetDonatedAt()
		return nil
	case blooddonation.FieldLocation:
		m.ResetLocation()
		return nil
	}
	return fmt.Errorf("unknown BloodDonation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BloodDonationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BloodDonationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BloodDonationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BloodDonationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BloodDonationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BloodDonationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BloodDonationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BloodDonation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BloodDonationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BloodDonation edge %s", name)
}

// BloodRequestMutation represents an operation that mutates the BloodRequest nodes in the graph.
type BloodRequestMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	requester_id       *uuid.UUID
	patient_name       *string
	blood_type         *bloodrequest.BloodType
	units_needed       *int
	addunits_needed    *int
	units_fulfilled    *int
	addunits_fulfilled *int
	hospital           *string
	city               *string
	urgency            *bloodrequest.Urgency
	status             *bloodrequest.Status
	contact_phone      *string
	needed_by          *time.Time
	notes              *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*BloodRequest, error)
	predicates         []predicate.BloodRequest
}

var _ ent.Mutation = (*BloodRequestMutation)(nil)

// bloodrequestOption allows management of the mutation configuration using functional options.
type bloodrequestOption func(*BloodRequestMutation)

// newBloodRequestMutation creates new mutation for the BloodRequest entity.
func newBloodRequestMutation(c config, op Op, opts ...bloodrequestOption) *BloodRequestMutation {
	m := &BloodRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeBloodRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBloodRequestID sets the ID field of the mutation.
func withBloodRequestID(id uuid.UUID) bloodrequestOption {
	return func(m *BloodRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *BloodRequest
		)
		m.oldValue = func(ctx context.Context) (*BloodRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BloodRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBloodRequest sets the old BloodRequest of the mutation.
func withBloodRequest(node *BloodRequest) bloodrequestOption {
	return func(m *BloodRequestMutation) {
		m.oldValue = func(context.Context) (*BloodRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BloodRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BloodRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BloodRequest entities.
func (m *BloodRequestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BloodRequestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BloodRequestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BloodRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BloodRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BloodRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BloodRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BloodRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BloodRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BloodRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRequesterID sets the "requester_id" field.
func (m *BloodRequestMutation) SetRequesterID(u uuid.UUID) {
	m.requester_id = &u
}

// RequesterID returns the value of the "requester_id" field in the mutation.
func (m *BloodRequestMutation) RequesterID() (r uuid.UUID, exists bool) {
	v := m.requester_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesterID returns the old "requester_id" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldRequesterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesterID: %w", err)
	}
	return oldValue.RequesterID, nil
}

// ResetRequesterID resets all changes to the "requester_id" field.
func (m *BloodRequestMutation) ResetRequesterID() {
	m.requester_id = nil
}

// SetPatientName sets the "patient_name" field.
func (m *BloodRequestMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *BloodRequestMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *BloodRequestMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetBloodType sets the "blood_type" field.
func (m *BloodRequestMutation) SetBloodType(bt bloodrequest.BloodType) {
	m.blood_type = &bt
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *BloodRequestMutation) BloodType() (r bloodrequest.BloodType, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldBloodType(ctx context.Context) (v bloodrequest.BloodType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *BloodRequestMutation) ResetBloodType() {
	m.blood_type = nil
}

// SetUnitsNeeded sets the "units_needed" field.
func (m *BloodRequestMutation) SetUnitsNeeded(i int) {
	m.units_needed = &i
	m.addunits_needed = nil
}

// UnitsNeeded returns the value of the "units_needed" field in the mutation.
func (m *BloodRequestMutation) UnitsNeeded() (r int, exists bool) {
	v := m.units_needed
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitsNeeded returns the old "units_needed" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldUnitsNeeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitsNeeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitsNeeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitsNeeded: %w", err)
	}
	return oldValue.UnitsNeeded, nil
}

// AddUnitsNeeded adds i to the "units_needed" field.
func (m *BloodRequestMutation) AddUnitsNeeded(i int) {
	if m.addunits_needed != nil {
		*m.addunits_needed += i
	} else {
		m.addunits_needed = &i
	}
}

// AddedUnitsNeeded returns the value that was added to the "units_needed" field in this mutation.
func (m *BloodRequestMutation) AddedUnitsNeeded() (r int, exists bool) {
	v := m.addunits_needed
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitsNeeded resets all changes to the "units_needed" field.
func (m *BloodRequestMutation) ResetUnitsNeeded() {
	m.units_needed = nil
	m.addunits_needed = nil
}

// SetUnitsFulfilled sets the "units_fulfilled" field.
func (m *BloodRequestMutation) SetUnitsFulfilled(i int) {
	m.units_fulfilled = &i
	m.addunits_fulfilled = nil
}

// UnitsFulfilled returns the value of the "units_fulfilled" field in the mutation.
func (m *BloodRequestMutation) UnitsFulfilled() (r int, exists bool) {
	v := m.units_fulfilled
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitsFulfilled returns the old "units_fulfilled" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldUnitsFulfilled(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitsFulfilled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitsFulfilled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitsFulfilled: %w", err)
	}
	return oldValue.UnitsFulfilled, nil
}

// AddUnitsFulfilled adds i to the "units_fulfilled" field.
func (m *BloodRequestMutation) AddUnitsFulfilled(i int) {
	if m.addunits_fulfilled != nil {
		*m.addunits_fulfilled += i
	} else {
		m.addunits_fulfilled = &i
	}
}

// AddedUnitsFulfilled returns the value that was added to the "units_fulfilled" field in this mutation.
func (m *BloodRequestMutation) AddedUnitsFulfilled() (r int, exists bool) {
	v := m.addunits_fulfilled
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitsFulfilled resets all changes to the "units_fulfilled" field.
func (m *BloodRequestMutation) ResetUnitsFulfilled() {
	m.units_fulfilled = nil
	m.addunits_fulfilled = nil
}

// SetHospital sets the "hospital" field.
func (m *BloodRequestMutation) SetHospital(s string) {
	m.hospital = &s
}

// Hospital returns the value of the "hospital" field in the mutation.
func (m *BloodRequestMutation) Hospital() (r string, exists bool) {
	v := m.hospital
	if v == nil {
		return
	}
	return *v, true
}

// OldHospital returns the old "hospital" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldHospital(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospital is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospital requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospital: %w", err)
	}
	return oldValue.Hospital, nil
}

// ResetHospital resets all changes to the "hospital" field.
func (m *BloodRequestMutation) ResetHospital() {
	m.hospital = nil
}

// SetCity sets the "city" field.
func (m *BloodRequestMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *BloodRequestMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *BloodRequestMutation) ResetCity() {
	m.city = nil
}

// SetUrgency sets the "urgency" field.
func (m *BloodRequestMutation) SetUrgency(b bloodrequest.Urgency) {
	m.urgency = &b
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *BloodRequestMutation) Urgency() (r bloodrequest.Urgency, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldUrgency(ctx context.Context) (v bloodrequest.Urgency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *BloodRequestMutation) ResetUrgency() {
	m.urgency = nil
}

// SetStatus sets the "status" field.
func (m *BloodRequestMutation) SetStatus(b bloodrequest.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BloodRequestMutation) Status() (r bloodrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldStatus(ctx context.Context) (v bloodrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BloodRequestMutation) ResetStatus() {
	m.status = nil
}

// SetContactPhone sets the "contact_phone" field.
func (m *BloodRequestMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *BloodRequestMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *BloodRequestMutation) ResetContactPhone() {
	m.contact_phone = nil
}

// SetNeededBy sets the "needed_by" field.
func (m *BloodRequestMutation) SetNeededBy(t time.Time) {
	m.needed_by = &t
}

// NeededBy returns the value of the "needed_by" field in the mutation.
func (m *BloodRequestMutation) NeededBy() (r time.Time, exists bool) {
	v := m.needed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldNeededBy returns the old "needed_by" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldNeededBy(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeededBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeededBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeededBy: %w", err)
	}
	return oldValue.NeededBy, nil
}

// ClearNeededBy clears the value of the "needed_by" field.
func (m *BloodRequestMutation) ClearNeededBy() {
	m.needed_by = nil
	m.clearedFields[bloodrequest.FieldNeededBy] = struct{}{}
}

// NeededByCleared returns if the "needed_by" field was cleared in this mutation.
func (m *BloodRequestMutation) NeededByCleared() bool {
	_, ok := m.clearedFields[bloodrequest.FieldNeededBy]
	return ok
}

// ResetNeededBy resets all changes to the "needed_by" field.
func (m *BloodRequestMutation) ResetNeededBy() {
	m.needed_by = nil
	delete(m.clearedFields, bloodrequest.FieldNeededBy)
}

// SetNotes sets the "notes" field.
func (m *BloodRequestMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *BloodRequestMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the BloodRequest entity.
// If the BloodRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BloodRequestMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *BloodRequestMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[bloodrequest.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *BloodRequestMutation) NotesCleared() bool {
	_, ok := m.clearedFields[bloodrequest.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *BloodRequestMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, bloodrequest.FieldNotes)
}

// Where appends a list predicates to the BloodRequestMutation builder.
func (m *BloodRequestMutation) Where(ps ...predicate.BloodRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BloodRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BloodRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BloodRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BloodRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BloodRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BloodRequest).
func (m *BloodRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BloodRequestMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, bloodrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bloodrequest.FieldUpdatedAt)
	}
	if m.requester_id != nil {
		fields = append(fields, bloodrequest.FieldRequesterID)
	}
	if m.patient_name != nil {
		fields = append(fields, bloodrequest.FieldPatientName)
	}
	if m.blood_type != nil {
		fields = append(fields, bloodrequest.FieldBloodType)
	}
	if m.units_needed != nil {
		fields = append(fields, bloodrequest.FieldUnitsNeeded)
	}
	if m.units_fulfilled != nil {
		fields = append(fields, bloodrequest.FieldUnitsFulfilled)
	}
	if m.hospital != nil {
		fields = append(fields, bloodrequest.FieldHospital)
	}
	if m.city != nil {
		fields = append(fields, bloodrequest.FieldCity)
	}
	if m.urgency != nil {
		fields = append(fields, bloodrequest.FieldUrgency)
	}
	if m.status != nil {
		fields = append(fields, bloodrequest.FieldStatus)
	}
	if m.contact_phone != nil {
		fields = append(fields, bloodrequest.FieldContactPhone)
	}
	if m.needed_by != nil {
		fields = append(fields, bloodrequest.FieldNeededBy)
	}
	if m.notes != nil {
		fields = append(fields, bloodrequest.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BloodRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bloodrequest.FieldCreatedAt:
		return m.CreatedAt()
	case bloodrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case bloodrequest.FieldRequesterID:
		return m.RequesterID()
	case bloodrequest.FieldPatientName:
		return m.PatientName()
	case bloodrequest.FieldBloodType:
		return m.BloodType()
	case bloodrequest.FieldUnitsNeeded:
		return m.UnitsNeeded()
	case bloodrequest.FieldUnitsFulfilled:
		return m.UnitsFulfilled()
	case bloodrequest.FieldHospital:
		return m.Hospital()
	case bloodrequest.FieldCity:
		return m.City()
	case bloodrequest.FieldUrgency:
		return m.Urgency()
	case bloodrequest.FieldStatus:
		return m.Status()
	case bloodrequest.FieldContactPhone:
		return m.ContactPhone()
	case bloodrequest.FieldNeededBy:
		return m.NeededBy()
	case bloodrequest.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BloodRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bloodrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bloodrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case bloodrequest.FieldRequesterID:
		return m.OldRequesterID(ctx)
	case bloodrequest.FieldPatientName:
		return m.OldPatientName(ctx)
	case bloodrequest.FieldBloodType:
		return m.OldBloodType(ctx)
	case bloodrequest.FieldUnitsNeeded:
		return m.OldUnitsNeeded(ctx)
	case bloodrequest.FieldUnitsFulfilled:
		return m.OldUnitsFulfilled(ctx)
	case bloodrequest.FieldHospital:
		return m.OldHospital(ctx)
	case bloodrequest.FieldCity:
		return m.OldCity(ctx)
	case bloodrequest.FieldUrgency:
		return m.OldUrgency(ctx)
	case bloodrequest.FieldStatus:
		return m.OldStatus(ctx)
	case bloodrequest.FieldContactPhone:
		return m.OldContactPhone(ctx)
	case bloodrequest.FieldNeededBy:
		return m.OldNeededBy(ctx)
	case bloodrequest.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown BloodRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BloodRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bloodrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bloodrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case bloodrequest.FieldRequesterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesterID(v)
		return nil
	case bloodrequest.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case bloodrequest.FieldBloodType:
		v, ok := value.(bloodrequest.BloodType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case bloodrequest.FieldUnitsNeeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitsNeeded(v)
		return nil
	case bloodrequest.FieldUnitsFulfilled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitsFulfilled(v)
		return nil
	case bloodrequest.FieldHospital:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospital(v)
		return nil
	case bloodrequest.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case bloodrequest.FieldUrgency:
		v, ok := value.(bloodrequest.Urgency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case bloodrequest.FieldStatus:
		v, ok := value.(bloodrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bloodrequest.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	case bloodrequest.FieldNeededBy:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeededBy(v)
		return nil
	case bloodrequest.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown BloodRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BloodRequestMutation) AddedFields() []string {
	var fields []string
	if m.addunits_needed != nil {
		fields = append(fields, bloodrequest.FieldUnitsNeeded)
	}
	if m.addunits_fulfilled != nil {
		fields = append(fields, bloodrequest.FieldUnitsFulfilled)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BloodRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bloodrequest.FieldUnitsNeeded:
		return m.AddedUnitsNeeded()
	case bloodrequest.FieldUnitsFulfilled:
		return m.AddedUnitsFulfilled()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BloodRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bloodrequest.FieldUnitsNeeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitsNeeded(v)
		return nil
	case bloodrequest.FieldUnitsFulfilled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitsFulfilled(v)
		return nil
	}
	return fmt.Errorf("unknown BloodRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BloodRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bloodrequest.FieldNeededBy) {
		fields = append(fields, bloodrequest.FieldNeededBy)
	}
	if m.FieldCleared(bloodrequest.FieldNotes) {
		fields = append(fields, bloodrequest.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BloodRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BloodRequestMutation) ClearField(name string) error {
	switch name {
	case bloodrequest.FieldNeededBy:
		m.ClearNeededBy()
		return nil
	case bloodrequest.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown BloodRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BloodRequestMutation) ResetField(name string) error {
	switch name {
	case bloodrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bloodrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case bloodrequest.FieldRequesterID:
		m.ResetRequesterID()
		return nil
	case bloodrequest.FieldPatientName:
		m.ResetPatientName()
		return nil
	case bloodrequest.FieldBloodType:
		m.ResetBloodType()
		return nil
	case bloodrequest.FieldUnitsNeeded:
		m.ResetUnitsNeeded()
		return nil
	case bloodrequest.FieldUnitsFulfilled:
		m.ResetUnitsFulfilled()
		return nil
	case bloodrequest.FieldHospital:
		m.ResetHospital()
		return nil
	case bloodrequest.FieldCity:
		m.ResetCity()
		return nil
	case bloodrequest.FieldUrgency:
		m.ResetUrgency()
		return nil
	case bloodrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case bloodrequest.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	case bloodrequest.FieldNeededBy:
		m.ResetNeededBy()
		return nil
	case bloodrequest.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown BloodRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BloodRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BloodRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BloodRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BloodRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BloodRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BloodRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BloodRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BloodRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BloodRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BloodRequest edge %s", name)
}

// DoctorMutation represents an operation that mutates the Doctor nodes in the graph.
type DoctorMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	user_id                 *uuid.UUID
	full_name               *string
	specialty               *string
	hospital                *string
	city                    *string
	consultation_fee        *int64
	addconsultation_fee     *int64
	accepted_insurers       *[]string
	appendaccepted_insurers []string
	rating                  *float64
	addrating               *float64
	review_count            *int
	addreview_count         *int
	years_experience        *int
	addyears_experience     *int
	bio                     *string
	avatar_url              *string
	video_visits            *bool
	accepting_patients      *bool
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Doctor, error)
	predicates              []predicate.Doctor
}

var _ ent.Mutation = (*DoctorMutation)(nil)

// doctorOption allows management of the mutation configuration using functional options.
type doctorOption func(*DoctorMutation)

// newDoctorMutation creates new mutation for the Doctor entity.
func newDoctorMutation(c config, op Op, opts ...doctorOption) *DoctorMutation {
	m := &DoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorID sets the ID field of the mutation.
func withDoctorID(id uuid.UUID) doctorOption {
	return func(m *DoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *Doctor
		)
		m.oldValue = func(ctx context.Context) (*Doctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Doctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctor sets the old Doctor of the mutation.
func withDoctor(node *Doctor) doctorOption {
	return func(m *DoctorMutation) {
		m.oldValue = func(context.Context) (*Doctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Doctor entities.
func (m *DoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Doctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DoctorMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DoctorMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DoctorMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[doctor.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DoctorMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[doctor.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DoctorMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, doctor.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *DoctorMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DoctorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUserID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *DoctorMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[doctor.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *DoctorMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[doctor.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DoctorMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, doctor.FieldUserID)
}

// SetFullName sets the "full_name" field.
func (m *DoctorMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *DoctorMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *DoctorMutation) ResetFullName() {
	m.full_name = nil
}

// SetSpecialty sets the "specialty" field.
func (m *DoctorMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *DoctorMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldSpecialty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *DoctorMutation) ResetSpecialty() {
	m.specialty = nil
}

// SetHospital sets the "hospital" field.
func (m *DoctorMutation) SetHospital(s string) {
	m.hospital = &s
}

// Hospital returns the value of the "hospital" field in the mutation.
func (m *DoctorMutation) Hospital() (r string, exists bool) {
	v := m.hospital
	if v == nil {
		return
	}
	return *v, true
}

// OldHospital returns the old "hospital" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldHospital(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospital is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospital requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospital: %w", err)
	}
	return oldValue.Hospital, nil
}

// ResetHospital resets all changes to the "hospital" field.
func (m *DoctorMutation) ResetHospital() {
	m.hospital = nil
}

// SetCity sets the "city" field.
func (m *DoctorMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *DoctorMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *DoctorMutation) ResetCity() {
	m.city = nil
}

// SetConsultationFee sets the "consultation_fee" field.
func (m *DoctorMutation) SetConsultationFee(i int64) {
	m.consultation_fee = &i
	m.addconsultation_fee = nil
}

// ConsultationFee returns the value of the "consultation_fee" field in the mutation.
func (m *DoctorMutation) ConsultationFee() (r int64, exists bool) {
	v := m.consultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationFee returns the old "consultation_fee" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldConsultationFee(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationFee: %w", err)
	}
	return oldValue.ConsultationFee, nil
}

// AddConsultationFee adds i to the "consultation_fee" field.
func (m *DoctorMutation) AddConsultationFee(i int64) {
	if m.addconsultation_fee != nil {
		*m.addconsultation_fee += i
	} else {
		m.addconsultation_fee = &i
	}
}

// AddedConsultationFee returns the value that was added to the "consultation_fee" field in this mutation.
func (m *DoctorMutation) AddedConsultationFee() (r int64, exists bool) {
	v := m.addconsultation_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultationFee resets all changes to the "consultation_fee" field.
func (m *DoctorMutation) ResetConsultationFee() {
	m.consultation_fee = nil
	m.addconsultation_fee = nil
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (m *DoctorMutation) SetAcceptedInsurers(s []string) {
	m.accepted_insurers = &s
	m.appendaccepted_insurers = nil
}

// AcceptedInsurers returns the value of the "accepted_insurers" field in the mutation.
func (m *DoctorMutation) AcceptedInsurers() (r []string, exists bool) {
	v := m.accepted_insurers
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedInsurers returns the old "accepted_insurers" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldAcceptedInsurers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedInsurers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedInsurers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedInsurers: %w", err)
	}
	return oldValue.AcceptedInsurers, nil
}

// AppendAcceptedInsurers adds s to the "accepted_insurers" field.
func (m *DoctorMutation) AppendAcceptedInsurers(s []string) {
	m.appendaccepted_insurers = append(m.appendaccepted_insurers, s...)
}

// AppendedAcceptedInsurers returns the list of values that were appended to the "accepted_insurers" field in this mutation.
func (m *DoctorMutation) AppendedAcceptedInsurers() ([]string, bool) {
	if len(m.appendaccepted_insurers) == 0 {
		return nil, false
	}
	return m.appendaccepted_insurers, true
}

// ClearAcceptedInsurers clears the value of the "accepted_insurers" field.
func (m *DoctorMutation) ClearAcceptedInsurers() {
	m.accepted_insurers = nil
	m.appendaccepted_insurers = nil
	m.clearedFields[doctor.FieldAcceptedInsurers] = struct{}{}
}

// AcceptedInsurersCleared returns if the "accepted_insurers" field was cleared in this mutation.
func (m *DoctorMutation) AcceptedInsurersCleared() bool {
	_, ok := m.clearedFields[doctor.FieldAcceptedInsurers]
	return ok
}

// ResetAcceptedInsurers resets all changes to the "accepted_insurers" field.
func (m *DoctorMutation) ResetAcceptedInsurers() {
	m.accepted_insurers = nil
	m.appendaccepted_insurers = nil
	delete(m.clearedFields, doctor.FieldAcceptedInsurers)
}

// SetRating sets the "rating" field.
func (m *DoctorMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *DoctorMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *DoctorMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *DoctorMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *DoctorMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetReviewCount sets the "review_count" field.
func (m *DoctorMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *DoctorMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *DoctorMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *DoctorMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *DoctorMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetYearsExperience sets the "years_experience" field.
func (m *DoctorMutation) SetYearsExperience(i int) {
	m.years_experience = &i
	m.addyears_experience = nil
}

// YearsExperience returns the value of the "years_experience" field in the mutation.
func (m *DoctorMutation) YearsExperience() (r int, exists bool) {
	v := m.years_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsExperience returns the old "years_experience" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldYearsExperience(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsExperience: %w", err)
	}
	return oldValue.YearsExperience, nil
}

// AddYearsExperience adds i to the "years_experience" field.
func (m *DoctorMutation) AddYearsExperience(i int) {
	if m.addyears_experience != nil {
		*m.addyears_experience += i
	} else {
		m.addyears_experience = &i
	}
}

// AddedYearsExperience returns the value that was added to the "years_experience" field in this mutation.
func (m *DoctorMutation) AddedYearsExperience() (r int, exists bool) {
	v := m.addyears_experience
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearsExperience resets all changes to the "years_experience" field.
func (m *DoctorMutation) ResetYearsExperience() {
	m.years_experience = nil
	m.addyears_experience = nil
}

// SetBio sets the "bio" field.
func (m *DoctorMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *DoctorMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldBio(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *DoctorMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[doctor.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *DoctorMutation) BioCleared() bool {
	_, ok := m.clearedFields[doctor.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *DoctorMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, doctor.FieldBio)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *DoctorMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *DoctorMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldAvatarURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *DoctorMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[doctor.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *DoctorMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[doctor.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *DoctorMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, doctor.FieldAvatarURL)
}

// SetVideoVisits sets the "video_visits" field.
func (m *DoctorMutation) SetVideoVisits(b bool) {
	m.video_visits = &b
}

// VideoVisits returns the value of the "video_visits" field in the mutation.
func (m *DoctorMutation) VideoVisits() (r bool, exists bool) {
	v := m.video_visits
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoVisits returns the old "video_visits" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldVideoVisits(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoVisits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoVisits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoVisits: %w", err)
	}
	return oldValue.VideoVisits, nil
}

// ResetVideoVisits resets all changes to the "video_visits" field.
func (m *DoctorMutation) ResetVideoVisits() {
	m.video_visits = nil
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (m *DoctorMutation) SetAcceptingPatients(b bool) {
	m.accepting_patients = &b
}

// AcceptingPatients returns the value of the "accepting_patients" field in the mutation.
func (m *DoctorMutation) AcceptingPatients() (r bool, exists bool) {
	v := m.accepting_patients
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptingPatients returns the old "accepting_patients" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldAcceptingPatients(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptingPatients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptingPatients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptingPatients: %w", err)
	}
	return oldValue.AcceptingPatients, nil
}

// ResetAcceptingPatients resets all changes to the "accepting_patients" field.
func (m *DoctorMutation) ResetAcceptingPatients() {
	m.accepting_patients = nil
}

// Where appends a list predicates to the DoctorMutation builder.
func (m *DoctorMutation) Where(ps ...predicate.Doctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Doctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Doctor).
func (m *DoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, doctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctor.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, doctor.FieldDeletedAt)
	}
	if m.user_id != nil {
		fields = append(fields, doctor.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, doctor.FieldFullName)
	}
	if m.specialty != nil {
		fields = append(fields, doctor.FieldSpecialty)
	}
	if m.hospital != nil {
		fields = append(fields, doctor.FieldHospital)
	}
	if m.city != nil {
		fields = append(fields, doctor.FieldCity)
	}
	if m.consultation_fee != nil {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	if m.accepted_insurers != nil {
		fields = append(fields, doctor.FieldAcceptedInsurers)
	}
	if m.rating != nil {
		fields = append(fields, doctor.FieldRating)
	}
	if m.review_count != nil {
		fields = append(fields, doctor.FieldReviewCount)
	}
	if m.years_experience != nil {
		fields = append(fields, doctor.FieldYearsExperience)
	}
	if m.bio != nil {
		fields = append(fields, doctor.FieldBio)
	}
	if m.avatar_url != nil {
		fields = append(fields, doctor.FieldAvatarURL)
	}
	if m.video_visits != nil {
		fields = append(fields, doctor.FieldVideoVisits)
	}
	if m.accepting_patients != nil {
		fields = append(fields, doctor.FieldAcceptingPatients)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.CreatedAt()
	case doctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctor.FieldDeletedAt:
		return m.DeletedAt()
	case doctor.FieldUserID:
		return m.UserID()
	case doctor.FieldFullName:
		return m.FullName()
	case doctor.FieldSpecialty:
		return m.Specialty()
	case doctor.FieldHospital:
		return m.Hospital()
	case doctor.FieldCity:
		return m.City()
	case doctor.FieldConsultationFee:
		return m.ConsultationFee()
	case doctor.FieldAcceptedInsurers:
		return m.AcceptedInsurers()
	case doctor.FieldRating:
		return m.Rating()
	case doctor.FieldReviewCount:
		return m.ReviewCount()
	case doctor.FieldYearsExperience:
		return m.YearsExperience()
	case doctor.FieldBio:
		return m.Bio()
	case doctor.FieldAvatarURL:
		return m.AvatarURL()
	case doctor.FieldVideoVisits:
		return m.VideoVisits()
	case doctor.FieldAcceptingPatients:
		return m.AcceptingPatients()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctor.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case doctor.FieldUserID:
		return m.OldUserID(ctx)
	case doctor.FieldFullName:
		return m.OldFullName(ctx)
	case doctor.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case doctor.FieldHospital:
		return m.OldHospital(ctx)
	case doctor.FieldCity:
		return m.OldCity(ctx)
	case doctor.FieldConsultationFee:
		return m.OldConsultationFee(ctx)
	case doctor.FieldAcceptedInsurers:
		return m.OldAcceptedInsurers(ctx)
	case doctor.FieldRating:
		return m.OldRating(ctx)
	case doctor.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case doctor.FieldYearsExperience:
		return m.OldYearsExperience(ctx)
	case doctor.FieldBio:
		return m.OldBio(ctx)
	case doctor.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case doctor.FieldVideoVisits:
		return m.OldVideoVisits(ctx)
	case doctor.FieldAcceptingPatients:
		return m.OldAcceptingPatients(ctx)
	}
	return nil, fmt.Errorf("unknown Doctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctor.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case doctor.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case doctor.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case doctor.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case doctor.FieldHospital:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospital(v)
		return nil
	case doctor.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case doctor.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationFee(v)
		return nil
	case doctor.FieldAcceptedInsurers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedInsurers(v)
		return nil
	case doctor.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case doctor.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case doctor.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsExperience(v)
		return nil
	case doctor.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case doctor.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case doctor.FieldVideoVisits:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoVisits(v)
		return nil
	case doctor.FieldAcceptingPatients:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptingPatients(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorMutation) AddedFields() []string {
	var fields []string
	if m.addconsultation_fee != nil {
		fields = append(fields, doctor.FieldConsultationFee)
	}
	if m.addrating != nil {
		fields = append(fields, doctor.FieldRating)
	}
	if m.addreview_count != nil {
		fields = append(fields, doctor.FieldReviewCount)
	}
	if m.addyears_experience != nil {
		fields = append(fields, doctor.FieldYearsExperience)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldConsultationFee:
		return m.AddedConsultationFee()
	case doctor.FieldRating:
		return m.AddedRating()
	case doctor.FieldReviewCount:
		return m.AddedReviewCount()
	case doctor.FieldYearsExperience:
		return m.AddedYearsExperience()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldConsultationFee:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultationFee(v)
		return nil
	case doctor.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case doctor.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case doctor.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsExperience(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctor.FieldDeletedAt) {
		fields = append(fields, doctor.FieldDeletedAt)
	}
	if m.FieldCleared(doctor.FieldUserID) {
		fields = append(fields, doctor.FieldUserID)
	}
	if m.FieldCleared(doctor.FieldAcceptedInsurers) {
		fields = append(fields, doctor.FieldAcceptedInsurers)
	}
	if m.FieldCleared(doctor.FieldBio) {
		fields = append(fields, doctor.FieldBio)
	}
	if m.FieldCleared(doctor.FieldAvatarURL) {
		fields = append(fields, doctor.FieldAvatarURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorMutation) ClearField(name string) error {
	switch name {
	case doctor.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case doctor.FieldUserID:
		m.ClearUserID()
		return nil
	case doctor.FieldAcceptedInsurers:
		m.ClearAcceptedInsurers()
		return nil
	case doctor.FieldBio:
		m.ClearBio()
		return nil
	case doctor.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	}
	return fmt.Errorf("unknown Doctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorMutation) ResetField(name string) error {
	switch name {
	case doctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctor.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case doctor.FieldUserID:
		m.ResetUserID()
		return nil
	case doctor.FieldFullName:
		m.ResetFullName()
		return nil
	case doctor.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case doctor.FieldHospital:
		m.ResetHospital()
		return nil
	case doctor.FieldCity:
		m.ResetCity()
		return nil
	case doctor.FieldConsultationFee:
		m.ResetConsultationFee()
		return nil
	case doctor.FieldAcceptedInsurers:
		m.ResetAcceptedInsurers()
		return nil
	case doctor.FieldRating:
		m.ResetRating()
		return nil
	case doctor.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case doctor.FieldYearsExperience:
		m.ResetYearsExperience()
		return nil
	case doctor.FieldBio:
		m.ResetBio()
		return nil
	case doctor.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case doctor.FieldVideoVisits:
		m.ResetVideoVisits()
		return nil
	case doctor.FieldAcceptingPatients:
		m.ResetAcceptingPatients()
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Doctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Doctor edge %s", name)
}

// DonationMutation represents an operation that mutates the Donation nodes in the graph.
type DonationMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	initiative_id     *uuid.UUID
	donor_id          *uuid.UUID
	amount            *int64
	addamount         *int64
	anonymous         *bool
	message           *string
	receipt_reference *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Donation, error)
	predicates        []predicate.Donation
}

var _ ent.Mutation = (*DonationMutation)(nil)

// donationOption allows management of the mutation configuration using functional options.
type donationOption func(*DonationMutation)

// newDonationMutation creates new mutation for the Donation entity.
func newDonationMutation(c config, op Op, opts ...donationOption) *DonationMutation {
	m := &DonationMutation{
		config:        c,
		op:            op,
		typ:           TypeDonation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDonationID sets the ID field of the mutation.
func withDonationID(id uuid.UUID) donationOption {
	return func(m *DonationMutation) {
		var (
			err   error
			once  sync.Once
			value *Donation
		)
		m.oldValue = func(ctx context.Context) (*Donation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Donation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDonation sets the old Donation of the mutation.
func withDonation(node *Donation) donationOption {
	return func(m *DonationMutation) {
		m.oldValue = func(context.Context) (*Donation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DonationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DonationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Donation entities.
func (m *DonationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DonationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DonationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Donation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DonationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DonationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DonationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetInitiativeID sets the "initiative_id" field.
func (m *DonationMutation) SetInitiativeID(u uuid.UUID) {
	m.initiative_id = &u
}

// InitiativeID returns the value of the "initiative_id" field in the mutation.
func (m *DonationMutation) InitiativeID() (r uuid.UUID, exists bool) {
	v := m.initiative_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiativeID returns the old "initiative_id" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldInitiativeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiativeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiativeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiativeID: %w", err)
	}
	return oldValue.InitiativeID, nil
}

// ResetInitiativeID resets all changes to the "initiative_id" field.
func (m *DonationMutation) ResetInitiativeID() {
	m.initiative_id = nil
}

// SetDonorID sets the "donor_id" field.
func (m *DonationMutation) SetDonorID(u uuid.UUID) {
	m.donor_id = &u
}

// DonorID returns the value of the "donor_id" field in the mutation.
func (m *DonationMutation) DonorID() (r uuid.UUID, exists bool) {
	v := m.donor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDonorID returns the old "donor_id" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldDonorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonorID: %w", err)
	}
	return oldValue.DonorID, nil
}

// ClearDonorID clears the value of the "donor_id" field.
func (m *DonationMutation) ClearDonorID() {
	m.donor_id = nil
	m.clearedFields[donation.FieldDonorID] = struct{}{}
}

// DonorIDCleared returns if the "donor_id" field was cleared in this mutation.
func (m *DonationMutation) DonorIDCleared() bool {
	_, ok := m.clearedFields[donation.FieldDonorID]
	return ok
}

// ResetDonorID resets all changes to the "donor_id" field.
func (m *DonationMutation) ResetDonorID() {
	m.donor_id = nil
	delete(m.clearedFields, donation.FieldDonorID)
}

// SetAmount sets the "amount" field.
func (m *DonationMutation) SetAmount(i int64) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *DonationMutation) Amount() (r int64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *DonationMutation) AddAmount(i int64) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *DonationMutation) AddedAmount() (r int64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *DonationMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetAnonymous sets the "anonymous" field.
func (m *DonationMutation) SetAnonymous(b bool) {
	m.anonymous = &b
}

// Anonymous returns the value of the "anonymous" field in the mutation.
func (m *DonationMutation) Anonymous() (r bool, exists bool) {
	v := m.anonymous
	if v == nil {
		return
	}
	return *v, true
}

// OldAnonymous returns the old "anonymous" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldAnonymous(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnonymous is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnonymous requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnonymous: %w", err)
	}
	return oldValue.Anonymous, nil
}

// ResetAnonymous resets all changes to the "anonymous" field.
func (m *DonationMutation) ResetAnonymous() {
	m.anonymous = nil
}

// SetMessage sets the "message" field.
func (m *DonationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *DonationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *DonationMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[donation.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *DonationMutation) MessageCleared() bool {
	_, ok := m.clearedFields[donation.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *DonationMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, donation.FieldMessage)
}

// SetReceiptReference sets the "receipt_reference" field.
func (m *DonationMutation) SetReceiptReference(s string) {
	m.receipt_reference = &s
}

// ReceiptReference returns the value of the "receipt_reference" field in the mutation.
func (m *DonationMutation) ReceiptReference() (r string, exists bool) {
	v := m.receipt_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptReference returns the old "receipt_reference" field's value of the Donation entity.
// If the Donation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationMutation) OldReceiptReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptReference: %w", err)
	}
	return oldValue.ReceiptReference, nil
}

// ResetReceiptReference resets all changes to the "receipt_reference" field.
func (m *DonationMutation) ResetReceiptReference() {
	m.receipt_reference = nil
}

// Where appends a list predicates to the DonationMutation builder.
func (m *DonationMutation) Where(ps ...predicate.Donation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DonationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DonationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Donation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DonationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DonationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Donation).
func (m *DonationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DonationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, donation.FieldCreatedAt)
	}
	if m.initiative_id != nil {
		fields = append(fields, donation.FieldInitiativeID)
	}
	if m.donor_id != nil {
		fields = append(fields, donation.FieldDonorID)
	}
	if m.amount != nil {
		fields = append(fields, donation.FieldAmount)
	}
	if m.anonymous != nil {
		fields = append(fields, donation.FieldAnonymous)
	}
	if m.message != nil {
		fields = append(fields, donation.FieldMessage)
	}
	if m.receipt_reference != nil {
		fields = append(fields, donation.FieldReceiptReference)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DonationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case donation.FieldCreatedAt:
		return m.CreatedAt()
	case donation.FieldInitiativeID:
		return m.InitiativeID()
	case donation.FieldDonorID:
		return m.DonorID()
	case donation.FieldAmount:
		return m.Amount()
	case donation.FieldAnonymous:
		return m.Anonymous()
	case donation.FieldMessage:
		return m.Message()
	case donation.FieldReceiptReference:
		return m.ReceiptReference()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DonationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case donation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case donation.FieldInitiativeID:
		return m.OldInitiativeID(ctx)
	case donation.FieldDonorID:
		return m.OldDonorID(ctx)
	case donation.FieldAmount:
		return m.OldAmount(ctx)
	case donation.FieldAnonymous:
		return m.OldAnonymous(ctx)
	case donation.FieldMessage:
		return m.OldMessage(ctx)
	case donation.FieldReceiptReference:
		return m.OldReceiptReference(ctx)
	}
	return nil, fmt.Errorf("unknown Donation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DonationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case donation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case donation.FieldInitiativeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiativeID(v)
		return nil
	case donation.FieldDonorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonorID(v)
		return nil
	case donation.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case donation.FieldAnonymous:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnonymous(v)
		return nil
	case donation.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case donation.FieldReceiptReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptReference(v)
		return nil
	}
	return fmt.Errorf("unknown Donation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DonationMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, donation.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DonationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case donation.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DonationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case donation.FieldAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Donation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DonationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(donation.FieldDonorID) {
		fields = append(fields, donation.FieldDonorID)
	}
	if m.FieldCleared(donation.FieldMessage) {
		fields = append(fields, donation.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DonationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DonationMutation) ClearField(name string) error {
	switch name {
	case donation.FieldDonorID:
		m.ClearDonorID()
		return nil
	case donation.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown Donation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DonationMutation) ResetField(name string) error {
	switch name {
	case donation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case donation.FieldInitiativeID:
		m.ResetInitiativeID()
		return nil
	case donation.FieldDonorID:
		m.ResetDonorID()
		return nil
	case donation.FieldAmount:
		m.ResetAmount()
		return nil
	case donation.FieldAnonymous:
		m.ResetAnonymous()
		return nil
	case donation.FieldMessage:
		m.ResetMessage()
		return nil
	case donation.FieldReceiptReference:
		m.ResetReceiptReference()
		return nil
	}
	return fmt.Errorf("unknown Donation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DonationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DonationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DonationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DonationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DonationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DonationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DonationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Donation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DonationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Donation edge %s", name)
}

// DonationInitiativeMutation represents an operation that mutates the DonationInitiative nodes in the graph.
type DonationInitiativeMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	deleted_at       *time.Time
	organizer_id     *uuid.UUID
	title            *string
	description      *string
	category         *donationinitiative.Category
	goal_amount      *int64
	addgoal_amount   *int64
	raised_amount    *int64
	addraised_amount *int64
	donor_count      *int
	adddonor_count   *int
	status           *donationinitiative.Status
	ends_at          *time.Time
	image_url        *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DonationInitiative, error)
	predicates       []predicate.DonationInitiative
}

var _ ent.Mutation = (*DonationInitiativeMutation)(nil)

// donationinitiativeOption allows management of the mutation configuration using functional options.
type donationinitiativeOption func(*DonationInitiativeMutation)

// newDonationInitiativeMutation creates new mutation for the DonationInitiative entity.
func newDonationInitiativeMutation(c config, op Op, opts ...donationinitiativeOption) *DonationInitiativeMutation {
	m := &DonationInitiativeMutation{
		config:        c,
		op:            op,
		typ:           TypeDonationInitiative,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDonationInitiativeID sets the ID field of the mutation.
func withDonationInitiativeID(id uuid.UUID) donationinitiativeOption {
	return func(m *DonationInitiativeMutation) {
		var (
			err   error
			once  sync.Once
			value *DonationInitiative
		)
		m.oldValue = func(ctx context.Context) (*DonationInitiative, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DonationInitiative.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDonationInitiative sets the old DonationInitiative of the mutation.
func withDonationInitiative(node *DonationInitiative) donationinitiativeOption {
	return func(m *DonationInitiativeMutation) {
		m.oldValue = func(context.Context) (*DonationInitiative, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DonationInitiativeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DonationInitiativeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DonationInitiative entities.
func (m *DonationInitiativeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DonationInitiativeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DonationInitiativeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DonationInitiative.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DonationInitiativeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DonationInitiativeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DonationInitiativeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DonationInitiativeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DonationInitiativeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DonationInitiativeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DonationInitiativeMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DonationInitiativeMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DonationInitiativeMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[donationinitiative.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DonationInitiativeMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[donationinitiative.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DonationInitiativeMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, donationinitiative.FieldDeletedAt)
}

// SetOrganizerID sets the "organizer_id" field.
func (m *DonationInitiativeMutation) SetOrganizerID(u uuid.UUID) {
	m.organizer_id = &u
}

// OrganizerID returns the value of the "organizer_id" field in the mutation.
func (m *DonationInitiativeMutation) OrganizerID() (r uuid.UUID, exists bool) {
	v := m.organizer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizerID returns the old "organizer_id" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldOrganizerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizerID: %w", err)
	}
	return oldValue.OrganizerID, nil
}

// ResetOrganizerID resets all changes to the "organizer_id" field.
func (m *DonationInitiativeMutation) ResetOrganizerID() {
	m.organizer_id = nil
}

// SetTitle sets the "title" field.
func (m *DonationInitiativeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DonationInitiativeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DonationInitiativeMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *DonationInitiativeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DonationInitiativeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *DonationInitiativeMutation) ResetDescription() {
	m.description = nil
}

// SetCategory sets the "category" field.
func (m *DonationInitiativeMutation) SetCategory(d donationinitiative.Category) {
	m.category = &d
}

// Category returns the value of the "category" field in the mutation.
func (m *DonationInitiativeMutation) Category() (r donationinitiative.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldCategory(ctx context.Context) (v donationinitiative.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *DonationInitiativeMutation) ResetCategory() {
	m.category = nil
}

// SetGoalAmount sets the "goal_amount" field.
func (m *DonationInitiativeMutation) SetGoalAmount(i int64) {
	m.goal_amount = &i
	m.addgoal_amount = nil
}

// GoalAmount returns the value of the "goal_amount" field in the mutation.
func (m *DonationInitiativeMutation) GoalAmount() (r int64, exists bool) {
	v := m.goal_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalAmount returns the old "goal_amount" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldGoalAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalAmount: %w", err)
	}
	return oldValue.GoalAmount, nil
}

// AddGoalAmount adds i to the "goal_amount" field.
func (m *DonationInitiativeMutation) AddGoalAmount(i int64) {
	if m.addgoal_amount != nil {
		*m.addgoal_amount += i
	} else {
		m.addgoal_amount = &i
	}
}

// AddedGoalAmount returns the value that was added to the "goal_amount" field in this mutation.
func (m *DonationInitiativeMutation) AddedGoalAmount() (r int64, exists bool) {
	v := m.addgoal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetGoalAmount resets all changes to the "goal_amount" field.
func (m *DonationInitiativeMutation) ResetGoalAmount() {
	m.goal_amount = nil
	m.addgoal_amount = nil
}

// SetRaisedAmount sets the "raised_amount" field.
func (m *DonationInitiativeMutation) SetRaisedAmount(i int64) {
	m.raised_amount = &i
	m.addraised_amount = nil
}

// RaisedAmount returns the value of the "raised_amount" field in the mutation.
func (m *DonationInitiativeMutation) RaisedAmount() (r int64, exists bool) {
	v := m.raised_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldRaisedAmount returns the old "raised_amount" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldRaisedAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaisedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaisedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaisedAmount: %w", err)
	}
	return oldValue.RaisedAmount, nil
}

// AddRaisedAmount adds i to the "raised_amount" field.
func (m *DonationInitiativeMutation) AddRaisedAmount(i int64) {
	if m.addraised_amount != nil {
		*m.addraised_amount += i
	} else {
		m.addraised_amount = &i
	}
}

// AddedRaisedAmount returns the value that was added to the "raised_amount" field in this mutation.
func (m *DonationInitiativeMutation) AddedRaisedAmount() (r int64, exists bool) {
	v := m.addraised_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetRaisedAmount resets all changes to the "raised_amount" field.
func (m *DonationInitiativeMutation) ResetRaisedAmount() {
	m.raised_amount = nil
	m.addraised_amount = nil
}

// SetDonorCount sets the "donor_count" field.
func (m *DonationInitiativeMutation) SetDonorCount(i int) {
	m.donor_count = &i
	m.adddonor_count = nil
}

// DonorCount returns the value of the "donor_count" field in the mutation.
func (m *DonationInitiativeMutation) DonorCount() (r int, exists bool) {
	v := m.donor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDonorCount returns the old "donor_count" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldDonorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDonorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDonorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDonorCount: %w", err)
	}
	return oldValue.DonorCount, nil
}

// AddDonorCount adds i to the "donor_count" field.
func (m *DonationInitiativeMutation) AddDonorCount(i int) {
	if m.adddonor_count != nil {
		*m.adddonor_count += i
	} else {
		m.adddonor_count = &i
	}
}

// AddedDonorCount returns the value that was added to the "donor_count" field in this mutation.
func (m *DonationInitiativeMutation) AddedDonorCount() (r int, exists bool) {
	v := m.adddonor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDonorCount resets all changes to the "donor_count" field.
func (m *DonationInitiativeMutation) ResetDonorCount() {
	m.donor_count = nil
	m.adddonor_count = nil
}

// SetStatus sets the "status" field.
func (m *DonationInitiativeMutation) SetStatus(d donationinitiative.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DonationInitiativeMutation) Status() (r donationinitiative.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldStatus(ctx context.Context) (v donationinitiative.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DonationInitiativeMutation) ResetStatus() {
	m.status = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *DonationInitiativeMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *DonationInitiativeMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *DonationInitiativeMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[donationinitiative.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *DonationInitiativeMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[donationinitiative.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *DonationInitiativeMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, donationinitiative.FieldEndsAt)
}

// SetImageURL sets the "image_url" field.
func (m *DonationInitiativeMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *DonationInitiativeMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the DonationInitiative entity.
// If the DonationInitiative object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DonationInitiativeMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *DonationInitiativeMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[donationinitiative.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *DonationInitiativeMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[donationinitiative.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *DonationInitiativeMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, donationinitiative.FieldImageURL)
}

// Where appends a list predicates to the DonationInitiativeMutation builder.
func (m *DonationInitiativeMutation) Where(ps ...predicate.DonationInitiative) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DonationInitiativeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DonationInitiativeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DonationInitiative, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DonationInitiativeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DonationInitiativeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DonationInitiative).
func (m *DonationInitiativeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DonationInitiativeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, donationinitiative.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, donationinitiative.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, donationinitiative.FieldDeletedAt)
	}
	if m.organizer_id != nil {
		fields = append(fields, donationinitiative.FieldOrganizerID)
	}
	if m.title != nil {
		fields = append(fields, donationinitiative.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, donationinitiative.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, donationinitiative.FieldCategory)
	}
	if m.goal_amount != nil {
		fields = append(fields, donationinitiative.FieldGoalAmount)
	}
	if m.raised_amount != nil {
		fields = append(fields, donationinitiative.FieldRaisedAmount)
	}
	if m.donor_count != nil {
		fields = append(fields, donationinitiative.FieldDonorCount)
	}
	if m.status != nil {
		fields = append(fields, donationinitiative.FieldStatus)
	}
	if m.ends_at != nil {
		fields = append(fields, donationinitiative.FieldEndsAt)
	}
	if m.image_url != nil {
		fields = append(fields, donationinitiative.FieldImageURL)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DonationInitiativeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case donationinitiative.FieldCreatedAt:
		return m.CreatedAt()
	case donationinitiative.FieldUpdatedAt:
		return m.UpdatedAt()
	case donationinitiative.FieldDeletedAt:
		return m.DeletedAt()
	case donationinitiative.FieldOrganizerID:
		return m.OrganizerID()
	case donationinitiative.FieldTitle:
		return m.Title()
	case donationinitiative.FieldDescription:
		return m.Description()
	case donationinitiative.FieldCategory:
		return m.Category()
	case donationinitiative.FieldGoalAmount:
		return m.GoalAmount()
	case donationinitiative.FieldRaisedAmount:
		return m.RaisedAmount()
	case donationinitiative.FieldDonorCount:
		return m.DonorCount()
	case donationinitiative.FieldStatus:
		return m.Status()
	case donationinitiative.FieldEndsAt:
		return m.EndsAt()
	case donationinitiative.FieldImageURL:
		return m.ImageURL()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DonationInitiativeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case donationinitiative.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case donationinitiative.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case donationinitiative.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case donationinitiative.FieldOrganizerID:
		return m.OldOrganizerID(ctx)
	case donationinitiative.FieldTitle:
		return m.OldTitle(ctx)
	case donationinitiative.FieldDescription:
		return m.OldDescription(ctx)
	case donationinitiative.FieldCategory:
		return m.OldCategory(ctx)
	case donationinitiative.FieldGoalAmount:
		return m.OldGoalAmount(ctx)
	case donationinitiative.FieldRaisedAmount:
		return m.OldRaisedAmount(ctx)
	case donationinitiative.FieldDonorCount:
		return m.OldDonorCount(ctx)
	case donationinitiative.FieldStatus:
		return m.OldStatus(ctx)
	case donationinitiative.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case donationinitiative.FieldImageURL:
		return m.OldImageURL(ctx)
	}
	return nil, fmt.Errorf("unknown DonationInitiative field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DonationInitiativeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case donationinitiative.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case donationinitiative.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case donationinitiative.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case donationinitiative.FieldOrganizerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizerID(v)
		return nil
	case donationinitiative.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case donationinitiative.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case donationinitiative.FieldCategory:
		v, ok := value.(donationinitiative.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case donationinitiative.FieldGoalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalAmount(v)
		return nil
	case donationinitiative.FieldRaisedAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaisedAmount(v)
		return nil
	case donationinitiative.FieldDonorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDonorCount(v)
		return nil
	case donationinitiative.FieldStatus:
		v, ok := value.(donationinitiative.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case donationinitiative.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case donationinitiative.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	}
	return fmt.Errorf("unknown DonationInitiative field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DonationInitiativeMutation) AddedFields() []string {
	var fields []string
	if m.addgoal_amount != nil {
		fields = append(fields, donationinitiative.FieldGoalAmount)
	}
	if m.addraised_amount != nil {
		fields = append(fields, donationinitiative.FieldRaisedAmount)
	}
	if m.adddonor_count != nil {
		fields = append(fields, donationinitiative.FieldDonorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DonationInitiativeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case donationinitiative.FieldGoalAmount:
		return m.AddedGoalAmount()
	case donationinitiative.FieldRaisedAmount:
		return m.AddedRaisedAmount()
	case donationinitiative.FieldDonorCount:
		return m.AddedDonorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DonationInitiativeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case donationinitiative.FieldGoalAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoalAmount(v)
		return nil
	case donationinitiative.FieldRaisedAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRaisedAmount(v)
		return nil
	case donationinitiative.FieldDonorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDonorCount(v)
		return nil
	}
	return fmt.Errorf("unknown DonationInitiative numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DonationInitiativeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(donationinitiative.FieldDeletedAt) {
		fields = append(fields, donationinitiative.FieldDeletedAt)
	}
	if m.FieldCleared(donationinitiative.FieldEndsAt) {
		fields = append(fields, donationinitiative.FieldEndsAt)
	}
	if m.FieldCleared(donationinitiative.FieldImageURL) {
		fields = append(fields, donationinitiative.FieldImageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DonationInitiativeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DonationInitiativeMutation) ClearField(name string) error {
	switch name {
	case donationinitiative.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case donationinitiative.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	case donationinitiative.FieldImageURL:
		m.ClearImageURL()
		return nil
	}
	return fmt.Errorf("unknown DonationInitiative nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DonationInitiativeMutation) ResetField(name string) error {
	switch name {
	case donationinitiative.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case donationinitiative.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case donationinitiative.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case donationinitiative.FieldOrganizerID:
		m.ResetOrganizerID()
		return nil
	case donationinitiative.FieldTitle:
		m.ResetTitle()
		return nil
	case donationinitiative.FieldDescription:
		m.ResetDescription()
		return nil
	case donationinitiative.FieldCategory:
		m.ResetCategory()
		return nil
	case donationinitiative.FieldGoalAmount:
		m.ResetGoalAmount()
		return nil
	case donationinitiative.FieldRaisedAmount:
		m.ResetRaisedAmount()
		return nil
	case donationinitiative.FieldDonorCount:
		m.ResetDonorCount()
		return nil
	case donationinitiative.FieldStatus:
		m.ResetStatus()
		return nil
	case donationinitiative.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case donationinitiative.FieldImageURL:
		m.ResetImageURL()
		return nil
	}
	return fmt.Errorf("unknown DonationInitiative field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DonationInitiativeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DonationInitiativeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DonationInitiativeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DonationInitiativeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DonationInitiativeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DonationInitiativeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DonationInitiativeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DonationInitiative unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DonationInitiativeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DonationInitiative edge %s", name)
}

// EmergencyContactMutation represents an operation that mutates the EmergencyContact nodes in the graph.
type EmergencyContactMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	user_id       *uuid.UUID
	full_name     *string
	phone         *string
	relationship  *string
	is_primary    *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EmergencyContact, error)
	predicates    []predicate.EmergencyContact
}

var _ ent.Mutation = (*EmergencyContactMutation)(nil)

// emergencycontactOption allows management of the mutation configuration using functional options.
type emergencycontactOption func(*EmergencyContactMutation)

// newEmergencyContactMutation creates new mutation for the EmergencyContact entity.
func newEmergencyContactMutation(c config, op Op, opts ...emergencycontactOption) *EmergencyContactMutation {
	m := &EmergencyContactMutation{
		config:        c,
		op:            op,
		typ:           TypeEmergencyContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmergencyContactID sets the ID field of the mutation.
func withEmergencyContactID(id uuid.UUID) emergencycontactOption {
	return func(m *EmergencyContactMutation) {
		var (
			err   error
			once  sync.Once
			value *EmergencyContact
		)
		m.oldValue = func(ctx context.Context) (*EmergencyContact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmergencyContact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmergencyContact sets the old EmergencyContact of the mutation.
func withEmergencyContact(node *EmergencyContact) emergencycontactOption {
	return func(m *EmergencyContactMutation) {
		m.oldValue = func(context.Context) (*EmergencyContact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmergencyContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmergencyContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmergencyContact entities.
func (m *EmergencyContactMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmergencyContactMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmergencyContactMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmergencyContact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmergencyContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmergencyContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmergencyContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmergencyContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmergencyContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmergencyContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *EmergencyContactMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EmergencyContactMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EmergencyContactMutation) ResetUserID() {
	m.user_id = nil
}

// SetFullName sets the "full_name" field.
func (m *EmergencyContactMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *EmergencyContactMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *EmergencyContactMutation) ResetFullName() {
	m.full_name = nil
}

// SetPhone sets the "phone" field.
func (m *EmergencyContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *EmergencyContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *EmergencyContactMutation) ResetPhone() {
	m.phone = nil
}

// SetRelationship sets the "relationship" field.
func (m *EmergencyContactMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *EmergencyContactMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldRelationship(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *EmergencyContactMutation) ResetRelationship() {
	m.relationship = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *EmergencyContactMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *EmergencyContactMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the EmergencyContact entity.
// If the EmergencyContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmergencyContactMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *EmergencyContactMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// Where appends a list predicates to the EmergencyContactMutation builder.
func (m *EmergencyContactMutation) Where(ps ...predicate.EmergencyContact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmergencyContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmergencyContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmergencyContact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmergencyContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmergencyContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmergencyContact).
func (m *EmergencyContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmergencyContactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, emergencycontact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emergencycontact.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, emergencycontact.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, emergencycontact.FieldFullName)
	}
	if m.phone != nil {
		fields = append(fields, emergencycontact.FieldPhone)
	}
	if m.relationship != nil {
		fields = append(fields, emergencycontact.FieldRelationship)
	}
	if m.is_primary != nil {
		fields = append(fields, emergencycontact.FieldIsPrimary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmergencyContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emergencycontact.FieldCreatedAt:
		return m.CreatedAt()
	case emergencycontact.FieldUpdatedAt:
		return m.UpdatedAt()
	case emergencycontact.FieldUserID:
		return m.UserID()
	case emergencycontact.FieldFullName:
		return m.FullName()
	case emergencycontact.FieldPhone:
		return m.Phone()
	case emergencycontact.FieldRelationship:
		return m.Relationship()
	case emergencycontact.FieldIsPrimary:
		return m.IsPrimary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmergencyContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emergencycontact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emergencycontact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case emergencycontact.FieldUserID:
		return m.OldUserID(ctx)
	case emergencycontact.FieldFullName:
		return m.OldFullName(ctx)
	case emergencycontact.FieldPhone:
		return m.OldPhone(ctx)
	case emergencycontact.FieldRelationship:
		return m.OldRelationship(ctx)
	case emergencycontact.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	}
	return nil, fmt.Errorf("unknown EmergencyContact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmergencyContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emergencycontact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emergencycontact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case emergencycontact.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case emergencycontact.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case emergencycontact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case emergencycontact.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case emergencycontact.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	}
	return fmt.Errorf("unknown EmergencyContact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmergencyContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmergencyContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmergencyContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmergencyContact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmergencyContactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmergencyContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmergencyContactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EmergencyContact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmergencyContactMutation) ResetField(name string) error {
	switch name {
	case emergencycontact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emergencycontact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case emergencycontact.FieldUserID:
		m.ResetUserID()
		return nil
	case emergencycontact.FieldFullName:
		m.ResetFullName()
		return nil
	case emergencycontact.FieldPhone:
		m.ResetPhone()
		return nil
	case emergencycontact.FieldRelationship:
		m.ResetRelationship()
		return nil
	case emergencycontact.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	}
	return fmt.Errorf("unknown EmergencyContact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmergencyContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmergencyContactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmergencyContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmergencyContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmergencyContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmergencyContactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmergencyContactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmergencyContact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmergencyContactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmergencyContact edge %s", name)
}

// FamilyMemberMutation represents an operation that mutates the FamilyMember nodes in the graph.
type FamilyMemberMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	deleted_at                   *time.Time
	user_id                      *uuid.UUID
	full_name                    *string
	relationship                 *familymember.Relationship
	date_of_birth                *time.Time
	gender                       *familymember.Gender
	blood_type                   *familymember.BloodType
	allergies                    *[]string
	appendallergies              []string
	conditions                   *[]string
	appendconditions             []string
	insurance_provider           *string
	insurance_policy_encrypted   *string
	insurance_valid_until        *time.Time
	insurance_coverage_amount    *int64
	addinsurance_coverage_amount *int64
	device_name                  *string
	device_connected             *bool
	device_last_synced_at        *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*FamilyMember, error)
	predicates                   []predicate.FamilyMember
}

var _ ent.Mutation = (*FamilyMemberMutation)(nil)

// familymemberOption allows management of the mutation configuration using functional options.
type familymemberOption func(*FamilyMemberMutation)

// newFamilyMemberMutation creates new mutation for the FamilyMember entity.
func newFamilyMemberMutation(c config, op Op, opts ...familymemberOption) *FamilyMemberMutation {
	m := &FamilyMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeFamilyMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFamilyMemberID sets the ID field of the mutation.
func withFamilyMemberID(id uuid.UUID) familymemberOption {
	return func(m *FamilyMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *FamilyMember
		)
		m.oldValue = func(ctx context.Context) (*FamilyMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FamilyMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFamilyMember sets the old FamilyMember of the mutation.
func withFamilyMember(node *FamilyMember) familymemberOption {
	return func(m *FamilyMemberMutation) {
		m.oldValue = func(context.Context) (*FamilyMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FamilyMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FamilyMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FamilyMember entities.
func (m *FamilyMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FamilyMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FamilyMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FamilyMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FamilyMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FamilyMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FamilyMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FamilyMemberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FamilyMemberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FamilyMemberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *FamilyMemberMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *FamilyMemberMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *FamilyMemberMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[familymember.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *FamilyMemberMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[familymember.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *FamilyMemberMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, familymember.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *FamilyMemberMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FamilyMemberMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FamilyMemberMutation) ResetUserID() {
	m.user_id = nil
}

// SetFullName sets the "full_name" field.
func (m *FamilyMemberMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *FamilyMemberMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *FamilyMemberMutation) ResetFullName() {
	m.full_name = nil
}

// SetRelationship sets the "relationship" field.
func (m *FamilyMemberMutation) SetRelationship(f familymember.Relationship) {
	m.relationship = &f
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *FamilyMemberMutation) Relationship() (r familymember.Relationship, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldRelationship(ctx context.Context) (v familymember.Relationship, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *FamilyMemberMutation) ResetRelationship() {
	m.relationship = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *FamilyMemberMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *FamilyMemberMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *FamilyMemberMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[familymember.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *FamilyMemberMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[familymember.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *FamilyMemberMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, familymember.FieldDateOfBirth)
}

// SetGender sets the "gender" field.
func (m *FamilyMemberMutation) SetGender(f familymember.Gender) {
	m.gender = &f
}

// Gender returns the value of the "gender" field in the mutation.
func (m *FamilyMemberMutation) Gender() (r familymember.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldGender(ctx context.Context) (v *familymember.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *FamilyMemberMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[familymember.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *FamilyMemberMutation) GenderCleared() bool {
	_, ok := m.clearedFields[familymember.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *FamilyMemberMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, familymember.FieldGender)
}

// SetBloodType sets the "blood_type" field.
func (m *FamilyMemberMutation) SetBloodType(ft familymember.BloodType) {
	m.blood_type = &ft
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *FamilyMemberMutation) BloodType() (r familymember.BloodType, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldBloodType(ctx context.Context) (v *familymember.BloodType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ClearBloodType clears the value of the "blood_type" field.
func (m *FamilyMemberMutation) ClearBloodType() {
	m.blood_type = nil
	m.clearedFields[familymember.FieldBloodType] = struct{}{}
}

// BloodTypeCleared returns if the "blood_type" field was cleared in this mutation.
func (m *FamilyMemberMutation) BloodTypeCleared() bool {
	_, ok := m.clearedFields[familymember.FieldBloodType]
	return ok
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *FamilyMemberMutation) ResetBloodType() {
	m.blood_type = nil
	delete(m.clearedFields, familymember.FieldBloodType)
}

// SetAllergies sets the "allergies" field.
func (m *FamilyMemberMutation) SetAllergies(s []string) {
	m.allergies = &s
	m.appendallergies = nil
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *FamilyMemberMutation) Allergies() (r []string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldAllergies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// AppendAllergies adds s to the "allergies" field.
func (m *FamilyMemberMutation) AppendAllergies(s []string) {
	m.appendallergies = append(m.appendallergies, s...)
}

// AppendedAllergies returns the list of values that were appended to the "allergies" field in this mutation.
func (m *FamilyMemberMutation) AppendedAllergies() ([]string, bool) {
	if len(m.appendallergies) == 0 {
		return nil, false
	}
	return m.appendallergies, true
}

// ClearAllergies clears the value of the "allergies" field.
func (m *FamilyMemberMutation) ClearAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	m.clearedFields[familymember.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *FamilyMemberMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[familymember.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *FamilyMemberMutation) ResetAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	delete(m.clearedFields, familymember.FieldAllergies)
}

// SetConditions sets the "conditions" field.
func (m *FamilyMemberMutation) SetConditions(s []string) {
	m.conditions = &s
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *FamilyMemberMutation) Conditions() (r []string, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldConditions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds s to the "conditions" field.
func (m *FamilyMemberMutation) AppendConditions(s []string) {
	m.appendconditions = append(m.appendconditions, s...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *FamilyMemberMutation) AppendedConditions() ([]string, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ClearConditions clears the value of the "conditions" field.
func (m *FamilyMemberMutation) ClearConditions() {
	m.conditions = nil
	m.appendconditions = nil
	m.clearedFields[familymember.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *FamilyMemberMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[familymember.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *FamilyMemberMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
	delete(m.clearedFields, familymember.FieldConditions)
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (m *FamilyMemberMutation) SetInsuranceProvider(s string) {
	m.insurance_provider = &s
}

// InsuranceProvider returns the value of the "insurance_provider" field in the mutation.
func (m *FamilyMemberMutation) InsuranceProvider() (r string, exists bool) {
	v := m.insurance_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceProvider returns the old "insurance_provider" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldInsuranceProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceProvider: %w", err)
	}
	return oldValue.InsuranceProvider, nil
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (m *FamilyMemberMutation) ClearInsuranceProvider() {
	m.insurance_provider = nil
	m.clearedFields[familymember.FieldInsuranceProvider] = struct{}{}
}

// InsuranceProviderCleared returns if the "insurance_provider" field was cleared in this mutation.
func (m *FamilyMemberMutation) InsuranceProviderCleared() bool {
	_, ok := m.clearedFields[familymember.FieldInsuranceProvider]
	return ok
}

// ResetInsuranceProvider resets all changes to the "insurance_provider" field.
func (m *FamilyMemberMutation) ResetInsuranceProvider() {
	m.insurance_provider = nil
	delete(m.clearedFields, familymember.FieldInsuranceProvider)
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (m *FamilyMemberMutation) SetInsurancePolicyEncrypted(s string) {
	m.insurance_policy_encrypted = &s
}

// InsurancePolicyEncrypted returns the value of the "insurance_policy_encrypted" field in the mutation.
func (m *FamilyMemberMutation) InsurancePolicyEncrypted() (r string, exists bool) {
	v := m.insurance_policy_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldInsurancePolicyEncrypted returns the old "insurance_policy_encrypted" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldInsurancePolicyEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsurancePolicyEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsurancePolicyEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsurancePolicyEncrypted: %w", err)
	}
	return oldValue.InsurancePolicyEncrypted, nil
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (m *FamilyMemberMutation) ClearInsurancePolicyEncrypted() {
	m.insurance_policy_encrypted = nil
	m.clearedFields[familymember.FieldInsurancePolicyEncrypted] = struct{}{}
}

// InsurancePolicyEncryptedCleared returns if the "insurance_policy_encrypted" field was cleared in this mutation.
func (m *FamilyMemberMutation) InsurancePolicyEncryptedCleared() bool {
	_, ok := m.clearedFields[familymember.FieldInsurancePolicyEncrypted]
	return ok
}

// ResetInsurancePolicyEncrypted resets all changes to the "insurance_policy_encrypted" field.
func (m *FamilyMemberMutation) ResetInsurancePolicyEncrypted() {
	m.insurance_policy_encrypted = nil
	delete(m.clearedFields, familymember.FieldInsurancePolicyEncrypted)
}

// SetInsuranceValidUntil sets the "insurance_valid_until" field.
func (m *FamilyMemberMutation) SetInsuranceValidUntil(t time.Time) {
	m.insurance_valid_until = &t
}

// InsuranceValidUntil returns the value of the "insurance_valid_until" field in the mutation.
func (m *FamilyMemberMutation) InsuranceValidUntil() (r time.Time, exists bool) {
	v := m.insurance_valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceValidUntil returns the old "insurance_valid_until" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldInsuranceValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceValidUntil: %w", err)
	}
	return oldValue.InsuranceValidUntil, nil
}

// ClearInsuranceValidUntil clears the value of the "insurance_valid_until" field.
func (m *FamilyMemberMutation) ClearInsuranceValidUntil() {
	m.insurance_valid_until = nil
	m.clearedFields[familymember.FieldInsuranceValidUntil] = struct{}{}
}

// InsuranceValidUntilCleared returns if the "insurance_valid_until" field was cleared in this mutation.
func (m *FamilyMemberMutation) InsuranceValidUntilCleared() bool {
	_, ok := m.clearedFields[familymember.FieldInsuranceValidUntil]
	return ok
}

// ResetInsuranceValidUntil resets all changes to the "insurance_valid_until" field.
func (m *FamilyMemberMutation) ResetInsuranceValidUntil() {
	m.insurance_valid_until = nil
	delete(m.clearedFields, familymember.FieldInsuranceValidUntil)
}

// SetInsuranceCoverageAmount sets the "insurance_coverage_amount" field.
func (m *FamilyMemberMutation) SetInsuranceCoverageAmount(i int64) {
	m.insurance_coverage_amount = &i
	m.addinsurance_coverage_amount = nil
}

// InsuranceCoverageAmount returns the value of the "insurance_coverage_amount" field in the mutation.
func (m *FamilyMemberMutation) InsuranceCoverageAmount() (r int64, exists bool) {
	v := m.insurance_coverage_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceCoverageAmount returns the old "insurance_coverage_amount" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldInsuranceCoverageAmount(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceCoverageAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceCoverageAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceCoverageAmount: %w", err)
	}
	return oldValue.InsuranceCoverageAmount, nil
}

// AddInsuranceCoverageAmount adds i to the "insurance_coverage_amount" field.
func (m *FamilyMemberMutation) AddInsuranceCoverageAmount(i int64) {
	if m.addinsurance_coverage_amount != nil {
		*m.addinsurance_coverage_amount += i
	} else {
		m.addinsurance_coverage_amount = &i
	}
}

// AddedInsuranceCoverageAmount returns the value that was added to the "insurance_coverage_amount" field in this mutation.
func (m *FamilyMemberMutation) AddedInsuranceCoverageAmount() (r int64, exists bool) {
	v := m.addinsurance_coverage_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearInsuranceCoverageAmount clears the value of the "insurance_coverage_amount" field.
func (m *FamilyMemberMutation) ClearInsuranceCoverageAmount() {
	m.insurance_coverage_amount = nil
	m.addinsurance_coverage_amount = nil
	m.clearedFields[familymember.FieldInsuranceCoverageAmount] = struct{}{}
}

// InsuranceCoverageAmountCleared returns if the "insurance_coverage_amount" field was cleared in this mutation.
func (m *FamilyMemberMutation) InsuranceCoverageAmountCleared() bool {
	_, ok := m.clearedFields[familymember.FieldInsuranceCoverageAmount]
	return ok
}

// ResetInsuranceCoverageAmount resets all changes to the "insurance_coverage_amount" field.
func (m *FamilyMemberMutation) ResetInsuranceCoverageAmount() {
	m.insurance_coverage_amount = nil
	m.addinsurance_coverage_amount = nil
	delete(m.clearedFields, familymember.FieldInsuranceCoverageAmount)
}

// SetDeviceName sets the "device_name" field.
func (m *FamilyMemberMutation) SetDeviceName(s string) {
	m.device_name = &s
}

// DeviceName returns the value of the "device_name" field in the mutation.
func (m *FamilyMemberMutation) DeviceName() (r string, exists bool) {
	v := m.device_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceName returns the old "device_name" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldDeviceName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceName: %w", err)
	}
	return oldValue.DeviceName, nil
}

// ClearDeviceName clears the value of the "device_name" field.
func (m *FamilyMemberMutation) ClearDeviceName() {
	m.device_name = nil
	m.clearedFields[familymember.FieldDeviceName] = struct{}{}
}

// DeviceNameCleared returns if the "device_name" field was cleared in this mutation.
func (m *FamilyMemberMutation) DeviceNameCleared() bool {
	_, ok := m.clearedFields[familymember.FieldDeviceName]
	return ok
}

// ResetDeviceName resets all changes to the "device_name" field.
func (m *FamilyMemberMutation) ResetDeviceName() {
	m.device_name = nil
	delete(m.clearedFields, familymember.FieldDeviceName)
}

// SetDeviceConnected sets the "device_connected" field.
func (m *FamilyMemberMutation) SetDeviceConnected(b bool) {
	m.device_connected = &b
}

// DeviceConnected returns the value of the "device_connected" field in the mutation.
func (m *FamilyMemberMutation) DeviceConnected() (r bool, exists bool) {
	v := m.device_connected
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceConnected returns the old "device_connected" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldDeviceConnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceConnected: %w", err)
	}
	return oldValue.DeviceConnected, nil
}

// ResetDeviceConnected resets all changes to the "device_connected" field.
func (m *FamilyMemberMutation) ResetDeviceConnected() {
	m.device_connected = nil
}

// SetDeviceLastSyncedAt sets the "device_last_synced_at" field.
func (m *FamilyMemberMutation) SetDeviceLastSyncedAt(t time.Time) {
	m.device_last_synced_at = &t
}

// DeviceLastSyncedAt returns the value of the "device_last_synced_at" field in the mutation.
func (m *FamilyMemberMutation) DeviceLastSyncedAt() (r time.Time, exists bool) {
	v := m.device_last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceLastSyncedAt returns the old "device_last_synced_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldDeviceLastSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceLastSyncedAt: %w", err)
	}
	return oldValue.DeviceLastSyncedAt, nil
}

// ClearDeviceLastSyncedAt clears the value of the "device_last_synced_at" field.
func (m *FamilyMemberMutation) ClearDeviceLastSyncedAt() {
	m.device_last_synced_at = nil
	m.clearedFields[familymember.FieldDeviceLastSyncedAt] = struct{}{}
}

// DeviceLastSyncedAtCleared returns if the "device_last_synced_at" field was cleared in this mutation.
func (m *FamilyMemberMutation) DeviceLastSyncedAtCleared() bool {
	_, ok := m.clearedFields[familymember.FieldDeviceLastSyncedAt]
	return ok
}

// ResetDeviceLastSyncedAt resets all changes to the "device_last_synced_at" field.
func (m *FamilyMemberMutation) ResetDeviceLastSyncedAt() {
	m.device_last_synced_at = nil
	delete(m.clearedFields, familymember.FieldDeviceLastSyncedAt)
}

// Where appends a list predicates to the FamilyMemberMutation builder.
func (m *FamilyMemberMutation) Where(ps ...predicate.FamilyMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FamilyMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FamilyMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FamilyMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FamilyMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FamilyMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FamilyMember).
func (m *FamilyMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FamilyMemberMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, familymember.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, familymember.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, familymember.FieldDeletedAt)
	}
	if m.user_id != nil {
		fields = append(fields, familymember.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, familymember.FieldFullName)
	}
	if m.relationship != nil {
		fields = append(fields, familymember.FieldRelationship)
	}
	if m.date_of_birth != nil {
		fields = append(fields, familymember.FieldDateOfBirth)
	}
	if m.gender != nil {
		fields = append(fields, familymember.FieldGender)
	}
	if m.blood_type != nil {
		fields = append(fields, familymember.FieldBloodType)
	}
	if m.allergies != nil {
		fields = append(fields, familymember.FieldAllergies)
	}
	if m.conditions != nil {
		fields = append(fields, familymember.FieldConditions)
	}
	if m.insurance_provider != nil {
		fields = append(fields, familymember.FieldInsuranceProvider)
	}
	if m.insurance_policy_encrypted != nil {
		fields = append(fields, familymember.FieldInsurancePolicyEncrypted)
	}
	if m.insurance_valid_until != nil {
		fields = append(fields, familymember.FieldInsuranceValidUntil)
	}
	if m.insurance_coverage_amount != nil {
		fields = append(fields, familymember.FieldInsuranceCoverageAmount)
	}
	if m.device_name != nil {
		fields = append(fields, familymember.FieldDeviceName)
	}
	if m.device_connected != nil {
		fields = append(fields, familymember.FieldDeviceConnected)
	}
	if m.device_last_synced_at != nil {
		fields = append(fields, familymember.FieldDeviceLastSyncedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FamilyMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case familymember.FieldCreatedAt:
		return m.CreatedAt()
	case familymember.FieldUpdatedAt:
		return m.UpdatedAt()
	case familymember.FieldDeletedAt:
		return m.DeletedAt()
	case familymember.FieldUserID:
		return m.UserID()
	case familymember.FieldFullName:
		return m.FullName()
	case familymember.FieldRelationship:
		return m.Relationship()
	case familymember.FieldDateOfBirth:
		return m.DateOfBirth()
	case familymember.FieldGender:
		return m.Gender()
	case familymember.FieldBloodType:
		return m.BloodType()
	case familymember.FieldAllergies:
		return m.Allergies()
	case familymember.FieldConditions:
		return m.Conditions()
	case familymember.FieldInsuranceProvider:
		return m.InsuranceProvider()
	case familymember.FieldInsurancePolicyEncrypted:
		return m.InsurancePolicyEncrypted()
	case familymember.FieldInsuranceValidUntil:
		return m.InsuranceValidUntil()
	case familymember.FieldInsuranceCoverageAmount:
		return m.InsuranceCoverageAmount()
	case familymember.FieldDeviceName:
		return m.DeviceName()
	case familymember.FieldDeviceConnected:
		return m.DeviceConnected()
	case familymember.FieldDeviceLastSyncedAt:
		return m.DeviceLastSyncedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FamilyMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case familymember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case familymember.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case familymember.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case familymember.FieldUserID:
		return m.OldUserID(ctx)
	case familymember.FieldFullName:
		return m.OldFullName(ctx)
	case familymember.FieldRelationship:
		return m.OldRelationship(ctx)
	case familymember.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case familymember.FieldGender:
		return m.OldGender(ctx)
	case familymember.FieldBloodType:
		return m.OldBloodType(ctx)
	case familymember.FieldAllergies:
		return m.OldAllergies(ctx)
	case familymember.FieldConditions:
		return m.OldConditions(ctx)
	case familymember.FieldInsuranceProvider:
		return m.OldInsuranceProvider(ctx)
	case familymember.FieldInsurancePolicyEncrypted:
		return m.OldInsurancePolicyEncrypted(ctx)
	case familymember.FieldInsuranceValidUntil:
		return m.OldInsuranceValidUntil(ctx)
	case familymember.FieldInsuranceCoverageAmount:
		return m.OldInsuranceCoverageAmount(ctx)
	case familymember.FieldDeviceName:
		return m.OldDeviceName(ctx)
	case familymember.FieldDeviceConnected:
		return m.OldDeviceConnected(ctx)
	case familymember.FieldDeviceLastSyncedAt:
		return m.OldDeviceLastSyncedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FamilyMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case familymember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case familymember.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case familymember.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case familymember.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case familymember.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case familymember.FieldRelationship:
		v, ok := value.(familymember.Relationship)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case familymember.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case familymember.FieldGender:
		v, ok := value.(familymember.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case familymember.FieldBloodType:
		v, ok := value.(familymember.BloodType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case familymember.FieldAllergies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case familymember.FieldConditions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case familymember.FieldInsuranceProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceProvider(v)
		return nil
	case familymember.FieldInsurancePolicyEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsurancePolicyEncrypted(v)
		return nil
	case familymember.FieldInsuranceValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceValidUntil(v)
		return nil
	case familymember.FieldInsuranceCoverageAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceCoverageAmount(v)
		return nil
	case familymember.FieldDeviceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceName(v)
		return nil
	case familymember.FieldDeviceConnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceConnected(v)
		return nil
	case familymember.FieldDeviceLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceLastSyncedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FamilyMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FamilyMemberMutation) AddedFields() []string {
	var fields []string
	if m.addinsurance_coverage_amount != nil {
		fields = append(fields, familymember.FieldInsuranceCoverageAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FamilyMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case familymember.FieldInsuranceCoverageAmount:
		return m.AddedInsuranceCoverageAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case familymember.FieldInsuranceCoverageAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInsuranceCoverageAmount(v)
		return nil
	}
	return fmt.Errorf("unknown FamilyMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FamilyMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(familymember.FieldDeletedAt) {
		fields = append(fields, familymember.FieldDeletedAt)
	}
	if m.FieldCleared(familymember.FieldDateOfBirth) {
		fields = append(fields, familymember.FieldDateOfBirth)
	}
	if m.FieldCleared(familymember.FieldGender) {
		fields = append(fields, familymember.FieldGender)
	}
	if m.FieldCleared(familymember.FieldBloodType) {
		fields = append(fields, familymember.FieldBloodType)
	}
	if m.FieldCleared(familymember.FieldAllergies) {
		fields = append(fields, familymember.FieldAllergies)
	}
	if m.FieldCleared(familymember.FieldConditions) {
		fields = append(fields, familymember.FieldConditions)
	}
	if m.FieldCleared(familymember.FieldInsuranceProvider) {
		fields = append(fields, familymember.FieldInsuranceProvider)
	}
	if m.FieldCleared(familymember.FieldInsurancePolicyEncrypted) {
		fields = append(fields, familymember.FieldInsurancePolicyEncrypted)
	}
	if m.FieldCleared(familymember.FieldInsuranceValidUntil) {
		fields = append(fields, familymember.FieldInsuranceValidUntil)
	}
	if m.FieldCleared(familymember.FieldInsuranceCoverageAmount) {
		fields = append(fields, familymember.FieldInsuranceCoverageAmount)
	}
	if m.FieldCleared(familymember.FieldDeviceName) {
		fields = append(fields, familymember.FieldDeviceName)
	}
	if m.FieldCleared(familymember.FieldDeviceLastSyncedAt) {
		fields = append(fields, familymember.FieldDeviceLastSyncedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FamilyMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FamilyMemberMutation) ClearField(name string) error {
	switch name {
	case familymember.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case familymember.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case familymember.FieldGender:
		m.ClearGender()
		return nil
	case familymember.FieldBloodType:
		m.ClearBloodType()
		return nil
	case familymember.FieldAllergies:
		m.ClearAllergies()
		return nil
	case familymember.FieldConditions:
		m.ClearConditions()
		return nil
	case familymember.FieldInsuranceProvider:
		m.ClearInsuranceProvider()
		return nil
	case familymember.FieldInsurancePolicyEncrypted:
		m.ClearInsurancePolicyEncrypted()
		return nil
	case familymember.FieldInsuranceValidUntil:
		m.ClearInsuranceValidUntil()
		return nil
	case familymember.FieldInsuranceCoverageAmount:
		m.ClearInsuranceCoverageAmount()
		return nil
	case familymember.FieldDeviceName:
		m.ClearDeviceName()
		return nil
	case familymember.FieldDeviceLastSyncedAt:
		m.ClearDeviceLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FamilyMemberMutation) ResetField(name string) error {
	switch name {
	case familymember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case familymember.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case familymember.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case familymember.FieldUserID:
		m.ResetUserID()
		return nil
	case familymember.FieldFullName:
		m.ResetFullName()
		return nil
	case familymember.FieldRelationship:
		m.ResetRelationship()
		return nil
	case familymember.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case familymember.FieldGender:
		m.ResetGender()
		return nil
	case familymember.FieldBloodType:
		m.ResetBloodType()
		return nil
	case familymember.FieldAllergies:
		m.ResetAllergies()
		return nil
	case familymember.FieldConditions:
		m.ResetConditions()
		return nil
	case familymember.FieldInsuranceProvider:
		m.ResetInsuranceProvider()
		return nil
	case familymember.FieldInsurancePolicyEncrypted:
		m.ResetInsurancePolicyEncrypted()
		return nil
	case familymember.FieldInsuranceValidUntil:
		m.ResetInsuranceValidUntil()
		return nil
	case familymember.FieldInsuranceCoverageAmount:
		m.ResetInsuranceCoverageAmount()
		return nil
	case familymember.FieldDeviceName:
		m.ResetDeviceName()
		return nil
	case familymember.FieldDeviceConnected:
		m.ResetDeviceConnected()
		return nil
	case familymember.FieldDeviceLastSyncedAt:
		m.ResetDeviceLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FamilyMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FamilyMemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FamilyMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FamilyMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FamilyMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FamilyMemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FamilyMemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FamilyMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FamilyMemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FamilyMember edge %s", name)
}

// HealthMetricMutation represents an operation that mutates the HealthMetric nodes in the graph.
type HealthMetricMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	user_id            *uuid.UUID
	member_id          *uuid.UUID
	metric_type        *healthmetric.MetricType
	value              *float64
	addvalue           *float64
	value_secondary    *float64
	addvalue_secondary *float64
	unit               *string
	recorded_at        *time.Time
	note               *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*HealthMetric, error)
	predicates         []predicate.HealthMetric
}

var _ ent.Mutation = (*HealthMetricMutation)(nil)

// healthmetricOption allows management of the mutation configuration using functional options.
type healthmetricOption func(*HealthMetricMutation)

// newHealthMetricMutation creates new mutation for the HealthMetric entity.
func newHealthMetricMutation(c config, op Op, opts ...healthmetricOption) *HealthMetricMutation {
	m := &HealthMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeHealthMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHealthMetricID sets the ID field of the mutation.
func withHealthMetricID(id uuid.UUID) healthmetricOption {
	return func(m *HealthMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *HealthMetric
		)
		m.oldValue = func(ctx context.Context) (*HealthMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HealthMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHealthMetric sets the old HealthMetric of the mutation.
func withHealthMetric(node *HealthMetric) healthmetricOption {
	return func(m *HealthMetricMutation) {
		m.oldValue = func(context.Context) (*HealthMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HealthMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HealthMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HealthMetric entities.
func (m *HealthMetricMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HealthMetricMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HealthMetricMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HealthMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HealthMetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HealthMetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HealthMetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *HealthMetricMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *HealthMetricMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *HealthMetricMutation) ResetUserID() {
	m.user_id = nil
}

// SetMemberID sets the "member_id" field.
func (m *HealthMetricMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *HealthMetricMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *HealthMetricMutation) ResetMemberID() {
	m.member_id = nil
}

// SetMetricType sets the "metric_type" field.
func (m *HealthMetricMutation) SetMetricType(ht healthmetric.MetricType) {
	m.metric_type = &ht
}

// MetricType returns the value of the "metric_type" field in the mutation.
func (m *HealthMetricMutation) MetricType() (r healthmetric.MetricType, exists bool) {
	v := m.metric_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricType returns the old "metric_type" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldMetricType(ctx context.Context) (v healthmetric.MetricType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricType: %w", err)
	}
	return oldValue.MetricType, nil
}

// ResetMetricType resets all changes to the "metric_type" field.
func (m *HealthMetricMutation) ResetMetricType() {
	m.metric_type = nil
}

// SetValue sets the "value" field.
func (m *HealthMetricMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *HealthMetricMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *HealthMetricMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *HealthMetricMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *HealthMetricMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetValueSecondary sets the "value_secondary" field.
func (m *HealthMetricMutation) SetValueSecondary(f float64) {
	m.value_secondary = &f
	m.addvalue_secondary = nil
}

// ValueSecondary returns the value of the "value_secondary" field in the mutation.
func (m *HealthMetricMutation) ValueSecondary() (r float64, exists bool) {
	v := m.value_secondary
	if v == nil {
		return
	}
	return *v, true
}

// OldValueSecondary returns the old "value_secondary" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldValueSecondary(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueSecondary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueSecondary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueSecondary: %w", err)
	}
	return oldValue.ValueSecondary, nil
}

// AddValueSecondary adds f to the "value_secondary" field.
func (m *HealthMetricMutation) AddValueSecondary(f float64) {
	if m.addvalue_secondary != nil {
		*m.addvalue_secondary += f
	} else {
		m.addvalue_secondary = &f
	}
}

// AddedValueSecondary returns the value that was added to the "value_secondary" field in this mutation.
func (m *HealthMetricMutation) AddedValueSecondary() (r float64, exists bool) {
	v := m.addvalue_secondary
	if v == nil {
		return
	}
	return *v, true
}

// ClearValueSecondary clears the value of the "value_secondary" field.
func (m *HealthMetricMutation) ClearValueSecondary() {
	m.value_secondary = nil
	m.addvalue_secondary = nil
	m.clearedFields[healthmetric.FieldValueSecondary] = struct{}{}
}

// ValueSecondaryCleared returns if the "value_secondary" field was cleared in this mutation.
func (m *HealthMetricMutation) ValueSecondaryCleared() bool {
	_, ok := m.clearedFields[healthmetric.FieldValueSecondary]
	return ok
}

// ResetValueSecondary resets all changes to the "value_secondary" field.
func (m *HealthMetricMutation) ResetValueSecondary() {
	m.value_secondary = nil
	m.addvalue_secondary = nil
	delete(m.clearedFields, healthmetric.FieldValueSecondary)
}

// SetUnit sets the "unit" field.
func (m *HealthMetricMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *HealthMetricMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *HealthMetricMutation) ResetUnit() {
	m.unit = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *HealthMetricMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *HealthMetricMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *HealthMetricMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetNote sets the "note" field.
func (m *HealthMetricMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *HealthMetricMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the HealthMetric entity.
// If the HealthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthMetricMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *HealthMetricMutation) ClearNote() {
	m.note = nil
	m.clearedFields[healthmetric.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *HealthMetricMutation) NoteCleared() bool {
	_, ok := m.clearedFields[healthmetric.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *HealthMetricMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, healthmetric.FieldNote)
}

// Where appends a list predicates to the HealthMetricMutation builder.
func (m *HealthMetricMutation) Where(ps ...predicate.HealthMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HealthMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HealthMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HealthMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HealthMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HealthMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HealthMetric).
func (m *HealthMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HealthMetricMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, healthmetric.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, healthmetric.FieldUserID)
	}
	if m.member_id != nil {
		fields = append(fields, healthmetric.FieldMemberID)
	}
	if m.metric_type != nil {
		fields = append(fields, healthmetric.FieldMetricType)
	}
	if m.value != nil {
		fields = append(fields, healthmetric.FieldValue)
	}
	if m.value_secondary != nil {
		fields = append(fields, healthmetric.FieldValueSecondary)
	}
	if m.unit != nil {
		fields = append(fields, healthmetric.FieldUnit)
	}
	if m.recorded_at != nil {
		fields = append(fields, healthmetric.FieldRecordedAt)
	}
	if m.note != nil {
		fields = append(fields, healthmetric.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HealthMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case healthmetric.FieldCreatedAt:
		return m.CreatedAt()
	case healthmetric.FieldUserID:
		return m.UserID()
	case healthmetric.FieldMemberID:
		return m.MemberID()
	case healthmetric.FieldMetricType:
		return m.MetricType()
	case healthmetric.FieldValue:
		return m.Value()
	case healthmetric.FieldValueSecondary:
		return m.ValueSecondary()
	case healthmetric.FieldUnit:
		return m.Unit()
	case healthmetric.FieldRecordedAt:
		return m.RecordedAt()
	case healthmetric.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HealthMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case healthmetric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case healthmetric.FieldUserID:
		return m.OldUserID(ctx)
	case healthmetric.FieldMemberID:
		return m.OldMemberID(ctx)
	case healthmetric.FieldMetricType:
		return m.OldMetricType(ctx)
	case healthmetric.FieldValue:
		return m.OldValue(ctx)
	case healthmetric.FieldValueSecondary:
		return m.OldValueSecondary(ctx)
	case healthmetric.FieldUnit:
		return m.OldUnit(ctx)
	case healthmetric.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case healthmetric.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown HealthMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case healthmetric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case healthmetric.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case healthmetric.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case healthmetric.FieldMetricType:
		v, ok := value.(healthmetric.MetricType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricType(v)
		return nil
	case healthmetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case healthmetric.FieldValueSecondary:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueSecondary(v)
		return nil
	case healthmetric.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case healthmetric.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case healthmetric.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown HealthMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HealthMetricMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, healthmetric.FieldValue)
	}
	if m.addvalue_secondary != nil {
		fields = append(fields, healthmetric.FieldValueSecondary)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HealthMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case healthmetric.FieldValue:
		return m.AddedValue()
	case healthmetric.FieldValueSecondary:
		return m.AddedValueSecondary()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case healthmetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	case healthmetric.FieldValueSecondary:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValueSecondary(v)
		return nil
	}
	return fmt.Errorf("unknown HealthMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HealthMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(healthmetric.FieldValueSecondary) {
		fields = append(fields, healthmetric.FieldValueSecondary)
	}
	if m.FieldCleared(healthmetric.FieldNote) {
		fields = append(fields, healthmetric.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HealthMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HealthMetricMutation) ClearField(name string) error {
	switch name {
	case healthmetric.FieldValueSecondary:
		m.ClearValueSecondary()
		return nil
	case healthmetric.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown HealthMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HealthMetricMutation) ResetField(name string) error {
	switch name {
	case healthmetric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case healthmetric.FieldUserID:
		m.ResetUserID()
		return nil
	case healthmetric.FieldMemberID:
		m.ResetMemberID()
		return nil
	case healthmetric.FieldMetricType:
		m.ResetMetricType()
		return nil
	case healthmetric.FieldValue:
		m.ResetValue()
		return nil
	case healthmetric.FieldValueSecondary:
		m.ResetValueSecondary()
		return nil
	case healthmetric.FieldUnit:
		m.ResetUnit()
		return nil
	case healthmetric.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case healthmetric.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown HealthMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HealthMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HealthMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HealthMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HealthMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HealthMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HealthMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HealthMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HealthMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HealthMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HealthMetric edge %s", name)
}

// MedicationMutation represents an operation that mutates the Medication nodes in the graph.
type MedicationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	user_id              *uuid.UUID
	member_id            *uuid.UUID
	name                 *string
	dosage               *string
	frequency            *medication.Frequency
	reminder_times       *[]string
	appendreminder_times []string
	start_date           *time.Time
	end_date             *time.Time
	instructions         *string
	active               *bool
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Medication, error)
	predicates           []predicate.Medication
}

var _ ent.Mutation = (*MedicationMutation)(nil)

// medicationOption allows management of the mutation configuration using functional options.
type medicationOption func(*MedicationMutation)

// newMedicationMutation creates new mutation for the Medication entity.
func newMedicationMutation(c config, op Op, opts ...medicationOption) *MedicationMutation {
	m := &MedicationMutation{
		config:        c,
		op:            op,
		typ:           TypeMedication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicationID sets the ID field of the mutation.
func withMedicationID(id uuid.UUID) medicationOption {
	return func(m *MedicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Medication
		)
		m.oldValue = func(ctx context.Context) (*Medication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Medication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedication sets the old Medication of the mutation.
func withMedication(node *Medication) medicationOption {
	return func(m *MedicationMutation) {
		m.oldValue = func(context.Context) (*Medication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Medication entities.
func (m *MedicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Medication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MedicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MedicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MedicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MedicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MedicationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MedicationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MedicationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[medication.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MedicationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[medication.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MedicationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, medication.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *MedicationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MedicationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MedicationMutation) ResetUserID() {
	m.user_id = nil
}

// SetMemberID sets the "member_id" field.
func (m *MedicationMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *MedicationMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *MedicationMutation) ResetMemberID() {
	m.member_id = nil
}

// SetName sets the "name" field.
func (m *MedicationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MedicationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MedicationMutation) ResetName() {
	m.name = nil
}

// SetDosage sets the "dosage" field.
func (m *MedicationMutation) SetDosage(s string) {
	m.dosage = &s
}

// Dosage returns the value of the "dosage" field in the mutation.
func (m *MedicationMutation) Dosage() (r string, exists bool) {
	v := m.dosage
	if v == nil {
		return
	}
	return *v, true
}

// OldDosage returns the old "dosage" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldDosage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosage: %w", err)
	}
	return oldValue.Dosage, nil
}

// ResetDosage resets all changes to the "dosage" field.
func (m *MedicationMutation) ResetDosage() {
	m.dosage = nil
}

// SetFrequency sets the "frequency" field.
func (m *MedicationMutation) SetFrequency(value medication.Frequency) {
	m.frequency = &value
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *MedicationMutation) Frequency() (r medication.Frequency, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldFrequency(ctx context.Context) (v medication.Frequency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *MedicationMutation) ResetFrequency() {
	m.frequency = nil
}

// SetReminderTimes sets the "reminder_times" field.
func (m *MedicationMutation) SetReminderTimes(s []string) {
	m.reminder_times = &s
	m.appendreminder_times = nil
}

// ReminderTimes returns the value of the "reminder_times" field in the mutation.
func (m *MedicationMutation) ReminderTimes() (r []string, exists bool) {
	v := m.reminder_times
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderTimes returns the old "reminder_times" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldReminderTimes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderTimes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderTimes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderTimes: %w", err)
	}
	return oldValue.ReminderTimes, nil
}

// AppendReminderTimes adds s to the "reminder_times" field.
func (m *MedicationMutation) AppendReminderTimes(s []string) {
	m.appendreminder_times = append(m.appendreminder_times, s...)
}

// AppendedReminderTimes returns the list of values that were appended to the "reminder_times" field in this mutation.
func (m *MedicationMutation) AppendedReminderTimes() ([]string, bool) {
	if len(m.appendreminder_times) == 0 {
		return nil, false
	}
	return m.appendreminder_times, true
}

// ClearReminderTimes clears the value of the "reminder_times" field.
func (m *MedicationMutation) ClearReminderTimes() {
	m.reminder_times = nil
	m.appendreminder_times = nil
	m.clearedFields[medication.FieldReminderTimes] = struct{}{}
}

// ReminderTimesCleared returns if the "reminder_times" field was cleared in this mutation.
func (m *MedicationMutation) ReminderTimesCleared() bool {
	_, ok := m.clearedFields[medication.FieldReminderTimes]
	return ok
}

// ResetReminderTimes resets all changes to the "reminder_times" field.
func (m *MedicationMutation) ResetReminderTimes() {
	m.reminder_times = nil
	m.appendreminder_times = nil
	delete(m.clearedFields, medication.FieldReminderTimes)
}

// SetStartDate sets the "start_date" field.
func (m *MedicationMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *MedicationMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *MedicationMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *MedicationMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *MedicationMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *MedicationMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[medication.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *MedicationMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[medication.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *MedicationMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, medication.FieldEndDate)
}

// SetInstructions sets the "instructions" field.
func (m *MedicationMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *MedicationMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *MedicationMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[medication.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *MedicationMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[medication.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *MedicationMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, medication.FieldInstructions)
}

// SetActive sets the "active" field.
func (m *MedicationMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *MedicationMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Medication entity.
// If the Medication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicationMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *MedicationMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the MedicationMutation builder.
func (m *MedicationMutation) Where(ps ...predicate.Medication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Medication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Medication).
func (m *MedicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, medication.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, medication.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, medication.FieldDeletedAt)
	}
	if m.user_id != nil {
		fields = append(fields, medication.FieldUserID)
	}
	if m.member_id != nil {
		fields = append(fields, medication.FieldMemberID)
	}
	if m.name != nil {
		fields = append(fields, medication.FieldName)
	}
	if m.dosage != nil {
		fields = append(fields, medication.FieldDosage)
	}
	if m.frequency != nil {
		fields = append(fields, medication.FieldFrequency)
	}
	if m.reminder_times != nil {
		fields = append(fields, medication.FieldReminderTimes)
	}
	if m.start_date != nil {
		fields = append(fields, medication.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, medication.FieldEndDate)
	}
	if m.instructions != nil {
		fields = append(fields, medication.FieldInstructions)
	}
	if m.active != nil {
		fields = append(fields, medication.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medication.FieldCreatedAt:
		return m.CreatedAt()
	case medication.FieldUpdatedAt:
		return m.UpdatedAt()
	case medication.FieldDeletedAt:
		return m.DeletedAt()
	case medication.FieldUserID:
		return m.UserID()
	case medication.FieldMemberID:
		return m.MemberID()
	case medication.FieldName:
		return m.Name()
	case medication.FieldDosage:
		return m.Dosage()
	case medication.FieldFrequency:
		return m.Frequency()
	case medication.FieldReminderTimes:
		return m.ReminderTimes()
	case medication.FieldStartDate:
		return m.StartDate()
	case medication.FieldEndDate:
		return m.EndDate()
	case medication.FieldInstructions:
		return m.Instructions()
	case medication.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medication.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medication.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case medication.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case medication.FieldUserID:
		return m.OldUserID(ctx)
	case medication.FieldMemberID:
		return m.OldMemberID(ctx)
	case medication.FieldName:
		return m.OldName(ctx)
	case medication.FieldDosage:
		return m.OldDosage(ctx)
	case medication.FieldFrequency:
		return m.OldFrequency(ctx)
	case medication.FieldReminderTimes:
		return m.OldReminderTimes(ctx)
	case medication.FieldStartDate:
		return m.OldStartDate(ctx)
	case medication.FieldEndDate:
		return m.OldEndDate(ctx)
	case medication.FieldInstructions:
		return m.OldInstructions(ctx)
	case medication.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Medication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medication.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medication.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case medication.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case medication.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case medication.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case medication.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case medication.FieldDosage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosage(v)
		return nil
	case medication.FieldFrequency:
		v, ok := value.(medication.Frequency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case medication.FieldReminderTimes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderTimes(v)
		return nil
	case medication.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case medication.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case medication.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case medication.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Medication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Medication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medication.FieldDeletedAt) {
		fields = append(fields, medication.FieldDeletedAt)
	}
	if m.FieldCleared(medication.FieldReminderTimes) {
		fields = append(fields, medication.FieldReminderTimes)
	}
	if m.FieldCleared(medication.FieldEndDate) {
		fields = append(fields, medication.FieldEndDate)
	}
	if m.FieldCleared(medication.FieldInstructions) {
		fields = append(fields, medication.FieldInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicationMutation) ClearField(name string) error {
	switch name {
	case medication.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case medication.FieldReminderTimes:
		m.ClearReminderTimes()
		return nil
	case medication.FieldEndDate:
		m.ClearEndDate()
		return nil
	case medication.FieldInstructions:
		m.ClearInstructions()
		return nil
	}
	return fmt.Errorf("unknown Medication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicationMutation) ResetField(name string) error {
	switch name {
	case medication.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medication.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case medication.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case medication.FieldUserID:
		m.ResetUserID()
		return nil
	case medication.FieldMemberID:
		m.ResetMemberID()
		return nil
	case medication.FieldName:
		m.ResetName()
		return nil
	case medication.FieldDosage:
		m.ResetDosage()
		return nil
	case medication.FieldFrequency:
		m.ResetFrequency()
		return nil
	case medication.FieldReminderTimes:
		m.ResetReminderTimes()
		return nil
	case medication.FieldStartDate:
		m.ResetStartDate()
		return nil
	case medication.FieldEndDate:
		m.ResetEndDate()
		return nil
	case medication.FieldInstructions:
		m.ResetInstructions()
		return nil
	case medication.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Medication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Medication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Medication edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	kind          *notification.Kind
	title         *string
	body          *string
	data          *map[string]string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *NotificationMutation) SetKind(n notification.Kind) {
	m.kind = &n
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationMutation) Kind() (r notification.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldKind(ctx context.Context) (v notification.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
}

// SetData sets the "data" field.
func (m *NotificationMutation) SetData(value map[string]string) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *NotificationMutation) Data() (r map[string]string, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldData(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *NotificationMutation) ClearData() {
	m.data = nil
	m.clearedFields[notification.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *NotificationMutation) DataCleared() bool {
	_, ok := m.clearedFields[notification.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *NotificationMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, notification.FieldData)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, notification.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.data != nil {
		fields = append(fields, notification.FieldData)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldKind:
		return m.Kind()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldData:
		return m.Data()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldKind:
		return m.OldKind(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldData:
		return m.OldData(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldKind:
		v, ok := value.(notification.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldData:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldData) {
		fields = append(fields, notification.FieldData)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldData:
		m.ClearData()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldKind:
		m.ResetKind()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldData:
		m.ResetData()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PharmacyMutation represents an operation that mutates the Pharmacy nodes in the graph.
type PharmacyMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	deleted_at             *time.Time
	name                   *string
	address                *string
	city                   *string
	phone                  *string
	rating                 *float64
	addrating              *float64
	distance_km            *float64
	adddistance_km         *float64
	delivery_available     *bool
	delivery_minutes       *int
	adddelivery_minutes    *int
	insurer_networks       *[]string
	appendinsurer_networks []string
	opens_at               *string
	closes_at              *string
	open_24h               *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Pharmacy, error)
	predicates             []predicate.Pharmacy
}

var _ ent.Mutation = (*PharmacyMutation)(nil)

// pharmacyOption allows management of the mutation configuration using functional options.
type pharmacyOption func(*PharmacyMutation)

// newPharmacyMutation creates new mutation for the Pharmacy entity.
func newPharmacyMutation(c config, op Op, opts ...pharmacyOption) *PharmacyMutation {
	m := &PharmacyMutation{
		config:        c,
		op:            op,
		typ:           TypePharmacy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPharmacyID sets the ID field of the mutation.
func withPharmacyID(id uuid.UUID) pharmacyOption {
	return func(m *PharmacyMutation) {
		var (
			err   error
			once  sync.Once
			value *Pharmacy
		)
		m.oldValue = func(ctx context.Context) (*Pharmacy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pharmacy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPharmacy sets the old Pharmacy of the mutation.
func withPharmacy(node *Pharmacy) pharmacyOption {
	return func(m *PharmacyMutation) {
		m.oldValue = func(context.Context) (*Pharmacy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PharmacyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PharmacyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pharmacy entities.
func (m *PharmacyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PharmacyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PharmacyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pharmacy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PharmacyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PharmacyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PharmacyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PharmacyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PharmacyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PharmacyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PharmacyMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PharmacyMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PharmacyMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[pharmacy.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PharmacyMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[pharmacy.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PharmacyMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, pharmacy.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *PharmacyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PharmacyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PharmacyMutation) ResetName() {
	m.name = nil
}

// SetAddress sets the "address" field.
func (m *PharmacyMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PharmacyMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *PharmacyMutation) ResetAddress() {
	m.address = nil
}

// SetCity sets the "city" field.
func (m *PharmacyMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *PharmacyMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *PharmacyMutation) ResetCity() {
	m.city = nil
}

// SetPhone sets the "phone" field.
func (m *PharmacyMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PharmacyMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *PharmacyMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[pharmacy.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *PharmacyMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[pharmacy.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *PharmacyMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, pharmacy.FieldPhone)
}

// SetRating sets the "rating" field.
func (m *PharmacyMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *PharmacyMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *PharmacyMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *PharmacyMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *PharmacyMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetDistanceKm sets the "distance_km" field.
func (m *PharmacyMutation) SetDistanceKm(f float64) {
	m.distance_km = &f
	m.adddistance_km = nil
}

// DistanceKm returns the value of the "distance_km" field in the mutation.
func (m *PharmacyMutation) DistanceKm() (r float64, exists bool) {
	v := m.distance_km
	if v == nil {
		return
	}
	return *v, true
}

// OldDistanceKm returns the old "distance_km" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldDistanceKm(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistanceKm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistanceKm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistanceKm: %w", err)
	}
	return oldValue.DistanceKm, nil
}

// AddDistanceKm adds f to the "distance_km" field.
func (m *PharmacyMutation) AddDistanceKm(f float64) {
	if m.adddistance_km != nil {
		*m.adddistance_km += f
	} else {
		m.adddistance_km = &f
	}
}

// AddedDistanceKm returns the value that was added to the "distance_km" field in this mutation.
func (m *PharmacyMutation) AddedDistanceKm() (r float64, exists bool) {
	v := m.adddistance_km
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistanceKm resets all changes to the "distance_km" field.
func (m *PharmacyMutation) ResetDistanceKm() {
	m.distance_km = nil
	m.adddistance_km = nil
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (m *PharmacyMutation) SetDeliveryAvailable(b bool) {
	m.delivery_available = &b
}

// DeliveryAvailable returns the value of the "delivery_available" field in the mutation.
func (m *PharmacyMutation) DeliveryAvailable() (r bool, exists bool) {
	v := m.delivery_available
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryAvailable returns the old "delivery_available" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldDeliveryAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryAvailable: %w", err)
	}
	return oldValue.DeliveryAvailable, nil
}

// ResetDeliveryAvailable resets all changes to the "delivery_available" field.
func (m *PharmacyMutation) ResetDeliveryAvailable() {
	m.delivery_available = nil
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (m *PharmacyMutation) SetDeliveryMinutes(i int) {
	m.delivery_minutes = &i
	m.adddelivery_minutes = nil
}

// DeliveryMinutes returns the value of the "delivery_minutes" field in the mutation.
func (m *PharmacyMutation) DeliveryMinutes() (r int, exists bool) {
	v := m.delivery_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryMinutes returns the old "delivery_minutes" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldDeliveryMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryMinutes: %w", err)
	}
	return oldValue.DeliveryMinutes, nil
}

// AddDeliveryMinutes adds i to the "delivery_minutes" field.
func (m *PharmacyMutation) AddDeliveryMinutes(i int) {
	if m.adddelivery_minutes != nil {
		*m.adddelivery_minutes += i
	} else {
		m.adddelivery_minutes = &i
	}
}

// AddedDeliveryMinutes returns the value that was added to the "delivery_minutes" field in this mutation.
func (m *PharmacyMutation) AddedDeliveryMinutes() (r int, exists bool) {
	v := m.adddelivery_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveryMinutes resets all changes to the "delivery_minutes" field.
func (m *PharmacyMutation) ResetDeliveryMinutes() {
	m.delivery_minutes = nil
	m.adddelivery_minutes = nil
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (m *PharmacyMutation) SetInsurerNetworks(s []string) {
	m.insurer_networks = &s
	m.appendinsurer_networks = nil
}

// InsurerNetworks returns the value of the "insurer_networks" field in the mutation.
func (m *PharmacyMutation) InsurerNetworks() (r []string, exists bool) {
	v := m.insurer_networks
	if v == nil {
		return
	}
	return *v, true
}

// OldInsurerNetworks returns the old "insurer_networks" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldInsurerNetworks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsurerNetworks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsurerNetworks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsurerNetworks: %w", err)
	}
	return oldValue.InsurerNetworks, nil
}

// AppendInsurerNetworks adds s to the "insurer_networks" field.
func (m *PharmacyMutation) AppendInsurerNetworks(s []string) {
	m.appendinsurer_networks = append(m.appendinsurer_networks, s...)
}

// AppendedInsurerNetworks returns the list of values that were appended to the "insurer_networks" field in this mutation.
func (m *PharmacyMutation) AppendedInsurerNetworks() ([]string, bool) {
	if len(m.appendinsurer_networks) == 0 {
		return nil, false
	}
	return m.appendinsurer_networks, true
}

// ClearInsurerNetworks clears the value of the "insurer_networks" field.
func (m *PharmacyMutation) ClearInsurerNetworks() {
	m.insurer_networks = nil
	m.appendinsurer_networks = nil
	m.clearedFields[pharmacy.FieldInsurerNetworks] = struct{}{}
}

// InsurerNetworksCleared returns if the "insurer_networks" field was cleared in this mutation.
func (m *PharmacyMutation) InsurerNetworksCleared() bool {
	_, ok := m.clearedFields[pharmacy.FieldInsurerNetworks]
	return ok
}

// ResetInsurerNetworks resets all changes to the "insurer_networks" field.
func (m *PharmacyMutation) ResetInsurerNetworks() {
	m.insurer_networks = nil
	m.appendinsurer_networks = nil
	delete(m.clearedFields, pharmacy.FieldInsurerNetworks)
}

// SetOpensAt sets the "opens_at" field.
func (m *PharmacyMutation) SetOpensAt(s string) {
	m.opens_at = &s
}

// OpensAt returns the value of the "opens_at" field in the mutation.
func (m *PharmacyMutation) OpensAt() (r string, exists bool) {
	v := m.opens_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpensAt returns the old "opens_at" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldOpensAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpensAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpensAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpensAt: %w", err)
	}
	return oldValue.OpensAt, nil
}

// ResetOpensAt resets all changes to the "opens_at" field.
func (m *PharmacyMutation) ResetOpensAt() {
	m.opens_at = nil
}

// SetClosesAt sets the "closes_at" field.
func (m *PharmacyMutation) SetClosesAt(s string) {
	m.closes_at = &s
}

// ClosesAt returns the value of the "closes_at" field in the mutation.
func (m *PharmacyMutation) ClosesAt() (r string, exists bool) {
	v := m.closes_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosesAt returns the old "closes_at" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldClosesAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosesAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosesAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosesAt: %w", err)
	}
	return oldValue.ClosesAt, nil
}

// ResetClosesAt resets all changes to the "closes_at" field.
func (m *PharmacyMutation) ResetClosesAt() {
	m.closes_at = nil
}

// SetOpen24h sets the "open_24h" field.
func (m *PharmacyMutation) SetOpen24h(b bool) {
	m.open_24h = &b
}

// Open24h returns the value of the "open_24h" field in the mutation.
func (m *PharmacyMutation) Open24h() (r bool, exists bool) {
	v := m.open_24h
	if v == nil {
		return
	}
	return *v, true
}

// OldOpen24h returns the old "open_24h" field's value of the Pharmacy entity.
// If the Pharmacy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmacyMutation) OldOpen24h(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpen24h is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpen24h requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpen24h: %w", err)
	}
	return oldValue.Open24h, nil
}

// ResetOpen24h resets all changes to the "open_24h" field.
func (m *PharmacyMutation) ResetOpen24h() {
	m.open_24h = nil
}

// Where appends a list predicates to the PharmacyMutation builder.
func (m *PharmacyMutation) Where(ps ...predicate.Pharmacy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PharmacyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PharmacyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pharmacy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PharmacyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PharmacyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pharmacy).
func (m *PharmacyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PharmacyMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, pharmacy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pharmacy.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, pharmacy.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, pharmacy.FieldName)
	}
	if m.address != nil {
		fields = append(fields, pharmacy.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, pharmacy.FieldCity)
	}
	if m.phone != nil {
		fields = append(fields, pharmacy.FieldPhone)
	}
	if m.rating != nil {
		fields = append(fields, pharmacy.FieldRating)
	}
	if m.distance_km != nil {
		fields = append(fields, pharmacy.FieldDistanceKm)
	}
	if m.delivery_available != nil {
		fields = append(fields, pharmacy.FieldDeliveryAvailable)
	}
	if m.delivery_minutes != nil {
		fields = append(fields, pharmacy.FieldDeliveryMinutes)
	}
	if m.insurer_networks != nil {
		fields = append(fields, pharmacy.FieldInsurerNetworks)
	}
	if m.opens_at != nil {
		fields = append(fields, pharmacy.FieldOpensAt)
	}
	if m.closes_at != nil {
		fields = append(fields, pharmacy.FieldClosesAt)
	}
	if m.open_24h != nil {
		fields = append(fields, pharmacy.FieldOpen24h)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PharmacyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pharmacy.FieldCreatedAt:
		return m.CreatedAt()
	case pharmacy.FieldUpdatedAt:
		return m.UpdatedAt()
	case pharmacy.FieldDeletedAt:
		return m.DeletedAt()
	case pharmacy.FieldName:
		return m.Name()
	case pharmacy.FieldAddress:
		return m.Address()
	case pharmacy.FieldCity:
		return m.City()
	case pharmacy.FieldPhone:
		return m.Phone()
	case pharmacy.FieldRating:
		return m.Rating()
	case pharmacy.FieldDistanceKm:
		return m.DistanceKm()
	case pharmacy.FieldDeliveryAvailable:
		return m.DeliveryAvailable()
	case pharmacy.FieldDeliveryMinutes:
		return m.DeliveryMinutes()
	case pharmacy.FieldInsurerNetworks:
		return m.InsurerNetworks()
	case pharmacy.FieldOpensAt:
		return m.OpensAt()
	case pharmacy.FieldClosesAt:
		return m.ClosesAt()
	case pharmacy.FieldOpen24h:
		return m.Open24h()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PharmacyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pharmacy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pharmacy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case pharmacy.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case pharmacy.FieldName:
		return m.OldName(ctx)
	case pharmacy.FieldAddress:
		return m.OldAddress(ctx)
	case pharmacy.FieldCity:
		return m.OldCity(ctx)
	case pharmacy.FieldPhone:
		return m.OldPhone(ctx)
	case pharmacy.FieldRating:
		return m.OldRating(ctx)
	case pharmacy.FieldDistanceKm:
		return m.OldDistanceKm(ctx)
	case pharmacy.FieldDeliveryAvailable:
		return m.OldDeliveryAvailable(ctx)
	case pharmacy.FieldDeliveryMinutes:
		return m.OldDeliveryMinutes(ctx)
	case pharmacy.FieldInsurerNetworks:
		return m.OldInsurerNetworks(ctx)
	case pharmacy.FieldOpensAt:
		return m.OldOpensAt(ctx)
	case pharmacy.FieldClosesAt:
		return m.OldClosesAt(ctx)
	case pharmacy.FieldOpen24h:
		return m.OldOpen24h(ctx)
	}
	return nil, fmt.Errorf("unknown Pharmacy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PharmacyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pharmacy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pharmacy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case pharmacy.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case pharmacy.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pharmacy.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case pharmacy.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case pharmacy.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case pharmacy.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case pharmacy.FieldDistanceKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistanceKm(v)
		return nil
	case pharmacy.FieldDeliveryAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryAvailable(v)
		return nil
	case pharmacy.FieldDeliveryMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryMinutes(v)
		return nil
	case pharmacy.FieldInsurerNetworks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsurerNetworks(v)
		return nil
	case pharmacy.FieldOpensAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpensAt(v)
		return nil
	case pharmacy.FieldClosesAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosesAt(v)
		return nil
	case pharmacy.FieldOpen24h:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpen24h(v)
		return nil
	}
	return fmt.Errorf("unknown Pharmacy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PharmacyMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, pharmacy.FieldRating)
	}
	if m.adddistance_km != nil {
		fields = append(fields, pharmacy.FieldDistanceKm)
	}
	if m.adddelivery_minutes != nil {
		fields = append(fields, pharmacy.FieldDeliveryMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PharmacyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pharmacy.FieldRating:
		return m.AddedRating()
	case pharmacy.FieldDistanceKm:
		return m.AddedDistanceKm()
	case pharmacy.FieldDeliveryMinutes:
		return m.AddedDeliveryMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PharmacyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pharmacy.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case pharmacy.FieldDistanceKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistanceKm(v)
		return nil
	case pharmacy.FieldDeliveryMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveryMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Pharmacy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PharmacyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pharmacy.FieldDeletedAt) {
		fields = append(fields, pharmacy.FieldDeletedAt)
	}
	if m.FieldCleared(pharmacy.FieldPhone) {
		fields = append(fields, pharmacy.FieldPhone)
	}
	if m.FieldCleared(pharmacy.FieldInsurerNetworks) {
		fields = append(fields, pharmacy.FieldInsurerNetworks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PharmacyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PharmacyMutation) ClearField(name string) error {
	switch name {
	case pharmacy.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case pharmacy.FieldPhone:
		m.ClearPhone()
		return nil
	case pharmacy.FieldInsurerNetworks:
		m.ClearInsurerNetworks()
		return nil
	}
	return fmt.Errorf("unknown Pharmacy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PharmacyMutation) ResetField(name string) error {
	switch name {
	case pharmacy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pharmacy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case pharmacy.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case pharmacy.FieldName:
		m.ResetName()
		return nil
	case pharmacy.FieldAddress:
		m.ResetAddress()
		return nil
	case pharmacy.FieldCity:
		m.ResetCity()
		return nil
	case pharmacy.FieldPhone:
		m.ResetPhone()
		return nil
	case pharmacy.FieldRating:
		m.ResetRating()
		return nil
	case pharmacy.FieldDistanceKm:
		m.ResetDistanceKm()
		return nil
	case pharmacy.FieldDeliveryAvailable:
		m.ResetDeliveryAvailable()
		return nil
	case pharmacy.FieldDeliveryMinutes:
		m.ResetDeliveryMinutes()
		return nil
	case pharmacy.FieldInsurerNetworks:
		m.ResetInsurerNetworks()
		return nil
	case pharmacy.FieldOpensAt:
		m.ResetOpensAt()
		return nil
	case pharmacy.FieldClosesAt:
		m.ResetClosesAt()
		return nil
	case pharmacy.FieldOpen24h:
		m.ResetOpen24h()
		return nil
	}
	return fmt.Errorf("unknown Pharmacy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PharmacyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PharmacyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PharmacyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PharmacyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PharmacyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PharmacyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PharmacyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Pharmacy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PharmacyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Pharmacy edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	created_at                 *time.Time
	updated_at                 *time.Time
	deleted_at                 *time.Time
	phone                      *string
	phone_verified             *bool
	email                      *string
	password_hash              *string
	full_name                  *string
	date_of_birth              *time.Time
	gender                     *profile.Gender
	blood_type                 *profile.BloodType
	insurance_provider         *string
	insurance_policy_encrypted *string
	avatar_url                 *string
	blood_donor                *bool
	city                       *string
	last_login_at              *time.Time
	failed_login_attempts      *int
	addfailed_login_attempts   *int
	last_failed_login_at       *time.Time
	locked_until               *time.Time
	status                     *profile.Status
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Profile, error)
	predicates                 []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProfileMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProfileMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProfileMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[profile.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProfileMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[profile.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProfileMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, profile.FieldDeletedAt)
}

// SetPhone sets the "phone" field.
func (m *ProfileMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ProfileMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *ProfileMutation) ResetPhone() {
	m.phone = nil
}

// SetPhoneVerified sets the "phone_verified" field.
func (m *ProfileMutation) SetPhoneVerified(b bool) {
	m.phone_verified = &b
}

// PhoneVerified returns the value of the "phone_verified" field in the mutation.
func (m *ProfileMutation) PhoneVerified() (r bool, exists bool) {
	v := m.phone_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneVerified returns the old "phone_verified" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPhoneVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneVerified: %w", err)
	}
	return oldValue.PhoneVerified, nil
}

// ResetPhoneVerified resets all changes to the "phone_verified" field.
func (m *ProfileMutation) ResetPhoneVerified() {
	m.phone_verified = nil
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[profile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[profile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, profile.FieldEmail)
}

// SetPasswordHash sets the "password_hash" field.
func (m *ProfileMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *ProfileMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *ProfileMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[profile.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *ProfileMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[profile.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *ProfileMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, profile.FieldPasswordHash)
}

// SetFullName sets the "full_name" field.
func (m *ProfileMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ProfileMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ProfileMutation) ResetFullName() {
	m.full_name = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *ProfileMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *ProfileMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *ProfileMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[profile.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *ProfileMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[profile.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *ProfileMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, profile.FieldDateOfBirth)
}

// SetGender sets the "gender" field.
func (m *ProfileMutation) SetGender(pr profile.Gender) {
	m.gender = &pr
}

// Gender returns the value of the "gender" field in the mutation.
func (m *ProfileMutation) Gender() (r profile.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldGender(ctx context.Context) (v *profile.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *ProfileMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[profile.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *ProfileMutation) GenderCleared() bool {
	_, ok := m.clearedFields[profile.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *ProfileMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, profile.FieldGender)
}

// SetBloodType sets the "blood_type" field.
func (m *ProfileMutation) SetBloodType(pt profile.BloodType) {
	m.blood_type = &pt
}

// BloodType returns the value of the "blood_type" field in the mutation.
func (m *ProfileMutation) BloodType() (r profile.BloodType, exists bool) {
	v := m.blood_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodType returns the old "blood_type" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldBloodType(ctx context.Context) (v *profile.BloodType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodType: %w", err)
	}
	return oldValue.BloodType, nil
}

// ClearBloodType clears the value of the "blood_type" field.
func (m *ProfileMutation) ClearBloodType() {
	m.blood_type = nil
	m.clearedFields[profile.FieldBloodType] = struct{}{}
}

// BloodTypeCleared returns if the "blood_type" field was cleared in this mutation.
func (m *ProfileMutation) BloodTypeCleared() bool {
	_, ok := m.clearedFields[profile.FieldBloodType]
	return ok
}

// ResetBloodType resets all changes to the "blood_type" field.
func (m *ProfileMutation) ResetBloodType() {
	m.blood_type = nil
	delete(m.clearedFields, profile.FieldBloodType)
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (m *ProfileMutation) SetInsuranceProvider(s string) {
	m.insurance_provider = &s
}

// InsuranceProvider returns the value of the "insurance_provider" field in the mutation.
func (m *ProfileMutation) InsuranceProvider() (r string, exists bool) {
	v := m.insurance_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceProvider returns the old "insurance_provider" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldInsuranceProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceProvider: %w", err)
	}
	return oldValue.InsuranceProvider, nil
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (m *ProfileMutation) ClearInsuranceProvider() {
	m.insurance_provider = nil
	m.clearedFields[profile.FieldInsuranceProvider] = struct{}{}
}

// InsuranceProviderCleared returns if the "insurance_provider" field was cleared in this mutation.
func (m *ProfileMutation) InsuranceProviderCleared() bool {
	_, ok := m.clearedFields[profile.FieldInsuranceProvider]
	return ok
}

// ResetInsuranceProvider resets all changes to the "insurance_provider" field.
func (m *ProfileMutation) ResetInsuranceProvider() {
	m.insurance_provider = nil
	delete(m.clearedFields, profile.FieldInsuranceProvider)
}

// SetInsurancePolicyEncrypted sets the "insurance_policy_encrypted" field.
func (m *ProfileMutation) SetInsurancePolicyEncrypted(s string) {
	m.insurance_policy_encrypted = &s
}

// InsurancePolicyEncrypted returns the value of the "insurance_policy_encrypted" field in the mutation.
func (m *ProfileMutation) InsurancePolicyEncrypted() (r string, exists bool) {
	v := m.insurance_policy_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldInsurancePolicyEncrypted returns the old "insurance_policy_encrypted" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldInsurancePolicyEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsurancePolicyEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsurancePolicyEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsurancePolicyEncrypted: %w", err)
	}
	return oldValue.InsurancePolicyEncrypted, nil
}

// ClearInsurancePolicyEncrypted clears the value of the "insurance_policy_encrypted" field.
func (m *ProfileMutation) ClearInsurancePolicyEncrypted() {
	m.insurance_policy_encrypted = nil
	m.clearedFields[profile.FieldInsurancePolicyEncrypted] = struct{}{}
}

// InsurancePolicyEncryptedCleared returns if the "insurance_policy_encrypted" field was cleared in this mutation.
func (m *ProfileMutation) InsurancePolicyEncryptedCleared() bool {
	_, ok := m.clearedFields[profile.FieldInsurancePolicyEncrypted]
	return ok
}

// ResetInsurancePolicyEncrypted resets all changes to the "insurance_policy_encrypted" field.
func (m *ProfileMutation) ResetInsurancePolicyEncrypted() {
	m.insurance_policy_encrypted = nil
	delete(m.clearedFields, profile.FieldInsurancePolicyEncrypted)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *ProfileMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *ProfileMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldAvatarURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *ProfileMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[profile.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *ProfileMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[profile.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *ProfileMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, profile.FieldAvatarURL)
}

// SetBloodDonor sets the "blood_donor" field.
func (m *ProfileMutation) SetBloodDonor(b bool) {
	m.blood_donor = &b
}

// BloodDonor returns the value of the "blood_donor" field in the mutation.
func (m *ProfileMutation) BloodDonor() (r bool, exists bool) {
	v := m.blood_donor
	if v == nil {
		return
	}
	return *v, true
}

// OldBloodDonor returns the old "blood_donor" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldBloodDonor(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloodDonor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloodDonor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloodDonor: %w", err)
	}
	return oldValue.BloodDonor, nil
}

// ResetBloodDonor resets all changes to the "blood_donor" field.
func (m *ProfileMutation) ResetBloodDonor() {
	m.blood_donor = nil
}

// SetCity sets the "city" field.
func (m *ProfileMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ProfileMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ProfileMutation) ClearCity() {
	m.city = nil
	m.clearedFields[profile.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ProfileMutation) CityCleared() bool {
	_, ok := m.clearedFields[profile.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ProfileMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, profile.FieldCity)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *ProfileMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *ProfileMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *ProfileMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[profile.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *ProfileMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[profile.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *ProfileMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, profile.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *ProfileMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *ProfileMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *ProfileMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *ProfileMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *ProfileMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (m *ProfileMutation) SetLastFailedLoginAt(t time.Time) {
	m.last_failed_login_at = &t
}

// LastFailedLoginAt returns the value of the "last_failed_login_at" field in the mutation.
func (m *ProfileMutation) LastFailedLoginAt() (r time.Time, exists bool) {
	v := m.last_failed_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFailedLoginAt returns the old "last_failed_login_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLastFailedLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFailedLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFailedLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFailedLoginAt: %w", err)
	}
	return oldValue.LastFailedLoginAt, nil
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (m *ProfileMutation) ClearLastFailedLoginAt() {
	m.last_failed_login_at = nil
	m.clearedFields[profile.FieldLastFailedLoginAt] = struct{}{}
}

// LastFailedLoginAtCleared returns if the "last_failed_login_at" field was cleared in this mutation.
func (m *ProfileMutation) LastFailedLoginAtCleared() bool {
	_, ok := m.clearedFields[profile.FieldLastFailedLoginAt]
	return ok
}

// ResetLastFailedLoginAt resets all changes to the "last_failed_login_at" field.
func (m *ProfileMutation) ResetLastFailedLoginAt() {
	m.last_failed_login_at = nil
	delete(m.clearedFields, profile.FieldLastFailedLoginAt)
}

// SetLockedUntil sets the "locked_until" field.
func (m *ProfileMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *ProfileMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *ProfileMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[profile.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *ProfileMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[profile.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *ProfileMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, profile.FieldLockedUntil)
}

// SetStatus sets the "status" field.
func (m *ProfileMutation) SetStatus(pr profile.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProfileMutation) Status() (r profile.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldStatus(ctx context.Context) (v profile.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProfileMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, profile.FieldDeletedAt)
	}
	if m.phone != nil {
		fields = append(fields, profile.FieldPhone)
	}
	if m.phone_verified != nil {
		fields = append(fields, profile.FieldPhoneVerified)
	}
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, profile.FieldPasswordHash)
	}
	if m.full_name != nil {
		fields = append(fields, profile.FieldFullName)
	}
	if m.date_of_birth != nil {
		fields = append(fields, profile.FieldDateOfBirth)
	}
	if m.gender != nil {
		fields = append(fields, profile.FieldGender)
	}
	if m.blood_type != nil {
		fields = append(fields, profile.FieldBloodType)
	}
	if m.insurance_provider != nil {
		fields = append(fields, profile.FieldInsuranceProvider)
	}
	if m.insurance_policy_encrypted != nil {
		fields = append(fields, profile.FieldInsurancePolicyEncrypted)
	}
	if m.avatar_url != nil {
		fields = append(fields, profile.FieldAvatarURL)
	}
	if m.blood_donor != nil {
		fields = append(fields, profile.FieldBloodDonor)
	}
	if m.city != nil {
		fields = append(fields, profile.FieldCity)
	}
	if m.last_login_at != nil {
		fields = append(fields, profile.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, profile.FieldFailedLoginAttempts)
	}
	if m.last_failed_login_at != nil {
		fields = append(fields, profile.FieldLastFailedLoginAt)
	}
	if m.locked_until != nil {
		fields = append(fields, profile.FieldLockedUntil)
	}
	if m.status != nil {
		fields = append(fields, profile.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	case profile.FieldDeletedAt:
		return m.DeletedAt()
	case profile.FieldPhone:
		return m.Phone()
	case profile.FieldPhoneVerified:
		return m.PhoneVerified()
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldPasswordHash:
		return m.PasswordHash()
	case profile.FieldFullName:
		return m.FullName()
	case profile.FieldDateOfBirth:
		return m.DateOfBirth()
	case profile.FieldGender:
		return m.Gender()
	case profile.FieldBloodType:
		return m.BloodType()
	case profile.FieldInsuranceProvider:
		return m.InsuranceProvider()
	case profile.FieldInsurancePolicyEncrypted:
		return m.InsurancePolicyEncrypted()
	case profile.FieldAvatarURL:
		return m.AvatarURL()
	case profile.FieldBloodDonor:
		return m.BloodDonor()
	case profile.FieldCity:
		return m.City()
	case profile.FieldLastLoginAt:
		return m.LastLoginAt()
	case profile.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case profile.FieldLastFailedLoginAt:
		return m.LastFailedLoginAt()
	case profile.FieldLockedUntil:
		return m.LockedUntil()
	case profile.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case profile.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case profile.FieldPhone:
		return m.OldPhone(ctx)
	case profile.FieldPhoneVerified:
		return m.OldPhoneVerified(ctx)
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case profile.FieldFullName:
		return m.OldFullName(ctx)
	case profile.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case profile.FieldGender:
		return m.OldGender(ctx)
	case profile.FieldBloodType:
		return m.OldBloodType(ctx)
	case profile.FieldInsuranceProvider:
		return m.OldInsuranceProvider(ctx)
	case profile.FieldInsurancePolicyEncrypted:
		return m.OldInsurancePolicyEncrypted(ctx)
	case profile.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case profile.FieldBloodDonor:
		return m.OldBloodDonor(ctx)
	case profile.FieldCity:
		return m.OldCity(ctx)
	case profile.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case profile.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case profile.FieldLastFailedLoginAt:
		return m.OldLastFailedLoginAt(ctx)
	case profile.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case profile.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case profile.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case profile.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case profile.FieldPhoneVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneVerified(v)
		return nil
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case profile.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case profile.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case profile.FieldGender:
		v, ok := value.(profile.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case profile.FieldBloodType:
		v, ok := value.(profile.BloodType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodType(v)
		return nil
	case profile.FieldInsuranceProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceProvider(v)
		return nil
	case profile.FieldInsurancePolicyEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsurancePolicyEncrypted(v)
		return nil
	case profile.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case profile.FieldBloodDonor:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloodDonor(v)
		return nil
	case profile.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case profile.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case profile.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case profile.FieldLastFailedLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFailedLoginAt(v)
		return nil
	case profile.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case profile.FieldStatus:
		v, ok := value.(profile.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, profile.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldDeletedAt) {
		fields = append(fields, profile.FieldDeletedAt)
	}
	if m.FieldCleared(profile.FieldEmail) {
		fields = append(fields, profile.FieldEmail)
	}
	if m.FieldCleared(profile.FieldPasswordHash) {
		fields = append(fields, profile.FieldPasswordHash)
	}
	if m.FieldCleared(profile.FieldDateOfBirth) {
		fields = append(fields, profile.FieldDateOfBirth)
	}
	if m.FieldCleared(profile.FieldGender) {
		fields = append(fields, profile.FieldGender)
	}
	if m.FieldCleared(profile.FieldBloodType) {
		fields = append(fields, profile.FieldBloodType)
	}
	if m.FieldCleared(profile.FieldInsuranceProvider) {
		fields = append(fields, profile.FieldInsuranceProvider)
	}
	if m.FieldCleared(profile.FieldInsurancePolicyEncrypted) {
		fields = append(fields, profile.FieldInsurancePolicyEncrypted)
	}
	if m.FieldCleared(profile.FieldAvatarURL) {
		fields = append(fields, profile.FieldAvatarURL)
	}
	if m.FieldCleared(profile.FieldCity) {
		fields = append(fields, profile.FieldCity)
	}
	if m.FieldCleared(profile.FieldLastLoginAt) {
		fields = append(fields, profile.FieldLastLoginAt)
	}
	if m.FieldCleared(profile.FieldLastFailedLoginAt) {
		fields = append(fields, profile.FieldLastFailedLoginAt)
	}
	if m.FieldCleared(profile.FieldLockedUntil) {
		fields = append(fields, profile.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case profile.FieldEmail:
		m.ClearEmail()
		return nil
	case profile.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case profile.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case profile.FieldGender:
		m.ClearGender()
		return nil
	case profile.FieldBloodType:
		m.ClearBloodType()
		return nil
	case profile.FieldInsuranceProvider:
		m.ClearInsuranceProvider()
		return nil
	case profile.FieldInsurancePolicyEncrypted:
		m.ClearInsurancePolicyEncrypted()
		return nil
	case profile.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	case profile.FieldCity:
		m.ClearCity()
		return nil
	case profile.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case profile.FieldLastFailedLoginAt:
		m.ClearLastFailedLoginAt()
		return nil
	case profile.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case profile.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case profile.FieldPhone:
		m.ResetPhone()
		return nil
	case profile.FieldPhoneVerified:
		m.ResetPhoneVerified()
		return nil
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case profile.FieldFullName:
		m.ResetFullName()
		return nil
	case profile.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case profile.FieldGender:
		m.ResetGender()
		return nil
	case profile.FieldBloodType:
		m.ResetBloodType()
		return nil
	case profile.FieldInsuranceProvider:
		m.ResetInsuranceProvider()
		return nil
	case profile.FieldInsurancePolicyEncrypted:
		m.ResetInsurancePolicyEncrypted()
		return nil
	case profile.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case profile.FieldBloodDonor:
		m.ResetBloodDonor()
		return nil
	case profile.FieldCity:
		m.ResetCity()
		return nil
	case profile.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case profile.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case profile.FieldLastFailedLoginAt:
		m.ResetLastFailedLoginAt()
		return nil
	case profile.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case profile.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}

// TimeSlotMutation represents an operation that mutates the TimeSlot nodes in the graph.
type TimeSlotMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	doctor_id     *uuid.UUID
	start_time    *time.Time
	end_time      *time.Time
	status        *timeslot.Status
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TimeSlot, error)
	predicates    []predicate.TimeSlot
}

var _ ent.Mutation = (*TimeSlotMutation)(nil)

// timeslotOption allows management of the mutation configuration using functional options.
type timeslotOption func(*TimeSlotMutation)

// newTimeSlotMutation creates new mutation for the TimeSlot entity.
func newTimeSlotMutation(c config, op Op, opts ...timeslotOption) *TimeSlotMutation {
	m := &TimeSlotMutation{
		config:        c,
		op:            op,
		typ:           TypeTimeSlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimeSlotID sets the ID field of the mutation.
func withTimeSlotID(id uuid.UUID) timeslotOption {
	return func(m *TimeSlotMutation) {
		var (
			err   error
			once  sync.Once
			value *TimeSlot
		)
		m.oldValue = func(ctx context.Context) (*TimeSlot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimeSlot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimeSlot sets the old TimeSlot of the mutation.
func withTimeSlot(node *TimeSlot) timeslotOption {
	return func(m *TimeSlotMutation) {
		m.oldValue = func(context.Context) (*TimeSlot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimeSlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimeSlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimeSlot entities.
func (m *TimeSlotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimeSlotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimeSlotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimeSlot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TimeSlotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimeSlotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimeSlotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimeSlotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimeSlotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TimeSlotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *TimeSlotMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *TimeSlotMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *TimeSlotMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *TimeSlotMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TimeSlotMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TimeSlotMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TimeSlotMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TimeSlotMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TimeSlotMutation) ResetEndTime() {
	m.end_time = nil
}

// SetStatus sets the "status" field.
func (m *TimeSlotMutation) SetStatus(t timeslot.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TimeSlotMutation) Status() (r timeslot.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStatus(ctx context.Context) (v timeslot.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TimeSlotMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the TimeSlotMutation builder.
func (m *TimeSlotMutation) Where(ps ...predicate.TimeSlot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimeSlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimeSlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimeSlot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimeSlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimeSlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimeSlot).
func (m *TimeSlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimeSlotMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, timeslot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timeslot.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, timeslot.FieldDoctorID)
	}
	if m.start_time != nil {
		fields = append(fields, timeslot.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, timeslot.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, timeslot.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimeSlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timeslot.FieldCreatedAt:
		return m.CreatedAt()
	case timeslot.FieldUpdatedAt:
		return m.UpdatedAt()
	case timeslot.FieldDoctorID:
		return m.DoctorID()
	case timeslot.FieldStartTime:
		return m.StartTime()
	case timeslot.FieldEndTime:
		return m.EndTime()
	case timeslot.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimeSlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timeslot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timeslot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case timeslot.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case timeslot.FieldStartTime:
		return m.OldStartTime(ctx)
	case timeslot.FieldEndTime:
		return m.OldEndTime(ctx)
	case timeslot.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown TimeSlot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timeslot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timeslot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case timeslot.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case timeslot.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case timeslot.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case timeslot.FieldStatus:
		v, ok := value.(timeslot.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimeSlotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimeSlotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimeSlot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimeSlotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimeSlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimeSlotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TimeSlot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimeSlotMutation) ResetField(name string) error {
	switch name {
	case timeslot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timeslot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case timeslot.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case timeslot.FieldStartTime:
		m.ResetStartTime()
		return nil
	case timeslot.FieldEndTime:
		m.ResetEndTime()
		return nil
	case timeslot.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimeSlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimeSlotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimeSlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimeSlotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimeSlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimeSlotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimeSlotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TimeSlot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimeSlotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TimeSlot edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	user_id            *uuid.UUID
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSession edge %s", name)
}

// WorkshopMutation represents an operation that mutates the Workshop nodes in the graph.
type WorkshopMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	deleted_at          *time.Time
	organizer_id        *uuid.UUID
	title               *string
	description         *string
	topic               *string
	starts_at           *time.Time
	duration_minutes    *int
	addduration_minutes *int
	capacity            *int
	addcapacity         *int
	enrolled_count      *int
	addenrolled_count   *int
	online              *bool
	location            *string
	meeting_url         *string
	status              *workshop.Status
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Workshop, error)
	predicates          []predicate.Workshop
}

var _ ent.Mutation = (*WorkshopMutation)(nil)

// workshopOption allows management of the mutation configuration using functional options.
type workshopOption func(*WorkshopMutation)

// newWorkshopMutation creates new mutation for the Workshop entity.
func newWorkshopMutation(c config, op Op, opts ...workshopOption) *WorkshopMutation {
	m := &WorkshopMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkshop,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkshopID sets the ID field of the mutation.
func withWorkshopID(id uuid.UUID) workshopOption {
	return func(m *WorkshopMutation) {
		var (
			err   error
			once  sync.Once
			value *Workshop
		)
		m.oldValue = func(ctx context.Context) (*Workshop, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workshop.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkshop sets the old Workshop of the mutation.
func withWorkshop(node *Workshop) workshopOption {
	return func(m *WorkshopMutation) {
		m.oldValue = func(context.Context) (*Workshop, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkshopMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkshopMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workshop entities.
func (m *WorkshopMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkshopMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkshopMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workshop.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkshopMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkshopMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkshopMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkshopMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkshopMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkshopMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkshopMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkshopMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkshopMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workshop.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkshopMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workshop.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkshopMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workshop.FieldDeletedAt)
}

// SetOrganizerID sets the "organizer_id" field.
func (m *WorkshopMutation) SetOrganizerID(u uuid.UUID) {
	m.organizer_id = &u
}

// OrganizerID returns the value of the "organizer_id" field in the mutation.
func (m *WorkshopMutation) OrganizerID() (r uuid.UUID, exists bool) {
	v := m.organizer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizerID returns the old "organizer_id" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldOrganizerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizerID: %w", err)
	}
	return oldValue.OrganizerID, nil
}

// ResetOrganizerID resets all changes to the "organizer_id" field.
func (m *WorkshopMutation) ResetOrganizerID() {
	m.organizer_id = nil
}

// SetTitle sets the "title" field.
func (m *WorkshopMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WorkshopMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *WorkshopMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *WorkshopMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkshopMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkshopMutation) ResetDescription() {
	m.description = nil
}

// SetTopic sets the "topic" field.
func (m *WorkshopMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *WorkshopMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *WorkshopMutation) ResetTopic() {
	m.topic = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *WorkshopMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *WorkshopMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *WorkshopMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *WorkshopMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *WorkshopMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *WorkshopMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *WorkshopMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *WorkshopMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetCapacity sets the "capacity" field.
func (m *WorkshopMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *WorkshopMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *WorkshopMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *WorkshopMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *WorkshopMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetEnrolledCount sets the "enrolled_count" field.
func (m *WorkshopMutation) SetEnrolledCount(i int) {
	m.enrolled_count = &i
	m.addenrolled_count = nil
}

// EnrolledCount returns the value of the "enrolled_count" field in the mutation.
func (m *WorkshopMutation) EnrolledCount() (r int, exists bool) {
	v := m.enrolled_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrolledCount returns the old "enrolled_count" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldEnrolledCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrolledCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrolledCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrolledCount: %w", err)
	}
	return oldValue.EnrolledCount, nil
}

// AddEnrolledCount adds i to the "enrolled_count" field.
func (m *WorkshopMutation) AddEnrolledCount(i int) {
	if m.addenrolled_count != nil {
		*m.addenrolled_count += i
	} else {
		m.addenrolled_count = &i
	}
}

// AddedEnrolledCount returns the value that was added to the "enrolled_count" field in this mutation.
func (m *WorkshopMutation) AddedEnrolledCount() (r int, exists bool) {
	v := m.addenrolled_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEnrolledCount resets all changes to the "enrolled_count" field.
func (m *WorkshopMutation) ResetEnrolledCount() {
	m.enrolled_count = nil
	m.addenrolled_count = nil
}

// SetOnline sets the "online" field.
func (m *WorkshopMutation) SetOnline(b bool) {
	m.online = &b
}

// Online returns the value of the "online" field in the mutation.
func (m *WorkshopMutation) Online() (r bool, exists bool) {
	v := m.online
	if v == nil {
		return
	}
	return *v, true
}

// OldOnline returns the old "online" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldOnline(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnline: %w", err)
	}
	return oldValue.Online, nil
}

// ResetOnline resets all changes to the "online" field.
func (m *WorkshopMutation) ResetOnline() {
	m.online = nil
}

// SetLocation sets the "location" field.
func (m *WorkshopMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *WorkshopMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *WorkshopMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[workshop.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *WorkshopMutation) LocationCleared() bool {
	_, ok := m.clearedFields[workshop.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *WorkshopMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, workshop.FieldLocation)
}

// SetMeetingURL sets the "meeting_url" field.
func (m *WorkshopMutation) SetMeetingURL(s string) {
	m.meeting_url = &s
}

// MeetingURL returns the value of the "meeting_url" field in the mutation.
func (m *WorkshopMutation) MeetingURL() (r string, exists bool) {
	v := m.meeting_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingURL returns the old "meeting_url" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldMeetingURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingURL: %w", err)
	}
	return oldValue.MeetingURL, nil
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (m *WorkshopMutation) ClearMeetingURL() {
	m.meeting_url = nil
	m.clearedFields[workshop.FieldMeetingURL] = struct{}{}
}

// MeetingURLCleared returns if the "meeting_url" field was cleared in this mutation.
func (m *WorkshopMutation) MeetingURLCleared() bool {
	_, ok := m.clearedFields[workshop.FieldMeetingURL]
	return ok
}

// ResetMeetingURL resets all changes to the "meeting_url" field.
func (m *WorkshopMutation) ResetMeetingURL() {
	m.meeting_url = nil
	delete(m.clearedFields, workshop.FieldMeetingURL)
}

// SetStatus sets the "status" field.
func (m *WorkshopMutation) SetStatus(w workshop.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkshopMutation) Status() (r workshop.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workshop entity.
// If the Workshop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopMutation) OldStatus(ctx context.Context) (v workshop.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkshopMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the WorkshopMutation builder.
func (m *WorkshopMutation) Where(ps ...predicate.Workshop) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkshopMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkshopMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workshop, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkshopMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkshopMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workshop).
func (m *WorkshopMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkshopMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, workshop.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workshop.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workshop.FieldDeletedAt)
	}
	if m.organizer_id != nil {
		fields = append(fields, workshop.FieldOrganizerID)
	}
	if m.title != nil {
		fields = append(fields, workshop.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, workshop.FieldDescription)
	}
	if m.topic != nil {
		fields = append(fields, workshop.FieldTopic)
	}
	if m.starts_at != nil {
		fields = append(fields, workshop.FieldStartsAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, workshop.FieldDurationMinutes)
	}
	if m.capacity != nil {
		fields = append(fields, workshop.FieldCapacity)
	}
	if m.enrolled_count != nil {
		fields = append(fields, workshop.FieldEnrolledCount)
	}
	if m.online != nil {
		fields = append(fields, workshop.FieldOnline)
	}
	if m.location != nil {
		fields = append(fields, workshop.FieldLocation)
	}
	if m.meeting_url != nil {
		fields = append(fields, workshop.FieldMeetingURL)
	}
	if m.status != nil {
		fields = append(fields, workshop.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkshopMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workshop.FieldCreatedAt:
		return m.CreatedAt()
	case workshop.FieldUpdatedAt:
		return m.UpdatedAt()
	case workshop.FieldDeletedAt:
		return m.DeletedAt()
	case workshop.FieldOrganizerID:
		return m.OrganizerID()
	case workshop.FieldTitle:
		return m.Title()
	case workshop.FieldDescription:
		return m.Description()
	case workshop.FieldTopic:
		return m.Topic()
	case workshop.FieldStartsAt:
		return m.StartsAt()
	case workshop.FieldDurationMinutes:
		return m.DurationMinutes()
	case workshop.FieldCapacity:
		return m.Capacity()
	case workshop.FieldEnrolledCount:
		return m.EnrolledCount()
	case workshop.FieldOnline:
		return m.Online()
	case workshop.FieldLocation:
		return m.Location()
	case workshop.FieldMeetingURL:
		return m.MeetingURL()
	case workshop.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkshopMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workshop.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workshop.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workshop.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case workshop.FieldOrganizerID:
		return m.OldOrganizerID(ctx)
	case workshop.FieldTitle:
		return m.OldTitle(ctx)
	case workshop.FieldDescription:
		return m.OldDescription(ctx)
	case workshop.FieldTopic:
		return m.OldTopic(ctx)
	case workshop.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case workshop.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case workshop.FieldCapacity:
		return m.OldCapacity(ctx)
	case workshop.FieldEnrolledCount:
		return m.OldEnrolledCount(ctx)
	case workshop.FieldOnline:
		return m.OldOnline(ctx)
	case workshop.FieldLocation:
		return m.OldLocation(ctx)
	case workshop.FieldMeetingURL:
		return m.OldMeetingURL(ctx)
	case workshop.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Workshop field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkshopMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workshop.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workshop.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workshop.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case workshop.FieldOrganizerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizerID(v)
		return nil
	case workshop.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case workshop.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workshop.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case workshop.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case workshop.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case workshop.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case workshop.FieldEnrolledCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrolledCount(v)
		return nil
	case workshop.FieldOnline:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnline(v)
		return nil
	case workshop.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case workshop.FieldMeetingURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingURL(v)
		return nil
	case workshop.FieldStatus:
		v, ok := value.(workshop.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Workshop field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkshopMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, workshop.FieldDurationMinutes)
	}
	if m.addcapacity != nil {
		fields = append(fields, workshop.FieldCapacity)
	}
	if m.addenrolled_count != nil {
		fields = append(fields, workshop.FieldEnrolledCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkshopMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workshop.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case workshop.FieldCapacity:
		return m.AddedCapacity()
	case workshop.FieldEnrolledCount:
		return m.AddedEnrolledCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkshopMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workshop.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case workshop.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	case workshop.FieldEnrolledCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnrolledCount(v)
		return nil
	}
	return fmt.Errorf("unknown Workshop numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkshopMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workshop.FieldDeletedAt) {
		fields = append(fields, workshop.FieldDeletedAt)
	}
	if m.FieldCleared(workshop.FieldLocation) {
		fields = append(fields, workshop.FieldLocation)
	}
	if m.FieldCleared(workshop.FieldMeetingURL) {
		fields = append(fields, workshop.FieldMeetingURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkshopMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkshopMutation) ClearField(name string) error {
	switch name {
	case workshop.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case workshop.FieldLocation:
		m.ClearLocation()
		return nil
	case workshop.FieldMeetingURL:
		m.ClearMeetingURL()
		return nil
	}
	return fmt.Errorf("unknown Workshop nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkshopMutation) ResetField(name string) error {
	switch name {
	case workshop.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workshop.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workshop.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case workshop.FieldOrganizerID:
		m.ResetOrganizerID()
		return nil
	case workshop.FieldTitle:
		m.ResetTitle()
		return nil
	case workshop.FieldDescription:
		m.ResetDescription()
		return nil
	case workshop.FieldTopic:
		m.ResetTopic()
		return nil
	case workshop.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case workshop.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case workshop.FieldCapacity:
		m.ResetCapacity()
		return nil
	case workshop.FieldEnrolledCount:
		m.ResetEnrolledCount()
		return nil
	case workshop.FieldOnline:
		m.ResetOnline()
		return nil
	case workshop.FieldLocation:
		m.ResetLocation()
		return nil
	case workshop.FieldMeetingURL:
		m.ResetMeetingURL()
		return nil
	case workshop.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Workshop field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkshopMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkshopMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkshopMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkshopMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkshopMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkshopMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkshopMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Workshop unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkshopMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Workshop edge %s", name)
}

// WorkshopEnrollmentMutation represents an operation that mutates the WorkshopEnrollment nodes in the graph.
type WorkshopEnrollmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	workshop_id   *uuid.UUID
	user_id       *uuid.UUID
	status        *workshopenrollment.Status
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WorkshopEnrollment, error)
	predicates    []predicate.WorkshopEnrollment
}

var _ ent.Mutation = (*WorkshopEnrollmentMutation)(nil)

// workshopenrollmentOption allows management of the mutation configuration using functional options.
type workshopenrollmentOption func(*WorkshopEnrollmentMutation)

// newWorkshopEnrollmentMutation creates new mutation for the WorkshopEnrollment entity.
func newWorkshopEnrollmentMutation(c config, op Op, opts ...workshopenrollmentOption) *WorkshopEnrollmentMutation {
	m := &WorkshopEnrollmentMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkshopEnrollment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkshopEnrollmentID sets the ID field of the mutation.
func withWorkshopEnrollmentID(id uuid.UUID) workshopenrollmentOption {
	return func(m *WorkshopEnrollmentMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkshopEnrollment
		)
		m.oldValue = func(ctx context.Context) (*WorkshopEnrollment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkshopEnrollment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkshopEnrollment sets the old WorkshopEnrollment of the mutation.
func withWorkshopEnrollment(node *WorkshopEnrollment) workshopenrollmentOption {
	return func(m *WorkshopEnrollmentMutation) {
		m.oldValue = func(context.Context) (*WorkshopEnrollment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkshopEnrollmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkshopEnrollmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkshopEnrollment entities.
func (m *WorkshopEnrollmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkshopEnrollmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkshopEnrollmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkshopEnrollment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkshopEnrollmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkshopEnrollmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkshopEnrollment entity.
// If the WorkshopEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopEnrollmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkshopEnrollmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkshopEnrollmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkshopEnrollmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkshopEnrollment entity.
// If the WorkshopEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopEnrollmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkshopEnrollmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetWorkshopID sets the "workshop_id" field.
func (m *WorkshopEnrollmentMutation) SetWorkshopID(u uuid.UUID) {
	m.workshop_id = &u
}

// WorkshopID returns the value of the "workshop_id" field in the mutation.
func (m *WorkshopEnrollmentMutation) WorkshopID() (r uuid.UUID, exists bool) {
	v := m.workshop_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkshopID returns the old "workshop_id" field's value of the WorkshopEnrollment entity.
// If the WorkshopEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopEnrollmentMutation) OldWorkshopID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkshopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkshopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkshopID: %w", err)
	}
	return oldValue.WorkshopID, nil
}

// ResetWorkshopID resets all changes to the "workshop_id" field.
func (m *WorkshopEnrollmentMutation) ResetWorkshopID() {
	m.workshop_id = nil
}

// SetUserID sets the "user_id" field.
func (m *WorkshopEnrollmentMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkshopEnrollmentMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkshopEnrollment entity.
// If the WorkshopEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopEnrollmentMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkshopEnrollmentMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *WorkshopEnrollmentMutation) SetStatus(w workshopenrollment.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkshopEnrollmentMutation) Status() (r workshopenrollment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkshopEnrollment entity.
// If the WorkshopEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkshopEnrollmentMutation) OldStatus(ctx context.Context) (v workshopenrollment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkshopEnrollmentMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the WorkshopEnrollmentMutation builder.
func (m *WorkshopEnrollmentMutation) Where(ps ...predicate.WorkshopEnrollment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkshopEnrollmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkshopEnrollmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkshopEnrollment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkshopEnrollmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkshopEnrollmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkshopEnrollment).
func (m *WorkshopEnrollmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkshopEnrollmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, workshopenrollment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workshopenrollment.FieldUpdatedAt)
	}
	if m.workshop_id != nil {
		fields = append(fields, workshopenrollment.FieldWorkshopID)
	}
	if m.user_id != nil {
		fields = append(fields, workshopenrollment.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, workshopenrollment.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkshopEnrollmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workshopenrollment.FieldCreatedAt:
		return m.CreatedAt()
	case workshopenrollment.FieldUpdatedAt:
		return m.UpdatedAt()
	case workshopenrollment.FieldWorkshopID:
		return m.WorkshopID()
	case workshopenrollment.FieldUserID:
		return m.UserID()
	case workshopenrollment.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkshopEnrollmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workshopenrollment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workshopenrollment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workshopenrollment.FieldWorkshopID:
		return m.OldWorkshopID(ctx)
	case workshopenrollment.FieldUserID:
		return m.OldUserID(ctx)
	case workshopenrollment.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown WorkshopEnrollment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkshopEnrollmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workshopenrollment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workshopenrollment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workshopenrollment.FieldWorkshopID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkshopID(v)
		return nil
	case workshopenrollment.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workshopenrollment.FieldStatus:
		v, ok := value.(workshopenrollment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown WorkshopEnrollment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkshopEnrollmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkshopEnrollmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkshopEnrollmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkshopEnrollment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkshopEnrollmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkshopEnrollmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkshopEnrollmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkshopEnrollment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkshopEnrollmentMutation) ResetField(name string) error {
	switch name {
	case workshopenrollment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workshopenrollment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workshopenrollment.FieldWorkshopID:
		m.ResetWorkshopID()
		return nil
	case workshopenrollment.FieldUserID:
		m.ResetUserID()
		return nil
	case workshopenrollment.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown WorkshopEnrollment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkshopEnrollmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkshopEnrollmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkshopEnrollmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkshopEnrollmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkshopEnrollmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkshopEnrollmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkshopEnrollmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkshopEnrollment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkshopEnrollmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkshopEnrollment edge %s", name)
}
