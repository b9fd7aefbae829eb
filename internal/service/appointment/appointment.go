package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/repo"
	entappt "github.com/auxillium/auxillium_backend/internal/repo/appointment"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	entslot "github.com/auxillium/auxillium_backend/internal/repo/timeslot"
	svcdoctor "github.com/auxillium/auxillium_backend/internal/service/doctor"
	"github.com/auxillium/auxillium_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Status   *string
	DoctorID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Page     int
	PerPage  int
}

type BookRequest struct {
	DoctorID   uuid.UUID
	MemberID   uuid.UUID
	TimeSlotID uuid.UUID
	VisitType  string // in_person | video
	Symptoms   *string
}

type CancelRequest struct {
	Reason *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, userID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, userID, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, userID uuid.UUID, req BookRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, userID, apptID uuid.UUID) error
	Cancel(ctx context.Context, userID, apptID uuid.UUID, req CancelRequest) error
	Complete(ctx context.Context, apptID uuid.UUID) error
	MarkNoShow(ctx context.Context, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db              *repo.Client
	nc              *nats.Conn
	doctors         svcdoctor.Service
	loc             *time.Location
	coveragePercent int
}

func New(db *repo.Client, nc *nats.Conn, doctors svcdoctor.Service, cfg *config.Config) Service {
	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil || loc == nil {
		loc = time.UTC
	}
	coverage := cfg.Booking.CoveragePercent
	if coverage <= 0 || coverage > 100 {
		coverage = 80
	}
	return &appointmentService{
		db:              db,
		nc:              nc,
		doctors:         doctors,
		loc:             loc,
		coveragePercent: coverage,
	}
}

func (s *appointmentService) List(ctx context.Context, userID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.UserID(userID))

	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	appts, err := q.
		Order(entappt.ByStartTime(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, userID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Book(ctx context.Context, userID uuid.UUID, req BookRequest) (*repo.Appointment, error) {
	d, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	m, err := s.db.FamilyMember.Query().
		Where(entmember.ID(req.MemberID), entmember.UserID(userID), entmember.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}

	slot, err := s.db.TimeSlot.Query().
		Where(entslot.ID(req.TimeSlotID), entslot.DoctorID(req.DoctorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}

	// Reject calendar dates that only exist through normalization overflow.
	st := slot.StartTime.In(s.loc)
	if !svcdoctor.ValidDay(st.Year(), st.Month(), st.Day(), s.loc) {
		return nil, ErrInvalidDate
	}

	// Lock the slot atomically: a conditional update that matches zero rows
	// means someone else got there first.
	updated, err := s.db.TimeSlot.Update().
		Where(
			entslot.ID(slot.ID),
			entslot.StatusEQ(entslot.StatusAvailable),
		).
		SetStatus(entslot.StatusBooked).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock slot: %w", err)
	}
	if updated == 0 {
		return nil, ErrSlotNotAvailable
	}

	provider := ""
	if m.InsuranceProvider != nil {
		provider = *m.InsuranceProvider
	}
	est := svcdoctor.ResolveCost(d.ConsultationFee, d.AcceptedInsurers, provider, s.coveragePercent)

	bookingCode, err := codes.GenerateBookingCode()
	if err != nil {
		return nil, fmt.Errorf("generate booking code: %w", err)
	}

	visitType := entappt.VisitType(req.VisitType)
	if err := entappt.VisitTypeValidator(visitType); err != nil {
		visitType = entappt.VisitTypeInPerson
	}

	c := s.db.Appointment.Create().
		SetUserID(userID).
		SetMemberID(req.MemberID).
		SetDoctorID(req.DoctorID).
		SetTimeSlotID(slot.ID).
		SetStartTime(slot.StartTime).
		SetEndTime(slot.EndTime).
		SetVisitType(visitType).
		SetBookingCode(bookingCode).
		SetConsultationFee(est.Fee).
		SetCoveredAmount(est.Covered).
		SetPayableAmount(est.YouPay)

	if est.Insured {
		c = c.SetInsuranceProvider(provider)
	}
	if req.Symptoms != nil {
		c = c.SetNillableSymptoms(req.Symptoms)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		// Release the slot; booking row creation failed after the lock.
		s.db.TimeSlot.Update().
			Where(entslot.ID(slot.ID), entslot.StatusEQ(entslot.StatusBooked)).
			SetStatus(entslot.StatusAvailable).
			Save(ctx)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if s.nc != nil {
		_ = s.nc.Publish("auxillium.appointment.created."+appt.ID.String(), []byte(appt.ID.String()))
	}
	return appt, nil
}

func (s *appointmentService) Confirm(ctx context.Context, userID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, userID, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusScheduled {
		return ErrInvalidTransition
	}
	return s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusConfirmed).
		Exec(ctx)
}

func (s *appointmentService) Cancel(ctx context.Context, userID, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.GetByID(ctx, userID, apptID)
	if err != nil {
		return err
	}

	switch appt.Status {
	case entappt.StatusCancelled, entappt.StatusCompleted, entappt.StatusNoShow:
		return ErrInvalidTransition
	}

	now := time.Now()
	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(now)
	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	// Reopen the slot for other patients.
	_, _ = s.db.TimeSlot.Update().
		Where(entslot.ID(appt.TimeSlotID), entslot.StatusEQ(entslot.StatusBooked)).
		SetStatus(entslot.StatusAvailable).
		Save(ctx)

	if s.nc != nil {
		_ = s.nc.Publish("auxillium.appointment.cancelled."+appt.ID.String(), []byte(appt.ID.String()))
	}
	return nil
}

func (s *appointmentService) Complete(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID, entappt.StatusCompleted)
}

func (s *appointmentService) MarkNoShow(ctx context.Context, apptID uuid.UUID) error {
	return s.transition(ctx, apptID, entappt.StatusNoShow)
}

// transition moves a live appointment to a terminal state. Completed and
// cancelled appointments never transition again.
func (s *appointmentService) transition(ctx context.Context, apptID uuid.UUID, to entappt.Status) error {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get appointment: %w", err)
	}

	switch appt.Status {
	case entappt.StatusCancelled, entappt.StatusCompleted, entappt.StatusNoShow:
		return ErrInvalidTransition
	}

	return s.db.Appointment.UpdateOne(appt).SetStatus(to).Exec(ctx)
}
