package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entappt "github.com/auxillium/auxillium_backend/internal/repo/appointment"
	entdoctor "github.com/auxillium/auxillium_backend/internal/repo/doctor"
	entdonation "github.com/auxillium/auxillium_backend/internal/repo/donation"
	entinitiative "github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	entmetric "github.com/auxillium/auxillium_backend/internal/repo/healthmetric"
	entprofile "github.com/auxillium/auxillium_backend/internal/repo/profile"
	"github.com/auxillium/auxillium_backend/internal/service/blood"
	"github.com/auxillium/auxillium_backend/internal/service/notification"
	"github.com/auxillium/auxillium_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	BloodSvc blood.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p.NC, p.DB, p.NotifSvc, p.Email)
			startBloodMatchWorker(p.NC, p.BloodSvc)
			startReceiptWorker(p.NC, p.DB, p.NotifSvc, p.Email)
			startMetricWorker(p.NC, p.DB)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

func parseIDPayload(msg *nats.Msg) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	return id, err == nil
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

func startAppointmentWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client) {
	_, err := nc.Subscribe("auxillium.appointment.created.*", func(msg *nats.Msg) {
		apptID, okID := parseIDPayload(msg)
		if !okID {
			return
		}
		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("appointment_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		doc, err := db.Doctor.Query().
			Where(entdoctor.ID(appt.DoctorID)).
			Only(ctx)
		if err != nil {
			slog.Warn("appointment_worker: doctor not found", "id", appt.DoctorID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: appt.UserID,
			Kind:   "appointment",
			Title:  "Appointment booked",
			Body:   "Your visit with " + doc.FullName + " is confirmed. Code " + appt.BookingCode + ".",
			Data:   map[string]string{"appointment_id": appt.ID.String()},
		})
		if err != nil {
			slog.Warn("appointment_worker: create notification failed", "err", err)
		}

		owner, err := db.Profile.Query().
			Where(entprofile.ID(appt.UserID)).
			Only(ctx)
		if err != nil || owner.Email == nil || *owner.Email == "" {
			return
		}

		m := email.AppointmentConfirmation(
			*owner.Email,
			owner.FullName,
			doc.FullName,
			doc.Specialty,
			appt.StartTime.Format("2006-01-02"),
			appt.StartTime.Format("15:04")+" to "+appt.EndTime.Format("15:04"),
			appt.BookingCode,
		)
		if err := mailer.Send(ctx, m); err != nil {
			slog.Warn("appointment_worker: confirmation email failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe appointment.created failed", "err", err)
	}

	_, err = nc.Subscribe("auxillium.appointment.cancelled.*", func(msg *nats.Msg) {
		apptID, okID := parseIDPayload(msg)
		if !okID {
			return
		}
		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("appointment_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		doc, err := db.Doctor.Query().
			Where(entdoctor.ID(appt.DoctorID)).
			Only(ctx)
		if err != nil {
			slog.Warn("appointment_worker: doctor not found", "id", appt.DoctorID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: appt.UserID,
			Kind:   "appointment",
			Title:  "Appointment cancelled",
			Body:   "Your visit with " + doc.FullName + " was cancelled.",
			Data:   map[string]string{"appointment_id": appt.ID.String()},
		})
		if err != nil {
			slog.Warn("appointment_worker: create notification failed", "err", err)
		}

		owner, err := db.Profile.Query().
			Where(entprofile.ID(appt.UserID)).
			Only(ctx)
		if err != nil || owner.Email == nil || *owner.Email == "" {
			return
		}

		m := email.AppointmentCancellation(
			*owner.Email,
			owner.FullName,
			doc.FullName,
			appt.StartTime.Format("2006-01-02"),
		)
		if err := mailer.Send(ctx, m); err != nil {
			slog.Warn("appointment_worker: cancellation email failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe appointment.cancelled failed", "err", err)
	}

	slog.Info("appointment_worker: started")
}

// ---------------------------------------------------------------------------
// blood_match_worker
// ---------------------------------------------------------------------------

func startBloodMatchWorker(nc *nats.Conn, bloodSvc blood.Service) {
	_, err := nc.Subscribe("auxillium.blood.request.created.*", func(msg *nats.Msg) {
		requestID, okID := parseIDPayload(msg)
		if !okID {
			return
		}

		notified, err := bloodSvc.NotifyCompatibleDonors(context.Background(), requestID)
		if err != nil {
			slog.Warn("blood_match_worker: notify donors failed", "request_id", requestID, "err", err)
			return
		}
		slog.Info("blood_match_worker: donors notified", "request_id", requestID, "count", notified)
	})
	if err != nil {
		slog.Error("blood_match_worker: subscribe blood.request.created failed", "err", err)
	}

	slog.Info("blood_match_worker: started")
}

// ---------------------------------------------------------------------------
// receipt_worker
// ---------------------------------------------------------------------------

func startReceiptWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client) {
	_, err := nc.Subscribe("auxillium.donation.received.*", func(msg *nats.Msg) {
		donationID, okID := parseIDPayload(msg)
		if !okID {
			return
		}
		ctx := context.Background()

		d, err := db.Donation.Query().
			Where(entdonation.ID(donationID)).
			Only(ctx)
		if err != nil {
			slog.Warn("receipt_worker: donation not found", "id", donationID, "err", err)
			return
		}
		if d.DonorID == nil {
			// anonymous drop-in, nobody to thank
			return
		}

		initiative, err := db.DonationInitiative.Query().
			Where(entinitiative.ID(d.InitiativeID)).
			Only(ctx)
		if err != nil {
			slog.Warn("receipt_worker: initiative not found", "id", d.InitiativeID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: *d.DonorID,
			Kind:   "donation",
			Title:  "Thank you for your donation",
			Body:   "Your contribution to " + initiative.Title + " was received.",
			Data:   map[string]string{"donation_id": d.ID.String(), "receipt": d.ReceiptReference},
		})
		if err != nil {
			slog.Warn("receipt_worker: create notification failed", "err", err)
		}

		donor, err := db.Profile.Query().
			Where(entprofile.ID(*d.DonorID)).
			Only(ctx)
		if err != nil || donor.Email == nil || *donor.Email == "" {
			return
		}

		m := email.DonationReceipt(
			*donor.Email,
			donor.FullName,
			initiative.Title,
			strconv.FormatInt(d.Amount, 10),
			d.ReceiptReference,
		)
		if err := mailer.Send(ctx, m); err != nil {
			slog.Warn("receipt_worker: receipt email failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("receipt_worker: subscribe donation.received failed", "err", err)
	}

	slog.Info("receipt_worker: started")
}

// ---------------------------------------------------------------------------
// metric_worker
// ---------------------------------------------------------------------------

// startMetricWorker keeps the smartwatch sync timestamp fresh when a
// metric lands for a member with a connected device.
func startMetricWorker(nc *nats.Conn, db *repo.Client) {
	_, err := nc.Subscribe("auxillium.metric.recorded.*", func(msg *nats.Msg) {
		metricID, okID := parseIDPayload(msg)
		if !okID {
			return
		}
		ctx := context.Background()

		m, err := db.HealthMetric.Query().
			Where(entmetric.ID(metricID)).
			Only(ctx)
		if err != nil {
			slog.Warn("metric_worker: metric not found", "id", metricID, "err", err)
			return
		}

		_, err = db.FamilyMember.Update().
			Where(
				entmember.ID(m.MemberID),
				entmember.DeviceConnected(true),
			).
			SetDeviceLastSyncedAt(m.RecordedAt).
			Save(ctx)
		if err != nil {
			slog.Warn("metric_worker: sync timestamp update failed", "member_id", m.MemberID, "err", err)
		}
	})
	if err != nil {
		slog.Error("metric_worker: subscribe metric.recorded failed", "err", err)
	}

	slog.Info("metric_worker: started")
}
