package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/repo"
	"github.com/auxillium/auxillium_backend/internal/service/appointment"
	svcassistant "github.com/auxillium/auxillium_backend/internal/service/assistant"
	"github.com/auxillium/auxillium_backend/internal/service/auth"
	"github.com/auxillium/auxillium_backend/internal/service/blood"
	"github.com/auxillium/auxillium_backend/internal/service/contact"
	"github.com/auxillium/auxillium_backend/internal/service/doctor"
	"github.com/auxillium/auxillium_backend/internal/service/donation"
	"github.com/auxillium/auxillium_backend/internal/service/family"
	"github.com/auxillium/auxillium_backend/internal/service/health"
	"github.com/auxillium/auxillium_backend/internal/service/medication"
	"github.com/auxillium/auxillium_backend/internal/service/notification"
	"github.com/auxillium/auxillium_backend/internal/service/pharmacy"
	"github.com/auxillium/auxillium_backend/internal/service/profile"
	"github.com/auxillium/auxillium_backend/internal/service/triage"
	"github.com/auxillium/auxillium_backend/internal/service/workshop"
	assistantpkg "github.com/auxillium/auxillium_backend/pkg/assistant"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
	"github.com/auxillium/auxillium_backend/pkg/sms"
	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideProfileService,
		ProvideFamilyService,
		ProvideContactService,
		ProvideHealthService,
		ProvideMedicationService,
		ProvideDoctorService,
		ProvideAppointmentService,
		ProvidePharmacyService,
		ProvideTriageService,
		ProvideBloodService,
		ProvideDonationService,
		ProvideWorkshopService,
		ProvideNotificationService,
		ProvideAssistantService,
		ProvideTokenManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	tokens *jwttoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, smsCli, tokens, authz, cfg)
}

func ProvideProfileService(db *repo.Client, cfg *config.Config) (profile.Service, error) {
	return profile.New(db, cfg)
}

func ProvideFamilyService(db *repo.Client, cfg *config.Config) (family.Service, error) {
	return family.New(db, cfg)
}

func ProvideContactService(db *repo.Client) contact.Service {
	return contact.New(db)
}

func ProvideHealthService(db *repo.Client, nc *nats.Conn) health.Service {
	return health.New(db, nc)
}

func ProvideMedicationService(db *repo.Client) medication.Service {
	return medication.New(db)
}

func ProvideDoctorService(db *repo.Client, cfg *config.Config) doctor.Service {
	return doctor.New(db, cfg)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, doctors doctor.Service, cfg *config.Config) appointment.Service {
	return appointment.New(db, nc, doctors, cfg)
}

func ProvidePharmacyService(db *repo.Client) pharmacy.Service {
	return pharmacy.New(db)
}

func ProvideTriageService() triage.Service {
	return triage.New()
}

func ProvideBloodService(db *repo.Client, nc *nats.Conn) blood.Service {
	return blood.New(db, nc)
}

func ProvideDonationService(db *repo.Client, nc *nats.Conn) donation.Service {
	return donation.New(db, nc)
}

func ProvideWorkshopService(db *repo.Client) workshop.Service {
	return workshop.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideAssistantService(client *assistantpkg.Client) svcassistant.Service {
	return svcassistant.New(client)
}

func ProvideTokenManager(cfg *config.Config) (*jwttoken.Manager, error) {
	return jwttoken.NewTokenManager(cfg)
}
