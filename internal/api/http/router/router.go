package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/api/http/handler"
	"github.com/auxillium/auxillium_backend/internal/api/http/middleware"
	"github.com/auxillium/auxillium_backend/internal/service/appointment"
	"github.com/auxillium/auxillium_backend/internal/service/assistant"
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
	"github.com/auxillium/auxillium_backend/pkg/authorize"
	jwttoken "github.com/auxillium/auxillium_backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	AuthSvc         auth.Service
	ProfileSvc      profile.Service
	FamilySvc       family.Service
	ContactSvc      contact.Service
	HealthSvc       health.Service
	MedicationSvc   medication.Service
	DoctorSvc       doctor.Service
	AppointmentSvc  appointment.Service
	PharmacySvc     pharmacy.Service
	TriageSvc       triage.Service
	BloodSvc        blood.Service
	DonationSvc     donation.Service
	WorkshopSvc     workshop.Service
	NotificationSvc notification.Service
	AssistantSvc    assistant.Service
	TokenMgr        *jwttoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.TokenMgr, r.p.Redis)
	otpLimiter := middleware.NewOTPLimiter(r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	profileH := handler.NewProfileHandler(r.p.ProfileSvc)
	familyH := handler.NewFamilyHandler(r.p.FamilySvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	healthH := handler.NewHealthMetricHandler(r.p.HealthSvc)
	medicationH := handler.NewMedicationHandler(r.p.MedicationSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	pharmacyH := handler.NewPharmacyHandler(r.p.PharmacySvc)
	triageH := handler.NewTriageHandler(r.p.TriageSvc)
	bloodH := handler.NewBloodHandler(r.p.BloodSvc)
	donationH := handler.NewDonationHandler(r.p.DonationSvc)
	workshopH := handler.NewWorkshopHandler(r.p.WorkshopSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	assistantH := handler.NewAssistantHandler(r.p.AssistantSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired, otpLimiter)
	r.registerProfileRoutes(api, profileH, authRequired, requirePerm)
	r.registerFamilyRoutes(api, familyH, authRequired, requirePerm)
	r.registerContactRoutes(api, contactH, authRequired, requirePerm)
	r.registerHealthMetricRoutes(api, healthH, authRequired, requirePerm)
	r.registerMedicationRoutes(api, medicationH, authRequired, requirePerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerPharmacyRoutes(api, pharmacyH, authRequired, requirePerm)
	r.registerTriageRoutes(api, triageH)
	r.registerBloodRoutes(api, bloodH, authRequired, requirePerm)
	r.registerDonationRoutes(api, donationH, authRequired, requirePerm)
	r.registerWorkshopRoutes(api, workshopH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requirePerm)
	r.registerAssistantRoutes(api, assistantH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
