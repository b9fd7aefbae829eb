// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/auxillium/auxillium_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"github.com/auxillium/auxillium_backend/internal/repo/profile"
	"github.com/auxillium/auxillium_backend/internal/repo/timeslot"
	"github.com/auxillium/auxillium_backend/internal/repo/usersession"
	"github.com/auxillium/auxillium_backend/internal/repo/workshop"
	"github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// BloodDonation is the client for interacting with the BloodDonation builders.
	BloodDonation *BloodDonationClient
	// BloodRequest is the client for interacting with the BloodRequest builders.
	BloodRequest *BloodRequestClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// Donation is the client for interacting with the Donation builders.
	Donation *DonationClient
	// DonationInitiative is the client for interacting with the DonationInitiative builders.
	DonationInitiative *DonationInitiativeClient
	// EmergencyContact is the client for interacting with the EmergencyContact builders.
	EmergencyContact *EmergencyContactClient
	// FamilyMember is the client for interacting with the FamilyMember builders.
	FamilyMember *FamilyMemberClient
	// HealthMetric is the client for interacting with the HealthMetric builders.
	HealthMetric *HealthMetricClient
	// Medication is the client for interacting with the Medication builders.
	Medication *MedicationClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Pharmacy is the client for interacting with the Pharmacy builders.
	Pharmacy *PharmacyClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// TimeSlot is the client for interacting with the TimeSlot builders.
	TimeSlot *TimeSlotClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
	// Workshop is the client for interacting with the Workshop builders.
	Workshop *WorkshopClient
	// WorkshopEnrollment is the client for interacting with the WorkshopEnrollment builders.
	WorkshopEnrollment *WorkshopEnrollmentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.BloodDonation = NewBloodDonationClient(c.config)
	c.BloodRequest = NewBloodRequestClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.Donation = NewDonationClient(c.config)
	c.DonationInitiative = NewDonationInitiativeClient(c.config)
	c.EmergencyContact = NewEmergencyContactClient(c.config)
	c.FamilyMember = NewFamilyMemberClient(c.config)
	c.HealthMetric = NewHealthMetricClient(c.config)
	c.Medication = NewMedicationClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Pharmacy = NewPharmacyClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.TimeSlot = NewTimeSlotClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
	c.Workshop = NewWorkshopClient(c.config)
	c.WorkshopEnrollment = NewWorkshopEnrollmentClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Appointment:        NewAppointmentClient(cfg),
		BloodDonation:      NewBloodDonationClient(cfg),
		BloodRequest:       NewBloodRequestClient(cfg),
		Doctor:             NewDoctorClient(cfg),
		Donation:           NewDonationClient(cfg),
		DonationInitiative: NewDonationInitiativeClient(cfg),
		EmergencyContact:   NewEmergencyContactClient(cfg),
		FamilyMember:       NewFamilyMemberClient(cfg),
		HealthMetric:       NewHealthMetricClient(cfg),
		Medication:         NewMedicationClient(cfg),
		Notification:       NewNotificationClient(cfg),
		Pharmacy:           NewPharmacyClient(cfg),
		Profile:            NewProfileClient(cfg),
		TimeSlot:           NewTimeSlotClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
		Workshop:           NewWorkshopClient(cfg),
		WorkshopEnrollment: NewWorkshopEnrollmentClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Appointment:        NewAppointmentClient(cfg),
		BloodDonation:      NewBloodDonationClient(cfg),
		BloodRequest:       NewBloodRequestClient(cfg),
		Doctor:             NewDoctorClient(cfg),
		Donation:           NewDonationClient(cfg),
		DonationInitiative: NewDonationInitiativeClient(cfg),
		EmergencyContact:   NewEmergencyContactClient(cfg),
		FamilyMember:       NewFamilyMemberClient(cfg),
		HealthMetric:       NewHealthMetricClient(cfg),
		Medication:         NewMedicationClient(cfg),
		Notification:       NewNotificationClient(cfg),
		Pharmacy:           NewPharmacyClient(cfg),
		Profile:            NewProfileClient(cfg),
		TimeSlot:           NewTimeSlotClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
		Workshop:           NewWorkshopClient(cfg),
		WorkshopEnrollment: NewWorkshopEnrollmentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Appointment, c.BloodDonation, c.BloodRequest, c.Doctor, c.Donation,
		c.DonationInitiative, c.EmergencyContact, c.FamilyMember, c.HealthMetric,
		c.Medication, c.Notification, c.Pharmacy, c.Profile, c.TimeSlot, c.UserSession,
		c.Workshop, c.WorkshopEnrollment,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.BloodDonation, c.BloodRequest, c.Doctor, c.Donation,
		c.DonationInitiative, c.EmergencyContact, c.FamilyMember, c.HealthMetric,
		c.Medication, c.Notification, c.Pharmacy, c.Profile, c.TimeSlot, c.UserSession,
		c.Workshop, c.WorkshopEnrollment,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *BloodDonationMutation:
		return c.BloodDonation.mutate(ctx, m)
	case *BloodRequestMutation:
		return c.BloodRequest.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *DonationMutation:
		return c.Donation.mutate(ctx, m)
	case *DonationInitiativeMutation:
		return c.DonationInitiative.mutate(ctx, m)
	case *EmergencyContactMutation:
		return c.EmergencyContact.mutate(ctx, m)
	case *FamilyMemberMutation:
		return c.FamilyMember.mutate(ctx, m)
	case *HealthMetricMutation:
		return c.HealthMetric.mutate(ctx, m)
	case *MedicationMutation:
		return c.Medication.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PharmacyMutation:
		return c.Pharmacy.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *TimeSlotMutation:
		return c.TimeSlot.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	case *WorkshopMutation:
		return c.Workshop.mutate(ctx, m)
	case *WorkshopEnrollmentMutation:
		return c.WorkshopEnrollment.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// BloodDonationClient is a client for the BloodDonation schema.
type BloodDonationClient struct {
	config
}

// NewBloodDonationClient returns a client for the BloodDonation from the given config.
func NewBloodDonationClient(c config) *BloodDonationClient {
	return &BloodDonationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blooddonation.Hooks(f(g(h())))`.
func (c *BloodDonationClient) Use(hooks ...Hook) {
	c.hooks.BloodDonation = append(c.hooks.BloodDonation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blooddonation.Intercept(f(g(h())))`.
func (c *BloodDonationClient) Intercept(interceptors ...Interceptor) {
	c.inters.BloodDonation = append(c.inters.BloodDonation, interceptors...)
}

// Create returns a builder for creating a BloodDonation entity.
func (c *BloodDonationClient) Create() *BloodDonationCreate {
	mutation := newBloodDonationMutation(c.config, OpCreate)
	return &BloodDonationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BloodDonation entities.
func (c *BloodDonationClient) CreateBulk(builders ...*BloodDonationCreate) *BloodDonationCreateBulk {
	return &BloodDonationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BloodDonationClient) MapCreateBulk(slice any, setFunc func(*BloodDonationCreate, int)) *BloodDonationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BloodDonationCreateBulk{err: fmt.Errorf("calling to BloodDonationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BloodDonationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BloodDonationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BloodDonation.
func (c *BloodDonationClient) Update() *BloodDonationUpdate {
	mutation := newBloodDonationMutation(c.config, OpUpdate)
	return &BloodDonationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BloodDonationClient) UpdateOne(_m *BloodDonation) *BloodDonationUpdateOne {
	mutation := newBloodDonationMutation(c.config, OpUpdateOne, withBloodDonation(_m))
	return &BloodDonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BloodDonationClient) UpdateOneID(id uuid.UUID) *BloodDonationUpdateOne {
	mutation := newBloodDonationMutation(c.config, OpUpdateOne, withBloodDonationID(id))
	return &BloodDonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BloodDonation.
func (c *BloodDonationClient) Delete() *BloodDonationDelete {
	mutation := newBloodDonationMutation(c.config, OpDelete)
	return &BloodDonationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BloodDonationClient) DeleteOne(_m *BloodDonation) *BloodDonationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BloodDonationClient) DeleteOneID(id uuid.UUID) *BloodDonationDeleteOne {
	builder := c.Delete().Where(blooddonation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BloodDonationDeleteOne{builder}
}

// Query returns a query builder for BloodDonation.
func (c *BloodDonationClient) Query() *BloodDonationQuery {
	return &BloodDonationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBloodDonation},
		inters: c.Interceptors(),
	}
}

// Get returns a BloodDonation entity by its id.
func (c *BloodDonationClient) Get(ctx context.Context, id uuid.UUID) (*BloodDonation, error) {
	return c.Query().Where(blooddonation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BloodDonationClient) GetX(ctx context.Context, id uuid.UUID) *BloodDonation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BloodDonationClient) Hooks() []Hook {
	return c.hooks.BloodDonation
}

// Interceptors returns the client interceptors.
func (c *BloodDonationClient) Interceptors() []Interceptor {
	return c.inters.BloodDonation
}

func (c *BloodDonationClient) mutate(ctx context.Context, m *BloodDonationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BloodDonationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BloodDonationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BloodDonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BloodDonationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BloodDonation mutation op: %q", m.Op())
	}
}

// BloodRequestClient is a client for the BloodRequest schema.
type BloodRequestClient struct {
	config
}

// NewBloodRequestClient returns a client for the BloodRequest from the given config.
func NewBloodRequestClient(c config) *BloodRequestClient {
	return &BloodRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bloodrequest.Hooks(f(g(h())))`.
func (c *BloodRequestClient) Use(hooks ...Hook) {
	c.hooks.BloodRequest = append(c.hooks.BloodRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bloodrequest.Intercept(f(g(h())))`.
func (c *BloodRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.BloodRequest = append(c.inters.BloodRequest, interceptors...)
}

// Create returns a builder for creating a BloodRequest entity.
func (c *BloodRequestClient) Create() *BloodRequestCreate {
	mutation := newBloodRequestMutation(c.config, OpCreate)
	return &BloodRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BloodRequest entities.
func (c *BloodRequestClient) CreateBulk(builders ...*BloodRequestCreate) *BloodRequestCreateBulk {
	return &BloodRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BloodRequestClient) MapCreateBulk(slice any, setFunc func(*BloodRequestCreate, int)) *BloodRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BloodRequestCreateBulk{err: fmt.Errorf("calling to BloodRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BloodRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BloodRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BloodRequest.
func (c *BloodRequestClient) Update() *BloodRequestUpdate {
	mutation := newBloodRequestMutation(c.config, OpUpdate)
	return &BloodRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BloodRequestClient) UpdateOne(_m *BloodRequest) *BloodRequestUpdateOne {
	mutation := newBloodRequestMutation(c.config, OpUpdateOne, withBloodRequest(_m))
	return &BloodRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BloodRequestClient) UpdateOneID(id uuid.UUID) *BloodRequestUpdateOne {
	mutation := newBloodRequestMutation(c.config, OpUpdateOne, withBloodRequestID(id))
	return &BloodRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BloodRequest.
func (c *BloodRequestClient) Delete() *BloodRequestDelete {
	mutation := newBloodRequestMutation(c.config, OpDelete)
	return &BloodRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BloodRequestClient) DeleteOne(_m *BloodRequest) *BloodRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BloodRequestClient) DeleteOneID(id uuid.UUID) *BloodRequestDeleteOne {
	builder := c.Delete().Where(bloodrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BloodRequestDeleteOne{builder}
}

// Query returns a query builder for BloodRequest.
func (c *BloodRequestClient) Query() *BloodRequestQuery {
	return &BloodRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBloodRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a BloodRequest entity by its id.
func (c *BloodRequestClient) Get(ctx context.Context, id uuid.UUID) (*BloodRequest, error) {
	return c.Query().Where(bloodrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BloodRequestClient) GetX(ctx context.Context, id uuid.UUID) *BloodRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BloodRequestClient) Hooks() []Hook {
	return c.hooks.BloodRequest
}

// Interceptors returns the client interceptors.
func (c *BloodRequestClient) Interceptors() []Interceptor {
	return c.inters.BloodRequest
}

func (c *BloodRequestClient) mutate(ctx context.Context, m *BloodRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BloodRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BloodRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BloodRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BloodRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BloodRequest mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// DonationClient is a client for the Donation schema.
type DonationClient struct {
	config
}

// NewDonationClient returns a client for the Donation from the given config.
func NewDonationClient(c config) *DonationClient {
	return &DonationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `donation.Hooks(f(g(h())))`.
func (c *DonationClient) Use(hooks ...Hook) {
	c.hooks.Donation = append(c.hooks.Donation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `donation.Intercept(f(g(h())))`.
func (c *DonationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Donation = append(c.inters.Donation, interceptors...)
}

// Create returns a builder for creating a Donation entity.
func (c *DonationClient) Create() *DonationCreate {
	mutation := newDonationMutation(c.config, OpCreate)
	return &DonationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Donation entities.
func (c *DonationClient) CreateBulk(builders ...*DonationCreate) *DonationCreateBulk {
	return &DonationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DonationClient) MapCreateBulk(slice any, setFunc func(*DonationCreate, int)) *DonationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DonationCreateBulk{err: fmt.Errorf("calling to DonationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DonationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DonationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Donation.
func (c *DonationClient) Update() *DonationUpdate {
	mutation := newDonationMutation(c.config, OpUpdate)
	return &DonationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DonationClient) UpdateOne(_m *Donation) *DonationUpdateOne {
	mutation := newDonationMutation(c.config, OpUpdateOne, withDonation(_m))
	return &DonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DonationClient) UpdateOneID(id uuid.UUID) *DonationUpdateOne {
	mutation := newDonationMutation(c.config, OpUpdateOne, withDonationID(id))
	return &DonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Donation.
func (c *DonationClient) Delete() *DonationDelete {
	mutation := newDonationMutation(c.config, OpDelete)
	return &DonationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DonationClient) DeleteOne(_m *Donation) *DonationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DonationClient) DeleteOneID(id uuid.UUID) *DonationDeleteOne {
	builder := c.Delete().Where(donation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DonationDeleteOne{builder}
}

// Query returns a query builder for Donation.
func (c *DonationClient) Query() *DonationQuery {
	return &DonationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDonation},
		inters: c.Interceptors(),
	}
}

// Get returns a Donation entity by its id.
func (c *DonationClient) Get(ctx context.Context, id uuid.UUID) (*Donation, error) {
	return c.Query().Where(donation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DonationClient) GetX(ctx context.Context, id uuid.UUID) *Donation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DonationClient) Hooks() []Hook {
	return c.hooks.Donation
}

// Interceptors returns the client interceptors.
func (c *DonationClient) Interceptors() []Interceptor {
	return c.inters.Donation
}

func (c *DonationClient) mutate(ctx context.Context, m *DonationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DonationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DonationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DonationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DonationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Donation mutation op: %q", m.Op())
	}
}

// DonationInitiativeClient is a client for the DonationInitiative schema.
type DonationInitiativeClient struct {
	config
}

// NewDonationInitiativeClient returns a client for the DonationInitiative from the given config.
func NewDonationInitiativeClient(c config) *DonationInitiativeClient {
	return &DonationInitiativeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `donationinitiative.Hooks(f(g(h())))`.
func (c *DonationInitiativeClient) Use(hooks ...Hook) {
	c.hooks.DonationInitiative = append(c.hooks.DonationInitiative, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `donationinitiative.Intercept(f(g(h())))`.
func (c *DonationInitiativeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DonationInitiative = append(c.inters.DonationInitiative, interceptors...)
}

// Create returns a builder for creating a DonationInitiative entity.
func (c *DonationInitiativeClient) Create() *DonationInitiativeCreate {
	mutation := newDonationInitiativeMutation(c.config, OpCreate)
	return &DonationInitiativeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DonationInitiative entities.
func (c *DonationInitiativeClient) CreateBulk(builders ...*DonationInitiativeCreate) *DonationInitiativeCreateBulk {
	return &DonationInitiativeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DonationInitiativeClient) MapCreateBulk(slice any, setFunc func(*DonationInitiativeCreate, int)) *DonationInitiativeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DonationInitiativeCreateBulk{err: fmt.Errorf("calling to DonationInitiativeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DonationInitiativeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DonationInitiativeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DonationInitiative.
func (c *DonationInitiativeClient) Update() *DonationInitiativeUpdate {
	mutation := newDonationInitiativeMutation(c.config, OpUpdate)
	return &DonationInitiativeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DonationInitiativeClient) UpdateOne(_m *DonationInitiative) *DonationInitiativeUpdateOne {
	mutation := newDonationInitiativeMutation(c.config, OpUpdateOne, withDonationInitiative(_m))
	return &DonationInitiativeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DonationInitiativeClient) UpdateOneID(id uuid.UUID) *DonationInitiativeUpdateOne {
	mutation := newDonationInitiativeMutation(c.config, OpUpdateOne, withDonationInitiativeID(id))
	return &DonationInitiativeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DonationInitiative.
func (c *DonationInitiativeClient) Delete() *DonationInitiativeDelete {
	mutation := newDonationInitiativeMutation(c.config, OpDelete)
	return &DonationInitiativeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DonationInitiativeClient) DeleteOne(_m *DonationInitiative) *DonationInitiativeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DonationInitiativeClient) DeleteOneID(id uuid.UUID) *DonationInitiativeDeleteOne {
	builder := c.Delete().Where(donationinitiative.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DonationInitiativeDeleteOne{builder}
}

// Query returns a query builder for DonationInitiative.
func (c *DonationInitiativeClient) Query() *DonationInitiativeQuery {
	return &DonationInitiativeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDonationInitiative},
		inters: c.Interceptors(),
	}
}

// Get returns a DonationInitiative entity by its id.
func (c *DonationInitiativeClient) Get(ctx context.Context, id uuid.UUID) (*DonationInitiative, error) {
	return c.Query().Where(donationinitiative.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DonationInitiativeClient) GetX(ctx context.Context, id uuid.UUID) *DonationInitiative {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DonationInitiativeClient) Hooks() []Hook {
	return c.hooks.DonationInitiative
}

// Interceptors returns the client interceptors.
func (c *DonationInitiativeClient) Interceptors() []Interceptor {
	return c.inters.DonationInitiative
}

func (c *DonationInitiativeClient) mutate(ctx context.Context, m *DonationInitiativeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DonationInitiativeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DonationInitiativeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DonationInitiativeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DonationInitiativeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DonationInitiative mutation op: %q", m.Op())
	}
}

// EmergencyContactClient is a client for the EmergencyContact schema.
type EmergencyContactClient struct {
	config
}

// NewEmergencyContactClient returns a client for the EmergencyContact from the given config.
func NewEmergencyContactClient(c config) *EmergencyContactClient {
	return &EmergencyContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emergencycontact.Hooks(f(g(h())))`.
func (c *EmergencyContactClient) Use(hooks ...Hook) {
	c.hooks.EmergencyContact = append(c.hooks.EmergencyContact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emergencycontact.Intercept(f(g(h())))`.
func (c *EmergencyContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmergencyContact = append(c.inters.EmergencyContact, interceptors...)
}

// Create returns a builder for creating a EmergencyContact entity.
func (c *EmergencyContactClient) Create() *EmergencyContactCreate {
	mutation := newEmergencyContactMutation(c.config, OpCreate)
	return &EmergencyContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmergencyContact entities.
func (c *EmergencyContactClient) CreateBulk(builders ...*EmergencyContactCreate) *EmergencyContactCreateBulk {
	return &EmergencyContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmergencyContactClient) MapCreateBulk(slice any, setFunc func(*EmergencyContactCreate, int)) *EmergencyContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmergencyContactCreateBulk{err: fmt.Errorf("calling to EmergencyContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmergencyContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmergencyContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmergencyContact.
func (c *EmergencyContactClient) Update() *EmergencyContactUpdate {
	mutation := newEmergencyContactMutation(c.config, OpUpdate)
	return &EmergencyContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmergencyContactClient) UpdateOne(_m *EmergencyContact) *EmergencyContactUpdateOne {
	mutation := newEmergencyContactMutation(c.config, OpUpdateOne, withEmergencyContact(_m))
	return &EmergencyContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmergencyContactClient) UpdateOneID(id uuid.UUID) *EmergencyContactUpdateOne {
	mutation := newEmergencyContactMutation(c.config, OpUpdateOne, withEmergencyContactID(id))
	return &EmergencyContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmergencyContact.
func (c *EmergencyContactClient) Delete() *EmergencyContactDelete {
	mutation := newEmergencyContactMutation(c.config, OpDelete)
	return &EmergencyContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmergencyContactClient) DeleteOne(_m *EmergencyContact) *EmergencyContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmergencyContactClient) DeleteOneID(id uuid.UUID) *EmergencyContactDeleteOne {
	builder := c.Delete().Where(emergencycontact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmergencyContactDeleteOne{builder}
}

// Query returns a query builder for EmergencyContact.
func (c *EmergencyContactClient) Query() *EmergencyContactQuery {
	return &EmergencyContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmergencyContact},
		inters: c.Interceptors(),
	}
}

// Get returns a EmergencyContact entity by its id.
func (c *EmergencyContactClient) Get(ctx context.Context, id uuid.UUID) (*EmergencyContact, error) {
	return c.Query().Where(emergencycontact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmergencyContactClient) GetX(ctx context.Context, id uuid.UUID) *EmergencyContact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmergencyContactClient) Hooks() []Hook {
	return c.hooks.EmergencyContact
}

// Interceptors returns the client interceptors.
func (c *EmergencyContactClient) Interceptors() []Interceptor {
	return c.inters.EmergencyContact
}

func (c *EmergencyContactClient) mutate(ctx context.Context, m *EmergencyContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmergencyContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmergencyContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmergencyContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmergencyContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown EmergencyContact mutation op: %q", m.Op())
	}
}

// FamilyMemberClient is a client for the FamilyMember schema.
type FamilyMemberClient struct {
	config
}

// NewFamilyMemberClient returns a client for the FamilyMember from the given config.
func NewFamilyMemberClient(c config) *FamilyMemberClient {
	return &FamilyMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `familymember.Hooks(f(g(h())))`.
func (c *FamilyMemberClient) Use(hooks ...Hook) {
	c.hooks.FamilyMember = append(c.hooks.FamilyMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `familymember.Intercept(f(g(h())))`.
func (c *FamilyMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.FamilyMember = append(c.inters.FamilyMember, interceptors...)
}

// Create returns a builder for creating a FamilyMember entity.
func (c *FamilyMemberClient) Create() *FamilyMemberCreate {
	mutation := newFamilyMemberMutation(c.config, OpCreate)
	return &FamilyMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FamilyMember entities.
func (c *FamilyMemberClient) CreateBulk(builders ...*FamilyMemberCreate) *FamilyMemberCreateBulk {
	return &FamilyMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FamilyMemberClient) MapCreateBulk(slice any, setFunc func(*FamilyMemberCreate, int)) *FamilyMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FamilyMemberCreateBulk{err: fmt.Errorf("calling to FamilyMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FamilyMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FamilyMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FamilyMember.
func (c *FamilyMemberClient) Update() *FamilyMemberUpdate {
	mutation := newFamilyMemberMutation(c.config, OpUpdate)
	return &FamilyMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FamilyMemberClient) UpdateOne(_m *FamilyMember) *FamilyMemberUpdateOne {
	mutation := newFamilyMemberMutation(c.config, OpUpdateOne, withFamilyMember(_m))
	return &FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FamilyMemberClient) UpdateOneID(id uuid.UUID) *FamilyMemberUpdateOne {
	mutation := newFamilyMemberMutation(c.config, OpUpdateOne, withFamilyMemberID(id))
	return &FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FamilyMember.
func (c *FamilyMemberClient) Delete() *FamilyMemberDelete {
	mutation := newFamilyMemberMutation(c.config, OpDelete)
	return &FamilyMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FamilyMemberClient) DeleteOne(_m *FamilyMember) *FamilyMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FamilyMemberClient) DeleteOneID(id uuid.UUID) *FamilyMemberDeleteOne {
	builder := c.Delete().Where(familymember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FamilyMemberDeleteOne{builder}
}

// Query returns a query builder for FamilyMember.
func (c *FamilyMemberClient) Query() *FamilyMemberQuery {
	return &FamilyMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFamilyMember},
		inters: c.Interceptors(),
	}
}

// Get returns a FamilyMember entity by its id.
func (c *FamilyMemberClient) Get(ctx context.Context, id uuid.UUID) (*FamilyMember, error) {
	return c.Query().Where(familymember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FamilyMemberClient) GetX(ctx context.Context, id uuid.UUID) *FamilyMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FamilyMemberClient) Hooks() []Hook {
	return c.hooks.FamilyMember
}

// Interceptors returns the client interceptors.
func (c *FamilyMemberClient) Interceptors() []Interceptor {
	return c.inters.FamilyMember
}

func (c *FamilyMemberClient) mutate(ctx context.Context, m *FamilyMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FamilyMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FamilyMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FamilyMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FamilyMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown FamilyMember mutation op: %q", m.Op())
	}
}

// HealthMetricClient is a client for the HealthMetric schema.
type HealthMetricClient struct {
	config
}

// NewHealthMetricClient returns a client for the HealthMetric from the given config.
func NewHealthMetricClient(c config) *HealthMetricClient {
	return &HealthMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `healthmetric.Hooks(f(g(h())))`.
func (c *HealthMetricClient) Use(hooks ...Hook) {
	c.hooks.HealthMetric = append(c.hooks.HealthMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `healthmetric.Intercept(f(g(h())))`.
func (c *HealthMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.HealthMetric = append(c.inters.HealthMetric, interceptors...)
}

// Create returns a builder for creating a HealthMetric entity.
func (c *HealthMetricClient) Create() *HealthMetricCreate {
	mutation := newHealthMetricMutation(c.config, OpCreate)
	return &HealthMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HealthMetric entities.
func (c *HealthMetricClient) CreateBulk(builders ...*HealthMetricCreate) *HealthMetricCreateBulk {
	return &HealthMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HealthMetricClient) MapCreateBulk(slice any, setFunc func(*HealthMetricCreate, int)) *HealthMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HealthMetricCreateBulk{err: fmt.Errorf("calling to HealthMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HealthMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HealthMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HealthMetric.
func (c *HealthMetricClient) Update() *HealthMetricUpdate {
	mutation := newHealthMetricMutation(c.config, OpUpdate)
	return &HealthMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HealthMetricClient) UpdateOne(_m *HealthMetric) *HealthMetricUpdateOne {
	mutation := newHealthMetricMutation(c.config, OpUpdateOne, withHealthMetric(_m))
	return &HealthMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HealthMetricClient) UpdateOneID(id uuid.UUID) *HealthMetricUpdateOne {
	mutation := newHealthMetricMutation(c.config, OpUpdateOne, withHealthMetricID(id))
	return &HealthMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HealthMetric.
func (c *HealthMetricClient) Delete() *HealthMetricDelete {
	mutation := newHealthMetricMutation(c.config, OpDelete)
	return &HealthMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HealthMetricClient) DeleteOne(_m *HealthMetric) *HealthMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HealthMetricClient) DeleteOneID(id uuid.UUID) *HealthMetricDeleteOne {
	builder := c.Delete().Where(healthmetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HealthMetricDeleteOne{builder}
}

// Query returns a query builder for HealthMetric.
func (c *HealthMetricClient) Query() *HealthMetricQuery {
	return &HealthMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHealthMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a HealthMetric entity by its id.
func (c *HealthMetricClient) Get(ctx context.Context, id uuid.UUID) (*HealthMetric, error) {
	return c.Query().Where(healthmetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HealthMetricClient) GetX(ctx context.Context, id uuid.UUID) *HealthMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HealthMetricClient) Hooks() []Hook {
	return c.hooks.HealthMetric
}

// Interceptors returns the client interceptors.
func (c *HealthMetricClient) Interceptors() []Interceptor {
	return c.inters.HealthMetric
}

func (c *HealthMetricClient) mutate(ctx context.Context, m *HealthMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HealthMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HealthMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HealthMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HealthMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown HealthMetric mutation op: %q", m.Op())
	}
}

// MedicationClient is a client for the Medication schema.
type MedicationClient struct {
	config
}

// NewMedicationClient returns a client for the Medication from the given config.
func NewMedicationClient(c config) *MedicationClient {
	return &MedicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medication.Hooks(f(g(h())))`.
func (c *MedicationClient) Use(hooks ...Hook) {
	c.hooks.Medication = append(c.hooks.Medication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medication.Intercept(f(g(h())))`.
func (c *MedicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Medication = append(c.inters.Medication, interceptors...)
}

// Create returns a builder for creating a Medication entity.
func (c *MedicationClient) Create() *MedicationCreate {
	mutation := newMedicationMutation(c.config, OpCreate)
	return &MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Medication entities.
func (c *MedicationClient) CreateBulk(builders ...*MedicationCreate) *MedicationCreateBulk {
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicationClient) MapCreateBulk(slice any, setFunc func(*MedicationCreate, int)) *MedicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicationCreateBulk{err: fmt.Errorf("calling to MedicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Medication.
func (c *MedicationClient) Update() *MedicationUpdate {
	mutation := newMedicationMutation(c.config, OpUpdate)
	return &MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicationClient) UpdateOne(_m *Medication) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedication(_m))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicationClient) UpdateOneID(id uuid.UUID) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedicationID(id))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Medication.
func (c *MedicationClient) Delete() *MedicationDelete {
	mutation := newMedicationMutation(c.config, OpDelete)
	return &MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicationClient) DeleteOne(_m *Medication) *MedicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicationClient) DeleteOneID(id uuid.UUID) *MedicationDeleteOne {
	builder := c.Delete().Where(medication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicationDeleteOne{builder}
}

// Query returns a query builder for Medication.
func (c *MedicationClient) Query() *MedicationQuery {
	return &MedicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedication},
		inters: c.Interceptors(),
	}
}

// Get returns a Medication entity by its id.
func (c *MedicationClient) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return c.Query().Where(medication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicationClient) GetX(ctx context.Context, id uuid.UUID) *Medication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicationClient) Hooks() []Hook {
	return c.hooks.Medication
}

// Interceptors returns the client interceptors.
func (c *MedicationClient) Interceptors() []Interceptor {
	return c.inters.Medication
}

func (c *MedicationClient) mutate(ctx context.Context, m *MedicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Medication mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// PharmacyClient is a client for the Pharmacy schema.
type PharmacyClient struct {
	config
}

// NewPharmacyClient returns a client for the Pharmacy from the given config.
func NewPharmacyClient(c config) *PharmacyClient {
	return &PharmacyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pharmacy.Hooks(f(g(h())))`.
func (c *PharmacyClient) Use(hooks ...Hook) {
	c.hooks.Pharmacy = append(c.hooks.Pharmacy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pharmacy.Intercept(f(g(h())))`.
func (c *PharmacyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pharmacy = append(c.inters.Pharmacy, interceptors...)
}

// Create returns a builder for creating a Pharmacy entity.
func (c *PharmacyClient) Create() *PharmacyCreate {
	mutation := newPharmacyMutation(c.config, OpCreate)
	return &PharmacyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pharmacy entities.
func (c *PharmacyClient) CreateBulk(builders ...*PharmacyCreate) *PharmacyCreateBulk {
	return &PharmacyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PharmacyClient) MapCreateBulk(slice any, setFunc func(*PharmacyCreate, int)) *PharmacyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PharmacyCreateBulk{err: fmt.Errorf("calling to PharmacyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PharmacyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PharmacyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pharmacy.
func (c *PharmacyClient) Update() *PharmacyUpdate {
	mutation := newPharmacyMutation(c.config, OpUpdate)
	return &PharmacyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PharmacyClient) UpdateOne(_m *Pharmacy) *PharmacyUpdateOne {
	mutation := newPharmacyMutation(c.config, OpUpdateOne, withPharmacy(_m))
	return &PharmacyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PharmacyClient) UpdateOneID(id uuid.UUID) *PharmacyUpdateOne {
	mutation := newPharmacyMutation(c.config, OpUpdateOne, withPharmacyID(id))
	return &PharmacyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pharmacy.
func (c *PharmacyClient) Delete() *PharmacyDelete {
	mutation := newPharmacyMutation(c.config, OpDelete)
	return &PharmacyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PharmacyClient) DeleteOne(_m *Pharmacy) *PharmacyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PharmacyClient) DeleteOneID(id uuid.UUID) *PharmacyDeleteOne {
	builder := c.Delete().Where(pharmacy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PharmacyDeleteOne{builder}
}

// Query returns a query builder for Pharmacy.
func (c *PharmacyClient) Query() *PharmacyQuery {
	return &PharmacyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePharmacy},
		inters: c.Interceptors(),
	}
}

// Get returns a Pharmacy entity by its id.
func (c *PharmacyClient) Get(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	return c.Query().Where(pharmacy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PharmacyClient) GetX(ctx context.Context, id uuid.UUID) *Pharmacy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PharmacyClient) Hooks() []Hook {
	return c.hooks.Pharmacy
}

// Interceptors returns the client interceptors.
func (c *PharmacyClient) Interceptors() []Interceptor {
	return c.inters.Pharmacy
}

func (c *PharmacyClient) mutate(ctx context.Context, m *PharmacyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PharmacyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PharmacyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PharmacyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PharmacyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Pharmacy mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Profile mutation op: %q", m.Op())
	}
}

// TimeSlotClient is a client for the TimeSlot schema.
type TimeSlotClient struct {
	config
}

// NewTimeSlotClient returns a client for the TimeSlot from the given config.
func NewTimeSlotClient(c config) *TimeSlotClient {
	return &TimeSlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timeslot.Hooks(f(g(h())))`.
func (c *TimeSlotClient) Use(hooks ...Hook) {
	c.hooks.TimeSlot = append(c.hooks.TimeSlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timeslot.Intercept(f(g(h())))`.
func (c *TimeSlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeSlot = append(c.inters.TimeSlot, interceptors...)
}

// Create returns a builder for creating a TimeSlot entity.
func (c *TimeSlotClient) Create() *TimeSlotCreate {
	mutation := newTimeSlotMutation(c.config, OpCreate)
	return &TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeSlot entities.
func (c *TimeSlotClient) CreateBulk(builders ...*TimeSlotCreate) *TimeSlotCreateBulk {
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeSlotClient) MapCreateBulk(slice any, setFunc func(*TimeSlotCreate, int)) *TimeSlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeSlotCreateBulk{err: fmt.Errorf("calling to TimeSlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeSlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeSlot.
func (c *TimeSlotClient) Update() *TimeSlotUpdate {
	mutation := newTimeSlotMutation(c.config, OpUpdate)
	return &TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeSlotClient) UpdateOne(_m *TimeSlot) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlot(_m))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeSlotClient) UpdateOneID(id uuid.UUID) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlotID(id))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeSlot.
func (c *TimeSlotClient) Delete() *TimeSlotDelete {
	mutation := newTimeSlotMutation(c.config, OpDelete)
	return &TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeSlotClient) DeleteOne(_m *TimeSlot) *TimeSlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeSlotClient) DeleteOneID(id uuid.UUID) *TimeSlotDeleteOne {
	builder := c.Delete().Where(timeslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeSlotDeleteOne{builder}
}

// Query returns a query builder for TimeSlot.
func (c *TimeSlotClient) Query() *TimeSlotQuery {
	return &TimeSlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeSlot},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeSlot entity by its id.
func (c *TimeSlotClient) Get(ctx context.Context, id uuid.UUID) (*TimeSlot, error) {
	return c.Query().Where(timeslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeSlotClient) GetX(ctx context.Context, id uuid.UUID) *TimeSlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimeSlotClient) Hooks() []Hook {
	return c.hooks.TimeSlot
}

// Interceptors returns the client interceptors.
func (c *TimeSlotClient) Interceptors() []Interceptor {
	return c.inters.TimeSlot
}

func (c *TimeSlotClient) mutate(ctx context.Context, m *TimeSlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TimeSlot mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// WorkshopClient is a client for the Workshop schema.
type WorkshopClient struct {
	config
}

// NewWorkshopClient returns a client for the Workshop from the given config.
func NewWorkshopClient(c config) *WorkshopClient {
	return &WorkshopClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workshop.Hooks(f(g(h())))`.
func (c *WorkshopClient) Use(hooks ...Hook) {
	c.hooks.Workshop = append(c.hooks.Workshop, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workshop.Intercept(f(g(h())))`.
func (c *WorkshopClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workshop = append(c.inters.Workshop, interceptors...)
}

// Create returns a builder for creating a Workshop entity.
func (c *WorkshopClient) Create() *WorkshopCreate {
	mutation := newWorkshopMutation(c.config, OpCreate)
	return &WorkshopCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workshop entities.
func (c *WorkshopClient) CreateBulk(builders ...*WorkshopCreate) *WorkshopCreateBulk {
	return &WorkshopCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkshopClient) MapCreateBulk(slice any, setFunc func(*WorkshopCreate, int)) *WorkshopCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkshopCreateBulk{err: fmt.Errorf("calling to WorkshopClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkshopCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkshopCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workshop.
func (c *WorkshopClient) Update() *WorkshopUpdate {
	mutation := newWorkshopMutation(c.config, OpUpdate)
	return &WorkshopUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkshopClient) UpdateOne(_m *Workshop) *WorkshopUpdateOne {
	mutation := newWorkshopMutation(c.config, OpUpdateOne, withWorkshop(_m))
	return &WorkshopUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkshopClient) UpdateOneID(id uuid.UUID) *WorkshopUpdateOne {
	mutation := newWorkshopMutation(c.config, OpUpdateOne, withWorkshopID(id))
	return &WorkshopUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workshop.
func (c *WorkshopClient) Delete() *WorkshopDelete {
	mutation := newWorkshopMutation(c.config, OpDelete)
	return &WorkshopDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkshopClient) DeleteOne(_m *Workshop) *WorkshopDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkshopClient) DeleteOneID(id uuid.UUID) *WorkshopDeleteOne {
	builder := c.Delete().Where(workshop.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkshopDeleteOne{builder}
}

// Query returns a query builder for Workshop.
func (c *WorkshopClient) Query() *WorkshopQuery {
	return &WorkshopQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkshop},
		inters: c.Interceptors(),
	}
}

// Get returns a Workshop entity by its id.
func (c *WorkshopClient) Get(ctx context.Context, id uuid.UUID) (*Workshop, error) {
	return c.Query().Where(workshop.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkshopClient) GetX(ctx context.Context, id uuid.UUID) *Workshop {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkshopClient) Hooks() []Hook {
	return c.hooks.Workshop
}

// Interceptors returns the client interceptors.
func (c *WorkshopClient) Interceptors() []Interceptor {
	return c.inters.Workshop
}

func (c *WorkshopClient) mutate(ctx context.Context, m *WorkshopMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkshopCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkshopUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkshopUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkshopDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Workshop mutation op: %q", m.Op())
	}
}

// WorkshopEnrollmentClient is a client for the WorkshopEnrollment schema.
type WorkshopEnrollmentClient struct {
	config
}

// NewWorkshopEnrollmentClient returns a client for the WorkshopEnrollment from the given config.
func NewWorkshopEnrollmentClient(c config) *WorkshopEnrollmentClient {
	return &WorkshopEnrollmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workshopenrollment.Hooks(f(g(h())))`.
func (c *WorkshopEnrollmentClient) Use(hooks ...Hook) {
	c.hooks.WorkshopEnrollment = append(c.hooks.WorkshopEnrollment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workshopenrollment.Intercept(f(g(h())))`.
func (c *WorkshopEnrollmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkshopEnrollment = append(c.inters.WorkshopEnrollment, interceptors...)
}

// Create returns a builder for creating a WorkshopEnrollment entity.
func (c *WorkshopEnrollmentClient) Create() *WorkshopEnrollmentCreate {
	mutation := newWorkshopEnrollmentMutation(c.config, OpCreate)
	return &WorkshopEnrollmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkshopEnrollment entities.
func (c *WorkshopEnrollmentClient) CreateBulk(builders ...*WorkshopEnrollmentCreate) *WorkshopEnrollmentCreateBulk {
	return &WorkshopEnrollmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkshopEnrollmentClient) MapCreateBulk(slice any, setFunc func(*WorkshopEnrollmentCreate, int)) *WorkshopEnrollmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkshopEnrollmentCreateBulk{err: fmt.Errorf("calling to WorkshopEnrollmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkshopEnrollmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkshopEnrollmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkshopEnrollment.
func (c *WorkshopEnrollmentClient) Update() *WorkshopEnrollmentUpdate {
	mutation := newWorkshopEnrollmentMutation(c.config, OpUpdate)
	return &WorkshopEnrollmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkshopEnrollmentClient) UpdateOne(_m *WorkshopEnrollment) *WorkshopEnrollmentUpdateOne {
	mutation := newWorkshopEnrollmentMutation(c.config, OpUpdateOne, withWorkshopEnrollment(_m))
	return &WorkshopEnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkshopEnrollmentClient) UpdateOneID(id uuid.UUID) *WorkshopEnrollmentUpdateOne {
	mutation := newWorkshopEnrollmentMutation(c.config, OpUpdateOne, withWorkshopEnrollmentID(id))
	return &WorkshopEnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkshopEnrollment.
func (c *WorkshopEnrollmentClient) Delete() *WorkshopEnrollmentDelete {
	mutation := newWorkshopEnrollmentMutation(c.config, OpDelete)
	return &WorkshopEnrollmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkshopEnrollmentClient) DeleteOne(_m *WorkshopEnrollment) *WorkshopEnrollmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkshopEnrollmentClient) DeleteOneID(id uuid.UUID) *WorkshopEnrollmentDeleteOne {
	builder := c.Delete().Where(workshopenrollment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkshopEnrollmentDeleteOne{builder}
}

// Query returns a query builder for WorkshopEnrollment.
func (c *WorkshopEnrollmentClient) Query() *WorkshopEnrollmentQuery {
	return &WorkshopEnrollmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkshopEnrollment},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkshopEnrollment entity by its id.
func (c *WorkshopEnrollmentClient) Get(ctx context.Context, id uuid.UUID) (*WorkshopEnrollment, error) {
	return c.Query().Where(workshopenrollment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkshopEnrollmentClient) GetX(ctx context.Context, id uuid.UUID) *WorkshopEnrollment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkshopEnrollmentClient) Hooks() []Hook {
	return c.hooks.WorkshopEnrollment
}

// Interceptors returns the client interceptors.
func (c *WorkshopEnrollmentClient) Interceptors() []Interceptor {
	return c.inters.WorkshopEnrollment
}

func (c *WorkshopEnrollmentClient) mutate(ctx context.Context, m *WorkshopEnrollmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkshopEnrollmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkshopEnrollmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkshopEnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkshopEnrollmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WorkshopEnrollment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, BloodDonation, BloodRequest, Doctor, Donation, DonationInitiative,
		EmergencyContact, FamilyMember, HealthMetric, Medication, Notification,
		Pharmacy, Profile, TimeSlot, UserSession, Workshop,
		WorkshopEnrollment []ent.Hook
	}
	inters struct {
		Appointment, BloodDonation, BloodRequest, Doctor, Donation, DonationInitiative,
		EmergencyContact, FamilyMember, HealthMetric, Medication, Notification,
		Pharmacy, Profile, TimeSlot, UserSession, Workshop,
		WorkshopEnrollment []ent.Interceptor
	}
)
