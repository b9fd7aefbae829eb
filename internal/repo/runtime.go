// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

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
	"github.com/auxillium/auxillium_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescPaidAmount is the schema descriptor for paid_amount field.
	appointmentDescPaidAmount := appointmentFields[9].Descriptor()
	// appointment.DefaultPaidAmount holds the default value on creation for the paid_amount field.
	appointment.DefaultPaidAmount = appointmentDescPaidAmount.Default.(int64)
	// appointmentDescCoveredAmount is the schema descriptor for covered_amount field.
	appointmentDescCoveredAmount := appointmentFields[13].Descriptor()
	// appointment.DefaultCoveredAmount holds the default value on creation for the covered_amount field.
	appointment.DefaultCoveredAmount = appointmentDescCoveredAmount.Default.(int64)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	blooddonationMixin := schema.BloodDonation{}.Mixin()
	blooddonationMixinFields0 := blooddonationMixin[0].Fields()
	_ = blooddonationMixinFields0
	blooddonationMixinFields1 := blooddonationMixin[1].Fields()
	_ = blooddonationMixinFields1
	blooddonationFields := schema.BloodDonation{}.Fields()
	_ = blooddonationFields
	// blooddonationDescCreatedAt is the schema descriptor for created_at field.
	blooddonationDescCreatedAt := blooddonationMixinFields1[0].Descriptor()
	// blooddonation.DefaultCreatedAt holds the default value on creation for the created_at field.
	blooddonation.DefaultCreatedAt = blooddonationDescCreatedAt.Default.(func() time.Time)
	// blooddonationDescUnits is the schema descriptor for units field.
	blooddonationDescUnits := blooddonationFields[3].Descriptor()
	// blooddonation.DefaultUnits holds the default value on creation for the units field.
	blooddonation.DefaultUnits = blooddonationDescUnits.Default.(int)
	// blooddonationDescLocation is the schema descriptor for location field.
	blooddonationDescLocation := blooddonationFields[5].Descriptor()
	// blooddonation.DefaultLocation holds the default value on creation for the location field.
	blooddonation.DefaultLocation = blooddonationDescLocation.Default.(string)
	// blooddonationDescID is the schema descriptor for id field.
	blooddonationDescID := blooddonationMixinFields0[0].Descriptor()
	// blooddonation.DefaultID holds the default value on creation for the id field.
	blooddonation.DefaultID = blooddonationDescID.Default.(func() uuid.UUID)
	bloodrequestMixin := schema.BloodRequest{}.Mixin()
	bloodrequestMixinFields0 := bloodrequestMixin[0].Fields()
	_ = bloodrequestMixinFields0
	bloodrequestMixinFields1 := bloodrequestMixin[1].Fields()
	_ = bloodrequestMixinFields1
	bloodrequestFields := schema.BloodRequest{}.Fields()
	_ = bloodrequestFields
	// bloodrequestDescCreatedAt is the schema descriptor for created_at field.
	bloodrequestDescCreatedAt := bloodrequestMixinFields1[0].Descriptor()
	// bloodrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	bloodrequest.DefaultCreatedAt = bloodrequestDescCreatedAt.Default.(func() time.Time)
	// bloodrequestDescUpdatedAt is the schema descriptor for updated_at field.
	bloodrequestDescUpdatedAt := bloodrequestMixinFields1[1].Descriptor()
	// bloodrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bloodrequest.DefaultUpdatedAt = bloodrequestDescUpdatedAt.Default.(func() time.Time)
	// bloodrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bloodrequest.UpdateDefaultUpdatedAt = bloodrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bloodrequestDescUnitsNeeded is the schema descriptor for units_needed field.
	bloodrequestDescUnitsNeeded := bloodrequestFields[3].Descriptor()
	// bloodrequest.DefaultUnitsNeeded holds the default value on creation for the units_needed field.
	bloodrequest.DefaultUnitsNeeded = bloodrequestDescUnitsNeeded.Default.(int)
	// bloodrequestDescUnitsFulfilled is the schema descriptor for units_fulfilled field.
	bloodrequestDescUnitsFulfilled := bloodrequestFields[4].Descriptor()
	// bloodrequest.DefaultUnitsFulfilled holds the default value on creation for the units_fulfilled field.
	bloodrequest.DefaultUnitsFulfilled = bloodrequestDescUnitsFulfilled.Default.(int)
	// bloodrequestDescID is the schema descriptor for id field.
	bloodrequestDescID := bloodrequestMixinFields0[0].Descriptor()
	// bloodrequest.DefaultID holds the default value on creation for the id field.
	bloodrequest.DefaultID = bloodrequestDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescHospital is the schema descriptor for hospital field.
	doctorDescHospital := doctorFields[3].Descriptor()
	// doctor.DefaultHospital holds the default value on creation for the hospital field.
	doctor.DefaultHospital = doctorDescHospital.Default.(string)
	// doctorDescCity is the schema descriptor for city field.
	doctorDescCity := doctorFields[4].Descriptor()
	// doctor.DefaultCity holds the default value on creation for the city field.
	doctor.DefaultCity = doctorDescCity.Default.(string)
	// doctorDescRating is the schema descriptor for rating field.
	doctorDescRating := doctorFields[7].Descriptor()
	// doctor.DefaultRating holds the default value on creation for the rating field.
	doctor.DefaultRating = doctorDescRating.Default.(float64)
	// doctorDescReviewCount is the schema descriptor for review_count field.
	doctorDescReviewCount := doctorFields[8].Descriptor()
	// doctor.DefaultReviewCount holds the default value on creation for the review_count field.
	doctor.DefaultReviewCount = doctorDescReviewCount.Default.(int)
	// doctorDescYearsExperience is the schema descriptor for years_experience field.
	doctorDescYearsExperience := doctorFields[9].Descriptor()
	// doctor.DefaultYearsExperience holds the default value on creation for the years_experience field.
	doctor.DefaultYearsExperience = doctorDescYearsExperience.Default.(int)
	// doctorDescVideoVisits is the schema descriptor for video_visits field.
	doctorDescVideoVisits := doctorFields[12].Descriptor()
	// doctor.DefaultVideoVisits holds the default value on creation for the video_visits field.
	doctor.DefaultVideoVisits = doctorDescVideoVisits.Default.(bool)
	// doctorDescAcceptingPatients is the schema descriptor for accepting_patients field.
	doctorDescAcceptingPatients := doctorFields[13].Descriptor()
	// doctor.DefaultAcceptingPatients holds the default value on creation for the accepting_patients field.
	doctor.DefaultAcceptingPatients = doctorDescAcceptingPatients.Default.(bool)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	donationMixin := schema.Donation{}.Mixin()
	donationMixinFields0 := donationMixin[0].Fields()
	_ = donationMixinFields0
	donationMixinFields1 := donationMixin[1].Fields()
	_ = donationMixinFields1
	donationFields := schema.Donation{}.Fields()
	_ = donationFields
	// donationDescCreatedAt is the schema descriptor for created_at field.
	donationDescCreatedAt := donationMixinFields1[0].Descriptor()
	// donation.DefaultCreatedAt holds the default value on creation for the created_at field.
	donation.DefaultCreatedAt = donationDescCreatedAt.Default.(func() time.Time)
	// donationDescAnonymous is the schema descriptor for anonymous field.
	donationDescAnonymous := donationFields[3].Descriptor()
	// donation.DefaultAnonymous holds the default value on creation for the anonymous field.
	donation.DefaultAnonymous = donationDescAnonymous.Default.(bool)
	// donationDescID is the schema descriptor for id field.
	donationDescID := donationMixinFields0[0].Descriptor()
	// donation.DefaultID holds the default value on creation for the id field.
	donation.DefaultID = donationDescID.Default.(func() uuid.UUID)
	donationinitiativeMixin := schema.DonationInitiative{}.Mixin()
	donationinitiativeMixinFields0 := donationinitiativeMixin[0].Fields()
	_ = donationinitiativeMixinFields0
	donationinitiativeMixinFields1 := donationinitiativeMixin[1].Fields()
	_ = donationinitiativeMixinFields1
	donationinitiativeFields := schema.DonationInitiative{}.Fields()
	_ = donationinitiativeFields
	// donationinitiativeDescCreatedAt is the schema descriptor for created_at field.
	donationinitiativeDescCreatedAt := donationinitiativeMixinFields1[0].Descriptor()
	// donationinitiative.DefaultCreatedAt holds the default value on creation for the created_at field.
	donationinitiative.DefaultCreatedAt = donationinitiativeDescCreatedAt.Default.(func() time.Time)
	// donationinitiativeDescUpdatedAt is the schema descriptor for updated_at field.
	donationinitiativeDescUpdatedAt := donationinitiativeMixinFields1[1].Descriptor()
	// donationinitiative.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	donationinitiative.DefaultUpdatedAt = donationinitiativeDescUpdatedAt.Default.(func() time.Time)
	// donationinitiative.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	donationinitiative.UpdateDefaultUpdatedAt = donationinitiativeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// donationinitiativeDescDescription is the schema descriptor for description field.
	donationinitiativeDescDescription := donationinitiativeFields[2].Descriptor()
	// donationinitiative.DefaultDescription holds the default value on creation for the description field.
	donationinitiative.DefaultDescription = donationinitiativeDescDescription.Default.(string)
	// donationinitiativeDescRaisedAmount is the schema descriptor for raised_amount field.
	donationinitiativeDescRaisedAmount := donationinitiativeFields[5].Descriptor()
	// donationinitiative.DefaultRaisedAmount holds the default value on creation for the raised_amount field.
	donationinitiative.DefaultRaisedAmount = donationinitiativeDescRaisedAmount.Default.(int64)
	// donationinitiativeDescDonorCount is the schema descriptor for donor_count field.
	donationinitiativeDescDonorCount := donationinitiativeFields[6].Descriptor()
	// donationinitiative.DefaultDonorCount holds the default value on creation for the donor_count field.
	donationinitiative.DefaultDonorCount = donationinitiativeDescDonorCount.Default.(int)
	// donationinitiativeDescID is the schema descriptor for id field.
	donationinitiativeDescID := donationinitiativeMixinFields0[0].Descriptor()
	// donationinitiative.DefaultID holds the default value on creation for the id field.
	donationinitiative.DefaultID = donationinitiativeDescID.Default.(func() uuid.UUID)
	emergencycontactMixin := schema.EmergencyContact{}.Mixin()
	emergencycontactMixinFields0 := emergencycontactMixin[0].Fields()
	_ = emergencycontactMixinFields0
	emergencycontactMixinFields1 := emergencycontactMixin[1].Fields()
	_ = emergencycontactMixinFields1
	emergencycontactFields := schema.EmergencyContact{}.Fields()
	_ = emergencycontactFields
	// emergencycontactDescCreatedAt is the schema descriptor for created_at field.
	emergencycontactDescCreatedAt := emergencycontactMixinFields1[0].Descriptor()
	// emergencycontact.DefaultCreatedAt holds the default value on creation for the created_at field.
	emergencycontact.DefaultCreatedAt = emergencycontactDescCreatedAt.Default.(func() time.Time)
	// emergencycontactDescUpdatedAt is the schema descriptor for updated_at field.
	emergencycontactDescUpdatedAt := emergencycontactMixinFields1[1].Descriptor()
	// emergencycontact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emergencycontact.DefaultUpdatedAt = emergencycontactDescUpdatedAt.Default.(func() time.Time)
	// emergencycontact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emergencycontact.UpdateDefaultUpdatedAt = emergencycontactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// emergencycontactDescRelationship is the schema descriptor for relationship field.
	emergencycontactDescRelationship := emergencycontactFields[3].Descriptor()
	// emergencycontact.DefaultRelationship holds the default value on creation for the relationship field.
	emergencycontact.DefaultRelationship = emergencycontactDescRelationship.Default.(string)
	// emergencycontactDescIsPrimary is the schema descriptor for is_primary field.
	emergencycontactDescIsPrimary := emergencycontactFields[4].Descriptor()
	// emergencycontact.DefaultIsPrimary holds the default value on creation for the is_primary field.
	emergencycontact.DefaultIsPrimary = emergencycontactDescIsPrimary.Default.(bool)
	// emergencycontactDescID is the schema descriptor for id field.
	emergencycontactDescID := emergencycontactMixinFields0[0].Descriptor()
	// emergencycontact.DefaultID holds the default value on creation for the id field.
	emergencycontact.DefaultID = emergencycontactDescID.Default.(func() uuid.UUID)
	familymemberMixin := schema.FamilyMember{}.Mixin()
	familymemberMixinFields0 := familymemberMixin[0].Fields()
	_ = familymemberMixinFields0
	familymemberMixinFields1 := familymemberMixin[1].Fields()
	_ = familymemberMixinFields1
	familymemberFields := schema.FamilyMember{}.Fields()
	_ = familymemberFields
	// familymemberDescCreatedAt is the schema descriptor for created_at field.
	familymemberDescCreatedAt := familymemberMixinFields1[0].Descriptor()
	// familymember.DefaultCreatedAt holds the default value on creation for the created_at field.
	familymember.DefaultCreatedAt = familymemberDescCreatedAt.Default.(func() time.Time)
	// familymemberDescUpdatedAt is the schema descriptor for updated_at field.
	familymemberDescUpdatedAt := familymemberMixinFields1[1].Descriptor()
	// familymember.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	familymember.DefaultUpdatedAt = familymemberDescUpdatedAt.Default.(func() time.Time)
	// familymember.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	familymember.UpdateDefaultUpdatedAt = familymemberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// familymemberDescDeviceConnected is the schema descriptor for device_connected field.
	familymemberDescDeviceConnected := familymemberFields[13].Descriptor()
	// familymember.DefaultDeviceConnected holds the default value on creation for the device_connected field.
	familymember.DefaultDeviceConnected = familymemberDescDeviceConnected.Default.(bool)
	// familymemberDescID is the schema descriptor for id field.
	familymemberDescID := familymemberMixinFields0[0].Descriptor()
	// familymember.DefaultID holds the default value on creation for the id field.
	familymember.DefaultID = familymemberDescID.Default.(func() uuid.UUID)
	healthmetricMixin := schema.HealthMetric{}.Mixin()
	healthmetricMixinFields0 := healthmetricMixin[0].Fields()
	_ = healthmetricMixinFields0
	healthmetricMixinFields1 := healthmetricMixin[1].Fields()
	_ = healthmetricMixinFields1
	healthmetricFields := schema.HealthMetric{}.Fields()
	_ = healthmetricFields
	// healthmetricDescCreatedAt is the schema descriptor for created_at field.
	healthmetricDescCreatedAt := healthmetricMixinFields1[0].Descriptor()
	// healthmetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	healthmetric.DefaultCreatedAt = healthmetricDescCreatedAt.Default.(func() time.Time)
	// healthmetricDescID is the schema descriptor for id field.
	healthmetricDescID := healthmetricMixinFields0[0].Descriptor()
	// healthmetric.DefaultID holds the default value on creation for the id field.
	healthmetric.DefaultID = healthmetricDescID.Default.(func() uuid.UUID)
	medicationMixin := schema.Medication{}.Mixin()
	medicationMixinFields0 := medicationMixin[0].Fields()
	_ = medicationMixinFields0
	medicationMixinFields1 := medicationMixin[1].Fields()
	_ = medicationMixinFields1
	medicationFields := schema.Medication{}.Fields()
	_ = medicationFields
	// medicationDescCreatedAt is the schema descriptor for created_at field.
	medicationDescCreatedAt := medicationMixinFields1[0].Descriptor()
	// medication.DefaultCreatedAt holds the default value on creation for the created_at field.
	medication.DefaultCreatedAt = medicationDescCreatedAt.Default.(func() time.Time)
	// medicationDescUpdatedAt is the schema descriptor for updated_at field.
	medicationDescUpdatedAt := medicationMixinFields1[1].Descriptor()
	// medication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medication.DefaultUpdatedAt = medicationDescUpdatedAt.Default.(func() time.Time)
	// medication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medication.UpdateDefaultUpdatedAt = medicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicationDescActive is the schema descriptor for active field.
	medicationDescActive := medicationFields[9].Descriptor()
	// medication.DefaultActive holds the default value on creation for the active field.
	medication.DefaultActive = medicationDescActive.Default.(bool)
	// medicationDescID is the schema descriptor for id field.
	medicationDescID := medicationMixinFields0[0].Descriptor()
	// medication.DefaultID holds the default value on creation for the id field.
	medication.DefaultID = medicationDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescBody is the schema descriptor for body field.
	notificationDescBody := notificationFields[3].Descriptor()
	// notification.DefaultBody holds the default value on creation for the body field.
	notification.DefaultBody = notificationDescBody.Default.(string)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	pharmacyMixin := schema.Pharmacy{}.Mixin()
	pharmacyMixinFields0 := pharmacyMixin[0].Fields()
	_ = pharmacyMixinFields0
	pharmacyMixinFields1 := pharmacyMixin[1].Fields()
	_ = pharmacyMixinFields1
	pharmacyFields := schema.Pharmacy{}.Fields()
	_ = pharmacyFields
	// pharmacyDescCreatedAt is the schema descriptor for created_at field.
	pharmacyDescCreatedAt := pharmacyMixinFields1[0].Descriptor()
	// pharmacy.DefaultCreatedAt holds the default value on creation for the created_at field.
	pharmacy.DefaultCreatedAt = pharmacyDescCreatedAt.Default.(func() time.Time)
	// pharmacyDescUpdatedAt is the schema descriptor for updated_at field.
	pharmacyDescUpdatedAt := pharmacyMixinFields1[1].Descriptor()
	// pharmacy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pharmacy.DefaultUpdatedAt = pharmacyDescUpdatedAt.Default.(func() time.Time)
	// pharmacy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pharmacy.UpdateDefaultUpdatedAt = pharmacyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pharmacyDescAddress is the schema descriptor for address field.
	pharmacyDescAddress := pharmacyFields[1].Descriptor()
	// pharmacy.DefaultAddress holds the default value on creation for the address field.
	pharmacy.DefaultAddress = pharmacyDescAddress.Default.(string)
	// pharmacyDescCity is the schema descriptor for city field.
	pharmacyDescCity := pharmacyFields[2].Descriptor()
	// pharmacy.DefaultCity holds the default value on creation for the city field.
	pharmacy.DefaultCity = pharmacyDescCity.Default.(string)
	// pharmacyDescRating is the schema descriptor for rating field.
	pharmacyDescRating := pharmacyFields[4].Descriptor()
	// pharmacy.DefaultRating holds the default value on creation for the rating field.
	pharmacy.DefaultRating = pharmacyDescRating.Default.(float64)
	// pharmacyDescDistanceKm is the schema descriptor for distance_km field.
	pharmacyDescDistanceKm := pharmacyFields[5].Descriptor()
	// pharmacy.DefaultDistanceKm holds the default value on creation for the distance_km field.
	pharmacy.DefaultDistanceKm = pharmacyDescDistanceKm.Default.(float64)
	// pharmacyDescDeliveryAvailable is the schema descriptor for delivery_available field.
	pharmacyDescDeliveryAvailable := pharmacyFields[6].Descriptor()
	// pharmacy.DefaultDeliveryAvailable holds the default value on creation for the delivery_available field.
	pharmacy.DefaultDeliveryAvailable = pharmacyDescDeliveryAvailable.Default.(bool)
	// pharmacyDescDeliveryMinutes is the schema descriptor for delivery_minutes field.
	pharmacyDescDeliveryMinutes := pharmacyFields[7].Descriptor()
	// pharmacy.DefaultDeliveryMinutes holds the default value on creation for the delivery_minutes field.
	pharmacy.DefaultDeliveryMinutes = pharmacyDescDeliveryMinutes.Default.(int)
	// pharmacyDescOpensAt is the schema descriptor for opens_at field.
	pharmacyDescOpensAt := pharmacyFields[9].Descriptor()
	// pharmacy.DefaultOpensAt holds the default value on creation for the opens_at field.
	pharmacy.DefaultOpensAt = pharmacyDescOpensAt.Default.(string)
	// pharmacyDescClosesAt is the schema descriptor for closes_at field.
	pharmacyDescClosesAt := pharmacyFields[10].Descriptor()
	// pharmacy.DefaultClosesAt holds the default value on creation for the closes_at field.
	pharmacy.DefaultClosesAt = pharmacyDescClosesAt.Default.(string)
	// pharmacyDescOpen24h is the schema descriptor for open_24h field.
	pharmacyDescOpen24h := pharmacyFields[11].Descriptor()
	// pharmacy.DefaultOpen24h holds the default value on creation for the open_24h field.
	pharmacy.DefaultOpen24h = pharmacyDescOpen24h.Default.(bool)
	// pharmacyDescID is the schema descriptor for id field.
	pharmacyDescID := pharmacyMixinFields0[0].Descriptor()
	// pharmacy.DefaultID holds the default value on creation for the id field.
	pharmacy.DefaultID = pharmacyDescID.Default.(func() uuid.UUID)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileMixinFields1 := profileMixin[1].Fields()
	_ = profileMixinFields1
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields1[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields1[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescPhoneVerified is the schema descriptor for phone_verified field.
	profileDescPhoneVerified := profileFields[1].Descriptor()
	// profile.DefaultPhoneVerified holds the default value on creation for the phone_verified field.
	profile.DefaultPhoneVerified = profileDescPhoneVerified.Default.(bool)
	// profileDescFullName is the schema descriptor for full_name field.
	profileDescFullName := profileFields[4].Descriptor()
	// profile.DefaultFullName holds the default value on creation for the full_name field.
	profile.DefaultFullName = profileDescFullName.Default.(string)
	// profileDescBloodDonor is the schema descriptor for blood_donor field.
	profileDescBloodDonor := profileFields[11].Descriptor()
	// profile.DefaultBloodDonor holds the default value on creation for the blood_donor field.
	profile.DefaultBloodDonor = profileDescBloodDonor.Default.(bool)
	// profileDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	profileDescFailedLoginAttempts := profileFields[14].Descriptor()
	// profile.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	profile.DefaultFailedLoginAttempts = profileDescFailedLoginAttempts.Default.(int)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileMixinFields0[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	timeslotMixin := schema.TimeSlot{}.Mixin()
	timeslotMixinFields0 := timeslotMixin[0].Fields()
	_ = timeslotMixinFields0
	timeslotMixinFields1 := timeslotMixin[1].Fields()
	_ = timeslotMixinFields1
	timeslotFields := schema.TimeSlot{}.Fields()
	_ = timeslotFields
	// timeslotDescCreatedAt is the schema descriptor for created_at field.
	timeslotDescCreatedAt := timeslotMixinFields1[0].Descriptor()
	// timeslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeslot.DefaultCreatedAt = timeslotDescCreatedAt.Default.(func() time.Time)
	// timeslotDescUpdatedAt is the schema descriptor for updated_at field.
	timeslotDescUpdatedAt := timeslotMixinFields1[1].Descriptor()
	// timeslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeslot.DefaultUpdatedAt = timeslotDescUpdatedAt.Default.(func() time.Time)
	// timeslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeslot.UpdateDefaultUpdatedAt = timeslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeslotDescID is the schema descriptor for id field.
	timeslotDescID := timeslotMixinFields0[0].Descriptor()
	// timeslot.DefaultID holds the default value on creation for the id field.
	timeslot.DefaultID = timeslotDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
	workshopMixin := schema.Workshop{}.Mixin()
	workshopMixinFields0 := workshopMixin[0].Fields()
	_ = workshopMixinFields0
	workshopMixinFields1 := workshopMixin[1].Fields()
	_ = workshopMixinFields1
	workshopFields := schema.Workshop{}.Fields()
	_ = workshopFields
	// workshopDescCreatedAt is the schema descriptor for created_at field.
	workshopDescCreatedAt := workshopMixinFields1[0].Descriptor()
	// workshop.DefaultCreatedAt holds the default value on creation for the created_at field.
	workshop.DefaultCreatedAt = workshopDescCreatedAt.Default.(func() time.Time)
	// workshopDescUpdatedAt is the schema descriptor for updated_at field.
	workshopDescUpdatedAt := workshopMixinFields1[1].Descriptor()
	// workshop.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workshop.DefaultUpdatedAt = workshopDescUpdatedAt.Default.(func() time.Time)
	// workshop.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workshop.UpdateDefaultUpdatedAt = workshopDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workshopDescDescription is the schema descriptor for description field.
	workshopDescDescription := workshopFields[2].Descriptor()
	// workshop.DefaultDescription holds the default value on creation for the description field.
	workshop.DefaultDescription = workshopDescDescription.Default.(string)
	// workshopDescTopic is the schema descriptor for topic field.
	workshopDescTopic := workshopFields[3].Descriptor()
	// workshop.DefaultTopic holds the default value on creation for the topic field.
	workshop.DefaultTopic = workshopDescTopic.Default.(string)
	// workshopDescDurationMinutes is the schema descriptor for duration_minutes field.
	workshopDescDurationMinutes := workshopFields[5].Descriptor()
	// workshop.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	workshop.DefaultDurationMinutes = workshopDescDurationMinutes.Default.(int)
	// workshopDescEnrolledCount is the schema descriptor for enrolled_count field.
	workshopDescEnrolledCount := workshopFields[7].Descriptor()
	// workshop.DefaultEnrolledCount holds the default value on creation for the enrolled_count field.
	workshop.DefaultEnrolledCount = workshopDescEnrolledCount.Default.(int)
	// workshopDescOnline is the schema descriptor for online field.
	workshopDescOnline := workshopFields[8].Descriptor()
	// workshop.DefaultOnline holds the default value on creation for the online field.
	workshop.DefaultOnline = workshopDescOnline.Default.(bool)
	// workshopDescID is the schema descriptor for id field.
	workshopDescID := workshopMixinFields0[0].Descriptor()
	// workshop.DefaultID holds the default value on creation for the id field.
	workshop.DefaultID = workshopDescID.Default.(func() uuid.UUID)
	workshopenrollmentMixin := schema.WorkshopEnrollment{}.Mixin()
	workshopenrollmentMixinFields0 := workshopenrollmentMixin[0].Fields()
	_ = workshopenrollmentMixinFields0
	workshopenrollmentMixinFields1 := workshopenrollmentMixin[1].Fields()
	_ = workshopenrollmentMixinFields1
	workshopenrollmentFields := schema.WorkshopEnrollment{}.Fields()
	_ = workshopenrollmentFields
	// workshopenrollmentDescCreatedAt is the schema descriptor for created_at field.
	workshopenrollmentDescCreatedAt := workshopenrollmentMixinFields1[0].Descriptor()
	// workshopenrollment.DefaultCreatedAt holds the default value on creation for the created_at field.
	workshopenrollment.DefaultCreatedAt = workshopenrollmentDescCreatedAt.Default.(func() time.Time)
	// workshopenrollmentDescUpdatedAt is the schema descriptor for updated_at field.
	workshopenrollmentDescUpdatedAt := workshopenrollmentMixinFields1[1].Descriptor()
	// workshopenrollment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workshopenrollment.DefaultUpdatedAt = workshopenrollmentDescUpdatedAt.Default.(func() time.Time)
	// workshopenrollment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workshopenrollment.UpdateDefaultUpdatedAt = workshopenrollmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workshopenrollmentDescID is the schema descriptor for id field.
	workshopenrollmentDescID := workshopenrollmentMixinFields0[0].Descriptor()
	// workshopenrollment.DefaultID holds the default value on creation for the id field.
	workshopenrollment.DefaultID = workshopenrollmentDescID.Default.(func() uuid.UUID)
}
