package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Lifecycle actions
	ActionBook    Action = "book"
	ActionCancel  Action = "cancel"
	ActionRespond Action = "respond"
	ActionFulfill Action = "fulfill"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionBook: {}, ActionCancel: {}, ActionRespond: {}, ActionFulfill: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"
	ResourceOTP          Resource = "otp"

	// Personal health records
	ResourceProfile          Resource = "profile"
	ResourceFamilyMember     Resource = "family_member"
	ResourceHealthMetric     Resource = "health_metric"
	ResourceMedication       Resource = "medication"
	ResourceEmergencyContact Resource = "emergency_contact"

	// Care providers and scheduling
	ResourceDoctor      Resource = "doctor"
	ResourceTimeSlot    Resource = "time_slot"
	ResourceAppointment Resource = "appointment"

	// Pharmacy
	ResourcePharmacy      Resource = "pharmacy"
	ResourceMedicineQuote Resource = "medicine_quote"

	// Blood donation
	ResourceBloodRequest  Resource = "blood_request"
	ResourceBloodDonation Resource = "blood_donation"

	// Community
	ResourceInitiative Resource = "initiative"
	ResourceDonation   Resource = "donation"
	ResourceWorkshop   Resource = "workshop"
	ResourceEnrollment Resource = "enrollment"

	// Communication
	ResourceNotification Resource = "notification"
	ResourceAssistant    Resource = "assistant"
	ResourceTriage       Resource = "triage"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {}, ResourceOTP: {},
	ResourceProfile: {}, ResourceFamilyMember: {}, ResourceHealthMetric: {},
	ResourceMedication: {}, ResourceEmergencyContact: {},
	ResourceDoctor: {}, ResourceTimeSlot: {}, ResourceAppointment: {},
	ResourcePharmacy: {}, ResourceMedicineQuote: {},
	ResourceBloodRequest: {}, ResourceBloodDonation: {},
	ResourceInitiative: {}, ResourceDonation: {}, ResourceWorkshop: {}, ResourceEnrollment: {},
	ResourceNotification: {}, ResourceAssistant: {}, ResourceTriage: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Facility roles (domain = facility:<uuid>)
	RoleFacilityDoctor     Role = "role:facility:doctor"
	RoleFacilityPharmacist Role = "role:facility:pharmacist"
	RoleFacilityBloodBank  Role = "role:facility:blood_bank"
	RoleFacilityOrganizer  Role = "role:facility:organizer"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
	RolePatient  Role = "role:user:patient"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleFacilityDoctor:     {},
	RoleFacilityPharmacist: {},
	RoleFacilityBloodBank:  {},
	RoleFacilityOrganizer:  {},
	RoleUserSelf:           {},
	RolePatient:            {},
}

// Facility member role strings (stored in DB)
const (
	FacilityMemberRoleDoctor     = "doctor"
	FacilityMemberRolePharmacist = "pharmacist"
	FacilityMemberRoleBloodBank  = "blood_bank"
	FacilityMemberRoleOrganizer  = "organizer"
)

// FacilityMemberRoleToRBACRole maps DB role values to Casbin roles
var FacilityMemberRoleToRBACRole = map[string]Role{
	FacilityMemberRoleDoctor:     RoleFacilityDoctor,
	FacilityMemberRolePharmacist: RoleFacilityPharmacist,
	FacilityMemberRoleBloodBank:  RoleFacilityBloodBank,
	FacilityMemberRoleOrganizer:  RoleFacilityOrganizer,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixFacility Domain = "facility:"
	DomainPrefixUser     Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func FacilityDomain(facilityID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixFacility, facilityID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixFacility) && s[:len(DomainPrefixFacility)] == string(DomainPrefixFacility):
		return reUUID.MatchString(s[len(DomainPrefixFacility):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
