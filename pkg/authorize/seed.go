package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Facility-level policies (domain: facility:*)
	facilityPolicies := []PermissionPolicy{
		// Doctors manage their own schedule and appointments
		{RoleFacilityDoctor, WildcardDomain, ResourceDoctor, ActionUpdate, EffectAllow},
		{RoleFacilityDoctor, WildcardDomain, ResourceTimeSlot, ActionManage, EffectAllow},
		{RoleFacilityDoctor, WildcardDomain, ResourceAppointment, ActionList, EffectAllow},
		{RoleFacilityDoctor, WildcardDomain, ResourceAppointment, ActionUpdate, EffectAllow},

		// Pharmacists manage their pharmacy inventory listing
		{RoleFacilityPharmacist, WildcardDomain, ResourcePharmacy, ActionUpdate, EffectAllow},
		{RoleFacilityPharmacist, WildcardDomain, ResourceMedicineQuote, ActionManage, EffectAllow},

		// Blood banks manage requests they posted
		{RoleFacilityBloodBank, WildcardDomain, ResourceBloodRequest, ActionManage, EffectAllow},
		{RoleFacilityBloodBank, WildcardDomain, ResourceBloodDonation, ActionFulfill, EffectAllow},

		// Initiative organizers manage their campaigns and workshops
		{RoleFacilityOrganizer, WildcardDomain, ResourceInitiative, ActionManage, EffectAllow},
		{RoleFacilityOrganizer, WildcardDomain, ResourceWorkshop, ActionManage, EffectAllow},
		{RoleFacilityOrganizer, WildcardDomain, ResourceDonation, ActionList, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own records
		{RoleUserSelf, WildcardDomain, ResourceProfile, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceFamilyMember, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceHealthMetric, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceMedication, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceEmergencyContact, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},

		// Patient: participate in care, donations and community features
		{RolePatient, WildcardDomain, ResourceAppointment, ActionBook, EffectAllow},
		{RolePatient, WildcardDomain, ResourceAppointment, ActionCancel, EffectAllow},
		{RolePatient, WildcardDomain, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, WildcardDomain, ResourceBloodRequest, ActionCreate, EffectAllow},
		{RolePatient, WildcardDomain, ResourceBloodRequest, ActionList, EffectAllow},
		{RolePatient, WildcardDomain, ResourceBloodDonation, ActionRespond, EffectAllow},
		{RolePatient, WildcardDomain, ResourceDonation, ActionCreate, EffectAllow},
		{RolePatient, WildcardDomain, ResourceEnrollment, ActionCreate, EffectAllow},
		{RolePatient, WildcardDomain, ResourceAssistant, ActionExecute, EffectAllow},
		{RolePatient, WildcardDomain, ResourceTriage, ActionExecute, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, facilityPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignPatientRole assigns the patient role in the user's private domain.
// Every registered consumer account gets this at signup.
func AssignPatientRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePatient, domain)
	return err
}

// AssignFacilityRole assigns a facility role to a user for a specific facility.
// Valid roles: RoleFacilityDoctor, RoleFacilityPharmacist, RoleFacilityBloodBank,
// RoleFacilityOrganizer.
func AssignFacilityRole(ctx context.Context, auth IAuthorization, userID, facilityID string, role Role) error {
	switch role {
	case RoleFacilityDoctor, RoleFacilityPharmacist, RoleFacilityBloodBank, RoleFacilityOrganizer:
		// valid facility roles
	default:
		return ErrInvalidArgs
	}

	domain := FacilityDomain(facilityID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveFacilityRole removes a facility role from a user for a specific facility.
func RemoveFacilityRole(ctx context.Context, auth IAuthorization, userID, facilityID string, role Role) error {
	domain := FacilityDomain(facilityID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetFacilityRoles returns all roles a user has in a specific facility.
func GetFacilityRoles(ctx context.Context, auth IAuthorization, userID, facilityID string) ([]Role, error) {
	domain := FacilityDomain(facilityID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSuperAdminRole assigns the platform superadmin role.
// Should be assigned manually/carefully.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
