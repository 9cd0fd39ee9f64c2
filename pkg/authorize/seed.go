package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the portal.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Portal admin: god mode
		{RolePortalAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Portal-level policies (domain: portal)
	portalPolicies := []PermissionPolicy{
		// Students browse internships and manage their own applications.
		{RoleStudent, DomainPortal, ResourceInternship, ActionRead, EffectAllow},
		{RoleStudent, DomainPortal, ResourceInternship, ActionList, EffectAllow},
		{RoleStudent, DomainPortal, ResourceApplication, ActionApply, EffectAllow},
		{RoleStudent, DomainPortal, ResourceApplication, ActionWithdraw, EffectAllow},
		{RoleStudent, DomainPortal, ResourceApplication, ActionRead, EffectAllow},
		{RoleStudent, DomainPortal, ResourceApplication, ActionList, EffectAllow},
		{RoleStudent, DomainPortal, ResourceCollegeProfile, ActionRead, EffectAllow},
		{RoleStudent, DomainPortal, ResourceFile, ActionCreate, EffectAllow},

		// Companies post internships and process incoming applications.
		// The matcher has no action hierarchy, so grants are explicit.
		{RoleCompany, DomainPortal, ResourceInternship, ActionCreate, EffectAllow},
		{RoleCompany, DomainPortal, ResourceInternship, ActionRead, EffectAllow},
		{RoleCompany, DomainPortal, ResourceInternship, ActionList, EffectAllow},
		{RoleCompany, DomainPortal, ResourceInternship, ActionUpdate, EffectAllow},
		{RoleCompany, DomainPortal, ResourceInternship, ActionDelete, EffectAllow},
		{RoleCompany, DomainPortal, ResourceInternship, ActionClose, EffectAllow},
		{RoleCompany, DomainPortal, ResourceApplication, ActionRead, EffectAllow},
		{RoleCompany, DomainPortal, ResourceApplication, ActionList, EffectAllow},
		{RoleCompany, DomainPortal, ResourceApplication, ActionUpdate, EffectAllow},
		{RoleCompany, DomainPortal, ResourceFile, ActionCreate, EffectAllow},

		// Colleges manage their student roster.
		{RoleCollege, DomainPortal, ResourceCollegeStudent, ActionCreate, EffectAllow},
		{RoleCollege, DomainPortal, ResourceCollegeStudent, ActionRead, EffectAllow},
		{RoleCollege, DomainPortal, ResourceCollegeStudent, ActionList, EffectAllow},
		{RoleCollege, DomainPortal, ResourceCollegeStudent, ActionUpdate, EffectAllow},
		{RoleCollege, DomainPortal, ResourceCollegeStudent, ActionDelete, EffectAllow},
		{RoleCollege, DomainPortal, ResourceCollegeStudent, ActionVerify, EffectAllow},
		{RoleCollege, DomainPortal, ResourceStudentProfile, ActionRead, EffectAllow},
		{RoleCollege, DomainPortal, ResourceStudentProfile, ActionList, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceStudentProfile, WildcardAction, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceCompanyProfile, WildcardAction, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceCollegeProfile, WildcardAction, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, WildcardAction, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, WildcardAction, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, WildcardAction, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, portalPolicies...), userPolicies...)

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

// AssignPortalRole assigns the portal role matching the user's account type.
// Call this when creating a new user.
func AssignPortalRole(ctx context.Context, auth IAuthorization, userID, userType string) error {
	role, ok := UserTypeToRBACRole[userType]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	if role == RolePortalAdmin {
		_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
		return err
	}

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainPortal)
	return err
}

// RemovePortalRole removes the portal role for the user's account type.
// Call this when deleting a user.
func RemovePortalRole(ctx context.Context, auth IAuthorization, userID, userType string) error {
	role, ok := UserTypeToRBACRole[userType]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	domain := DomainPortal
	if role == RolePortalAdmin {
		domain = DomainSys
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetPortalRoles returns all roles a user has in the portal domain.
func GetPortalRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	return auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainPortal)
}
