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
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionVerify   Action = "verify"
	ActionClose    Action = "close"
	ActionApply    Action = "apply"
	ActionWithdraw Action = "withdraw"

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
	ActionApprove: {}, ActionReject: {}, ActionVerify: {}, ActionClose: {},
	ActionApply: {}, ActionWithdraw: {},
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

	// Profiles
	ResourceStudentProfile Resource = "student_profile"
	ResourceCompanyProfile Resource = "company_profile"
	ResourceCollegeProfile Resource = "college_profile"

	// Placement
	ResourceInternship     Resource = "internship"
	ResourceApplication    Resource = "application"
	ResourceCollegeStudent Resource = "college_student"

	// Communication
	ResourceNotification Resource = "notification"

	// Files (resumes, logos)
	ResourceFile Resource = "file"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceReport Resource = "report"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {},
	ResourceStudentProfile: {}, ResourceCompanyProfile: {}, ResourceCollegeProfile: {},
	ResourceInternship: {}, ResourceApplication: {}, ResourceCollegeStudent: {},
	ResourceNotification: {}, ResourceFile: {},
	ResourceSystem: {}, ResourceReport: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePortalAdmin Role = "role:portal:admin"

	// Portal roles (domain = portal)
	RoleStudent Role = "role:portal:student"
	RoleCompany Role = "role:portal:company"
	RoleCollege Role = "role:portal:college"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePortalAdmin: {},
	RoleStudent:     {},
	RoleCompany:     {},
	RoleCollege:     {},
	RoleUserSelf:    {},
}

// User type strings (stored in the users.user_type column)
const (
	UserTypeStudent = "student"
	UserTypeCompany = "company"
	UserTypeCollege = "college"
	UserTypeAdmin   = "admin"
)

// UserTypeToRBACRole maps DB user_type values to Casbin roles
var UserTypeToRBACRole = map[string]Role{
	UserTypeStudent: RoleStudent,
	UserTypeCompany: RoleCompany,
	UserTypeCollege: RoleCollege,
	UserTypeAdmin:   RolePortalAdmin,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys    Domain = "sys"
	DomainPortal Domain = "portal"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == DomainPortal || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
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
