// Package authz is the single permission authority for the application-status
// path and the workflow-step path. It is pure: no I/O, no stored state beyond
// the role table.
package authz

import "staffhub/internal/models"

// Role is a principal's effective role.
type Role string

const (
	RoleAdminOwner     Role = "admin_owner"
	RoleAdminEmployee  Role = "admin_employee"
	RoleSuperAdmin     Role = "superadmin"
	RoleAdmin          Role = "admin"
	RoleHRAdmin        Role = "hr_admin"
	RoleClientOwner    Role = "client_owner"
	RoleClientEmployee Role = "client_employee"
	RoleClient         Role = "client"
	RoleVendorOwner    Role = "vendor_owner"
	RoleVendorEmployee Role = "vendor_employee"
	RoleVendor         Role = "vendor"
)

// RoleTag is the required-role label carried by a workflow step or implied by
// a lifecycle rule.
type RoleTag string

const (
	TagSuperAdmin RoleTag = "super_admin"
	TagAdmin      RoleTag = "admin"
	TagHRAdmin    RoleTag = "hr_admin"
	TagClient     RoleTag = "client"
	TagVendor     RoleTag = "vendor"
)

// acceptedRoles maps a role tag to the effective roles allowed to act on it.
// Any tag absent from the table denies everyone.
var acceptedRoles = map[RoleTag][]Role{
	TagSuperAdmin: {RoleAdminOwner, RoleSuperAdmin},
	TagAdmin:      {RoleAdminOwner, RoleAdminEmployee, RoleSuperAdmin, RoleAdmin},
	TagHRAdmin:    {RoleAdminOwner, RoleAdminEmployee, RoleSuperAdmin, RoleAdmin, RoleHRAdmin},
	TagClient:     {RoleClientOwner, RoleClientEmployee, RoleClient},
	TagVendor:     {RoleVendorOwner, RoleVendorEmployee, RoleVendor},
}

// EffectiveRole resolves the principal's role: the organization-scoped role
// wins, then the generic role field, then the coarse user type.
func EffectiveRole(p models.Principal) Role {
	if p.OrganizationRole != "" {
		return Role(p.OrganizationRole)
	}
	if p.Role != "" {
		return Role(p.Role)
	}
	return Role(p.UserType)
}

// CanAct reports whether the principal may act on a step or rule gated by the
// given role tag. Unknown tags fail closed.
func CanAct(p models.Principal, tag RoleTag) bool {
	accepted, ok := acceptedRoles[tag]
	if !ok {
		return false
	}
	role := EffectiveRole(p)
	for _, r := range accepted {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds any admin-tier role.
func IsAdmin(p models.Principal) bool { return CanAct(p, TagAdmin) }

// IsClient reports whether the principal holds a client-tier role.
func IsClient(p models.Principal) bool { return CanAct(p, TagClient) }

// IsVendor reports whether the principal holds a vendor-tier role.
func IsVendor(p models.Principal) bool { return CanAct(p, TagVendor) }
