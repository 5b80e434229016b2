package authz

import (
	"testing"

	"staffhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func principalWith(orgRole, role, userType string) models.Principal {
	return models.Principal{
		UserType:         userType,
		Role:             role,
		OrganizationRole: orgRole,
	}
}

func TestEffectiveRolePrecedence(t *testing.T) {
	p := principalWith("admin_owner", "hr_admin", "client")
	assert.Equal(t, RoleAdminOwner, EffectiveRole(p), "organization role wins")

	p = principalWith("", "hr_admin", "client")
	assert.Equal(t, RoleHRAdmin, EffectiveRole(p), "generic role is second")

	p = principalWith("", "", "client")
	assert.Equal(t, RoleClient, EffectiveRole(p), "user type is the fallback")
}

func TestCanActRoleTable(t *testing.T) {
	cases := []struct {
		name    string
		p       models.Principal
		tag     RoleTag
		allowed bool
	}{
		{"admin owner on super_admin", principalWith("admin_owner", "", ""), TagSuperAdmin, true},
		{"superadmin on super_admin", principalWith("", "superadmin", ""), TagSuperAdmin, true},
		{"admin employee denied super_admin", principalWith("admin_employee", "", ""), TagSuperAdmin, false},
		{"admin employee on admin", principalWith("admin_employee", "", ""), TagAdmin, true},
		{"plain admin on admin", principalWith("", "", "admin"), TagAdmin, true},
		{"hr_admin denied admin", principalWith("", "hr_admin", ""), TagAdmin, false},
		{"hr_admin on hr_admin", principalWith("", "hr_admin", ""), TagHRAdmin, true},
		{"admin on hr_admin", principalWith("", "", "admin"), TagHRAdmin, true},
		{"client owner on client", principalWith("client_owner", "", ""), TagClient, true},
		{"client employee on client", principalWith("client_employee", "", ""), TagClient, true},
		{"vendor denied client", principalWith("", "", "vendor"), TagClient, false},
		{"vendor owner on vendor", principalWith("vendor_owner", "", ""), TagVendor, true},
		{"client denied vendor", principalWith("", "", "client"), TagVendor, false},
		{"admin denied vendor", principalWith("", "", "admin"), TagVendor, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanAct(tc.p, tc.tag))
		})
	}
}

func TestCanActUnknownTagFailsClosed(t *testing.T) {
	p := principalWith("admin_owner", "", "")
	assert.False(t, CanAct(p, RoleTag("ceo")))
	assert.False(t, CanAct(p, RoleTag("")))
}

func TestTierHelpers(t *testing.T) {
	assert.True(t, IsAdmin(principalWith("", "", "admin")))
	assert.False(t, IsAdmin(principalWith("", "", "client")))
	assert.True(t, IsClient(principalWith("client_owner", "", "")))
	assert.True(t, IsVendor(principalWith("", "", "vendor")))
	assert.False(t, IsVendor(principalWith("", "", "unknown")))
}
