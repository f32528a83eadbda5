package rbac

import (
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/rbac/infra"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc, err := NewService(enforcer)
	require.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     tenant.Role
		resource string
		action   string
		want     bool
	}{
		{"employee reads progress", tenant.RoleEmployee, ResourceProgress, ActionRead, true},
		{"employee updates own progress", tenant.RoleEmployee, ResourceProgress, ActionUpdateSelf, true},
		{"employee cannot manage progress", tenant.RoleEmployee, ResourceProgress, ActionManage, false},
		{"employee cannot manage modules", tenant.RoleEmployee, ResourceModule, ActionManage, false},
		{"employee cannot list directory", tenant.RoleEmployee, ResourceEmployee, ActionRead, false},
		{"admin manages modules", tenant.RoleCompanyAdmin, ResourceModule, ActionManage, true},
		{"admin inherits module read", tenant.RoleCompanyAdmin, ResourceModule, ActionRead, true},
		{"admin manages progress", tenant.RoleCompanyAdmin, ResourceProgress, ActionManage, true},
		{"unknown role denied", tenant.Role("guest"), ResourceProgress, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(EnforceRequest{
				Role:     string(tt.role),
				Resource: tt.resource,
				Action:   tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newTestService(t)

	employee, err := svc.Permissions(tenant.RoleEmployee)
	require.NoError(t, err)
	assert.Contains(t, employee, "progress:read")
	assert.NotContains(t, employee, "module:manage")

	admin, err := svc.Permissions(tenant.RoleCompanyAdmin)
	require.NoError(t, err)
	assert.Contains(t, admin, "module:manage")
	assert.Contains(t, admin, "progress:read")

	none, err := svc.Permissions("guest")
	require.NoError(t, err)
	assert.Empty(t, none)
}
