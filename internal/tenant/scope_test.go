package tenant_test

import (
	"errors"
	"testing"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		caller  tenant.Caller
		want    tenant.Scope
		wantErr error
	}{
		{
			name:   "admin gets company scope",
			caller: tenant.Caller{UserID: "u-1", Role: tenant.RoleCompanyAdmin, CompanyID: "c-1"},
			want:   tenant.CompanyAdminScope{CompanyID: "c-1"},
		},
		{
			name:   "employee gets own scope",
			caller: tenant.Caller{UserID: "u-2", Role: tenant.RoleEmployee, CompanyID: "c-1"},
			want:   tenant.EmployeeScope{EmployeeID: "u-2", CompanyID: "c-1"},
		},
		{
			name:   "employee without company still reads own rows",
			caller: tenant.Caller{UserID: "u-3", Role: tenant.RoleEmployee},
			want:   tenant.EmployeeScope{EmployeeID: "u-3"},
		},
		{
			name:    "admin without company is rejected",
			caller:  tenant.Caller{UserID: "u-4", Role: tenant.RoleCompanyAdmin, CompanyID: "  "},
			wantErr: tenant.ErrNoCompany,
		},
		{
			name:    "unknown role is rejected",
			caller:  tenant.Caller{UserID: "u-5", Role: "owner", CompanyID: "c-1"},
			wantErr: tenant.ErrUnknownRole,
		},
		{
			name:    "missing user is rejected",
			caller:  tenant.Caller{Role: tenant.RoleEmployee},
			wantErr: tenant.ErrMissingUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tenant.Resolve(tt.caller)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.True(t, apperror.HasCode(err, apperror.CodeValidationFailed))
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeKeysDoNotCollide(t *testing.T) {
	admin := tenant.CompanyAdminScope{CompanyID: "x"}
	employee := tenant.EmployeeScope{EmployeeID: "x"}

	assert.NotEqual(t, admin.Key(), employee.Key())
	assert.Equal(t, "x", tenant.CompanyOf(admin))
	assert.Equal(t, "", tenant.CompanyOf(employee))
}

func TestCompanyScopes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DryRun: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var rows []map[string]any
	stmt := db.Table("training_modules").Scopes(tenant.CompanyScope("c-1")).Find(&rows).Statement
	assert.Contains(t, stmt.SQL.String(), "company_id = ?")
	assert.Equal(t, []any{"c-1"}, stmt.Vars)

	stmt = db.Table("employee_progress AS ep").Scopes(tenant.CompanyModules("ep.module_id", "c-2")).Find(&rows).Statement
	sql := stmt.SQL.String()
	assert.Contains(t, sql, "ep.module_id IN (SELECT")
	assert.Contains(t, sql, "training_modules")
	assert.Contains(t, sql, "company_id = ?")
	assert.Equal(t, []any{"c-2"}, stmt.Vars)
}
