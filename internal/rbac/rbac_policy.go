package rbac

import "github.com/HorizonColonel/orient-launch-pad/internal/tenant"

const (
	ResourceProgress = "progress"
	ResourceModule   = "module"
	ResourceMaterial = "material"
	ResourceEmployee = "employee"
	ResourceCompany  = "company"

	ActionRead       = "read"
	ActionUpdateSelf = "update_self"
	ActionManage     = "manage"
	ActionExport     = "export"
)

// Policy is the full permission table. Roles are issued by the identity provider,
// so the table is fixed at build time.
var Policy = map[tenant.Role][][2]string{
	tenant.RoleEmployee: {
		{ResourceProgress, ActionRead},
		{ResourceProgress, ActionUpdateSelf},
		{ResourceProgress, ActionExport},
		{ResourceModule, ActionRead},
		{ResourceMaterial, ActionRead},
		{ResourceEmployee, ActionUpdateSelf},
		{ResourceCompany, ActionRead},
	},
	tenant.RoleCompanyAdmin: {
		{ResourceProgress, ActionManage},
		{ResourceModule, ActionManage},
		{ResourceMaterial, ActionManage},
		{ResourceEmployee, ActionRead},
		{ResourceCompany, ActionManage},
	},
}

// inherits lists grouping rules: child role, parent role.
var inherits = [][2]string{
	{string(tenant.RoleCompanyAdmin), string(tenant.RoleEmployee)},
}
