package tenant

import (
	"strings"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"

	"gorm.io/gorm"
)

type Role string

const (
	RoleEmployee     Role = "employee"
	RoleCompanyAdmin Role = "company_admin"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleCompanyAdmin
}

// Caller is the identity handed over by the identity provider.
// An empty CompanyID means the profile has not been attached to a company yet.
type Caller struct {
	UserID    string
	Role      Role
	CompanyID string
}

// Scope is the visibility boundary applied before any progress read.
// It is either CompanyAdminScope or EmployeeScope.
type Scope interface {
	isScope()
	// Key identifies the boundary in caches and singleflight groups.
	Key() string
}

// CompanyAdminScope sees every assignment whose module belongs to CompanyID.
type CompanyAdminScope struct {
	CompanyID string
}

func (CompanyAdminScope) isScope() {}

func (s CompanyAdminScope) Key() string {
	return "company:" + s.CompanyID
}

// EmployeeScope sees only the rows of EmployeeID. CompanyID is used to validate
// writes and is never used to widen a read.
type EmployeeScope struct {
	EmployeeID string
	CompanyID  string
}

func (EmployeeScope) isScope() {}

func (s EmployeeScope) Key() string {
	return "employee:" + s.EmployeeID
}

var (
	ErrMissingUserID = apperror.Validation("caller has no user id")
	ErrUnknownRole   = apperror.Validation("caller role is not recognised")
	ErrNoCompany     = apperror.Validation("No company associated with user")
)

// Resolve maps a caller to its scope. It never touches the store.
func Resolve(caller Caller) (Scope, error) {
	userID := strings.TrimSpace(caller.UserID)
	if userID == "" {
		return nil, ErrMissingUserID
	}

	companyID := strings.TrimSpace(caller.CompanyID)
	switch caller.Role {
	case RoleCompanyAdmin:
		if companyID == "" {
			return nil, ErrNoCompany
		}
		return CompanyAdminScope{CompanyID: companyID}, nil
	case RoleEmployee:
		return EmployeeScope{EmployeeID: userID, CompanyID: companyID}, nil
	default:
		return nil, ErrUnknownRole
	}
}

// CompanyOf returns the company a scope writes into, or "" for an employee
// without a company.
func CompanyOf(scope Scope) string {
	switch s := scope.(type) {
	case CompanyAdminScope:
		return s.CompanyID
	case EmployeeScope:
		return s.CompanyID
	default:
		return ""
	}
}

// CompanyScope restricts a query on a company-owned table.
func CompanyScope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// CompanyModules restricts a query on a table with a module_id column to modules
// owned by companyID. column is the qualified module id column, e.g. "ep.module_id".
func CompanyModules(column, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("training_modules").
				Select("id").
				Where("company_id = ?", companyID),
		)
	}
}
