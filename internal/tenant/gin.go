package tenant

import "github.com/gin-gonic/gin"

// Gin context keys written by the auth middleware.
const (
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextCompanyID = "company_id"
)

func CallerFromGin(c *gin.Context) Caller {
	return Caller{
		UserID:    c.GetString(ContextUserID),
		Role:      Role(c.GetString(ContextRole)),
		CompanyID: c.GetString(ContextCompanyID),
	}
}

// SetCaller is the inverse of CallerFromGin; middleware and handler tests use it.
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(ContextUserID, caller.UserID)
	c.Set(ContextRole, string(caller.Role))
	c.Set(ContextCompanyID, caller.CompanyID)
}
