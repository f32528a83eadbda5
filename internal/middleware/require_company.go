package middleware

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/gin-gonic/gin"
)

// RequireCompany rejects callers whose scope cannot be resolved, e.g. an admin
// whose profile has no company yet.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := tenant.CallerFromGin(c)
		if _, err := tenant.Resolve(caller); err != nil {
			writeError(c, err)
			return
		}
		if caller.CompanyID == "" {
			writeError(c, tenant.ErrNoCompany)
			return
		}

		c.Next()
	}
}
