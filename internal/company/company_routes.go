package company

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/middleware"
	"github.com/HorizonColonel/orient-launch-pad/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, auth ...gin.HandlerFunc) {
	company := r.Group("/companies")
	company.Use(auth...)
	company.Use(middleware.RequireCompany())
	{
		company.GET("/me",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCompany, rbac.ActionRead),
			handler.GetMe,
		)

		company.PUT("/me",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCompany, rbac.ActionManage),
			handler.UpdateMe,
		)
	}
}
