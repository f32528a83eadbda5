package userprofile

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/middleware"
	"github.com/HorizonColonel/orient-launch-pad/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, auth ...gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(auth...)
	{
		employees.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.GetMe,
		)

		employees.PUT("/me",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdateSelf),
			handler.UpdateMe,
		)

		employees.GET("",
			middleware.RequireCompany(),
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.List,
		)

		employees.GET("/options",
			middleware.RequireCompany(),
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.Options,
		)
	}
}
