package progress

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/middleware"
	"github.com/HorizonColonel/orient-launch-pad/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the progress API. idempotency guards the mutating routes
// and may be nil.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, idempotency gin.HandlerFunc, auth ...gin.HandlerFunc) {
	if idempotency == nil {
		idempotency = func(c *gin.Context) { c.Next() }
	}

	read := middleware.RBACAuthorize(rbacService, rbac.ResourceProgress, rbac.ActionRead)
	manage := middleware.RBACAuthorize(rbacService, rbac.ResourceProgress, rbac.ActionManage)

	p := r.Group("/progress")
	p.Use(auth...)
	{
		p.GET("", middleware.RateLimitByUser(5, 20), read, handler.List)
		p.GET("/dashboard", middleware.RateLimitByUser(3, 10), read, handler.Dashboard)
		p.GET("/modules/:id/stats", middleware.RateLimitByUser(5, 20), read, handler.ModuleStats)
		p.GET("/employees/:id/stats", middleware.RateLimitByUser(5, 20), read, handler.EmployeeStats)
		p.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProgress, rbac.ActionExport),
			handler.Export,
		)

		p.PUT("/:module_id",
			middleware.RequireCompany(),
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProgress, rbac.ActionUpdateSelf),
			idempotency,
			handler.UpdateOwn,
		)
		p.PUT("/:module_id/employees/:employee_id",
			middleware.RequireCompany(),
			middleware.RateLimitByUser(2, 10),
			manage,
			idempotency,
			handler.UpdateForEmployee,
		)
		p.POST("/:module_id/employees/:employee_id/reopen",
			middleware.RequireCompany(),
			middleware.RateLimitByUser(1, 5),
			manage,
			idempotency,
			handler.Reopen,
		)
	}

	assignments := r.Group("/modules")
	assignments.Use(auth...)
	assignments.Use(middleware.RequireCompany())
	{
		assignments.POST("/:id/assignments",
			middleware.RateLimitByUser(0.5, 3),
			manage,
			idempotency,
			handler.Assign,
		)
	}
}
