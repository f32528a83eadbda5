package trainingmodule

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/middleware"
	"github.com/HorizonColonel/orient-launch-pad/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, auth ...gin.HandlerFunc) {
	modules := r.Group("/modules")
	modules.Use(auth...)
	modules.Use(middleware.RequireCompany())
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceModule, rbac.ActionRead)
		manage := middleware.RBACAuthorize(rbacService, rbac.ResourceModule, rbac.ActionManage)

		modules.GET("", middleware.RateLimitByUser(3, 10), read, handler.List)
		modules.GET("/:id", middleware.RateLimitByUser(5, 20), read, handler.GetByID)
		modules.POST("", middleware.RateLimitByUser(0.5, 3), manage, handler.Create)
		modules.PUT("/:id", middleware.RateLimitByUser(1, 5), manage, handler.Update)
		modules.DELETE("/:id", middleware.RateLimitByUser(0.5, 3), manage, handler.Delete)

		modules.GET("/:id/materials",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceMaterial, rbac.ActionRead),
			handler.ListMaterials,
		)
		modules.POST("/:id/materials",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceMaterial, rbac.ActionManage),
			handler.AddMaterial,
		)
	}
}
