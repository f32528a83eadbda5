package middleware

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/contextutil"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request scoped logger to the request context.
// Mount it after AuthMiddleware so the user is known.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = contextutil.GetRequestID(c.Request.Context())
		}

		caller := tenant.CallerFromGin(c)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", caller.UserID),
			zap.String("role", string(caller.Role)),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, caller.UserID)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
