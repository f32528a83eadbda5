package middleware

import (
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
