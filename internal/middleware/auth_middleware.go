package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/response"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New("INVALID_TOKEN", "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
)

// Claims is the identity issued by the external identity provider.
// company_id is null until the profile is attached to a company.
type Claims struct {
	UserID    string  `json:"user_id"`
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id"`
	jwt.RegisteredClaims
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware verifies the bearer token (or access_token cookie) and puts the
// caller on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return key, nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		userID := claims.UserID
		if userID == "" {
			userID = claims.Subject
		}
		if userID == "" || !tenant.Role(claims.Role).Valid() {
			abortWith(c, ErrInvalidToken)
			return
		}

		companyID := ""
		if claims.CompanyID != nil {
			companyID = *claims.CompanyID
		}

		tenant.SetCaller(c, tenant.Caller{
			UserID:    userID,
			Role:      tenant.Role(claims.Role),
			CompanyID: companyID,
		})

		c.Next()
	}
}
