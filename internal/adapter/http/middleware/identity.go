package middleware

import (
	"net/http"
	"rubrox/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	ctxUserID   = "rubrox.user_id"
	ctxUserRole = "rubrox.user_role"
)

var (
	errMissingUser = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing "+HeaderUserID+" header", http.StatusUnauthorized)
	errMissingRole = pkg.NewDomainErrorSimple("ROLE_REQUIRED", "Missing "+HeaderUserRole+" header", http.StatusForbidden)
)

// Identity copies the caller identity set by the upstream gateway into the
// gin context. Values are opaque.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
			c.Set(ctxUserID, id)
		}
		if role := strings.TrimSpace(c.GetHeader(HeaderUserRole)); role != "" {
			c.Set(ctxUserRole, role)
		}
		c.Next()
	}
}

// RequireUser aborts with 401 when no caller id is present.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 403 when the caller carries no role.
func RequireRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRole(c) == "" {
			c.AbortWithStatusJSON(errMissingRole.HTTPStatus, errMissingRole.ToHTTPError())
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func UserRole(c *gin.Context) string {
	return c.GetString(ctxUserRole)
}
