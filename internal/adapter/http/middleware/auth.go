package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"oficina_jobs/internal/infrastructure/auth"
	"oficina_jobs/pkg"
	"oficina_jobs/pkg/logger"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Auth requires a valid bearer token and stores the employee id and role on
// the gin context.
func Auth(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	log = logger.OrNop(log)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Info("[http][auth] token rejected", zap.Error(err), zap.String("path", c.Request.URL.Path))
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeyEmployeeID, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// EmployeeID returns the authenticated employee, or "" when auth is off.
func EmployeeID(c *gin.Context) string {
	return c.GetString(ContextKeyEmployeeID)
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	c.Header("WWW-Authenticate", `Bearer realm="oficina"`)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// RequireRole rejects authenticated employees whose role is not listed.
// Requests without an authenticated employee pass, so the check is a no-op
// when authentication is disabled.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if EmployeeID(c) == "" {
			c.Next()
			return
		}
		if _, ok := allowed[c.GetString(ContextKeyRole)]; !ok {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Employee role not allowed", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
