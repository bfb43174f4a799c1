package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/checkin_system/internal/auth"
	"github.com/sirupsen/logrus"
)

const (
	ctxEmployeeID = "employee_id"
	ctxGrade      = "grade"

	bearerPrefix = "Bearer "
)

// AuthMiddleware verifies the bearer token on every protected route. A
// missing credential is 401, an invalid or expired one is 403, both with an
// empty body. Identity is rebuilt from the token on each request; there is no
// session store.
func AuthMiddleware(tokens *auth.TokenManager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			log.Warn("Request without bearer credential")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			log.WithError(err).Warn("Rejected invalid bearer token")
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ctxEmployeeID, claims.EmployeeID)
		c.Set(ctxGrade, claims.Grade)
		c.Next()
	}
}

// employeeIDFromContext returns the authenticated employee identity stored by
// AuthMiddleware.
func employeeIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxEmployeeID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// gradeFromContext returns the authenticated employee's grade.
func gradeFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxGrade)
	if !exists {
		return "", false
	}
	grade, ok := value.(string)
	return grade, ok
}
