package middleware

import (
	"errors"
	"net/http"

	"quest_admin/internal/service"
	"quest_admin/pkg/auth"
	"quest_admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AdminIDKey = "admin_id"

type Authorization struct {
	adminService service.AdminServiceI
}

func NewAuthorization(adminService service.AdminServiceI) *Authorization {
	return &Authorization{
		adminService: adminService,
	}
}

// AdminOnly lets a request through only when its bearer credential resolves
// to an allow-listed subject. Any verifier failure denies the request.
func (a *Authorization) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		token := auth.RequestToken(c)
		if token == "" {
			log.Info("missing authorization credential")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		decision, err := a.adminService.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrVerifierUnavailable) {
				log.Error("identity verifier unavailable", zap.Error(err))
			} else {
				log.Info("admin credential rejected", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		if !decision.IsAdmin {
			log.Info("unauthorized access attempt to admin endpoint",
				zap.String("subject_id", decision.SubjectID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Set(AdminIDKey, decision.SubjectID)
		c.Next()
	}
}

// AdminID returns the subject AdminOnly stored on the context.
func AdminID(c *gin.Context) string {
	return c.GetString(AdminIDKey)
}
