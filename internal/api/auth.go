package api

import (
	"errors"
	"net/http"

	"quest_admin/internal/service"
	"quest_admin/pkg/auth"
	"quest_admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type authRoutes struct {
	as service.AdminServiceI
}

func NewAuthRoutes(handler *gin.RouterGroup, as service.AdminServiceI) {
	r := &authRoutes{as: as}
	h := handler.Group("/auth")
	{
		h.POST("/check-admin", r.CheckAdmin)
	}
}

type CheckAdminRequest struct {
	AccessToken string `json:"accessToken"`
}

type CheckAdminResponse struct {
	IsAdmin  bool   `json:"isAdmin"`
	UserID   string `json:"userId"`
	Verified bool   `json:"verified"`
}

func (r *authRoutes) CheckAdmin(c *gin.Context) {
	log := logger.Logger()

	var req CheckAdminRequest
	if c.Request.ContentLength != 0 {
		// An unreadable body carries no credential; the header may still.
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Info("unreadable check-admin body", zap.Error(err))
		}
	}

	token := req.AccessToken
	if token == "" {
		token = auth.BearerToken(c.GetHeader("Authorization"))
	}

	decision, err := r.as.Authorize(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No access token provided"})
		case errors.Is(err, service.ErrInvalidCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		default:
			log.Error("admin verification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, CheckAdminResponse{
		IsAdmin:  decision.IsAdmin,
		UserID:   decision.SubjectID,
		Verified: decision.Verified,
	})
}
