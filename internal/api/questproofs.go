package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"quest_admin/internal/middleware"
	"quest_admin/internal/model"
	"quest_admin/internal/service"
	"quest_admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type questProofRoutes struct {
	rs service.ReviewServiceI
	ds service.DashboardServiceI
}

func NewQuestProofRoutes(handler *gin.RouterGroup, rs service.ReviewServiceI, ds service.DashboardServiceI, authz *middleware.Authorization, protectReads bool) {
	r := &questProofRoutes{rs: rs, ds: ds}

	reads := handler.Group("")
	if protectReads {
		reads.Use(authz.AdminOnly())
	}
	{
		reads.GET("/quest-proofs", r.ListQuestProofs)
	}

	writes := handler.Group("")
	writes.Use(authz.AdminOnly())
	{
		writes.PATCH("/quest-proofs", r.UpdateQuestProof)
		writes.POST("/approve-and-set-proof", r.ApproveAndSetProof)
		writes.POST("/set-quest-proof", r.SetQuestProof)
		writes.POST("/update-proof-status", r.UpdateProofStatus)
		writes.POST("/update-payout", r.UpdatePayout)
	}
}

func (r *questProofRoutes) ListQuestProofs(c *gin.Context) {
	log := logger.Logger()

	proofs, err := r.ds.ListProofs(c.Request.Context())
	if err != nil {
		log.Error("failed to list quest proofs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quest proofs"})
		return
	}

	resp := make([]enrichedProofResponse, 0, len(proofs))
	for _, p := range proofs {
		resp = append(resp, newEnrichedProofResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

type UpdateQuestProofRequest struct {
	ID             string                          `json:"id" binding:"required,uuid"`
	Status         *string                         `json:"status"`
	PayoutAmount   model.Optional[json.RawMessage] `json:"payout_amount"`
	PayoutCurrency model.Optional[string]          `json:"payout_currency"`
}

func (r *questProofRoutes) UpdateQuestProof(c *gin.Context) {
	log := logger.Logger()

	var req UpdateQuestProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("invalid quest proof update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	proofID := uuid.MustParse(req.ID)

	payout, err := payoutUpdate(req.PayoutAmount, req.PayoutCurrency, model.Optional[string]{})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status *model.ProofStatus
	if req.Status != nil {
		s := model.ProofStatus(*req.Status)
		status = &s
	}

	proof, err := r.rs.UpdateProof(c.Request.Context(), proofID, status, payout, middleware.AdminID(c))
	if err != nil {
		code := reviewErrorStatus(err, http.StatusServiceUnavailable)
		if code >= http.StatusInternalServerError {
			log.Error("failed to update quest proof", zap.String("proof_id", req.ID), zap.Error(err))
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newProofResponse(proof))
}

type ApproveAndSetProofRequest struct {
	QuestID  string `json:"questId" binding:"required,uuid"`
	ProofID  string `json:"proofId" binding:"required,uuid"`
	ProofURL string `json:"proofUrl" binding:"required"`
}

func (r *questProofRoutes) ApproveAndSetProof(c *gin.Context) {
	log := logger.Logger()

	var req ApproveAndSetProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("invalid approve request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "questId, proofId and proofUrl are required"})
		return
	}

	_, err := r.rs.ApproveAndPropagate(c.Request.Context(),
		uuid.MustParse(req.QuestID), uuid.MustParse(req.ProofID), req.ProofURL, middleware.AdminID(c))
	if err != nil {
		code := reviewErrorStatus(err, http.StatusInternalServerError)
		if code >= http.StatusInternalServerError {
			log.Error("failed to approve and publish proof",
				zap.String("quest_id", req.QuestID),
				zap.String("proof_id", req.ProofID),
				zap.Bool("proof_approved", errors.Is(err, service.ErrPropagationFailed)),
				zap.Error(err))
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type SetQuestProofRequest struct {
	QuestID  string `json:"questId" binding:"required,uuid"`
	ProofURL string `json:"proofUrl" binding:"required"`
}

func (r *questProofRoutes) SetQuestProof(c *gin.Context) {
	log := logger.Logger()

	var req SetQuestProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("invalid set quest proof request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "questId and proofUrl are required"})
		return
	}

	err := r.rs.SetQuestProofURL(c.Request.Context(), uuid.MustParse(req.QuestID), req.ProofURL, middleware.AdminID(c))
	if err != nil {
		code := reviewErrorStatus(err, http.StatusForbidden)
		if code >= http.StatusInternalServerError {
			log.Error("failed to set quest proof", zap.String("quest_id", req.QuestID), zap.Error(err))
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quest proof URL updated"})
}

type UpdateProofStatusRequest struct {
	ProofID string `json:"proofId" binding:"required,uuid"`
	Status  string `json:"status" binding:"required"`
}

func (r *questProofRoutes) UpdateProofStatus(c *gin.Context) {
	log := logger.Logger()

	var req UpdateProofStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("invalid proof status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "proofId and status are required"})
		return
	}

	proof, err := r.rs.Review(c.Request.Context(), uuid.MustParse(req.ProofID),
		model.ProofStatus(req.Status), middleware.AdminID(c))
	if err != nil {
		code := reviewErrorStatus(err, http.StatusInternalServerError)
		if code >= http.StatusInternalServerError {
			log.Error("failed to update proof status", zap.String("proof_id", req.ProofID), zap.Error(err))
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": newProofResponse(proof)})
}

type UpdatePayoutRequest struct {
	ProofID        string                          `json:"proofId" binding:"required,uuid"`
	PayoutAmount   model.Optional[json.RawMessage] `json:"payoutAmount"`
	PayoutCurrency model.Optional[string]          `json:"payoutCurrency"`
	PayoutTxHash   model.Optional[string]          `json:"payoutTxHash"`
}

func (r *questProofRoutes) UpdatePayout(c *gin.Context) {
	log := logger.Logger()

	var req UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("invalid payout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "proofId is required"})
		return
	}

	payout, err := payoutUpdate(req.PayoutAmount, req.PayoutCurrency, req.PayoutTxHash)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proof, err := r.rs.UpdatePayout(c.Request.Context(), uuid.MustParse(req.ProofID), payout, middleware.AdminID(c))
	if err != nil {
		code := reviewErrorStatus(err, http.StatusInternalServerError)
		if code >= http.StatusInternalServerError {
			log.Error("failed to update payout", zap.String("proof_id", req.ProofID), zap.Error(err))
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": newProofResponse(proof)})
}
