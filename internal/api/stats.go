package api

import (
	"net/http"
	"time"

	"quest_admin/internal/middleware"
	"quest_admin/internal/model"
	"quest_admin/internal/service"
	"quest_admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type statsRoutes struct {
	ds service.DashboardServiceI
}

func NewStatsRoutes(handler *gin.RouterGroup, ds service.DashboardServiceI, authz *middleware.Authorization, protectReads bool) {
	r := &statsRoutes{ds: ds}
	h := handler.Group("")
	if protectReads {
		h.Use(authz.AdminOnly())
	}
	{
		h.GET("/stats", r.GetStats)
	}
}

type ProofStatsResponse struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Approved    int     `json:"approved"`
	Rejected    int     `json:"rejected"`
	TotalPayout float64 `json:"totalPayout"`
}

type SubmissionStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type ActivityItemResponse struct {
	ID             string    `json:"id"`
	QuestID        *string   `json:"quest_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Submitter      string    `json:"submitter"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
	StreamerName   *string   `json:"streamer_name"`
	ProofURL       *string   `json:"proof_url"`
	PayoutAmount   *float64  `json:"payout_amount"`
	PayoutCurrency *string   `json:"payout_currency"`
	PayoutTxHash   *string   `json:"payout_tx_hash"`
}

type StatsResponse struct {
	QuestProofs          ProofStatsResponse      `json:"questProofs"`
	ChallengeSubmissions SubmissionStatsResponse `json:"challengeSubmissions"`
	RecentActivity       []ActivityItemResponse  `json:"recentActivity"`
	Demo                 bool                    `json:"demo,omitempty"`
}

func (r *statsRoutes) GetStats(c *gin.Context) {
	log := logger.Logger()

	stats, err := r.ds.Stats(c.Request.Context())
	if err != nil {
		log.Error("failed to build dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, newStatsResponse(stats))
}

func newStatsResponse(s *model.DashboardStats) StatsResponse {
	resp := StatsResponse{
		QuestProofs: ProofStatsResponse{
			Total:       s.QuestProofs.Total,
			Pending:     s.QuestProofs.Pending,
			Approved:    s.QuestProofs.Approved,
			Rejected:    s.QuestProofs.Rejected,
			TotalPayout: s.QuestProofs.TotalPayout,
		},
		ChallengeSubmissions: SubmissionStatsResponse{
			Total:    s.ChallengeSubmissions.Total,
			Pending:  s.ChallengeSubmissions.Pending,
			Approved: s.ChallengeSubmissions.Approved,
			Rejected: s.ChallengeSubmissions.Rejected,
		},
		RecentActivity: make([]ActivityItemResponse, 0, len(s.RecentActivity)),
		Demo:           s.Demo,
	}

	for _, item := range s.RecentActivity {
		var questID *string
		if item.QuestID != nil {
			id := item.QuestID.String()
			questID = &id
		}
		resp.RecentActivity = append(resp.RecentActivity, ActivityItemResponse{
			ID:             item.ID,
			QuestID:        questID,
			Type:           string(item.Type),
			Title:          item.Title,
			Submitter:      item.Submitter,
			Status:         string(item.Status),
			SubmittedAt:    item.SubmittedAt,
			StreamerName:   item.StreamerName,
			ProofURL:       item.ProofURL,
			PayoutAmount:   item.PayoutAmount,
			PayoutCurrency: item.PayoutCurrency,
			PayoutTxHash:   item.PayoutTxHash,
		})
	}

	return resp
}
