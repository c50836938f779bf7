package service

import (
	"time"

	"quest_admin/internal/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	demoProofOne  = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	demoProofTwo  = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	demoQuestOne  = uuid.MustParse("00000000-0000-4000-8000-00000000000a")
	demoQuestTwo  = uuid.MustParse("00000000-0000-4000-8000-00000000000b")
	demoSubmitOne = "demo_user_1"
	demoSubmitTwo = "demo_user_2"
)

// DemoStats is served while no record store is reachable.
func DemoStats() *model.DashboardStats {
	now := time.Now().UTC()

	return &model.DashboardStats{
		QuestProofs: model.ProofStats{
			Total:       25,
			Pending:     8,
			Approved:    15,
			Rejected:    2,
			TotalPayout: 1250.50,
		},
		ChallengeSubmissions: model.SubmissionStats{
			Total:    12,
			Pending:  4,
			Approved: 7,
			Rejected: 1,
		},
		RecentActivity: []model.ActivityItem{
			{
				ID:          demoProofOne.String(),
				QuestID:     &demoQuestOne,
				Type:        model.ActivityQuestProof,
				Title:       "Demo Quest: Complete Tutorial",
				Submitter:   demoSubmitOne,
				Status:      model.ProofStatusPending,
				SubmittedAt: now.Add(-30 * time.Minute),
			},
			{
				ID:          demoProofTwo.String(),
				Type:        model.ActivityChallengeSubmission,
				Title:       "Demo Challenge: Gaming Marathon",
				Submitter:   demoSubmitTwo,
				Status:      model.ProofStatusApproved,
				SubmittedAt: now.Add(-time.Hour),
			},
		},
		Demo: true,
	}
}

func DemoProofs() []*model.EnrichedProof {
	now := time.Now().UTC()

	return []*model.EnrichedProof{
		{
			QuestProof: model.QuestProof{
				ID:             demoProofOne,
				QuestID:        demoQuestOne,
				SubmitterID:    demoSubmitOne,
				ProofURL:       "https://example.com/proofs/tutorial.jpg",
				Notes:          lo.ToPtr("Completed tutorial successfully"),
				Status:         model.ProofStatusPending,
				PayoutAmount:   lo.ToPtr(50.0),
				PayoutCurrency: lo.ToPtr("USDC"),
				SubmittedAt:    now.Add(-30 * time.Minute),
				CreatedAt:      now.Add(-30 * time.Minute),
				UpdatedAt:      now.Add(-30 * time.Minute),
			},
			Quest: &model.QuestSummary{
				Title:       "Complete Tutorial",
				Description: lo.ToPtr("Learn the basics"),
			},
		},
		{
			QuestProof: model.QuestProof{
				ID:             demoProofTwo,
				QuestID:        demoQuestTwo,
				SubmitterID:    demoSubmitTwo,
				ProofURL:       "https://example.com/proofs/marathon.mp4",
				Notes:          lo.ToPtr("Gaming session completed"),
				Status:         model.ProofStatusApproved,
				PayoutAmount:   lo.ToPtr(100.0),
				PayoutCurrency: lo.ToPtr("USDC"),
				SubmittedAt:    now.Add(-time.Hour),
				CreatedAt:      now.Add(-time.Hour),
				UpdatedAt:      now.Add(-time.Hour),
			},
			Quest: &model.QuestSummary{
				Title:       "Gaming Marathon",
				Description: lo.ToPtr("Play for 5 hours"),
			},
		},
	}
}
