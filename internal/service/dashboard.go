package service

import (
	"context"
	"fmt"

	"quest_admin/internal/model"
	"quest_admin/pkg/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRecentLimit = 10
	enrichConcurrency  = 8
	unknownSubmitter   = "Unknown User"
)

type DashboardService struct {
	repo        DashboardRepository
	store       StoreAvailability
	recentLimit uint64
}

func NewDashboardService(repo DashboardRepository, store StoreAvailability, recentLimit int) *DashboardService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &DashboardService{
		repo:        repo,
		store:       store,
		recentLimit: uint64(recentLimit),
	}
}

// Stats aggregates review counts and recent activity. Without a reachable
// store it returns the demonstration dataset instead of failing.
func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if !s.store.Available() {
		return DemoStats(), nil
	}

	var (
		summaries []model.ProofSummary
		statuses  []model.ProofStatus
		recent    []*model.QuestProof
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summaries, err = s.repo.ListProofSummaries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.repo.ListChallengeSubmissionStatuses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.repo.ListQuestProofs(gctx, s.recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch admin statistics: %w", err)
	}

	activity := make([]model.ActivityItem, len(recent))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(enrichConcurrency)
	for i, proof := range recent {
		i, proof := i, proof
		eg.Go(func() error {
			activity[i] = s.activityItem(ectx, proof)
			return nil
		})
	}
	_ = eg.Wait()

	return &model.DashboardStats{
		QuestProofs:          ProofStatsOf(summaries),
		ChallengeSubmissions: SubmissionStatsOf(statuses),
		RecentActivity:       activity,
	}, nil
}

// ListProofs returns every proof newest first with the submitter profile and,
// when both rows exist, its quest and the quest's streamer.
func (s *DashboardService) ListProofs(ctx context.Context) ([]*model.EnrichedProof, error) {
	if !s.store.Available() {
		return DemoProofs(), nil
	}

	proofs, err := s.repo.ListQuestProofs(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quest proofs: %w", err)
	}

	out := make([]*model.EnrichedProof, len(proofs))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(enrichConcurrency)
	for i, proof := range proofs {
		i, proof := i, proof
		eg.Go(func() error {
			out[i] = s.enrichProof(ectx, proof)
			return nil
		})
	}
	_ = eg.Wait()

	return out, nil
}

func ProofStatsOf(summaries []model.ProofSummary) model.ProofStats {
	counts := lo.CountValuesBy(summaries, func(p model.ProofSummary) model.ProofStatus {
		return p.Status
	})
	approved := lo.Filter(summaries, func(p model.ProofSummary, _ int) bool {
		return p.Status == model.ProofStatusApproved
	})

	return model.ProofStats{
		Total:    len(summaries),
		Pending:  counts[model.ProofStatusPending],
		Approved: counts[model.ProofStatusApproved],
		Rejected: counts[model.ProofStatusRejected],
		TotalPayout: lo.SumBy(approved, func(p model.ProofSummary) float64 {
			return lo.FromPtr(p.PayoutAmount)
		}),
	}
}

func SubmissionStatsOf(statuses []model.ProofStatus) model.SubmissionStats {
	counts := lo.CountValues(statuses)

	return model.SubmissionStats{
		Total:    len(statuses),
		Pending:  counts[model.ProofStatusPending],
		Approved: counts[model.ProofStatusApproved],
		Rejected: counts[model.ProofStatusRejected],
	}
}

func (s *DashboardService) activityItem(ctx context.Context, proof *model.QuestProof) model.ActivityItem {
	log := logger.Logger()

	item := model.ActivityItem{
		ID:             proof.ID.String(),
		QuestID:        &proof.QuestID,
		Type:           model.ActivityQuestProof,
		Title:          fmt.Sprintf("Quest Proof %s", proof.ID),
		Submitter:      submitterName(proof),
		Status:         proof.Status,
		SubmittedAt:    proof.CreatedAt,
		ProofURL:       lo.EmptyableToPtr(proof.ProofURL),
		PayoutAmount:   proof.PayoutAmount,
		PayoutCurrency: proof.PayoutCurrency,
		PayoutTxHash:   proof.PayoutTxHash,
	}

	quest, err := s.repo.GetQuest(ctx, proof.QuestID)
	if err != nil {
		log.Warn("failed to fetch quest for activity",
			zap.String("quest_id", proof.QuestID.String()),
			zap.Error(err))
		return item
	}
	if quest.Title != "" {
		item.Title = quest.Title
	}

	streamer, err := s.repo.GetStreamer(ctx, quest.StreamerID)
	if err != nil {
		log.Warn("failed to fetch streamer for activity",
			zap.String("streamer_id", quest.StreamerID.String()),
			zap.Error(err))
		return item
	}
	item.StreamerName = &streamer.TwitchUsername

	return item
}

func (s *DashboardService) enrichProof(ctx context.Context, proof *model.QuestProof) *model.EnrichedProof {
	log := logger.Logger()
	enriched := &model.EnrichedProof{QuestProof: *proof}

	// A quest is only reported together with its streamer.
	quest, err := s.repo.GetQuest(ctx, proof.QuestID)
	if err != nil {
		log.Warn("failed to fetch quest",
			zap.String("quest_id", proof.QuestID.String()),
			zap.Error(err))
	} else if streamer, err := s.repo.GetStreamer(ctx, quest.StreamerID); err != nil {
		log.Warn("quest has no streamer, omitting quest",
			zap.String("quest_id", proof.QuestID.String()),
			zap.String("streamer_id", quest.StreamerID.String()),
			zap.Error(err))
	} else {
		enriched.Quest = &model.QuestSummary{
			Title:        quest.Title,
			Description:  quest.Description,
			StreamerName: &streamer.TwitchUsername,
		}
	}

	if proof.SubmitterID != "" {
		profile, err := s.repo.GetProfileByUserID(ctx, proof.SubmitterID)
		if err == nil {
			enriched.Submitter = profile
		}
	}

	return enriched
}

func submitterName(proof *model.QuestProof) string {
	if proof.WalletAddress != nil && *proof.WalletAddress != "" {
		return *proof.WalletAddress
	}
	if proof.SubmitterID != "" {
		return proof.SubmitterID
	}
	return unknownSubmitter
}
