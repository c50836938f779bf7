package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quest_admin/internal/metrics"
	"quest_admin/internal/model"
	"quest_admin/internal/repository"
	"quest_admin/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService struct {
	repo           ReviewRepository
	store          StoreAvailability
	feed           ActivityPublisher
	atomicApproval bool
	now            func() time.Time
}

type ReviewOption func(*ReviewService)

// WithAtomicApproval makes ApproveAndPropagate write the proof and the quest in
// one transaction instead of two independent statements.
func WithAtomicApproval(enabled bool) ReviewOption {
	return func(s *ReviewService) {
		s.atomicApproval = enabled
	}
}

func WithActivityFeed(feed ActivityPublisher) ReviewOption {
	return func(s *ReviewService) {
		s.feed = feed
	}
}

func WithClock(now func() time.Time) ReviewOption {
	return func(s *ReviewService) {
		s.now = now
	}
}

func NewReviewService(repo ReviewRepository, store StoreAvailability, opts ...ReviewOption) *ReviewService {
	s := &ReviewService{
		repo:  repo,
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Review moves a proof to approved or rejected and records who did it.
// Re-reviewing rewrites the status with a fresh timestamp.
func (s *ReviewService) Review(ctx context.Context, proofID uuid.UUID, status model.ProofStatus, reviewer string) (*model.QuestProof, error) {
	review, err := s.newReview(proofID, status, reviewer)
	if err != nil {
		return nil, err
	}

	proof, err := s.repo.UpdateProofReview(ctx, review)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProofNotFound
		}
		return nil, fmt.Errorf("failed to update quest proof status: %w", err)
	}

	metrics.ReviewTransitions.WithLabelValues(string(status)).Inc()
	s.publish(model.ReviewEvent{
		Type:    model.EventProofReviewed,
		ProofID: &proof.ID,
		QuestID: &proof.QuestID,
		Status:  proof.Status,
		Actor:   reviewer,
		At:      review.VerifiedAt,
	})

	return proof, nil
}

// ApproveAndPropagate approves the proof and then copies proofURL onto the
// proof's quest. The quest write is only attempted after the approval
// succeeded. Unless atomic approval is enabled the two writes are independent:
// a failed quest write is reported as ErrPropagationFailed and the proof stays
// approved.
func (s *ReviewService) ApproveAndPropagate(ctx context.Context, questID, proofID uuid.UUID, proofURL, reviewer string) (*model.QuestProof, error) {
	if proofURL == "" {
		return nil, ErrProofURLRequired
	}
	review, err := s.newReview(proofID, model.ProofStatusApproved, reviewer)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetQuestProof(ctx, proofID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProofNotFound
		}
		return nil, fmt.Errorf("failed to get quest proof: %w", err)
	}
	if current.QuestID != questID {
		return nil, ErrQuestMismatch
	}

	var proof *model.QuestProof
	if s.atomicApproval {
		proof, err = s.repo.ApproveProofAndSetQuestURL(ctx, review, current.QuestID, proofURL)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrProofNotFound):
				return nil, ErrProofNotFound
			case errors.Is(err, repository.ErrNotFound):
				return nil, ErrQuestNotFound
			}
			return nil, fmt.Errorf("failed to approve quest proof: %w", err)
		}
	} else {
		proof, err = s.repo.UpdateProofReview(ctx, review)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrProofNotFound
			}
			return nil, fmt.Errorf("failed to update quest proof: %w", err)
		}

		err = s.repo.SetQuestProofURL(ctx, current.QuestID, proofURL)
		if err != nil {
			metrics.PropagationFailures.Inc()
			logger.Logger().Error("proof approved but quest proof url not written",
				zap.String("proof_id", proofID.String()),
				zap.String("quest_id", current.QuestID.String()),
				zap.Error(err))
			return proof, fmt.Errorf("%w: %v", ErrPropagationFailed, err)
		}
	}

	metrics.ReviewTransitions.WithLabelValues(string(model.ProofStatusApproved)).Inc()
	s.publish(model.ReviewEvent{
		Type:     model.EventProofPublished,
		ProofID:  &proof.ID,
		QuestID:  &proof.QuestID,
		Status:   proof.Status,
		ProofURL: &proofURL,
		Actor:    reviewer,
		At:       review.VerifiedAt,
	})

	return proof, nil
}

func (s *ReviewService) SetQuestProofURL(ctx context.Context, questID uuid.UUID, proofURL, reviewer string) error {
	if !s.store.Configured() {
		return ErrStoreUnavailable
	}
	if proofURL == "" {
		return ErrProofURLRequired
	}

	err := s.repo.SetQuestProofURL(ctx, questID, proofURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestNotFound
		}
		return fmt.Errorf("failed to set quest proof url: %w", err)
	}

	s.publish(model.ReviewEvent{
		Type:     model.EventQuestProofSet,
		QuestID:  &questID,
		ProofURL: &proofURL,
		Actor:    reviewer,
		At:       s.now(),
	})

	return nil
}

// UpdatePayout edits payout fields independently of review state.
func (s *ReviewService) UpdatePayout(ctx context.Context, proofID uuid.UUID, payout model.PayoutUpdate, reviewer string) (*model.QuestProof, error) {
	if !s.store.Configured() {
		return nil, ErrStoreUnavailable
	}

	now := s.now()
	proof, err := s.repo.UpdateProofPayout(ctx, proofID, payout, now)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProofNotFound
		}
		return nil, fmt.Errorf("failed to update payout details: %w", err)
	}

	metrics.PayoutUpdates.Inc()
	s.publish(model.ReviewEvent{
		Type:    model.EventPayoutUpdated,
		ProofID: &proof.ID,
		QuestID: &proof.QuestID,
		Status:  proof.Status,
		Actor:   reviewer,
		At:      now,
	})

	return proof, nil
}

// UpdateProof applies an optional review together with a partial payout edit.
func (s *ReviewService) UpdateProof(ctx context.Context, proofID uuid.UUID, status *model.ProofStatus, payout model.PayoutUpdate, reviewer string) (*model.QuestProof, error) {
	if !s.store.Configured() {
		return nil, ErrStoreUnavailable
	}
	if status == nil && payout.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	now := s.now()
	var review *model.ProofReview
	if status != nil {
		r, err := s.newReview(proofID, *status, reviewer)
		if err != nil {
			return nil, err
		}
		review = &r
		now = r.VerifiedAt
	}

	proof, err := s.repo.UpdateProof(ctx, proofID, review, payout, now)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProofNotFound
		}
		return nil, fmt.Errorf("failed to update quest proof: %w", err)
	}

	eventType := model.EventPayoutUpdated
	if review != nil {
		eventType = model.EventProofReviewed
		metrics.ReviewTransitions.WithLabelValues(string(review.Status)).Inc()
	}
	if !payout.IsEmpty() {
		metrics.PayoutUpdates.Inc()
	}
	s.publish(model.ReviewEvent{
		Type:    eventType,
		ProofID: &proof.ID,
		QuestID: &proof.QuestID,
		Status:  proof.Status,
		Actor:   reviewer,
		At:      now,
	})

	return proof, nil
}

func (s *ReviewService) newReview(proofID uuid.UUID, status model.ProofStatus, reviewer string) (model.ProofReview, error) {
	if !s.store.Configured() {
		return model.ProofReview{}, ErrStoreUnavailable
	}
	if !status.IsReviewOutcome() {
		return model.ProofReview{}, ErrInvalidStatus
	}
	if reviewer == "" {
		return model.ProofReview{}, ErrReviewerRequired
	}

	return model.ProofReview{
		ProofID:    proofID,
		Status:     status,
		VerifiedAt: s.now(),
		VerifiedBy: reviewer,
	}, nil
}

func (s *ReviewService) publish(event model.ReviewEvent) {
	if s.feed == nil {
		return
	}
	s.feed.Publish(event)
}
