package service

import (
	"context"
	"errors"
	"time"

	"quest_admin/internal/model"

	"github.com/google/uuid"
)

var (
	ErrStoreUnavailable    = errors.New("record store unavailable")
	ErrProofNotFound       = errors.New("quest proof not found")
	ErrQuestNotFound       = errors.New("quest not found")
	ErrQuestMismatch       = errors.New("proof does not belong to quest")
	ErrInvalidStatus       = errors.New("status must be approved or rejected")
	ErrReviewerRequired    = errors.New("reviewer identity is required")
	ErrEmptyUpdate         = errors.New("nothing to update")
	ErrProofURLRequired    = errors.New("proof url is required")
	ErrPropagationFailed   = errors.New("proof approved but quest proof url was not updated")
	ErrMissingCredential   = errors.New("access token is required")
	ErrInvalidCredential   = errors.New("invalid access token")
	ErrVerifierUnavailable = errors.New("identity verifier unavailable")
)

// StoreAvailability tells services whether a record store is configured and
// whether it answered its last health check.
type StoreAvailability interface {
	Configured() bool
	Available() bool
}

type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type ActivityPublisher interface {
	Publish(event model.ReviewEvent)
}

type AdminServiceI interface {
	Authorize(ctx context.Context, token string) (*model.AdminDecision, error)
}

type ReviewServiceI interface {
	Review(ctx context.Context, proofID uuid.UUID, status model.ProofStatus, reviewer string) (*model.QuestProof, error)
	ApproveAndPropagate(ctx context.Context, questID, proofID uuid.UUID, proofURL, reviewer string) (*model.QuestProof, error)
	SetQuestProofURL(ctx context.Context, questID uuid.UUID, proofURL, reviewer string) error
	UpdatePayout(ctx context.Context, proofID uuid.UUID, payout model.PayoutUpdate, reviewer string) (*model.QuestProof, error)
	UpdateProof(ctx context.Context, proofID uuid.UUID, status *model.ProofStatus, payout model.PayoutUpdate, reviewer string) (*model.QuestProof, error)
}

type DashboardServiceI interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
	ListProofs(ctx context.Context) ([]*model.EnrichedProof, error)
}

type ReviewRepository interface {
	GetQuestProof(ctx context.Context, proofID uuid.UUID) (*model.QuestProof, error)
	UpdateProofReview(ctx context.Context, review model.ProofReview) (*model.QuestProof, error)
	UpdateProofPayout(ctx context.Context, proofID uuid.UUID, payout model.PayoutUpdate, now time.Time) (*model.QuestProof, error)
	UpdateProof(ctx context.Context, proofID uuid.UUID, review *model.ProofReview, payout model.PayoutUpdate, now time.Time) (*model.QuestProof, error)
	SetQuestProofURL(ctx context.Context, questID uuid.UUID, proofURL string) error
	ApproveProofAndSetQuestURL(ctx context.Context, review model.ProofReview, questID uuid.UUID, proofURL string) (*model.QuestProof, error)
}

type DashboardRepository interface {
	ListQuestProofs(ctx context.Context, limit uint64) ([]*model.QuestProof, error)
	ListProofSummaries(ctx context.Context) ([]model.ProofSummary, error)
	ListChallengeSubmissionStatuses(ctx context.Context) ([]model.ProofStatus, error)
	GetQuest(ctx context.Context, questID uuid.UUID) (*model.Quest, error)
	GetStreamer(ctx context.Context, streamerID uuid.UUID) (*model.Streamer, error)
	GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error)
}
