package mocks

import (
	"context"
	"time"

	"quest_admin/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetQuestProof(ctx context.Context, proofID uuid.UUID) (*model.QuestProof, error) {
	args := m.Called(ctx, proofID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewRepository) UpdateProofReview(ctx context.Context, review model.ProofReview) (*model.QuestProof, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewRepository) UpdateProofPayout(ctx context.Context, proofID uuid.UUID, payout model.PayoutUpdate, now time.Time) (*model.QuestProof, error) {
	args := m.Called(ctx, proofID, payout, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewRepository) UpdateProof(ctx context.Context, proofID uuid.UUID, review *model.ProofReview, payout model.PayoutUpdate, now time.Time) (*model.QuestProof, error) {
	args := m.Called(ctx, proofID, review, payout, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewRepository) SetQuestProofURL(ctx context.Context, questID uuid.UUID, proofURL string) error {
	args := m.Called(ctx, questID, proofURL)
	return args.Error(0)
}

func (m *MockReviewRepository) ApproveProofAndSetQuestURL(ctx context.Context, review model.ProofReview, questID uuid.UUID, proofURL string) (*model.QuestProof, error) {
	args := m.Called(ctx, review, questID, proofURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) ListQuestProofs(ctx context.Context, limit uint64) ([]*model.QuestProof, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QuestProof), args.Error(1)
}

func (m *MockDashboardRepository) ListProofSummaries(ctx context.Context) ([]model.ProofSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProofSummary), args.Error(1)
}

func (m *MockDashboardRepository) ListChallengeSubmissionStatuses(ctx context.Context) ([]model.ProofStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProofStatus), args.Error(1)
}

func (m *MockDashboardRepository) GetQuest(ctx context.Context, questID uuid.UUID) (*model.Quest, error) {
	args := m.Called(ctx, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quest), args.Error(1)
}

func (m *MockDashboardRepository) GetStreamer(ctx context.Context, streamerID uuid.UUID) (*model.Streamer, error) {
	args := m.Called(ctx, streamerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Streamer), args.Error(1)
}

func (m *MockDashboardRepository) GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
