package mocks

import (
	"context"

	"quest_admin/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Authorize(ctx context.Context, token string) (*model.AdminDecision, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminDecision), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Review(ctx context.Context, proofID uuid.UUID, status model.ProofStatus, reviewer string) (*model.QuestProof, error) {
	args := m.Called(ctx, proofID, status, reviewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewService) ApproveAndPropagate(ctx context.Context, questID, proofID uuid.UUID, proofURL, reviewer string) (*model.QuestProof, error) {
	args := m.Called(ctx, questID, proofID, proofURL, reviewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewService) SetQuestProofURL(ctx context.Context, questID uuid.UUID, proofURL, reviewer string) error {
	args := m.Called(ctx, questID, proofURL, reviewer)
	return args.Error(0)
}

func (m *MockReviewService) UpdatePayout(ctx context.Context, proofID uuid.UUID, payout model.PayoutUpdate, reviewer string) (*model.QuestProof, error) {
	args := m.Called(ctx, proofID, payout, reviewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

func (m *MockReviewService) UpdateProof(ctx context.Context, proofID uuid.UUID, status *model.ProofStatus, payout model.PayoutUpdate, reviewer string) (*model.QuestProof, error) {
	args := m.Called(ctx, proofID, status, payout, reviewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestProof), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) ListProofs(ctx context.Context) ([]*model.EnrichedProof, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EnrichedProof), args.Error(1)
}

// StoreState is a fixed StoreAvailability for tests.
type StoreState struct {
	IsConfigured bool
	IsAvailable  bool
}

func (s StoreState) Configured() bool { return s.IsConfigured }

func (s StoreState) Available() bool { return s.IsAvailable }
