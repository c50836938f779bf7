package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quest_admin/internal/model"
	"quest_admin/internal/repository"
	"quest_admin/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestProofStatsOf(t *testing.T) {
	tests := []struct {
		name      string
		summaries []model.ProofSummary
		expected  model.ProofStats
	}{
		{
			name:     "No rows",
			expected: model.ProofStats{},
		},
		{
			name: "Mixed statuses",
			summaries: []model.ProofSummary{
				{Status: model.ProofStatusPending},
				{Status: model.ProofStatusApproved, PayoutAmount: ptr(50.0)},
				{Status: model.ProofStatusApproved, PayoutAmount: ptr(25.5)},
				{Status: model.ProofStatusApproved},
				{Status: model.ProofStatusRejected, PayoutAmount: ptr(100.0)},
				{Status: ""},
			},
			expected: model.ProofStats{Total: 6, Pending: 1, Approved: 3, Rejected: 1, TotalPayout: 75.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProofStatsOf(tt.summaries))
		})
	}
}

func TestSubmissionStatsOf(t *testing.T) {
	got := SubmissionStatsOf([]model.ProofStatus{
		model.ProofStatusPending, model.ProofStatusPending, model.ProofStatusApproved, "",
	})
	assert.Equal(t, model.SubmissionStats{Total: 4, Pending: 2, Approved: 1}, got)
}

func TestDashboardService_Stats_ZeroRows(t *testing.T) {
	mockRepo := &mocks.MockDashboardRepository{}
	mockRepo.On("ListProofSummaries", mock.Anything).Return([]model.ProofSummary{}, nil)
	mockRepo.On("ListChallengeSubmissionStatuses", mock.Anything).Return([]model.ProofStatus{}, nil)
	mockRepo.On("ListQuestProofs", mock.Anything, uint64(DefaultRecentLimit)).Return([]*model.QuestProof{}, nil)

	svc := NewDashboardService(mockRepo, online, 0)
	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.ProofStats{}, stats.QuestProofs)
	assert.Equal(t, model.SubmissionStats{}, stats.ChallengeSubmissions)
	assert.Empty(t, stats.RecentActivity)
	assert.False(t, stats.Demo)
	mockRepo.AssertExpectations(t)
}

func TestDashboardService_Stats_RecentActivity(t *testing.T) {
	mockRepo := &mocks.MockDashboardRepository{}
	wallet := "0xwallet"
	streamerID := uuid.New()

	withQuest := &model.QuestProof{
		ID: uuid.New(), QuestID: uuid.New(), SubmitterID: "did:privy:a", WalletAddress: &wallet,
		ProofURL: "https://clips.example/a", Status: model.ProofStatusApproved, CreatedAt: time.Now(),
	}
	orphan := &model.QuestProof{
		ID: uuid.New(), QuestID: uuid.New(), Status: model.ProofStatusPending, CreatedAt: time.Now(),
	}

	mockRepo.On("ListProofSummaries", mock.Anything).Return([]model.ProofSummary{
		{Status: model.ProofStatusApproved, PayoutAmount: ptr(10.0)},
		{Status: model.ProofStatusPending},
	}, nil)
	mockRepo.On("ListChallengeSubmissionStatuses", mock.Anything).Return([]model.ProofStatus{model.ProofStatusRejected}, nil)
	mockRepo.On("ListQuestProofs", mock.Anything, uint64(5)).Return([]*model.QuestProof{withQuest, orphan}, nil)
	mockRepo.On("GetQuest", mock.Anything, withQuest.QuestID).
		Return(&model.Quest{ID: withQuest.QuestID, StreamerID: streamerID, Title: "No-hit run"}, nil)
	mockRepo.On("GetStreamer", mock.Anything, streamerID).
		Return(&model.Streamer{ID: streamerID, TwitchUsername: "speedy"}, nil)
	mockRepo.On("GetQuest", mock.Anything, orphan.QuestID).Return(nil, repository.ErrNotFound)

	svc := NewDashboardService(mockRepo, online, 5)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.ProofStats{Total: 2, Pending: 1, Approved: 1, TotalPayout: 10}, stats.QuestProofs)
	assert.Equal(t, 1, stats.ChallengeSubmissions.Rejected)
	require.Len(t, stats.RecentActivity, 2)

	first := stats.RecentActivity[0]
	assert.Equal(t, "No-hit run", first.Title)
	assert.Equal(t, "0xwallet", first.Submitter)
	require.NotNil(t, first.StreamerName)
	assert.Equal(t, "speedy", *first.StreamerName)
	assert.Equal(t, model.ActivityQuestProof, first.Type)

	second := stats.RecentActivity[1]
	assert.Equal(t, "Quest Proof "+orphan.ID.String(), second.Title)
	assert.Equal(t, "Unknown User", second.Submitter)
	assert.Nil(t, second.StreamerName)
	assert.Nil(t, second.ProofURL)

	mockRepo.AssertExpectations(t)
}

func TestDashboardService_Stats_QueryFails(t *testing.T) {
	mockRepo := &mocks.MockDashboardRepository{}
	mockRepo.On("ListProofSummaries", mock.Anything).Return(nil, errors.New("relation does not exist"))
	mockRepo.On("ListChallengeSubmissionStatuses", mock.Anything).Return([]model.ProofStatus{}, nil).Maybe()
	mockRepo.On("ListQuestProofs", mock.Anything, mock.Anything).Return([]*model.QuestProof{}, nil).Maybe()

	svc := NewDashboardService(mockRepo, online, 10)
	stats, err := svc.Stats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestDashboardService_DemoMode(t *testing.T) {
	for _, store := range []mocks.StoreState{
		{},
		{IsConfigured: true, IsAvailable: false},
	} {
		mockRepo := &mocks.MockDashboardRepository{}
		svc := NewDashboardService(mockRepo, store, 10)

		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)
		assert.True(t, stats.Demo)
		assert.Equal(t, 25, stats.QuestProofs.Total)

		proofs, err := svc.ListProofs(context.Background())
		require.NoError(t, err)
		assert.Len(t, proofs, 2)

		mockRepo.AssertNotCalled(t, "ListProofSummaries", mock.Anything)
		mockRepo.AssertNotCalled(t, "ListQuestProofs", mock.Anything, mock.Anything)
	}
}

func TestDashboardService_ListProofs(t *testing.T) {
	streamerID := uuid.New()
	description := "Beat the game without taking damage"

	tests := []struct {
		name          string
		streamer      *model.Streamer
		streamerErr   error
		expectedQuest *model.QuestSummary
	}{
		{
			name:     "Quest with streamer",
			streamer: &model.Streamer{ID: streamerID, TwitchUsername: "speedy"},
			expectedQuest: &model.QuestSummary{
				Title:        "No-hit run",
				Description:  &description,
				StreamerName: ptr("speedy"),
			},
		},
		{
			name:          "Quest without streamer is omitted",
			streamerErr:   repository.ErrNotFound,
			expectedQuest: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockDashboardRepository{}
			proof := &model.QuestProof{ID: uuid.New(), QuestID: uuid.New(), SubmitterID: "did:privy:viewer"}
			mockRepo.On("ListQuestProofs", mock.Anything, uint64(0)).Return([]*model.QuestProof{proof}, nil)
			mockRepo.On("GetQuest", mock.Anything, proof.QuestID).
				Return(&model.Quest{Title: "No-hit run", Description: &description, StreamerID: streamerID}, nil)
			if tt.streamer != nil {
				mockRepo.On("GetStreamer", mock.Anything, streamerID).Return(tt.streamer, nil)
			} else {
				mockRepo.On("GetStreamer", mock.Anything, streamerID).Return(nil, tt.streamerErr)
			}
			mockRepo.On("GetProfileByUserID", mock.Anything, "did:privy:viewer").
				Return(&model.Profile{UserID: "did:privy:viewer", Username: ptr("viewer")}, nil)

			svc := NewDashboardService(mockRepo, online, 10)
			proofs, err := svc.ListProofs(context.Background())
			require.NoError(t, err)
			require.Len(t, proofs, 1)

			got := proofs[0]
			assert.Equal(t, proof.ID, got.ID)
			assert.Equal(t, tt.expectedQuest, got.Quest)
			require.NotNil(t, got.Submitter)
			assert.Equal(t, "viewer", *got.Submitter.Username)

			mockRepo.AssertExpectations(t)
		})
	}
}
