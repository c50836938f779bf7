package model

import (
	"time"

	"github.com/google/uuid"
)

type ProofStats struct {
	Total       int
	Pending     int
	Approved    int
	Rejected    int
	TotalPayout float64
}

type SubmissionStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

type ActivityType string

const (
	ActivityQuestProof          ActivityType = "quest_proof"
	ActivityChallengeSubmission ActivityType = "challenge_submission"
)

type ActivityItem struct {
	ID             string
	QuestID        *uuid.UUID
	Type           ActivityType
	Title          string
	Submitter      string
	Status         ProofStatus
	SubmittedAt    time.Time
	StreamerName   *string
	ProofURL       *string
	PayoutAmount   *float64
	PayoutCurrency *string
	PayoutTxHash   *string
}

type DashboardStats struct {
	QuestProofs          ProofStats
	ChallengeSubmissions SubmissionStats
	RecentActivity       []ActivityItem
	Demo                 bool
}

type QuestSummary struct {
	Title        string
	Description  *string
	StreamerName *string
}

// EnrichedProof is a proof joined with whatever related rows could be found.
type EnrichedProof struct {
	QuestProof
	Quest     *QuestSummary
	Submitter *Profile
}
