package model

import (
	"time"

	"github.com/google/uuid"
)

type ReviewEventType string

const (
	EventProofReviewed  ReviewEventType = "proof_reviewed"
	EventPayoutUpdated  ReviewEventType = "payout_updated"
	EventQuestProofSet  ReviewEventType = "quest_proof_set"
	EventProofPublished ReviewEventType = "proof_approved_and_published"
)

// ReviewEvent is broadcast to connected dashboards after a successful write.
type ReviewEvent struct {
	Type     ReviewEventType
	ProofID  *uuid.UUID
	QuestID  *uuid.UUID
	Status   ProofStatus
	ProofURL *string
	Actor    string
	At       time.Time
}
