package model

import (
	"time"

	"github.com/google/uuid"
)

type ProofStatus string

const (
	ProofStatusPending  ProofStatus = "pending"
	ProofStatusApproved ProofStatus = "approved"
	ProofStatusRejected ProofStatus = "rejected"
)

// IsReviewOutcome reports whether s is a status a review may move a proof into.
// Nothing moves a proof back to pending.
func (s ProofStatus) IsReviewOutcome() bool {
	return s == ProofStatusApproved || s == ProofStatusRejected
}

type QuestProof struct {
	ID             uuid.UUID
	QuestID        uuid.UUID
	SubmitterID    string
	WalletAddress  *string
	ProofURL       string
	Notes          *string
	Status         ProofStatus
	PayoutAmount   *float64
	PayoutCurrency *string
	PayoutTxHash   *string
	VerifiedAt     *time.Time
	VerifiedBy     *string
	Upvotes        *int
	Downvotes      *int
	VoteScore      *int
	SubmittedAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProofReview is the bookkeeping written by an approve or reject.
type ProofReview struct {
	ProofID    uuid.UUID
	Status     ProofStatus
	VerifiedAt time.Time
	VerifiedBy string
}

// PayoutUpdate carries a partial payout edit. Fields that are not Set are left
// untouched in the store; a Set field with a nil Value clears the column.
type PayoutUpdate struct {
	Amount   Optional[float64]
	Currency Optional[string]
	TxHash   Optional[string]
}

func (p PayoutUpdate) IsEmpty() bool {
	return !p.Amount.Set && !p.Currency.Set && !p.TxHash.Set
}

// ProofSummary is the slice of a proof the dashboard aggregates over.
type ProofSummary struct {
	Status         ProofStatus
	PayoutAmount   *float64
	PayoutCurrency *string
}
