package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"quest_admin/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var proofColumns = []string{
	"id",
	"quest_id",
	"submitter_id",
	"wallet_address",
	"proof_url",
	"notes",
	"status",
	"payout_amount",
	"payout_currency",
	"payout_tx_hash",
	"verified_at",
	"verified_by",
	"upvotes",
	"downvotes",
	"vote_score",
	"submitted_at",
	"created_at",
	"updated_at",
}

type questProof struct {
	ID             uuid.UUID  `db:"id"`
	QuestID        uuid.UUID  `db:"quest_id"`
	SubmitterID    string     `db:"submitter_id"`
	WalletAddress  *string    `db:"wallet_address"`
	ProofURL       string     `db:"proof_url"`
	Notes          *string    `db:"notes"`
	Status         *string    `db:"status"`
	PayoutAmount   *float64   `db:"payout_amount"`
	PayoutCurrency *string    `db:"payout_currency"`
	PayoutTxHash   *string    `db:"payout_tx_hash"`
	VerifiedAt     *time.Time `db:"verified_at"`
	VerifiedBy     *string    `db:"verified_by"`
	Upvotes        *int       `db:"upvotes"`
	Downvotes      *int       `db:"downvotes"`
	VoteScore      *int       `db:"vote_score"`
	SubmittedAt    time.Time  `db:"submitted_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (p *questProof) toModel() *model.QuestProof {
	var status model.ProofStatus
	if p.Status != nil {
		status = model.ProofStatus(*p.Status)
	}

	return &model.QuestProof{
		ID:             p.ID,
		QuestID:        p.QuestID,
		SubmitterID:    p.SubmitterID,
		WalletAddress:  p.WalletAddress,
		ProofURL:       p.ProofURL,
		Notes:          p.Notes,
		Status:         status,
		PayoutAmount:   p.PayoutAmount,
		PayoutCurrency: p.PayoutCurrency,
		PayoutTxHash:   p.PayoutTxHash,
		VerifiedAt:     p.VerifiedAt,
		VerifiedBy:     p.VerifiedBy,
		Upvotes:        p.Upvotes,
		Downvotes:      p.Downvotes,
		VoteScore:      p.VoteScore,
		SubmittedAt:    p.SubmittedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type proofSummary struct {
	Status         *string  `db:"status"`
	PayoutAmount   *float64 `db:"payout_amount"`
	PayoutCurrency *string  `db:"payout_currency"`
}

func (r *Repository) GetQuestProof(ctx context.Context, proofID uuid.UUID) (*model.QuestProof, error) {
	query, args, err := squirrel.
		Select(proofColumns...).
		From("quest_proofs").
		Where(squirrel.Eq{"id": proofID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var proof questProof
	err = r.db.GetContext(ctx, &proof, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quest proof: %w", err)
	}

	return proof.toModel(), nil
}

// ListQuestProofs returns proofs newest first. A limit of zero means no limit.
func (r *Repository) ListQuestProofs(ctx context.Context, limit uint64) ([]*model.QuestProof, error) {
	builder := squirrel.
		Select(proofColumns...).
		From("quest_proofs").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var dbProofs []*questProof
	err = r.db.SelectContext(ctx, &dbProofs, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*model.QuestProof{}, nil
		}
		return nil, fmt.Errorf("failed to list quest proofs: %w", err)
	}

	proofs := make([]*model.QuestProof, len(dbProofs))
	for i, p := range dbProofs {
		proofs[i] = p.toModel()
	}

	return proofs, nil
}

func (r *Repository) ListProofSummaries(ctx context.Context) ([]model.ProofSummary, error) {
	query, args, err := squirrel.
		Select("status", "payout_amount", "payout_currency").
		From("quest_proofs").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []proofSummary
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list proof summaries: %w", err)
	}

	summaries := make([]model.ProofSummary, len(rows))
	for i, row := range rows {
		var status model.ProofStatus
		if row.Status != nil {
			status = model.ProofStatus(*row.Status)
		}
		summaries[i] = model.ProofSummary{
			Status:         status,
			PayoutAmount:   row.PayoutAmount,
			PayoutCurrency: row.PayoutCurrency,
		}
	}

	return summaries, nil
}

func (r *Repository) UpdateProofReview(ctx context.Context, review model.ProofReview) (*model.QuestProof, error) {
	return updateProofReview(ctx, r.db, review)
}

// UpdateProof applies an optional review and a partial payout edit in one
// statement. At least one of them must carry a change.
func (r *Repository) UpdateProof(ctx context.Context, proofID uuid.UUID, review *model.ProofReview, payout model.PayoutUpdate, now time.Time) (*model.QuestProof, error) {
	set := payoutSetMap(payout)
	if review != nil {
		for k, v := range reviewSetMap(*review) {
			set[k] = v
		}
	}
	set["updated_at"] = now

	return updateProof(ctx, r.db, proofID, set)
}

func (r *Repository) UpdateProofPayout(ctx context.Context, proofID uuid.UUID, payout model.PayoutUpdate, now time.Time) (*model.QuestProof, error) {
	set := payoutSetMap(payout)
	set["updated_at"] = now

	return updateProof(ctx, r.db, proofID, set)
}

func reviewSetMap(review model.ProofReview) map[string]interface{} {
	return map[string]interface{}{
		"status":      string(review.Status),
		"verified_at": review.VerifiedAt,
		"verified_by": review.VerifiedBy,
	}
}

func payoutSetMap(payout model.PayoutUpdate) map[string]interface{} {
	set := make(map[string]interface{})
	if payout.Amount.Set {
		set["payout_amount"] = payout.Amount.Value
	}
	if payout.Currency.Set {
		set["payout_currency"] = payout.Currency.Value
	}
	if payout.TxHash.Set {
		set["payout_tx_hash"] = payout.TxHash.Value
	}
	return set
}

func updateProofReview(ctx context.Context, ext sqlx.ExtContext, review model.ProofReview) (*model.QuestProof, error) {
	set := reviewSetMap(review)
	set["updated_at"] = review.VerifiedAt

	return updateProof(ctx, ext, review.ProofID, set)
}

func updateProof(ctx context.Context, ext sqlx.ExtContext, proofID uuid.UUID, set map[string]interface{}) (*model.QuestProof, error) {
	query, args, err := squirrel.
		Update("quest_proofs").
		SetMap(set).
		Where(squirrel.Eq{"id": proofID}).
		Suffix("RETURNING " + strings.Join(proofColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	var proof questProof
	err = sqlx.GetContext(ctx, ext, &proof, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProofNotFound
		}
		return nil, fmt.Errorf("failed to update quest proof: %w", err)
	}

	return proof.toModel(), nil
}
