package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quest_admin/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type quest struct {
	ID             uuid.UUID `db:"id"`
	StreamerID     uuid.UUID `db:"streamer_id"`
	CreatorID      string    `db:"creator_id"`
	Title          string    `db:"title"`
	Description    *string   `db:"description"`
	Message        string    `db:"message"`
	ProofURL       *string   `db:"proof_url"`
	RewardAmount   float64   `db:"reward_amount"`
	RewardCurrency *string   `db:"reward_currency"`
	Status         *string   `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *Repository) GetQuest(ctx context.Context, questID uuid.UUID) (*model.Quest, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"streamer_id",
			"creator_id",
			"title",
			"description",
			"message",
			"proof_url",
			"reward_amount",
			"reward_currency",
			"status",
			"created_at",
			"updated_at",
		).
		From("quests").
		Where(squirrel.Eq{"id": questID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var q quest
	err = r.db.GetContext(ctx, &q, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}

	var status model.QuestStatus
	if q.Status != nil {
		status = model.QuestStatus(*q.Status)
	}

	return &model.Quest{
		ID:             q.ID,
		StreamerID:     q.StreamerID,
		CreatorID:      q.CreatorID,
		Title:          q.Title,
		Description:    q.Description,
		Message:        q.Message,
		ProofURL:       q.ProofURL,
		RewardAmount:   q.RewardAmount,
		RewardCurrency: q.RewardCurrency,
		Status:         status,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}, nil
}

func (r *Repository) SetQuestProofURL(ctx context.Context, questID uuid.UUID, proofURL string) error {
	return setQuestProofURL(ctx, r.db, questID, proofURL)
}

// ApproveProofAndSetQuestURL runs the review and the quest write in a single
// transaction, so a failed quest write leaves the proof untouched.
func (r *Repository) ApproveProofAndSetQuestURL(ctx context.Context, review model.ProofReview, questID uuid.UUID, proofURL string) (*model.QuestProof, error) {
	var proof *model.QuestProof
	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		var err error
		proof, err = updateProofReview(ctx, tx, review)
		if err != nil {
			return err
		}

		return setQuestProofURL(ctx, tx, questID, proofURL)
	})
	if err != nil {
		return nil, err
	}

	return proof, nil
}

func setQuestProofURL(ctx context.Context, ext sqlx.ExecerContext, questID uuid.UUID, proofURL string) error {
	query, args, err := squirrel.
		Update("quests").
		Set("proof_url", proofURL).
		Where(squirrel.Eq{"id": questID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update quest proof url: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrQuestNotFound
	}

	return nil
}
