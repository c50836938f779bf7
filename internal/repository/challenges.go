package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quest_admin/internal/model"

	"github.com/Masterminds/squirrel"
)

func (r *Repository) ListChallengeSubmissionStatuses(ctx context.Context) ([]model.ProofStatus, error) {
	query, args, err := squirrel.
		Select("status").
		From("challenge_submissions").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []sql.NullString
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list challenge submissions: %w", err)
	}

	statuses := make([]model.ProofStatus, len(rows))
	for i, s := range rows {
		if s.Valid {
			statuses[i] = model.ProofStatus(s.String)
		}
	}

	return statuses, nil
}
