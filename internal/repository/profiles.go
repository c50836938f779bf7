package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quest_admin/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type profile struct {
	ID            uuid.UUID `db:"id"`
	UserID        string    `db:"user_id"`
	Username      *string   `db:"username"`
	DisplayName   *string   `db:"display_name"`
	AvatarURL     *string   `db:"avatar_url"`
	WalletAddress *string   `db:"wallet_address"`
}

func (r *Repository) GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "username", "display_name", "avatar_url", "wallet_address").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var p profile
	err = r.db.GetContext(ctx, &p, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &model.Profile{
		ID:            p.ID,
		UserID:        p.UserID,
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		AvatarURL:     p.AvatarURL,
		WalletAddress: p.WalletAddress,
	}, nil
}
