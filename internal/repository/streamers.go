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

type streamer struct {
	ID             uuid.UUID `db:"id"`
	UserID         string    `db:"user_id"`
	TwitchUsername string    `db:"twitch_username"`
	TwitchAvatar   *string   `db:"twitch_avatar"`
	IsVerified     *bool     `db:"is_verified"`
}

func (r *Repository) GetStreamer(ctx context.Context, streamerID uuid.UUID) (*model.Streamer, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "twitch_username", "twitch_avatar", "is_verified").
		From("streamers").
		Where(squirrel.Eq{"id": streamerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var s streamer
	err = r.db.GetContext(ctx, &s, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get streamer: %w", err)
	}

	return &model.Streamer{
		ID:             s.ID,
		UserID:         s.UserID,
		TwitchUsername: s.TwitchUsername,
		TwitchAvatar:   s.TwitchAvatar,
		IsVerified:     s.IsVerified,
	}, nil
}
