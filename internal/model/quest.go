package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestStatus string

const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusAvailable QuestStatus = "available"
	QuestStatusCompleted QuestStatus = "completed"
	QuestStatusCancelled QuestStatus = "cancelled"
)

type Quest struct {
	ID             uuid.UUID
	StreamerID     uuid.UUID
	CreatorID      string
	Title          string
	Description    *string
	Message        string
	ProofURL       *string
	RewardAmount   float64
	RewardCurrency *string
	Status         QuestStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Streamer struct {
	ID             uuid.UUID
	UserID         string
	TwitchUsername string
	TwitchAvatar   *string
	IsVerified     *bool
}

type Profile struct {
	ID            uuid.UUID
	UserID        string
	Username      *string
	DisplayName   *string
	AvatarURL     *string
	WalletAddress *string
}
