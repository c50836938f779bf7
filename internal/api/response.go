package api

import (
	"time"

	"quest_admin/internal/model"
)

type proofResponse struct {
	ID             string     `json:"id"`
	QuestID        string     `json:"quest_id"`
	SubmitterID    string     `json:"submitter_id"`
	WalletAddress  *string    `json:"wallet_address"`
	ProofURL       string     `json:"proof_url"`
	Notes          *string    `json:"notes"`
	Status         *string    `json:"status"`
	PayoutAmount   *float64   `json:"payout_amount"`
	PayoutCurrency *string    `json:"payout_currency"`
	PayoutTxHash   *string    `json:"payout_tx_hash"`
	VerifiedAt     *time.Time `json:"verified_at"`
	VerifiedBy     *string    `json:"verified_by"`
	Upvotes        *int       `json:"upvotes"`
	Downvotes      *int       `json:"downvotes"`
	VoteScore      *int       `json:"vote_score"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type streamerRef struct {
	TwitchUsername string `json:"twitch_username"`
}

type questSummaryResponse struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Streamers   *streamerRef `json:"streamers"`
}

type profileResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Username      *string `json:"username"`
	DisplayName   *string `json:"display_name"`
	AvatarURL     *string `json:"avatar_url"`
	WalletAddress *string `json:"wallet_address"`
}

type enrichedProofResponse struct {
	proofResponse
	Quest     *questSummaryResponse `json:"quest"`
	Submitter *profileResponse      `json:"submitter"`
}

func newProofResponse(p *model.QuestProof) proofResponse {
	var status *string
	if p.Status != "" {
		s := string(p.Status)
		status = &s
	}

	return proofResponse{
		ID:             p.ID.String(),
		QuestID:        p.QuestID.String(),
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

func newEnrichedProofResponse(p *model.EnrichedProof) enrichedProofResponse {
	out := enrichedProofResponse{proofResponse: newProofResponse(&p.QuestProof)}

	if p.Quest != nil {
		out.Quest = &questSummaryResponse{
			Title:       p.Quest.Title,
			Description: p.Quest.Description,
		}
		if p.Quest.StreamerName != nil {
			out.Quest.Streamers = &streamerRef{TwitchUsername: *p.Quest.StreamerName}
		}
	}

	if p.Submitter != nil {
		out.Submitter = &profileResponse{
			ID:            p.Submitter.ID.String(),
			UserID:        p.Submitter.UserID,
			Username:      p.Submitter.Username,
			DisplayName:   p.Submitter.DisplayName,
			AvatarURL:     p.Submitter.AvatarURL,
			WalletAddress: p.Submitter.WalletAddress,
		}
	}

	return out
}
