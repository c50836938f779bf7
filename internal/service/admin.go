package service

import (
	"context"
	"errors"
	"fmt"

	"quest_admin/internal/metrics"
	"quest_admin/internal/model"
	"quest_admin/pkg/auth"
)

// AdminService resolves a credential through the identity verifier and checks
// the resulting subject against the allow-list. It fails closed.
type AdminService struct {
	verifier IdentityVerifier
	allow    model.AllowList
}

func NewAdminService(verifier IdentityVerifier, allow model.AllowList) *AdminService {
	return &AdminService{
		verifier: verifier,
		allow:    allow,
	}
}

func (s *AdminService) Authorize(ctx context.Context, token string) (*model.AdminDecision, error) {
	if token == "" {
		metrics.AdminChecks.WithLabelValues("missing").Inc()
		return nil, ErrMissingCredential
	}

	subject, err := s.verifier.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrUnavailable) {
			metrics.AdminChecks.WithLabelValues("unavailable").Inc()
			return nil, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
		}
		metrics.AdminChecks.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if subject == "" {
		metrics.AdminChecks.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidCredential
	}

	isAdmin := s.allow.Contains(subject)
	if isAdmin {
		metrics.AdminChecks.WithLabelValues("admin").Inc()
	} else {
		metrics.AdminChecks.WithLabelValues("denied").Inc()
	}

	return &model.AdminDecision{
		IsAdmin:   isAdmin,
		SubjectID: subject,
		Verified:  true,
	}, nil
}
