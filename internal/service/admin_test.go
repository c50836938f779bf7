package service

import (
	"context"
	"errors"
	"testing"

	"quest_admin/internal/model"
	"quest_admin/internal/service/mocks"
	"quest_admin/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Authorize(t *testing.T) {
	allow := model.NewAllowList("did:privy:admin")

	tests := []struct {
		name          string
		token         string
		mockSetup     func(v *mocks.MockIdentityVerifier)
		expected      *model.AdminDecision
		expectedError error
	}{
		{
			name:          "Missing credential skips the verifier",
			token:         "",
			mockSetup:     func(v *mocks.MockIdentityVerifier) {},
			expectedError: ErrMissingCredential,
		},
		{
			name:  "Allow-listed subject",
			token: "good",
			mockSetup: func(v *mocks.MockIdentityVerifier) {
				v.On("VerifyToken", mock.Anything, "good").Return("did:privy:admin", nil)
			},
			expected: &model.AdminDecision{IsAdmin: true, SubjectID: "did:privy:admin", Verified: true},
		},
		{
			name:  "Valid credential outside the allow-list",
			token: "valid",
			mockSetup: func(v *mocks.MockIdentityVerifier) {
				v.On("VerifyToken", mock.Anything, "valid").Return("did:privy:viewer", nil)
			},
			expected: &model.AdminDecision{IsAdmin: false, SubjectID: "did:privy:viewer", Verified: true},
		},
		{
			name:  "Rejected credential",
			token: "bad",
			mockSetup: func(v *mocks.MockIdentityVerifier) {
				v.On("VerifyToken", mock.Anything, "bad").Return("", auth.ErrInvalidToken)
			},
			expectedError: ErrInvalidCredential,
		},
		{
			name:  "Verifier unreachable",
			token: "any",
			mockSetup: func(v *mocks.MockIdentityVerifier) {
				v.On("VerifyToken", mock.Anything, "any").
					Return("", errors.Join(auth.ErrUnavailable, errors.New("connection refused")))
			},
			expectedError: ErrVerifierUnavailable,
		},
		{
			name:  "Verifier returns no subject",
			token: "anon",
			mockSetup: func(v *mocks.MockIdentityVerifier) {
				v.On("VerifyToken", mock.Anything, "anon").Return("", nil)
			},
			expectedError: ErrInvalidCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mocks.MockIdentityVerifier{}
			tt.mockSetup(verifier)
			svc := NewAdminService(verifier, allow)

			decision, err := svc.Authorize(context.Background(), tt.token)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, decision)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, decision)
			}
			verifier.AssertExpectations(t)
			if tt.token == "" {
				verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
			}
		})
	}
}
