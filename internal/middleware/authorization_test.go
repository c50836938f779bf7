package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quest_admin/internal/model"
	"quest_admin/internal/service"
	"quest_admin/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthorization_AdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		header       string
		target       string
		mockSetup    func(m *mocks.MockAdminService)
		expectedCode int
		expectedID   string
	}{
		{
			name:         "Missing credential",
			target:       "/protected",
			mockSetup:    func(m *mocks.MockAdminService) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid credential",
			header: "Bearer bad",
			target: "/protected",
			mockSetup: func(m *mocks.MockAdminService) {
				m.On("Authorize", mock.Anything, "bad").Return(nil, service.ErrInvalidCredential)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Verifier down fails closed",
			header: "Bearer any",
			target: "/protected",
			mockSetup: func(m *mocks.MockAdminService) {
				m.On("Authorize", mock.Anything, "any").
					Return(nil, fmt.Errorf("%w: timeout", service.ErrVerifierUnavailable))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Not on the allow-list",
			header: "Bearer viewer",
			target: "/protected",
			mockSetup: func(m *mocks.MockAdminService) {
				m.On("Authorize", mock.Anything, "viewer").
					Return(&model.AdminDecision{IsAdmin: false, SubjectID: "did:privy:viewer", Verified: true}, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Admin",
			header: "Bearer admin",
			target: "/protected",
			mockSetup: func(m *mocks.MockAdminService) {
				m.On("Authorize", mock.Anything, "admin").
					Return(&model.AdminDecision{IsAdmin: true, SubjectID: "did:privy:admin", Verified: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   "did:privy:admin",
		},
		{
			name:   "Admin via query token",
			target: "/protected?access_token=admin",
			mockSetup: func(m *mocks.MockAdminService) {
				m.On("Authorize", mock.Anything, "admin").
					Return(&model.AdminDecision{IsAdmin: true, SubjectID: "did:privy:admin", Verified: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   "did:privy:admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminService := &mocks.MockAdminService{}
			tt.mockSetup(adminService)

			router := gin.New()
			router.GET("/protected", NewAuthorization(adminService).AdminOnly(), func(c *gin.Context) {
				c.String(http.StatusOK, AdminID(c))
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedID != "" {
				assert.Equal(t, tt.expectedID, w.Body.String())
			}
			adminService.AssertExpectations(t)
		})
	}
}
