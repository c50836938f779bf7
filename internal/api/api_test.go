package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"quest_admin/internal/middleware"
	"quest_admin/internal/model"
	"quest_admin/internal/service"
	"quest_admin/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

const (
	adminToken   = "admin-token"
	viewerToken  = "viewer-token"
	adminSubject = "did:privy:admin"
)

type testEnv struct {
	router    *gin.Engine
	review    *mocks.MockReviewService
	dashboard *mocks.MockDashboardService
	verifier  *mocks.MockIdentityVerifier
	feed      *service.ActivityFeed
}

// newTestEnv wires the routes the way main does, with the real admin service
// in front of a mocked identity verifier.
func newTestEnv(t *testing.T, protectReads bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		router:    gin.New(),
		review:    &mocks.MockReviewService{},
		dashboard: &mocks.MockDashboardService{},
		verifier:  &mocks.MockIdentityVerifier{},
		feed:      service.NewActivityFeed(4),
	}
	env.verifier.On("VerifyToken", mock.Anything, adminToken).Return(adminSubject, nil).Maybe()
	env.verifier.On("VerifyToken", mock.Anything, viewerToken).Return("did:privy:viewer", nil).Maybe()

	adminService := service.NewAdminService(env.verifier, model.NewAllowList(adminSubject))
	authz := middleware.NewAuthorization(adminService)

	a := env.router.Group("/api")
	NewAuthRoutes(a, adminService)
	admin := a.Group("/admin")
	NewQuestProofRoutes(admin, env.review, env.dashboard, authz, protectReads)
	NewStatsRoutes(admin, env.dashboard, authz, protectReads)
	NewActivityRoutes(admin, env.feed, authz)

	return env
}

func (e *testEnv) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
