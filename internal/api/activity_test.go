package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quest_admin/internal/model"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRoutes_StreamsReviewEvents(t *testing.T) {
	env := newTestEnv(t, false)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/admin/activity/ws?access_token=" + adminToken
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return env.feed.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	proofID := uuid.New()
	env.feed.Publish(model.ReviewEvent{
		Type:    model.EventProofReviewed,
		ProofID: &proofID,
		Status:  model.ProofStatusApproved,
		Actor:   adminSubject,
		At:      time.Now().UTC(),
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "proof_reviewed", msg.Type)
	require.NotNil(t, msg.Payload)
	require.NotNil(t, msg.Payload.ProofID)
	assert.Equal(t, proofID.String(), *msg.Payload.ProofID)
	assert.Equal(t, "approved", msg.Payload.Status)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return env.feed.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestActivityRoutes_RejectsNonAdmins(t *testing.T) {
	env := newTestEnv(t, false)
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/admin/activity/ws"

	_, resp, err := websocket.DefaultDialer.Dial(base, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(base+"?access_token="+viewerToken, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
