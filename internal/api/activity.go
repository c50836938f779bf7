package api

import (
	"net/http"
	"time"

	"quest_admin/internal/middleware"
	"quest_admin/internal/model"
	"quest_admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ActivitySubscriber interface {
	Subscribe() (<-chan model.ReviewEvent, func())
}

type activityRoutes struct {
	feed ActivitySubscriber
}

func NewActivityRoutes(handler *gin.RouterGroup, feed ActivitySubscriber, authz *middleware.Authorization) {
	r := &activityRoutes{feed: feed}
	h := handler.Group("/activity")
	h.Use(authz.AdminOnly())
	{
		h.GET("/ws", r.handleWebSocket)
	}
}

type Message struct {
	Type    string        `json:"type"`
	Payload *eventPayload `json:"payload,omitempty"`
}

type eventPayload struct {
	ProofID  *string   `json:"proof_id,omitempty"`
	QuestID  *string   `json:"quest_id,omitempty"`
	Status   string    `json:"status,omitempty"`
	ProofURL *string   `json:"proof_url,omitempty"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}

func newMessage(e model.ReviewEvent) Message {
	p := &eventPayload{
		Status:   string(e.Status),
		ProofURL: e.ProofURL,
		Actor:    e.Actor,
		At:       e.At,
	}
	if e.ProofID != nil {
		id := e.ProofID.String()
		p.ProofID = &id
	}
	if e.QuestID != nil {
		id := e.QuestID.String()
		p.QuestID = &id
	}
	return Message{Type: string(e.Type), Payload: p}
}

func (r *activityRoutes) handleWebSocket(c *gin.Context) {
	log := logger.Logger()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	events, unsubscribe := r.feed.Subscribe()
	log.Info("activity feed subscriber connected", zap.String("admin_id", middleware.AdminID(c)))

	go r.readLoop(conn, unsubscribe)
	go r.writeLoop(conn, events)
}

// readLoop discards client frames and ends the subscription once the peer
// goes away.
func (r *activityRoutes) readLoop(conn *websocket.Conn, unsubscribe func()) {
	defer unsubscribe()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Logger().Info("activity feed closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}

func (r *activityRoutes) writeLoop(conn *websocket.Conn, events <-chan model.ReviewEvent) {
	log := logger.Logger()
	defer conn.Close()

	for event := range events {
		data, err := json.Marshal(newMessage(event))
		if err != nil {
			log.Error("failed to marshal review event", zap.Error(err))
			continue
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Info("failed to write review event", zap.Error(err))
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}
