package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StoreState interface {
	State() string
}

type healthRoutes struct {
	store StoreState
}

func NewHealthRoutes(handler gin.IRouter, store StoreState) {
	r := &healthRoutes{store: store}
	handler.GET("/healthz", r.Health)
}

func (r *healthRoutes) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": r.store.State()})
}
