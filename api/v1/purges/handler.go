package purges

import (
	"errors"

	"cdn_manager/internal/httpx"
	"cdn_manager/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves purge endpoints
type Handler struct {
	store *store.Store
}

// NewHandler creates a handler instance
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// CreateRequest is the queue-purge request body
type CreateRequest struct {
	OriginID    int    `json:"origin_id" binding:"required"`
	PurgeType   string `json:"purge_type"`
	Target      string `json:"target"`
	TriggeredBy string `json:"triggered_by"`
}

// Create queues a purge event for an origin and stamps its last_purge time
// POST /api/v1/purges/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing("invalid request"))
		return
	}

	triggeredBy := req.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = "api"
	}

	event, err := h.store.PurgeCache(store.PurgeParams{
		OriginID:    req.OriginID,
		PurgeType:   req.PurgeType,
		Target:      req.Target,
		TriggeredBy: triggeredBy,
	})
	if err != nil {
		if errors.Is(err, store.ErrOriginNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("origin not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to queue purge", err))
		}
		return
	}

	httpx.OK(c, gin.H{"item": event})
}
