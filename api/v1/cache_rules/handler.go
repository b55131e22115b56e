package cache_rules

import (
	"errors"

	"cdn_manager/internal/httpx"
	"cdn_manager/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves cache rule endpoints
type Handler struct {
	store *store.Store
}

// NewHandler creates a handler instance
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// CreateRequest is the add-cache-rule request body. CacheHeaders defaults to
// true when omitted.
type CreateRequest struct {
	OriginID     int    `json:"origin_id" binding:"required"`
	PathPattern  string `json:"path_pattern" binding:"required"`
	TTL          int    `json:"ttl"`
	CacheHeaders *bool  `json:"cache_headers"`
	RuleType     string `json:"rule_type"`
}

// Create attaches a cache rule to an origin
// POST /api/v1/cache-rules/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing("invalid request"))
		return
	}

	cacheHeaders := true
	if req.CacheHeaders != nil {
		cacheHeaders = *req.CacheHeaders
	}

	rule, err := h.store.AddCacheRule(store.RuleParams{
		OriginID:     req.OriginID,
		PathPattern:  req.PathPattern,
		TTL:          req.TTL,
		CacheHeaders: cacheHeaders,
		RuleType:     req.RuleType,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOriginNotFound):
			httpx.FailErr(c, httpx.ErrNotFound("origin not found"))
		case errors.Is(err, store.ErrInvalidTTL):
			httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		default:
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to create cache rule", err))
		}
		return
	}

	httpx.OK(c, gin.H{"item": rule})
}
