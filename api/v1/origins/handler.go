package origins

import (
	"errors"

	"cdn_manager/internal/httpx"
	"cdn_manager/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves origin endpoints
type Handler struct {
	store *store.Store
}

// NewHandler creates a handler instance
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// CreateRequest is the register-origin request body
type CreateRequest struct {
	Name      string `json:"name" binding:"required"`
	OriginURL string `json:"origin_url" binding:"required"`
	CDNURL    string `json:"cdn_url" binding:"required"`
	Provider  string `json:"provider"`
	CacheTTL  int    `json:"cache_ttl"`
	Notes     string `json:"notes"`
}

// Create registers a new CDN origin
// POST /api/v1/origins/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamMissing("invalid request"))
		return
	}

	origin, err := h.store.AddOrigin(store.OriginParams{
		Name:      req.Name,
		OriginURL: req.OriginURL,
		CDNURL:    req.CDNURL,
		Provider:  req.Provider,
		CacheTTL:  req.CacheTTL,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateName):
			httpx.FailErr(c, httpx.ErrAlreadyExists("origin name already exists"))
		case errors.Is(err, store.ErrEmptyName), errors.Is(err, store.ErrInvalidTTL):
			httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		default:
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to create origin", err))
		}
		return
	}

	httpx.OK(c, gin.H{"item": origin})
}

// List returns all origins, optionally filtered by provider
// GET /api/v1/origins?provider=fastly
func (h *Handler) List(c *gin.Context) {
	origins, err := h.store.ListOrigins(c.Query("provider"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list origins", err))
		return
	}

	httpx.OK(c, gin.H{"items": origins, "total": len(origins)})
}
