package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/regions"
	"github.com/jengzang/geopick-backend-go/internal/service"
	"github.com/jengzang/geopick-backend-go/pkg/response"
)

// RoundHandler handles HTTP requests for game rounds
type RoundHandler struct {
	service *service.RoundService
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(service *service.RoundService) *RoundHandler {
	return &RoundHandler{service: service}
}

// CreateSession handles POST /api/v1/sessions
func (h *RoundHandler) CreateSession(c *gin.Context) {
	var req struct {
		Mode models.Mode `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModeUrban
	}

	id, err := h.service.CreateSession(req.Mode)
	if err != nil {
		if errors.Is(err, service.ErrModeEmpty) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create session")
		return
	}

	response.Success(c, gin.H{"session_id": id, "mode": req.Mode})
}

// CloseSession handles DELETE /api/v1/sessions/:id
func (h *RoundHandler) CloseSession(c *gin.Context) {
	h.service.CloseSession(c.Param("id"))
	response.Success(c, nil)
}

// SelectStatic handles POST /api/v1/sessions/:id/round/static
func (h *RoundHandler) SelectStatic(c *gin.Context) {
	var req struct {
		PreferredProvince string `json:"preferred_province"`
	}
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	loc, err := h.service.SelectStatic(c.Param("id"), req.PreferredProvince)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if loc == nil {
		// Static pool exhausted; the client should fall back to a mint
		response.Success(c, gin.H{"location": nil, "exhausted": true})
		return
	}
	response.Success(c, gin.H{"location": loc})
}

// MintDynamic handles POST /api/v1/sessions/:id/round/dynamic
func (h *RoundHandler) MintDynamic(c *gin.Context) {
	var req struct {
		Province string `json:"province" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "province is required")
		return
	}

	result, err := h.service.MintDynamic(c.Request.Context(), c.Param("id"), req.Province)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, result)
}

// RecordDynamic handles POST /api/v1/sessions/:id/round/record
func (h *RoundHandler) RecordDynamic(c *gin.Context) {
	var rec models.LocationRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		response.BadRequest(c, "invalid location record")
		return
	}

	if err := h.service.RecordDynamicSelection(c.Param("id"), &rec); err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListProvinces handles GET /api/v1/provinces. The directory is static
// reference data, so no session is required.
func (h *RoundHandler) ListProvinces(c *gin.Context) {
	provinces := regions.All()
	response.Success(c, gin.H{"provinces": provinces, "count": len(provinces)})
}

// GetEnriched handles GET /api/v1/sessions/:id/enriched
func (h *RoundHandler) GetEnriched(c *gin.Context) {
	locs, err := h.service.EnrichedLocations(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, gin.H{"locations": locs, "count": len(locs)})
}

// GetEligibleProvinces handles GET /api/v1/sessions/:id/eligible-provinces
func (h *RoundHandler) GetEligibleProvinces(c *gin.Context) {
	provinces, err := h.service.EligibleProvinces(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, gin.H{"provinces": provinces, "count": len(provinces)})
}

// GetAntiRepeat handles GET /api/v1/sessions/:id/anti-repeat
func (h *RoundHandler) GetAntiRepeat(c *gin.Context) {
	state, err := h.service.AntiRepeatState(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, state)
}

// GetMintMetrics handles GET /api/v1/sessions/:id/mint-metrics
func (h *RoundHandler) GetMintMetrics(c *gin.Context) {
	metrics, err := h.service.MintMetrics(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"total_attempts":       metrics.TotalAttempts,
		"total_success":        metrics.TotalSuccess,
		"total_fail":           metrics.TotalFail,
		"total_resolver_calls": metrics.TotalResolverCalls,
		"avg_attempts":         metrics.AvgAttempts(),
		"rejections":           metrics.Rejections,
	})
}

// Simulate handles POST /api/v1/sessions/:id/simulate
func (h *RoundHandler) Simulate(c *gin.Context) {
	var req struct {
		Draws int `json:"draws" binding:"required,min=1,max=100000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "draws must be between 1 and 100000")
		return
	}

	report, err := h.service.Simulate(c.Param("id"), req.Draws)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	response.Success(c, report)
}

func (h *RoundHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, err.Error())
}
