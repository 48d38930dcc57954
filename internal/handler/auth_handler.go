package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jengzang/geopick-backend-go/internal/middleware"
	"github.com/jengzang/geopick-backend-go/pkg/response"
)

// AuthHandler issues session tokens
type AuthHandler struct {
	secret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{secret: secret}
}

// IssueToken handles POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		ClientID string `json:"client_id"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.ClientID == "" {
		req.ClientID = uuid.NewString()
	}

	token, err := middleware.IssueToken(h.secret, req.ClientID)
	if err != nil {
		response.InternalError(c, "failed to issue token")
		return
	}
	response.Success(c, gin.H{"token": token, "client_id": req.ClientID})
}
