package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_analyzer/internal/feature/marketdata/transport/http/dto"
)

// KeysHandler reports which optional API credentials are configured so a
// frontend can adjust which providers it offers.
type KeysHandler struct {
	alphaVantage bool
	serverChan   bool
}

// NewKeysHandler creates a KeysHandler from the configured state of each
// credential.
func NewKeysHandler(alphaVantage, serverChan bool) *KeysHandler {
	return &KeysHandler{alphaVantage: alphaVantage, serverChan: serverChan}
}

// CheckKeys handles GET /api/check-keys.
func (h *KeysHandler) CheckKeys(c *gin.Context) {
	c.JSON(http.StatusOK, dto.KeysResponse{
		AlphaVantage: h.alphaVantage,
		ServerChan:   h.serverChan,
	})
}
