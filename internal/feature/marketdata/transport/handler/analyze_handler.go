// Package handler provides the HTTP handlers of the marketdata feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
	"stock_analyzer/internal/feature/marketdata/transport/http/dto"
	"stock_analyzer/internal/feature/marketdata/usecase"
)

// SnapshotUsecase is the usecase interface this handler consumes.
// Following Go convention, the interface is defined on the consumer side.
type SnapshotUsecase interface {
	GetStockData(ctx context.Context, symbol, period string) (*entity.Snapshot, error)
}

// AnalyzeHandler serves analysis requests over HTTP.
type AnalyzeHandler struct {
	uc SnapshotUsecase
}

// NewAnalyzeHandler creates an AnalyzeHandler backed by the given usecase.
func NewAnalyzeHandler(uc SnapshotUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

// Analyze runs the full acquisition pipeline for one symbol and returns
// the snapshot as JSON.
//
// Endpoint:
// POST /api/analyze {"symbol": "AAPL", "period": "1y", "timeframes": ["weekly"]}
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Symbol) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "symbol is required"})
		return
	}

	snap, err := h.uc.GetStockData(c.Request.Context(), req.Symbol, req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp := dto.AnalyzeResponse{
		Success:    true,
		Symbol:     snap.Symbol,
		Period:     periodOrDefault(req.Period),
		Provider:   snap.Provider,
		StockInfo:  snap.Info,
		Indicators: snap.Indicators,
		Stats:      snap.Stats,
		Data:       snap.Data,
	}
	for _, tf := range req.Timeframes {
		switch strings.ToLower(strings.TrimSpace(tf)) {
		case "weekly":
			resp.DataWeekly = usecase.WeeklyRows(snap.Series)
		case "monthly":
			resp.DataMonthly = usecase.MonthlyRows(snap.Series)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func periodOrDefault(period string) string {
	if period == "" {
		return usecase.DefaultPeriod
	}
	return period
}
