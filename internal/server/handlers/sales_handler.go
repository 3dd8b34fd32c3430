package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
)

// SaleRegistrar is the slice of the sales service the HTTP layer needs.
type SaleRegistrar interface {
	Register(ctx context.Context, req models.SaleRequest) models.SaleResult
	History(ctx context.Context) ([]models.SaleRecord, error)
}

// SalesHandler serves sale registration and the sales history.
type SalesHandler struct {
	svc    SaleRegistrar
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter.
func NewSalesHandler(svc SaleRegistrar, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{svc: svc, logger: logger}
}

// Register records one sale.
func (h *SalesHandler) Register(c *gin.Context) {
	var req models.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Faltan datos obligatorios."})
		return
	}

	if err := validateRequest(req); err != nil {
		h.logger.Warn("sale request rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Faltan datos obligatorios."})
		return
	}

	result := h.svc.Register(c.Request.Context(), req)
	switch result.Outcome {
	case models.SaleCompleted:
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Venta registrada: %s", result.Record.Title),
		})
	case models.SaleStockNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "No hay ejemplares disponibles"})
	case models.SalePartial:
		// The sale row is durable; only the sold flag is missing. Degraded
		// success so the operator knows to fix the flag by hand.
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Venta registrada: %s", result.Record.Title),
			"warning": "La venta se guardó pero el stock no pudo marcarse como vendido.",
		})
	default:
		h.logger.Error("sale registration failed", zap.Error(result.Err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al registrar venta"})
	}
}

// History returns every recorded sale.
func (h *SalesHandler) History(c *gin.Context) {
	records, err := h.svc.History(c.Request.Context())
	if err != nil {
		h.logger.Error("sales history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener historial de ventas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ventas": records})
}

// validateRequest checks the presence of every required field.
func validateRequest(req models.SaleRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"titulo", req.Title},
		{"autor", req.Author},
		{"proveedor", req.Supplier},
		{"precioVenta", req.SalePrice},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &models.ValidationError{Field: f.name}
		}
	}
	return nil
}
