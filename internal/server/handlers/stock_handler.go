package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
)

// StockIndex is the slice of the stock service the HTTP layer needs.
type StockIndex interface {
	ListAvailable(ctx context.Context) ([]models.StockItem, error)
	UnmarkSold(ctx context.Context, title, author, supplier string) error
}

// StockHandler serves the catalog and sold-flag endpoints.
type StockHandler struct {
	svc    StockIndex
	logger *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter.
func NewStockHandler(svc StockIndex, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, logger: logger}
}

// ListBooks returns the full projection of every unsold row.
func (h *StockHandler) ListBooks(c *gin.Context) {
	items, err := h.svc.ListAvailable(c.Request.Context())
	if err != nil {
		h.logger.Error("stock listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al leer libros del stock"})
		return
	}

	listings := make([]models.StockListing, 0, len(items))
	for _, item := range items {
		listings = append(listings, item.Listing())
	}

	c.JSON(http.StatusOK, listings)
}

// ListOptions returns the light projection the sale form autocompletes from.
func (h *StockHandler) ListOptions(c *gin.Context) {
	items, err := h.svc.ListAvailable(c.Request.Context())
	if err != nil {
		h.logger.Error("stock options failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al conectar con Google Sheets"})
		return
	}

	options := make([]models.StockOption, 0, len(items))
	for _, item := range items {
		options = append(options, item.Option())
	}

	c.JSON(http.StatusOK, options)
}

type unmarkRequest struct {
	Title    string `json:"titulo"`
	Author   string `json:"autor"`
	Supplier string `json:"proveedor"`
}

// UnmarkSold clears the sold flag on the matching row.
func (h *StockHandler) UnmarkSold(c *gin.Context) {
	var req unmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Faltan datos obligatorios."})
		return
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"titulo", req.Title},
		{"autor", req.Author},
		{"proveedor", req.Supplier},
	} {
		if strings.TrimSpace(f.value) == "" {
			h.logger.Warn("unmark request rejected", zap.Error(&models.ValidationError{Field: f.name}))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Faltan datos obligatorios."})
			return
		}
	}

	err := h.svc.UnmarkSold(c.Request.Context(), req.Title, req.Author, req.Supplier)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No se encontró el libro para desmarcar"})
	default:
		h.logger.Error("unmark sold failed", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno al desmarcar"})
	}
}
