package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
)

// ReportService is the slice of the reporting service the HTTP layer needs.
type ReportService interface {
	GeneratePDF(ctx context.Context, window models.ReportWindow) ([]byte, string, error)
	SendReport(ctx context.Context, window models.ReportWindow) error
}

// ReportHandler serves report generation in both variants: emailed to the
// partner, or streamed back as a PDF.
type ReportHandler struct {
	svc    ReportService
	logger *zap.Logger
	now    func() time.Time
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc ReportService, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger, now: time.Now}
}

// Email renders the report for the requested window and mails it.
func (h *ReportHandler) Email(c *gin.Context) {
	window, err := h.parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rango de fechas inválido"})
		return
	}

	if err := h.svc.SendReport(c.Request.Context(), window); err != nil {
		h.logger.Error("report email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al generar o enviar el reporte"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reporte generado y enviado exitosamente."})
}

// Download streams the rendered report back to the caller.
func (h *ReportHandler) Download(c *gin.Context) {
	window, err := h.parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rango de fechas inválido"})
		return
	}

	doc, name, err := h.svc.GeneratePDF(c.Request.Context(), window)
	if err != nil {
		h.logger.Error("report download failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al generar el reporte"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// parseWindow reads the desde/hasta query params; missing bounds fall back to
// the trailing-week window.
func (h *ReportHandler) parseWindow(c *gin.Context) (models.ReportWindow, error) {
	window := models.DefaultReportWindow(h.now())

	if raw := c.Query("desde"); raw != "" {
		from, err := time.Parse(models.SaleDateLayout, raw)
		if err != nil {
			return models.ReportWindow{}, fmt.Errorf("parse desde %q: %w", raw, err)
		}
		window.From = from
	}

	if raw := c.Query("hasta"); raw != "" {
		to, err := time.Parse(models.SaleDateLayout, raw)
		if err != nil {
			return models.ReportWindow{}, fmt.Errorf("parse hasta %q: %w", raw, err)
		}
		window.To = to
	}

	return window, nil
}
