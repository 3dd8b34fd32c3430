package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
	repo "github.com/lucianorey/libreria/internal/repository/sheets"
)

// SheetsHandler exposes a connectivity probe against the spreadsheet.
type SheetsHandler struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewSheetsHandler constructs the HTTP handler adapter.
func NewSheetsHandler(repository repo.Repository, logger *zap.Logger) *SheetsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetsHandler{repo: repository, logger: logger}
}

// Ping reads the Ventas header row to verify credentials and connectivity.
func (h *SheetsHandler) Ping(c *gin.Context) {
	rows, err := h.repo.ReadRange(c.Request.Context(), models.SalesHeaderRange)
	if err != nil {
		h.logger.Error("sheets connectivity check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Falló la conexión a Google Sheets"})
		return
	}

	headers := []interface{}{}
	if len(rows) > 0 {
		headers = rows[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Conexión exitosa a Google Sheets",
		"headers": headers,
	})
}
