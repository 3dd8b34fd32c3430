package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Stock  *handlers.StockHandler
	Sales  *handlers.SalesHandler
	Report *handlers.ReportHandler
	Sheets *handlers.SheetsHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/libros", h.Stock.ListBooks)
		api.GET("/stock", h.Stock.ListOptions)
		api.POST("/desmarcar-vendido", h.Stock.UnmarkSold)

		api.POST("/ventas", h.Sales.Register)
		api.GET("/historial", h.Sales.History)

		api.GET("/reporte", h.Report.Email)
		api.GET("/reporte/pdf", h.Report.Download)

		api.GET("/test-sheets", h.Sheets.Ping)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
