package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucianorey/libreria/internal/domain/models"
)

type stubRegistrar struct {
	result  models.SaleResult
	records []models.SaleRecord
	histErr error

	gotRequest models.SaleRequest
	calls      int
}

func (s *stubRegistrar) Register(_ context.Context, req models.SaleRequest) models.SaleResult {
	s.gotRequest = req
	s.calls++
	return s.result
}

func (s *stubRegistrar) History(context.Context) ([]models.SaleRecord, error) {
	return s.records, s.histErr
}

func newSalesRouter(stub *stubRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(stub, nil)
	r.POST("/api/ventas", h.Register)
	r.GET("/api/historial", h.History)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterMissingFieldReturns400(t *testing.T) {
	stub := &stubRegistrar{}
	r := newSalesRouter(stub)

	w := postJSON(r, "/api/ventas", `{"titulo":"Rayuela","autor":"","proveedor":"Editorial X","precioVenta":"1200"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}

func TestRegisterMalformedBodyReturns400(t *testing.T) {
	stub := &stubRegistrar{}
	r := newSalesRouter(stub)

	w := postJSON(r, "/api/ventas", `{"titulo":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}

func TestRegisterStockNotFoundReturns404(t *testing.T) {
	stub := &stubRegistrar{result: models.SaleResult{Outcome: models.SaleStockNotFound}}
	r := newSalesRouter(stub)

	w := postJSON(r, "/api/ventas", `{"titulo":"Rayuela","autor":"Cortázar","proveedor":"Editorial X","precioVenta":"1200"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No hay ejemplares disponibles")
}

func TestRegisterCompletedReturns200(t *testing.T) {
	stub := &stubRegistrar{result: models.SaleResult{
		Outcome: models.SaleCompleted,
		Record:  models.SaleRecord{Title: "Rayuela"},
	}}
	r := newSalesRouter(stub)

	w := postJSON(r, "/api/ventas", `{"titulo":"Rayuela","autor":"Cortázar","proveedor":"Editorial X","precioVenta":"1200","canal":"Web"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venta registrada")
	assert.Equal(t, "Web", stub.gotRequest.Channel)
}

func TestRegisterPartialReturns200WithWarning(t *testing.T) {
	stub := &stubRegistrar{result: models.SaleResult{
		Outcome: models.SalePartial,
		Record:  models.SaleRecord{Title: "Rayuela"},
		Err:     errors.New("connection reset"),
	}}
	r := newSalesRouter(stub)

	w := postJSON(r, "/api/ventas", `{"titulo":"Rayuela","autor":"Cortázar","proveedor":"Editorial X","precioVenta":"1200"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "warning")
}

func TestRegisterPersistenceErrorReturns500(t *testing.T) {
	stub := &stubRegistrar{result: models.SaleResult{
		Outcome: models.SalePersistenceError,
		Err:     errors.New("quota exceeded"),
	}}
	r := newSalesRouter(stub)

	w := postJSON(r, "/api/ventas", `{"titulo":"Rayuela","autor":"Cortázar","proveedor":"Editorial X","precioVenta":"1200"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHistoryReturnsVentasEnvelope(t *testing.T) {
	stub := &stubRegistrar{records: []models.SaleRecord{
		{Date: "2026-08-25", Title: "Rayuela", OwnerShare: "220.00"},
	}}
	r := newSalesRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/historial", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ventas"`)
	assert.Contains(t, w.Body.String(), `"gananciaTuya":"220.00"`)
}

func TestHistoryFailureReturns500(t *testing.T) {
	stub := &stubRegistrar{histErr: errors.New("network down")}
	r := newSalesRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/historial", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
