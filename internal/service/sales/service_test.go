package sales

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucianorey/libreria/internal/domain/models"
	"github.com/lucianorey/libreria/internal/service/stock"
)

// fakeRepo is an in-memory stand-in for the sheets gateway. UpdateCell on the
// stock sold column mutates the backing rows so a marked copy disappears from
// subsequent availability checks, like the real sheet.
type fakeRepo struct {
	stockRows [][]interface{}
	salesRows [][]interface{}
	updates   map[string]interface{}

	readErr   error
	appendErr error
	updateErr error
}

func newFakeRepo(stockRows [][]interface{}) *fakeRepo {
	return &fakeRepo{stockRows: stockRows, updates: map[string]interface{}{}}
}

func (f *fakeRepo) ReadRange(_ context.Context, sheetRange string) ([][]interface{}, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	switch sheetRange {
	case models.StockSheetRange:
		return f.stockRows, nil
	case models.SalesSheetRange:
		return f.salesRows, nil
	}
	return nil, fmt.Errorf("unexpected range %s", sheetRange)
}

func (f *fakeRepo) AppendRow(_ context.Context, sheetRange string, values []interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if sheetRange != models.SalesSheetRange {
		return fmt.Errorf("unexpected range %s", sheetRange)
	}
	f.salesRows = append(f.salesRows, values)
	return nil
}

func (f *fakeRepo) UpdateCell(_ context.Context, cellRef string, value interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates[cellRef] = value

	prefix := "Stock!" + models.StockSoldColumn
	if strings.HasPrefix(cellRef, prefix) {
		rowNumber, err := strconv.Atoi(strings.TrimPrefix(cellRef, prefix))
		if err != nil {
			return err
		}
		idx := rowNumber - models.StockFirstDataRow
		if idx >= 0 && idx < len(f.stockRows) {
			f.stockRows[idx][models.StockColSold] = value
		}
	}
	return nil
}

func stockRow(supplier, unitCost, pct, title, author, sold string) []interface{} {
	return []interface{}{
		"2026-01-10", supplier, "5000", unitCost, "1500", pct,
		title, author, "Sudamericana", "", "", sold,
	}
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, stock.NewService(repo, nil), nil)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 15, 4, 0, 0, time.Local)
	}
	return svc
}

func TestRegisterAppendsSaleAndMarksSold(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40%", "Rayuela", "Cortázar", ""),
	})
	svc := newTestService(repo)

	result := svc.Register(context.Background(), models.SaleRequest{
		Title:     "Rayuela",
		Author:    "Cortázar",
		Supplier:  "Editorial X",
		SalePrice: "1200",
	})

	require.Equal(t, models.SaleCompleted, result.Outcome)
	require.Len(t, repo.salesRows, 1)
	assert.Equal(t, []interface{}{
		"2026-08-28", "Rayuela", "Editorial X", "500", "1200",
		"40%", "980.00", "220.00", "Local",
	}, repo.salesRows[0])
	assert.Equal(t, models.SoldFlag, repo.updates["Stock!L2"])
}

func TestRegisterMatchesCaseInsensitiveTrimmed(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40", "Moby Dick", "Melville", ""),
	})
	svc := newTestService(repo)

	result := svc.Register(context.Background(), models.SaleRequest{
		Title:     " moby dick ",
		Author:    " MELVILLE",
		Supplier:  "editorial x",
		SalePrice: "1000",
		Channel:   "Web",
	})

	require.Equal(t, models.SaleCompleted, result.Outcome)
	assert.Equal(t, "Moby Dick", result.Record.Title)
	assert.Equal(t, "Web", result.Record.Channel)
}

func TestRegisterFirstMatchingRowWins(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40", "Rayuela", "Cortázar", ""),
		stockRow("Editorial X", "900", "50", "Rayuela", "Cortázar", ""),
	})
	svc := newTestService(repo)

	result := svc.Register(context.Background(), models.SaleRequest{
		Title:     "Rayuela",
		Author:    "Cortázar",
		Supplier:  "Editorial X",
		SalePrice: "1200",
	})

	require.Equal(t, models.SaleCompleted, result.Outcome)
	assert.Equal(t, "500", result.Record.UnitCost)
	assert.Equal(t, models.SoldFlag, repo.updates["Stock!L2"])
	_, secondMarked := repo.updates["Stock!L3"]
	assert.False(t, secondMarked)
}

func TestRegisterSecondSaleOfSameCopyNotFound(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40", "Rayuela", "Cortázar", ""),
	})
	svc := newTestService(repo)
	req := models.SaleRequest{
		Title:     "Rayuela",
		Author:    "Cortázar",
		Supplier:  "Editorial X",
		SalePrice: "1200",
	}

	first := svc.Register(context.Background(), req)
	require.Equal(t, models.SaleCompleted, first.Outcome)

	second := svc.Register(context.Background(), req)
	assert.Equal(t, models.SaleStockNotFound, second.Outcome)
	assert.Len(t, repo.salesRows, 1)
}

func TestRegisterNoMatchAppendsNothing(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40", "Rayuela", "Cortázar", ""),
	})
	svc := newTestService(repo)

	result := svc.Register(context.Background(), models.SaleRequest{
		Title:     "Ficciones",
		Author:    "Borges",
		Supplier:  "Editorial X",
		SalePrice: "800",
	})

	assert.Equal(t, models.SaleStockNotFound, result.Outcome)
	assert.Empty(t, repo.salesRows)
	assert.Empty(t, repo.updates)
}

func TestRegisterAppendFailureLeavesStockUntouched(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40", "Rayuela", "Cortázar", ""),
	})
	repo.appendErr = errors.New("quota exceeded")
	svc := newTestService(repo)

	result := svc.Register(context.Background(), models.SaleRequest{
		Title:     "Rayuela",
		Author:    "Cortázar",
		Supplier:  "Editorial X",
		SalePrice: "1200",
	})

	assert.Equal(t, models.SalePersistenceError, result.Outcome)
	assert.Empty(t, repo.salesRows)
	assert.Empty(t, repo.updates)

	var pe *models.PersistenceError
	assert.ErrorAs(t, result.Err, &pe)
}

func TestRegisterMarkFailureReportsPartial(t *testing.T) {
	repo := newFakeRepo([][]interface{}{
		stockRow("Editorial X", "500", "40", "Rayuela", "Cortázar", ""),
	})
	svc := newTestService(repo)
	repo.updateErr = errors.New("connection reset")

	result := svc.Register(context.Background(), models.SaleRequest{
		Title:     "Rayuela",
		Author:    "Cortázar",
		Supplier:  "Editorial X",
		SalePrice: "1200",
	})

	assert.Equal(t, models.SalePartial, result.Outcome)
	assert.Len(t, repo.salesRows, 1)
	assert.Equal(t, "Rayuela", result.Record.Title)
	assert.Error(t, result.Err)
}

func TestHistoryReturnsRowsInSheetOrder(t *testing.T) {
	repo := newFakeRepo(nil)
	repo.salesRows = [][]interface{}{
		{"2026-08-20", "Rayuela", "Editorial X", "500", "1200", "40%", "980.00", "220.00", "Local"},
		{"2026-08-21", "Ficciones", "Editorial Y", "300", "900", "30%", "570.00", "330.00", "Web"},
	}
	svc := newTestService(repo)

	records, err := svc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Rayuela", records[0].Title)
	assert.Equal(t, "330.00", records[1].OwnerShare)
	assert.Equal(t, "Web", records[1].Channel)
}
