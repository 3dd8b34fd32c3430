package stock

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
	repo "github.com/lucianorey/libreria/internal/repository/sheets"
)

// Service answers availability questions against the Stock tab. It holds no
// state of its own; every call re-reads the sheet.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService wires a new stock index instance.
func NewService(repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// ValidateSchema reads both header rows and fails when columns were renamed or
// reordered. Column positions are the wire format; drift here corrupts every
// subsequent read and write, so the server refuses to start on mismatch.
func (s *Service) ValidateSchema(ctx context.Context) error {
	if err := s.checkHeader(ctx, models.StockHeaderRange, models.StockHeaders); err != nil {
		return err
	}
	return s.checkHeader(ctx, models.SalesHeaderRange, models.SalesHeaders)
}

func (s *Service) checkHeader(ctx context.Context, headerRange string, expected []string) error {
	rows, err := s.repo.ReadRange(ctx, headerRange)
	if err != nil {
		return &models.PersistenceError{Op: "read header " + headerRange, Err: err}
	}
	if len(rows) == 0 {
		return fmt.Errorf("header row missing in range %s", headerRange)
	}

	header := rows[0]
	if len(header) < len(expected) {
		return fmt.Errorf("range %s has %d header columns, want at least %d", headerRange, len(header), len(expected))
	}

	for i, want := range expected {
		got := strings.TrimSpace(repo.CellString(header, i))
		if !strings.EqualFold(got, want) {
			return fmt.Errorf("range %s column %d reads %q, want %q", headerRange, i+1, got, want)
		}
	}

	return nil
}

// ListAvailable returns every stock row not yet marked sold, in sheet order.
func (s *Service) ListAvailable(ctx context.Context) ([]models.StockItem, error) {
	items, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]models.StockItem, 0, len(items))
	for _, item := range items {
		if !item.Sold {
			available = append(available, item)
		}
	}

	return available, nil
}

// FindAvailable returns the first unsold row matching the identity tuple.
// Matching is case-insensitive and ignores surrounding whitespace; duplicate
// rows after the first match are ignored. Returns models.ErrNotFound when no
// unsold row matches.
func (s *Service) FindAvailable(ctx context.Context, title, author, supplier string) (models.StockItem, error) {
	items, err := s.readAll(ctx)
	if err != nil {
		return models.StockItem{}, err
	}

	for _, item := range items {
		if item.Sold {
			continue
		}
		if identityMatches(item, title, author, supplier) {
			return item, nil
		}
	}

	return models.StockItem{}, models.ErrNotFound
}

// MarkSold writes the sold sentinel into the row's flag cell.
func (s *Service) MarkSold(ctx context.Context, item models.StockItem) error {
	if err := s.repo.UpdateCell(ctx, soldCellRef(item.RowNumber), models.SoldFlag); err != nil {
		return &models.PersistenceError{Op: "mark stock row sold", Err: err}
	}

	s.logger.Info("stock row marked sold",
		zap.Int("row", item.RowNumber),
		zap.String("title", item.Title))
	return nil
}

// UnmarkSold clears the sold flag on the first matching row that carries it.
// Returns models.ErrNotFound when no sold row matches the identity.
func (s *Service) UnmarkSold(ctx context.Context, title, author, supplier string) error {
	items, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		if !item.Sold {
			continue
		}
		if !identityMatches(item, title, author, supplier) {
			continue
		}

		if err := s.repo.UpdateCell(ctx, soldCellRef(item.RowNumber), ""); err != nil {
			return &models.PersistenceError{Op: "clear sold flag", Err: err}
		}

		s.logger.Info("sold flag cleared",
			zap.Int("row", item.RowNumber),
			zap.String("title", item.Title))
		return nil
	}

	return models.ErrNotFound
}

func (s *Service) readAll(ctx context.Context) ([]models.StockItem, error) {
	rows, err := s.repo.ReadRange(ctx, models.StockSheetRange)
	if err != nil {
		return nil, &models.PersistenceError{Op: "read stock range", Err: err}
	}

	items := make([]models.StockItem, 0, len(rows))
	for i, row := range rows {
		items = append(items, parseRow(row, models.StockFirstDataRow+i))
	}

	return items, nil
}

// parseRow maps one sheet row onto a StockItem. Trailing empty cells are not
// returned by the API, so short rows are read as blanks rather than skipped.
func parseRow(row []interface{}, rowNumber int) models.StockItem {
	return models.StockItem{
		RowNumber:      rowNumber,
		DateAdded:      repo.CellString(row, models.StockColDateAdded),
		Supplier:       repo.CellString(row, models.StockColSupplier),
		LotCost:        repo.CellString(row, models.StockColLotCost),
		UnitCost:       repo.CellString(row, models.StockColUnitCost),
		ListPrice:      repo.CellString(row, models.StockColListPrice),
		PartnerPercent: repo.CellString(row, models.StockColPartnerPercent),
		Title:          repo.CellString(row, models.StockColTitle),
		Author:         repo.CellString(row, models.StockColAuthor),
		Publisher:      repo.CellString(row, models.StockColPublisher),
		Collection:     repo.CellString(row, models.StockColCollection),
		Comments:       repo.CellString(row, models.StockColComments),
		Sold:           repo.CellString(row, models.StockColSold) == models.SoldFlag,
	}
}

func identityMatches(item models.StockItem, title, author, supplier string) bool {
	return equalFoldTrimmed(item.Title, title) &&
		equalFoldTrimmed(item.Author, author) &&
		equalFoldTrimmed(item.Supplier, supplier)
}

func equalFoldTrimmed(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func soldCellRef(rowNumber int) string {
	return fmt.Sprintf("Stock!%s%d", models.StockSoldColumn, rowNumber)
}
