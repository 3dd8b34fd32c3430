package sales

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
	repo "github.com/lucianorey/libreria/internal/repository/sheets"
	"github.com/lucianorey/libreria/internal/service/stock"
)

// Service registers sales against the Ventas tab and reads the history back.
type Service struct {
	repo   repo.Repository
	stock  *stock.Service
	logger *zap.Logger
	locks  identityLocks
	now    func() time.Time
}

// NewService wires a new sale recorder instance.
func NewService(repository repo.Repository, stockIndex *stock.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repository,
		stock:  stockIndex,
		logger: logger,
		now:    time.Now,
	}
}

// Register runs one sale to its terminal state: locate the unsold copy,
// compute the profit split, append the Ventas row, flip the Stock row to
// sold. The two writes are separate network calls against a store without
// transactions; the result's Outcome tells the caller exactly how far the
// request got. Registrations for the same identity are serialized so a copy
// cannot be sold twice by overlapping requests.
func (s *Service) Register(ctx context.Context, req models.SaleRequest) models.SaleResult {
	channel := strings.TrimSpace(req.Channel)
	if channel == "" {
		channel = models.DefaultChannel
	}

	release := s.locks.acquire(identityKey(req.Title, req.Author, req.Supplier))
	defer release()

	item, err := s.stock.FindAvailable(ctx, req.Title, req.Author, req.Supplier)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("no unsold copy for sale request",
				zap.String("title", req.Title),
				zap.String("author", req.Author),
				zap.String("supplier", req.Supplier))
			return models.SaleResult{Outcome: models.SaleStockNotFound, Err: err}
		}
		return models.SaleResult{Outcome: models.SalePersistenceError, Err: err}
	}

	salePrice := ParseAmount(req.SalePrice)
	partnerShare, ownerShare := ComputeShares(
		ParseAmount(item.UnitCost),
		ParsePercent(item.PartnerPercent),
		salePrice,
	)

	record := models.SaleRecord{
		Date:           s.now().Format(models.SaleDateLayout),
		Title:          item.Title,
		Supplier:       item.Supplier,
		UnitCost:       item.UnitCost,
		SalePrice:      strings.TrimSpace(req.SalePrice),
		PartnerPercent: FormatPercent(item.PartnerPercent),
		PartnerShare:   partnerShare.StringFixed(2),
		OwnerShare:     ownerShare.StringFixed(2),
		Channel:        channel,
	}

	if err := s.repo.AppendRow(ctx, models.SalesSheetRange, record.Row()); err != nil {
		s.logger.Error("sale row append failed", zap.String("title", item.Title), zap.Error(err))
		return models.SaleResult{
			Outcome: models.SalePersistenceError,
			Err:     &models.PersistenceError{Op: "append sale row", Err: err},
		}
	}

	if err := s.stock.MarkSold(ctx, item); err != nil {
		// The sale row is already durable. There is no undo for an append and
		// a blind retry here can race the next request, so the inconsistency
		// is surfaced instead of hidden.
		s.logger.Error("sale appended but stock row not marked sold",
			zap.Int("row", item.RowNumber),
			zap.String("title", item.Title),
			zap.Error(err))
		return models.SaleResult{Outcome: models.SalePartial, Record: record, Err: err}
	}

	s.logger.Info("sale registered",
		zap.String("title", item.Title),
		zap.String("supplier", item.Supplier),
		zap.String("sale_price", record.SalePrice),
		zap.String("channel", channel))

	return models.SaleResult{Outcome: models.SaleCompleted, Record: record}
}

// History returns every Ventas row in sheet order.
func (s *Service) History(ctx context.Context) ([]models.SaleRecord, error) {
	rows, err := s.repo.ReadRange(ctx, models.SalesSheetRange)
	if err != nil {
		return nil, &models.PersistenceError{Op: "read sales range", Err: err}
	}

	records := make([]models.SaleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SaleFromRow(row))
	}

	return records, nil
}

// SaleFromRow maps one Ventas values row onto a SaleRecord.
func SaleFromRow(row []interface{}) models.SaleRecord {
	return models.SaleRecord{
		Date:           repo.CellString(row, 0),
		Title:          repo.CellString(row, 1),
		Supplier:       repo.CellString(row, 2),
		UnitCost:       repo.CellString(row, 3),
		SalePrice:      repo.CellString(row, 4),
		PartnerPercent: repo.CellString(row, 5),
		PartnerShare:   repo.CellString(row, 6),
		OwnerShare:     repo.CellString(row, 7),
		Channel:        repo.CellString(row, 8),
	}
}

func identityKey(title, author, supplier string) string {
	norm := func(v string) string { return strings.ToLower(strings.TrimSpace(v)) }
	return norm(title) + "|" + norm(author) + "|" + norm(supplier)
}
