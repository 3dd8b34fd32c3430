package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/domain/models"
	repo "github.com/lucianorey/libreria/internal/repository/sheets"
	"github.com/lucianorey/libreria/internal/service/sales"
	"github.com/lucianorey/libreria/pkg/mailer"
)

// Mailer delivers a finished report to the partner.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Service builds date-windowed sales reports and mails them out.
type Service struct {
	repo         repo.Repository
	mailer       Mailer
	partnerEmail string
	logger       *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(repository repo.Repository, m Mailer, partnerEmail string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:         repository,
		mailer:       m,
		partnerEmail: partnerEmail,
		logger:       logger,
	}
}

// SalesBetween returns the Ventas rows whose sale day falls inside the
// window, inclusive of both endpoints' calendar days. Rows with an unreadable
// date are skipped.
func (s *Service) SalesBetween(ctx context.Context, window models.ReportWindow) ([]models.SaleRecord, error) {
	rows, err := s.repo.ReadRange(ctx, models.SalesSheetRange)
	if err != nil {
		return nil, &models.PersistenceError{Op: "read sales range", Err: err}
	}

	from := truncateToDay(window.From)
	to := truncateToDay(window.To)

	var records []models.SaleRecord
	for _, row := range rows {
		record := sales.SaleFromRow(row)

		day, err := time.Parse(models.SaleDateLayout, record.Date)
		if err != nil {
			s.logger.Debug("skip sales row with invalid date", zap.String("value", record.Date), zap.Error(err))
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// Summarize totals the sale prices and both shares across the records.
func Summarize(records []models.SaleRecord) models.ReportSummary {
	var summary models.ReportSummary
	for _, r := range records {
		summary.Count++
		summary.TotalSales = summary.TotalSales.Add(sales.ParseAmount(r.SalePrice))
		summary.TotalPartner = summary.TotalPartner.Add(sales.ParseAmount(r.PartnerShare))
		summary.TotalOwner = summary.TotalOwner.Add(sales.ParseAmount(r.OwnerShare))
	}
	return summary
}

// GeneratePDF renders the report for the window and returns the document
// bytes along with the suggested file name.
func (s *Service) GeneratePDF(ctx context.Context, window models.ReportWindow) ([]byte, string, error) {
	records, err := s.SalesBetween(ctx, window)
	if err != nil {
		return nil, "", err
	}

	doc, err := renderPDF(records, window, Summarize(records))
	if err != nil {
		return nil, "", fmt.Errorf("render report pdf: %w", err)
	}

	name := fmt.Sprintf("reporte_%s_al_%s.pdf",
		window.From.Format(models.SaleDateLayout),
		window.To.Format(models.SaleDateLayout))

	return doc, name, nil
}

// SendReport renders the window's report and emails it to the partner.
func (s *Service) SendReport(ctx context.Context, window models.ReportWindow) error {
	doc, name, err := s.GeneratePDF(ctx, window)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		To:             s.partnerEmail,
		Subject:        "Reporte de ventas",
		Body:           "Adjunto el reporte de ventas correspondiente al período seleccionado.",
		AttachmentName: name,
		Attachment:     doc,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("email report: %w", err)
	}

	s.logger.Info("sales report emailed",
		zap.String("to", s.partnerEmail),
		zap.String("attachment", name))
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
