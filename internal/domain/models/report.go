package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportWindowDays is the default lookback when the caller gives no range.
const ReportWindowDays = 7

// ReportWindow is the inclusive calendar-day range a report covers.
type ReportWindow struct {
	From time.Time
	To   time.Time
}

// DefaultReportWindow returns the trailing-week window ending at now.
func DefaultReportWindow(now time.Time) ReportWindow {
	return ReportWindow{
		From: now.AddDate(0, 0, -ReportWindowDays),
		To:   now,
	}
}

// ReportSummary aggregates the sales inside a window.
type ReportSummary struct {
	Count        int
	TotalSales   decimal.Decimal
	TotalPartner decimal.Decimal
	TotalOwner   decimal.Decimal
}
