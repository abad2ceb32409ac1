package services

import (
	"time"

	"daywise/internal/report"
	"daywise/internal/types"
)

// summaryService computes monthly summaries and the grouped history view.
// It owns no state beyond the transaction service it reads through; all
// aggregation is done in memory by the report package.
type summaryService struct {
	transactionService TransactionServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(transactionService TransactionServicer) SummaryServicer {
	return &summaryService{transactionService: transactionService}
}

// MonthSummary returns the totals and transactions for one calendar month.
// A month beyond the current one is clamped to the current month, so forward
// navigation past "now" is a no-op rather than an error. "Now" is evaluated
// here, at the moment of the call, never cached.
func (s *summaryService) MonthSummary(userID string, month types.Month) (*MonthSummary, error) {
	now := time.Now()
	current := types.MonthOf(now)

	if month.IsZero() {
		month = current
	}
	month = report.ClampMonth(month, now)

	all, err := s.transactionService.GetAllUserTransactions(userID)
	if err != nil {
		return nil, err
	}

	monthly := report.ForMonth(all, month)

	cursor := report.CursorAt(month)
	var nextMonth *types.Month
	if next := cursor.Next(now); !next.Month().Equal(month) {
		m := next.Month()
		nextMonth = &m
	}

	return &MonthSummary{
		Month:         month,
		PreviousMonth: cursor.Prev().Month(),
		NextMonth:     nextMonth,
		Totals:        report.Sum(monthly),
		Transactions:  monthly,
		IsCurrent:     month.Equal(current),
	}, nil
}

// History returns all of the user's transactions partitioned into month
// groups, most recent month first.
func (s *summaryService) History(userID string) ([]report.MonthGroup, error) {
	all, err := s.transactionService.GetAllUserTransactions(userID)
	if err != nil {
		return nil, err
	}
	return report.GroupByMonth(all), nil
}
