// Package report turns flat transaction lists into monthly summaries.
// All functions are pure: they never touch the database and never mutate
// their inputs, so callers can feed them whatever slice they already hold.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"daywise/internal/models"
	"daywise/internal/types"
)

// Totals holds the aggregated amounts for a transaction list.
// Balance is always exactly TotalIncome minus TotalExpenses.
type Totals struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// MonthGroup is the derived aggregate of all transactions sharing a
// calendar year and month. It is recomputed on every request and never
// persisted.
type MonthGroup struct {
	Month        types.Month          `json:"month"`
	Transactions []models.Transaction `json:"transactions"`
	Totals
}

// Sum computes decimal-exact totals over a transaction list. Amounts are
// always positive; the transaction type decides which bucket they land in.
func Sum(transactions []models.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return Totals{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}

// ForMonth returns the subset of transactions whose date falls within the
// given calendar month. An empty result is valid and not an error.
func ForMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	result := []models.Transaction{}
	for _, t := range transactions {
		if month.Contains(t.Date) {
			result = append(result, t)
		}
	}
	return result
}

// GroupByMonth partitions transactions into one MonthGroup per distinct
// calendar (year, month) pair, each with its own totals. Groups are ordered
// most-recent first; transactions keep their input order within a group.
func GroupByMonth(transactions []models.Transaction) []MonthGroup {
	grouped := map[types.Month][]models.Transaction{}
	for _, t := range transactions {
		key := types.MonthOf(t.Date)
		grouped[key] = append(grouped[key], t)
	}

	groups := make([]MonthGroup, 0, len(grouped))
	for month, members := range grouped {
		groups = append(groups, MonthGroup{
			Month:        month,
			Transactions: members,
			Totals:       Sum(members),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Month.After(groups[j].Month)
	})

	return groups
}
