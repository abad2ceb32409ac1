package services

import (
	"time"

	"github.com/shopspring/decimal"

	"daywise/internal/models"
	"daywise/internal/pagination"
	"daywise/internal/report"
	"daywise/internal/types"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	RecordLogin(userID string) error
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, transactionType models.TransactionType, amount decimal.Decimal, description, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetAllUserTransactions(userID string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// MonthSummary contains the dashboard data for a single calendar month.
// PreviousMonth always points one month back; NextMonth is absent at the
// current month, where forward navigation stops.
type MonthSummary struct {
	Month         types.Month  `json:"month"`
	PreviousMonth types.Month  `json:"previous_month"`
	NextMonth     *types.Month `json:"next_month,omitempty"`
	report.Totals
	Transactions []models.Transaction `json:"transactions"`
	IsCurrent    bool                 `json:"is_current"`
}

// SummaryServicer defines the contract for monthly summary and history views.
type SummaryServicer interface {
	MonthSummary(userID string, month types.Month) (*MonthSummary, error)
	History(userID string) ([]report.MonthGroup, error)
}
