package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "daywise/internal/errors"
	"daywise/internal/models"
	"daywise/internal/pagination"
)

// maxAmount is the largest amount a single transaction may carry.
var maxAmount = decimal.RequireFromString("999999999.99")

const (
	maxDescriptionLen = 200
	maxCategoryLen    = 100
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and records a new transaction for a user.
// Validation is fail-fast: the first violated rule is reported and nothing
// is written. The date defaults to the current UTC day when zero.
func (s *transactionService) CreateTransaction(
	userID string,
	transactionType models.TransactionType,
	amount decimal.Decimal,
	description string,
	category string,
	date time.Time,
) (*models.Transaction, error) {
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}

	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}
	if amount.GreaterThan(maxAmount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must not exceed 999999999.99")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Description is required")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Description must be at most 200 characters")
	}

	// An empty category after trimming is treated as absent, not as "".
	var categoryPtr *string
	category = strings.TrimSpace(category)
	if category != "" {
		if utf8.RuneCountInString(category) > maxCategoryLen {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category must be at most 100 characters")
		}
		categoryPtr = &category
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Category:    categoryPtr,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated list of the user's transactions,
// newest first (by date, then by insertion time for same-day rows).
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllUserTransactions retrieves every transaction for a user, newest
// first. The summary service regroups client-side, so no filtering happens
// here beyond the ownership scope.
func (s *transactionService) GetAllUserTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction. Only rows dated the current UTC
// day may be deleted; the rule is enforced here so it holds regardless of
// what any client sends.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if !sameUTCDay(transaction.Date, time.Now()) {
		return apperrors.ErrTransactionNotDeletable
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// sameUTCDay reports whether two instants fall on the same UTC calendar day.
func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
