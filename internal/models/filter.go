package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows a transaction listing. All fields are optional.
//
// LastXDays and From/Until are mutually exclusive by construction, not by
// validation: when LastXDays is set it replaces the explicit window
// entirely and From/Until are silently ignored.
type TransactionFilter struct {
	Search     string    // Case-insensitive substring of the description
	CategoryID uuid.UUID // Only transactions of this category
	From       time.Time // Start of the window, inclusive
	Until      time.Time // End of the window, inclusive
	LastXDays  int       // Window of the last N days up to now, overrides From/Until
}

// IsZero reports whether no filter field is set.
func (f TransactionFilter) IsZero() bool {
	return f.Search == "" && f.CategoryID == uuid.Nil && f.From.IsZero() && f.Until.IsZero() && f.LastXDays == 0
}

// Transactions compiles the filter into a query over the transactions of
// the given accounts and runs it. Results are ordered most recent first.
func (f TransactionFilter) Transactions(db *gorm.DB, accountIDs []uuid.UUID) ([]Transaction, error) {
	if f.LastXDays < 0 {
		return nil, ErrLastXDaysNotPositive
	}

	q := db.
		Preload("Tags").
		Where("transactions.account_id IN ?", accountIDs).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if f.LastXDays > 0 {
		now := time.Now().In(time.UTC)
		q = q.
			Where("datetime(transactions.date) >= datetime(?)", now.AddDate(0, 0, -f.LastXDays)).
			Where("datetime(transactions.date) <= datetime(?)", now)
	} else {
		if !f.From.IsZero() {
			q = q.Where("datetime(transactions.date) >= datetime(?)", f.From)
		}

		if !f.Until.IsZero() {
			q = q.Where("datetime(transactions.date) <= datetime(?)", f.Until)
		}
	}

	if f.Search != "" {
		q = q.Where("LOWER(transactions.description) LIKE ?", fmt.Sprintf("%%%s%%", strings.ToLower(f.Search)))
	}

	if f.CategoryID != uuid.Nil {
		q = q.Where("transactions.category_id = ?", f.CategoryID)
	}

	var transactions []Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// AccountFilter is the persisted default transaction filter of an account.
// It is applied when the account's transactions are listed without any
// explicit filter.
type AccountFilter struct {
	DefaultModel
	AccountID  uuid.UUID  `json:"accountId" gorm:"uniqueIndex"`
	Account    Account    `json:"-"`
	Search     string     `json:"search"`
	CategoryID *uuid.UUID `json:"categoryId"`
	FromDate   *time.Time `json:"fromDate"`
	UntilDate  *time.Time `json:"untilDate"`
	LastXDays  int        `json:"lastXDays"`
}

// BeforeCreate verifies references to other resources.
func (s *AccountFilter) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	return tx.First(&Account{}, s.AccountID).Error
}

// Filter converts the persisted record into the filter it represents.
func (s AccountFilter) Filter() TransactionFilter {
	filter := TransactionFilter{
		Search:    s.Search,
		LastXDays: s.LastXDays,
	}

	if s.CategoryID != nil {
		filter.CategoryID = *s.CategoryID
	}

	if s.FromDate != nil {
		filter.From = *s.FromDate
	}

	if s.UntilDate != nil {
		filter.Until = *s.UntilDate
	}

	return filter
}
