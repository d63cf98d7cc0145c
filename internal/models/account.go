package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an account transactions are recorded against, e.g. a
// bank account.
type Account struct {
	DefaultModel
	Name     string `json:"name" gorm:"uniqueIndex"`
	Currency string `json:"currency" example:"EUR"`
}

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Currency = strings.TrimSpace(a.Currency)

	return nil
}

// BalanceOptions restricts the transactions a balance is computed over.
// All fields are optional and independent of each other.
type BalanceOptions struct {
	PeriodStart *time.Time // Only transactions strictly after this instant
	PeriodEnd   *time.Time // Only transactions strictly before this instant
	Tag         string     // Only transactions carrying a tag with this label
}

// Balance sums the signed amounts of the account's transactions matching
// the options. An account without matching transactions has a balance of
// zero, this is not an error.
func (a Account) Balance(db *gorm.DB, options BalanceOptions) (decimal.Decimal, error) {
	var balance decimal.NullDecimal

	q := db.
		Table("transactions").
		Select("SUM(transactions.amount)").
		Where("transactions.deleted_at IS NULL").
		Where(&Transaction{AccountID: a.ID})

	if options.PeriodStart != nil {
		q = q.Where("datetime(transactions.date) > datetime(?)", *options.PeriodStart)
	}

	if options.PeriodEnd != nil {
		q = q.Where("datetime(transactions.date) < datetime(?)", *options.PeriodEnd)
	}

	if options.Tag != "" {
		q = q.
			Joins("JOIN transaction_tags ON transaction_tags.transaction_id = transactions.id").
			Joins("JOIN tags ON tags.id = transaction_tags.tag_id").
			Where("tags.label = ?", options.Tag)
	}

	err := q.Find(&balance).Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !balance.Valid {
		return decimal.Zero, nil
	}

	return balance.Decimal, nil
}

// DefaultFilter returns the persisted default transaction filter of the
// account. It is used when a transaction listing is requested without any
// explicit filter; without a persisted default that request fails.
func (a Account) DefaultFilter(db *gorm.DB) (TransactionFilter, error) {
	var stored AccountFilter
	err := db.Where(&AccountFilter{AccountID: a.ID}).First(&stored).Error
	if err != nil {
		return TransactionFilter{}, err
	}

	return stored.Filter(), nil
}
