package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single signed movement of money on an account.
//
// The sign convention is income positive, spending negative. It is enforced
// by the write path (the API takes a direction and a positive amount), the
// read-only computations over transactions trust the stored sign.
type Transaction struct {
	DefaultModel
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-25"`
	Description string          `json:"description"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Category    Category        `json:"-"`
	AccountID   uuid.UUID       `json:"accountId"`
	Account     Account         `json:"-"`
	Tags        []Tag           `json:"tags" gorm:"many2many:transaction_tags"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)

	return nil
}

// BeforeSave sets the timezone for the Date to UTC and trims whitespace.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Description = strings.TrimSpace(t.Description)

	return nil
}

// BeforeCreate verifies references to other resources and falls back to the
// reserved category when none is set.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	err := tx.First(&Account{}, t.AccountID).Error
	if err != nil {
		return err
	}

	if t.CategoryID == uuid.Nil {
		fallback, err := ReservedCategory(tx)
		if err != nil {
			return err
		}

		t.CategoryID = fallback.ID
		return nil
	}

	return tx.First(&Category{}, t.CategoryID).Error
}
