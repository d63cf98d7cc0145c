package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget groups a set of accounts for expense reporting.
//
// The budget's transaction universe is the set of transactions recorded
// against the accounts in its scope. Income is the monthly income used for
// the scaled income figure of expense reports.
type Budget struct {
	DefaultModel
	Name     string          `json:"name"`
	Income   decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)" example:"2000"`
	Currency string          `json:"currency" example:"EUR"`
	Accounts []Account       `json:"accounts" gorm:"many2many:budget_accounts"`
}

// BeforeSave trims whitespace from all strings.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Currency = strings.TrimSpace(b.Currency)

	return nil
}

// seedPartitions is the fixed triad every budget starts with when it is
// created through the API.
var seedPartitions = [3]Partition{
	{Name: "Needs", Color: "#2196f3"},
	{Name: "Wants", Color: "#ff9800"},
	{Name: "Investments", Color: "#4caf50"},
}

// CreateSeedPartitions creates the Needs/Wants/Investments partitions for
// the budget and returns them.
func (b Budget) CreateSeedPartitions(db *gorm.DB) ([]Partition, error) {
	partitions := make([]Partition, 0, len(seedPartitions))

	for _, seed := range seedPartitions {
		partition := Partition{
			Name:     seed.Name,
			Color:    seed.Color,
			BudgetID: b.ID,
		}

		if err := db.Create(&partition).Error; err != nil {
			return nil, err
		}

		partitions = append(partitions, partition)
	}

	return partitions, nil
}

// AccountIDs returns the IDs of the accounts in the budget's scope.
// The Accounts association must be loaded.
func (b Budget) AccountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Accounts))
	for _, account := range b.Accounts {
		ids = append(ids, account.ID)
	}

	return ids
}
