package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Partition is a named bucket within a budget, e.g. "Needs". It holds the
// allocations whose targets the expense report compares spending against.
type Partition struct {
	DefaultModel
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	BudgetID uuid.UUID `json:"budgetId"`
	Budget   Budget    `json:"-"`
}

// BeforeSave trims whitespace from all strings.
func (p *Partition) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Color = strings.TrimSpace(p.Color)

	return nil
}

// BeforeCreate verifies references to other resources.
func (p *Partition) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	return tx.First(&Budget{}, p.BudgetID).Error
}

// AfterDelete deletes the partition's allocations. A partition and its
// allocations only make sense together.
func (p *Partition) AfterDelete(tx *gorm.DB) error {
	return tx.Where(&Allocation{PartitionID: p.ID}).Delete(&Allocation{}).Error
}
