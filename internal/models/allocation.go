package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is a monthly spending target for one category within one
// partition. Several allocations in the same partition may share a
// category; the expense report collapses them into one group.
type Allocation struct {
	DefaultModel
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"200"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Category    Category        `json:"-"`
	PartitionID uuid.UUID       `json:"partitionId"`
	Partition   Partition       `json:"-"`
}

// BeforeSave trims whitespace from all strings.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	return nil
}

// BeforeCreate verifies references to other resources and falls back to the
// reserved category when none is set.
func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	err := tx.First(&Partition{}, a.PartitionID).Error
	if err != nil {
		return err
	}

	if a.CategoryID == uuid.Nil {
		fallback, err := ReservedCategory(tx)
		if err != nil {
			return err
		}

		a.CategoryID = fallback.ID
		return nil
	}

	return tx.First(&Category{}, a.CategoryID).Error
}

// AllocationGroup is the summed target of the allocations sharing a
// category within one partition. It is derived for expense reports and
// never persisted.
type AllocationGroup struct {
	PartitionID uuid.UUID
	CategoryID  uuid.UUID
	Total       decimal.Decimal
	Category    Category `gorm:"-"`
}

// AllocationGroups sums allocation targets by (partition, category) for the
// given partitions and resolves the category of every group for display.
//
// Groups are ordered by partition and category ID so that reports over
// unchanged data are identical between calls.
func AllocationGroups(db *gorm.DB, partitionIDs []uuid.UUID) ([]AllocationGroup, error) {
	var groups []AllocationGroup

	err := db.
		Table("allocations").
		Select("allocations.partition_id, allocations.category_id, SUM(allocations.amount) AS total").
		Where("allocations.deleted_at IS NULL").
		Where("allocations.partition_id IN ?", partitionIDs).
		Group("allocations.partition_id").
		Group("allocations.category_id").
		Order("allocations.partition_id ASC, allocations.category_id ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		return groups, nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(groups))
	for _, group := range groups {
		categoryIDs = append(categoryIDs, group.CategoryID)
	}

	var categories []Category
	err = db.Where("id IN ?", categoryIDs).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	for i := range groups {
		groups[i].Category = byID[groups[i].CategoryID]
	}

	return groups, nil
}
