package models_test

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationUnknownPartition() {
	err := models.DB.Create(&models.Allocation{Name: "Rent", PartitionID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestAllocationCategoryFallback verifies that an allocation without a
// category is assigned the reserved one.
func (suite *TestSuiteStandard) TestAllocationCategoryFallback() {
	partition := suite.createTestPartition(models.Partition{Name: "Needs"})

	allocation := suite.createTestAllocation(models.Allocation{
		Name:        "Misc",
		Amount:      decimal.NewFromInt(100),
		PartitionID: partition.ID,
	})

	fallback, err := models.ReservedCategory(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), fallback.ID, allocation.CategoryID)
}

func (suite *TestSuiteStandard) TestAllocationUnknownCategory() {
	partition := suite.createTestPartition(models.Partition{Name: "Needs"})

	err := models.DB.Create(&models.Allocation{
		Name:        "Rent",
		PartitionID: partition.ID,
		CategoryID:  uuid.New(),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestAllocationGroups verifies grouping by (partition, category): same
// category sums within a partition, but never across partitions.
func (suite *TestSuiteStandard) TestAllocationGroups() {
	budget := suite.createTestBudget(models.Budget{Name: "Main"}, models.Account{})
	needs := suite.createTestPartition(models.Partition{Name: "Needs", BudgetID: budget.ID})
	wants := suite.createTestPartition(models.Partition{Name: "Wants", BudgetID: budget.ID})

	transport := suite.createTestCategory(models.Category{Name: "transport"})

	suite.createTestAllocation(models.Allocation{Name: "Fuel", Amount: decimal.NewFromInt(50), CategoryID: transport.ID, PartitionID: needs.ID})
	suite.createTestAllocation(models.Allocation{Name: "Car", Amount: decimal.NewFromInt(300), CategoryID: transport.ID, PartitionID: needs.ID})
	suite.createTestAllocation(models.Allocation{Name: "Trips", Amount: decimal.NewFromInt(75), CategoryID: transport.ID, PartitionID: wants.ID})

	groups, err := models.AllocationGroups(models.DB, []uuid.UUID{needs.ID, wants.ID})
	assert.Nil(suite.T(), err)

	if !assert.Len(suite.T(), groups, 2) {
		return
	}

	totals := make(map[uuid.UUID]decimal.Decimal, 2)
	for _, group := range groups {
		assert.Equal(suite.T(), transport.ID, group.CategoryID)
		assert.Equal(suite.T(), transport.ID, group.Category.ID, "the group category must be resolved")
		totals[group.PartitionID] = group.Total
	}

	assert.True(suite.T(), totals[needs.ID].Equal(decimal.NewFromInt(350)))
	assert.True(suite.T(), totals[wants.ID].Equal(decimal.NewFromInt(75)))
}

// TestAllocationGroupsIgnoresDeleted verifies that soft-deleted allocations
// do not contribute to group totals.
func (suite *TestSuiteStandard) TestAllocationGroupsIgnoresDeleted() {
	partition := suite.createTestPartition(models.Partition{Name: "Needs"})
	transport := suite.createTestCategory(models.Category{Name: "transport"})

	kept := suite.createTestAllocation(models.Allocation{Name: "Fuel", Amount: decimal.NewFromInt(50), CategoryID: transport.ID, PartitionID: partition.ID})
	deleted := suite.createTestAllocation(models.Allocation{Name: "Car", Amount: decimal.NewFromInt(300), CategoryID: transport.ID, PartitionID: partition.ID})

	err := models.DB.Delete(&deleted).Error
	assert.Nil(suite.T(), err)

	groups, err := models.AllocationGroups(models.DB, []uuid.UUID{partition.ID})
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), groups, 1) {
		assert.True(suite.T(), groups[0].Total.Equal(kept.Amount))
	}
}

func (suite *TestSuiteStandard) TestAllocationGroupsEmpty() {
	groups, err := models.AllocationGroups(models.DB, []uuid.UUID{})
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), groups)
}
