package models_test

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPartitionUnknownBudget() {
	err := models.DB.Create(&models.Partition{Name: "Needs", BudgetID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestPartitionDeleteCascades verifies that deleting a partition also
// deletes its allocations.
func (suite *TestSuiteStandard) TestPartitionDeleteCascades() {
	partition := suite.createTestPartition(models.Partition{Name: "Needs"})
	category := suite.createTestCategory(models.Category{Name: "housing"})

	allocation := suite.createTestAllocation(models.Allocation{
		Name:        "Rent",
		Amount:      decimal.NewFromInt(800),
		CategoryID:  category.ID,
		PartitionID: partition.ID,
	})

	err := models.DB.Delete(&partition).Error
	assert.Nil(suite.T(), err)

	err = models.DB.First(&models.Allocation{}, allocation.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
