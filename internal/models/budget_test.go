package models_test

import (
	"github.com/ltabis/thunes/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{Name: " Main ", Currency: " EUR "}, models.Account{})

	assert.Equal(suite.T(), "Main", budget.Name)
	assert.Equal(suite.T(), "EUR", budget.Currency)
}

func (suite *TestSuiteStandard) TestBudgetAccountIDs() {
	budget := suite.createTestBudget(models.Budget{Name: "Main"},
		models.Account{Name: "Checking"}, models.Account{Name: "Savings"})

	ids := budget.AccountIDs()
	assert.Len(suite.T(), ids, 2)
	assert.Contains(suite.T(), ids, budget.Accounts[0].ID)
	assert.Contains(suite.T(), ids, budget.Accounts[1].ID)
}

func (suite *TestSuiteStandard) TestBudgetSeedPartitions() {
	budget := suite.createTestBudget(models.Budget{Name: "Main"}, models.Account{})

	partitions, err := budget.CreateSeedPartitions(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), partitions, 3) {
		assert.Equal(suite.T(), "Needs", partitions[0].Name)
		assert.Equal(suite.T(), "Wants", partitions[1].Name)
		assert.Equal(suite.T(), "Investments", partitions[2].Name)
	}

	var count int64
	err = models.DB.Model(&models.Partition{}).Where("budget_id = ?", budget.ID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(3), count)
}

func (suite *TestSuiteStandard) TestBudgetAccountsPreload() {
	budget := suite.createTestBudget(models.Budget{Name: "Main"}, models.Account{Name: "Checking"})

	var reloaded models.Budget
	err := models.DB.Preload("Accounts").First(&reloaded, budget.ID).Error
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), reloaded.Accounts, 1) {
		assert.Equal(suite.T(), "Checking", reloaded.Accounts[0].Name)
	}
}
