package models_test

import (
	"time"

	"github.com/ltabis/thunes/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{Name: " Checking  ", Currency: " EUR "})

	assert.Equal(suite.T(), "Checking", account.Name)
	assert.Equal(suite.T(), "EUR", account.Currency)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.Account{Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestBalance() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	category := suite.createTestCategory(models.Category{Name: "salary"})

	suite.createTestTransaction(models.Transaction{
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(2000),
		CategoryID: category.ID,
		AccountID:  account.ID,
	})
	suite.createTestTransaction(models.Transaction{
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-49.99),
		CategoryID: category.ID,
		AccountID:  account.ID,
	})

	balance, err := account.Balance(models.DB, models.BalanceOptions{})
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(1950.01)), "balance is wrong: %s", balance)
}

// TestBalanceBounds verifies that both date bounds are exclusive: a
// transaction dated exactly on a bound is not counted.
func (suite *TestSuiteStandard) TestBalanceBounds() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	category := suite.createTestCategory(models.Category{Name: "salary"})

	first := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	third := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	for _, date := range []time.Time{first, second, third} {
		suite.createTestTransaction(models.Transaction{
			Date:       date,
			Amount:     decimal.NewFromInt(10),
			CategoryID: category.ID,
			AccountID:  account.ID,
		})
	}

	balance, err := account.Balance(models.DB, models.BalanceOptions{
		PeriodStart: &first,
		PeriodEnd:   &third,
	})
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(10)), "balance is wrong: %s", balance)
}

func (suite *TestSuiteStandard) TestBalanceTag() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	category := suite.createTestCategory(models.Category{Name: "travel"})
	vacation := suite.createTestTag(models.Tag{Label: "vacation"})

	suite.createTestTransaction(models.Transaction{
		Date:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-300),
		CategoryID: category.ID,
		AccountID:  account.ID,
		Tags:       []models.Tag{vacation},
	})
	suite.createTestTransaction(models.Transaction{
		Date:       time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-40),
		CategoryID: category.ID,
		AccountID:  account.ID,
	})

	balance, err := account.Balance(models.DB, models.BalanceOptions{Tag: "vacation"})
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(-300)), "balance is wrong: %s", balance)
}

// TestBalanceNoMatch verifies that a balance without any matching
// transaction is zero, not an error.
func (suite *TestSuiteStandard) TestBalanceNoMatch() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	balance, err := account.Balance(models.DB, models.BalanceOptions{Tag: "no-such-tag"})
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.IsZero())
}

func (suite *TestSuiteStandard) TestDefaultFilterNotFound() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	_, err := account.DefaultFilter(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDefaultFilter() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.AccountFilter{
		AccountID: account.ID,
		Search:    "rent",
		LastXDays: 30,
	}).Error
	assert.Nil(suite.T(), err)

	filter, err := account.DefaultFilter(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "rent", filter.Search)
	assert.Equal(suite.T(), 30, filter.LastXDays)
}

func (suite *TestSuiteStandard) TestAccountFilterUnique() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.AccountFilter{AccountID: account.ID}).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Create(&models.AccountFilter{AccountID: account.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountFilterExists)
}
