package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/ltabis/thunes/internal/controllers/v1"
	"github.com/ltabis/thunes/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// expensesFixture is a budget with 2000 income, two allocations of 50 and
// 300 on the same category in the Needs partition, two transactions of 25
// and 200 in March 2024 and one of 30 in February 2024.
type expensesFixture struct {
	budget    v1.BudgetResponse
	category  v1.CategoryResponse
	partition uuid.UUID
}

func (suite *TestSuiteStandard) createExpensesFixture() expensesFixture {
	t := suite.T()

	account := createTestAccount(t, v1.AccountEditable{Currency: "EUR"})
	budget := createTestBudget(t, v1.BudgetEditable{
		Name:       "Household",
		Income:     decimal.NewFromInt(2000),
		Currency:   "EUR",
		AccountIDs: []uuid.UUID{account.Data.ID},
	})

	partitions := seededPartitions(t, budget.Data.ID)
	needs := partitions[0].ID

	category := createTestCategory(t, v1.CategoryEditable{Name: "transport", Icon: "transport"})

	_ = createTestAllocation(t, v1.AllocationEditable{
		Name:        "Fuel",
		Amount:      decimal.NewFromInt(50),
		CategoryID:  category.Data.ID,
		PartitionID: needs,
	})
	_ = createTestAllocation(t, v1.AllocationEditable{
		Name:        "Train",
		Amount:      decimal.NewFromInt(300),
		CategoryID:  category.Data.ID,
		PartitionID: needs,
	})

	_ = createTestTransaction(t, v1.TransactionEditable{
		Date:       time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(25),
		Direction:  v1.DirectionSpending,
		CategoryID: category.Data.ID,
		AccountID:  account.Data.ID,
	})
	_ = createTestTransaction(t, v1.TransactionEditable{
		Date:       time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(200),
		Direction:  v1.DirectionSpending,
		CategoryID: category.Data.ID,
		AccountID:  account.Data.ID,
	})
	_ = createTestTransaction(t, v1.TransactionEditable{
		Date:       time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(30),
		Direction:  v1.DirectionSpending,
		CategoryID: category.Data.ID,
		AccountID:  account.Data.ID,
	})

	return expensesFixture{budget: budget, category: category, partition: needs}
}

func (suite *TestSuiteStandard) TestBudgetExpensesMonthly() {
	t := suite.T()
	fixture := suite.createExpensesFixture()

	r := test.Request(t, http.MethodGet,
		"http://example.com/v1/budgets/"+fixture.budget.Data.ID.String()+"/expenses?period=monthly&anchor=2024-03-01T00:00:00Z", "")
	test.AssertHTTPStatus(t, http.StatusOK, &r)

	var response v1.ExpensesResponse
	test.DecodeResponse(t, &r, &response)

	report := response.Data
	assert.Equal(t, "2024-03-01T00:00:00Z", report.PeriodStart)
	assert.Equal(t, "2024-04-01T00:00:00Z", report.PeriodEnd)

	assert.True(t, report.Budget.IncomeTotal.Equal(decimal.NewFromInt(2000)), "IncomeTotal is %s", report.Budget.IncomeTotal)
	assert.True(t, report.Budget.AllocationsTotal.Equal(decimal.NewFromInt(350)), "AllocationsTotal is %s", report.Budget.AllocationsTotal)
	assert.True(t, report.Budget.TransactionsTotal.Equal(decimal.NewFromInt(-225)), "TransactionsTotal is %s", report.Budget.TransactionsTotal)

	assert.Len(t, report.Budget.Partitions, 3)

	needs := report.Budget.Partitions[0]
	assert.Equal(t, fixture.partition, needs.ID)
	assert.True(t, needs.AllocationsTotal.Equal(decimal.NewFromInt(350)))
	assert.True(t, needs.TransactionsTotal.Equal(decimal.NewFromInt(-225)))

	// The two allocations share the category, so they are one group
	assert.Len(t, needs.Allocations, 1)
	group := needs.Allocations[0]
	assert.Equal(t, fixture.category.Data.ID, group.Category.ID)
	assert.True(t, group.AllocationsTotal.Equal(decimal.NewFromInt(350)))
	assert.True(t, group.TransactionsTotal.Equal(decimal.NewFromInt(-225)))

	// Most recent first, the February transaction is outside the window
	assert.Len(t, group.Transactions, 2)
	assert.True(t, group.Transactions[0].Amount.Equal(decimal.NewFromInt(-200)))
	assert.True(t, group.Transactions[1].Amount.Equal(decimal.NewFromInt(-25)))

	// The partitions without allocations stay empty
	assert.Len(t, report.Budget.Partitions[1].Allocations, 0)
	assert.Len(t, report.Budget.Partitions[2].Allocations, 0)
}

func (suite *TestSuiteStandard) TestBudgetExpensesTrimestrial() {
	t := suite.T()
	fixture := suite.createExpensesFixture()

	r := test.Request(t, http.MethodGet,
		"http://example.com/v1/budgets/"+fixture.budget.Data.ID.String()+"/expenses?period=trimestrial&anchor=2024-03-01T00:00:00Z", "")
	test.AssertHTTPStatus(t, http.StatusOK, &r)

	var response v1.ExpensesResponse
	test.DecodeResponse(t, &r, &response)

	report := response.Data
	assert.Equal(t, "2024-03-01T00:00:00Z", report.PeriodStart)
	assert.Equal(t, "2024-06-01T00:00:00Z", report.PeriodEnd)

	// Monthly targets are scaled to the three month window
	assert.True(t, report.Budget.IncomeTotal.Equal(decimal.NewFromInt(6000)), "IncomeTotal is %s", report.Budget.IncomeTotal)
	assert.True(t, report.Budget.AllocationsTotal.Equal(decimal.NewFromInt(1050)), "AllocationsTotal is %s", report.Budget.AllocationsTotal)
	assert.True(t, report.Budget.TransactionsTotal.Equal(decimal.NewFromInt(-225)), "TransactionsTotal is %s", report.Budget.TransactionsTotal)
}

func (suite *TestSuiteStandard) TestBudgetExpensesDefaults() {
	t := suite.T()
	budget := createTestBudget(t, v1.BudgetEditable{})

	// Without query parameters the report is monthly, anchored on today
	r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets/"+budget.Data.ID.String()+"/expenses", "")
	test.AssertHTTPStatus(t, http.StatusOK, &r)

	var response v1.ExpensesResponse
	test.DecodeResponse(t, &r, &response)
	assert.Len(t, response.Data.Budget.Partitions, 3)
	assert.True(t, response.Data.Budget.TransactionsTotal.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetExpensesErrors() {
	t := suite.T()
	budget := createTestBudget(t, v1.BudgetEditable{})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Unknown budget", "/v1/budgets/" + uuid.New().String() + "/expenses", http.StatusNotFound},
		{"Invalid period", "/v1/budgets/" + budget.Data.ID.String() + "/expenses?period=weekly", http.StatusBadRequest},
		{"Invalid anchor", "/v1/budgets/" + budget.Data.ID.String() + "/expenses?anchor=notadate", http.StatusBadRequest},
		{"Impossible yearly window", "/v1/budgets/" + budget.Data.ID.String() + "/expenses?period=yearly&anchor=2024-02-29T00:00:00Z", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCategoryExpenses() {
	t := suite.T()
	fixture := suite.createExpensesFixture()

	r := test.Request(t, http.MethodGet,
		"http://example.com/v1/budgets/"+fixture.budget.Data.ID.String()+"/expenses/"+fixture.category.Data.ID.String()+"?anchor=2024-03-01T00:00:00Z", "")
	test.AssertHTTPStatus(t, http.StatusOK, &r)

	var response v1.CategoryExpensesResponse
	test.DecodeResponse(t, &r, &response)

	assert.Equal(t, fixture.category.Data.ID, response.Data.Category.ID)
	assert.Equal(t, "2024-03-01T00:00:00Z", response.Data.PeriodStart)
	assert.Len(t, response.Data.Transactions, 2)
	assert.True(t, response.Data.Transactions[0].Amount.Equal(decimal.NewFromInt(-200)))
}

func (suite *TestSuiteStandard) TestBudgetCategoryExpensesNotFound() {
	t := suite.T()
	budget := createTestBudget(t, v1.BudgetEditable{})

	r := test.Request(t, http.MethodGet,
		"http://example.com/v1/budgets/"+budget.Data.ID.String()+"/expenses/"+uuid.New().String(), "")
	test.AssertHTTPStatus(t, http.StatusNotFound, &r)
}
