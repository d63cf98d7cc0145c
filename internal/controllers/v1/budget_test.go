package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ltabis/thunes/internal/controllers/v1"
	"github.com/ltabis/thunes/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestBudgetOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetOptions() {
	tests := []struct {
		name   string
		id     string // path at the /v1/budgets endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/budgets", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, tt.status, &r)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestBudgetCreate verifies that budget creation seeds the partition triad.
func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		Name:     "Household",
		Income:   decimal.NewFromInt(2000),
		Currency: "EUR",
	})

	assert.Equal(suite.T(), "Household", budget.Data.Name)
	assert.True(suite.T(), budget.Data.Income.Equal(decimal.NewFromInt(2000)))
	assert.Len(suite.T(), budget.Data.Accounts, 1)

	partitions := seededPartitions(suite.T(), budget.Data.ID)
	assert.Equal(suite.T(), "Needs", partitions[0].Name)
	assert.Equal(suite.T(), "Wants", partitions[1].Name)
	assert.Equal(suite.T(), "Investments", partitions[2].Name)
}

// TestBudgetCreateNoAccounts verifies that a budget needs at least one account.
func (suite *TestSuiteStandard) TestBudgetCreateNoAccounts() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{Name: "Empty scope"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

// TestBudgetCreateUnknownAccount verifies that an unknown account ID fails the creation.
func (suite *TestSuiteStandard) TestBudgetCreateUnknownAccount() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Name:       "Unknown scope",
		AccountIDs: []uuid.UUID{uuid.New()},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestBudgetGetSingle() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing budget", budget.Data.ID.String(), http.StatusOK},
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets/"+tt.id, "")
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetGetFiltered() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Groceries", Currency: "EUR", AccountIDs: []uuid.UUID{account.Data.ID}})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Vacation", Currency: "USD"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By name", "name=Groceries", 1},
		{"By currency", "currency=USD", 1},
		{"By account", "account=" + account.Data.ID.String(), 1},
		{"By search", "search=cati", 1},
		{"No match", "name=Nonexisting", 0},
		{"All", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.count, response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Before", Income: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+budget.Data.ID.String(), map[string]any{
		"name":   "After",
		"income": 2500,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "After", response.Data.Name)
	assert.True(suite.T(), response.Data.Income.Equal(decimal.NewFromInt(2500)))
}

// TestBudgetUpdateAccounts verifies that updating the account IDs replaces
// the budget's scope.
func (suite *TestSuiteStandard) TestBudgetUpdateAccounts() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	replacement := createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+budget.Data.ID.String(), map[string]any{
		"accountIds": []string{replacement.Data.ID.String()},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Accounts, 1)
	assert.Equal(suite.T(), replacement.Data.ID, response.Data.Accounts[0].ID)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/"+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
