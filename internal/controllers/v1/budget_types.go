package v1

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name       string          `json:"name" example:"Household" default:""`                // Name of the budget
	Income     decimal.Decimal `json:"income" example:"2000" default:"0"`                  // Monthly income
	Currency   string          `json:"currency" example:"EUR" default:""`                  // Currency the income is denominated in
	AccountIDs []uuid.UUID     `json:"accountIds"` // IDs of the accounts in the budget's scope
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Income:   editable.Income,
		Currency: editable.Currency,
	}
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`                                                          // Data for the budget
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []models.Budget `json:"data"`                                                          // List of budgets
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type ExpensesResponse struct {
	Data  *models.ExpensesReport `json:"data"`                                                       // The expense report
	Error *string                `json:"error" example:"the period end does not exist for this anchor date"` // The error, if any occurred
}

type CategoryExpensesResponse struct {
	Data  *models.CategoryExpenses `json:"data"`                                                     // The transactions of one category within the window
	Error *string                  `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name     string       `form:"name" filterField:"false"`   // By name
	Currency string       `form:"currency"`                   // By currency
	Account  tt_uuid.UUID `form:"account" filterField:"false"` // By ID of an account in the scope
	Search   string       `form:"search" filterField:"false"` // By string in the name
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
	}
}
