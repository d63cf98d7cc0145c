package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
	"github.com/shopspring/decimal"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name     string `json:"name" example:"Checking" default:""` // Name of the account
	Currency string `json:"currency" example:"EUR" default:""`  // Currency of the account
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:     editable.Name,
		Currency: editable.Currency,
	}
}

type AccountResponse struct {
	Data  *models.Account `json:"data"`                                                          // Data for the account
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountListResponse struct {
	Data       []models.Account `json:"data"`                                                          // List of accounts
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type AccountQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Currency string `form:"currency"`                   // By currency
	Search   string `form:"search" filterField:"false"` // By string in the name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Currency: f.Currency,
	}
}

// Balance is the signed sum of the transactions the query matched.
type Balance struct {
	Balance decimal.Decimal `json:"balance" example:"1950.01"`
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`                                                   // The computed balance
	Error *string  `json:"error" example:"there is no account matching your query"` // The error, if any occurred
}

// BalanceQuery are the optional bounds and tag for a balance computation.
// Both bounds are exclusive.
type BalanceQuery struct {
	After  time.Time `form:"after" time_format:"2006-01-02T15:04:05Z07:00" example:"2024-03-01T00:00:00Z"`
	Before time.Time `form:"before" time_format:"2006-01-02T15:04:05Z07:00" example:"2024-04-01T00:00:00Z"`
	Tag    string    `form:"tag" example:"vacation"`
}

func (q BalanceQuery) options() models.BalanceOptions {
	options := models.BalanceOptions{
		Tag: q.Tag,
	}

	if !q.After.IsZero() {
		after := q.After
		options.PeriodStart = &after
	}

	if !q.Before.IsZero() {
		before := q.Before
		options.PeriodEnd = &before
	}

	return options
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`                                                          // List of transactions
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// TransactionFilterQuery mirrors models.TransactionFilter for query binding.
// When no parameter is set at all, the listing falls back to the account's
// persisted default filter.
type TransactionFilterQuery struct {
	Search     string       `form:"search" example:"rent"`
	CategoryID tt_uuid.UUID `form:"category"`
	FromDate   time.Time    `form:"fromDate" time_format:"2006-01-02T15:04:05Z07:00"`
	UntilDate  time.Time    `form:"untilDate" time_format:"2006-01-02T15:04:05Z07:00"`
	LastXDays  int          `form:"lastXDays" example:"30"`
}

func (q TransactionFilterQuery) filter() models.TransactionFilter {
	return models.TransactionFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID.UUID,
		From:       q.FromDate,
		Until:      q.UntilDate,
		LastXDays:  q.LastXDays,
	}
}

// AccountFilterEditable represents the user configurable parameters of the
// persisted default transaction filter of an account.
type AccountFilterEditable struct {
	Search     string     `json:"search" example:"rent" default:""`
	CategoryID *uuid.UUID `json:"categoryId"`
	FromDate   *time.Time `json:"fromDate"`
	UntilDate  *time.Time `json:"untilDate"`
	LastXDays  int        `json:"lastXDays" example:"30" default:"0"`
}

func (editable AccountFilterEditable) model() models.AccountFilter {
	return models.AccountFilter{
		Search:     editable.Search,
		CategoryID: editable.CategoryID,
		FromDate:   editable.FromDate,
		UntilDate:  editable.UntilDate,
		LastXDays:  editable.LastXDays,
	}
}

type AccountFilterResponse struct {
	Data  *models.AccountFilter `json:"data"`                                                          // The persisted default filter
	Error *string               `json:"error" example:"there is no account filter matching your query"` // The error, if any occurred
}
