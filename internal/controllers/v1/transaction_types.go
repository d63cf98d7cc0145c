package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDirection fixes the sign of the stored amount: income is
// stored positive, spending negative. The API always takes a positive
// nominal amount together with a direction.
type TransactionDirection string

const (
	DirectionIncome   TransactionDirection = "income"
	DirectionSpending TransactionDirection = "spending"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date        time.Time            `json:"date" example:"2024-03-20T09:30:00Z"`                       // Date of the transaction, defaults to the creation time
	Amount      decimal.Decimal      `json:"amount" example:"25" default:"0"`                           // Positive nominal amount
	Direction   TransactionDirection `json:"direction" example:"spending"`                              // income or spending
	Description string               `json:"description" example:"Fuel" default:""`                     // Free-form description
	CategoryID  uuid.UUID            `json:"categoryId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the category, the reserved category when empty
	AccountID   uuid.UUID            `json:"accountId" example:"d070dcf7-e1af-4f6c-b8a1-4e2f2bba1a27"`  // ID of the account the transaction is recorded on
	TagIDs      []uuid.UUID          `json:"tagIds"`                                                    // IDs of the tags attached to the transaction
}

// model converts the editable into a transaction with the signed amount.
func (editable TransactionEditable) model() (models.Transaction, error) {
	if !editable.Amount.IsPositive() {
		return models.Transaction{}, models.ErrAmountNotPositive
	}

	amount := editable.Amount
	switch editable.Direction {
	case DirectionIncome:
	case DirectionSpending:
		amount = amount.Neg()
	default:
		return models.Transaction{}, models.ErrDirectionInvalid
	}

	return models.Transaction{
		Date:        editable.Date,
		Amount:      amount,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
		AccountID:   editable.AccountID,
	}, nil
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                                          // Data for the transaction
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	AccountID  tt_uuid.UUID `form:"account"`                    // By ID of the account
	CategoryID tt_uuid.UUID `form:"category"`                   // By ID of the category
	Search     string       `form:"search" filterField:"false"` // By string in the description
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		AccountID:  f.AccountID.UUID,
		CategoryID: f.CategoryID.UUID,
	}
}
