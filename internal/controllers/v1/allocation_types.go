package v1

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
	"github.com/shopspring/decimal"
)

// AllocationEditable represents all user configurable parameters
type AllocationEditable struct {
	Name        string          `json:"name" example:"Fuel" default:""`                              // Name of the allocation
	Amount      decimal.Decimal `json:"amount" example:"50" default:"0"`                             // Monthly target amount, must be positive
	CategoryID  uuid.UUID       `json:"categoryId" example:"65392deb-5e92-4268-b114-297faad6cdce"`   // ID of the category, the reserved category when empty
	PartitionID uuid.UUID       `json:"partitionId" example:"43f03a9a-da08-4e4f-978d-c52b272f1a27"` // ID of the partition the allocation belongs to
}

func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		Name:        editable.Name,
		Amount:      editable.Amount,
		CategoryID:  editable.CategoryID,
		PartitionID: editable.PartitionID,
	}
}

type AllocationResponse struct {
	Data  *models.Allocation `json:"data"`                                                          // Data for the allocation
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationListResponse struct {
	Data       []models.Allocation `json:"data"`                                                          // List of allocations
	Error      *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination         `json:"pagination"`                                                    // Pagination information
}

type AllocationQueryFilter struct {
	PartitionID tt_uuid.UUID `form:"partition"`                  // By ID of the partition
	CategoryID  tt_uuid.UUID `form:"category"`                   // By ID of the category
	Name        string       `form:"name" filterField:"false"`   // By name
	Search      string       `form:"search" filterField:"false"` // By string in the name
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first allocation returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.Allocation {
	return models.Allocation{
		PartitionID: f.PartitionID.UUID,
		CategoryID:  f.CategoryID.UUID,
	}
}
