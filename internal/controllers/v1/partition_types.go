package v1

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
)

// PartitionEditable represents all user configurable parameters
type PartitionEditable struct {
	Name     string    `json:"name" example:"Needs" default:""`                         // Name of the partition
	Color    string    `json:"color" example:"#2196f3" default:""`                      // Display color
	BudgetID uuid.UUID `json:"budgetId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the budget the partition belongs to
}

func (editable PartitionEditable) model() models.Partition {
	return models.Partition{
		Name:     editable.Name,
		Color:    editable.Color,
		BudgetID: editable.BudgetID,
	}
}

type PartitionResponse struct {
	Data  *models.Partition `json:"data"`                                                          // Data for the partition
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PartitionListResponse struct {
	Data       []models.Partition `json:"data"`                                                          // List of partitions
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type PartitionQueryFilter struct {
	BudgetID tt_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	Search   string       `form:"search" filterField:"false"` // By string in the name
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first partition returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of partitions to return. Defaults to 50.
}

func (f PartitionQueryFilter) model() models.Partition {
	return models.Partition{
		BudgetID: f.BudgetID.UUID,
	}
}
