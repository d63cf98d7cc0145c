package v1

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name     string              `json:"name" example:"transport" default:""` // Name of the category
	Icon     models.CategoryIcon `json:"icon" example:"car" default:"other"`  // Icon the category is rendered with
	Color    string              `json:"color" example:"#ff9800" default:""`  // Display color
	ParentID *uuid.UUID          `json:"parentId"`                            // ID of the parent category, if any
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:     editable.Name,
		Icon:     editable.Icon,
		Color:    editable.Color,
		ParentID: editable.ParentID,
	}
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                          // Data for the category
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data       []models.Category `json:"data"`                                                          // List of categories
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type CategoryQueryFilter struct {
	Name     string       `form:"name" filterField:"false"`   // By name
	ParentID tt_uuid.UUID `form:"parent"`                     // By ID of the parent category
	Search   string       `form:"search" filterField:"false"` // By string in the name
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	var parentID *uuid.UUID
	if f.ParentID.UUID != uuid.Nil {
		parentID = &f.ParentID.UUID
	}

	return models.Category{
		ParentID: parentID,
	}
}
