package v1

import (
	"github.com/ltabis/thunes/internal/models"
)

// TagEditable represents all user configurable parameters
type TagEditable struct {
	Label string `json:"label" example:"vacation" default:""` // Label of the tag, unique
	Color string `json:"color" example:"#4caf50" default:""`  // Display color
}

func (editable TagEditable) model() models.Tag {
	return models.Tag{
		Label: editable.Label,
		Color: editable.Color,
	}
}

type TagResponse struct {
	Data  *models.Tag `json:"data"`                                                          // Data for the tag
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TagListResponse struct {
	Data       []models.Tag `json:"data"`                                                          // List of tags
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type TagQueryFilter struct {
	Label  string `form:"label" filterField:"false"`  // By label
	Search string `form:"search" filterField:"false"` // By string in the label
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first tag returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of tags to return. Defaults to 50.
}
