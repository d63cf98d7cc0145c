package v1

import (
	"time"

	"github.com/ltabis/thunes/internal/types"
	tt_uuid "github.com/ltabis/thunes/internal/uuid"
)

type URIID struct {
	ID tt_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URICategoryID struct {
	ID         tt_uuid.UUID `uri:"id" binding:"required"`         // The ID of the budget
	CategoryID tt_uuid.UUID `uri:"categoryId" binding:"required"` // The ID of the category
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// PeriodQuery are the query parameters shared by the report endpoints. The
// anchor defaults to the time of the request, the period to monthly.
type PeriodQuery struct {
	Period string    `form:"period" example:"monthly"`
	Anchor time.Time `form:"anchor" time_format:"2006-01-02T15:04:05Z07:00" example:"2024-03-01T00:00:00Z"`
}

func (q PeriodQuery) values() (types.Period, time.Time, error) {
	period := types.PeriodMonthly
	if q.Period != "" {
		var err error
		period, err = types.ParsePeriod(q.Period)
		if err != nil {
			return "", time.Time{}, err
		}
	}

	anchor := q.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}

	return period, anchor, nil
}
