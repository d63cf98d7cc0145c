package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ltabis/thunes/internal/httperror"
	"github.com/ltabis/thunes/internal/httputil"
	"github.com/ltabis/thunes/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocation)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.PATCH("/:id", UpdateAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Allocation{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocation
// @Description	Creates a new allocation
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	// Targets are denominated as positive monthly amounts
	if !editable.Amount.IsPositive() {
		s := models.ErrAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &s})
		return
	}

	allocation := editable.model()

	err = models.DB.Create(&allocation).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, AllocationResponse{Data: &allocation})
}

// @Summary		List allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			partition	query	string	false	"Filter by partition ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first allocation returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Order("allocations.name ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("allocations.name = ?", filter.Name)
	}

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(allocations.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: allocations,
		Pagination: &Pagination{
			Count:  len(allocations),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &allocation})
}

// @Summary		Update allocation
// @Description	Update an existing allocation. Only values to be updated need to be specified.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func UpdateAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	var data AllocationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	if slices.Contains(updateFields, any("Amount")) && !data.Amount.IsPositive() {
		s := models.ErrAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{Error: &s})
		return
	}

	err = models.DB.Model(&allocation).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &allocation})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
