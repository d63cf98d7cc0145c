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

// RegisterPartitionRoutes registers the routes for partitions with
// the RouterGroup that is passed.
func RegisterPartitionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPartitionList)
		r.GET("", GetPartitions)
		r.POST("", CreatePartition)
	}

	// Partition with ID
	{
		r.OPTIONS("/:id", OptionsPartitionDetail)
		r.GET("/:id", GetPartition)
		r.PATCH("/:id", UpdatePartition)
		r.DELETE("/:id", DeletePartition)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Partitions
// @Success		204
// @Router			/v1/partitions [options]
func OptionsPartitionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Partitions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/partitions/{id} [options]
func OptionsPartitionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Partition{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create partition
// @Description	Creates a new partition
// @Tags			Partitions
// @Accept			json
// @Produce		json
// @Success		201			{object}	PartitionResponse
// @Failure		400			{object}	PartitionResponse
// @Failure		404			{object}	PartitionResponse
// @Failure		500			{object}	PartitionResponse
// @Param			partition	body		PartitionEditable	true	"Partition"
// @Router			/v1/partitions [post]
func CreatePartition(c *gin.Context) {
	var editable PartitionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	partition := editable.model()

	err = models.DB.Create(&partition).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, PartitionResponse{Data: &partition})
}

// @Summary		List partitions
// @Description	Returns a list of partitions
// @Tags			Partitions
// @Produce		json
// @Success		200	{object}	PartitionListResponse
// @Failure		400	{object}	PartitionListResponse
// @Failure		500	{object}	PartitionListResponse
// @Router			/v1/partitions [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first partition returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of partitions to return. Defaults to 50."
func GetPartitions(c *gin.Context) {
	var filter PartitionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Order("datetime(partitions.created_at) ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("partitions.name = ?", filter.Name)
	}

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(partitions.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var partitions []models.Partition
	err := q.Find(&partitions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PartitionListResponse{
		Data: partitions,
		Pagination: &Pagination{
			Count:  len(partitions),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get partition
// @Description	Returns a specific partition
// @Tags			Partitions
// @Produce		json
// @Success		200	{object}	PartitionResponse
// @Failure		400	{object}	PartitionResponse
// @Failure		404	{object}	PartitionResponse
// @Failure		500	{object}	PartitionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/partitions/{id} [get]
func GetPartition(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	var partition models.Partition
	err = models.DB.First(&partition, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PartitionResponse{Data: &partition})
}

// @Summary		Update partition
// @Description	Update an existing partition. Only values to be updated need to be specified.
// @Tags			Partitions
// @Accept			json
// @Produce		json
// @Success		200			{object}	PartitionResponse
// @Failure		400			{object}	PartitionResponse
// @Failure		404			{object}	PartitionResponse
// @Failure		500			{object}	PartitionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			partition	body		PartitionEditable	true	"Partition"
// @Router			/v1/partitions/{id} [patch]
func UpdatePartition(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	var partition models.Partition
	err = models.DB.First(&partition, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PartitionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	var data PartitionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	err = models.DB.Model(&partition).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartitionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PartitionResponse{Data: &partition})
}

// @Summary		Delete partition
// @Description	Deletes a partition and its allocations
// @Tags			Partitions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/partitions/{id} [delete]
func DeletePartition(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var partition models.Partition
	err = models.DB.First(&partition, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&partition).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
