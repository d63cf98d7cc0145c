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

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Category{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	category := editable.model()

	err = models.DB.Create(&category).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		List categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			parent	query	string	false	"Filter by parent category ID"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Order("categories.name ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("categories.name = ?", filter.Name)
	}

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(categories.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: categories,
		Pagination: &Pagination{
			Count:  len(categories),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	// The reserved fallback category is fixed
	if category.Name == models.ReservedCategoryName {
		s := models.ErrCategoryIsReserved.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	if data.ParentID != nil && *data.ParentID == category.ID {
		s := models.ErrCategoryOwnParent.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &s})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category. The reserved fallback category cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if category.Name == models.ReservedCategoryName {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrCategoryIsReserved))
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
