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

// RegisterTagRoutes registers the routes for tags with
// the RouterGroup that is passed.
func RegisterTagRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTagList)
		r.GET("", GetTags)
		r.POST("", CreateTag)
	}

	// Tag with ID
	{
		r.OPTIONS("/:id", OptionsTagDetail)
		r.GET("/:id", GetTag)
		r.PATCH("/:id", UpdateTag)
		r.DELETE("/:id", DeleteTag)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tags
// @Success		204
// @Router			/v1/tags [options]
func OptionsTagList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tags
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [options]
func OptionsTagDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Tag{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create tag
// @Description	Creates a new tag
// @Tags			Tags
// @Accept			json
// @Produce		json
// @Success		201	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			tag	body		TagEditable	true	"Tag"
// @Router			/v1/tags [post]
func CreateTag(c *gin.Context) {
	var editable TagEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	tag := editable.model()

	err = models.DB.Create(&tag).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TagResponse{Data: &tag})
}

// @Summary		List tags
// @Description	Returns a list of tags
// @Tags			Tags
// @Produce		json
// @Success		200	{object}	TagListResponse
// @Failure		400	{object}	TagListResponse
// @Failure		500	{object}	TagListResponse
// @Router			/v1/tags [get]
// @Param			label	query	string	false	"Filter by label"
// @Param			search	query	string	false	"Search for this text in the label"
// @Param			offset	query	uint	false	"The offset of the first tag returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of tags to return. Defaults to 50."
func GetTags(c *gin.Context) {
	var filter TagQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("tags.label ASC")

	if slices.Contains(setFields, "Label") {
		q = q.Where("tags.label = ?", filter.Label)
	}

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(tags.label) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var tags []models.Tag
	err := q.Find(&tags).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TagListResponse{
		Data: tags,
		Pagination: &Pagination{
			Count:  len(tags),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tag
// @Description	Returns a specific tag
// @Tags			Tags
// @Produce		json
// @Success		200	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		404	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [get]
func GetTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TagResponse{Data: &tag})
}

// @Summary		Update tag
// @Description	Update an existing tag. Only values to be updated need to be specified.
// @Tags			Tags
// @Accept			json
// @Produce		json
// @Success		200	{object}	TagResponse
// @Failure		400	{object}	TagResponse
// @Failure		404	{object}	TagResponse
// @Failure		500	{object}	TagResponse
// @Param			id	path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tag	body		TagEditable	true	"Tag"
// @Router			/v1/tags/{id} [patch]
func UpdateTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TagEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	var data TagEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	err = models.DB.Model(&tag).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TagResponse{Data: &tag})
}

// @Summary		Delete tag
// @Description	Deletes a tag
// @Tags			Tags
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var tag models.Tag
	err = models.DB.First(&tag, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&tag).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
