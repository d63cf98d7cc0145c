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

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Transaction{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction. The amount is a positive nominal value, the direction fixes the stored sign.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction, err := editable.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	for _, id := range editable.TagIDs {
		var tag models.Tag
		err = models.DB.First(&tag, id).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}

		transaction.Tags = append(transaction.Tags, tag)
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		List transactions
// @Description	Returns a list of transactions, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			search		query	string	false	"Search for this text in the description"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Preload("Tags").
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(transactions.description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err = models.DB.Preload("Tags").First(&transaction, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Update an existing transaction. Changing the amount requires the direction to be set as well.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	// An amount update re-runs the sign enforcement, so it needs the
	// direction. The direction alone never reaches the database.
	updated := transaction
	if slices.Contains(updateFields, any("Amount")) {
		signed, err := data.model()
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}

		updated.Amount = signed.Amount
	}

	if i := slices.Index(updateFields, any("Direction")); i >= 0 {
		updateFields = slices.Delete(updateFields, i, i+1)
	}

	if i := slices.Index(updateFields, any("TagIDs")); i >= 0 {
		updateFields = slices.Delete(updateFields, i, i+1)

		tags := make([]models.Tag, 0, len(data.TagIDs))
		for _, id := range data.TagIDs {
			var tag models.Tag
			err = models.DB.First(&tag, id).Error
			if err != nil {
				s := err.Error()
				c.JSON(status(err), TransactionResponse{Error: &s})
				return
			}

			tags = append(tags, tag)
		}

		err = models.DB.Model(&transaction).Association("Tags").Replace(tags)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}
	}

	values := models.Transaction{
		Date:        data.Date,
		Amount:      updated.Amount,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		AccountID:   data.AccountID,
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(values).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	err = models.DB.Preload("Tags").First(&transaction, transaction.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
