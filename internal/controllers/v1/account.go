package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/httperror"
	"github.com/ltabis/thunes/internal/httputil"
	"github.com/ltabis/thunes/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.PATCH("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}

	// Computations over the account's transactions
	{
		r.OPTIONS("/:id/balance", httputil.OptionsGet)
		r.GET("/:id/balance", GetAccountBalance)
		r.OPTIONS("/:id/transactions", httputil.OptionsGet)
		r.GET("/:id/transactions", GetAccountTransactions)
	}

	// Persisted default transaction filter
	{
		r.OPTIONS("/:id/filter", OptionsAccountFilter)
		r.GET("/:id/filter", GetAccountFilter)
		r.PUT("/:id/filter", PutAccountFilter)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Account{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/filter [options]
func OptionsAccountFilter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Account{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var editable AccountEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	account := editable.model()

	err = models.DB.Create(&account).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: &account})
}

// @Summary		List accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		400	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first account returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of accounts to return. Defaults to 50."
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Order("accounts.name ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("accounts.name = ?", filter.Name)
	}

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(accounts.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AccountListResponse{
		Data: accounts,
		Pagination: &Pagination{
			Count:  len(accounts),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &account})
}

// @Summary		Update account
// @Description	Update an existing account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &account})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Account balance
// @Description	Sums the signed amounts of the account's transactions, optionally bounded by exclusive dates and a tag
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	BalanceResponse
// @Failure		400		{object}	BalanceResponse
// @Failure		404		{object}	BalanceResponse
// @Failure		500		{object}	BalanceResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			after	query		string	false	"Only transactions strictly after this RFC 3339 date-time"
// @Param			before	query		string	false	"Only transactions strictly before this RFC 3339 date-time"
// @Param			tag		query		string	false	"Only transactions carrying this tag"
// @Router			/v1/accounts/{id}/balance [get]
func GetAccountBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BalanceResponse{Error: &s})
		return
	}

	var query BalanceQuery
	err = c.ShouldBind(&query)
	if err != nil {
		s := errAnchorParameter.Error()
		c.JSON(http.StatusBadRequest, BalanceResponse{Error: &s})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BalanceResponse{Error: &s})
		return
	}

	balance, err := account.Balance(models.DB, query.options())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BalanceResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Data: &Balance{Balance: balance}})
}

// @Summary		List account transactions
// @Description	Lists the account's transactions. Without any query parameter the account's persisted default filter applies.
// @Tags			Accounts
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		404			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			search		query		string	false	"Case-insensitive substring of the description"
// @Param			category	query		string	false	"Only transactions of this category ID"
// @Param			fromDate	query		string	false	"Start of the window, inclusive (RFC 3339)"
// @Param			untilDate	query		string	false	"End of the window, inclusive (RFC 3339)"
// @Param			lastXDays	query		int		false	"Window of the last N days up to now, overrides fromDate and untilDate"
// @Router			/v1/accounts/{id}/transactions [get]
func GetAccountTransactions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	var query TransactionFilterQuery
	err = c.ShouldBind(&query)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	filter := query.filter()

	// Without an explicit filter the account's persisted default applies.
	// An account that has neither responds with not found.
	if filter.IsZero() {
		filter, err = account.DefaultFilter(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionListResponse{Error: &s})
			return
		}
	}

	transactions, err := filter.Transactions(models.DB, []uuid.UUID{account.ID})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Get default filter
// @Description	Returns the account's persisted default transaction filter
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountFilterResponse
// @Failure		400	{object}	AccountFilterResponse
// @Failure		404	{object}	AccountFilterResponse
// @Failure		500	{object}	AccountFilterResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/filter [get]
func GetAccountFilter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountFilterResponse{Error: &s})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountFilterResponse{Error: &s})
		return
	}

	var filter models.AccountFilter
	err = models.DB.Where(&models.AccountFilter{AccountID: account.ID}).First(&filter).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountFilterResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AccountFilterResponse{Data: &filter})
}

// @Summary		Set default filter
// @Description	Creates or replaces the account's persisted default transaction filter
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountFilterResponse
// @Failure		400		{object}	AccountFilterResponse
// @Failure		404		{object}	AccountFilterResponse
// @Failure		500		{object}	AccountFilterResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			filter	body		AccountFilterEditable	true	"Filter"
// @Router			/v1/accounts/{id}/filter [put]
func PutAccountFilter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountFilterResponse{Error: &s})
		return
	}

	var account models.Account
	err = models.DB.First(&account, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountFilterResponse{Error: &s})
		return
	}

	var editable AccountFilterEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountFilterResponse{Error: &s})
		return
	}

	data := editable.model()
	data.AccountID = account.ID

	var filter models.AccountFilter
	err = models.DB.Where(&models.AccountFilter{AccountID: account.ID}).First(&filter).Error
	if err == nil {
		// PUT semantics: the stored filter is replaced, not merged
		err = models.DB.Model(&filter).Select("Search", "CategoryID", "FromDate", "UntilDate", "LastXDays").Updates(data).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AccountFilterResponse{Error: &s})
			return
		}

		err = models.DB.First(&filter, filter.ID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AccountFilterResponse{Error: &s})
			return
		}
	} else {
		filter = data
		err = models.DB.Create(&filter).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AccountFilterResponse{Error: &s})
			return
		}
	}

	c.JSON(http.StatusOK, AccountFilterResponse{Data: &filter})
}
