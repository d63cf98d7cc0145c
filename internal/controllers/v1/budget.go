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

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}

	// Expense reports
	{
		r.OPTIONS("/:id/expenses", httputil.OptionsGet)
		r.GET("/:id/expenses", GetBudgetExpenses)
		r.OPTIONS("/:id/expenses/:categoryId", httputil.OptionsGet)
		r.GET("/:id/expenses/:categoryId", GetBudgetCategoryExpenses)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget with the Needs/Wants/Investments partitions
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	if len(editable.AccountIDs) == 0 {
		s := models.ErrBudgetNeedsAccounts.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget := editable.model()

	// Resolve the scope one account at a time so an unknown ID surfaces
	// as a not found error instead of silently shrinking the scope
	for _, id := range editable.AccountIDs {
		var account models.Account
		err = models.DB.First(&account, id).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetResponse{Error: &s})
			return
		}

		budget.Accounts = append(budget.Accounts, account)
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	_, err = budget.CreateSeedPartitions(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// @Summary		List budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			account		query	string	false	"Filter by ID of an account in the scope"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Preload("Accounts").
		Order("budgets.name ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("budgets.name = ?", filter.Name)
	}

	if slices.Contains(setFields, "Search") {
		q = q.Where("LOWER(budgets.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	if slices.Contains(setFields, "Account") {
		q = q.
			Joins("JOIN budget_accounts ON budget_accounts.budget_id = budgets.id").
			Where("budget_accounts.account_id = ?", filter.Account.UUID)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.Budget
	err := q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: budgets,
		Pagination: &Pagination{
			Count:  len(budgets),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var budget models.Budget
	err = models.DB.Preload("Accounts").First(&budget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	// The account scope is an association, not a column, so it is updated
	// separately from the plain fields
	if i := slices.Index(updateFields, any("AccountIDs")); i >= 0 {
		updateFields = slices.Delete(updateFields, i, i+1)

		accounts := make([]models.Account, 0, len(data.AccountIDs))
		for _, id := range data.AccountIDs {
			var account models.Account
			err = models.DB.First(&account, id).Error
			if err != nil {
				s := err.Error()
				c.JSON(status(err), BudgetResponse{Error: &s})
				return
			}

			accounts = append(accounts, account)
		}

		err = models.DB.Model(&budget).Association("Accounts").Replace(accounts)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetResponse{Error: &s})
			return
		}
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetResponse{Error: &s})
			return
		}
	}

	err = models.DB.Preload("Accounts").First(&budget, budget.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Expense report
// @Description	Computes the expense report of the budget for the window the period resolves to around the anchor date
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	ExpensesResponse
// @Failure		400		{object}	ExpensesResponse
// @Failure		404		{object}	ExpensesResponse
// @Failure		500		{object}	ExpensesResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			period	query		string	false	"Reporting period: monthly, trimestrial or yearly. Defaults to monthly."
// @Param			anchor	query		string	false	"RFC 3339 date-time the window is anchored on. Defaults to now."
// @Router			/v1/budgets/{id}/expenses [get]
func GetBudgetExpenses(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensesResponse{Error: &s})
		return
	}

	var query PeriodQuery
	err = c.ShouldBind(&query)
	if err != nil {
		s := errAnchorParameter.Error()
		c.JSON(http.StatusBadRequest, ExpensesResponse{Error: &s})
		return
	}

	period, anchor, err := query.values()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensesResponse{Error: &s})
		return
	}

	var budget models.Budget
	err = models.DB.Preload("Accounts").First(&budget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensesResponse{Error: &s})
		return
	}

	report, err := budget.Expenses(models.DB, period, anchor)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensesResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpensesResponse{Data: &report})
}

// @Summary		Category expenses
// @Description	Lists the transactions of one category on the budget's accounts within the reporting window
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	CategoryExpensesResponse
// @Failure		400			{object}	CategoryExpensesResponse
// @Failure		404			{object}	CategoryExpensesResponse
// @Failure		500			{object}	CategoryExpensesResponse
// @Param			id			path		string	true	"ID of the budget"
// @Param			categoryId	path		string	true	"ID of the category"
// @Param			period		query		string	false	"Reporting period: monthly, trimestrial or yearly. Defaults to monthly."
// @Param			anchor		query		string	false	"RFC 3339 date-time the window is anchored on. Defaults to now."
// @Router			/v1/budgets/{id}/expenses/{categoryId} [get]
func GetBudgetCategoryExpenses(c *gin.Context) {
	var uri URICategoryID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpensesResponse{Error: &s})
		return
	}

	var query PeriodQuery
	err = c.ShouldBind(&query)
	if err != nil {
		s := errAnchorParameter.Error()
		c.JSON(http.StatusBadRequest, CategoryExpensesResponse{Error: &s})
		return
	}

	period, anchor, err := query.values()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpensesResponse{Error: &s})
		return
	}

	var budget models.Budget
	err = models.DB.Preload("Accounts").First(&budget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpensesResponse{Error: &s})
		return
	}

	expenses, err := budget.CategoryExpenses(models.DB, period, anchor, uri.CategoryID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpensesResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryExpensesResponse{Data: &expenses})
}
