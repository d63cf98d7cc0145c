package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique  = errors.New("the account name must be unique")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrTagLabelNotUnique     = errors.New("the tag label must be unique")
	ErrAccountFilterExists   = errors.New("the account already has a default transaction filter")

	ErrBudgetNeedsAccounts  = errors.New("a budget needs at least one account in its scope")
	ErrCategoryIconInvalid  = errors.New("the category icon is not a known icon")
	ErrCategoryIsReserved   = errors.New("the reserved category cannot be modified or deleted")
	ErrAmountNotPositive    = errors.New("the amount must be positive, the transaction direction sets the sign")
	ErrDirectionInvalid     = errors.New("the transaction direction must be either income or spending")
	ErrCategoryOwnParent    = errors.New("a category cannot be its own parent")
	ErrLastXDaysNotPositive = errors.New("lastXDays must be a positive number of days")
)
