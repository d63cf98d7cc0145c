package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategoryIcon is the icon a category is rendered with. The set is closed,
// unknown icons are rejected on save.
type CategoryIcon string

const (
	IconTransport           CategoryIcon = "transport"
	IconAccommodation       CategoryIcon = "accommodation"
	IconSubscription        CategoryIcon = "subscription"
	IconCar                 CategoryIcon = "car"
	IconOther               CategoryIcon = "other"
	IconGiftAndDonations    CategoryIcon = "giftanddonations"
	IconBed                 CategoryIcon = "bed"
	IconSavings             CategoryIcon = "savings"
	IconEducationAndFamily  CategoryIcon = "educationandfamily"
	IconLoan                CategoryIcon = "loan"
	IconProfessionalFee     CategoryIcon = "professionalfee"
	IconTaxes               CategoryIcon = "taxes"
	IconSpareTimeActivities CategoryIcon = "sparetimeactivities"
	IconInternalMovements   CategoryIcon = "internalmovements"
	IconCashWithdrawal      CategoryIcon = "cashwithdrawal"
	IconHealth              CategoryIcon = "health"
	IconEverydayLife        CategoryIcon = "everydaylife"
)

var categoryIcons = []CategoryIcon{
	IconTransport, IconAccommodation, IconSubscription, IconCar, IconOther,
	IconGiftAndDonations, IconBed, IconSavings, IconEducationAndFamily,
	IconLoan, IconProfessionalFee, IconTaxes, IconSpareTimeActivities,
	IconInternalMovements, IconCashWithdrawal, IconHealth, IconEverydayLife,
}

// ReservedCategoryName is the name of the fallback category. It is created
// at migration time; allocations and transactions without an explicit
// category reference it.
const ReservedCategoryName = "other"

// Category classifies allocations and transactions.
type Category struct {
	DefaultModel
	Name     string       `json:"name" gorm:"uniqueIndex"`
	Icon     CategoryIcon `json:"icon"`
	Color    string       `json:"color"`
	ParentID *uuid.UUID   `json:"parentId"`
	Parent   *Category    `json:"-"`
}

// BeforeSave validates the icon and trims whitespace.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)

	if c.Icon == "" {
		c.Icon = IconOther
	}

	if !slices.Contains(categoryIcons, c.Icon) {
		return ErrCategoryIconInvalid
	}

	return nil
}

// BeforeCreate verifies references to other resources.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.ParentID != nil {
		if *c.ParentID == c.ID {
			return ErrCategoryOwnParent
		}

		return tx.First(&Category{}, *c.ParentID).Error
	}

	return nil
}

// ReservedCategory returns the fallback category.
func ReservedCategory(db *gorm.DB) (Category, error) {
	var category Category
	err := db.Where(&Category{Name: ReservedCategoryName}).First(&category).Error
	return category, err
}

// ensureReservedCategory creates the fallback category if it does not exist
// yet. It is called during migration so every installation has it.
func ensureReservedCategory(db *gorm.DB) error {
	return db.Where(&Category{Name: ReservedCategoryName}).
		Attrs(Category{Icon: IconOther, Color: "#9e9e9e"}).
		FirstOrCreate(&Category{}).Error
}
