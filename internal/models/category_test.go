package models_test

import (
	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/models"
	"github.com/stretchr/testify/assert"
)

// TestReservedCategory verifies that the fallback category exists right
// after migration.
func (suite *TestSuiteStandard) TestReservedCategory() {
	category, err := models.ReservedCategory(models.DB)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.ReservedCategoryName, category.Name)
	assert.Equal(suite.T(), models.IconOther, category.Icon)
}

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	_ = suite.createTestCategory(models.Category{Name: "transport"})

	err := models.DB.Create(&models.Category{Name: "transport"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryIconDefault() {
	category := suite.createTestCategory(models.Category{Name: "transport"})
	assert.Equal(suite.T(), models.IconOther, category.Icon)
}

func (suite *TestSuiteStandard) TestCategoryIconInvalid() {
	err := models.DB.Create(&models.Category{Name: "transport", Icon: "rocket"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryIconInvalid)
}

func (suite *TestSuiteStandard) TestCategoryParent() {
	parent := suite.createTestCategory(models.Category{Name: "transport"})
	child := suite.createTestCategory(models.Category{Name: "fuel", ParentID: &parent.ID})

	var reloaded models.Category
	err := models.DB.Preload("Parent").First(&reloaded, child.ID).Error
	assert.Nil(suite.T(), err)

	if assert.NotNil(suite.T(), reloaded.Parent) {
		assert.Equal(suite.T(), parent.ID, reloaded.Parent.ID)
	}
}

func (suite *TestSuiteStandard) TestCategoryUnknownParent() {
	unknown := uuid.New()

	err := models.DB.Create(&models.Category{Name: "fuel", ParentID: &unknown}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryOwnParent() {
	id := uuid.New()

	err := models.DB.Create(&models.Category{
		DefaultModel: models.DefaultModel{ID: id},
		Name:         "transport",
		ParentID:     &id,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryOwnParent)
}
