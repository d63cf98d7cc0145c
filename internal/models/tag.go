package models

import (
	"strings"

	"gorm.io/gorm"
)

// Tag is a free-form label for transactions.
type Tag struct {
	DefaultModel
	Label string `json:"label" gorm:"uniqueIndex"`
	Color string `json:"color"`
}

// BeforeSave trims whitespace from all strings.
func (t *Tag) BeforeSave(_ *gorm.DB) error {
	t.Label = strings.TrimSpace(t.Label)
	t.Color = strings.TrimSpace(t.Color)

	return nil
}
