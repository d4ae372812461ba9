// Package portfolio provides the Store operations of the portfolio collection.
package portfolio

import (
	"errors"

	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/db/models"
)

// newestFirst orders by creation time, id breaks ties of rows created in the same instant.
const newestFirst = "created_at DESC, id DESC"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrItemNil is returned when Create is called without an item.
	ErrItemNil = errors.New("portfolio item is nil")
)

// List returns all portfolio items, newest first.
// A non-empty category restricts the result to exact matches.
func List(db *gorm.DB, category models.Category) ([]models.PortfolioItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order(newestFirst)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	items := make([]models.PortfolioItem, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Images == nil {
			items[i].Images = []string{}
		}
	}

	return items, nil
}

// Create inserts item. The Store assigns ID and CreatedAt.
func Create(db *gorm.DB, item *models.PortfolioItem) error {
	if db == nil {
		return ErrDBNil
	}
	if item == nil {
		return ErrItemNil
	}

	item.ID = 0
	if item.Images == nil {
		item.Images = []string{}
	}

	return db.Create(item).Error
}

// Delete removes the item with id. Deleting a missing id is not an error.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.PortfolioItem{}, id).Error
}

// Count returns the number of portfolio items.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.PortfolioItem{}).Count(&count).Error

	return count, err
}
