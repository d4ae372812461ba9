package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category classifies a portfolio item.
type Category string

const (
	// CategoryApartment is an apartment remodelling project.
	CategoryApartment Category = "apartment"
	// CategoryCommercial is a shop, cafe or office project.
	CategoryCommercial Category = "commercial"
	// CategoryHouse is a detached house project.
	CategoryHouse Category = "house"
)

// Categories lists every valid category.
func Categories() []Category {
	return []Category{CategoryApartment, CategoryCommercial, CategoryHouse}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryApartment, CategoryCommercial, CategoryHouse:
		return true
	default:
		return false
	}
}

// PortfolioItem is a completed project shown on the public site.
// Items are created and deleted, never updated.
type PortfolioItem struct {
	ID       uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Category Category `gorm:"type:text"                json:"category"`
	Title    string   `gorm:"type:text"                json:"title"`
	Location string   `gorm:"type:text"                json:"location"`
	Size     string   `gorm:"type:text"                json:"size"`
	Scope    string   `gorm:"type:text"                json:"scope"`
	Intent   string   `gorm:"type:text"                json:"intent"`
	Points   string   `gorm:"type:text"                json:"points"`
	// Images is an ordered list of image URLs, stored as one JSON text column.
	Images    datatypes.JSONSlice[string] `gorm:"type:text"           json:"images"`
	CreatedAt time.Time                   `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName keeps the table name of existing databases.
func (PortfolioItem) TableName() string {
	return "portfolio"
}
