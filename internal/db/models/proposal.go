package models

import "time"

// DesignProposal is a before/after concept entry ("today's design").
type DesignProposal struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:text"                json:"title"`
	BeforeImg string    `gorm:"type:text"                json:"before_img"`
	AfterImg  string    `gorm:"type:text"                json:"after_img"`
	Material  string    `gorm:"type:text"                json:"material"`
	Intent    string    `gorm:"type:text"                json:"intent"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"     json:"created_at"`
}

// TableName keeps the table name of existing databases.
func (DesignProposal) TableName() string {
	return "today_design"
}
