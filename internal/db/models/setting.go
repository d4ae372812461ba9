package models

// SiteSetting is one entry of the public key/value site settings.
type SiteSetting struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name of existing databases.
func (SiteSetting) TableName() string {
	return "site_settings"
}
