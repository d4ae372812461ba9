// Package setting provides the Store operations of the key/value site settings.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/interior-site/interior-site/internal/db/models"
)

// Well known setting keys.
const (
	KeyPhone            = "phone"
	KeyPhilosophyDesign = "philosophy_design"
	KeyPhilosophyConst  = "philosophy_const"
	KeyAboutName        = "about_name"
	KeyAboutBio         = "about_bio"
	KeyAboutImage       = "about_image"

	// KeyAdminPassword is the key older databases kept the write secret under.
	// It is never stored in site_settings.
	KeyAdminPassword = "admin_password"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when a setting key is empty.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the value of a setting by its key.
func Get(db *gorm.DB, key string) (string, error) {
	if db == nil {
		return "", ErrDBNil
	}
	if key == "" {
		return "", ErrSettingKeyEmpty
	}

	var s models.SiteSetting
	result := db.Where(&models.SiteSetting{Key: key}).Limit(1).Find(&s)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrSettingNotFound
	}

	return s.Value, nil
}

// GetAll returns every setting as a flat key to value map.
func GetAll(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.SiteSetting
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}

	return out, nil
}

// UpsertMany writes all values in one transaction.
// Existing keys are overwritten, keys not in values are left untouched.
// Either every entry is stored or none is.
func UpsertMany(db *gorm.DB, values map[string]string) error {
	return write(db, values, clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	})
}

// InsertMissing stores the values whose key does not exist yet, in one transaction.
func InsertMissing(db *gorm.DB, values map[string]string) error {
	return write(db, values, clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	})
}

func write(db *gorm.DB, values map[string]string, onConflict clause.OnConflict) error {
	if db == nil {
		return ErrDBNil
	}
	if len(values) == 0 {
		return nil
	}

	rows := make([]models.SiteSetting, 0, len(values))
	for k, v := range values {
		if k == "" {
			return ErrSettingKeyEmpty
		}

		rows = append(rows, models.SiteSetting{Key: k, Value: v})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Clauses(onConflict).Create(&rows[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a setting. A missing key is not an error.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	return db.Where(&models.SiteSetting{Key: key}).Delete(&models.SiteSetting{}).Error
}
