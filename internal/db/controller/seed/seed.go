// Package seed records which one-time seed steps already ran on a database.
package seed

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/interior-site/interior-site/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrNameEmpty is returned for an empty marker name.
	ErrNameEmpty = errors.New("seed marker name can not be empty")
)

// Done reports whether the marker name was recorded.
func Done(db *gorm.DB, name string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}
	if name == "" {
		return false, ErrNameEmpty
	}

	var count int64
	if err := db.Model(&models.SeedMarker{}).Where(&models.SeedMarker{Name: name}).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Mark records the marker name. Marking twice keeps the first timestamp.
func Mark(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrNameEmpty
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SeedMarker{Name: name, SeededAt: time.Now()}).Error
}
