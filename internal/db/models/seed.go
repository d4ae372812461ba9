package models

import "time"

// SeedMarker records that a named seed step ran on this database.
type SeedMarker struct {
	Name     string `gorm:"primaryKey;size:64"`
	SeededAt time.Time
}
