package models

import "time"

// AccessSecret stores the argon2id hash of a shared write secret.
// It is kept apart from SiteSetting so the public settings path never reads or writes it.
type AccessSecret struct {
	Name      string `gorm:"primaryKey;size:64"`
	Hash      string `gorm:"size:255;not null"`
	UpdatedAt time.Time
}
