// Package proposal provides the Store operations of the design proposal ("today's design") collection.
package proposal

import (
	"errors"

	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrProposalNil is returned when Create is called without a proposal.
	ErrProposalNil = errors.New("design proposal is nil")
)

// List returns all proposals, newest first.
func List(db *gorm.DB) ([]models.DesignProposal, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	proposals := make([]models.DesignProposal, 0)
	if err := db.Order("created_at DESC, id DESC").Find(&proposals).Error; err != nil {
		return nil, err
	}

	return proposals, nil
}

// Create inserts p. The Store assigns ID and CreatedAt.
func Create(db *gorm.DB, p *models.DesignProposal) error {
	if db == nil {
		return ErrDBNil
	}
	if p == nil {
		return ErrProposalNil
	}

	p.ID = 0

	return db.Create(p).Error
}

// Delete removes the proposal with id. Deleting a missing id is not an error.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Delete(&models.DesignProposal{}, id).Error
}

// Count returns the number of proposals.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.DesignProposal{}).Count(&count).Error

	return count, err
}
