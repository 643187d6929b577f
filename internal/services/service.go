// Package services implements the business rules of the application on top
// of the repository layer: accounts, the social graph, notifications,
// reactions, and posts with their comments. Expected failures surface as
// the sentinel errors in the models package; anything else is a wrapped
// persistence error.
package services

import (
	"errors"

	"github.com/companyblog/backend/internal/models"
	"gorm.io/gorm"
)

// asDomainErr maps gorm's record-not-found onto the domain sentinel so
// callers never see ORM internals.
func asDomainErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
