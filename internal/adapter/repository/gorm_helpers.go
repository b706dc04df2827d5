package repository

import (
	stderrors "errors"
	"math"

	"gorm.io/gorm"

	"complab/pkg/errors"
)

// roundToTenth rounds a rating mean to one decimal place.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// wrapRead maps a gorm read error to the repository failure taxonomy:
// missing rows become NotFound, everything else is infrastructure.
func wrapRead(resource string, err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound(resource, err)
	}
	return errors.Internal("Failed to load "+resource, err)
}

// wrapWrite maps a gorm write error: unique violations become Conflict.
func wrapWrite(resource string, err error) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Conflict(resource+" already exists", err)
	}
	return errors.Internal("Failed to save "+resource, err)
}
