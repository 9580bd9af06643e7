package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports that the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict reports that a write would violate a uniqueness or referential
// constraint, or a repository-level guard such as the plot deletion check.
var ErrConflict = errors.New("conflict")

// classify maps gorm errors onto the repository taxonomy so handlers never
// need to import gorm sentinels. Unrecognised errors pass through unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate entry", ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referenced row is missing or still in use", ErrConflict)
	default:
		return err
	}
}
