// Package repository is a thin data-access facade over GORM. Each entity gets
// find/create/update/delete operations with the relation eager-loading the API
// contract requires.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound signals that an id (or referenced id) does not resolve to a
// row, as opposed to any other storage failure.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
