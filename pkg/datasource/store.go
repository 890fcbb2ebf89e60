// Package datasource holds the record stores for contacts and contas.
//
// All stores share the same contract: identifiers are assigned as the
// highest existing identifier plus one, saving a record with an existing
// identifier replaces it wholesale, and observers are notified with the
// full list after every change.
package datasource

import (
	"context"
	"time"

	"github.com/pocketbook/backend/pkg/models"
)

// Store is a data source for records of type T.
type Store[T models.Model[T]] interface {
	// FindAll returns a copy of all records ordered by identifier.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns the record with the identifier or an error wrapping
	// models.ErrResourceNotFound.
	FindByID(ctx context.Context, id int) (T, error)

	// Save inserts the record when its identifier is not positive and replaces
	// the stored record otherwise. The stored record is returned.
	Save(ctx context.Context, record T) (T, error)

	// Delete removes the record with the identifier. Identifiers that are not
	// positive or not stored are ignored.
	Delete(ctx context.Context, id int) error

	// Subscribe registers an observer that is called with all records after
	// each change, in the order the changes happened. Observers must not
	// change the store. The returned function removes the observer.
	Subscribe(observer func([]T)) (unsubscribe func())
}

// stamper is implemented by records that carry a creation timestamp.
type stamper[T any] interface {
	Stamp(now time.Time) T
}
