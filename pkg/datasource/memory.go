package datasource

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pocketbook/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// Memory implements [Store] on a mutex-guarded slice. It lives for the
// lifetime of the process.
type Memory[T models.Model[T]] struct {
	mu        sync.Mutex
	records   []T
	observers observers[T]

	// notifyMu is held from a change until its observers are notified, so
	// snapshots are delivered in the order the changes happened
	notifyMu sync.Mutex

	// now is used to stamp new records, it is replaced in tests
	now func() time.Time
}

var (
	_ Store[models.Contact] = (*Memory[models.Contact])(nil)
	_ Store[models.Conta]   = (*Memory[models.Conta])(nil)
)

// NewMemory returns a store holding the records in the order passed.
func NewMemory[T models.Model[T]](records ...T) *Memory[T] {
	return &Memory[T]{records: slices.Clone(records), now: time.Now}
}

func (m *Memory[T]) FindAll(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(), nil
}

func (m *Memory[T]) FindByID(_ context.Context, id int) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		var zero T
		return zero, notFound(zero)
	}
	return m.records[i], nil
}

func (m *Memory[T]) Save(_ context.Context, record T) (T, error) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()

	if record.Identifier() > 0 {
		i := m.index(record.Identifier())
		if i < 0 {
			m.mu.Unlock()
			var zero T
			return zero, notFound(zero)
		}
		m.records[i] = record
	} else {
		record = record.WithID(m.maxID() + 1)
		if s, ok := any(record).(stamper[T]); ok {
			record = s.Stamp(m.now())
		}
		m.records = append(m.records, record)
	}

	snapshot := m.snapshot()
	m.mu.Unlock()

	m.observers.notify(snapshot)
	return record, nil
}

func (m *Memory[T]) Delete(_ context.Context, id int) error {
	if id <= 0 {
		return nil
	}

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	m.records = slices.DeleteFunc(m.records, func(r T) bool {
		return r.Identifier() == id
	})
	snapshot := m.snapshot()
	m.mu.Unlock()

	m.observers.notify(snapshot)
	return nil
}

func (m *Memory[T]) Subscribe(observer func([]T)) func() {
	return m.observers.subscribe(observer)
}

// snapshot returns a copy of the records, never nil. The caller must hold
// the lock.
func (m *Memory[T]) snapshot() []T {
	return append(make([]T, 0, len(m.records)), m.records...)
}

// index returns the position of the record with the identifier or -1.
// The caller must hold the lock.
func (m *Memory[T]) index(id int) int {
	return slices.IndexFunc(m.records, func(r T) bool {
		return r.Identifier() == id
	})
}

// maxID returns the highest identifier in the store, 0 for an empty store.
// The caller must hold the lock.
func (m *Memory[T]) maxID() int {
	highest := 0
	for _, r := range m.records {
		highest = max(highest, r.Identifier())
	}
	return highest
}

func notFound[T models.Model[T]](zero T) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, strings.TrimSuffix(zero.TableName(), "s"))
}
