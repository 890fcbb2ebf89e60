package datasource

import (
	"context"
	"sync"
	"time"

	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SQLite implements [Store] on a gorm database connected with models.Connect.
type SQLite[T models.Model[T]] struct {
	db        *gorm.DB
	observers observers[T]

	// notifyMu serializes changes together with their notification
	notifyMu sync.Mutex
}

var (
	_ Store[models.Contact] = (*SQLite[models.Contact])(nil)
	_ Store[models.Conta]   = (*SQLite[models.Conta])(nil)
)

func NewSQLite[T models.Model[T]](db *gorm.DB) *SQLite[T] {
	return &SQLite[T]{db: db}
}

func (s *SQLite[T]) FindAll(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	err := s.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SQLite[T]) FindByID(ctx context.Context, id int) (T, error) {
	var record T
	err := s.db.WithContext(ctx).First(&record, id).Error
	return record, err
}

func (s *SQLite[T]) Save(ctx context.Context, record T) (T, error) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if record.Identifier() > 0 {
			var stored T
			if err := tx.First(&stored, record.Identifier()).Error; err != nil {
				return err
			}
			return tx.Save(&record).Error
		}

		var highest int
		err := tx.Model(new(T)).Select("COALESCE(MAX(id), 0)").Scan(&highest).Error
		if err != nil {
			return err
		}

		record = record.WithID(highest + 1)
		if st, ok := any(record).(stamper[T]); ok {
			record = st.Stamp(time.Now())
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		var zero T
		return zero, err
	}

	s.notify(ctx)
	return record, nil
}

func (s *SQLite[T]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return nil
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	var zero T
	if err := s.db.WithContext(ctx).Delete(&zero, id).Error; err != nil {
		return err
	}

	s.notify(ctx)
	return nil
}

func (s *SQLite[T]) Subscribe(observer func([]T)) func() {
	return s.observers.subscribe(observer)
}

// notify reads all records and passes them to the observers. Observers
// are skipped when the records cannot be read.
func (s *SQLite[T]) notify(ctx context.Context) {
	records, err := s.FindAll(ctx)
	if err != nil {
		var zero T
		log.Error().Err(err).Str("table", zero.TableName()).Msg("could not notify observers")
		return
	}
	s.observers.notify(records)
}
