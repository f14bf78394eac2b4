package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/model"
)

const calendarBatchSize = 100

// Store defines the interface for all database operations.
type Store interface {
	SaveDataset(ctx context.Context, ds *inventory.Dataset) error
	RecordSearch(ctx context.Context, rec *model.SearchRecord) error
	RecentSearches(ctx context.Context, limit int) ([]model.SearchRecord, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// SaveDataset upserts the registry and replaces the stored calendar with the
// one held by ds.
func (s *gormStore) SaveDataset(ctx context.Context, ds *inventory.Dataset) error {
	flats := ds.Registry().All()
	entries := calendarEntries(ds)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(flats) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}, {Name: "location"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "capacity"}),
			}).Create(&flats).Error; err != nil {
				return fmt.Errorf("failed to upsert flats: %w", err)
			}
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CalendarEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear calendar: %w", err)
		}

		if len(entries) > 0 {
			if err := tx.CreateInBatches(&entries, calendarBatchSize).Error; err != nil {
				return fmt.Errorf("failed to store calendar: %w", err)
			}
		}

		log.Info().Int("flats", len(flats)).Int("entries", len(entries)).Msg("dataset persisted")
		return nil
	})
}

// RecordSearch inserts a search log entry.
func (s *gormStore) RecordSearch(ctx context.Context, rec *model.SearchRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record search %s: %w", rec.ID, err)
	}
	return nil
}

// RecentSearches returns up to limit searches, newest first.
func (s *gormStore) RecentSearches(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	var records []model.SearchRecord
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent searches: %w", err)
	}
	return records, nil
}

func calendarEntries(ds *inventory.Dataset) []model.CalendarEntry {
	var entries []model.CalendarEntry
	for _, loc := range model.Locations {
		flats := ds.Registry().ByLocation(loc)
		for _, day := range ds.Days(loc) {
			for _, flat := range flats {
				status, ok := day.FlatAvailability[flat.ID]
				if !ok {
					continue
				}
				entries = append(entries, model.CalendarEntry{
					Location:   loc,
					Date:       day.Date,
					FlatID:     flat.ID,
					Weekday:    day.Day,
					Available:  status.Available,
					GuestCount: status.GuestCount,
					GuestName:  status.GuestName,
					Amount:     status.Amount,
				})
			}
		}
	}
	return entries
}
