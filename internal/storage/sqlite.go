package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"studiobooks/internal/logger"
)

// kvEntry is the single table backing the SQLite store.
type kvEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteStore is the durable Store implementation backed by a local SQLite file.
type SQLiteStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// kv_entries table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	const op = "NewSQLiteStore"

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: opening database %s: %w", op, path, err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("%s: migrating schema: %w", op, err)
	}

	return &SQLiteStore{
		db:  db,
		log: logger.WithComponent("sqlite-store"),
	}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *SQLiteStore) Get(key string) (string, error) {
	var entry kvEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("storage: getting %q: %w", key, err)
	}
	return entry.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(key, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Save(&entry).Error
	if err != nil {
		return fmt.Errorf("storage: setting %q: %w", key, err)
	}
	s.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("Value written")
	return nil
}

// Delete removes the value under key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(key string) error {
	err := s.db.Delete(&kvEntry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("storage: deleting %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
