// Package history persists prompt answers so a menu can default to
// whatever the user picked last time.
package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store records and retrieves past answers, keyed by menu id.
type Store struct {
	db        *gorm.DB
	sessionID string
}

// Answer is one recorded prompt completion.
type Answer struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index;index:idx_menu_created,priority:2"`

	MenuID    string `gorm:"index:idx_menu_created,priority:1"`
	Answer    string
	Action    string
	SessionID string `gorm:"index"`
}

// NewStore opens (creating if needed) the answer database at the given
// path and migrates the schema.
func NewStore(dbFilePath string) (*Store, error) {
	// busy_timeout covers concurrent invocations racing on the same file;
	// the remaining pragmas keep the tiny database cheap to touch.
	connectionString := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(1)", dbFilePath)

	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open answer database: %w", err)
	}

	if err := db.AutoMigrate(&Answer{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serializes writes anyway, so one connection is enough.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Store{
		db:        db,
		sessionID: uuid.NewString(),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores one completed prompt. The action tag is empty for plain
// Enter confirmations.
func (s *Store) Record(menuID, answer, action string) error {
	entry := Answer{
		MenuID:    menuID,
		Answer:    answer,
		Action:    action,
		SessionID: s.sessionID,
	}
	return s.db.Create(&entry).Error
}

// LastAnswer returns the most recently recorded answer for the menu.
// The second return value is false when the menu has no history yet.
func (s *Store) LastAnswer(menuID string) (string, bool, error) {
	var entry Answer
	err := s.db.
		Where("menu_id = ?", menuID).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Answer, true, nil
}
