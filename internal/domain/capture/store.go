package capture

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisitorFlag is the durable "prompt completed" marker for one visitor.
type VisitorFlag struct {
	VisitorID string    `gorm:"primaryKey" json:"visitor_id"`
	SeenAt    time.Time `json:"seen_at"`
}

// GormFlagStore persists visitor flags in the main database.
type GormFlagStore struct {
	db *gorm.DB
}

// NewGormFlagStore creates a database-backed flag store.
func NewGormFlagStore(db *gorm.DB) *GormFlagStore {
	return &GormFlagStore{db: db}
}

func (s *GormFlagStore) Seen(ctx context.Context, visitorID string) (bool, error) {
	var flag VisitorFlag
	err := s.db.WithContext(ctx).Where("visitor_id = ?", visitorID).First(&flag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormFlagStore) MarkSeen(ctx context.Context, visitorID string) error {
	flag := VisitorFlag{
		VisitorID: visitorID,
		SeenAt:    time.Now().UTC(),
	}
	// Re-completing is a no-op, the first timestamp wins
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&flag).Error
}
