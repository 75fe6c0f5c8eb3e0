package model

import (
	"time"

	"github.com/google/uuid"
)

// LotteryResult records a user's outcome in a conducted draw
type LotteryResult struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	DrawDate     time.Time  `gorm:"not null" json:"draw_date"`
	Numbers      NumberLine `gorm:"type:jsonb" json:"numbers,omitempty"`
	MatchedCount int        `gorm:"not null;default:0" json:"matched_count"`
	PrizeAmount  int64      `gorm:"not null;default:0" json:"prize_amount"`
	CreatedAt    time.Time  `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (LotteryResult) TableName() string {
	return "lottery_results"
}
