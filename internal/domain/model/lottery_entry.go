package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NumberLine is one line of chosen lottery numbers, stored as JSONB
type NumberLine []int

// Value implements driver.Valuer interface
func (n NumberLine) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements sql.Scanner interface
func (n *NumberLine) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	default:
		*n = nil
		return nil
	}
}

// LotteryEntry represents one played line for one draw. Rows reference the
// identity provider's user id; there is no foreign key into auth storage.
type LotteryEntry struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Numbers         NumberLine `gorm:"type:jsonb;not null" json:"numbers"`
	DrawDate        time.Time  `gorm:"not null" json:"draw_date"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CheckoutSession string     `gorm:"size:100" json:"checkout_session,omitempty"`
	CreatedAt       time.Time  `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (LotteryEntry) TableName() string {
	return "lottery_entries"
}
