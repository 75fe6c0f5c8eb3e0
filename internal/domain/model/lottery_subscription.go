package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the status of a lottery subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// Scan implements sql.Scanner interface
func (s *SubscriptionStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = SubscriptionStatus(v)
	case []byte:
		*s = SubscriptionStatus(v)
	default:
		*s = SubscriptionStatusInactive
	}
	return nil
}

// Value implements driver.Valuer interface
func (s SubscriptionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// LotterySubscription represents a recurring lottery purchase backed by a
// Stripe subscription.
type LotterySubscription struct {
	ID                   int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	StripeCustomerID     string             `gorm:"size:100" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string            `gorm:"unique;size:100" json:"stripe_subscription_id,omitempty"`
	Quantity             int64              `gorm:"not null;default:1" json:"quantity"`
	PromoCode            string             `gorm:"size:50" json:"promo_code,omitempty"`
	Status               SubscriptionStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt            time.Time          `gorm:"default:now()" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (LotterySubscription) TableName() string {
	return "lottery_subscriptions"
}
