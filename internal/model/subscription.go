package model

import "time"

// Subscription is a newsletter sign-up keyed by email.
type Subscription struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Subscribed   bool      `json:"subscribed" gorm:"not null;default:true"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"not null"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
