package model

import "time"

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "Pending"
	RegistrationApproved RegistrationStatus = "Approved"
	RegistrationRejected RegistrationStatus = "Rejected"
)

// ReferralFriend is the referral source for which FriendName is kept.
const ReferralFriend = "friend"

// Registration is a premium plan request together with its payment proof.
type Registration struct {
	ID             string             `json:"id" gorm:"primaryKey;size:36"`
	FullName       string             `json:"fullName" gorm:"not null"`
	PhoneNumber    string             `json:"phoneNumber" gorm:"not null"`
	ContactMethod  string             `json:"contactMethod" gorm:"not null"`
	Email          string             `json:"email" gorm:"index;not null"`
	ReferralSource string             `json:"referralSource" gorm:"not null"`
	FriendName     *string            `json:"friendName"`
	Plan           string             `json:"plan" gorm:"not null"`
	TransactionID  string             `json:"transactionID" gorm:"column:transaction_id;not null"`
	ScreenshotPath string             `json:"screenshotPath" gorm:"not null"`
	CreatedAt      time.Time          `json:"createdAt"`
	Status         RegistrationStatus `json:"status" gorm:"size:20;default:'Pending'"`
}

func (Registration) TableName() string {
	return "premium_registrations"
}
