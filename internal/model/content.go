package model

import "time"

type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
)

type Link struct {
	Platform Platform `json:"platform" gorm:"primaryKey;size:20"`
	Link     string   `json:"link" gorm:"not null"`
}

func (Link) TableName() string {
	return "links"
}

type NewsItem struct {
	ID       string    `json:"id" gorm:"primaryKey;size:36"`
	Title    string    `json:"title"`
	Content  string    `json:"content" gorm:"type:text"`
	ImageURL string    `json:"imageUrl"`
	NewsDate time.Time `json:"newsDate" gorm:"index"`
}

func (NewsItem) TableName() string {
	return "news"
}
