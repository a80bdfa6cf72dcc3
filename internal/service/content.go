package service

import (
	"context"
	"fmt"

	"landing_backend/internal/apperr"
	"landing_backend/internal/model"
	"landing_backend/internal/repository"
)

const (
	DefaultNewsLimit = 3
	MaxNewsLimit     = 50
)

// SocialLinks are the community invite links shown on the landing page.
type SocialLinks struct {
	WhatsApp string `json:"whatsapplink"`
	Telegram string `json:"telegramlink"`
}

// ContentService reads the seeded links and news. Nothing is cached.
type ContentService struct {
	links repository.Links
	news  repository.News
}

func NewContentService(links repository.Links, news repository.News) *ContentService {
	return &ContentService{links: links, news: news}
}

func (s *ContentService) Links(ctx context.Context) (*SocialLinks, error) {
	whatsapp, err := s.links.FindByPlatform(ctx, model.PlatformWhatsApp)
	if err != nil {
		return nil, apperr.Storage.Wrap(fmt.Errorf("whatsapp link: %w", err))
	}
	telegram, err := s.links.FindByPlatform(ctx, model.PlatformTelegram)
	if err != nil {
		return nil, apperr.Storage.Wrap(fmt.Errorf("telegram link: %w", err))
	}
	return &SocialLinks{WhatsApp: whatsapp.Link, Telegram: telegram.Link}, nil
}

// LatestNews returns the newest items first. A non-positive limit means
// DefaultNewsLimit; larger limits are capped at MaxNewsLimit.
func (s *ContentService) LatestNews(ctx context.Context, limit int) ([]model.NewsItem, error) {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	if limit > MaxNewsLimit {
		limit = MaxNewsLimit
	}

	items, err := s.news.Latest(ctx, limit)
	if err != nil {
		return nil, apperr.Storage.Wrap(err)
	}
	if items == nil {
		items = []model.NewsItem{}
	}
	return items, nil
}
