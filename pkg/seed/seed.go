package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"landing_backend/internal/model"
	"landing_backend/internal/repository"
)

// Data is the content of a seed file.
//
//	{
//	  "links": {"whatsapp": "https://chat.whatsapp.com/...", "telegram": "https://t.me/..."},
//	  "news": [{"title": "...", "content": "...", "imageUrl": "...", "newsDate": "2024-01-03T00:00:00Z"}]
//	}
type Data struct {
	Links map[model.Platform]string `json:"links"`
	News  []model.NewsItem          `json:"news"`
}

func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for platform := range data.Links {
		if platform != model.PlatformWhatsApp && platform != model.PlatformTelegram {
			return nil, fmt.Errorf("unknown platform %q in %s", platform, path)
		}
	}
	return &data, nil
}

// SeedLinks upserts one link per platform, so running it twice is harmless.
func SeedLinks(ctx context.Context, links repository.Links, data *Data, log logrus.FieldLogger) error {
	for platform, url := range data.Links {
		if err := links.Upsert(ctx, &model.Link{Platform: platform, Link: url}); err != nil {
			return fmt.Errorf("seed %s link: %w", platform, err)
		}
	}
	log.WithField("count", len(data.Links)).Info("links seeded")
	return nil
}

// SeedNews inserts every news item. Unlike links, news is not deduplicated.
func SeedNews(ctx context.Context, news repository.News, data *Data, log logrus.FieldLogger) error {
	for i := range data.News {
		item := data.News[i]
		if _, err := news.Insert(ctx, &item); err != nil {
			return fmt.Errorf("seed news %q: %w", item.Title, err)
		}
	}
	log.WithField("count", len(data.News)).Info("news seeded")
	return nil
}
