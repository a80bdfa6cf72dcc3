// Package sqlstore implements the repositories with gorm on PostgreSQL.
package sqlstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"landing_backend/internal/model"
	"landing_backend/internal/repository"
)

// Error wraps gorm failures.
var Error = errs.Class("sql")

// Models lists the tables created by the migrate command. customers is normally
// owned by the account system and only created here for local setups.
var Models = []interface{}{
	&model.Subscription{},
	&model.Registration{},
	&model.Link{},
	&model.NewsItem{},
	&model.Customer{},
}

func NewStore(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Links:         &links{db: db},
		News:          &news{db: db},
		Subscriptions: &subscriptions{db: db},
		Registrations: &registrations{db: db},
		Customers:     &customers{db: db},
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	default:
		return Error.Wrap(err)
	}
}

type subscriptions struct {
	db *gorm.DB
}

func (r *subscriptions) Insert(ctx context.Context, sub *model.Subscription) (string, error) {
	sub.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		sub.ID = ""
		return "", translate(err)
	}
	return sub.ID, nil
}

type registrations struct {
	db *gorm.DB
}

func (r *registrations) Insert(ctx context.Context, reg *model.Registration) (string, error) {
	reg.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		reg.ID = ""
		return "", translate(err)
	}
	return reg.ID, nil
}

type links struct {
	db *gorm.DB
}

func (r *links) FindByPlatform(ctx context.Context, platform model.Platform) (*model.Link, error) {
	var link model.Link
	if err := r.db.WithContext(ctx).Where("platform = ?", platform).First(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *links) Upsert(ctx context.Context, link *model.Link) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"link"}),
	}).Create(link).Error
	return translate(err)
}

type news struct {
	db *gorm.DB
}

func (r *news) Latest(ctx context.Context, limit int) ([]model.NewsItem, error) {
	var items []model.NewsItem
	err := r.db.WithContext(ctx).
		Order("news_date DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *news) Insert(ctx context.Context, item *model.NewsItem) (string, error) {
	item.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		item.ID = ""
		return "", translate(err)
	}
	return item.ID, nil
}

type customers struct {
	db *gorm.DB
}

func (r *customers) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}
