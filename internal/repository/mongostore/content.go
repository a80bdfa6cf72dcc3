package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"landing_backend/internal/model"
)

type linkDoc struct {
	Platform model.Platform `bson:"platform"`
	Link     string         `bson:"link"`
}

type links struct {
	coll *mongo.Collection
}

func (r *links) FindByPlatform(ctx context.Context, platform model.Platform) (*model.Link, error) {
	var doc linkDoc
	if err := r.coll.FindOne(ctx, bson.M{"platform": platform}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return &model.Link{Platform: doc.Platform, Link: doc.Link}, nil
}

func (r *links) Upsert(ctx context.Context, link *model.Link) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"platform": link.Platform},
		bson.M{"$set": bson.M{"link": link.Link}},
		options.Update().SetUpsert(true),
	)
	return translate(err)
}

type newsDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Content  string             `bson:"content"`
	ImageURL string             `bson:"imageUrl,omitempty"`
	NewsDate time.Time          `bson:"newsDate"`
}

type news struct {
	coll *mongo.Collection
}

func (r *news) Latest(ctx context.Context, limit int) ([]model.NewsItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "newsDate", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, translate(err)
	}

	var docs []newsDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}

	items := make([]model.NewsItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, model.NewsItem{
			ID:       d.ID.Hex(),
			Title:    d.Title,
			Content:  d.Content,
			ImageURL: d.ImageURL,
			NewsDate: d.NewsDate,
		})
	}
	return items, nil
}

func (r *news) Insert(ctx context.Context, item *model.NewsItem) (string, error) {
	res, err := r.coll.InsertOne(ctx, newsDoc{
		Title:    item.Title,
		Content:  item.Content,
		ImageURL: item.ImageURL,
		NewsDate: item.NewsDate,
	})
	if err != nil {
		return "", translate(err)
	}
	item.ID = insertedID(res)
	return item.ID, nil
}
