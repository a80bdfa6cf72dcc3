package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names inside the two logical databases.
const (
	CollectionSubscription  = "Subscription"
	CollectionRegistrations = "PremiumRegistrations"
	CollectionCustomers     = "Customers"
	CollectionLinks         = "Links"
	CollectionNews          = "News"
)

// Gateway owns the Mongo client and hands out the Users and Data databases.
type Gateway struct {
	client *mongo.Client
	users  *mongo.Database
	data   *mongo.Database
}

func ConnectMongo(ctx context.Context, uri, usersDB, dataDB string) (*Gateway, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("could not connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("could not reach MongoDB: %w", err)
	}

	return &Gateway{
		client: client,
		users:  client.Database(usersDB),
		data:   client.Database(dataDB),
	}, nil
}

// Users holds subscriptions, registrations and customers.
func (g *Gateway) Users() *mongo.Database {
	return g.users
}

// Data holds links and news.
func (g *Gateway) Data() *mongo.Database {
	return g.data
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx, readpref.Primary())
}

func (g *Gateway) Disconnect(ctx context.Context) error {
	return g.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index that backs duplicate detection and
// the news ordering index. It is safe to run repeatedly.
func (g *Gateway) EnsureIndexes(ctx context.Context) error {
	_, err := g.users.Collection(CollectionSubscription).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("could not create subscription index: %w", err)
	}

	_, err = g.data.Collection(CollectionNews).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "newsDate", Value: -1}},
		Options: options.Index().SetName("newsDate_desc"),
	})
	if err != nil {
		return fmt.Errorf("could not create news index: %w", err)
	}

	_, err = g.data.Collection(CollectionLinks).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "platform", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("platform_unique"),
	})
	if err != nil {
		return fmt.Errorf("could not create links index: %w", err)
	}

	return nil
}
