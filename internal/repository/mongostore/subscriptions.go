package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"landing_backend/internal/model"
)

type subscriptionDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Subscribed   bool               `bson:"subscribed"`
	SubscribedAt time.Time          `bson:"subscribedAt"`
}

type subscriptions struct {
	coll *mongo.Collection
}

// Insert relies on the email_unique index created by Gateway.EnsureIndexes.
func (r *subscriptions) Insert(ctx context.Context, sub *model.Subscription) (string, error) {
	res, err := r.coll.InsertOne(ctx, subscriptionDoc{
		Email:        sub.Email,
		Subscribed:   sub.Subscribed,
		SubscribedAt: sub.SubscribedAt,
	})
	if err != nil {
		return "", translate(err)
	}
	sub.ID = insertedID(res)
	return sub.ID, nil
}
