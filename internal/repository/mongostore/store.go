// Package mongostore implements the repositories on top of the MongoDB gateway.
package mongostore

import (
	"errors"

	"github.com/zeebo/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"landing_backend/internal/repository"
	"landing_backend/pkg/database"
)

// Error wraps driver failures.
var Error = errs.Class("mongo")

func NewStore(gw *database.Gateway) *repository.Store {
	return &repository.Store{
		Links:         &links{coll: gw.Data().Collection(database.CollectionLinks)},
		News:          &news{coll: gw.Data().Collection(database.CollectionNews)},
		Subscriptions: &subscriptions{coll: gw.Users().Collection(database.CollectionSubscription)},
		Registrations: &registrations{coll: gw.Users().Collection(database.CollectionRegistrations)},
		Customers:     &customers{coll: gw.Users().Collection(database.CollectionCustomers)},
		Ping:          gw.Ping,
		Close:         gw.Disconnect,
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return Error.Wrap(err)
	}
}

func insertedID(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
