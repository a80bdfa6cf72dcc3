package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"landing_backend/internal/model"
)

type customerDoc struct {
	ID          interface{} `bson:"_id"`
	FirstName   string      `bson:"firstName"`
	LastName    string      `bson:"lastName"`
	Email       string      `bson:"email"`
	PhoneNumber string      `bson:"phoneNumber"`
}

type customers struct {
	coll *mongo.Collection
}

// FindByID accepts both ObjectID hex strings and plain string ids, since the
// account system has written both over time.
func (r *customers) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	filter := bson.M{"_id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}

	var doc customerDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}

	return &model.Customer{
		ID:          id,
		FirstName:   doc.FirstName,
		LastName:    doc.LastName,
		Email:       doc.Email,
		PhoneNumber: doc.PhoneNumber,
	}, nil
}
