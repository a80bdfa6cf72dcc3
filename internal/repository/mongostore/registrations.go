package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"landing_backend/internal/model"
)

type registrationDoc struct {
	ID             primitive.ObjectID       `bson:"_id,omitempty"`
	FullName       string                   `bson:"fullName"`
	PhoneNumber    string                   `bson:"phoneNumber"`
	ContactMethod  string                   `bson:"contactMethod"`
	Email          string                   `bson:"email"`
	ReferralSource string                   `bson:"referralSource"`
	FriendName     *string                  `bson:"friendName"`
	Plan           string                   `bson:"plan"`
	TransactionID  string                   `bson:"transactionID"`
	ScreenshotPath string                   `bson:"screenshotPath"`
	CreatedAt      time.Time                `bson:"createdAt"`
	Status         model.RegistrationStatus `bson:"status"`
}

type registrations struct {
	coll *mongo.Collection
}

func (r *registrations) Insert(ctx context.Context, reg *model.Registration) (string, error) {
	res, err := r.coll.InsertOne(ctx, registrationDoc{
		FullName:       reg.FullName,
		PhoneNumber:    reg.PhoneNumber,
		ContactMethod:  reg.ContactMethod,
		Email:          reg.Email,
		ReferralSource: reg.ReferralSource,
		FriendName:     reg.FriendName,
		Plan:           reg.Plan,
		TransactionID:  reg.TransactionID,
		ScreenshotPath: reg.ScreenshotPath,
		CreatedAt:      reg.CreatedAt,
		Status:         reg.Status,
	})
	if err != nil {
		return "", translate(err)
	}
	reg.ID = insertedID(res)
	return reg.ID, nil
}
