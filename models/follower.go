package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Follower struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FollowerID primitive.ObjectID `bson:"followerId" json:"followerId"`
	FolloweeID primitive.ObjectID `bson:"followeeId" json:"followeeId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
