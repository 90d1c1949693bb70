package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment field names follow the consumer app's schema, including the
// "avataColor" spelling it stores.
type Comment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID         primitive.ObjectID `bson:"postId" json:"postId"`
	Comment        string             `bson:"comment" json:"comment"`
	Username       string             `bson:"username" json:"username"`
	AvataColor     string             `bson:"avataColor" json:"avataColor"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
