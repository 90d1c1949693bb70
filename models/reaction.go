package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionTypes are the six recognized reaction kinds. Anything else found
// in storage is ignored by the tallies.
var ReactionTypes = []string{"like", "love", "happy", "wow", "sad", "angry"}

type Reaction struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID         primitive.ObjectID `bson:"postId" json:"postId"`
	Type           string             `bson:"type" json:"type"`
	Username       string             `bson:"username" json:"username"`
	AvataColor     string             `bson:"avataColor" json:"avataColor"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
