package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionCounts holds per-type reaction tallies. The copy stored on a Post
// document is a denormalized cache maintained by the consumer app; the admin
// read path recomputes it from the Reaction collection and fills Total.
type ReactionCounts struct {
	Like  int64 `bson:"like" json:"like"`
	Love  int64 `bson:"love" json:"love"`
	Happy int64 `bson:"happy" json:"happy"`
	Wow   int64 `bson:"wow" json:"wow"`
	Sad   int64 `bson:"sad" json:"sad"`
	Angry int64 `bson:"angry" json:"angry"`
	Total int64 `bson:"-" json:"total"`
}

type Post struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	AvatarColor    string             `bson:"avatarColor" json:"avatarColor"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	Post           string             `bson:"post" json:"post"`
	BgColor        string             `bson:"bgColor" json:"bgColor"`
	ImgVersion     string             `bson:"imgVersion" json:"imgVersion"`
	ImgID          string             `bson:"imgId" json:"imgId"`
	VideoVersion   string             `bson:"videoVersion" json:"videoVersion"`
	VideoID        string             `bson:"videoId" json:"videoId"`
	Feelings       string             `bson:"feelings" json:"feelings"`
	GifURL         string             `bson:"gifUrl" json:"gifUrl"`
	Privacy        string             `bson:"privacy" json:"privacy"`
	CommentsCount  int64              `bson:"commentsCount" json:"commentsCount"`
	Reactions      ReactionCounts     `bson:"reactions" json:"reactions"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
