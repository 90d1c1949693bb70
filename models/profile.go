package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type SocialLinks struct {
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	Twitter   string `bson:"twitter" json:"twitter"`
	Youtube   string `bson:"youtube" json:"youtube"`
}

// UserProfile holds the bio fields and denormalized counters for one
// account. Created lazily by the consumer app (or by an admin update), so
// not every Auth document has one.
type UserProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthID         primitive.ObjectID `bson:"authId" json:"authId"`
	Work           string             `bson:"work" json:"work"`
	School         string             `bson:"school" json:"school"`
	Location       string             `bson:"location" json:"location"`
	Quote          string             `bson:"quote" json:"quote"`
	Social         SocialLinks        `bson:"social" json:"social"`
	PostsCount     int64              `bson:"postsCount" json:"postsCount"`
	FollowersCount int64              `bson:"followersCount" json:"followersCount"`
	FollowingCount int64              `bson:"followingCount" json:"followingCount"`
}
