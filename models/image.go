package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	BgImageVersion string             `bson:"bgImageVersion" json:"bgImageVersion"`
	BgImageID      string             `bson:"bgImageId" json:"bgImageId"`
	ImgVersion     string             `bson:"imgVersion" json:"imgVersion"`
	ImgID          string             `bson:"imgId" json:"imgId"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
