package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth is an account document as written by the consumer application.
// Password is never serialized outbound.
type Auth struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username             string             `bson:"username" json:"username"`
	UID                  string             `bson:"uId" json:"uId"`
	Email                string             `bson:"email" json:"email"`
	Password             string             `bson:"password" json:"-"`
	AvatarColor          string             `bson:"avatarColor" json:"avatarColor"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	PasswordResetToken   string             `bson:"passwordResetToken" json:"passwordResetToken"`
	PasswordResetExpires int64              `bson:"passwordResetExpires,omitempty" json:"passwordResetExpires,omitempty"`
	EmailActiveToken     string             `bson:"emailActiveToken" json:"emailActiveToken"`
	EmailActiveExpires   int64              `bson:"emailActiveExpires,omitempty" json:"emailActiveExpires,omitempty"`
	IsActive             bool               `bson:"isActive" json:"isActive"`
	IsDeleted            bool               `bson:"isDeleted" json:"isDeleted"`
}

// UserWithProfile is the admin-facing view of an account: the Auth document
// with its UserProfile attached, or profile null when none exists yet.
type UserWithProfile struct {
	Auth    `bson:",inline"`
	Profile *UserProfile `bson:"-" json:"profile"`
}
