package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var Auth *mongo.Collection
var Profiles *mongo.Collection
var Posts *mongo.Collection
var Comments *mongo.Collection
var Reactions *mongo.Collection
var Followers *mongo.Collection
var Images *mongo.Collection

// ConnectMongo connects to MongoDB and binds the collection handles. The
// collection names match the documents written by the consumer-facing
// Chatty application; this service never creates its own collections.
func ConnectMongo(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	// Ping MongoDB
	if err := Client.Ping(ctx, nil); err != nil {
		return err
	}

	db := Client.Database(dbName)
	Auth = db.Collection("Auth")
	Profiles = db.Collection("UserProfile")
	Posts = db.Collection("Post")
	Comments = db.Collection("Comment")
	Reactions = db.Collection("Reaction")
	Followers = db.Collection("Follower")
	Images = db.Collection("Image")

	log.Println("Connected to MongoDB successfully")
	return nil
}

func DisconnectMongo() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
