package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/NgHoaiTan/chatty-cms/database"
	"github.com/NgHoaiTan/chatty-cms/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPosts returns one page of posts with live comment counts and reaction
// tallies. The denormalized counters on the Post documents are recomputed
// from the Comment and Reaction collections, not trusted. Two extra queries
// per post are fine at admin page sizes.
func GetPosts(c *gin.Context) {
	q := ParseListQuery(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := PostFilter(q.Search)

	total, err := database.Posts.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("GetPosts count error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)

	cursor, err := database.Posts.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("GetPosts find error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		log.Printf("GetPosts decode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
		return
	}

	for i := range posts {
		if err := aggregatePostStats(ctx, &posts[i]); err != nil {
			log.Printf("GetPosts aggregation error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch posts"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(posts),
		"totalPosts":  total,
		"currentPage": q.Page,
		"totalPages":  TotalPages(total, q.Limit),
		"limit":       q.Limit,
		"posts":       posts,
	})
}

// GetPost returns a single post with the same live aggregation.
func GetPost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("GetPost find error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch post"})
		return
	}

	if err := aggregatePostStats(ctx, &post); err != nil {
		log.Printf("GetPost aggregation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    post,
	})
}

// aggregatePostStats overwrites a post's commentsCount and reactions with
// values recomputed from the source collections at query time. A comment or
// reaction written between the list query and this fan-out may or may not be
// reflected; that race is accepted.
func aggregatePostStats(ctx context.Context, post *models.Post) error {
	count, err := database.Comments.CountDocuments(ctx, bson.M{"postId": post.ID})
	if err != nil {
		return err
	}

	cursor, err := database.Reactions.Find(ctx, bson.M{"postId": post.ID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var reactions []models.Reaction
	if err := cursor.All(ctx, &reactions); err != nil {
		return err
	}

	post.CommentsCount = count
	post.Reactions = TallyReactions(reactions)
	return nil
}
