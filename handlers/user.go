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

// GetUsers returns one page of accounts joined with their profiles,
// filtered by search text and active/deleted status.
func GetUsers(c *gin.Context) {
	q := ParseListQuery(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := UserFilter(q.Search, q.Status)

	total, err := database.Auth.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("GetUsers count error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)

	cursor, err := database.Auth.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("GetUsers find error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}
	defer cursor.Close(ctx)

	var auths []models.Auth
	if err := cursor.All(ctx, &auths); err != nil {
		log.Printf("GetUsers decode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}

	users, err := attachProfiles(ctx, auths)
	if err != nil {
		log.Printf("GetUsers profiles error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(users),
		"totalUsers":  total,
		"currentPage": q.Page,
		"totalPages":  TotalPages(total, q.Limit),
		"limit":       q.Limit,
		"users":       users,
	})
}

// attachProfiles fetches all profiles for one page of accounts in a single
// $in query and joins them in memory.
func attachProfiles(ctx context.Context, auths []models.Auth) ([]models.UserWithProfile, error) {
	if len(auths) == 0 {
		return []models.UserWithProfile{}, nil
	}

	ids := make([]primitive.ObjectID, len(auths))
	for i, a := range auths {
		ids[i] = a.ID
	}

	cursor, err := database.Profiles.Find(ctx, bson.M{"authId": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return JoinProfiles(auths, profiles), nil
}

// GetUserStats returns the dashboard headline numbers. Post/follower totals
// come from the denormalized UserProfile counters.
func GetUserStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalUsers, err := database.Auth.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("GetUserStats total error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}

	activeUsers, err := database.Auth.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		log.Printf("GetUserStats active error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}

	// Accounts written before the isActive flag existed have no field at all.
	inactiveUsers, err := database.Auth.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"isActive": false},
		bson.M{"isActive": bson.M{"$exists": false}},
	}})
	if err != nil {
		log.Printf("GetUserStats inactive error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}

	now := time.Now()
	start, end := monthRange(now.Year(), now.Month())
	joinedThisMonth, err := database.Auth.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		log.Printf("GetUserStats month error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}

	cursor, err := database.Profiles.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("GetUserStats profiles error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		log.Printf("GetUserStats profiles decode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stats"})
		return
	}

	var totalPosts, totalFollowers, totalFollowing int64
	for _, p := range profiles {
		totalPosts += p.PostsCount
		totalFollowers += p.FollowersCount
		totalFollowing += p.FollowingCount
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalUsers":           totalUsers,
			"activeUsers":          activeUsers,
			"inactiveUsers":        inactiveUsers,
			"usersJoinedThisMonth": joinedThisMonth,
			"totalPosts":           totalPosts,
			"totalFollowers":       totalFollowers,
			"totalFollowing":       totalFollowing,
		},
	})
}

// GetNewUsersThisMonth lists accounts created in the current calendar month,
// newest first, with profiles attached.
func GetNewUsersThisMonth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	start, end := monthRange(now.Year(), now.Month())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.Auth.Find(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lt": end},
	}, opts)
	if err != nil {
		log.Printf("GetNewUsersThisMonth find error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch new users"})
		return
	}
	defer cursor.Close(ctx)

	var auths []models.Auth
	if err := cursor.All(ctx, &auths); err != nil {
		log.Printf("GetNewUsersThisMonth decode error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch new users"})
		return
	}

	users, err := attachProfiles(ctx, auths)
	if err != nil {
		log.Printf("GetNewUsersThisMonth profiles error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch new users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// GetUsersByMonth returns signup counts for all twelve months of a year,
// feeding the dashboard line chart.
func GetUsersByMonth(c *gin.Context) {
	year := ClampYear(c.Query("year"), time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data := make([]gin.H, 0, 12)
	for month := time.January; month <= time.December; month++ {
		start, end := monthRange(year, month)
		count, err := database.Auth.CountDocuments(ctx, bson.M{
			"createdAt": bson.M{"$gte": start, "$lt": end},
		})
		if err != nil {
			log.Printf("GetUsersByMonth count error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch monthly stats"})
			return
		}

		data = append(data, gin.H{
			"month":       month.String(),
			"monthNumber": int(month),
			"count":       count,
			"year":        year,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"year":    year,
		"data":    data,
	})
}

// GetUser returns a single account with its profile (or profile: null).
func GetUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	auth, ok := findAuth(ctx, c, id)
	if !ok {
		return
	}

	profile, err := findProfile(ctx, id)
	if err != nil {
		log.Printf("GetUser profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    models.UserWithProfile{Auth: auth, Profile: profile},
	})
}

// UpdateUserRequest carries the admin-editable fields. Pointers distinguish
// "absent" from "set to zero value"; email and uId are not accepted at all.
type UpdateUserRequest struct {
	Username *string       `json:"username"`
	IsActive *bool         `json:"isActive"`
	Work     *string       `json:"work"`
	School   *string       `json:"school"`
	Location *string       `json:"location"`
	Quote    *string       `json:"quote"`
	Social   *SocialUpdate `json:"social"`
}

type SocialUpdate struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	Youtube   *string `json:"youtube"`
}

// BuildAuthUpdate maps the account-level fields of a request onto a $set
// document. Only fields present in the input are written.
func BuildAuthUpdate(req UpdateUserRequest) bson.M {
	update := bson.M{}
	if req.Username != nil {
		update["username"] = *req.Username
	}
	if req.IsActive != nil {
		update["isActive"] = *req.IsActive
	}
	return update
}

// MergeSocial rewrites the full social sub-object: incoming fields override
// the previous values, untouched fields keep them, and with no previous
// profile every missing field defaults to the empty string.
func MergeSocial(prev *models.SocialLinks, in *SocialUpdate) models.SocialLinks {
	var out models.SocialLinks
	if prev != nil {
		out = *prev
	}
	if in == nil {
		return out
	}
	if in.Facebook != nil {
		out.Facebook = *in.Facebook
	}
	if in.Instagram != nil {
		out.Instagram = *in.Instagram
	}
	if in.Twitter != nil {
		out.Twitter = *in.Twitter
	}
	if in.Youtube != nil {
		out.Youtube = *in.Youtube
	}
	return out
}

// BuildProfileUpdate maps the profile-level fields of a request onto a $set
// document, merging social links over the existing profile's values.
func BuildProfileUpdate(req UpdateUserRequest, existing *models.UserProfile) bson.M {
	update := bson.M{}
	if req.Work != nil {
		update["work"] = *req.Work
	}
	if req.School != nil {
		update["school"] = *req.School
	}
	if req.Location != nil {
		update["location"] = *req.Location
	}
	if req.Quote != nil {
		update["quote"] = *req.Quote
	}
	if req.Social != nil {
		var prev *models.SocialLinks
		if existing != nil {
			prev = &existing.Social
		}
		update["social"] = MergeSocial(prev, req.Social)
	}
	return update
}

// UpdateUser applies a partial update across the Auth and UserProfile
// documents. The two writes are sequential and not transactional; a profile
// is created lazily when the account has none yet.
func UpdateUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, ok := findAuth(ctx, c, id); !ok {
		return
	}

	if authUpdate := BuildAuthUpdate(req); len(authUpdate) > 0 {
		if _, err := database.Auth.UpdateByID(ctx, id, bson.M{"$set": authUpdate}); err != nil {
			log.Printf("UpdateUser auth update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
			return
		}
	}

	profile, err := findProfile(ctx, id)
	if err != nil {
		log.Printf("UpdateUser profile lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
		return
	}

	profileUpdate := BuildProfileUpdate(req, profile)
	if profile != nil {
		if len(profileUpdate) > 0 {
			if _, err := database.Profiles.UpdateByID(ctx, profile.ID, bson.M{"$set": profileUpdate}); err != nil {
				log.Printf("UpdateUser profile update error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
				return
			}
		}
	} else if len(profileUpdate) > 0 {
		created := models.UserProfile{
			ID:     primitive.NewObjectID(),
			AuthID: id,
			Social: MergeSocial(nil, req.Social),
		}
		if req.Work != nil {
			created.Work = *req.Work
		}
		if req.School != nil {
			created.School = *req.School
		}
		if req.Location != nil {
			created.Location = *req.Location
		}
		if req.Quote != nil {
			created.Quote = *req.Quote
		}
		if _, err := database.Profiles.InsertOne(ctx, created); err != nil {
			log.Printf("UpdateUser profile insert error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
			return
		}
	}

	// Re-read both documents so the response reflects what was stored.
	auth, ok := findAuth(ctx, c, id)
	if !ok {
		return
	}
	updatedProfile, err := findProfile(ctx, id)
	if err != nil {
		log.Printf("UpdateUser profile reread error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    models.UserWithProfile{Auth: auth, Profile: updatedProfile},
	})
}

// DeleteUser soft-deletes an account. The flag flip is idempotent, leaves
// isActive untouched, and never cascades to the account's posts, comments,
// or reactions.
func DeleteUser(c *gin.Context) {
	setDeleted(c, true, "User deleted successfully")
}

// RestoreUser clears the soft-delete flag, preserving whatever isActive
// value the account had before deletion.
func RestoreUser(c *gin.Context) {
	setDeleted(c, false, "User restored successfully")
}

func setDeleted(c *gin.Context, deleted bool, message string) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, ok := findAuth(ctx, c, id); !ok {
		return
	}

	if _, err := database.Auth.UpdateByID(ctx, id, bson.M{"$set": bson.M{"isDeleted": deleted}}); err != nil {
		log.Printf("setDeleted update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// findAuth loads one Auth document and writes the 404/500 response itself
// when it cannot. The bool reports whether the handler should continue.
func findAuth(ctx context.Context, c *gin.Context, id primitive.ObjectID) (models.Auth, bool) {
	var auth models.Auth
	err := database.Auth.FindOne(ctx, bson.M{"_id": id}).Decode(&auth)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return auth, false
	}
	if err != nil {
		log.Printf("findAuth error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
		return auth, false
	}
	return auth, true
}

// findProfile returns the profile for an account, or nil when the account
// has not set one up. Only real store errors are returned.
func findProfile(ctx context.Context, authID primitive.ObjectID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := database.Profiles.FindOne(ctx, bson.M{"authId": authID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
