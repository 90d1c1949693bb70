package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/NgHoaiTan/chatty-cms/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListQuery is the normalized pagination/filter input shared by the user
// and post listings.
type ListQuery struct {
	Page   int64
	Limit  int64
	Search string
	Status string
}

// ParseListQuery reads page/limit/search/isActive from the request.
// Non-numeric or non-positive page and limit fall back to the defaults, so
// Skip and TotalPages never see a zero limit.
func ParseListQuery(c *gin.Context) ListQuery {
	return ListQuery{
		Page:   parsePositive(c.Query("page"), defaultPage),
		Limit:  parsePositive(c.Query("limit"), defaultLimit),
		Search: c.Query("search"),
		Status: c.Query("isActive"),
	}
}

func parsePositive(raw string, fallback int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (q ListQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// TotalPages is ceil(total/limit). Callers guarantee limit > 0.
func TotalPages(total, limit int64) int64 {
	return (total + limit - 1) / limit
}

// UserFilter builds the Auth collection predicate for a listing request.
// Status "deleted" matches only soft-deleted accounts; "true"/"false" match
// the active flag and exclude soft-deleted accounts; anything else applies
// no status predicate (soft-deleted accounts included).
func UserFilter(search, status string) bson.M {
	filter := bson.M{}

	switch status {
	case "deleted":
		filter["isDeleted"] = true
	case "true", "false":
		filter["isActive"] = status == "true"
		filter["isDeleted"] = false
	}

	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"username": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return filter
}

// PostFilter builds the Post collection predicate: case-insensitive search
// over the post body and the denormalized author username.
func PostFilter(search string) bson.M {
	filter := bson.M{}

	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"post": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"username": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return filter
}

// TallyReactions recomputes the per-type reaction buckets from the Reaction
// documents of one post. Types are matched case-insensitively; unrecognized
// types are skipped and count toward neither a bucket nor the total.
func TallyReactions(reactions []models.Reaction) models.ReactionCounts {
	var counts models.ReactionCounts

	for _, r := range reactions {
		switch strings.ToLower(r.Type) {
		case "like":
			counts.Like++
		case "love":
			counts.Love++
		case "happy":
			counts.Happy++
		case "wow":
			counts.Wow++
		case "sad":
			counts.Sad++
		case "angry":
			counts.Angry++
		}
	}

	counts.Total = counts.Like + counts.Love + counts.Happy + counts.Wow + counts.Sad + counts.Angry
	return counts
}

// JoinProfiles attaches each account's profile by hashing profiles on their
// stringified authId. Accounts without a profile get Profile == nil, which
// serializes as profile: null.
func JoinProfiles(auths []models.Auth, profiles []models.UserProfile) []models.UserWithProfile {
	byAuthID := make(map[string]*models.UserProfile, len(profiles))
	for i := range profiles {
		byAuthID[profiles[i].AuthID.Hex()] = &profiles[i]
	}

	users := make([]models.UserWithProfile, 0, len(auths))
	for _, auth := range auths {
		users = append(users, models.UserWithProfile{
			Auth:    auth,
			Profile: byAuthID[auth.ID.Hex()],
		})
	}
	return users
}

// ClampYear parses the year parameter for the by-month stats. Missing,
// malformed, or out-of-range values ([2000, current year + 1]) fall back to
// the current year.
func ClampYear(raw string, now time.Time) int {
	year, err := strconv.Atoi(raw)
	current := now.Year()
	if err != nil || year < 2000 || year > current+1 {
		return current
	}
	return year
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}
