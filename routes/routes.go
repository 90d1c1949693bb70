package routes

import (
	"time"

	"github.com/NgHoaiTan/chatty-cms/config"
	"github.com/NgHoaiTan/chatty-cms/handlers"
	"github.com/NgHoaiTan/chatty-cms/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	authRequired := middleware.JWTAuthMiddleware(cfg.JWTSecret)

	admin := router.Group("/api/admin")
	admin.POST("/login", middleware.LoginRateLimitMiddleware(), handlers.Login)
	admin.GET("/profile", authRequired, handlers.AdminProfile)

	users := router.Group("/api/users")
	users.Use(authRequired)
	users.GET("", handlers.GetUsers)
	users.GET("/stats", handlers.GetUserStats)
	users.GET("/new-this-month", handlers.GetNewUsersThisMonth)
	users.GET("/by-month", handlers.GetUsersByMonth)
	users.GET("/:id", handlers.GetUser)
	users.PUT("/:id", handlers.UpdateUser)
	users.DELETE("/:id", handlers.DeleteUser)
	users.POST("/:id/restore", handlers.RestoreUser)

	posts := router.Group("/api/posts")
	posts.Use(authRequired)
	posts.GET("", handlers.GetPosts)
	posts.GET("/:id", handlers.GetPost)

	// JSON 404 for unknown API paths
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"success": false,
				"message": "Endpoint not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
