package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/osidou/osidou-web/internal/handler"
	"github.com/osidou/osidou-web/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// Setup configures all browser-facing API routes.
// The session middleware must already be installed on router.
func Setup(
	router *gin.Engine,
	appHandler *handler.AppHandler,
	sessionHandler *handler.SessionHandler,
	profileHandler *handler.ProfileHandler,
	moodHandler *handler.MoodHandler,
	communityHandler *handler.CommunityHandler,
	friendHandler *handler.FriendHandler,
	wsHandler *handler.WSHandler,
	redisClient *redis.Client,
) {
	writeLimit := middleware.RateLimitPerSession(redisClient, middleware.WriteRateLimitConfig())

	api := router.Group("/api")

	// Application bootstrap (full-page error on failure)
	api.GET("/app", appHandler.Bootstrap)

	// Token store
	session := api.Group("/session")
	session.GET("", sessionHandler.Describe)
	session.PUT("/token", sessionHandler.SetToken)
	session.DELETE("", sessionHandler.Clear)

	// Profile
	profile := api.Group("/profile")
	profile.GET("/me", profileHandler.MyProfile)
	profile.PUT("/me", profileHandler.Update)
	profile.PATCH("/me/mood-visibility", profileHandler.SetMoodVisibility)
	profile.GET("/:id", profileHandler.UserProfile)
	profile.POST("/:id/follow", writeLimit, profileHandler.Follow)

	// Moods
	moods := api.Group("/moods")
	moods.GET("/catalog", moodHandler.Catalog)
	moods.GET("/feed", moodHandler.Feed)
	moods.GET("/history", moodHandler.History)
	moods.POST("", writeLimit, moodHandler.Post)

	// Community list / detail / membership
	community := api.Group("/community")
	community.GET("", communityHandler.List)
	community.GET("/mine", communityHandler.Mine)
	community.GET("/:id", communityHandler.Detail)
	community.POST("/:id/join", communityHandler.Join)
	community.DELETE("/:id/leave", communityHandler.Leave)

	// Board (chat)
	board := community.Group("/:id/board")
	{
		board.GET("", communityHandler.Board)
		board.POST("/messages", writeLimit, communityHandler.SendMessage)
		board.POST("/meetups", writeLimit, communityHandler.SendMeetup)
		board.POST("/ads", writeLimit, communityHandler.SendAd)
		board.POST("/posts/:post_id/participate", communityHandler.JoinMeetup)
	}

	// Friend manager
	friends := api.Group("/friends")
	friends.GET("", friendHandler.Friends)
	friends.GET("/search", friendHandler.Search)
	friends.POST("/requests", writeLimit, friendHandler.SendRequest)
	friends.GET("/requests/incoming", friendHandler.Incoming)
	friends.GET("/requests/sent", friendHandler.Sent)
	friends.POST("/requests/:id/accept", friendHandler.Accept)
	friends.POST("/requests/:id/reject", friendHandler.Reject)
	friends.PATCH("/:id/mute", friendHandler.ToggleMute)
	friends.PUT("/:id/note", friendHandler.SaveNote)
	friends.PATCH("/users/:user_id/status", friendHandler.SetStatus)

	// Live board
	router.GET("/ws/community/:id", wsHandler.Board)
}
