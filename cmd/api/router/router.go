package router

import (
	"time"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
)

// Register mounts the REST surface. Reads are public; anything that
// mutates or exposes per-user data sits behind the jwt middleware.
func Register(h *server.Hertz) error {
	authMiddleware, err := jwt.New(handlers.Authenticate)
	if err != nil {
		return err
	}
	if err := authMiddleware.MiddlewareInit(); err != nil {
		return err
	}

	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1 := h.Group("/api/v1")

	v1.POST("/users/register", handlers.Register)
	v1.POST("/users/login", authMiddleware.LoginHandler)
	v1.GET("/users/:user_id", handlers.GetUserInfo)
	v1.GET("/users/:user_id/tweets", handlers.GetUserTweets)
	v1.GET("/users/:user_id/playlists", handlers.GetUserPlaylists)
	v1.GET("/videos", handlers.ListVideos)
	v1.GET("/videos/:video_id", handlers.GetVideo)
	v1.GET("/videos/:video_id/comments", handlers.ListVideoComments)
	v1.GET("/playlists/:playlist_id", handlers.GetPlaylist)

	auth := v1.Group("", authMiddleware.MiddlewareFunc())
	auth.GET("/auth/refresh", authMiddleware.RefreshHandler)

	auth.POST("/videos", handlers.PublishVideo)
	auth.PATCH("/videos/:video_id", handlers.UpdateVideo)
	auth.DELETE("/videos/:video_id", handlers.DeleteVideo)
	auth.PATCH("/videos/:video_id/toggle-publish", handlers.TogglePublish)

	auth.POST("/videos/:video_id/comments", handlers.AddComment)
	auth.PATCH("/comments/:comment_id", handlers.UpdateComment)
	auth.DELETE("/comments/:comment_id", handlers.DeleteComment)

	auth.POST("/likes/toggle", handlers.ToggleLike)
	auth.GET("/likes/videos", handlers.GetLikedVideos)

	auth.POST("/subscriptions/:channel_id/toggle", handlers.ToggleSubscription)
	auth.GET("/channels/:channel_id/subscribers", handlers.GetSubscribers)
	auth.GET("/users/:user_id/subscriptions", handlers.GetSubscribedChannels)

	auth.POST("/tweets", handlers.CreateTweet)
	auth.PATCH("/tweets/:tweet_id", handlers.UpdateTweet)
	auth.DELETE("/tweets/:tweet_id", handlers.DeleteTweet)

	auth.POST("/playlists", handlers.CreatePlaylist)
	auth.PATCH("/playlists/:playlist_id", handlers.UpdatePlaylist)
	auth.DELETE("/playlists/:playlist_id", handlers.DeletePlaylist)
	auth.POST("/playlists/:playlist_id/videos/:video_id", handlers.AddVideoToPlaylist)
	auth.DELETE("/playlists/:playlist_id/videos/:video_id", handlers.RemoveVideoFromPlaylist)

	auth.GET("/dashboard/:channel_id/stats", handlers.GetChannelStats)
	auth.GET("/dashboard/:channel_id/videos", handlers.GetChannelVideos)

	return nil
}
