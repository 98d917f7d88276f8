package main

import (
	dashboardHandler "ClipHive.com/cmd/api/handlers/dashboard"
	interactionHandler "ClipHive.com/cmd/api/handlers/interaction"
	playlistHandler "ClipHive.com/cmd/api/handlers/playlist"
	relationHandler "ClipHive.com/cmd/api/handlers/relation"
	tweetHandler "ClipHive.com/cmd/api/handlers/tweet"
	videoHandler "ClipHive.com/cmd/api/handlers/video"
	"ClipHive.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

type apiHandlers struct {
	video       *videoHandler.VideoHandler
	interaction *interactionHandler.InteractionHandler
	relation    *relationHandler.RelationHandler
	tweet       *tweetHandler.TweetHandler
	playlist    *playlistHandler.PlaylistHandler
	dashboard   *dashboardHandler.DashboardHandler
}

func register(r *server.Hertz, h *apiHandlers) {
	v1 := r.Group("/api/v1")
	v1.Use(jwt.AccessTokenJwt.MiddlewareFunc())

	video := v1.Group("/video")
	{
		video.POST("/publish", h.video.PublishVideo)
		video.GET("/search", h.video.SearchVideos)
		video.GET("/:video_id", h.video.GetVideoById)
		video.POST("/update", h.video.UpdateVideo)
		video.POST("/delete", h.video.DeleteVideo)
		video.POST("/toggle_publish", h.video.TogglePublish)
	}
	v1.GET("/channel/:user_id/videos", h.video.ChannelVideos)

	comment := v1.Group("/comment")
	{
		comment.POST("/create", h.interaction.CreateComment)
		comment.POST("/update", h.interaction.UpdateComment)
		comment.POST("/delete", h.interaction.DeleteComment)
		comment.GET("/list", h.interaction.ListComments)
	}

	like := v1.Group("/like")
	{
		like.POST("/toggle", h.interaction.ToggleLike)
		like.GET("/videos", h.interaction.LikedVideos)
	}

	subscription := v1.Group("/subscription")
	{
		subscription.POST("/toggle", h.relation.ToggleSubscription)
		subscription.GET("/subscribers/:channel_id", h.relation.ChannelSubscribers)
		subscription.GET("/channels/:subscriber_id", h.relation.SubscribedChannels)
	}

	tweet := v1.Group("/tweet")
	{
		tweet.POST("/create", h.tweet.CreateTweet)
		tweet.POST("/update", h.tweet.UpdateTweet)
		tweet.POST("/delete", h.tweet.DeleteTweet)
		tweet.GET("/user/:user_id", h.tweet.UserTweets)
	}

	playlist := v1.Group("/playlist")
	{
		playlist.POST("/create", h.playlist.CreatePlaylist)
		playlist.POST("/update", h.playlist.UpdatePlaylist)
		playlist.POST("/delete", h.playlist.DeletePlaylist)
		playlist.POST("/add_video", h.playlist.AddVideo)
		playlist.POST("/remove_video", h.playlist.RemoveVideo)
		playlist.GET("/user/:user_id", h.playlist.UserPlaylists)
		playlist.GET("/:playlist_id", h.playlist.GetPlaylistById)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats", h.dashboard.ChannelStats)
		dashboard.GET("/videos", h.dashboard.ChannelVideos)
	}
}
