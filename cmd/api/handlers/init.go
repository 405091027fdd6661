package handlers

import (
	"context"

	dashboardsvc "VidTube.com/cmd/dashboard/service"
	interactiondb "VidTube.com/cmd/interaction/dal/db"
	interactionsvc "VidTube.com/cmd/interaction/service"
	playlistdb "VidTube.com/cmd/playlist/dal/db"
	playlistsvc "VidTube.com/cmd/playlist/service"
	relationdb "VidTube.com/cmd/relation/dal/db"
	relationsvc "VidTube.com/cmd/relation/service"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	tweetsvc "VidTube.com/cmd/tweet/service"
	userdb "VidTube.com/cmd/user/dal/db"
	usersvc "VidTube.com/cmd/user/service"
	videodb "VidTube.com/cmd/video/dal/db"
	videosvc "VidTube.com/cmd/video/service"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/mq"
)

var (
	userService         *usersvc.UserService
	videoService        *videosvc.VideoService
	commentService      *interactionsvc.CommentService
	likeService         *interactionsvc.LikeService
	subscriptionService *relationsvc.SubscriptionService
	tweetService        *tweetsvc.TweetService
	playlistService     *playlistsvc.PlaylistService
	dashboardService    *dashboardsvc.DashboardService
)

// Init wires the repositories over the shared gorm handle into the
// service layer. Called once at startup, after database and cache
// init. producer may be nil; view events are then dropped.
func Init(producer *mq.Producer) {
	userRepo := userdb.NewUserRepo(database.DB)
	videoRepo := videodb.NewVideoRepo(database.DB)
	commentRepo := interactiondb.NewCommentRepo(database.DB)
	likeRepo := interactiondb.NewLikeRepo(database.DB)
	targetRepo := interactiondb.NewTargetCheckRepo(database.DB)
	subRepo := relationdb.NewSubscriptionRepo(database.DB)
	tweetRepo := tweetdb.NewTweetRepo(database.DB)
	playlistRepo := playlistdb.NewPlaylistRepo(database.DB)
	locker := cache.NewToggleLocker()

	var views videosvc.ViewPublisher
	if producer != nil {
		views = producer
	}

	userService = usersvc.NewUserService(userRepo)
	videoService = videosvc.NewVideoService(videoRepo, userRepo, videosvc.NewOssMediaStore(), views)
	commentService = interactionsvc.NewCommentService(commentRepo, videoRepo, userRepo)
	likeService = interactionsvc.NewLikeService(likeRepo, targetRepo, videoRepo, locker)
	subscriptionService = relationsvc.NewSubscriptionService(subRepo, userRepo, locker)
	tweetService = tweetsvc.NewTweetService(tweetRepo, userRepo)
	playlistService = playlistsvc.NewPlaylistService(playlistRepo, videoRepo)
	dashboardService = dashboardsvc.NewDashboardService(videoRepo, subRepo, likeRepo, userRepo)
}

// Authenticate adapts the account service to the jwt middleware's
// credential check.
func Authenticate(ctx context.Context, username, password string) (*identity.Identity, error) {
	return userService.Login(ctx, username, password)
}
