package main

import (
	"context"
	"fmt"

	dashboardHandler "ClipHive.com/cmd/api/handlers/dashboard"
	interactionHandler "ClipHive.com/cmd/api/handlers/interaction"
	playlistHandler "ClipHive.com/cmd/api/handlers/playlist"
	relationHandler "ClipHive.com/cmd/api/handlers/relation"
	tweetHandler "ClipHive.com/cmd/api/handlers/tweet"
	videoHandler "ClipHive.com/cmd/api/handlers/video"
	dashboardservice "ClipHive.com/cmd/dashboard/service"
	interactiondb "ClipHive.com/cmd/interaction/dal/db"
	interactionservice "ClipHive.com/cmd/interaction/service"
	playlistdb "ClipHive.com/cmd/playlist/dal/db"
	playlistservice "ClipHive.com/cmd/playlist/service"
	relationdb "ClipHive.com/cmd/relation/dal/db"
	relationservice "ClipHive.com/cmd/relation/service"
	tweetdb "ClipHive.com/cmd/tweet/dal/db"
	tweetservice "ClipHive.com/cmd/tweet/service"
	videodb "ClipHive.com/cmd/video/dal/db"
	videoservice "ClipHive.com/cmd/video/service"
	"ClipHive.com/config"
	"ClipHive.com/pkg/cache"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/database"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"ClipHive.com/pkg/mq"
	"ClipHive.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func buildHandlers(cfg *config.Config) (*apiHandlers, error) {
	db, err := database.Init(cfg)
	if err != nil {
		return nil, err
	}

	media, err := oss.NewStore(cfg)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	videoCache := cache.NewVideoCacheManager(redisClient)

	// The broker is optional: services degrade to synchronous-only behavior
	// when the producer is nil.
	amqpURL := fmt.Sprintf("amqp://%s:%s@%s/", cfg.RabbitMq.Username, cfg.RabbitMq.Password, cfg.RabbitMq.Addr)
	producer, err := mq.NewProducer(amqpURL)
	if err != nil {
		logrus.Warnf("rabbitmq unavailable, events disabled: %v", err)
		producer = nil
	}

	ctx := context.Background()
	videoRepo := videodb.NewVideoRepo(db)
	interactionRepo := interactiondb.NewInteractionRepo(db)
	subscriptionRepo := relationdb.NewSubscriptionRepo(db)
	tweetRepo := tweetdb.NewTweetRepo(db)
	playlistRepo := playlistdb.NewPlaylistRepo(db)

	videoSvc := videoservice.NewVideoService(ctx, videoRepo, interactionRepo, playlistRepo, media, videoCache, producer)
	commentSvc := interactionservice.NewCommentService(ctx, interactionRepo, videoRepo)
	likeSvc := interactionservice.NewLikeService(ctx, interactionRepo, producer)
	subscriptionSvc := relationservice.NewSubscriptionService(ctx, subscriptionRepo)
	tweetSvc := tweetservice.NewTweetService(ctx, tweetRepo, interactionRepo)
	playlistSvc := playlistservice.NewPlaylistService(ctx, playlistRepo, videoRepo)
	dashboardSvc := dashboardservice.NewDashboardService(ctx, videoRepo, subscriptionRepo)

	return &apiHandlers{
		video:       videoHandler.New(videoSvc),
		interaction: interactionHandler.New(commentSvc, likeSvc),
		relation:    relationHandler.New(subscriptionSvc),
		tweet:       tweetHandler.New(tweetSvc),
		playlist:    playlistHandler.New(playlistSvc),
		dashboard:   dashboardHandler.New(dashboardSvc),
	}, nil
}

func main() {
	config.Init()
	cfg := &config.ConfigInfo

	handlers, err := buildHandlers(cfg)
	if err != nil {
		logrus.Fatalf("bootstrap failed: %v", err)
	}

	if err := jwt.AccessTokenJwtInit(cfg.Jwt.Secret); err != nil {
		logrus.Fatalf("jwt init failed: %v", err)
	}

	addr := cfg.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(constants.MaxVideoSize),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r, handlers)
	r.Spin()
}
