package service

import (
	"context"
	"testing"
	"time"

	"ClipHive.com/cmd/model"
	relationdb "ClipHive.com/cmd/relation/dal/db"
	videodb "ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

func seedVideo(t *testing.T, conn *gorm.DB, videoId, ownerId, visits int64, published bool) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	if err := conn.Create(&model.Video{
		VideoId:     videoId,
		UserId:      ownerId,
		VideoUrl:    "http://cdn.local/video.mp4",
		CoverUrl:    "http://cdn.local/cover.png",
		Title:       "seeded",
		Description: "seeded",
		VisitCount:  visits,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
}

func TestChannelStats(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	svc := NewDashboardService(ctx, videodb.NewVideoRepo(conn), relationdb.NewSubscriptionRepo(conn))

	t.Run("EmptyChannelIsAllZeros", func(t *testing.T) {
		stats, err := svc.GetChannelStats(ctx, 1)
		if err != nil {
			t.Fatalf("stats must never fail on an empty channel: %v", err)
		}
		if stats.TotalViews != 0 || stats.TotalVideos != 0 || stats.TotalLikes != 0 || stats.TotalSubscribers != 0 {
			t.Fatalf("expected all zeros, got %+v", stats)
		}
	})

	t.Run("Aggregates", func(t *testing.T) {
		seedVideo(t, conn, 100, 1, 10, true)
		seedVideo(t, conn, 101, 1, 5, false)
		seedVideo(t, conn, 200, 2, 99, true)

		for i, like := range []*model.Like{
			{LikeId: 1, UserId: 2, TargetType: model.TargetVideo, TargetId: 100},
			{LikeId: 2, UserId: 3, TargetType: model.TargetVideo, TargetId: 100},
			{LikeId: 3, UserId: 2, TargetType: model.TargetVideo, TargetId: 101},
			// Likes on someone else's video must not count.
			{LikeId: 4, UserId: 3, TargetType: model.TargetVideo, TargetId: 200},
		} {
			if err := conn.Create(like).Error; err != nil {
				t.Fatalf("seed like %d failed: %v", i, err)
			}
		}
		for i, sub := range []*model.Subscription{
			{SubscriptionId: 1, SubscriberId: 2, ChannelId: 1},
			{SubscriptionId: 2, SubscriberId: 3, ChannelId: 1},
		} {
			if err := conn.Create(sub).Error; err != nil {
				t.Fatalf("seed subscription %d failed: %v", i, err)
			}
		}

		stats, err := svc.GetChannelStats(ctx, 1)
		if err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if stats.TotalViews != 15 {
			t.Fatalf("expected 15 views, got %d", stats.TotalViews)
		}
		if stats.TotalVideos != 2 {
			t.Fatalf("expected 2 videos, got %d", stats.TotalVideos)
		}
		if stats.TotalLikes != 3 {
			t.Fatalf("expected 3 likes, got %d", stats.TotalLikes)
		}
		if stats.TotalSubscribers != 2 {
			t.Fatalf("expected 2 subscribers, got %d", stats.TotalSubscribers)
		}
	})
}

func TestDashboardChannelVideos(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	svc := NewDashboardService(ctx, videodb.NewVideoRepo(conn), relationdb.NewSubscriptionRepo(conn))

	t.Run("EmptyIsSuccess", func(t *testing.T) {
		rows, err := svc.GetChannelVideos(ctx, 1)
		if err != nil {
			t.Fatalf("channel videos failed: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected empty list, got %d rows", len(rows))
		}
	})

	t.Run("DraftsIncluded", func(t *testing.T) {
		seedVideo(t, conn, 100, 1, 10, true)
		seedVideo(t, conn, 101, 1, 0, false)
		if err := conn.Create(&model.Like{
			LikeId: 1, UserId: 2, TargetType: model.TargetVideo, TargetId: 100,
		}).Error; err != nil {
			t.Fatalf("seed like failed: %v", err)
		}

		rows, err := svc.GetChannelVideos(ctx, 1)
		if err != nil {
			t.Fatalf("channel videos failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected drafts included, got %d rows", len(rows))
		}
		likesById := map[int64]int64{}
		for _, row := range rows {
			likesById[row.VideoId] = row.TotalLikes
		}
		if likesById[100] != 1 || likesById[101] != 0 {
			t.Fatalf("unexpected like counts: %v", likesById)
		}
	})
}
