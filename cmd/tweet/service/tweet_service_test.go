package service

import (
	"context"
	"errors"
	"testing"

	interactiondb "ClipHive.com/cmd/interaction/dal/db"
	"ClipHive.com/cmd/model"
	"ClipHive.com/cmd/tweet/dal/db"
	"ClipHive.com/pkg/database"
	"ClipHive.com/pkg/errno"
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

func TestTweetLifecycle(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	repo := db.NewTweetRepo(conn)
	interactions := interactiondb.NewInteractionRepo(conn)
	svc := NewTweetService(ctx, repo, interactions)

	t.Run("EmptyContentRejected", func(t *testing.T) {
		_, err := svc.CreateTweet(ctx, 1, "  ")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
			t.Fatalf("expected param error, got %v", err)
		}
	})

	tweet, err := svc.CreateTweet(ctx, 1, "hello world")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if tweet.UserId != 1 || tweet.TweetId == 0 {
		t.Fatalf("unexpected tweet %+v", tweet)
	}

	t.Run("NonOwnerCannotUpdate", func(t *testing.T) {
		_, err := svc.UpdateTweet(ctx, 2, tweet.TweetId, "hijacked")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.OwnershipErrCode {
			t.Fatalf("expected ownership error, got %v", err)
		}
	})

	t.Run("OwnerUpdates", func(t *testing.T) {
		updated, err := svc.UpdateTweet(ctx, 1, tweet.TweetId, "hello again")
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Content != "hello again" {
			t.Fatalf("unexpected content %q", updated.Content)
		}
	})

	t.Run("ListCarriesLikeCounts", func(t *testing.T) {
		like, err := model.NewLike(2, model.TargetTweet, tweet.TweetId)
		if err != nil {
			t.Fatalf("new like failed: %v", err)
		}
		like.LikeId = 1
		if err := interactions.CreateLike(ctx, like); err != nil {
			t.Fatalf("seed like failed: %v", err)
		}

		rows, err := svc.UserTweets(ctx, 1)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 tweet, got %d", len(rows))
		}
		if rows[0].LikesCount != 1 {
			t.Fatalf("expected 1 like, got %d", rows[0].LikesCount)
		}
	})

	t.Run("EmptyListIsSuccess", func(t *testing.T) {
		rows, err := svc.UserTweets(ctx, 42)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected empty list, got %d rows", len(rows))
		}
	})

	t.Run("DeleteCascadesLikes", func(t *testing.T) {
		if err := svc.DeleteTweet(ctx, 1, tweet.TweetId); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		count, err := interactions.CountTargetLikes(ctx, model.TargetTweet, tweet.TweetId)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected 0 likes after delete, got %d", count)
		}
		_, err = svc.UpdateTweet(ctx, 1, tweet.TweetId, "ghost")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.RecordNotFoundCode {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}
