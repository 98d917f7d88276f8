package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/cmd/playlist/dal/db"
	videodb "ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/constants"
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

func seedVideo(t *testing.T, conn *gorm.DB, videoId, ownerId int64) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	if err := conn.Create(&model.Video{
		VideoId:     videoId,
		UserId:      ownerId,
		VideoUrl:    "http://cdn.local/video.mp4",
		CoverUrl:    "http://cdn.local/cover.png",
		Title:       "seeded",
		Description: "seeded",
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
}

func TestCreatePlaylist(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	svc := NewPlaylistService(ctx, db.NewPlaylistRepo(conn), videodb.NewVideoRepo(conn))

	t.Run("NameAndDescriptionRequired", func(t *testing.T) {
		for _, pair := range [][2]string{{"", "desc"}, {"mix", ""}, {" ", " "}} {
			_, err := svc.CreatePlaylist(ctx, 1, pair[0], pair[1])
			var e errno.ErrNo
			if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
				t.Fatalf("expected param error for %v, got %v", pair, err)
			}
		}
	})

	t.Run("Success", func(t *testing.T) {
		playlist, err := svc.CreatePlaylist(ctx, 1, "mix", "weekend clips")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if playlist.UserId != 1 || playlist.PlaylistId == 0 {
			t.Fatalf("unexpected playlist %+v", playlist)
		}
	})

	t.Run("EmptyUserListIsSuccess", func(t *testing.T) {
		playlists, err := svc.UserPlaylists(ctx, 42)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(playlists) != 0 {
			t.Fatalf("expected empty list, got %d", len(playlists))
		}
	})
}

func TestPlaylistMembership(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	repo := db.NewPlaylistRepo(conn)
	svc := NewPlaylistService(ctx, repo, videodb.NewVideoRepo(conn))

	seedVideo(t, conn, 100, 1)
	seedVideo(t, conn, 101, 1)
	seedVideo(t, conn, 102, 1)

	playlist, err := svc.CreatePlaylist(ctx, 1, "mix", "weekend clips")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("NonOwnerCannotAdd", func(t *testing.T) {
		err := svc.AddVideo(ctx, 2, playlist.PlaylistId, 100)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.OwnershipErrCode {
			t.Fatalf("expected ownership error, got %v", err)
		}
	})

	t.Run("MissingVideoRejected", func(t *testing.T) {
		err := svc.AddVideo(ctx, 1, playlist.PlaylistId, 999)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.RecordNotFoundCode {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		for _, videoId := range []int64{101, 100, 102} {
			if err := svc.AddVideo(ctx, 1, playlist.PlaylistId, videoId); err != nil {
				t.Fatalf("add %d failed: %v", videoId, err)
			}
		}
		detail, err := svc.GetPlaylistById(ctx, playlist.PlaylistId)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		want := []int64{101, 100, 102}
		if len(detail.VideoIds) != len(want) {
			t.Fatalf("expected %d videos, got %d", len(want), len(detail.VideoIds))
		}
		for i, id := range want {
			if detail.VideoIds[i] != id {
				t.Fatalf("position %d: expected %d, got %d", i, id, detail.VideoIds[i])
			}
		}
	})

	t.Run("DuplicateAddIsNoOp", func(t *testing.T) {
		if err := svc.AddVideo(ctx, 1, playlist.PlaylistId, 100); err != nil {
			t.Fatalf("duplicate add should be a no-op, got %v", err)
		}
		detail, err := svc.GetPlaylistById(ctx, playlist.PlaylistId)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if len(detail.VideoIds) != 3 {
			t.Fatalf("expected 3 videos after duplicate add, got %d", len(detail.VideoIds))
		}
	})

	t.Run("RemoveVideo", func(t *testing.T) {
		if err := svc.RemoveVideo(ctx, 1, playlist.PlaylistId, 100); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		detail, err := svc.GetPlaylistById(ctx, playlist.PlaylistId)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		want := []int64{101, 102}
		if len(detail.VideoIds) != len(want) {
			t.Fatalf("expected %d videos, got %d", len(want), len(detail.VideoIds))
		}
		for i, id := range want {
			if detail.VideoIds[i] != id {
				t.Fatalf("position %d: expected %d, got %d", i, id, detail.VideoIds[i])
			}
		}
	})
}

func TestUpdateAndDeletePlaylist(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	repo := db.NewPlaylistRepo(conn)
	svc := NewPlaylistService(ctx, repo, videodb.NewVideoRepo(conn))

	seedVideo(t, conn, 100, 1)
	playlist, err := svc.CreatePlaylist(ctx, 1, "mix", "weekend clips")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.AddVideo(ctx, 1, playlist.PlaylistId, 100); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	t.Run("NoFieldsRejected", func(t *testing.T) {
		_, err := svc.UpdatePlaylist(ctx, 1, playlist.PlaylistId, " ", "")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
			t.Fatalf("expected param error, got %v", err)
		}
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		updated, err := svc.UpdatePlaylist(ctx, 1, playlist.PlaylistId, "new mix", "")
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Name != "new mix" {
			t.Fatalf("unexpected name %q", updated.Name)
		}
		if updated.Description != "weekend clips" {
			t.Fatalf("description should be untouched, got %q", updated.Description)
		}
	})

	t.Run("DeleteRemovesMembership", func(t *testing.T) {
		if err := svc.DeletePlaylist(ctx, 1, playlist.PlaylistId); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		_, err := svc.GetPlaylistById(ctx, playlist.PlaylistId)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.RecordNotFoundCode {
			t.Fatalf("expected not-found error, got %v", err)
		}
		var members int64
		if err := conn.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlist.PlaylistId).Count(&members).Error; err != nil {
			t.Fatalf("member count failed: %v", err)
		}
		if members != 0 {
			t.Fatalf("expected 0 membership rows, got %d", members)
		}
	})
}
