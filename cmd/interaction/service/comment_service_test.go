package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ClipHive.com/cmd/interaction/dal/db"
	"ClipHive.com/cmd/model"
	videodb "ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/errno"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	gorm := newTestDB(t)
	repo := db.NewInteractionRepo(gorm)
	svc := NewCommentService(ctx, repo, videodb.NewVideoRepo(gorm))

	seedUser(t, gorm, 1, "alice")
	seedVideo(t, gorm, 100, 1, "first video")

	t.Run("Success", func(t *testing.T) {
		comment, err := svc.CreateComment(ctx, 1, 100, "nice!")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if comment.UserId != 1 {
			t.Fatalf("expected owner 1, got %d", comment.UserId)
		}
		if comment.Content != "nice!" {
			t.Fatalf("unexpected content %q", comment.Content)
		}
		if comment.CommentId == 0 {
			t.Fatal("expected generated comment id")
		}
	})

	t.Run("EmptyContentRejected", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, 1, 100, "   ")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
			t.Fatalf("expected param error, got %v", err)
		}
	})

	t.Run("MissingVideoRejected", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, 1, 999, "hello")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.RecordNotFoundCode {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}

func TestUpdateAndDeleteComment(t *testing.T) {
	ctx := context.Background()
	gorm := newTestDB(t)
	repo := db.NewInteractionRepo(gorm)
	svc := NewCommentService(ctx, repo, videodb.NewVideoRepo(gorm))
	likeSvc := NewLikeService(ctx, repo, nil)

	seedUser(t, gorm, 1, "alice")
	seedUser(t, gorm, 2, "bob")
	seedVideo(t, gorm, 100, 1, "first video")

	comment, err := svc.CreateComment(ctx, 1, 100, "original")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("NonOwnerCannotUpdate", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, 2, comment.CommentId, "hijacked")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.OwnershipErrCode {
			t.Fatalf("expected ownership error, got %v", err)
		}
	})

	t.Run("OwnerUpdates", func(t *testing.T) {
		updated, err := svc.UpdateComment(ctx, 1, comment.CommentId, "edited")
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Content != "edited" {
			t.Fatalf("unexpected content %q", updated.Content)
		}
	})

	t.Run("UnknownCommentIsNotFound", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, 1, 999, "edited")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.RecordNotFoundCode {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("DeleteCascadesLikes", func(t *testing.T) {
		if _, err := likeSvc.ToggleLike(ctx, 2, model.TargetComment, comment.CommentId); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if err := svc.DeleteComment(ctx, 1, comment.CommentId); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		count, err := repo.CountTargetLikes(ctx, model.TargetComment, comment.CommentId)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected 0 likes after delete, got %d", count)
		}
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	gorm := newTestDB(t)
	repo := db.NewInteractionRepo(gorm)
	svc := NewCommentService(ctx, repo, videodb.NewVideoRepo(gorm))

	seedUser(t, gorm, 1, "alice")
	seedVideo(t, gorm, 100, 1, "first video")

	for i := 0; i < 25; i++ {
		if _, err := svc.CreateComment(ctx, 1, 100, fmt.Sprintf("comment %d", i)); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	t.Run("EmptyVideoIsSuccess", func(t *testing.T) {
		seedVideo(t, gorm, 101, 1, "quiet video")
		rows, err := svc.ListComments(ctx, 101, 1, 10)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(rows))
		}
	})

	t.Run("PageBounds", func(t *testing.T) {
		first, err := svc.ListComments(ctx, 100, 1, 10)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(first) != 10 {
			t.Fatalf("expected 10 rows on page 1, got %d", len(first))
		}
		last, err := svc.ListComments(ctx, 100, 3, 10)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(last) != 5 {
			t.Fatalf("expected 5 rows on page 3, got %d", len(last))
		}
		for _, row := range last {
			for _, other := range first {
				if row.CommentId == other.CommentId {
					t.Fatalf("comment %d appears on two pages", row.CommentId)
				}
			}
		}
	})

	t.Run("CommenterProfileJoined", func(t *testing.T) {
		rows, err := svc.ListComments(ctx, 100, 1, 1)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].CommenterName != "alice" {
			t.Fatalf("expected commenter alice, got %q", rows[0].CommenterName)
		}
	})

	t.Run("InvalidPageRejected", func(t *testing.T) {
		_, err := svc.ListComments(ctx, 100, 0, 10)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.ParamErrCode {
			t.Fatalf("expected param error, got %v", err)
		}
	})
}
