package service

import (
	"context"
	"strings"
	"time"

	"ClipHive.com/cmd/interaction/dal/db"
	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VideoProvider is the slice of the video store the comment service needs.
type VideoProvider interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
}

type CommentService struct {
	ctx    context.Context
	repo   *db.InteractionRepo
	videos VideoProvider
}

func NewCommentService(ctx context.Context, repo *db.InteractionRepo, videos VideoProvider) *CommentService {
	return &CommentService{ctx: ctx, repo: repo, videos: videos}
}

func (service *CommentService) CreateComment(ctx context.Context, userId, videoId int64, content string) (*model.Comment, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid video id")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Comment content must not be empty")
	}
	exists, err := service.videos.VideoExists(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to check video existence: %v", err)
		return nil, errno.ServiceErr
	}
	if !exists {
		return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: int64(uuid.New().ID()),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.repo.CreateComment(ctx, comment); err != nil {
		hlog.CtxErrorf(ctx, "Failed to create comment: %v", err)
		return nil, errno.ServiceErr
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(ctx context.Context, userId, commentId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("New content is required")
	}
	comment, err := service.repo.GetCommentInfo(ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Comment not found")
		}
		hlog.CtxErrorf(ctx, "Failed to get comment: %v", err)
		return nil, errno.ServiceErr
	}
	if comment.UserId != userId {
		return nil, errno.OwnershipErr.WithMessage("Only the owner can update the comment")
	}
	updatedAt := time.Now().Format(constants.DataFormate)
	if err := service.repo.UpdateCommentContent(ctx, commentId, content, updatedAt); err != nil {
		hlog.CtxErrorf(ctx, "Failed to update comment: %v", err)
		return nil, errno.ServiceErr
	}
	comment.Content = content
	comment.UpdatedAt = updatedAt
	return comment, nil
}

// DeleteComment removes the comment and cascades its likes. A failed like
// cleanup is surfaced, not swallowed, even though the comment row is gone.
func (service *CommentService) DeleteComment(ctx context.Context, userId, commentId int64) error {
	comment, err := service.repo.GetCommentInfo(ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.RecordNotFoundErr.WithMessage("Comment not found")
		}
		hlog.CtxErrorf(ctx, "Failed to get comment: %v", err)
		return errno.ServiceErr
	}
	if comment.UserId != userId {
		return errno.OwnershipErr.WithMessage("Only the owner can delete the comment")
	}
	if err := service.repo.DeleteComment(ctx, commentId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete comment: %v", err)
		return errno.ServiceErr
	}
	if err := service.repo.DeleteTargetLikes(ctx, model.TargetComment, commentId); err != nil {
		hlog.CtxErrorf(ctx, "Comment %d deleted but like cleanup failed: %v", commentId, err)
		return errno.ServiceErr
	}
	return nil
}

// ListComments returns one page of the per-video comment view.
func (service *CommentService) ListComments(ctx context.Context, videoId, pageNum, pageSize int64) ([]*db.CommentRow, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid video id")
	}
	if pageNum < 1 || pageSize < 1 {
		return nil, errno.ParamErr.WithMessage("Invalid pagination parameter")
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	rows, err := service.repo.QueryVideoComments(ctx, videoId, pageNum, pageSize)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to list comments: %v", err)
		return nil, errno.ServiceErr
	}
	return rows, nil
}
