package db

import (
	"context"

	"ClipHive.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

// CommentRow is one row of the per-video comment view: the comment, the
// commenter's whitelisted profile and the like count.
type CommentRow struct {
	CommentId         int64  `json:"comment_id"`
	Content           string `json:"content"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
	CommenterId       int64  `json:"commenter_id"`
	CommenterName     string `json:"commenter_name"`
	CommenterFullName string `json:"commenter_full_name"`
	CommenterAvatar   string `json:"commenter_avatar"`
	LikesCount        int64  `json:"likes_count"`
}

func (r *InteractionRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *InteractionRepo) GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := new(model.Comment)
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *InteractionRepo) UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error; err != nil {
		return errors.WithMessage(err, "Failed to update comment")
	}
	return nil
}

func (r *InteractionRepo) DeleteComment(ctx context.Context, commentId int64) error {
	if err := r.db.WithContext(ctx).Where("comment_id = ?", commentId).
		Delete(&model.Comment{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete comment")
	}
	return nil
}

// DeleteVideoComments removes every comment on a video, cascade path of a
// video delete.
func (r *InteractionRepo) DeleteVideoComments(ctx context.Context, videoId int64) error {
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.Comment{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete video comments")
	}
	return nil
}

func (r *InteractionRepo) GetVideoCommentCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// QueryVideoComments builds the paginated comment view for a video in
// insertion order, comment id as tiebreak so pages stay stable.
func (r *InteractionRepo) QueryVideoComments(ctx context.Context, videoId, pageNum, pageSize int64) ([]*CommentRow, error) {
	rows := make([]*CommentRow, 0)
	err := r.db.WithContext(ctx).Table("comments c").
		Select(`c.comment_id, c.content, c.created_at, c.updated_at,
			u.user_id AS commenter_id, u.user_name AS commenter_name,
			u.full_name AS commenter_full_name, u.avatar_url AS commenter_avatar,
			(SELECT COUNT(*) FROM likes l WHERE l.target_type = ? AND l.target_id = c.comment_id) AS likes_count`,
			model.TargetComment).
		Joins("LEFT JOIN users u ON u.user_id = c.user_id").
		Where("c.video_id = ?", videoId).
		Order("c.created_at ASC, c.comment_id ASC").
		Offset(int((pageNum - 1) * pageSize)).
		Limit(int(pageSize)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to query video comments")
	}
	return rows, nil
}
