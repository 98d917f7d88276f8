package db

import (
	"context"

	"ClipHive.com/cmd/model"
	"github.com/pkg/errors"
)

// LikedVideoRow is one row of the liked-videos view: the like plus the full
// video and its owner profile. Likes whose video has since been deleted do
// not appear, the video join is an inner join on purpose.
type LikedVideoRow struct {
	LikeId        int64   `json:"like_id"`
	LikedBy       int64   `json:"liked_by"`
	VideoId       int64   `json:"video_id"`
	VideoUrl      string  `json:"video_url"`
	CoverUrl      string  `json:"cover_url"`
	Title         string  `json:"title"`
	VisitCount    int64   `json:"visit_count"`
	Duration      float64 `json:"duration"`
	OwnerId       int64   `json:"owner_id"`
	OwnerName     string  `json:"owner_name"`
	OwnerFullName string  `json:"owner_full_name"`
	OwnerAvatar   string  `json:"owner_avatar"`
}

func (r *InteractionRepo) CreateLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteLike removes the (user, target) like row when present and reports
// whether anything was deleted. The toggle services branch on that.
func (r *InteractionRepo) DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, errors.WithMessage(result.Error, "Failed to delete like")
	}
	return result.RowsAffected > 0, nil
}

// DeleteTargetLikes drops every like pointing at one entity, cascade path of
// video/comment/tweet deletes.
func (r *InteractionRepo) DeleteTargetLikes(ctx context.Context, targetType string, targetId int64) error {
	if err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", targetType, targetId).
		Delete(&model.Like{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete target likes")
	}
	return nil
}

func (r *InteractionRepo) CountTargetLikes(ctx context.Context, targetType string, targetId int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InteractionRepo) IsLikedBy(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// QueryLikedVideos lists every video a viewer has liked, owner profile joined
// in, with likes on deleted videos filtered out by the inner join.
func (r *InteractionRepo) QueryLikedVideos(ctx context.Context, userId int64) ([]*LikedVideoRow, error) {
	rows := make([]*LikedVideoRow, 0)
	err := r.db.WithContext(ctx).Table("likes l").
		Select(`l.like_id, l.user_id AS liked_by,
			v.video_id, v.video_url, v.cover_url, v.title, v.visit_count, v.duration,
			u.user_id AS owner_id, u.user_name AS owner_name,
			u.full_name AS owner_full_name, u.avatar_url AS owner_avatar`).
		Joins("JOIN videos v ON v.video_id = l.target_id").
		Joins("LEFT JOIN users u ON u.user_id = v.user_id").
		Where("l.user_id = ? AND l.target_type = ?", userId, model.TargetVideo).
		Order("l.like_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to query liked videos")
	}
	return rows, nil
}
