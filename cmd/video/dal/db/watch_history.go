package db

import (
	"context"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// AddWatchHistory records that a user watched a video. Set semantics: a
// repeated watch only refreshes watch_time, it never adds a second row.
func (r *VideoRepo) AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	entry := &model.UserVideoWatchHistory{
		UserId:    userId,
		VideoId:   videoId,
		WatchTime: time.Now().Format(constants.DataFormate),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watch_time"}),
		}).
		Create(entry).Error
	if err != nil {
		return errors.WithMessage(err, "Failed to add watch history")
	}
	return nil
}

// RemoveVideoFromWatchHistories drops a deleted video out of every user's
// watch history.
func (r *VideoRepo) RemoveVideoFromWatchHistories(ctx context.Context, videoId int64) error {
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.UserVideoWatchHistory{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to remove video from watch histories")
	}
	return nil
}

func (r *VideoRepo) GetWatchHistoryCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserVideoWatchHistory{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
