package service

import (
	"context"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UpdateVideo lets the owner change title, description and cover. A new
// cover uploads first, then the old asset is deleted; nothing to change is a
// conflict, the caller asked for an update that isn't one.
func (service *VideoService) UpdateVideo(ctx context.Context, userId, videoId int64, title, description, coverPath string) (*model.Video, error) {
	video, err := service.getOwnedVideo(ctx, userId, videoId)
	if err != nil {
		return nil, err
	}

	newCoverUrl := video.CoverUrl
	if coverPath != "" {
		uploaded, err := service.media.UploadImage(ctx, coverPath, videoId)
		if err != nil {
			hlog.CtxErrorf(ctx, "Failed to upload new cover: %v", err)
			return nil, errno.ServiceErr
		}
		newCoverUrl = uploaded
		if video.CoverUrl != "" && video.CoverUrl != newCoverUrl {
			if err := service.media.Delete(ctx, video.CoverUrl, oss.MediaKindImage); err != nil {
				hlog.CtxWarnf(ctx, "Failed to delete replaced cover %s: %v", video.CoverUrl, err)
			}
		}
	}

	if title == "" && description == "" && newCoverUrl == video.CoverUrl {
		return nil, errno.ConflictErr.WithMessage("No updates required")
	}
	if title == "" {
		title = video.Title
	}
	if description == "" {
		description = video.Description
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
		"cover_url":   newCoverUrl,
		"updated_at":  time.Now().Format(constants.DataFormate),
	}
	if err := service.repo.UpdateVideoInfo(ctx, videoId, updates); err != nil {
		hlog.CtxErrorf(ctx, "Failed to update video: %v", err)
		return nil, errno.ServiceErr
	}
	updated, err := service.repo.GetVideoInfo(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to reload updated video: %v", err)
		return nil, errno.ServiceErr
	}
	return updated, nil
}

// TogglePublish flips the publish flag, owner only.
func (service *VideoService) TogglePublish(ctx context.Context, userId, videoId int64) (*model.Video, error) {
	if _, err := service.getOwnedVideo(ctx, userId, videoId); err != nil {
		return nil, err
	}
	if err := service.repo.ToggleVideoPublish(ctx, videoId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to toggle publish flag: %v", err)
		return nil, errno.ServiceErr
	}
	toggled, err := service.repo.GetVideoInfo(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to reload toggled video: %v", err)
		return nil, errno.ServiceErr
	}
	return toggled, nil
}

// getOwnedVideo loads a video and enforces the ownership guard. Missing and
// not-owned are distinct rejections.
func (service *VideoService) getOwnedVideo(ctx context.Context, userId, videoId int64) (*model.Video, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid video id")
	}
	video, err := service.repo.GetVideoInfo(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		hlog.CtxErrorf(ctx, "Failed to get video: %v", err)
		return nil, errno.ServiceErr
	}
	if video.UserId != userId {
		return nil, errno.OwnershipErr.WithMessage("Only the owner can modify the video")
	}
	return video, nil
}
