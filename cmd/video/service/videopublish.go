package service

import (
	"context"
	"strings"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// PublishVideo uploads both assets first and only then writes the row, so a
// failed upload never leaves a video record pointing at nothing. The media
// store removes the local temp files on every path.
func (service *VideoService) PublishVideo(ctx context.Context, userId int64, title, description, videoPath, coverPath string) (*model.Video, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Provide title and description")
	}
	if videoPath == "" || coverPath == "" {
		return nil, errno.ParamErr.WithMessage("No video or cover file")
	}

	videoId := int64(uuid.New().ID())

	videoUrl, duration, err := service.media.UploadVideo(ctx, videoPath, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload video asset: %v", err)
		return nil, errno.ServiceErr
	}
	coverUrl, err := service.media.UploadImage(ctx, coverPath, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload cover asset: %v", err)
		// The video asset made it up before the cover failed, take it back
		// down instead of leaving an orphan.
		if delErr := service.media.Delete(ctx, videoUrl, oss.MediaKindVideo); delErr != nil {
			hlog.CtxWarnf(ctx, "Failed to clean up video asset after cover failure: %v", delErr)
		}
		return nil, errno.ServiceErr
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     videoId,
		UserId:      userId,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Title:       title,
		Description: description,
		Duration:    duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.repo.InsertVideo(ctx, video); err != nil {
		hlog.CtxErrorf(ctx, "Failed to insert video row: %v", err)
		return nil, errno.ServiceErr
	}
	return video, nil
}
