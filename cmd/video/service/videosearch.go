package service

import (
	"context"
	"strings"

	"ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SearchVideos runs the free-text listing. Zero matches is a not-found here,
// which is the established contract of this view (unlike channel videos,
// where an empty list is a success).
func (service *VideoService) SearchVideos(ctx context.Context, keyword, sortBy, sortOrder string, pageNum, pageSize int64) ([]*db.VideoSearchRow, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, errno.ParamErr.WithMessage("Enter the query to get videos")
	}
	if pageNum < 1 || pageSize < 1 {
		return nil, errno.ParamErr.WithMessage("Invalid pagination parameter")
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	rows, err := service.repo.SearchVideos(ctx, keyword, sortBy, sortOrder, pageNum, pageSize)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to search videos: %v", err)
		return nil, errno.ServiceErr
	}
	if len(rows) == 0 {
		return nil, errno.RecordNotFoundErr.WithMessage("No videos found by " + keyword)
	}
	return rows, nil
}

// ChannelVideos lists every video of a channel with like counts. Empty is a
// normal result.
func (service *VideoService) ChannelVideos(ctx context.Context, ownerId int64) ([]*db.ChannelVideoRow, error) {
	rows, err := service.repo.GetChannelVideos(ctx, ownerId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to get channel videos: %v", err)
		return nil, errno.ServiceErr
	}
	return rows, nil
}
