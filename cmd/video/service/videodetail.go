package service

import (
	"context"

	"ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GetVideoById returns the detail view and then fires the two read side
// effects, bumping the view counter and recording the viewer's watch history.
// The two writes are independent, so they run concurrently and are joined
// before the response goes out.
func (service *VideoService) GetVideoById(ctx context.Context, videoId, viewerId int64) (*db.VideoDetail, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid video id")
	}
	detail, err := service.repo.QueryVideoDetail(ctx, videoId, viewerId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		hlog.CtxErrorf(ctx, "Failed to query video detail: %v", err)
		return nil, errno.ServiceErr
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := service.repo.IncrVideoVisit(gctx, videoId); err != nil {
			return errors.WithMessage(err, "visit increment failed")
		}
		if service.cache != nil {
			if _, err := service.cache.IncrVisitCount(gctx, videoId); err != nil {
				hlog.CtxWarnf(gctx, "Failed to bump cached visit count: %v", err)
			}
		}
		return nil
	})
	g.Go(func() error {
		if err := service.repo.AddWatchHistory(gctx, viewerId, videoId); err != nil {
			return errors.WithMessage(err, "watch history update failed")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		hlog.CtxErrorf(ctx, "Video detail side effect failed: %v", err)
		return nil, errno.ServiceErr
	}
	return detail, nil
}
