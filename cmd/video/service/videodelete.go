package service

import (
	"context"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/mq"
	"ClipHive.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DeleteVideo removes the video row, then fans out the cleanup: comments,
// likes, watch-history rows, playlist rows and both remote assets. The five
// legs have no ordering between them and all of them are attempted. A failed
// store leg fails the request; a failed media leg leaves an orphaned remote
// asset, which is reported through the cleanup queue instead of failing a
// delete whose rows are already gone.
func (service *VideoService) DeleteVideo(ctx context.Context, userId, videoId int64) (*model.Video, error) {
	video, err := service.getOwnedVideo(ctx, userId, videoId)
	if err != nil {
		return nil, err
	}
	if err := service.repo.DeleteVideo(ctx, videoId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete video row: %v", err)
		return nil, errno.ServiceErr
	}

	storeErrs := make([]error, 4)
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.Go(func() error {
		storeErrs[0] = service.interactions.DeleteVideoComments(gctx, videoId)
		return nil
	})
	g.Go(func() error {
		storeErrs[1] = service.interactions.DeleteTargetLikes(gctx, model.TargetVideo, videoId)
		return nil
	})
	g.Go(func() error {
		storeErrs[2] = service.repo.RemoveVideoFromWatchHistories(gctx, videoId)
		return nil
	})
	g.Go(func() error {
		storeErrs[3] = service.playlists.RemoveVideoFromPlaylists(gctx, videoId)
		return nil
	})
	g.Go(func() error {
		if err := service.media.Delete(gctx, video.VideoUrl, oss.MediaKindVideo); err != nil {
			service.reportOrphanedAsset(gctx, videoId, video.VideoUrl, "delete video asset", err)
		}
		if err := service.media.Delete(gctx, video.CoverUrl, oss.MediaKindImage); err != nil {
			service.reportOrphanedAsset(gctx, videoId, video.CoverUrl, "delete cover asset", err)
		}
		return nil
	})
	g.Wait()

	for _, err := range storeErrs {
		if err != nil {
			hlog.CtxErrorf(ctx, "Video %d deleted but cascade cleanup failed: %v", videoId, err)
			return nil, errno.ServiceErr
		}
	}
	return video, nil
}

func (service *VideoService) reportOrphanedAsset(ctx context.Context, videoId int64, assetUrl, operation string, cause error) {
	hlog.CtxErrorf(ctx, "Orphaned asset after video %d delete (%s): %v", videoId, operation, cause)
	if service.producer == nil {
		return
	}
	event := &mq.CleanupEvent{
		EntityType: "video",
		EntityID:   videoId,
		Operation:  operation,
		AssetURL:   assetUrl,
		Reason:     cause.Error(),
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := service.producer.PublishCleanupEvent(ctx, event); err != nil {
		hlog.CtxErrorf(ctx, "Failed to publish cleanup event for video %d: %v", videoId, err)
	}
}
