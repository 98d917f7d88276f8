package service

import (
	"context"

	videodb "ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/sync/errgroup"
)

// SubscriberCounter is the slice of the subscription store the dashboard
// needs.
type SubscriberCounter interface {
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
}

type DashboardService struct {
	ctx    context.Context
	videos *videodb.VideoRepo
	subs   SubscriberCounter
}

func NewDashboardService(ctx context.Context, videos *videodb.VideoRepo, subs SubscriberCounter) *DashboardService {
	return &DashboardService{ctx: ctx, videos: videos, subs: subs}
}

// ChannelStats is the owner's dashboard summary.
type ChannelStats struct {
	TotalViews       int64 `json:"total_views"`
	TotalVideos      int64 `json:"total_videos"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

// GetChannelStats aggregates the channel summary. The two stores are
// independent, so they are queried concurrently. A brand-new channel gets
// all zeros, never an error.
func (service *DashboardService) GetChannelStats(ctx context.Context, channelId int64) (*ChannelStats, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("Provide valid channel id")
	}

	var (
		videoStats  *videodb.ChannelVideoStats
		subscribers int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := service.videos.GetChannelVideoStats(gctx, channelId)
		if err != nil {
			return err
		}
		videoStats = stats
		return nil
	})
	g.Go(func() error {
		count, err := service.subs.CountSubscribers(gctx, channelId)
		if err != nil {
			return err
		}
		subscribers = count
		return nil
	})
	if err := g.Wait(); err != nil {
		hlog.CtxErrorf(ctx, "Failed to aggregate channel stats: %v", err)
		return nil, errno.ServiceErr
	}

	return &ChannelStats{
		TotalViews:       videoStats.TotalViews,
		TotalVideos:      videoStats.TotalVideos,
		TotalLikes:       videoStats.TotalLikes,
		TotalSubscribers: subscribers,
	}, nil
}

// GetChannelVideos lists every video the channel owns, published or not,
// with per-video like counts.
func (service *DashboardService) GetChannelVideos(ctx context.Context, channelId int64) ([]*videodb.ChannelVideoRow, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("Provide valid channel id")
	}
	rows, err := service.videos.GetChannelVideos(ctx, channelId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to get channel videos: %v", err)
		return nil, errno.ServiceErr
	}
	return rows, nil
}
