package service

import (
	"context"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/cmd/relation/dal/db"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	ctx  context.Context
	repo *db.SubscriptionRepo
}

func NewSubscriptionService(ctx context.Context, repo *db.SubscriptionRepo) *SubscriptionService {
	return &SubscriptionService{ctx: ctx, repo: repo}
}

// ToggleSubscription flips the (subscriber, channel) state, rejecting
// self-subscription before touching the store. The unique index resolves
// concurrent toggles, as with likes.
func (service *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	if channelId <= 0 {
		return false, errno.ParamErr.WithMessage("Provide valid channel id")
	}
	if subscriberId == channelId {
		return false, errno.ConflictErr.WithMessage("Cannot subscribe your own channel")
	}

	deleted, err := service.repo.DeleteSubscription(ctx, subscriberId, channelId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete subscription: %v", err)
		return false, errno.ServiceErr
	}
	if deleted {
		return false, nil
	}

	sub := &model.Subscription{
		SubscriptionId: int64(uuid.New().ID()),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	if err := service.repo.CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, errno.ConflictErr.WithMessage("Subscription already exists")
		}
		hlog.CtxErrorf(ctx, "Failed to create subscription: %v", err)
		return false, errno.ServiceErr
	}
	return true, nil
}

// ChannelSubscribers returns the grouped subscriber-list view. A channel
// with zero subscribers surfaces as not-found; that is this view's
// long-standing contract, deliberately different from the empty-success
// views.
func (service *SubscriptionService) ChannelSubscribers(ctx context.Context, channelId int64) (*db.SubscriberGroup, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("Provide valid channel id")
	}
	group, err := service.repo.QueryChannelSubscribers(ctx, channelId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to query channel subscribers: %v", err)
		return nil, errno.ServiceErr
	}
	if group.SubscriberCount == 0 {
		return nil, errno.RecordNotFoundErr.WithMessage("Subscribers not found")
	}
	return group, nil
}

// SubscribedChannels returns the grouped subscribed-channels view, with the
// same zero-rows-is-not-found policy as the subscriber list.
func (service *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberId int64) (*db.SubscribedChannelGroup, error) {
	if subscriberId <= 0 {
		return nil, errno.ParamErr.WithMessage("Provide valid subscriber id")
	}
	group, err := service.repo.QuerySubscribedChannels(ctx, subscriberId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to query subscribed channels: %v", err)
		return nil, errno.ServiceErr
	}
	if group.TotalSubscribedChannels == 0 {
		return nil, errno.RecordNotFoundErr.WithMessage("No subscribed channels found")
	}
	return group, nil
}
