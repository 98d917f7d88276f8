package db

import (
	"context"

	"ClipHive.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// SubscriberRow is one subscriber of a channel with the whitelisted profile.
type SubscriberRow struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

// SubscriberGroup is the grouped subscriber-list view for one channel.
type SubscriberGroup struct {
	ChannelId       int64            `json:"channel_id"`
	Subscribers     []*SubscriberRow `json:"subscribers"`
	SubscriberCount int64            `json:"subscriber_count"`
}

// SubscribedChannelRow is one channel a user subscribes to, with that
// channel's own subscriber count.
type SubscribedChannelRow struct {
	ChannelId       int64  `json:"channel_id"`
	UserName        string `json:"user_name"`
	FullName        string `json:"full_name"`
	AvatarUrl       string `json:"avatar_url"`
	SubscriberCount int64  `json:"subscriber_count"`
}

// SubscribedChannelGroup is the grouped subscribed-channels view for a user.
type SubscribedChannelGroup struct {
	SubscriberId            int64                   `json:"subscriber_id"`
	SubscribedChannels      []*SubscribedChannelRow `json:"subscribed_channels"`
	TotalSubscribedChannels int64                   `json:"total_subscribed_channels"`
}

func (r *SubscriptionRepo) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// DeleteSubscription removes the (subscriber, channel) row when present and
// reports whether anything was deleted.
func (r *SubscriptionRepo) DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, errors.WithMessage(result.Error, "Failed to delete subscription")
	}
	return result.RowsAffected > 0, nil
}

func (r *SubscriptionRepo) CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SubscriptionRepo) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// QueryChannelSubscribers joins subscriber profiles onto a channel's
// subscription rows and groups them into one view document.
func (r *SubscriptionRepo) QueryChannelSubscribers(ctx context.Context, channelId int64) (*SubscriberGroup, error) {
	rows := make([]*SubscriberRow, 0)
	err := r.db.WithContext(ctx).Table("subscriptions s").
		Select(`u.user_id, u.user_name, u.full_name, u.avatar_url`).
		Joins("JOIN users u ON u.user_id = s.subscriber_id").
		Where("s.channel_id = ?", channelId).
		Order("s.subscription_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to query channel subscribers")
	}
	return &SubscriberGroup{
		ChannelId:       channelId,
		Subscribers:     rows,
		SubscriberCount: int64(len(rows)),
	}, nil
}

// QuerySubscribedChannels lists every channel a user subscribes to, each with
// its own subscriber count, grouped into one view document.
func (r *SubscriptionRepo) QuerySubscribedChannels(ctx context.Context, subscriberId int64) (*SubscribedChannelGroup, error) {
	rows := make([]*SubscribedChannelRow, 0)
	err := r.db.WithContext(ctx).Table("subscriptions s").
		Select(`s.channel_id, u.user_name, u.full_name, u.avatar_url,
			(SELECT COUNT(*) FROM subscriptions s2 WHERE s2.channel_id = s.channel_id) AS subscriber_count`).
		Joins("JOIN users u ON u.user_id = s.channel_id").
		Where("s.subscriber_id = ?", subscriberId).
		Order("s.subscription_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to query subscribed channels")
	}
	return &SubscribedChannelGroup{
		SubscriberId:            subscriberId,
		SubscribedChannels:      rows,
		TotalSubscribedChannels: int64(len(rows)),
	}, nil
}
