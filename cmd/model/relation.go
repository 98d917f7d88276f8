package model

// Subscription links a subscriber to a channel (both are users). The unique
// index bounds every (subscriber, channel) pair to one row; a user never
// subscribes to themselves, which the service rejects before touching the
// store.
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"column:subscription_id;primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"column:subscriber_id;uniqueIndex:uk_sub_subscriber_channel"`
	ChannelId      int64  `json:"channel_id" gorm:"column:channel_id;uniqueIndex:uk_sub_subscriber_channel;index"`
	CreatedAt      string `json:"created_at" gorm:"column:created_at"`
}
