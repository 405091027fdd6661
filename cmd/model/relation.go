package model

import "time"

// Subscription is the subscriber→channel engagement edge. The unique
// index enforces at most one edge per pair; subscriber == channel is
// rejected in the service before any store call.
type Subscription struct {
	SubscriptionId int64 `gorm:"column:subscription_id;primaryKey"`
	SubscriberId   int64 `gorm:"column:subscriber_id;uniqueIndex:uk_sub_edge,priority:1"`
	ChannelId      int64 `gorm:"column:channel_id;uniqueIndex:uk_sub_edge,priority:2;index:idx_sub_channel"`
	CreatedAt      time.Time
}

func (Subscription) TableName() string { return "subscriptions" }
