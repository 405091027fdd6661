package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// InsertSubscription creates the subscriber→channel edge, reporting
// false when the unique pair index already holds it.
func (r *SubscriptionRepo) InsertSubscription(ctx context.Context, sub *model.Subscription) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(sub)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "InsertSubscription failed, subscriber=%d channel=%d",
			sub.SubscriberId, sub.ChannelId)
	}
	return result.RowsAffected > 0, nil
}

func (r *SubscriptionRepo) DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "DeleteSubscription failed, subscriber=%d channel=%d",
			subscriberId, channelId)
	}
	return result.RowsAffected > 0, nil
}

func (r *SubscriptionRepo) SubscriptionExists(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "SubscriptionExists failed")
	}
	return count > 0, nil
}

// ListSubscriberIds returns the users subscribed to channelId, oldest
// subscription first so pages stay stable as new subscribers arrive.
func (r *SubscriptionRepo) ListSubscriberIds(ctx context.Context, channelId int64, page query.Page) ([]int64, error) {
	list := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at ASC").
		Offset(page.Offset()).Limit(page.Limit()).
		Select("subscriber_id").Scan(&list).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListSubscriberIds failed, channel=%d", channelId)
	}
	return list, nil
}

// ListChannelIds returns the channels subscriberId subscribes to.
func (r *SubscriptionRepo) ListChannelIds(ctx context.Context, subscriberId int64, page query.Page) ([]int64, error) {
	list := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at ASC").
		Offset(page.Offset()).Limit(page.Limit()).
		Select("channel_id").Scan(&list).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListChannelIds failed, subscriber=%d", subscriberId)
	}
	return list, nil
}

func (r *SubscriptionRepo) CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed, channel=%d", channelId)
	}
	return count, nil
}
