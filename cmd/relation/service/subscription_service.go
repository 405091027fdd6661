package service

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/utils"
	"github.com/sirupsen/logrus"
)

type SubscriptionStore interface {
	InsertSubscription(ctx context.Context, sub *model.Subscription) (bool, error)
	DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error)
	ListSubscriberIds(ctx context.Context, channelId int64, page query.Page) ([]int64, error)
	ListChannelIds(ctx context.Context, subscriberId int64, page query.Page) ([]int64, error)
}

type UserStore interface {
	UserExists(ctx context.Context, userId int64) (bool, error)
	FindSummariesByIds(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type SubscriptionService struct {
	subs   SubscriptionStore
	users  UserStore
	locker Locker
}

func NewSubscriptionService(subs SubscriptionStore, users UserStore, locker Locker) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, locker: locker}
}

// Toggle flips the actor's subscription to channelId and reports the
// resulting state. Subscribing to oneself is rejected outright, before
// any lookup, so the edge can never exist.
func (s *SubscriptionService) Toggle(ctx context.Context, actor *identity.Identity, channelId int64) (bool, error) {
	if err := identity.Require(actor); err != nil {
		return false, err
	}
	if channelId <= 0 {
		return false, errno.RequestErr.WithMessage("channel id is required")
	}
	if channelId == actor.UserID {
		return false, errno.ForbiddenErr.WithMessage("cannot subscribe to your own channel")
	}

	exists, err := s.users.UserExists(ctx, channelId)
	if err != nil {
		return false, errno.FromStoreRead(err)
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("channel not found")
	}

	if s.locker != nil {
		key := fmt.Sprintf("sub:%d:%d", actor.UserID, channelId)
		if unlock, err := s.locker.Lock(ctx, key); err != nil {
			logrus.Warnf("toggle lock unavailable for %s: %v", key, err)
		} else {
			defer unlock()
		}
	}

	removed, err := s.subs.DeleteSubscription(ctx, actor.UserID, channelId)
	if err != nil {
		return false, errno.FromStoreWrite(err)
	}
	if removed {
		return false, nil
	}

	_, err = s.subs.InsertSubscription(ctx, &model.Subscription{
		SubscriptionId: utils.NewID(),
		SubscriberId:   actor.UserID,
		ChannelId:      channelId,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return false, errno.FromStoreWrite(err)
	}
	return true, nil
}

// GetSubscribers lists the users subscribed to channelId.
func (s *SubscriptionService) GetSubscribers(ctx context.Context, actor *identity.Identity, channelId int64, page query.Page) ([]*model.UserSummary, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if channelId <= 0 {
		return nil, errno.RequestErr.WithMessage("channel id is required")
	}
	exists, err := s.users.UserExists(ctx, channelId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}

	ids, err := s.subs.ListSubscriberIds(ctx, channelId, page)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return s.resolveSummaries(ctx, ids)
}

// GetSubscribedChannels lists the channels subscriberId subscribes to.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, actor *identity.Identity, subscriberId int64, page query.Page) ([]*model.UserSummary, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if subscriberId <= 0 {
		return nil, errno.RequestErr.WithMessage("subscriber id is required")
	}
	exists, err := s.users.UserExists(ctx, subscriberId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("subscriber not found")
	}

	ids, err := s.subs.ListChannelIds(ctx, subscriberId, page)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return s.resolveSummaries(ctx, ids)
}

func (s *SubscriptionService) resolveSummaries(ctx context.Context, ids []int64) ([]*model.UserSummary, error) {
	if len(ids) == 0 {
		return []*model.UserSummary{}, nil
	}
	summaries, err := s.users.FindSummariesByIds(ctx, ids)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	ordered := make([]*model.UserSummary, 0, len(ids))
	for _, id := range ids {
		if sum, ok := summaries[id]; ok {
			ordered = append(ordered, sum)
		}
	}
	return ordered, nil
}
