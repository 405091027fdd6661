package service

import (
	"context"
	"sync"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/query"
)

type VideoAggregator interface {
	CountPublishedByUser(ctx context.Context, userId int64) (int64, error)
	SumViewsByUser(ctx context.Context, userId int64) (int64, error)
	ListUserPublishedVideos(ctx context.Context, userId int64, page query.Page) ([]*model.Video, error)
}

type SubscriberCounter interface {
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
}

type LikeCounter interface {
	CountLikesForVideoOwner(ctx context.Context, ownerId int64) (int64, error)
}

type UserChecker interface {
	UserExists(ctx context.Context, userId int64) (bool, error)
}

// ChannelStats are the four channel-level aggregates. A channel with
// no activity reports zeros, never an error.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

type DashboardService struct {
	videos VideoAggregator
	subs   SubscriberCounter
	likes  LikeCounter
	users  UserChecker
}

func NewDashboardService(videos VideoAggregator, subs SubscriberCounter, likes LikeCounter, users UserChecker) *DashboardService {
	return &DashboardService{videos: videos, subs: subs, likes: likes, users: users}
}

// GetChannelStats gathers the four aggregates concurrently. Each is an
// independent read; the first error wins.
func (s *DashboardService) GetChannelStats(ctx context.Context, actor *identity.Identity, channelId int64) (*ChannelStats, error) {
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

	var (
		stats ChannelStats
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)
	fail := func(err error) {
		mu.Lock()
		if first == nil {
			first = err
		}
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		n, err := s.videos.CountPublishedByUser(ctx, channelId)
		if err != nil {
			fail(err)
			return
		}
		stats.TotalVideos = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.videos.SumViewsByUser(ctx, channelId)
		if err != nil {
			fail(err)
			return
		}
		stats.TotalViews = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.subs.CountSubscribers(ctx, channelId)
		if err != nil {
			fail(err)
			return
		}
		stats.TotalSubscribers = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.likes.CountLikesForVideoOwner(ctx, channelId)
		if err != nil {
			fail(err)
			return
		}
		stats.TotalLikes = n
	}()
	wg.Wait()

	if first != nil {
		return nil, errno.FromStoreRead(first)
	}
	return &stats, nil
}

// GetChannelVideos pages through the channel's published videos.
func (s *DashboardService) GetChannelVideos(ctx context.Context, actor *identity.Identity, channelId int64, page query.Page) ([]*model.Video, error) {
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

	videos, err := s.videos.ListUserPublishedVideos(ctx, channelId, page)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return videos, nil
}
