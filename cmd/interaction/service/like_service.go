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

type LikeStore interface {
	InsertLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error)
	ListLikedVideoIds(ctx context.Context, userId int64, page query.Page) ([]int64, error)
}

type TargetChecker interface {
	TargetExists(ctx context.Context, targetKind string, targetId int64) (bool, error)
}

type VideoFinder interface {
	FindVideosByIds(ctx context.Context, vids []int64) ([]*model.Video, error)
}

// Locker serializes one engagement-edge flip. Optional: the store's
// unique index is the hard guarantee, the lock only avoids paying for
// conflicting writes.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type LikeService struct {
	likes   LikeStore
	targets TargetChecker
	videos  VideoFinder
	locker  Locker
}

func NewLikeService(likes LikeStore, targets TargetChecker, videos VideoFinder, locker Locker) *LikeService {
	return &LikeService{likes: likes, targets: targets, videos: videos, locker: locker}
}

// Toggle flips the like edge for (actor, target) and reports the
// resulting state. Delete-then-insert keeps each branch a single
// conditional write: a zero-row insert means a concurrent toggle
// already created the edge, so the edge exists and isActive is true.
func (s *LikeService) Toggle(ctx context.Context, actor *identity.Identity, targetKind string, targetId int64) (bool, error) {
	if err := identity.Require(actor); err != nil {
		return false, err
	}
	switch targetKind {
	case model.TargetVideo, model.TargetComment, model.TargetTweet:
	default:
		return false, errno.RequestErr.WithMessage("unknown like target kind")
	}
	if targetId <= 0 {
		return false, errno.RequestErr.WithMessage(targetKind + " id is required")
	}

	exists, err := s.targets.TargetExists(ctx, targetKind, targetId)
	if err != nil {
		return false, errno.FromStoreRead(err)
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage(targetKind + " not found")
	}

	if s.locker != nil {
		key := fmt.Sprintf("like:%d:%s:%d", actor.UserID, targetKind, targetId)
		if unlock, err := s.locker.Lock(ctx, key); err != nil {
			logrus.Warnf("toggle lock unavailable for %s: %v", key, err)
		} else {
			defer unlock()
		}
	}

	removed, err := s.likes.DeleteLike(ctx, actor.UserID, targetKind, targetId)
	if err != nil {
		return false, errno.FromStoreWrite(err)
	}
	if removed {
		return false, nil
	}

	_, err = s.likes.InsertLike(ctx, &model.Like{
		LikeId:     utils.NewID(),
		UserId:     actor.UserID,
		TargetKind: targetKind,
		TargetId:   targetId,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return false, errno.FromStoreWrite(err)
	}
	return true, nil
}

// GetLikedVideos pages through the videos the caller has liked, most
// recent like first. Likes orphaned by a deleted video are skipped.
func (s *LikeService) GetLikedVideos(ctx context.Context, actor *identity.Identity, page query.Page) ([]*model.Video, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}

	videoIds, err := s.likes.ListLikedVideoIds(ctx, actor.UserID, page)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if len(videoIds) == 0 {
		return []*model.Video{}, nil
	}

	videos, err := s.videos.FindVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}

	ordered := make([]*model.Video, 0, len(videoIds))
	for _, vid := range videoIds {
		if v, ok := byId[vid]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}
