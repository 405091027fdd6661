package service

import (
	"context"

	"VidTube.com/pkg/mq"
)

type ViewCountStore interface {
	IncrViewCount(ctx context.Context, vid int64, delta int64) error
}

// ViewCounter folds view events from the queue into view_count.
type ViewCounter struct {
	videos ViewCountStore
}

func NewViewCounter(videos ViewCountStore) *ViewCounter {
	return &ViewCounter{videos: videos}
}

// HandleViewEvent is the consumer callback. Returning an error leaves
// the event queued for redelivery.
func (v *ViewCounter) HandleViewEvent(ctx context.Context, event *mq.ViewEvent) error {
	if event.VideoID <= 0 {
		return nil
	}
	return v.videos.IncrViewCount(ctx, event.VideoID, 1)
}
