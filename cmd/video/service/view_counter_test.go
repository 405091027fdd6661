package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewCounts struct {
	counts map[int64]int64
}

func (f *fakeViewCounts) IncrViewCount(_ context.Context, vid int64, delta int64) error {
	f.counts[vid] += delta
	return nil
}

func TestViewCounterFoldsEvents(t *testing.T) {
	store := &fakeViewCounts{counts: make(map[int64]int64)}
	counter := NewViewCounter(store)

	for i := 0; i < 3; i++ {
		err := counter.HandleViewEvent(context.Background(), &mq.ViewEvent{VideoID: 100})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), store.counts[100])
}

func TestViewCounterIgnoresMalformed(t *testing.T) {
	store := &fakeViewCounts{counts: make(map[int64]int64)}
	counter := NewViewCounter(store)

	err := counter.HandleViewEvent(context.Background(), &mq.ViewEvent{VideoID: 0})
	require.NoError(t, err)
	assert.Empty(t, store.counts)
}
