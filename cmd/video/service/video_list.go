package service

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/query"
)

// GetVideoById serves the playback read path. Only published videos
// are visible here; a view event is emitted on each hit.
func (s *VideoService) GetVideoById(ctx context.Context, vid int64, viewerId int64) (*VideoInfo, error) {
	if vid <= 0 {
		return nil, errno.RequestErr.WithMessage("video id is required")
	}
	video, err := s.videos.FindVideoById(ctx, vid)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if video == nil || !video.IsPublished {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	summaries, err := s.users.FindSummariesByIds(ctx, []int64{video.UserId})
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	s.emitView(ctx, vid, viewerId)
	return &VideoInfo{Video: video, Owner: summaries[video.UserId]}, nil
}

// ListVideos pages through published videos matching the filter, in
// the requested sort order, with owners attached. The total count is
// of the filtered set, not the page.
func (s *VideoService) ListVideos(ctx context.Context, filter query.VideoFilter, sort query.Sort, page query.Page) ([]*VideoInfo, int64, error) {
	videos, total, err := s.videos.SearchVideos(ctx, filter, sort, page)
	if err != nil {
		return nil, 0, errno.FromStoreRead(err)
	}

	userIds := make([]int64, 0, len(videos))
	seen := make(map[int64]struct{}, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.UserId]; !ok {
			seen[v.UserId] = struct{}{}
			userIds = append(userIds, v.UserId)
		}
	}
	summaries, err := s.users.FindSummariesByIds(ctx, userIds)
	if err != nil {
		return nil, 0, errno.FromStoreRead(err)
	}

	infos := make([]*VideoInfo, 0, len(videos))
	for _, v := range videos {
		infos = append(infos, &VideoInfo{Video: v, Owner: summaries[v.UserId]})
	}
	return infos, total, nil
}
