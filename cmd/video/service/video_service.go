package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/utils"
	"github.com/sirupsen/logrus"
)

type VideoStore interface {
	InsertVideo(ctx context.Context, video *model.Video) error
	FindVideoById(ctx context.Context, vid int64) (*model.Video, error)
	SearchVideos(ctx context.Context, filter query.VideoFilter, sort query.Sort, page query.Page) ([]*model.Video, int64, error)
	UpdateVideoFields(ctx context.Context, vid int64, fields map[string]interface{}) (int64, error)
	SetPublished(ctx context.Context, vid int64, published bool) (int64, error)
	DeleteVideo(ctx context.Context, vid int64) (int64, error)
}

type UserSummaryStore interface {
	FindSummariesByIds(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

// MediaStore abstracts the blob and probe side of publishing so the
// service does not touch minio or ffmpeg directly.
type MediaStore interface {
	UploadVideo(ctx context.Context, path string, vid int64) (string, error)
	UploadCover(ctx context.Context, path string, vid int64) (string, error)
	ProbeDuration(path string) (float64, error)
	RemoveObjects(ctx context.Context, vid int64)
}

type ViewPublisher interface {
	PublishViewEvent(ctx context.Context, event *mq.ViewEvent) error
}

// VideoInfo is a video enriched with its owner for read paths.
type VideoInfo struct {
	*model.Video
	Owner *model.UserSummary `json:"owner,omitempty"`
}

type VideoService struct {
	videos VideoStore
	users  UserSummaryStore
	media  MediaStore
	views  ViewPublisher
}

func NewVideoService(videos VideoStore, users UserSummaryStore, media MediaStore, views ViewPublisher) *VideoService {
	return &VideoService{videos: videos, users: users, media: media, views: views}
}

type PublishVideoRequest struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// PublishVideo probes and uploads the media, then records the video.
// New videos start unpublished; the owner flips visibility with
// TogglePublish.
func (s *VideoService) PublishVideo(ctx context.Context, actor *identity.Identity, req *PublishVideoRequest) (*model.Video, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errno.RequestErr.WithMessage("title is required")
	}
	if len(title) > constants.MaxTitleLength {
		return nil, errno.RequestErr.WithMessage("title is too long")
	}
	if req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("video and thumbnail files are required")
	}

	vid := utils.NewID()
	duration, err := s.media.ProbeDuration(req.VideoPath)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("unreadable video file")
	}
	videoUrl, err := s.media.UploadVideo(ctx, req.VideoPath, vid)
	if err != nil {
		return nil, errno.OssErr.WithMessage("video upload failed")
	}
	coverUrl, err := s.media.UploadCover(ctx, req.ThumbnailPath, vid)
	if err != nil {
		s.media.RemoveObjects(ctx, vid)
		return nil, errno.OssErr.WithMessage("thumbnail upload failed")
	}

	video := &model.Video{
		VideoId:     vid,
		UserId:      actor.UserID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    duration,
		IsPublished: false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.videos.InsertVideo(ctx, video); err != nil {
		s.media.RemoveObjects(ctx, vid)
		return nil, errno.FromStoreWrite(err)
	}
	return video, nil
}

// UpdateVideo changes title and/or description. At least one non-blank
// field is required.
func (s *VideoService) UpdateVideo(ctx context.Context, actor *identity.Identity, vid int64, title, description string) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, actor, vid)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, 2)
	if title = strings.TrimSpace(title); title != "" {
		if len(title) > constants.MaxTitleLength {
			return nil, errno.RequestErr.WithMessage("title is too long")
		}
		fields["title"] = title
		video.Title = title
	}
	if description = strings.TrimSpace(description); description != "" {
		fields["description"] = description
		video.Description = description
	}
	if len(fields) == 0 {
		return nil, errno.RequestErr.WithMessage("nothing to update")
	}

	rows, err := s.videos.UpdateVideoFields(ctx, vid, fields)
	if err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	video.UpdatedAt = time.Now()
	return video, nil
}

// DeleteVideo removes the record, then the stored media. Engagement
// edges pointing at the video are left behind and filtered out by the
// read paths.
func (s *VideoService) DeleteVideo(ctx context.Context, actor *identity.Identity, vid int64) error {
	if _, err := s.ownedVideo(ctx, actor, vid); err != nil {
		return err
	}
	rows, err := s.videos.DeleteVideo(ctx, vid)
	if err != nil {
		return errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	s.media.RemoveObjects(ctx, vid)
	return nil
}

// TogglePublish flips visibility and reports the new state.
func (s *VideoService) TogglePublish(ctx context.Context, actor *identity.Identity, vid int64) (bool, error) {
	video, err := s.ownedVideo(ctx, actor, vid)
	if err != nil {
		return false, err
	}
	next := !video.IsPublished
	rows, err := s.videos.SetPublished(ctx, vid, next)
	if err != nil {
		return false, errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return false, errno.NotFoundErr.WithMessage("video not found")
	}
	return next, nil
}

func (s *VideoService) ownedVideo(ctx context.Context, actor *identity.Identity, vid int64) (*model.Video, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if vid <= 0 {
		return nil, errno.RequestErr.WithMessage("video id is required")
	}
	video, err := s.videos.FindVideoById(ctx, vid)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if err := identity.Authorize(actor, video.UserId); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) emitView(ctx context.Context, vid int64, viewerId int64) {
	if s.views == nil {
		return
	}
	event := &mq.ViewEvent{
		VideoID:   vid,
		ViewerID:  viewerId,
		Timestamp: time.Now().Unix(),
		EventID:   utils.NewEventID(),
	}
	if err := s.views.PublishViewEvent(ctx, event); err != nil {
		logrus.Warnf("view event dropped for video %d: %v", vid, err)
	}
}
