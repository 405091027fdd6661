package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/utils"
)

type CommentStore interface {
	InsertComment(ctx context.Context, comment *model.Comment) error
	FindCommentById(ctx context.Context, commentId int64) (*model.Comment, error)
	ListVideoComments(ctx context.Context, videoId int64, page query.Page) ([]*model.Comment, error)
	UpdateCommentContent(ctx context.Context, commentId int64, content string) (int64, error)
	DeleteComment(ctx context.Context, commentId int64) (int64, error)
}

type VideoChecker interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
}

type UserSummaryStore interface {
	FindSummariesByIds(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

// CommentInfo is a comment enriched with its author for listings.
type CommentInfo struct {
	*model.Comment
	Owner *model.UserSummary `json:"owner,omitempty"`
}

type CommentService struct {
	comments CommentStore
	videos   VideoChecker
	users    UserSummaryStore
}

func NewCommentService(comments CommentStore, videos VideoChecker, users UserSummaryStore) *CommentService {
	return &CommentService{comments: comments, videos: videos, users: users}
}

func (s *CommentService) ListVideoComments(ctx context.Context, videoId int64, page query.Page) ([]*CommentInfo, error) {
	if videoId <= 0 {
		return nil, errno.RequestErr.WithMessage("video id is required")
	}
	exists, err := s.videos.VideoExists(ctx, videoId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	comments, err := s.comments.ListVideoComments(ctx, videoId, page)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return s.attachOwners(ctx, comments)
}

func (s *CommentService) AddComment(ctx context.Context, actor *identity.Identity, videoId int64, content string) (*model.Comment, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if videoId <= 0 {
		return nil, errno.RequestErr.WithMessage("video id is required")
	}
	content, err := normalizeContent(content, constants.MaxCommentLength)
	if err != nil {
		return nil, err
	}

	exists, err := s.videos.VideoExists(ctx, videoId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	comment := &model.Comment{
		CommentId: utils.NewID(),
		VideoId:   videoId,
		UserId:    actor.UserID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.comments.InsertComment(ctx, comment); err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, actor *identity.Identity, commentId int64, content string) (*model.Comment, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if commentId <= 0 {
		return nil, errno.RequestErr.WithMessage("comment id is required")
	}
	content, err := normalizeContent(content, constants.MaxCommentLength)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.FindCommentById(ctx, commentId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	if err := identity.Authorize(actor, comment.UserId); err != nil {
		return nil, err
	}

	rows, err := s.comments.UpdateCommentContent(ctx, commentId, content)
	if err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor *identity.Identity, commentId int64) error {
	if err := identity.Require(actor); err != nil {
		return err
	}
	if commentId <= 0 {
		return errno.RequestErr.WithMessage("comment id is required")
	}

	comment, err := s.comments.FindCommentById(ctx, commentId)
	if err != nil {
		return errno.FromStoreRead(err)
	}
	if comment == nil {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	if err := identity.Authorize(actor, comment.UserId); err != nil {
		return err
	}

	rows, err := s.comments.DeleteComment(ctx, commentId)
	if err != nil {
		return errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	return nil
}

func (s *CommentService) attachOwners(ctx context.Context, comments []*model.Comment) ([]*CommentInfo, error) {
	userIds := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserId]; !ok {
			seen[c.UserId] = struct{}{}
			userIds = append(userIds, c.UserId)
		}
	}
	summaries, err := s.users.FindSummariesByIds(ctx, userIds)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}

	infos := make([]*CommentInfo, 0, len(comments))
	for _, c := range comments {
		infos = append(infos, &CommentInfo{Comment: c, Owner: summaries[c.UserId]})
	}
	return infos, nil
}

// normalizeContent trims the body before validating so whitespace-only
// input is rejected rather than persisted.
func normalizeContent(content string, maxLen int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.RequestErr.WithMessage("content is required")
	}
	if len(content) > maxLen {
		return "", errno.RequestErr.WithMessage("content is too long")
	}
	return content, nil
}
