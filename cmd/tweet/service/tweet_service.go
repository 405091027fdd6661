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

type TweetStore interface {
	InsertTweet(ctx context.Context, tweet *model.Tweet) error
	FindTweetById(ctx context.Context, tweetId int64) (*model.Tweet, error)
	ListUserTweets(ctx context.Context, userId int64, page query.Page) ([]*model.Tweet, error)
	UpdateTweetContent(ctx context.Context, tweetId int64, content string) (int64, error)
	DeleteTweet(ctx context.Context, tweetId int64) (int64, error)
}

type UserChecker interface {
	UserExists(ctx context.Context, userId int64) (bool, error)
}

type TweetService struct {
	tweets TweetStore
	users  UserChecker
}

func NewTweetService(tweets TweetStore, users UserChecker) *TweetService {
	return &TweetService{tweets: tweets, users: users}
}

func (s *TweetService) CreateTweet(ctx context.Context, actor *identity.Identity, content string) (*model.Tweet, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	content, err := normalizeTweet(content)
	if err != nil {
		return nil, err
	}

	tweet := &model.Tweet{
		TweetId:   utils.NewID(),
		UserId:    actor.UserID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.tweets.InsertTweet(ctx, tweet); err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	return tweet, nil
}

func (s *TweetService) GetUserTweets(ctx context.Context, userId int64, page query.Page) ([]*model.Tweet, error) {
	if userId <= 0 {
		return nil, errno.RequestErr.WithMessage("user id is required")
	}
	exists, err := s.users.UserExists(ctx, userId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	tweets, err := s.tweets.ListUserTweets(ctx, userId, page)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return tweets, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, actor *identity.Identity, tweetId int64, content string) (*model.Tweet, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if tweetId <= 0 {
		return nil, errno.RequestErr.WithMessage("tweet id is required")
	}
	content, err := normalizeTweet(content)
	if err != nil {
		return nil, err
	}

	tweet, err := s.tweets.FindTweetById(ctx, tweetId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if tweet == nil {
		return nil, errno.NotFoundErr.WithMessage("tweet not found")
	}
	if err := identity.Authorize(actor, tweet.UserId); err != nil {
		return nil, err
	}

	rows, err := s.tweets.UpdateTweetContent(ctx, tweetId, content)
	if err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return nil, errno.NotFoundErr.WithMessage("tweet not found")
	}
	tweet.Content = content
	tweet.UpdatedAt = time.Now()
	return tweet, nil
}

func (s *TweetService) DeleteTweet(ctx context.Context, actor *identity.Identity, tweetId int64) error {
	if err := identity.Require(actor); err != nil {
		return err
	}
	if tweetId <= 0 {
		return errno.RequestErr.WithMessage("tweet id is required")
	}

	tweet, err := s.tweets.FindTweetById(ctx, tweetId)
	if err != nil {
		return errno.FromStoreRead(err)
	}
	if tweet == nil {
		return errno.NotFoundErr.WithMessage("tweet not found")
	}
	if err := identity.Authorize(actor, tweet.UserId); err != nil {
		return err
	}

	rows, err := s.tweets.DeleteTweet(ctx, tweetId)
	if err != nil {
		return errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("tweet not found")
	}
	return nil
}

func normalizeTweet(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.RequestErr.WithMessage("content is required")
	}
	if len(content) > constants.MaxTweetLength {
		return "", errno.RequestErr.WithMessage("content is too long")
	}
	return content, nil
}
