package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TweetRepo struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) *TweetRepo {
	return &TweetRepo{db: db}
}

func (r *TweetRepo) InsertTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(err, "InsertTweet failed, tweet_id=%d", tweet.TweetId)
	}
	return nil
}

func (r *TweetRepo) FindTweetById(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.db.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(&tweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "FindTweetById failed, tweet_id=%d", tweetId)
	}
	return &tweet, nil
}

func (r *TweetRepo) ListUserTweets(ctx context.Context, userId int64, page query.Page) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	err := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&tweets).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListUserTweets failed, user_id=%d", userId)
	}
	return tweets, nil
}

func (r *TweetRepo) UpdateTweetContent(ctx context.Context, tweetId int64, content string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).
		Update("content", content)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "UpdateTweetContent failed, tweet_id=%d", tweetId)
	}
	return result.RowsAffected, nil
}

func (r *TweetRepo) DeleteTweet(ctx context.Context, tweetId int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteTweet failed, tweet_id=%d", tweetId)
	}
	return result.RowsAffected, nil
}
