package model

import "time"

type Tweet struct {
	TweetId   int64  `gorm:"column:tweet_id;primaryKey"`
	UserId    int64  `gorm:"column:user_id;index:idx_tweets_user"`
	Content   string `gorm:"column:content;size:280"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tweet) TableName() string { return "tweets" }
