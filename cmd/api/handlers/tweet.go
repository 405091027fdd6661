package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type tweetParam struct {
	Content string `form:"content" json:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var param tweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	tweet, err := tweetService.CreateTweet(ctx, jwt.FromRequestContext(c), param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, tweet)
}

func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	tweets, err := tweetService.GetUserTweets(ctx, pathID(c, "user_id"), pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, tweets)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var param tweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	tweet, err := tweetService.UpdateTweet(ctx, jwt.FromRequestContext(c),
		pathID(c, "tweet_id"), param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	err := tweetService.DeleteTweet(ctx, jwt.FromRequestContext(c), pathID(c, "tweet_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}
