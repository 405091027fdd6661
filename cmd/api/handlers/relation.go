package handlers

import (
	"context"

	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	isSubscribed, err := subscriptionService.Toggle(ctx, jwt.FromRequestContext(c), pathID(c, "channel_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, map[string]bool{"is_subscribed": isSubscribed})
}

func GetSubscribers(ctx context.Context, c *app.RequestContext) {
	users, err := subscriptionService.GetSubscribers(ctx, jwt.FromRequestContext(c),
		pathID(c, "channel_id"), pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, users)
}

func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	users, err := subscriptionService.GetSubscribedChannels(ctx, jwt.FromRequestContext(c),
		pathID(c, "user_id"), pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, users)
}
