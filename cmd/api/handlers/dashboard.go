package handlers

import (
	"context"

	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	stats, err := dashboardService.GetChannelStats(ctx, jwt.FromRequestContext(c), pathID(c, "channel_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, stats)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	videos, err := dashboardService.GetChannelVideos(ctx, jwt.FromRequestContext(c),
		pathID(c, "channel_id"), pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, videos)
}
