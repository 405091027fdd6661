package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type playlistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param playlistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	playlist, err := playlistService.CreatePlaylist(ctx, jwt.FromRequestContext(c),
		param.Name, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlist, err := playlistService.GetPlaylistById(ctx, pathID(c, "playlist_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	playlists, err := playlistService.GetUserPlaylists(ctx, pathID(c, "user_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlists)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param playlistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	playlist, err := playlistService.UpdatePlaylist(ctx, jwt.FromRequestContext(c),
		pathID(c, "playlist_id"), param.Name, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	err := playlistService.DeletePlaylist(ctx, jwt.FromRequestContext(c), pathID(c, "playlist_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	playlist, err := playlistService.AddVideo(ctx, jwt.FromRequestContext(c),
		pathID(c, "playlist_id"), pathID(c, "video_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	playlist, err := playlistService.RemoveVideo(ctx, jwt.FromRequestContext(c),
		pathID(c, "playlist_id"), pathID(c, "video_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, playlist)
}
