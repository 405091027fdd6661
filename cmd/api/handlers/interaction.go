package handlers

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type addCommentParam struct {
	Content string `form:"content" json:"content"`
}

func ListVideoComments(ctx context.Context, c *app.RequestContext) {
	comments, err := commentService.ListVideoComments(ctx, pathID(c, "video_id"), pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, comments)
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	var param addCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	comment, err := commentService.AddComment(ctx, jwt.FromRequestContext(c),
		pathID(c, "video_id"), param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param addCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	comment, err := commentService.UpdateComment(ctx, jwt.FromRequestContext(c),
		pathID(c, "comment_id"), param.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	err := commentService.DeleteComment(ctx, jwt.FromRequestContext(c), pathID(c, "comment_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}

type toggleLikeParam struct {
	TargetKind string `form:"target_kind" json:"target_kind"`
	TargetId   int64  `form:"target_id" json:"target_id"`
}

func ToggleLike(ctx context.Context, c *app.RequestContext) {
	var param toggleLikeParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	isLiked, err := likeService.Toggle(ctx, jwt.FromRequestContext(c),
		param.TargetKind, param.TargetId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, map[string]bool{"is_liked": isLiked})
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	videos, err := likeService.GetLikedVideos(ctx, jwt.FromRequestContext(c), pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, videos)
}
