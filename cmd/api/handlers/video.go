package handlers

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	videosvc "VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/query"
	"github.com/cloudwego/hertz/pkg/app"
)

type publishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// PublishVideo accepts the multipart upload, stages the files locally,
// and hands them to the service for probing and object storage.
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	actor := jwt.FromRequestContext(c)

	var param publishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("video file is required"), nil)
		return
	}
	thumbFile, err := c.FormFile("thumbnail")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("thumbnail file is required"), nil)
		return
	}

	tmpDir, err := os.MkdirTemp("", "upload-*")
	if err != nil {
		SendResponse(c, errno.ServiceErr.WithMessage("staging upload failed"), nil)
		return
	}
	defer os.RemoveAll(tmpDir)

	videoPath := filepath.Join(tmpDir, "video.mp4")
	thumbPath := filepath.Join(tmpDir, "thumbnail.jpg")
	if err := c.SaveUploadedFile(videoFile, videoPath); err != nil {
		SendResponse(c, errno.ServiceErr.WithMessage("staging upload failed"), nil)
		return
	}
	if err := c.SaveUploadedFile(thumbFile, thumbPath); err != nil {
		SendResponse(c, errno.ServiceErr.WithMessage("staging upload failed"), nil)
		return
	}

	video, err := videoService.PublishVideo(ctx, actor, &videosvc.PublishVideoRequest{
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var viewerId int64
	if actor := jwt.FromRequestContext(c); actor != nil {
		viewerId = actor.UserID
	}
	video, err := videoService.GetVideoById(ctx, pathID(c, "video_id"), viewerId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}

type videoListData struct {
	Items []*videosvc.VideoInfo `json:"items"`
	Total int64                 `json:"total"`
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	ownerId, _ := strconv.ParseInt(c.Query("owner_id"), 10, 64)
	filter := query.VideoFilter{
		OwnerID: ownerId,
		Keyword: c.Query("keyword"),
	}
	sort := query.Sort{
		By:  c.Query("sort_by"),
		Asc: c.Query("order") == "asc",
	}

	items, total, err := videoService.ListVideos(ctx, filter, sort, pagination(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, videoListData{Items: items, Total: total})
}

type updateVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param updateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	video, err := videoService.UpdateVideo(ctx, jwt.FromRequestContext(c),
		pathID(c, "video_id"), param.Title, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	err := videoService.DeleteVideo(ctx, jwt.FromRequestContext(c), pathID(c, "video_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, nil)
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	published, err := videoService.TogglePublish(ctx, jwt.FromRequestContext(c), pathID(c, "video_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, map[string]bool{"is_published": published})
}
