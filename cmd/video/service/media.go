package service

import (
	"context"

	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
)

// ossMediaStore backs MediaStore with minio and ffmpeg.
type ossMediaStore struct{}

func NewOssMediaStore() MediaStore {
	return ossMediaStore{}
}

func (ossMediaStore) UploadVideo(ctx context.Context, path string, vid int64) (string, error) {
	return oss.UploadVideo(ctx, path, vid)
}

func (ossMediaStore) UploadCover(ctx context.Context, path string, vid int64) (string, error) {
	return oss.UploadVideoCover(ctx, path, vid)
}

func (ossMediaStore) ProbeDuration(path string) (float64, error) {
	return utils.GetVideoDuration(path)
}

func (ossMediaStore) RemoveObjects(ctx context.Context, vid int64) {
	oss.RemoveVideoObjects(ctx, vid)
}
