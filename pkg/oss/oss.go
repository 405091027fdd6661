package oss

import (
	"context"
	"fmt"

	"VidTube.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

const (
	videoBucket   = "videos"
	pictureBucket = "pictures"
	location      = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func publicURL(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicUrl, bucketName, objectName)
}

// UploadVideo stores a local media file and returns its durable URL.
func UploadVideo(ctx context.Context, path string, vid int64) (string, error) {
	objectName := fmt.Sprintf("video/%d/video.mp4", vid)
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return "", err
	}
	_, err := minioClient.FPutObject(ctx, videoBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		logrus.Errorf("video upload failed for %d: %v", vid, err)
		return "", err
	}
	return publicURL(videoBucket, objectName), nil
}

// UploadVideoCover stores the thumbnail for a video.
func UploadVideoCover(ctx context.Context, path string, vid int64) (string, error) {
	objectName := fmt.Sprintf("cover/%d/cover.jpg", vid)
	if err := ensureBucket(ctx, pictureBucket); err != nil {
		return "", err
	}
	_, err := minioClient.FPutObject(ctx, pictureBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		logrus.Errorf("cover upload failed for %d: %v", vid, err)
		return "", err
	}
	return publicURL(pictureBucket, objectName), nil
}

// RemoveVideoObjects deletes the media and cover of a video. Used when
// the owner deletes the video; best effort, errors are logged.
func RemoveVideoObjects(ctx context.Context, vid int64) {
	keys := map[string]string{
		videoBucket:   fmt.Sprintf("video/%d/video.mp4", vid),
		pictureBucket: fmt.Sprintf("cover/%d/cover.jpg", vid),
	}
	for bucket, key := range keys {
		if err := minioClient.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
			logrus.Warnf("Failed to delete %s/%s: %v", bucket, key, err)
		}
	}
}
