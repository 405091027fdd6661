package oss

import (
	"VidTube.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var minioClient *minio.Client

func InitMinio() error {
	cfg := config.ConfigInfo.Minio

	var err error
	minioClient, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logrus.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	logrus.Infof("Connected to MinIO at %s", cfg.Endpoint)
	return nil
}
