package main

import (
	"context"
	"fmt"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/api/router"
	videodb "VidTube.com/cmd/video/dal/db"
	videosvc "VidTube.com/cmd/video/service"
	"VidTube.com/config"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"
)

func rabbitURL() string {
	cfg := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
}

func main() {
	config.Init()
	database.Init()
	cache.Init()
	if err := oss.InitMinio(); err != nil {
		logrus.Fatalf("minio init failed: %v", err)
	}

	// The broker is optional at startup; without it videos still serve,
	// only view counting stops.
	producer, err := mq.NewProducer(rabbitURL())
	if err != nil {
		logrus.Warnf("rabbitmq unavailable, view events disabled: %v", err)
		producer = nil
	}
	handlers.Init(producer)

	if producer != nil {
		consumer, err := mq.NewConsumer(rabbitURL())
		if err != nil {
			logrus.Warnf("view event consumer unavailable: %v", err)
		} else {
			counter := videosvc.NewViewCounter(videodb.NewVideoRepo(database.DB))
			go func() {
				defer consumer.Close()
				if err := consumer.ConsumeViewEvents(context.Background(), counter.HandleViewEvent); err != nil {
					logrus.Errorf("view event consumer stopped: %v", err)
				}
			}()
		}
	}

	h := server.Default(server.WithHostPorts(config.ConfigInfo.Server.Addr))
	if err := router.Register(h); err != nil {
		logrus.Fatalf("router init failed: %v", err)
	}
	h.Spin()
}
