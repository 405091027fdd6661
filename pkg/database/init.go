package database

import (
	"fmt"

	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init opens the shared gorm handle and migrates the entity tables.
// The unique indexes created here back the engagement-edge invariants,
// so a failed migration is fatal.
func Init() {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		config.ConfigInfo.Mysql.Username,
		config.ConfigInfo.Mysql.Password,
		config.ConfigInfo.Mysql.Addr,
		config.ConfigInfo.Mysql.Database,
		config.ConfigInfo.Mysql.Charset,
	)
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	if err = DB.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Like{},
		&model.Subscription{},
	); err != nil {
		panic(err)
	}
}
