package database

import (
	"ClipHive.com/cmd/model"
	"ClipHive.com/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Init opens the MySQL handle used by every repository. The handle is built
// once at startup and passed down explicitly, there is no package-global DB.
func Init(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Mysql.Username + ":" + cfg.Mysql.Password + "@tcp(" + cfg.Mysql.Addr + ")/" +
		cfg.Mysql.Database + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, err
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, err
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate is separate from Init so tests can run it against their own handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.UserVideoWatchHistory{},
		&model.Comment{},
		&model.Like{},
		&model.Tweet{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	)
}
