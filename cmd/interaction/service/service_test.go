package service

import (
	"testing"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A single connection keeps the in-memory database alive for the whole
	// test.
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userId int64, name string) {
	t.Helper()
	if err := db.Create(&model.User{
		UserId:    userId,
		UserName:  name,
		FullName:  name + " Fullname",
		AvatarUrl: "http://cdn.local/avatar/" + name + ".png",
	}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func seedVideo(t *testing.T, db *gorm.DB, videoId, ownerId int64, title string) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	if err := db.Create(&model.Video{
		VideoId:     videoId,
		UserId:      ownerId,
		VideoUrl:    "http://cdn.local/video.mp4",
		CoverUrl:    "http://cdn.local/cover.png",
		Title:       title,
		Description: "seeded",
		Duration:    12.5,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
}
