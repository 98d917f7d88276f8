package service

import (
	"context"
	"sync"
	"testing"
	"time"

	interactiondb "ClipHive.com/cmd/interaction/dal/db"
	"ClipHive.com/cmd/model"
	playlistdb "ClipHive.com/cmd/playlist/dal/db"
	"ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

// fakeMediaStore records uploads and deletes so the tests can assert on the
// asset lifecycle without a running object store.
type fakeMediaStore struct {
	mu         sync.Mutex
	nextURL    int
	deleted    []string
	failCover  bool
	failDelete bool
}

func (f *fakeMediaStore) UploadVideo(ctx context.Context, localPath string, vid int64) (string, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextURL++
	return "http://cdn.local/video/" + localPath, 42.5, nil
}

func (f *fakeMediaStore) UploadImage(ctx context.Context, localPath string, vid int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCover {
		return "", context.DeadlineExceeded
	}
	f.nextURL++
	return "http://cdn.local/image/" + localPath, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, rawUrl string, kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return context.DeadlineExceeded
	}
	f.deleted = append(f.deleted, rawUrl)
	return nil
}

type testEnv struct {
	conn         *gorm.DB
	repo         *db.VideoRepo
	interactions *interactiondb.InteractionRepo
	playlists    *playlistdb.PlaylistRepo
	media        *fakeMediaStore
	svc          *VideoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn := newTestDB(t)
	env := &testEnv{
		conn:         conn,
		repo:         db.NewVideoRepo(conn),
		interactions: interactiondb.NewInteractionRepo(conn),
		playlists:    playlistdb.NewPlaylistRepo(conn),
		media:        &fakeMediaStore{},
	}
	env.svc = NewVideoService(context.Background(), env.repo, env.interactions, env.playlists, env.media, nil, nil)
	return env
}

func (env *testEnv) seedUser(t *testing.T, userId int64, name string) {
	t.Helper()
	if err := env.conn.Create(&model.User{
		UserId:    userId,
		UserName:  name,
		FullName:  name + " Fullname",
		AvatarUrl: "http://cdn.local/avatar/" + name + ".png",
	}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func (env *testEnv) seedVideo(t *testing.T, videoId, ownerId int64, title string, published bool) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	if err := env.conn.Create(&model.Video{
		VideoId:     videoId,
		UserId:      ownerId,
		VideoUrl:    "http://cdn.local/video/seed.mp4",
		CoverUrl:    "http://cdn.local/image/seed.png",
		Title:       title,
		Description: "seeded",
		Duration:    30,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
}
