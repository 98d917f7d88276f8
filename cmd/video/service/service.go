package service

import (
	"context"

	"ClipHive.com/cmd/video/dal/db"
	"ClipHive.com/pkg/cache"
	"ClipHive.com/pkg/mq"
)

// MediaStore is the external collaborator holding binary assets. Upload takes
// a local temp path and must remove it whether or not the upload succeeds.
type MediaStore interface {
	UploadVideo(ctx context.Context, localPath string, vid int64) (url string, duration float64, err error)
	UploadImage(ctx context.Context, localPath string, vid int64) (url string, err error)
	Delete(ctx context.Context, rawUrl string, kind string) error
}

// InteractionCleaner is the slice of the interaction store the cascade
// delete needs.
type InteractionCleaner interface {
	DeleteVideoComments(ctx context.Context, videoId int64) error
	DeleteTargetLikes(ctx context.Context, targetType string, targetId int64) error
}

// PlaylistCleaner drops a deleted video out of every playlist.
type PlaylistCleaner interface {
	RemoveVideoFromPlaylists(ctx context.Context, videoId int64) error
}

type VideoService struct {
	ctx          context.Context
	repo         *db.VideoRepo
	interactions InteractionCleaner
	playlists    PlaylistCleaner
	media        MediaStore
	cache        *cache.VideoCacheManager
	producer     *mq.Producer
}

func NewVideoService(ctx context.Context, repo *db.VideoRepo, interactions InteractionCleaner,
	playlists PlaylistCleaner, media MediaStore, videoCache *cache.VideoCacheManager, producer *mq.Producer) *VideoService {
	return &VideoService{
		ctx:          ctx,
		repo:         repo,
		interactions: interactions,
		playlists:    playlists,
		media:        media,
		cache:        videoCache,
		producer:     producer,
	}
}
