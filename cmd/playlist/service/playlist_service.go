package service

import (
	"context"
	"strings"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/cmd/playlist/dal/db"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VideoProvider is the slice of the video store the playlist service needs.
type VideoProvider interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
}

type PlaylistService struct {
	ctx    context.Context
	repo   *db.PlaylistRepo
	videos VideoProvider
}

func NewPlaylistService(ctx context.Context, repo *db.PlaylistRepo, videos VideoProvider) *PlaylistService {
	return &PlaylistService{ctx: ctx, repo: repo, videos: videos}
}

// PlaylistDetail is a playlist together with its member video ids in
// insertion order.
type PlaylistDetail struct {
	*model.Playlist
	VideoIds []int64 `json:"video_ids"`
}

func (service *PlaylistService) CreatePlaylist(ctx context.Context, userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  int64(uuid.New().ID()),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.repo.CreatePlaylist(ctx, playlist); err != nil {
		hlog.CtxErrorf(ctx, "Failed to create playlist: %v", err)
		return nil, errno.ServiceErr
	}
	return playlist, nil
}

// UserPlaylists lists a user's playlists. A user with none yields an empty
// list, not an error.
func (service *PlaylistService) UserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	if userId <= 0 {
		return nil, errno.ParamErr.WithMessage("Provide valid user id")
	}
	playlists, err := service.repo.GetUserPlaylists(ctx, userId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to get user playlists: %v", err)
		return nil, errno.ServiceErr
	}
	return playlists, nil
}

func (service *PlaylistService) GetPlaylistById(ctx context.Context, playlistId int64) (*PlaylistDetail, error) {
	if playlistId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid playlist id")
	}
	playlist, err := service.repo.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
		}
		hlog.CtxErrorf(ctx, "Failed to get playlist: %v", err)
		return nil, errno.ServiceErr
	}
	videoIds, err := service.repo.GetPlaylistVideoIds(ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to get playlist videos: %v", err)
		return nil, errno.ServiceErr
	}
	return &PlaylistDetail{Playlist: playlist, VideoIds: videoIds}, nil
}

// AddVideo inserts a video into an owned playlist. Adding a video that is
// already a member is an idempotent no-op.
func (service *PlaylistService) AddVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	if videoId <= 0 {
		return errno.ParamErr.WithMessage("Invalid video id")
	}
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	exists, err := service.videos.VideoExists(ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to check video existence: %v", err)
		return errno.ServiceErr
	}
	if !exists {
		return errno.RecordNotFoundErr.WithMessage("Video not found")
	}
	if err := service.repo.AddVideoToPlaylist(ctx, playlistId, videoId); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		hlog.CtxErrorf(ctx, "Failed to add video to playlist: %v", err)
		return errno.ServiceErr
	}
	return nil
}

func (service *PlaylistService) RemoveVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	if videoId <= 0 {
		return errno.ParamErr.WithMessage("Invalid video id")
	}
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	if err := service.repo.RemoveVideoFromPlaylist(ctx, playlistId, videoId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to remove video from playlist: %v", err)
		return errno.ServiceErr
	}
	return nil
}

func (service *PlaylistService) UpdatePlaylist(ctx context.Context, userId, playlistId int64, name, description string) (*model.Playlist, error) {
	playlist, err := service.getOwnedPlaylist(ctx, userId, playlistId)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if strings.TrimSpace(name) != "" {
		updates["name"] = name
	}
	if strings.TrimSpace(description) != "" {
		updates["description"] = description
	}
	if len(updates) == 0 {
		return nil, errno.ParamErr.WithMessage("No valid fields to update")
	}
	updatedAt := time.Now().Format(constants.DataFormate)
	updates["updated_at"] = updatedAt
	if err := service.repo.UpdatePlaylistInfo(ctx, playlistId, updates); err != nil {
		hlog.CtxErrorf(ctx, "Failed to update playlist: %v", err)
		return nil, errno.ServiceErr
	}
	if v, ok := updates["name"]; ok {
		playlist.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		playlist.Description = v.(string)
	}
	playlist.UpdatedAt = updatedAt
	return playlist, nil
}

func (service *PlaylistService) DeletePlaylist(ctx context.Context, userId, playlistId int64) error {
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	if err := service.repo.DeletePlaylist(ctx, playlistId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete playlist: %v", err)
		return errno.ServiceErr
	}
	return nil
}

func (service *PlaylistService) getOwnedPlaylist(ctx context.Context, userId, playlistId int64) (*model.Playlist, error) {
	if playlistId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid playlist id")
	}
	playlist, err := service.repo.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
		}
		hlog.CtxErrorf(ctx, "Failed to get playlist: %v", err)
		return nil, errno.ServiceErr
	}
	if playlist.UserId != userId {
		return nil, errno.OwnershipErr.WithMessage("Only the owner can modify the playlist")
	}
	return playlist, nil
}
