package db

import (
	"context"

	"ClipHive.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistRepo struct {
	db *gorm.DB
}

func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

func (r *PlaylistRepo) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *PlaylistRepo) GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := new(model.Playlist)
	if err := r.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func (r *PlaylistRepo) GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := r.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).
		Order("playlist_id ASC").
		Find(&playlists).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get user playlists")
	}
	return playlists, nil
}

func (r *PlaylistRepo) UpdatePlaylistInfo(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Updates(updates).Error; err != nil {
		return errors.WithMessage(err, "Failed to update playlist")
	}
	return nil
}

// DeletePlaylist removes the playlist and its membership rows.
func (r *PlaylistRepo) DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := r.db.WithContext(ctx).Where("playlist_id = ?", playlistId).
		Delete(&model.Playlist{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete playlist")
	}
	if err := r.db.WithContext(ctx).Where("playlist_id = ?", playlistId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete playlist videos")
	}
	return nil
}

// AddVideoToPlaylist appends a video at the tail of the playlist order. The
// unique index rejects a duplicate insert; callers treat that as an
// idempotent no-op to keep set semantics.
func (r *PlaylistRepo) AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	var maxPos int64
	if err := r.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
		Position:   maxPos + 1,
	}).Error
}

func (r *PlaylistRepo) RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	if err := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to remove video from playlist")
	}
	return nil
}

// RemoveVideoFromPlaylists drops a deleted video out of every playlist.
func (r *PlaylistRepo) RemoveVideoFromPlaylists(ctx context.Context, videoId int64) error {
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to remove video from playlists")
	}
	return nil
}

// GetPlaylistVideoIds returns playlist membership in insertion order.
func (r *PlaylistRepo) GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := r.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("position ASC").
		Select("video_id").Scan(&ids).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get playlist video ids")
	}
	return ids, nil
}
