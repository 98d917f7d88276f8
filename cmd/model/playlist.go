package model

type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"column:playlist_id;primaryKey"`
	UserId      int64  `json:"user_id" gorm:"column:user_id;index"`
	Name        string `json:"name" gorm:"column:name"`
	Description string `json:"description" gorm:"column:description"`
	CreatedAt   string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   string `json:"updated_at" gorm:"column:updated_at"`
}

// PlaylistVideo keeps playlist membership as an ordered set: position
// preserves insertion order, the unique index forbids duplicates.
type PlaylistVideo struct {
	PlaylistVideoId int64 `json:"playlist_video_id" gorm:"column:playlist_video_id;primaryKey"`
	PlaylistId      int64 `json:"playlist_id" gorm:"column:playlist_id;uniqueIndex:uk_playlist_video"`
	VideoId         int64 `json:"video_id" gorm:"column:video_id;uniqueIndex:uk_playlist_video"`
	Position        int64 `json:"position" gorm:"column:position"`
}
