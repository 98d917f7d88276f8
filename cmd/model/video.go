package model

type Video struct {
	VideoId     int64   `json:"video_id" gorm:"column:video_id;primaryKey"`
	UserId      int64   `json:"user_id" gorm:"column:user_id;index"`
	VideoUrl    string  `json:"video_url" gorm:"column:video_url"`
	CoverUrl    string  `json:"cover_url" gorm:"column:cover_url"`
	Title       string  `json:"title" gorm:"column:title"`
	Description string  `json:"description" gorm:"column:description"`
	Duration    float64 `json:"duration" gorm:"column:duration"`
	VisitCount  int64   `json:"visit_count" gorm:"column:visit_count"`
	IsPublished bool    `json:"is_published" gorm:"column:is_published"`
	CreatedAt   string  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   string  `json:"updated_at" gorm:"column:updated_at"`
}

// UserVideoWatchHistory rows behave as a set: a video appears at most once per
// user, repeated watches only refresh watch_time.
type UserVideoWatchHistory struct {
	UserVideoWatchHistoryId int64  `json:"user_video_watch_history_id" gorm:"column:user_video_watch_history_id;primaryKey"`
	UserId                  int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:uk_watch_user_video"`
	VideoId                 int64  `json:"video_id" gorm:"column:video_id;uniqueIndex:uk_watch_user_video"`
	WatchTime               string `json:"watch_time" gorm:"column:watch_time"`
}
