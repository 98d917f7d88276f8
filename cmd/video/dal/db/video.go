package db

import (
	"context"

	"ClipHive.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// OwnerProfile is the whitelisted slice of a user document that views are
// allowed to expose. Full user rows never leave the store.
type OwnerProfile struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

// VideoSearchRow is one row of the free-text search view.
type VideoSearchRow struct {
	VideoId       int64   `json:"video_id"`
	VideoUrl      string  `json:"video_url"`
	CoverUrl      string  `json:"cover_url"`
	Title         string  `json:"title"`
	VisitCount    int64   `json:"visit_count"`
	Duration      float64 `json:"duration"`
	OwnerId       int64   `json:"owner_id"`
	OwnerName     string  `json:"owner_name"`
	OwnerFullName string  `json:"owner_full_name"`
	OwnerAvatar   string  `json:"owner_avatar"`
}

// VideoDetail is the single-video view: like count, the viewer's own like
// flag, the owner enriched with subscriber data, and the video's comments.
type VideoDetail struct {
	model.Video
	LikesCount int64            `json:"likes_count"`
	IsLiked    bool             `json:"is_liked"`
	Owner      VideoDetailOwner `json:"owner"`
	Comments   []*model.Comment `json:"comments"`
}

type VideoDetailOwner struct {
	OwnerProfile
	CoverUrl         string `json:"cover_url"`
	SubscribersCount int64  `json:"subscribers_count"`
	IsSubscribed     bool   `json:"is_subscribed"`
}

// ChannelVideoRow is one row of the channel-videos view.
type ChannelVideoRow struct {
	VideoId     int64   `json:"video_id"`
	VideoUrl    string  `json:"video_url"`
	CoverUrl    string  `json:"cover_url"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	VisitCount  int64   `json:"visit_count"`
	IsPublished bool    `json:"is_published"`
	TotalLikes  int64   `json:"total_likes"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ChannelVideoStats is the single-pass aggregate over a channel's videos.
type ChannelVideoStats struct {
	TotalViews  int64 `json:"total_views"`
	TotalVideos int64 `json:"total_videos"`
	TotalLikes  int64 `json:"total_likes"`
}

// searchSortFields whitelists caller-supplied sort keys.
var searchSortFields = map[string]string{
	"created_at": "v.created_at",
	"views":      "v.visit_count",
	"duration":   "v.duration",
	"title":      "v.title",
}

func (r *VideoRepo) InsertVideo(ctx context.Context, video *model.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "Failed to insert video")
	}
	return nil
}

func (r *VideoRepo) GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (r *VideoRepo) VideoExists(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VideoRepo) UpdateVideoInfo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.WithMessage(err, "Failed to update video")
	}
	return nil
}

func (r *VideoRepo) ToggleVideoPublish(ctx context.Context, videoId int64) error {
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("is_published", gorm.Expr("NOT is_published")).Error; err != nil {
		return errors.WithMessage(err, "Failed to toggle publish flag")
	}
	return nil
}

func (r *VideoRepo) IncrVideoVisit(ctx context.Context, videoId int64) error {
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.WithMessage(err, "Failed to increment visit count")
	}
	return nil
}

func (r *VideoRepo) DeleteVideo(ctx context.Context, videoId int64) error {
	result := r.db.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchVideos runs the free-text search view over published videos:
// case-insensitive substring match over title and description, owner profile
// joined in, whitelisted sort, then skip/limit.
func (r *VideoRepo) SearchVideos(ctx context.Context, keyword, sortBy, sortOrder string, pageNum, pageSize int64) ([]*VideoSearchRow, error) {
	orderCol, ok := searchSortFields[sortBy]
	if !ok {
		orderCol = "v.created_at"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	pattern := "%" + keyword + "%"

	rows := make([]*VideoSearchRow, 0)
	err := r.db.WithContext(ctx).Table("videos v").
		Select(`v.video_id, v.video_url, v.cover_url, v.title, v.visit_count, v.duration,
			u.user_id AS owner_id, u.user_name AS owner_name,
			u.full_name AS owner_full_name, u.avatar_url AS owner_avatar`).
		Joins("LEFT JOIN users u ON u.user_id = v.user_id").
		Where("v.is_published = ?", true).
		Where("LOWER(v.title) LIKE LOWER(?) OR LOWER(v.description) LIKE LOWER(?)", pattern, pattern).
		Order(orderCol + " " + direction).
		Offset(int((pageNum - 1) * pageSize)).
		Limit(int(pageSize)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to search videos")
	}
	return rows, nil
}

// QueryVideoDetail assembles the video detail view for one viewer. The lookup
// order mirrors the stages: match video, derive like data, join owner with
// subscriber data, join comments.
func (r *VideoRepo) QueryVideoDetail(ctx context.Context, videoId, viewerId int64) (*VideoDetail, error) {
	detail := new(VideoDetail)
	err := r.db.WithContext(ctx).Table("videos v").
		Select(`v.*,
			(SELECT COUNT(*) FROM likes l WHERE l.target_type = ? AND l.target_id = v.video_id) AS likes_count,
			EXISTS(SELECT 1 FROM likes l WHERE l.target_type = ? AND l.target_id = v.video_id AND l.user_id = ?) AS is_liked`,
			model.TargetVideo, model.TargetVideo, viewerId).
		Where("v.video_id = ?", videoId).
		Take(detail).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Table("users u").
		Select(`u.user_id, u.user_name, u.full_name, u.avatar_url, u.cover_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id) AS subscribers_count,
			EXISTS(SELECT 1 FROM subscriptions s WHERE s.channel_id = u.user_id AND s.subscriber_id = ?) AS is_subscribed`,
			viewerId).
		Where("u.user_id = ?", detail.UserId).
		Take(&detail.Owner).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	comments := make([]*model.Comment, 0)
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Order("created_at ASC, comment_id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	detail.Comments = comments
	return detail, nil
}

// GetChannelVideos lists every video owned by a channel with its per-video
// like count. No pagination, the dashboard wants the whole set.
func (r *VideoRepo) GetChannelVideos(ctx context.Context, ownerId int64) ([]*ChannelVideoRow, error) {
	rows := make([]*ChannelVideoRow, 0)
	err := r.db.WithContext(ctx).Table("videos v").
		Select(`v.video_id, v.video_url, v.cover_url, v.title, v.description, v.duration,
			v.visit_count, v.is_published, v.created_at, v.updated_at,
			(SELECT COUNT(*) FROM likes l WHERE l.target_type = ? AND l.target_id = v.video_id) AS total_likes`,
			model.TargetVideo).
		Where("v.user_id = ?", ownerId).
		Order("v.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to get channel videos")
	}
	return rows, nil
}

// GetChannelVideoStats aggregates total views, video count and like count for
// a channel in one pass. A channel with no videos yields all zeros.
func (r *VideoRepo) GetChannelVideoStats(ctx context.Context, ownerId int64) (*ChannelVideoStats, error) {
	stats := new(ChannelVideoStats)
	err := r.db.WithContext(ctx).Table("videos v").
		Select(`COALESCE(SUM(v.visit_count), 0) AS total_views,
			COUNT(*) AS total_videos,
			COALESCE(SUM((SELECT COUNT(*) FROM likes l WHERE l.target_type = ? AND l.target_id = v.video_id)), 0) AS total_likes`,
			model.TargetVideo).
		Where("v.user_id = ?", ownerId).
		Take(stats).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to aggregate channel stats")
	}
	return stats, nil
}
