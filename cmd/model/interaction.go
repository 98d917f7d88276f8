package model

import "github.com/pkg/errors"

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"column:comment_id;primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"column:video_id;index"`
	UserId    int64  `json:"user_id" gorm:"column:user_id"`
	Content   string `json:"content" gorm:"column:content"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

// Like target kinds. A like row points at exactly one entity.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Like is a tagged union over its target: target_type is the discriminant,
// target_id the single reference. The composite unique index makes the store
// reject a second like for the same (user, target) pair, which is what keeps
// concurrent toggles from ever producing two rows.
type Like struct {
	LikeId     int64  `json:"like_id" gorm:"column:like_id;primaryKey"`
	UserId     int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:uk_like_user_target"`
	TargetType string `json:"target_type" gorm:"column:target_type;size:16;uniqueIndex:uk_like_user_target"`
	TargetId   int64  `json:"target_id" gorm:"column:target_id;uniqueIndex:uk_like_user_target"`
	CreatedAt  string `json:"created_at" gorm:"column:created_at"`
}

// NewLike enforces the union shape at construction time.
func NewLike(userId int64, targetType string, targetId int64) (*Like, error) {
	switch targetType {
	case TargetVideo, TargetComment, TargetTweet:
	default:
		return nil, errors.Errorf("invalid like target type: %q", targetType)
	}
	if userId <= 0 || targetId <= 0 {
		return nil, errors.New("like requires a positive user id and target id")
	}
	return &Like{UserId: userId, TargetType: targetType, TargetId: targetId}, nil
}
