package db

import (
	"context"

	"ClipHive.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TweetRepo struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) *TweetRepo {
	return &TweetRepo{db: db}
}

// TweetRow is one row of the per-user tweet view.
type TweetRow struct {
	TweetId    int64  `json:"tweet_id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	LikesCount int64  `json:"likes_count"`
}

func (r *TweetRepo) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *TweetRepo) GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := new(model.Tweet)
	if err := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (r *TweetRepo) UpdateTweetContent(ctx context.Context, tweetId int64, content, updatedAt string) error {
	if err := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error; err != nil {
		return errors.WithMessage(err, "Failed to update tweet")
	}
	return nil
}

func (r *TweetRepo) DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := r.db.WithContext(ctx).Where("tweet_id = ?", tweetId).
		Delete(&model.Tweet{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete tweet")
	}
	return nil
}

// QueryUserTweets builds the per-user tweet view with like counts.
func (r *TweetRepo) QueryUserTweets(ctx context.Context, userId int64) ([]*TweetRow, error) {
	rows := make([]*TweetRow, 0)
	err := r.db.WithContext(ctx).Table("tweets t").
		Select(`t.tweet_id, t.content, t.created_at, t.updated_at,
			(SELECT COUNT(*) FROM likes l WHERE l.target_type = ? AND l.target_id = t.tweet_id) AS likes_count`,
			model.TargetTweet).
		Where("t.user_id = ?", userId).
		Order("t.tweet_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to query user tweets")
	}
	return rows, nil
}
