package service

import (
	"context"
	"strings"
	"time"

	"ClipHive.com/cmd/model"
	"ClipHive.com/cmd/tweet/dal/db"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LikeCleaner removes every like pointing at a deleted target.
type LikeCleaner interface {
	DeleteTargetLikes(ctx context.Context, targetType string, targetId int64) error
}

type TweetService struct {
	ctx   context.Context
	repo  *db.TweetRepo
	likes LikeCleaner
}

func NewTweetService(ctx context.Context, repo *db.TweetRepo, likes LikeCleaner) *TweetService {
	return &TweetService{ctx: ctx, repo: repo, likes: likes}
}

func (service *TweetService) CreateTweet(ctx context.Context, userId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Tweet content must not be empty")
	}
	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   int64(uuid.New().ID()),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.repo.CreateTweet(ctx, tweet); err != nil {
		hlog.CtxErrorf(ctx, "Failed to create tweet: %v", err)
		return nil, errno.ServiceErr
	}
	return tweet, nil
}

// UserTweets lists a user's tweets with like counts. An author with no
// tweets yields an empty list, not an error.
func (service *TweetService) UserTweets(ctx context.Context, userId int64) ([]*db.TweetRow, error) {
	if userId <= 0 {
		return nil, errno.ParamErr.WithMessage("Provide valid user id")
	}
	rows, err := service.repo.QueryUserTweets(ctx, userId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to query user tweets: %v", err)
		return nil, errno.ServiceErr
	}
	return rows, nil
}

func (service *TweetService) UpdateTweet(ctx context.Context, userId, tweetId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("New content is required")
	}
	tweet, err := service.getOwnedTweet(ctx, userId, tweetId)
	if err != nil {
		return nil, err
	}
	updatedAt := time.Now().Format(constants.DataFormate)
	if err := service.repo.UpdateTweetContent(ctx, tweetId, content, updatedAt); err != nil {
		hlog.CtxErrorf(ctx, "Failed to update tweet: %v", err)
		return nil, errno.ServiceErr
	}
	tweet.Content = content
	tweet.UpdatedAt = updatedAt
	return tweet, nil
}

// DeleteTweet removes the tweet and cascades its likes.
func (service *TweetService) DeleteTweet(ctx context.Context, userId, tweetId int64) error {
	if _, err := service.getOwnedTweet(ctx, userId, tweetId); err != nil {
		return err
	}
	if err := service.repo.DeleteTweet(ctx, tweetId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete tweet: %v", err)
		return errno.ServiceErr
	}
	if err := service.likes.DeleteTargetLikes(ctx, model.TargetTweet, tweetId); err != nil {
		hlog.CtxErrorf(ctx, "Tweet %d deleted but like cleanup failed: %v", tweetId, err)
		return errno.ServiceErr
	}
	return nil
}

func (service *TweetService) getOwnedTweet(ctx context.Context, userId, tweetId int64) (*model.Tweet, error) {
	if tweetId <= 0 {
		return nil, errno.ParamErr.WithMessage("Invalid tweet id")
	}
	tweet, err := service.repo.GetTweetInfo(ctx, tweetId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Tweet not found")
		}
		hlog.CtxErrorf(ctx, "Failed to get tweet: %v", err)
		return nil, errno.ServiceErr
	}
	if tweet.UserId != userId {
		return nil, errno.OwnershipErr.WithMessage("Only the owner can modify the tweet")
	}
	return tweet, nil
}
