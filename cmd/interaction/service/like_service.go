package service

import (
	"context"
	"time"

	"ClipHive.com/cmd/interaction/dal/db"
	"ClipHive.com/cmd/model"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LikeService struct {
	ctx      context.Context
	repo     *db.InteractionRepo
	producer *mq.Producer
}

func NewLikeService(ctx context.Context, repo *db.InteractionRepo, producer *mq.Producer) *LikeService {
	return &LikeService{ctx: ctx, repo: repo, producer: producer}
}

// ToggleLike flips the (viewer, target) like state: delete the row if it
// exists, create it otherwise. Two concurrent creates race past the
// delete-check; the unique index on likes decides the winner and the loser
// surfaces as a conflict.
func (service *LikeService) ToggleLike(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	if targetId <= 0 {
		return false, errno.ParamErr.WithMessage("Invalid target id")
	}

	deleted, err := service.repo.DeleteLike(ctx, userId, targetType, targetId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete like: %v", err)
		return false, errno.ServiceErr
	}
	if deleted {
		service.publishLikeEvent(ctx, userId, targetType, targetId, "unlike")
		return false, nil
	}

	like, err := model.NewLike(userId, targetType, targetId)
	if err != nil {
		return false, errno.ParamErr.WithMessage(err.Error())
	}
	like.LikeId = int64(uuid.New().ID())
	like.CreatedAt = time.Now().Format(constants.DataFormate)
	if err := service.repo.CreateLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, errno.ConflictErr.WithMessage("Like already exists")
		}
		hlog.CtxErrorf(ctx, "Failed to create like: %v", err)
		return false, errno.ServiceErr
	}
	service.publishLikeEvent(ctx, userId, targetType, targetId, "like")
	return true, nil
}

// LikedVideos returns every video the viewer has liked. An empty list is a
// normal result, not an error.
func (service *LikeService) LikedVideos(ctx context.Context, userId int64) ([]*db.LikedVideoRow, error) {
	rows, err := service.repo.QueryLikedVideos(ctx, userId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to query liked videos: %v", err)
		return nil, errno.ServiceErr
	}
	return rows, nil
}

func (service *LikeService) publishLikeEvent(ctx context.Context, userId int64, targetType string, targetId int64, action string) {
	if service.producer == nil {
		return
	}
	event := &mq.LikeEvent{
		UserID:     userId,
		TargetType: targetType,
		TargetID:   targetId,
		ActionType: action,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := service.producer.PublishLikeEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "Failed to publish like event: %v", err)
	}
}
