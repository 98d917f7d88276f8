package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *TweetHandler) CreateTweet(ctx context.Context, c *app.RequestContext) {
	var create CreateTweetParam
	if err := c.Bind(&create); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	tweet, err := h.svc.CreateTweet(ctx, userId, create.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

// UserTweets lists a user's tweets with like counts.
func (h *TweetHandler) UserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil || userId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid user id"), nil)
		return
	}

	rows, err := h.svc.UserTweets(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, rows)
}

func (h *TweetHandler) UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var update UpdateTweetParam
	if err := c.Bind(&update); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	tweet, err := h.svc.UpdateTweet(ctx, userId, update.TweetId, update.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func (h *TweetHandler) DeleteTweet(ctx context.Context, c *app.RequestContext) {
	var del DeleteTweetParam
	if err := c.Bind(&del); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := h.svc.DeleteTweet(ctx, userId, del.TweetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
