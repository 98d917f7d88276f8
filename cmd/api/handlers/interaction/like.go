package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ToggleLike flips the caller's like on a video, comment or tweet and
// reports the resulting state.
func (h *InteractionHandler) ToggleLike(ctx context.Context, c *app.RequestContext) {
	var toggle ToggleLikeParam
	if err := c.Bind(&toggle); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	liked, err := h.likes.ToggleLike(ctx, userId, toggle.TargetType, toggle.TargetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"liked": liked})
}

// LikedVideos lists the caller's liked videos that still exist.
func (h *InteractionHandler) LikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	rows, err := h.likes.LikedVideos(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, rows)
}
