package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// DeleteVideo removes a video together with its comments, likes, watch
// histories, playlist memberships and stored assets.
func (h *VideoHandler) DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var del VideoDeleteParam
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

	if _, err := h.svc.DeleteVideo(ctx, userId, del.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
