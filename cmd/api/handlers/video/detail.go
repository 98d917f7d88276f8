package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetVideoById serves the full detail view for one video and records the
// viewer's visit.
func (h *VideoHandler) GetVideoById(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil || videoId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid video id"), nil)
		return
	}
	viewerId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	detail, err := h.svc.GetVideoById(ctx, videoId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}
