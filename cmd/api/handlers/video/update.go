package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UpdateVideo changes a video's metadata. The cover image part is optional;
// when present, the old cover asset is replaced.
func (h *VideoHandler) UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var update VideoUpdateParam
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

	coverPath := ""
	if coverFile, err := c.FormFile("cover"); err == nil {
		if coverPath, err = saveUploadedFile(c, coverFile); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
	}

	video, err := h.svc.UpdateVideo(ctx, userId, update.VideoId, update.Title, update.Description, coverPath)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// TogglePublish flips a video between published and unpublished.
func (h *VideoHandler) TogglePublish(ctx context.Context, c *app.RequestContext) {
	var toggle VideoTogglePublishParam
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

	video, err := h.svc.TogglePublish(ctx, userId, toggle.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
