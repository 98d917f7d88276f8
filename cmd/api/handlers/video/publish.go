package handlers

import (
	"context"
	"os"
	"path/filepath"

	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// PublishVideo accepts a multipart upload with the video file, its cover
// image and the metadata fields, stores both assets and creates the record.
func (h *VideoHandler) PublishVideo(ctx context.Context, c *app.RequestContext) {
	var publish VideoPublishParam
	if err := c.Bind(&publish); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("Video file is required"), nil)
		return
	}
	videoPath, err := saveUploadedFile(c, videoFile)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// Without an uploaded cover the first frame of the video becomes one.
	var coverPath string
	if coverFile, ferr := c.FormFile("cover"); ferr == nil {
		coverPath, err = saveUploadedFile(c, coverFile)
	} else {
		coverPath, err = utils.GetVideoCover(videoPath, filepath.Join(constants.TempFileDir, uuid.New().String()))
	}
	if err != nil {
		os.Remove(videoPath)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	video, err := h.svc.PublishVideo(ctx, userId, publish.Title, publish.Description, videoPath, coverPath)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
