package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"ClipHive.com/cmd/video/service"
	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type VideoHandler struct {
	svc *service.VideoService
}

func New(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

type VideoPublishParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type VideoSearchParam struct {
	Keyword   string `query:"keyword" form:"keyword"`
	SortBy    string `query:"sort_by" form:"sort_by"`
	SortOrder string `query:"sort_order" form:"sort_order"`
	PageNum   int64  `query:"page_num" form:"page_num"`
	PageSize  int64  `query:"page_size" form:"page_size"`
}

type VideoUpdateParam struct {
	VideoId     int64  `form:"video_id"`
	Title       string `form:"title"`
	Description string `form:"description"`
}

type VideoDeleteParam struct {
	VideoId int64 `form:"video_id"`
}

type VideoTogglePublishParam struct {
	VideoId int64 `form:"video_id"`
}

type ChannelVideosParam struct {
	UserId int64 `path:"user_id"`
}

// saveUploadedFile spools a multipart part into the temp upload dir and
// returns the local path. The caller hands the path to the media store,
// which removes it after the upload attempt.
func saveUploadedFile(c *app.RequestContext, file *multipart.FileHeader) (string, error) {
	if file.Size > constants.MaxVideoSize {
		return "", errno.ParamErr.WithMessage("Uploaded file is too large")
	}
	if err := os.MkdirAll(constants.TempFileDir, 0o755); err != nil {
		return "", err
	}
	localPath := filepath.Join(constants.TempFileDir,
		fmt.Sprintf("%d%s", uuid.New().ID(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}
