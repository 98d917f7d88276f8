package handlers

import (
	"ClipHive.com/cmd/playlist/service"
	"ClipHive.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
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

type PlaylistHandler struct {
	svc *service.PlaylistService
}

func New(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

type CreatePlaylistParam struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `form:"playlist_id"`
	Name        string `form:"name"`
	Description string `form:"description"`
}

type DeletePlaylistParam struct {
	PlaylistId int64 `form:"playlist_id"`
}

type PlaylistVideoParam struct {
	PlaylistId int64 `form:"playlist_id"`
	VideoId    int64 `form:"video_id"`
}
