package handlers

import (
	"context"

	"ClipHive.com/cmd/dashboard/service"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
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

type DashboardHandler struct {
	svc *service.DashboardService
}

func New(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// ChannelStats serves the caller's own channel summary.
func (h *DashboardHandler) ChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	stats, err := h.svc.GetChannelStats(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

// ChannelVideos lists every video the caller's channel owns.
func (h *DashboardHandler) ChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	rows, err := h.svc.GetChannelVideos(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, rows)
}
