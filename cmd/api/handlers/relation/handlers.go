package handlers

import (
	"ClipHive.com/cmd/relation/service"
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

type RelationHandler struct {
	svc *service.SubscriptionService
}

func New(svc *service.SubscriptionService) *RelationHandler {
	return &RelationHandler{svc: svc}
}

type ToggleSubscriptionParam struct {
	ChannelId int64 `form:"channel_id"`
}
