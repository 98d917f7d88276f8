package handlers

import (
	"ClipHive.com/cmd/tweet/service"
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

type TweetHandler struct {
	svc *service.TweetService
}

func New(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

type CreateTweetParam struct {
	Content string `form:"content"`
}

type UpdateTweetParam struct {
	TweetId int64  `form:"tweet_id"`
	Content string `form:"content"`
}

type DeleteTweetParam struct {
	TweetId int64 `form:"tweet_id"`
}
