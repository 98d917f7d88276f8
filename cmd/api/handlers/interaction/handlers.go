package handlers

import (
	"ClipHive.com/cmd/interaction/service"
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

type InteractionHandler struct {
	comments *service.CommentService
	likes    *service.LikeService
}

func New(comments *service.CommentService, likes *service.LikeService) *InteractionHandler {
	return &InteractionHandler{comments: comments, likes: likes}
}

type CreateCommentParam struct {
	VideoId int64  `form:"video_id"`
	Content string `form:"content"`
}

type UpdateCommentParam struct {
	CommentId int64  `form:"comment_id"`
	Content   string `form:"content"`
}

type DeleteCommentParam struct {
	CommentId int64 `form:"comment_id"`
}

type ListCommentsParam struct {
	VideoId  int64 `query:"video_id" form:"video_id"`
	PageNum  int64 `query:"page_num" form:"page_num"`
	PageSize int64 `query:"page_size" form:"page_size"`
}

type ToggleLikeParam struct {
	TargetType string `form:"target_type"`
	TargetId   int64  `form:"target_id"`
}
