package handlers

import (
	"context"

	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *InteractionHandler) CreateComment(ctx context.Context, c *app.RequestContext) {
	var create CreateCommentParam
	if err := c.Bind(&create); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	comment, err := h.comments.CreateComment(ctx, userId, create.VideoId, create.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func (h *InteractionHandler) UpdateComment(ctx context.Context, c *app.RequestContext) {
	var update UpdateCommentParam
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

	comment, err := h.comments.UpdateComment(ctx, userId, update.CommentId, update.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func (h *InteractionHandler) DeleteComment(ctx context.Context, c *app.RequestContext) {
	var del DeleteCommentParam
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

	if err := h.comments.DeleteComment(ctx, userId, del.CommentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// ListComments serves one page of a video's comments with commenter profiles
// and like counts.
func (h *InteractionHandler) ListComments(ctx context.Context, c *app.RequestContext) {
	var list ListCommentsParam
	if err := c.Bind(&list); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if list.PageNum == 0 {
		list.PageNum = constants.DefaultPageNum
	}
	if list.PageSize == 0 {
		list.PageSize = constants.DefaultPageSize
	}

	rows, err := h.comments.ListComments(ctx, list.VideoId, list.PageNum, list.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, rows)
}
