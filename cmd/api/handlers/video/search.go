package handlers

import (
	"context"

	"ClipHive.com/pkg/constants"
	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SearchVideos serves the paginated published-video search view.
func (h *VideoHandler) SearchVideos(ctx context.Context, c *app.RequestContext) {
	var search VideoSearchParam
	if err := c.Bind(&search); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if search.PageNum == 0 {
		search.PageNum = constants.DefaultPageNum
	}
	if search.PageSize == 0 {
		search.PageSize = constants.DefaultPageSize
	}

	rows, err := h.svc.SearchVideos(ctx, search.Keyword, search.SortBy, search.SortOrder, search.PageNum, search.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, rows)
}

// ChannelVideos lists every published-or-not video a channel owns.
func (h *VideoHandler) ChannelVideos(ctx context.Context, c *app.RequestContext) {
	ownerId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil || ownerId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid user id"), nil)
		return
	}
	rows, err := h.svc.ChannelVideos(ctx, ownerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, rows)
}
