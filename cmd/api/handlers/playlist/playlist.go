package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *PlaylistHandler) CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var create CreatePlaylistParam
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

	playlist, err := h.svc.CreatePlaylist(ctx, userId, create.Name, create.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

// UserPlaylists lists a user's playlists.
func (h *PlaylistHandler) UserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil || userId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid user id"), nil)
		return
	}

	playlists, err := h.svc.UserPlaylists(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

// GetPlaylistById serves one playlist with its member video ids in order.
func (h *PlaylistHandler) GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil || playlistId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid playlist id"), nil)
		return
	}

	detail, err := h.svc.GetPlaylistById(ctx, playlistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func (h *PlaylistHandler) AddVideo(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := h.svc.AddVideo(ctx, userId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func (h *PlaylistHandler) RemoveVideo(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := h.svc.RemoveVideo(ctx, userId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func (h *PlaylistHandler) UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var update UpdatePlaylistParam
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

	playlist, err := h.svc.UpdatePlaylist(ctx, userId, update.PlaylistId, update.Name, update.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func (h *PlaylistHandler) DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var del DeletePlaylistParam
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

	if err := h.svc.DeletePlaylist(ctx, userId, del.PlaylistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
