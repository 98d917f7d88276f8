package handlers

import (
	"context"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/jwt"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ToggleSubscription flips the caller's subscription to a channel and
// reports the resulting state.
func (h *RelationHandler) ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var toggle ToggleSubscriptionParam
	if err := c.Bind(&toggle); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscriberId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	subscribed, err := h.svc.ToggleSubscription(ctx, subscriberId, toggle.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

// ChannelSubscribers serves the grouped subscriber list of a channel.
func (h *RelationHandler) ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil || channelId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid channel id"), nil)
		return
	}

	group, err := h.svc.ChannelSubscribers(ctx, channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, group)
}

// SubscribedChannels serves the grouped channel list a user subscribes to.
func (h *RelationHandler) SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := utils.ConvertStringToInt64(c.Param("subscriber_id"))
	if err != nil || subscriberId <= 0 {
		SendResponse(c, errno.ParamErr.WithMessage("Invalid subscriber id"), nil)
		return
	}

	group, err := h.svc.SubscribedChannels(ctx, subscriberId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, group)
}
