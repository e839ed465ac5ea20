package chat

import (
	"Agora/pkg/log"
	"Agora/pkg/socket"
	"Agora/types"
	"context"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// onSendMessage 发送私信, 发送者固定为当前连接的用户
func (h *Handler) onSendMessage(ctx context.Context, c *socket.Client, payload gjson.Result) {
	if from := payload.Get("from"); from.Exists() && from.Int() != c.Uid() {
		log.L.Warn("sendMessage: sender mismatch", zap.Int64("uid", c.Uid()), zap.String("from", from.String()))
		return
	}

	var createdAt *time.Time
	if v := payload.Get("created_at"); v.Exists() {
		if t := v.Time(); !t.IsZero() {
			createdAt = &t
		}
	}

	h.MessageService.Send(ctx, c.Uid(), payload.Get("to").Int(), payload.Get("message").String(), createdAt)
}

// onRequestUnread 只回复给请求的连接
func (h *Handler) onRequestUnread(ctx context.Context, c *socket.Client, payload gjson.Result) {
	forUser := payload.Get("for_user_id").Int()
	if forUser == 0 {
		log.L.Warn("requestUnreadMessages: missing for_user_id", zap.Int64("uid", c.Uid()))
		c.Emit(types.EventReceiveUnreadMessages, &types.UnreadMessagesPayload{})
		return
	}

	count := h.MessageService.RequestUnread(ctx, c.Uid(), forUser)
	c.Emit(types.EventReceiveUnreadMessages, &types.UnreadMessagesPayload{
		ForUserID: forUser,
		Count:     count,
	})
}

// onMarkAsRead 当前用户读完 from 发来的消息
func (h *Handler) onMarkAsRead(ctx context.Context, c *socket.Client, payload gjson.Result) {
	if to := payload.Get("to"); to.Exists() && to.Int() != c.Uid() {
		log.L.Warn("markAsRead: reader mismatch", zap.Int64("uid", c.Uid()), zap.String("to", to.String()))
		return
	}

	from := payload.Get("from").Int()
	if from == 0 {
		log.L.Warn("markAsRead: missing from", zap.Int64("uid", c.Uid()))
		return
	}

	h.MessageService.MarkRead(ctx, from, c.Uid())
}
