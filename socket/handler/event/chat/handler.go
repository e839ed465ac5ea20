package chat

import (
	"Agora/pkg/log"
	"Agora/pkg/socket"
	"Agora/service"
	"Agora/types"
	"context"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type handle func(ctx context.Context, client *socket.Client, payload gjson.Result)

// Handler 按 event 字段分发客户端消息
type Handler struct {
	MessageService service.IMessageService
	handlers       map[string]handle
}

func NewHandler(messageService service.IMessageService) *Handler {
	h := &Handler{MessageService: messageService}
	h.init()
	return h
}

func (h *Handler) init() {
	h.handlers = map[string]handle{
		types.EventSendMessage:           h.onSendMessage,
		types.EventRequestUnreadMessages: h.onRequestUnread,
		types.EventMarkAsRead:            h.onMarkAsRead,
	}
}

// Call is the socket OnMessage callback.
func (h *Handler) Call(client *socket.Client, data []byte) {
	if !gjson.ValidBytes(data) {
		log.L.Warn("chat event: invalid json", zap.String("cid", client.Cid()))
		return
	}

	event := gjson.GetBytes(data, "event").String()
	call, ok := h.handlers[event]
	if !ok {
		log.L.Warn("chat event: unregistered", zap.String("event", event), zap.String("cid", client.Cid()))
		return
	}

	call(context.Background(), client, gjson.GetBytes(data, "payload"))
}
