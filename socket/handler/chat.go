package handler

import (
	"Agora/dao/cache"
	"Agora/pkg/context"
	"Agora/pkg/log"
	"Agora/pkg/server"
	"Agora/pkg/socket"
	"Agora/socket/handler/event/chat"
	stdctx "context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatChannel struct {
	Hub      *socket.Hub
	Presence *cache.PresenceStorage
	Event    *chat.Handler
}

// Conn 升级为 websocket 并阻塞直到连接断开
func (ch *ChatChannel) Conn(c *gin.Context) error {
	user, err := context.GetUser(c)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已经写过响应
		log.L.Warn("websocket upgrade", zap.Int64("uid", user.ID), zap.String("username", user.Username), zap.Error(err))
		return nil
	}

	client := socket.NewClient(ch.Hub, conn, &socket.ClientOption{
		Uid:    user.ID,
		Buffer: 64,
	}, &socket.Event{
		OnOpen:    ch.onOpen,
		OnMessage: ch.Event.Call,
		OnClose:   ch.onClose,
	})
	client.Run()

	return nil
}

func (ch *ChatChannel) onOpen(c *socket.Client) {
	log.L.Info("socket open", zap.String("cid", c.Cid()), zap.Int64("uid", c.Uid()))

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 3*time.Second)
	defer cancel()
	if err := ch.Presence.Bind(ctx, server.GetServerId(), c.Cid(), c.Uid()); err != nil {
		log.L.Warn("presence bind", zap.String("cid", c.Cid()), zap.Error(err))
	}
}

func (ch *ChatChannel) onClose(c *socket.Client) {
	log.L.Info("socket close", zap.String("cid", c.Cid()), zap.Int64("uid", c.Uid()))

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 3*time.Second)
	defer cancel()
	if err := ch.Presence.UnBind(ctx, server.GetServerId(), c.Cid()); err != nil {
		log.L.Warn("presence unbind", zap.String("cid", c.Cid()), zap.Error(err))
	}
}
