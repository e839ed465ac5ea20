package socket

import (
	"Agora/pkg/log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Event 连接生命周期回调
type Event struct {
	OnOpen    func(c *Client)
	OnMessage func(c *Client, data []byte)
	OnClose   func(c *Client)
}

type ClientOption struct {
	Uid    int64
	Buffer int
}

type Client struct {
	cid    string
	uid    int64
	conn   *websocket.Conn
	hub    *Hub
	send   chan []byte
	event  *Event
	closed atomic.Bool
	mu     sync.RWMutex
	once   sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, opt *ClientOption, event *Event) *Client {
	if opt.Buffer <= 0 {
		opt.Buffer = 64
	}
	if event == nil {
		event = &Event{}
	}

	return &Client{
		cid:   uuid.NewString(),
		uid:   opt.Uid,
		conn:  conn,
		hub:   hub,
		send:  make(chan []byte, opt.Buffer),
		event: event,
	}
}

func (c *Client) Cid() string { return c.cid }

func (c *Client) Uid() int64 { return c.uid }

func (c *Client) Closed() bool { return c.closed.Load() }

// Write queues data without blocking and reports whether it was accepted.
func (c *Client) Write(data []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed.Load() {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Emit 定向推送给当前连接
func (c *Client) Emit(event string, payload any) bool {
	data, err := Encode(event, payload)
	if err != nil {
		log.L.Error("encode event", zap.String("event", event), zap.Error(err))
		return false
	}
	if !c.Write(data) {
		droppedEvents.WithLabelValues(event).Inc()
		return false
	}
	return true
}

func (c *Client) Close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed.Store(true)
		close(c.send)
		c.mu.Unlock()
		_ = c.conn.Close()
	})
}

// Run blocks until the connection is gone.
func (c *Client) Run() {
	c.hub.register(c)
	if c.event.OnOpen != nil {
		c.event.OnOpen(c)
	}

	var wg conc.WaitGroup
	wg.Go(c.loopWrite)
	wg.Go(c.loopRead)
	if r := wg.WaitAndRecover(); r != nil {
		log.L.Error("client loop panic", zap.String("cid", c.cid), zap.String("panic", r.String()))
		c.Close()
	}

	c.hub.unregister(c)
	if c.event.OnClose != nil {
		c.event.OnClose(c)
	}
}

func (c *Client) loopRead() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.L.Warn("socket read", zap.String("cid", c.cid), zap.Error(err))
			}
			return
		}

		if c.event.OnMessage != nil {
			c.event.OnMessage(c, data)
		}
	}
}

func (c *Client) loopWrite() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
