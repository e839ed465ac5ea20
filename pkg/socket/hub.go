package socket

import (
	"Agora/pkg/log"
	"encoding/json"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

// Frame 通道上收发的统一结构
type Frame struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Hub 当前进程内的全部连接
type Hub struct {
	clients cmap.ConcurrentMap[string, *Client]
}

func NewHub() *Hub {
	return &Hub{clients: cmap.New[*Client]()}
}

func (h *Hub) register(c *Client) {
	h.clients.Set(c.cid, c)
	connectionsGauge.Inc()
}

func (h *Hub) unregister(c *Client) {
	if _, ok := h.clients.Pop(c.cid); ok {
		connectionsGauge.Dec()
	}
}

func (h *Hub) Count() int {
	return h.clients.Count()
}

// Broadcast delivers the event to every connected client. A client whose
// buffer is full misses the event.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := Encode(event, payload)
	if err != nil {
		log.L.Error("encode broadcast", zap.String("event", event), zap.Error(err))
		return
	}

	h.clients.IterCb(func(_ string, c *Client) {
		if !c.Write(data) {
			droppedEvents.WithLabelValues(event).Inc()
			log.L.Warn("drop broadcast", zap.String("event", event), zap.String("cid", c.cid), zap.Int64("uid", c.uid))
		}
	})
}

func Encode(event string, payload any) ([]byte, error) {
	return json.Marshal(&Frame{Event: event, Payload: payload})
}
