package socket

import "github.com/prometheus/client_golang/prometheus"

var (
	connectionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agora_socket_connections",
		Help: "Number of live socket connections",
	})

	droppedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agora_socket_dropped_events_total",
			Help: "Outbound events dropped because a client buffer was full",
		},
		[]string{"event"},
	)
)

func init() {
	prometheus.MustRegister(connectionsGauge)
	prometheus.MustRegister(droppedEvents)
}
