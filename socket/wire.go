package socket

import (
	"Agora/pkg/socket"
	"Agora/service"
	"Agora/socket/handler"
	"Agora/socket/router"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	router.NewRouter,
	socket.NewHub,
	wire.Bind(new(service.Publisher), new(*socket.Hub)),

	handler.ProviderSet,

	wire.Struct(new(AppProvider), "*"),
)
