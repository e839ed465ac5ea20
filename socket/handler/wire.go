package handler

import (
	"Agora/socket/handler/event/chat"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ChatChannel), "*"),
	wire.Struct(new(Handler), "*"),
	chat.NewHandler,
)
