package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(ThreadService), "*"),
	wire.Bind(new(IThreadService), new(*ThreadService)),

	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// MessageSet is only used by conn-server, which owns the Publisher.
var MessageSet = wire.NewSet(
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
)
