//go:build wireinject
// +build wireinject

package main

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/handler"
	"Agora/pkg/client"
	"Agora/pkg/database"
	"Agora/pkg/email"
	"Agora/pkg/server"
	"Agora/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		email.NewSMTPSender,
		server.NewGinEngine,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.ThreadHandler), "*"),
		wire.Struct(new(handler.ChatHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

func InitAuthService(cfg *config.Config) *service.AuthService {
	wire.Build(
		database.NewDB,
		email.NewSMTPSender,
		dao.NewUsers,
		wire.Struct(new(service.AuthService), "*"),
	)
	return nil
}
