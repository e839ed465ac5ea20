//go:build wireinject
// +build wireinject

package main

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/pkg/client"
	"Agora/pkg/database"
	"Agora/pkg/email"
	"Agora/service"
	"Agora/socket"

	"github.com/google/wire"
)

func InitSocketServer(cfg *config.Config) *socket.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		email.NewSMTPSender,
		dao.ProviderSet,
		cache.ProviderSet,
		socket.ProviderSet,
		service.ProviderSet,
		service.MessageSet,
	)
	return nil
}
