package handler

import (
	"Agora/config"
	"Agora/service"
)

type Handler struct {
	Chat        *ChatChannel
	Config      *config.Config
	AuthService service.IAuthService
}
