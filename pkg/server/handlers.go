package server

import (
	"Agora/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Topic  *handler.TopicHandler
	Thread *handler.ThreadHandler
	Chat   *handler.ChatHandler
}
