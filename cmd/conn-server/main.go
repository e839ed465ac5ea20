package main

import (
	"Agora/config"
	"Agora/pkg/log"
	"Agora/pkg/snowflake"
	s "Agora/socket"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	// 与 api-server 使用不同的 snowflake 节点
	if err := snowflake.SetNode(snowflake.NodeConn); err != nil {
		log.L.Fatal("snowflake node", zap.Error(err))
	}

	serve := func(ctx *cli.Context) error {
		return s.Run(ctx, InitSocketServer(cfg))
	}

	cliApp := &cli.App{
		Name:   "conn-server",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start websocket server",
				Action: serve,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
