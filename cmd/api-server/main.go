package main

import (
	"Agora/config"
	"Agora/pkg/log"
	"Agora/pkg/server"
	"Agora/pkg/snowflake"
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

	if err := snowflake.SetNode(snowflake.NodeAPI); err != nil {
		log.L.Fatal("snowflake node", zap.Error(err))
	}

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "promote",
				Usage: "grant the admin role to a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
				},
				Action: func(ctx *cli.Context) error {
					username := ctx.String("username")
					if err := InitAuthService(cfg).Promote(ctx.Context, username); err != nil {
						return err
					}
					log.L.Info("user promoted", zap.String("username", username))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
