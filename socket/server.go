package socket

import (
	"Agora/config"
	"Agora/dao/cache"
	"Agora/pkg/log"
	"Agora/pkg/server"
	"Agora/pkg/socket"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrServerClosed = errors.New("shutting down server")

type AppProvider struct {
	Config   *config.Config
	Engine   *gin.Engine
	Hub      *socket.Hub
	Presence *cache.PresenceStorage
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)

	if !app.Config.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 清理上次异常退出遗留的在线状态
	if err := app.Presence.Reset(groupCtx, server.GetServerId()); err != nil {
		log.L.Warn("reset presence", zap.Error(err))
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	log.L.Info("server_id", zap.String("server_id", server.GetServerId()))
	log.L.Info("server pid", zap.Int("server_pid", os.Getpid()))
	log.L.Info("websocket listen", zap.Int("port", app.Config.Server.Websocket))

	return start(c, eg, groupCtx, app)
}

func start(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
	serv := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Config.Server.Websocket),
		Handler: app.Engine,
	}

	eg.Go(func() error {
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() (err error) {
		defer func() {
			log.L.Info("shutting down component...")

			timeCtx, timeCancel := context.WithTimeout(context.TODO(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Error("server shutdown failed", zap.Error(err))
			}

			err = ErrServerClosed
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrServerClosed) {
		log.L.Error("server forced to shutdown", zap.Error(err))
	}

	log.L.Info("server exiting")

	return nil
}
