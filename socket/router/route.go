package router

import (
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/socket"
	"Agora/socket/handler"
	"net/http"
	"net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter 初始化配置路由
func NewRouter(handle *handler.Handler, hub *socket.Hub) *gin.Engine {
	router := gin.New()
	router.Use(middleware.GinZap(), middleware.PrometheusMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "internal server error"})
	}))

	authorize := middleware.AuthQuery(handle.AuthService)

	router.GET("/wss", authorize, context.Wrap(handle.Chat.Conn))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]any{"ok": "success", "connections": hub.Count()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "not found"})
	})

	if handle.Config.Debug() {
		debug := router.Group("/debug")
		{
			debug.GET("/", gin.WrapF(pprof.Index))
			debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
			debug.GET("/profile", gin.WrapF(pprof.Profile))
			debug.POST("/symbol", gin.WrapF(pprof.Symbol))
			debug.GET("/symbol", gin.WrapF(pprof.Symbol))
			debug.GET("/trace", gin.WrapF(pprof.Trace))
			debug.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
			debug.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
			debug.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		}
	}

	return router
}
