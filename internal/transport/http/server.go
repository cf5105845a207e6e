package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akulinin/duochat/internal/config"
	"github.com/akulinin/duochat/internal/core"
)

// NewServer builds the HTTP server exposing the synchronization routes.
func NewServer(exchange *core.Exchange, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	handlers := NewHandlers(exchange, core.NewRoster(cfg.SpeakerCount), logger)

	router.GET("/health", handlers.Health)
	router.GET("/get_message", handlers.GetMessage)
	router.POST("/send_message", handlers.SendMessage)
	router.GET("/show_history", handlers.ShowHistory)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
