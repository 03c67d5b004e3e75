package api

import (
	"PlantyChat/internal/config"
	"PlantyChat/internal/http-server/handlers/chat"
	"PlantyChat/internal/http-server/handlers/errors"
	"PlantyChat/internal/http-server/middleware/cors"
	"PlantyChat/internal/http-server/middleware/timeout"
	"PlantyChat/internal/lib/sl"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	chat.Core
}

// Router builds the chi router with the full middleware chain. Split out
// of New so tests can mount it on httptest servers.
func Router(conf *config.Config, log *slog.Logger, handler Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(timeout.Timeout(60))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(cors.New(conf.Listen.AllowedOrigin))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/chat", func(r chi.Router) {
		r.Get("/", chat.Health(log))
		r.Post("/", chat.Compose(log, handler))
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := Router(conf, log, handler)

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
