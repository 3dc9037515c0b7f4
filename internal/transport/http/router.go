package http

import (
	"net/http"

	"github.com/go-chat-nosql/internal/application/auth"
	"github.com/go-chat-nosql/internal/application/channel"
	"github.com/go-chat-nosql/internal/application/directory"
	"github.com/go-chat-nosql/internal/application/dm"
	"github.com/go-chat-nosql/internal/config"
	"github.com/go-chat-nosql/internal/transport/http/handler"
	appmiddleware "github.com/go-chat-nosql/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
//
// Identity resolution is optional everywhere: unauthenticated requests pass
// through as guests, and each service decides what guests may do. There is
// no route-level auth gate — the access rules live in one place, the domain
// layer, not in the routing table.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.Identity(deps.JWTProvider))

	// 5 requests/second, burst of 10 — applied to credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(deps.Store, deps.JWTProvider)
	channelSvc := channel.NewService(deps.Store)
	dmSvc := dm.NewService(deps.Store)
	directorySvc := directory.NewService(deps.Store)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	channelH := handler.NewChannelHandler(channelSvc)
	dmH := handler.NewDmHandler(dmSvc)
	userH := handler.NewUserHandler(directorySvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/login", authH.Login)

		r.Get("/users", userH.List)

		r.Get("/channels", channelH.List)
		r.Post("/channels", channelH.Create)
		r.Get("/channel/{channelName}", channelH.GetMessages)
		r.Post("/channel/{channelName}/send", channelH.SendMessage)

		r.Get("/dm/{receiverId}", dmH.GetMessages)
		r.Post("/dm/{receiverId}/send", dmH.SendMessage)
	})

	return r
}
