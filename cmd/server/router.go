package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wbrmagalhaes/jackut-api/internal/api"
	apiMiddleware "github.com/wbrmagalhaes/jackut-api/internal/api/middleware"
)

// setupRouter configures the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.service)
	accountHandler := api.NewAccountHandler(app.service)
	relationHandler := api.NewRelationHandler(app.service)
	messageHandler := api.NewMessageHandler(app.service)
	communityHandler := api.NewCommunityHandler(app.service)
	systemHandler := api.NewSystemHandler(app.service)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessions)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/users/{login}/attributes/{key}", accountHandler.GetAttribute)
		r.Get("/users/{login}/friends", accountHandler.GetFriends)
		r.Get("/users/{login}/communities", accountHandler.GetCommunities)
		r.Get("/communities/{name}", communityHandler.Get)
		r.Post("/system/reset", systemHandler.Reset)

		// Session-scoped endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Put("/profile", accountHandler.EditProfile)
			r.Delete("/profile", accountHandler.Remove)

			r.Post("/friends", relationHandler.AddFriend)
			r.Get("/friends/{login}", relationHandler.CheckFriend)
			r.Post("/idols", relationHandler.AddIdol)
			r.Get("/idols/{login}", relationHandler.CheckIdol)
			r.Post("/crushes", relationHandler.AddCrush)
			r.Get("/crushes/{login}", relationHandler.CheckCrush)
			r.Post("/enemies", relationHandler.AddEnemy)
			r.Get("/enemies/{login}", relationHandler.CheckEnemy)

			// Message consumption is destructive, hence POST.
			r.Post("/messages", messageHandler.Send)
			r.Post("/messages/next", messageHandler.ReadNext)

			r.Post("/communities", communityHandler.Create)
			r.Post("/communities/{name}/join", communityHandler.Join)
			r.Post("/communities/{name}/messages", communityHandler.Broadcast)
			r.Post("/communities/messages/next", communityHandler.ReadNext)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
