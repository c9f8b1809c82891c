// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-ask/handlers"
	"github.com/danielhkuo/quickly-ask/middleware"
)

func NewRouter(env *handlers.Env) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	siteHandler := handlers.NewSiteHandler(env)
	authHandler := handlers.NewAuthHandler(env)
	postHandler := handlers.NewPostHandler(env)
	questionHandler := handlers.NewQuestionHandler(env)
	setupHandler := handlers.NewSetupHandler(env)

	requireAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(env.Sessions, next))
	}
	requireSetup := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSetupAccess(env.Cfg.SetupToken, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public
	mux.HandleFunc("GET /{$}", middleware.WithLogging(siteHandler.Index))
	mux.HandleFunc("POST /ask", middleware.WithLogging(questionHandler.Ask))
	mux.HandleFunc("GET /login", middleware.WithLogging(authHandler.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Administrator (session required)
	mux.HandleFunc("GET /logout", requireAuth(authHandler.Logout))
	mux.HandleFunc("GET /dashboard", requireAuth(questionHandler.Dashboard))
	mux.HandleFunc("GET /new_post", requireAuth(postHandler.NewPostForm))
	mux.HandleFunc("POST /new_post", requireAuth(postHandler.CreatePost))
	mux.HandleFunc("GET /answer/{id}", requireAuth(questionHandler.AnswerForm))
	mux.HandleFunc("POST /answer/{id}", requireAuth(questionHandler.Answer))

	// Bootstrap (loopback or setup token)
	mux.HandleFunc("GET /init-db", requireSetup(setupHandler.InitDB))
	mux.HandleFunc("GET /reset-admin", requireSetup(setupHandler.ResetAdmin))

	return mux
}
