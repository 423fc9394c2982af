package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"miranda/internal/auth"
	"miranda/internal/resource"
	"miranda/pkg/config"
	"miranda/pkg/contracts"
	apperrors "miranda/pkg/errors"
	httputil "miranda/pkg/http"
	"miranda/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	healthHandler    http.Handler
	appHttpHandler   http.Handler
	closers          []func() error
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{
		cfg:              cfg,
		idempotencyStore: middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL),
	}
}

// Guards returns the guards for resource routes: every route needs a valid
// token before its body is looked at, and creates replay the stored response
// for a repeated Idempotency-Key.
func (a *Application) Guards(issuer *auth.TokenIssuer) resource.Guards {
	requireToken := auth.RequireToken(issuer, a.cfg.Log)
	requireJSON := middleware.Route(middleware.ContentTypeValidation(a.cfg.Log))
	return resource.Guards{
		Protect: func(next httprouter.Handle) httprouter.Handle {
			return requireToken(requireJSON(next))
		},
		Create:  middleware.Route(middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader)),
	}
}

// OnShutdown registers fn to run after the HTTP server has stopped.
func (a *Application) OnShutdown(fn func() error) {
	a.closers = append(a.closers, fn)
}

func (a *Application) SetApp(db Pinger, login contracts.Handler, resources ...contracts.Handler) {
	a.setHealthHandler(db)
	a.setAppHandler(login, resources)
	a.setAppServer()
}

func (a *Application) setHealthHandler(db Pinger) {
	healthRouter := httprouter.New()
	NewHealthHandler(db, a.cfg.Log).RegisterRoutes(healthRouter)

	a.healthHandler = middleware.Chain(healthRouter,
		middleware.Recovery(a.cfg.Log),
		middleware.RequestLogging(a.cfg.Log),
	)
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(login contracts.Handler, resources []contracts.Handler) {
	appRouter := httprouter.New()
	appRouter.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httputil.WriteError(w, apperrors.NotFound("Route"))
	})
	appRouter.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httputil.WriteError(w, apperrors.New("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed))
	})

	var endpoints []contracts.Route
	for _, h := range resources {
		h.RegisterRoutes(appRouter)
		endpoints = append(endpoints, h.Routes()...)
	}
	login.RegisterRoutes(appRouter)
	endpoints = append(endpoints, login.Routes()...)

	NewRoutesHandler(endpoints, a.cfg.Log).RegisterRoutes(appRouter)

	a.appHttpHandler = middleware.Chain(appRouter,
		middleware.Recovery(a.cfg.Log),
		middleware.RequestLogging(a.cfg.Log),
		middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize)),
		middleware.RequestTimeout(a.cfg.RequestTimeout),
	)
	a.cfg.Log.Info("Application endpoints configured", "routes", len(endpoints))
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHttpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Stopping background workers...")
	a.idempotencyStore.Stop()
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.cfg.Log.Error("Shutdown hook failed", "error", err)
		}
	}
	a.cfg.Log.Info("Background workers stopped")

	a.cfg.GracefulShutdown()
	a.cfg.Log.Info("Server stopped gracefully")
}
