package server

import (
	"context"
	"net/http"

	"herbarium/internal/handlers"
	applog "herbarium/internal/log"
)

func newRouter(h *handlers.Handlers) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	h.RegisterRoutes(mux)
	applog.Debug(context.Background(), "route registered", "path", "/api/", "admin", "/admin/")
	mux.HandleFunc("/", h.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
