package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linemk/items-api/internal/app/handlers"
	"github.com/linemk/items-api/internal/lib/logger/handlers/urllog"
	"github.com/linemk/items-api/internal/service"
)

// NewRouter собирает chi-роутер со всеми эндпоинтами /items
func NewRouter(log *slog.Logger, itemService service.ItemService) http.Handler {
	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)

	router.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.ListItemsHandler(log, itemService))
		r.Post("/", handlers.CreateItemHandler(log, itemService))
		r.Get("/{name}", handlers.GetItemHandler(log, itemService))
		r.Patch("/{name}", handlers.UpdateItemHandler(log, itemService))
		r.Delete("/{name}", handlers.DeleteItemHandler(log, itemService))
	})

	return router
}
