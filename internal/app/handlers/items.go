package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/items-api/internal/domain/models"
	"github.com/linemk/items-api/internal/service"
	"github.com/linemk/items-api/internal/storage"
)

// ItemsResponse — ответ GET /items
type ItemsResponse struct {
	Items []models.Item `json:"items"`
}

// ItemResponse — ответ GET /items/{name} и POST /items
type ItemResponse struct {
	Item models.Item `json:"item"`
}

// ListItemsHandler обрабатывает запрос GET /items
func ListItemsHandler(log *slog.Logger, itemService service.ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListItemsHandler"
		logger := log.With(slog.String("op", op))

		items, err := itemService.List(r.Context())
		if err != nil {
			logger.Error("failed to list items", slog.Any("error", err))
			writeError(w, logger, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, logger, http.StatusOK, ItemsResponse{Items: items})
	}
}

// GetItemHandler обрабатывает запрос GET /items/{name}
func GetItemHandler(log *slog.Logger, itemService service.ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GetItemHandler"
		logger := log.With(slog.String("op", op))

		name, ok := itemName(w, r, logger)
		if !ok {
			return
		}

		item, err := itemService.Get(r.Context(), name)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, ItemResponse{Item: *item})
	}
}

// itemName извлекает название товара из URL.
// chi матчит по r.URL.RawPath, если он задан, и тогда параметр остаётся экранированным.
// Иначе параметр уже раскодирован и повторно его декодировать нельзя.
func itemName(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, bool) {
	name := chi.URLParam(r, "name")
	if name == "" {
		logger.Error("name parameter is missing")
		writeError(w, logger, http.StatusBadRequest, "name parameter is required")
		return "", false
	}
	if r.URL.RawPath == "" {
		return name, true
	}
	name, err := url.PathUnescape(name)
	if err != nil {
		logger.Error("invalid name parameter", slog.Any("error", err))
		writeError(w, logger, http.StatusBadRequest, "invalid name parameter")
		return "", false
	}
	return name, true
}

// writeServiceError переводит ошибку сервиса в HTTP-статус
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, storage.ErrItemNotFound) {
		writeError(w, logger, http.StatusNotFound, storage.ErrItemNotFound.Error())
		return
	}
	logger.Error("service error", slog.Any("error", err))
	writeError(w, logger, http.StatusInternalServerError, "internal server error")
}
