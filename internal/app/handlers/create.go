package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/linemk/items-api/internal/service"
)

// CreateItemRequest — тело POST /items.
// Поля — указатели: так "price": 0 отличается от отсутствующей цены.
type CreateItemRequest struct {
	Name  *string  `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

// CreateItemHandler обрабатывает запрос POST /items
func CreateItemHandler(log *slog.Logger, itemService service.ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateItemHandler"
		logger := log.With(slog.String("op", op))

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			writeError(w, logger, http.StatusBadRequest, "invalid request")
			return
		}

		if err := validateRequest(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				writeError(w, logger, http.StatusBadRequest, vErr.Error())
				return
			}
			writeError(w, logger, http.StatusBadRequest, "validation error")
			return
		}

		item, err := itemService.Create(r.Context(), *req.Name, *req.Price)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, ItemResponse{Item: *item})
	}
}
