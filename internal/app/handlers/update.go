package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/linemk/items-api/internal/domain/models"
	"github.com/linemk/items-api/internal/service"
)

// PatchItemResponse — ответ PATCH /items/{name}, содержит только переданные поля
type PatchItemResponse struct {
	Item models.ItemPatch `json:"item"`
}

// UpdateItemHandler обрабатывает запрос PATCH /items/{name}.
// Пустое тело считается пустым патчем.
func UpdateItemHandler(log *slog.Logger, itemService service.ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.UpdateItemHandler"
		logger := log.With(slog.String("op", op))

		name, ok := itemName(w, r, logger)
		if !ok {
			return
		}

		var patch models.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil && !errors.Is(err, io.EOF) {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			writeError(w, logger, http.StatusBadRequest, "invalid request")
			return
		}

		if patch.IsEmpty() {
			logger.Debug("empty patch, item stays unchanged", slog.String("name", name))
		}

		updated, err := itemService.Update(r.Context(), name, patch)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, PatchItemResponse{Item: updated})
	}
}
