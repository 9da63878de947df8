package handlers

import (
	"log/slog"
	"net/http"

	"github.com/linemk/items-api/internal/service"
)

// DeleteResponse — ответ при успешном удалении
type DeleteResponse struct {
	Message string `json:"message"`
}

// DeleteItemHandler обрабатывает запрос DELETE /items/{name}
func DeleteItemHandler(log *slog.Logger, itemService service.ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeleteItemHandler"
		logger := log.With(slog.String("op", op))

		name, ok := itemName(w, r, logger)
		if !ok {
			return
		}

		if err := itemService.Delete(r.Context(), name); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, DeleteResponse{Message: "Deleted"})
	}
}
