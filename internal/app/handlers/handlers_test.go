package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/items-api/internal/app/handlers"
	"github.com/linemk/items-api/internal/domain/models"
	"github.com/linemk/items-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItemService — фиктивная реализация service.ItemService для тестирования.
type fakeItemService struct {
	items   []models.Item
	item    *models.Item
	patch   models.ItemPatch
	err     error
	created *models.Item
	calls   int
}

func (f *fakeItemService) List(ctx context.Context) ([]models.Item, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeItemService) Get(ctx context.Context, name string) (*models.Item, error) {
	f.calls++
	return f.item, f.err
}

func (f *fakeItemService) Create(ctx context.Context, name string, price float64) (*models.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.created = &models.Item{Name: name, Price: price}
	return f.created, nil
}

func (f *fakeItemService) Update(ctx context.Context, name string, patch models.ItemPatch) (models.ItemPatch, error) {
	f.calls++
	f.patch = patch
	return patch, f.err
}

func (f *fakeItemService) Delete(ctx context.Context, name string) error {
	f.calls++
	return f.err
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// withName эмулирует chi-маршрут с параметром {name}
func withName(req *http.Request, name string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListItemsHandler_Success(t *testing.T) {
	fakeSvc := &fakeItemService{items: storage.DefaultItems()}
	handler := handlers.ListItemsHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp handlers.ItemsResponse
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 5)
}

func TestListItemsHandler_ServiceError(t *testing.T) {
	fakeSvc := &fakeItemService{err: assert.AnError}
	handler := handlers.ListItemsHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetItemHandler_Success(t *testing.T) {
	fakeSvc := &fakeItemService{item: &models.Item{Name: "silly", Price: 200}}
	handler := handlers.GetItemHandler(newLogger(), fakeSvc)

	req := withName(httptest.NewRequest(http.MethodGet, "/items/silly", nil), "silly")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"item":{"name":"silly","price":200}}`, rr.Body.String())
}

func TestGetItemHandler_NotFound(t *testing.T) {
	fakeSvc := &fakeItemService{err: storage.ErrItemNotFound}
	handler := handlers.GetItemHandler(newLogger(), fakeSvc)

	req := withName(httptest.NewRequest(http.MethodGet, "/items/0", nil), "0")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"item not found"}`, rr.Body.String())
}

func TestGetItemHandler_MissingName(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.GetItemHandler(newLogger(), fakeSvc)

	req := withName(httptest.NewRequest(http.MethodGet, "/items/", nil), "")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, fakeSvc.calls)
}

func TestCreateItemHandler_ZeroPrice(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.CreateItemHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(`{"name": "Taco", "price": 0}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"item":{"name":"Taco","price":0}}`, rr.Body.String())
	require.NotNil(t, fakeSvc.created)
	assert.Equal(t, models.Item{Name: "Taco", Price: 0}, *fakeSvc.created)
}

func TestCreateItemHandler_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing price", body: `{"name": "Taco"}`, message: "missing required fields: price"},
		{name: "missing name", body: `{"price": 1}`, message: "missing required fields: name"},
		{name: "empty body", body: `{}`, message: "missing required fields: name, price"},
		{name: "null price", body: `{"name": "Taco", "price": null}`, message: "missing required fields: price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeSvc := &fakeItemService{}
			handler := handlers.CreateItemHandler(newLogger(), fakeSvc)

			req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Zero(t, fakeSvc.calls, "store must not be touched on validation error")

			var resp handlers.ErrorResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestCreateItemHandler_InvalidJSON(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.CreateItemHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(`{"name": "Taco", "price":`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, fakeSvc.calls)
}

func TestCreateItemHandler_WrongPriceType(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.CreateItemHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(`{"name": "Taco", "price": "free"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateItemHandler_PatchedFieldsOnly(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.UpdateItemHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodPatch, "/items/silly", bytes.NewBufferString(`{"name": "Troll"}`))
	req = withName(req, "silly")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"item":{"name":"Troll"}}`, rr.Body.String())
}

func TestUpdateItemHandler_ZeroPriceEchoed(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.UpdateItemHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodPatch, "/items/silly", bytes.NewBufferString(`{"price": 0}`))
	req = withName(req, "silly")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"item":{"price":0}}`, rr.Body.String())
}

func TestUpdateItemHandler_EmptyBodyNotFound(t *testing.T) {
	fakeSvc := &fakeItemService{err: storage.ErrItemNotFound}
	handler := handlers.UpdateItemHandler(newLogger(), fakeSvc)

	req := withName(httptest.NewRequest(http.MethodPatch, "/items/0", nil), "0")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.True(t, fakeSvc.patch.IsEmpty())
}

func TestUpdateItemHandler_InvalidJSON(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.UpdateItemHandler(newLogger(), fakeSvc)

	req := httptest.NewRequest(http.MethodPatch, "/items/silly", bytes.NewBufferString(`{"name":`))
	req = withName(req, "silly")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, fakeSvc.calls)
}

func TestDeleteItemHandler_Success(t *testing.T) {
	fakeSvc := &fakeItemService{}
	handler := handlers.DeleteItemHandler(newLogger(), fakeSvc)

	req := withName(httptest.NewRequest(http.MethodDelete, "/items/silly", nil), "silly")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Deleted"}`, rr.Body.String())
}

func TestDeleteItemHandler_NotFound(t *testing.T) {
	fakeSvc := &fakeItemService{err: storage.ErrItemNotFound}
	handler := handlers.DeleteItemHandler(newLogger(), fakeSvc)

	req := withName(httptest.NewRequest(http.MethodDelete, "/items/0", nil), "0")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
