package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/linemk/items-api/internal/domain/models"
)

var ErrItemNotFound = errors.New("item not found")

// ItemStorage описывает методы для работы со списком товаров.
type ItemStorage interface {
	// ListItems возвращает все товары в порядке добавления.
	ListItems(ctx context.Context) ([]models.Item, error)
	// GetItemByName возвращает первый товар с указанным названием.
	GetItemByName(ctx context.Context, name string) (*models.Item, error)
	// CreateItem добавляет товар в конец списка.
	CreateItem(ctx context.Context, item models.Item) (*models.Item, error)
	// UpdateItem применяет патч к первому товару с указанным названием.
	UpdateItem(ctx context.Context, name string, patch models.ItemPatch) (*models.Item, error)
	// DeleteItem удаляет первый товар с указанным названием.
	DeleteItem(ctx context.Context, name string) error
}

// MemoryItemRepository — реализация ItemStorage поверх слайса в памяти.
// Порядок элементов совпадает с порядком добавления.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items []models.Item
}

var _ ItemStorage = (*MemoryItemRepository)(nil)

// NewMemoryItemRepository создаёт репозиторий с начальным набором товаров.
func NewMemoryItemRepository(seed ...models.Item) *MemoryItemRepository {
	r := &MemoryItemRepository{}
	r.Seed(seed...)
	return r
}

// ListItems возвращает копию списка, чтобы вызывающий код не мог изменить хранилище.
func (r *MemoryItemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *MemoryItemRepository) GetItemByName(ctx context.Context, name string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, ErrItemNotFound
	}
	item := r.items[i]
	return &item, nil
}

// CreateItem не проверяет уникальность названия.
func (r *MemoryItemRepository) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return &item, nil
}

func (r *MemoryItemRepository) UpdateItem(ctx context.Context, name string, patch models.ItemPatch) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, ErrItemNotFound
	}
	patch.Apply(&r.items[i])
	item := r.items[i]
	return &item, nil
}

func (r *MemoryItemRepository) DeleteItem(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return ErrItemNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// Reset очищает хранилище
func (r *MemoryItemRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// Seed добавляет товары в конец списка
func (r *MemoryItemRepository) Seed(items ...models.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
}

// indexOf вызывается под блокировкой
func (r *MemoryItemRepository) indexOf(name string) int {
	for i := range r.items {
		if r.items[i].Name == name {
			return i
		}
	}
	return -1
}
