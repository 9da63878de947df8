package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/linemk/items-api/internal/domain/models"
	"github.com/linemk/items-api/internal/storage"
)

type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, name string) (*models.Item, error)
	Create(ctx context.Context, name string, price float64) (*models.Item, error)
	Update(ctx context.Context, name string, patch models.ItemPatch) (models.ItemPatch, error)
	Delete(ctx context.Context, name string) error
}

type itemService struct {
	log      *slog.Logger
	itemRepo storage.ItemStorage
}

func NewItemService(log *slog.Logger, itemRepo storage.ItemStorage) ItemService {
	return &itemService{
		log:      log,
		itemRepo: itemRepo,
	}
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	const op = "service.ItemService.List"

	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.log.Error("failed to list items", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *itemService) Get(ctx context.Context, name string) (*models.Item, error) {
	const op = "service.ItemService.Get"
	logger := s.log.With(slog.String("op", op), slog.String("name", name))

	item, err := s.itemRepo.GetItemByName(ctx, name)
	if err != nil {
		s.logLookupError(logger, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// Create не проверяет дубликаты названий, повторный товар просто добавляется в конец
func (s *itemService) Create(ctx context.Context, name string, price float64) (*models.Item, error) {
	const op = "service.ItemService.Create"
	logger := s.log.With(slog.String("op", op), slog.String("name", name))

	item, err := s.itemRepo.CreateItem(ctx, models.Item{Name: name, Price: price})
	if err != nil {
		logger.Error("failed to create item", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to create item: %w", op, err)
	}
	logger.Info("item created", slog.Float64("price", price))
	return item, nil
}

// Update сливает переданные поля с хранимым товаром.
// В ответ уходят только поля из патча: клиент, передавший {"name": ...},
// получит обратно только name.
func (s *itemService) Update(ctx context.Context, name string, patch models.ItemPatch) (models.ItemPatch, error) {
	const op = "service.ItemService.Update"
	logger := s.log.With(slog.String("op", op), slog.String("name", name))

	if _, err := s.itemRepo.UpdateItem(ctx, name, patch); err != nil {
		s.logLookupError(logger, err)
		return models.ItemPatch{}, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("item updated")
	return patch, nil
}

func (s *itemService) Delete(ctx context.Context, name string) error {
	const op = "service.ItemService.Delete"
	logger := s.log.With(slog.String("op", op), slog.String("name", name))

	if err := s.itemRepo.DeleteItem(ctx, name); err != nil {
		s.logLookupError(logger, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("item deleted")
	return nil
}

// отсутствие товара — штатная ситуация, поэтому warn, а не error
func (s *itemService) logLookupError(logger *slog.Logger, err error) {
	if errors.Is(err, storage.ErrItemNotFound) {
		logger.Warn("item not found")
		return
	}
	logger.Error("storage error", slog.Any("error", err))
}
