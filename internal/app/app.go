package app

import (
	"fmt"
	"log/slog"

	"github.com/linemk/items-api/internal/config"
	"github.com/linemk/items-api/internal/domain/models"
	"github.com/linemk/items-api/internal/service"
	"github.com/linemk/items-api/internal/storage"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  *storage.MemoryItemRepository
	Items  service.ItemService
}

// NewApp создаёт новый экземпляр App и заполняет хранилище стартовыми товарами
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	seed, err := seedItems(cfg.Store)
	if err != nil {
		return nil, err
	}

	store := storage.NewMemoryItemRepository(seed...)
	log.Info("item store initialized", slog.Int("items", len(seed)))

	app := &App{
		Config: cfg,
		Logger: log,
		Store:  store,
		Items:  service.NewItemService(log, store),
	}

	return app, nil
}

// seedItems выбирает стартовый набор: из конфига, встроенный или пустой
func seedItems(cfg config.StoreConfig) ([]models.Item, error) {
	if cfg.SkipSeed {
		return nil, nil
	}
	if len(cfg.Items) == 0 {
		return storage.DefaultItems(), nil
	}

	items := make([]models.Item, 0, len(cfg.Items))
	for i, it := range cfg.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("store.items[%d]: name is required", i)
		}
		items = append(items, models.Item{Name: it.Name, Price: it.Price})
	}
	return items, nil
}
