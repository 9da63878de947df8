package storage

import "github.com/linemk/items-api/internal/domain/models"

// DefaultItems возвращает стартовый набор товаров, которым заполняется хранилище,
// если store.skip_seed не включён, а store.items пуст.
func DefaultItems() []models.Item {
	return []models.Item{
		{Name: "popsicle", Price: 1.45},
		{Name: "cheerios", Price: 3.40},
		{Name: "milk", Price: 2.99},
		{Name: "bread", Price: 2.25},
		{Name: "eggs", Price: 4.10},
	}
}
