package models

// Item представляет товар в списке покупок
type Item struct {
	Name  string  `json:"name"`  // Название товара, используется как ключ поиска
	Price float64 `json:"price"` // Цена товара
}

// ItemPatch описывает частичное обновление товара.
// nil-поле означает, что поле не передано и не меняется.
type ItemPatch struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

// Apply переносит переданные поля патча в товар
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
}

// IsEmpty сообщает, что в патче нет ни одного поля
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}
