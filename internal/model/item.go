// Package model содержит доменные сущности магазина.
package model

// Item — товар каталога. Удаление мягкое: строка остаётся, deleted=true.
type Item struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deleted bool    `json:"deleted"`
}
