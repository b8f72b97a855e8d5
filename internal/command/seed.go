package command

import (
	"database/sql"
	"fmt"
)

// Seed наполняет каталог демо-товарами. Повторный запуск ничего не дублирует.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := []struct {
		name  string
		price float64
	}{
		{"Milk 1L", 89.90},
		{"Bread", 54.50},
		{"Eggs, 10 pcs", 129.00},
		{"Butter 180g", 219.90},
		{"Coffee beans 250g", 649.00},
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		if _, err := tx.Exec(`INSERT INTO items (name, price) VALUES ($1, $2)`, item.name, item.price); err != nil {
			return fmt.Errorf("insert %q: %w", item.name, err)
		}
	}
	return tx.Commit()
}
