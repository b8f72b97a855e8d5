package controller

import (
	"context"

	"github.com/psds-microservice/shop-api/internal/model"
)

// ItemFilter — параметры выборки товаров. Указатели nil = фильтр выключен.
type ItemFilter struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	ShowDeleted bool
}

// ItemStore — хранилище товаров (DIP: сервисы зависят от интерфейса).
type ItemStore interface {
	CreateItem(ctx context.Context, name string, price float64) (*model.Item, error)
	// GetItem возвращает товар в том числе удалённый; errors.ErrItemNotFound если строки нет.
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	ListItems(ctx context.Context, f ItemFilter) ([]*model.Item, error)
	UpdateItem(ctx context.Context, item *model.Item) error
}

// CartEntry — сырая позиция корзины, как она лежит в хранилище.
type CartEntry struct {
	ItemID   int64
	Quantity int64
}

// CartStore — хранилище корзин. Имена и доступность товаров
// дорезолвит сервис через ItemStore.
type CartStore interface {
	CreateCart(ctx context.Context) (int64, error)
	GetCart(ctx context.Context, id int64) ([]CartEntry, error)
	ListCarts(ctx context.Context) (map[int64][]CartEntry, error)
	// AddItem инкрементирует количество либо заводит позицию с quantity=1.
	AddItem(ctx context.Context, cartID, itemID int64) error
}

// UserStore — хранилище пользователей.
type UserStore interface {
	// CreateUser присваивает UID; errors.ErrUsernameTaken при дубликате username.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SetUserRole(ctx context.Context, id int64, role string) error
}
