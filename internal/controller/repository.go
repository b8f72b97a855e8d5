package controller

import (
	"context"
	"sort"
	"sync"

	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/model"
)

// ItemRepository — in-memory репозиторий товаров
type ItemRepository struct {
	items   map[int64]*model.Item
	counter int64
	mu      sync.RWMutex
}

// NewItemRepository создает новый репозиторий
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[int64]*model.Item),
	}
}

func (r *ItemRepository) CreateItem(_ context.Context, name string, price float64) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	item := &model.Item{ID: r.counter, Name: name, Price: price}
	r.items[item.ID] = item
	return cloneItem(item), nil
}

func (r *ItemRepository) GetItem(_ context.Context, id int64) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, errors.ErrItemNotFound
	}
	return cloneItem(item), nil
}

func (r *ItemRepository) ListItems(_ context.Context, f ItemFilter) ([]*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	filtered := make([]*model.Item, 0, len(ids))
	for _, id := range ids {
		item := r.items[id]
		if item.Deleted && !f.ShowDeleted {
			continue
		}
		if f.MinPrice != nil && item.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && item.Price > *f.MaxPrice {
			continue
		}
		filtered = append(filtered, cloneItem(item))
	}
	return window(filtered, f.Offset, f.Limit), nil
}

func (r *ItemRepository) UpdateItem(_ context.Context, item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.ErrItemNotFound
	}
	r.items[item.ID] = cloneItem(item)
	return nil
}

func cloneItem(item *model.Item) *model.Item {
	c := *item
	return &c
}

// window применяет offset/limit к уже отфильтрованному срезу.
func window[T any](s []T, offset, limit int) []T {
	if offset >= len(s) {
		return []T{}
	}
	end := len(s)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return s[offset:end]
}

// CartRepository — in-memory репозиторий корзин
type CartRepository struct {
	carts   map[int64][]CartEntry
	counter int64
	mu      sync.RWMutex
}

// NewCartRepository создает новый репозиторий
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[int64][]CartEntry),
	}
}

func (r *CartRepository) CreateCart(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	r.carts[r.counter] = []CartEntry{}
	return r.counter, nil
}

func (r *CartRepository) GetCart(_ context.Context, id int64) ([]CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries, ok := r.carts[id]
	if !ok {
		return nil, errors.ErrCartNotFound
	}
	out := make([]CartEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *CartRepository) ListCarts(_ context.Context) (map[int64][]CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int64][]CartEntry, len(r.carts))
	for id, entries := range r.carts {
		copied := make([]CartEntry, len(entries))
		copy(copied, entries)
		out[id] = copied
	}
	return out, nil
}

func (r *CartRepository) AddItem(_ context.Context, cartID, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, ok := r.carts[cartID]
	if !ok {
		return errors.ErrCartNotFound
	}
	for i := range entries {
		if entries[i].ItemID == itemID {
			entries[i].Quantity++
			return nil
		}
	}
	r.carts[cartID] = append(entries, CartEntry{ItemID: itemID, Quantity: 1})
	return nil
}

// UserRepository — in-memory репозиторий пользователей
type UserRepository struct {
	users      map[int64]*model.User
	byUsername map[string]int64
	counter    int64
	mu         sync.RWMutex
}

// NewUserRepository создает новый репозиторий
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[int64]*model.User),
		byUsername: make(map[string]int64),
	}
}

func (r *UserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, errors.ErrUsernameTaken
	}
	r.counter++
	stored := *user
	stored.UID = r.counter
	r.users[stored.UID] = &stored
	r.byUsername[stored.Username] = stored.UID
	out := stored
	return &out, nil
}

func (r *UserRepository) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	out := *r.users[id]
	return &out, nil
}

func (r *UserRepository) SetUserRole(_ context.Context, id int64, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	user.Role = role
	return nil
}
