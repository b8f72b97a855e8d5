package controller

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/metrics"
	"github.com/psds-microservice/shop-api/internal/model"
)

// CartFilter — параметры выборки корзин. Фильтры применяются к
// вычисленным итогам, окно offset/limit — после фильтрации.
type CartFilter struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int64
	MaxQuantity *int64
}

// CartService — интерфейс сервиса корзин.
type CartService interface {
	Create(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (*model.Cart, error)
	List(ctx context.Context, f CartFilter) ([]*model.Cart, error)
	AddItem(ctx context.Context, cartID, itemID int64) error
}

// CartServiceImpl реализует CartService. Итоги корзины считаются при чтении
// по текущему состоянию каталога: удалённые товары не участвуют в сумме.
type CartServiceImpl struct {
	logger *zap.Logger
	repo   CartStore
	items  ItemStore
}

// NewCartService создает новый сервис. Принимает CartStore и ItemStore (DIP).
func NewCartService(logger *zap.Logger, repo CartStore, items ItemStore) *CartServiceImpl {
	return &CartServiceImpl{logger: logger, repo: repo, items: items}
}

func (s *CartServiceImpl) Create(ctx context.Context) (int64, error) {
	id, err := s.repo.CreateCart(ctx)
	if err != nil {
		return 0, err
	}
	metrics.CartOperations.WithLabelValues("create").Inc()
	s.logger.Info("Cart created", zap.Int64("cart_id", id))
	return id, nil
}

func (s *CartServiceImpl) Get(ctx context.Context, id int64) (*model.Cart, error) {
	entries, err := s.repo.GetCart(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, id, entries)
}

func (s *CartServiceImpl) List(ctx context.Context, f CartFilter) ([]*model.Cart, error) {
	raw, err := s.repo.ListCarts(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	filtered := make([]*model.Cart, 0, len(ids))
	for _, id := range ids {
		cart, err := s.resolve(ctx, id, raw[id])
		if err != nil {
			return nil, err
		}
		if f.MinPrice != nil && cart.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && cart.Price > *f.MaxPrice {
			continue
		}
		if f.MinQuantity != nil && cart.Quantity < *f.MinQuantity {
			continue
		}
		if f.MaxQuantity != nil && cart.Quantity > *f.MaxQuantity {
			continue
		}
		filtered = append(filtered, cart)
	}
	return window(filtered, f.Offset, f.Limit), nil
}

func (s *CartServiceImpl) AddItem(ctx context.Context, cartID, itemID int64) error {
	// Товар должен существовать (в том числе удалённый — его можно
	// положить в корзину, но в итогах он не участвует).
	if _, err := s.items.GetItem(ctx, itemID); err != nil {
		return err
	}
	if err := s.repo.AddItem(ctx, cartID, itemID); err != nil {
		return err
	}
	metrics.CartOperations.WithLabelValues("add").Inc()
	return nil
}

// resolve превращает сырые позиции в корзину с именами, доступностью и итогами.
func (s *CartServiceImpl) resolve(ctx context.Context, id int64, entries []CartEntry) (*model.Cart, error) {
	cart := &model.Cart{ID: id, Items: make([]model.CartItem, 0, len(entries))}
	for _, e := range entries {
		ci := model.CartItem{ID: e.ItemID, Quantity: e.Quantity}
		item, err := s.items.GetItem(ctx, e.ItemID)
		switch {
		case err == errors.ErrItemNotFound:
			// Строка товара пропала из каталога: позицию сохраняем как недоступную.
		case err != nil:
			return nil, err
		default:
			ci.Name = item.Name
			ci.Available = !item.Deleted
			if ci.Available {
				cart.Price += item.Price * float64(e.Quantity)
				cart.Quantity += e.Quantity
			}
		}
		cart.Items = append(cart.Items, ci)
	}
	return cart, nil
}
