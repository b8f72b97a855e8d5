package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/metrics"
	"github.com/psds-microservice/shop-api/internal/model"
)

// ItemPatch — частичное обновление товара. nil-поле не трогаем.
type ItemPatch struct {
	Name  *string
	Price *float64
}

// ItemService — интерфейс сервиса каталога (HTTP хендлеры зависят от него).
type ItemService interface {
	Create(ctx context.Context, name string, price float64) (*model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context, f ItemFilter) ([]*model.Item, error)
	Replace(ctx context.Context, id int64, name string, price float64) (*model.Item, error)
	Update(ctx context.Context, id int64, patch ItemPatch) (*model.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ItemServiceImpl реализует ItemService.
type ItemServiceImpl struct {
	logger *zap.Logger
	repo   ItemStore
}

// NewItemService создает новый сервис. Принимает ItemStore (DIP).
func NewItemService(logger *zap.Logger, repo ItemStore) *ItemServiceImpl {
	return &ItemServiceImpl{logger: logger, repo: repo}
}

func (s *ItemServiceImpl) Create(ctx context.Context, name string, price float64) (*model.Item, error) {
	item, err := s.repo.CreateItem(ctx, name, price)
	if err != nil {
		return nil, err
	}
	metrics.ItemsCreated.Inc()
	s.logger.Info("Item created", zap.Int64("item_id", item.ID), zap.String("name", item.Name))
	return item, nil
}

// Get возвращает товар; удалённый товар наружу не отдаётся.
func (s *ItemServiceImpl) Get(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Deleted {
		return nil, errors.ErrItemNotFound
	}
	return item, nil
}

func (s *ItemServiceImpl) List(ctx context.Context, f ItemFilter) ([]*model.Item, error) {
	return s.repo.ListItems(ctx, f)
}

// Replace полностью заменяет товар. Удалённый товар не модифицируется (ErrItemDeleted).
func (s *ItemServiceImpl) Replace(ctx context.Context, id int64, name string, price float64) (*model.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Deleted {
		return nil, errors.ErrItemDeleted
	}
	item.Name = name
	item.Price = price
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update применяет частичное обновление. Пустой patch — no-op, возвращает товар как есть.
func (s *ItemServiceImpl) Update(ctx context.Context, id int64, patch ItemPatch) (*model.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Deleted {
		return nil, errors.ErrItemDeleted
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete помечает товар удалённым. Возвращает false, если удалять было нечего
// (нет строки либо уже удалён) — операция идемпотентна.
func (s *ItemServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		if err == errors.ErrItemNotFound {
			return false, nil
		}
		return false, err
	}
	if item.Deleted {
		return false, nil
	}
	item.Deleted = true
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return false, err
	}
	metrics.ItemsDeleted.Inc()
	s.logger.Info("Item deleted", zap.Int64("item_id", id))
	return true, nil
}
