package controller

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/model"
)

// Код unique_violation в PostgreSQL.
const pgUniqueViolation = "23505"

// PostgresItemStore — хранилище товаров на PostgreSQL (lib/pq)
type PostgresItemStore struct {
	db *sql.DB
}

// NewPostgresItemStore создает новое хранилище
func NewPostgresItemStore(db *sql.DB) *PostgresItemStore {
	return &PostgresItemStore{db: db}
}

func (s *PostgresItemStore) CreateItem(ctx context.Context, name string, price float64) (*model.Item, error) {
	item := &model.Item{Name: name, Price: price}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO items (name, price) VALUES ($1, $2) RETURNING id`,
		name, price,
	).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

func (s *PostgresItemStore) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, deleted FROM items WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Deleted)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select item: %w", err)
	}
	return item, nil
}

func (s *PostgresItemStore) ListItems(ctx context.Context, f ItemFilter) ([]*model.Item, error) {
	query := `SELECT id, name, price, deleted FROM items WHERE 1=1`
	args := []any{}
	if !f.ShowDeleted {
		query += ` AND NOT deleted`
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		query += fmt.Sprintf(` AND price >= $%d`, len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		query += fmt.Sprintf(` AND price <= $%d`, len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(` ORDER BY id LIMIT $%d`, len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0)
	for rows.Next() {
		item := &model.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Deleted); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresItemStore) UpdateItem(ctx context.Context, item *model.Item) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE items SET name = $2, price = $3, deleted = $4 WHERE id = $1`,
		item.ID, item.Name, item.Price, item.Deleted,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if n == 0 {
		return errors.ErrItemNotFound
	}
	return nil
}

// PostgresCartStore — хранилище корзин на PostgreSQL
type PostgresCartStore struct {
	db *sql.DB
}

// NewPostgresCartStore создает новое хранилище
func NewPostgresCartStore(db *sql.DB) *PostgresCartStore {
	return &PostgresCartStore{db: db}
}

func (s *PostgresCartStore) CreateCart(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO carts DEFAULT VALUES RETURNING id`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cart: %w", err)
	}
	return id, nil
}

func (s *PostgresCartStore) GetCart(ctx context.Context, id int64) ([]CartEntry, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("select cart: %w", err)
	}
	if !exists {
		return nil, errors.ErrCartNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, quantity FROM cart_items WHERE cart_id = $1 ORDER BY item_id`, id)
	if err != nil {
		return nil, fmt.Errorf("select cart items: %w", err)
	}
	defer rows.Close()

	entries := make([]CartEntry, 0)
	for rows.Next() {
		var e CartEntry
		if err := rows.Scan(&e.ItemID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresCartStore) ListCarts(ctx context.Context) (map[int64][]CartEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, ci.item_id, ci.quantity
		   FROM carts c
		   LEFT JOIN cart_items ci ON ci.cart_id = c.id
		  ORDER BY c.id, ci.item_id`)
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	defer rows.Close()

	carts := make(map[int64][]CartEntry)
	for rows.Next() {
		var cartID int64
		var itemID sql.NullInt64
		var quantity sql.NullInt64
		if err := rows.Scan(&cartID, &itemID, &quantity); err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		if _, ok := carts[cartID]; !ok {
			carts[cartID] = []CartEntry{}
		}
		if itemID.Valid {
			carts[cartID] = append(carts[cartID], CartEntry{ItemID: itemID.Int64, Quantity: quantity.Int64})
		}
	}
	return carts, rows.Err()
}

func (s *PostgresCartStore) AddItem(ctx context.Context, cartID, itemID int64) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`, cartID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("select cart: %w", err)
	}
	if !exists {
		return errors.ErrCartNotFound
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cart_items (cart_id, item_id, quantity) VALUES ($1, $2, 1)
		 ON CONFLICT (cart_id, item_id) DO UPDATE SET quantity = cart_items.quantity + 1`,
		cartID, itemID,
	)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// PostgresUserStore — хранилище пользователей на PostgreSQL
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore создает новое хранилище
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	stored := *user
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, name, birthdate, role, password)
		 VALUES ($1, $2, $3, $4, $5) RETURNING uid`,
		user.Username, user.Name, user.Birthdate, user.Role, user.Password,
	).Scan(&stored.UID)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, errors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &stored, nil
}

func (s *PostgresUserStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.getUser(ctx, `SELECT uid, username, name, birthdate, role, password FROM users WHERE uid = $1`, id)
}

func (s *PostgresUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.getUser(ctx, `SELECT uid, username, name, birthdate, role, password FROM users WHERE username = $1`, username)
}

func (s *PostgresUserStore) getUser(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&user.UID, &user.Username, &user.Name, &user.Birthdate, &user.Role, &user.Password)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

func (s *PostgresUserStore) SetUserRole(ctx context.Context, id int64, role string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET role = $2 WHERE uid = $1`, id, role)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if n == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}
