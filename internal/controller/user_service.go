package controller

import (
	"context"
	"crypto/subtle"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/model"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// UserService — интерфейс сервиса пользователей.
type UserService interface {
	Register(ctx context.Context, username, name string, birthdate time.Time, password, role string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetByID(ctx context.Context, author *model.User, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, author *model.User, username string) (*model.User, error)
	Promote(ctx context.Context, author *model.User, id int64) (*model.User, error)
}

// UserServiceImpl реализует UserService.
type UserServiceImpl struct {
	logger *zap.Logger
	repo   UserStore
}

// NewUserService создает новый сервис. Принимает UserStore (DIP).
func NewUserService(logger *zap.Logger, repo UserStore) *UserServiceImpl {
	return &UserServiceImpl{logger: logger, repo: repo}
}

// validPassword: не короче 8 рун и хотя бы одна цифра.
func validPassword(password string) bool {
	if len([]rune(password)) < 8 {
		return false
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func (s *UserServiceImpl) Register(ctx context.Context, username, name string, birthdate time.Time, password, role string) (*model.User, error) {
	if !validPassword(password) {
		return nil, errors.ErrInvalidPassword
	}
	if role == "" {
		role = constants.RoleUser
	}
	user := &model.User{
		Username:  username,
		Name:      name,
		Birthdate: birthdate,
		Role:      role,
		Password:  password,
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User registered",
		zap.Int64("uid", created.UID),
		zap.String("username", created.Username),
		zap.String("role", created.Role))
	return created, nil
}

// Authenticate проверяет пару username/password (HTTP Basic).
func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, errors.ErrUnauthorized
	}
	return user, nil
}

// GetByID возвращает пользователя. Не-админ видит только себя.
func (s *UserServiceImpl) GetByID(ctx context.Context, author *model.User, id int64) (*model.User, error) {
	if author.Role != constants.RoleAdmin && author.UID != id {
		return nil, errors.ErrForbidden
	}
	return s.repo.GetUserByID(ctx, id)
}

// GetByUsername возвращает пользователя. Не-админ видит только себя.
func (s *UserServiceImpl) GetByUsername(ctx context.Context, author *model.User, username string) (*model.User, error) {
	if author.Role != constants.RoleAdmin && author.Username != username {
		return nil, errors.ErrForbidden
	}
	return s.repo.GetUserByUsername(ctx, username)
}

// Promote выдаёт роль admin. Доступно только админам.
func (s *UserServiceImpl) Promote(ctx context.Context, author *model.User, id int64) (*model.User, error) {
	if author.Role != constants.RoleAdmin {
		return nil, errors.ErrForbidden
	}
	if err := s.repo.SetUserRole(ctx, id, constants.RoleAdmin); err != nil {
		return nil, err
	}
	s.logger.Info("User promoted to admin", zap.Int64("uid", id), zap.Int64("author_uid", author.UID))
	return s.repo.GetUserByID(ctx, id)
}
