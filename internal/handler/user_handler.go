package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/controller"
	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/internal/model"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// UserHandler обрабатывает HTTP запросы пользователей
type UserHandler struct {
	*BaseHandler
	service controller.UserService
}

// NewUserHandler создает новый хендлер
func NewUserHandler(logger *zap.Logger, service controller.UserService) *UserHandler {
	return &UserHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes регистрирует маршруты. registerLimit — рейт-лимитер,
// навешивается только на регистрацию.
func (h *UserHandler) RegisterRoutes(router gin.IRoutes, registerLimit gin.HandlerFunc) {
	router.POST(constants.PathUserRegister, registerLimit, h.Register)
	router.POST(constants.PathUserGet, h.GetUser)
	router.POST(constants.PathUserPromote, h.Promote)
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Birthdate string `json:"birthdate" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
}

// parseBirthdate принимает RFC3339 и дату-время без зоны.
func parseBirthdate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Invalid birthdate: "+err.Error())
		return
	}
	if req.Role != "" && req.Role != constants.RoleUser && req.Role != constants.RoleAdmin {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Unknown role: "+req.Role)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Name, birthdate, req.Password, req.Role)
	if err != nil {
		switch err {
		case errors.ErrInvalidPassword:
			h.SimpleErrorResponse(c, http.StatusBadRequest, "invalid password")
		case errors.ErrUsernameTaken:
			h.SimpleErrorResponse(c, http.StatusBadRequest, "username is already taken")
		default:
			h.ErrorResponse(c, http.StatusInternalServerError, "Failed to register user", err)
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// requireAuthor достаёт автора запроса из HTTP Basic auth.
func (h *UserHandler) requireAuthor(c *gin.Context) (*model.User, bool) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		c.Header("WWW-Authenticate", `Basic realm="shop-api"`)
		h.SimpleErrorResponse(c, http.StatusUnauthorized, "Basic auth required")
		return nil, false
	}
	author, err := h.service.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		c.Header("WWW-Authenticate", `Basic realm="shop-api"`)
		h.SimpleErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return nil, false
	}
	return author, true
}

func (h *UserHandler) GetUser(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}

	idStr := c.Query("id")
	username := c.Query("username")
	if (idStr == "") == (username == "") {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Provide exactly one of 'id' and 'username'")
		return
	}

	var user *model.User
	var err error
	if idStr != "" {
		id, parseOK := queryInt64(c, "id", 0)
		if !parseOK {
			h.SimpleErrorResponse(c, http.StatusBadRequest, "Parameter 'id' must be an integer")
			return
		}
		user, err = h.service.GetByID(c.Request.Context(), author, id)
	} else {
		user, err = h.service.GetByUsername(c.Request.Context(), author, username)
	}
	if err != nil {
		h.userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Promote(c *gin.Context) {
	author, ok := h.requireAuthor(c)
	if !ok {
		return
	}
	if c.Query("id") == "" {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Parameter 'id' is required")
		return
	}
	id, parseOK := queryInt64(c, "id", 0)
	if !parseOK {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Parameter 'id' must be an integer")
		return
	}
	user, err := h.service.Promote(c.Request.Context(), author, id)
	if err != nil {
		h.userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) userError(c *gin.Context, err error) {
	switch err {
	case errors.ErrUserNotFound:
		h.SimpleErrorResponse(c, http.StatusNotFound, "user not found")
	case errors.ErrForbidden:
		h.SimpleErrorResponse(c, http.StatusForbidden, "forbidden")
	default:
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to process user request", err)
	}
}
