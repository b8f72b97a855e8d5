package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler базовый хендлер
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler создает базовый хендлер
func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// ErrorResponse ответ с ошибкой
func (h *BaseHandler) ErrorResponse(c *gin.Context, status int, message string, err error) {
	h.logger.Error(message, zap.Error(err), zap.Int("status", status), zap.String("path", c.Request.URL.Path))
	errorDetails := ""
	if err != nil {
		errorDetails = err.Error()
	}
	c.JSON(status, gin.H{"error": message, "details": errorDetails})
}

// SimpleErrorResponse упрощенный ответ с ошибкой
func (h *BaseHandler) SimpleErrorResponse(c *gin.Context, code int, message string) {
	h.logger.Warn("API error", zap.Int("status", code), zap.String("message", message), zap.String("path", c.Request.URL.Path))
	c.JSON(code, gin.H{"error": http.StatusText(code), "message": message})
}

// ValidationError ошибка валидации (422, как в исходном контракте API)
func (h *BaseHandler) ValidationError(c *gin.Context, field, message string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_error", "field": field, "message": message})
}

// queryInt64 парсит целочисленный query-параметр; ok=false при мусоре.
func queryInt64(c *gin.Context, key string, def int64) (int64, bool) {
	s := c.Query(key)
	if s == "" {
		return def, true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// queryFloat парсит опциональный float query-параметр; nil когда параметр не задан.
func queryFloat(c *gin.Context, key string) (*float64, bool) {
	s := c.Query(key)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// pathInt64 парсит целочисленный path-параметр.
func pathInt64(c *gin.Context, key string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
