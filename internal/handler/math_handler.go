package handler

import (
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/controller"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// MathHandler обрабатывает вычислительные эндпоинты
type MathHandler struct {
	*BaseHandler
}

// NewMathHandler создает новый хендлер
func NewMathHandler(logger *zap.Logger) *MathHandler {
	return &MathHandler{BaseHandler: NewBaseHandler(logger)}
}

// RegisterRoutes регистрирует маршруты (корневые, вне /api/v1)
func (h *MathHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET(constants.PathFactorial, h.Factorial)
	router.GET(constants.PathFibonacci, h.Fibonacci)
	router.GET(constants.PathMean, h.Mean)
}

// bigResult сериализует big.Int как JSON-число без потери точности.
func bigResult(c *gin.Context, v *big.Int) {
	c.JSON(http.StatusOK, gin.H{"result": json.RawMessage(v.String())})
}

func (h *MathHandler) Factorial(c *gin.Context) {
	nStr := c.Query("n")
	n, err := strconv.ParseInt(nStr, 10, 64)
	if err != nil {
		h.ValidationError(c, "n", "Parameter 'n' is required and must be a valid integer")
		return
	}
	result, err := controller.Factorial(n)
	if err != nil {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Value must be non-negative")
		return
	}
	bigResult(c, result)
}

func (h *MathHandler) Fibonacci(c *gin.Context) {
	n, ok := pathInt64(c, "n")
	if !ok {
		h.ValidationError(c, "n", "Invalid path parameter")
		return
	}
	result, err := controller.Fibonacci(n)
	if err != nil {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "Value must be non-negative")
		return
	}
	bigResult(c, result)
}

func (h *MathHandler) Mean(c *gin.Context) {
	// Указатель, чтобы отличить JSON null от пустого массива: null — не массив.
	var values *[]float64
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(&values); err != nil || values == nil || !drained(dec) {
		h.ValidationError(c, "body", "Request body must be a JSON array of numbers")
		return
	}
	result, err := controller.Mean(*values)
	if err != nil {
		h.SimpleErrorResponse(c, http.StatusBadRequest, "List cannot be empty")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
