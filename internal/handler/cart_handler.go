package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/controller"
	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// CartHandler обрабатывает HTTP запросы корзин
type CartHandler struct {
	*BaseHandler
	service controller.CartService
}

// NewCartHandler создает новый хендлер
func NewCartHandler(logger *zap.Logger, service controller.CartService) *CartHandler {
	return &CartHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes регистрирует маршруты
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST(constants.PathCarts, h.CreateCart)
	router.GET(constants.PathCarts, h.ListCarts)
	router.GET(constants.PathCartID, h.GetCart)
	router.POST(constants.PathCartAddItem, h.AddItem)
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	id, err := h.service.Create(c.Request.Context())
	if err != nil {
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to create cart", err)
		return
	}
	c.Header(constants.HeaderLocation, fmt.Sprintf("%s/cart/%d", constants.BasePathAPI, id))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		h.ValidationError(c, "id", "Cart id must be an integer")
		return
	}
	cart, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == errors.ErrCartNotFound {
			h.SimpleErrorResponse(c, http.StatusNotFound, "Cart not found")
			return
		}
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to get cart", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ListCarts(c *gin.Context) {
	filter, ok := h.bindCartFilter(c)
	if !ok {
		return
	}
	carts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to list carts", err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

func (h *CartHandler) bindCartFilter(c *gin.Context) (controller.CartFilter, bool) {
	var f controller.CartFilter

	offset, ok := queryInt64(c, "offset", 0)
	if !ok || offset < 0 {
		h.ValidationError(c, "offset", "Offset must be a non-negative integer")
		return f, false
	}
	limit, ok := queryInt64(c, "limit", 10)
	if !ok || limit <= 0 {
		h.ValidationError(c, "limit", "Limit must be a positive integer")
		return f, false
	}
	minPrice, ok := queryFloat(c, "min_price")
	if !ok || (minPrice != nil && *minPrice < 0) {
		h.ValidationError(c, "min_price", "min_price must be a non-negative number")
		return f, false
	}
	maxPrice, ok := queryFloat(c, "max_price")
	if !ok || (maxPrice != nil && *maxPrice < 0) {
		h.ValidationError(c, "max_price", "max_price must be a non-negative number")
		return f, false
	}

	f.MinQuantity, ok = h.bindQuantity(c, "min_quantity")
	if !ok {
		return f, false
	}
	f.MaxQuantity, ok = h.bindQuantity(c, "max_quantity")
	if !ok {
		return f, false
	}

	f.Offset = int(offset)
	f.Limit = int(limit)
	f.MinPrice = minPrice
	f.MaxPrice = maxPrice
	return f, true
}

func (h *CartHandler) bindQuantity(c *gin.Context, key string) (*int64, bool) {
	if c.Query(key) == "" {
		return nil, true
	}
	v, ok := queryInt64(c, key, 0)
	if !ok || v < 0 {
		h.ValidationError(c, key, key+" must be a non-negative integer")
		return nil, false
	}
	return &v, true
}

func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, ok := pathInt64(c, "cart_id")
	if !ok {
		h.ValidationError(c, "cart_id", "Cart id must be an integer")
		return
	}
	itemID, ok := pathInt64(c, "item_id")
	if !ok {
		h.ValidationError(c, "item_id", "Item id must be an integer")
		return
	}
	if err := h.service.AddItem(c.Request.Context(), cartID, itemID); err != nil {
		switch err {
		case errors.ErrCartNotFound:
			h.SimpleErrorResponse(c, http.StatusNotFound, "Cart not found")
		case errors.ErrItemNotFound:
			h.SimpleErrorResponse(c, http.StatusNotFound, "Item not found")
		default:
			h.ErrorResponse(c, http.StatusInternalServerError, "Failed to add item to cart", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item successfully added to the cart"})
}
