package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/controller"
	"github.com/psds-microservice/shop-api/internal/errors"
	"github.com/psds-microservice/shop-api/pkg/constants"
)

// ItemHandler обрабатывает HTTP запросы каталога товаров
type ItemHandler struct {
	*BaseHandler
	service controller.ItemService
}

// NewItemHandler создает новый хендлер
func NewItemHandler(logger *zap.Logger, service controller.ItemService) *ItemHandler {
	return &ItemHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes регистрирует маршруты
func (h *ItemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST(constants.PathItems, h.CreateItem)
	router.GET(constants.PathItems, h.ListItems)
	router.GET(constants.PathItemID, h.GetItem)
	router.PUT(constants.PathItemID, h.ReplaceItem)
	router.PATCH(constants.PathItemID, h.UpdateItem)
	router.DELETE(constants.PathItemID, h.DeleteItem)
}

// itemBody — тело POST/PUT. Указатели, чтобы отличать отсутствующие поля.
type itemBody struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// drained сообщает, что после первого JSON-значения в теле ничего не осталось.
func drained(dec *json.Decoder) bool {
	return dec.Decode(new(json.RawMessage)) == io.EOF
}

// bindItemBody строго разбирает тело: неизвестные и отсутствующие поля запрещены,
// после объекта не должно быть ничего.
func (h *ItemHandler) bindItemBody(c *gin.Context) (*itemBody, bool) {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	var body itemBody
	if err := dec.Decode(&body); err != nil {
		h.ValidationError(c, "body", "Invalid request body: "+err.Error())
		return nil, false
	}
	if !drained(dec) {
		h.ValidationError(c, "body", "Request body must be a single JSON object")
		return nil, false
	}
	if body.Name == nil {
		h.ValidationError(c, "name", "Field 'name' is required")
		return nil, false
	}
	if body.Price == nil {
		h.ValidationError(c, "price", "Field 'price' is required")
		return nil, false
	}
	return &body, true
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	body, ok := h.bindItemBody(c)
	if !ok {
		return
	}
	item, err := h.service.Create(c.Request.Context(), *body.Name, *body.Price)
	if err != nil {
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to create item", err)
		return
	}
	c.Header(constants.HeaderLocation, fmt.Sprintf("%s/item/%d", constants.BasePathAPI, item.ID))
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		h.ValidationError(c, "id", "Item id must be an integer")
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == errors.ErrItemNotFound {
			h.SimpleErrorResponse(c, http.StatusNotFound, "Item not found or has been deleted")
			return
		}
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to get item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	filter, ok := h.bindItemFilter(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to list items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) bindItemFilter(c *gin.Context) (controller.ItemFilter, bool) {
	var f controller.ItemFilter

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
	showDeleted := false
	if s := c.Query("show_deleted"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			h.ValidationError(c, "show_deleted", "show_deleted must be a boolean")
			return f, false
		}
		showDeleted = v
	}

	f.Offset = int(offset)
	f.Limit = int(limit)
	f.MinPrice = minPrice
	f.MaxPrice = maxPrice
	f.ShowDeleted = showDeleted
	return f, true
}

func (h *ItemHandler) ReplaceItem(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		h.ValidationError(c, "id", "Item id must be an integer")
		return
	}
	body, ok := h.bindItemBody(c)
	if !ok {
		return
	}
	item, err := h.service.Replace(c.Request.Context(), id, *body.Name, *body.Price)
	if err != nil {
		h.itemMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		h.ValidationError(c, "id", "Item id must be an integer")
		return
	}
	patch, ok := h.bindItemPatch(c)
	if !ok {
		return
	}
	item, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.itemMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// bindItemPatch строго разбирает частичное обновление: разрешены только
// name и price, поле deleted менять нельзя. Пустое тело — пустой patch.
func (h *ItemHandler) bindItemPatch(c *gin.Context) (controller.ItemPatch, bool) {
	var patch controller.ItemPatch

	var raw map[string]json.RawMessage
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return patch, true
		}
		h.ValidationError(c, "body", "Invalid request body: "+err.Error())
		return patch, false
	}
	if !drained(dec) {
		h.ValidationError(c, "body", "Request body must be a single JSON object")
		return patch, false
	}

	for key, value := range raw {
		switch key {
		case "name":
			var name string
			if err := json.Unmarshal(value, &name); err != nil {
				h.ValidationError(c, "name", "Field 'name' must be a string")
				return patch, false
			}
			patch.Name = &name
		case "price":
			var price float64
			if err := json.Unmarshal(value, &price); err != nil {
				h.ValidationError(c, "price", "Field 'price' must be a number")
				return patch, false
			}
			patch.Price = &price
		case "deleted":
			h.ValidationError(c, "deleted", "Field 'deleted' cannot be modified")
			return patch, false
		default:
			h.ValidationError(c, key, "Unknown field '"+key+"'")
			return patch, false
		}
	}
	return patch, true
}

func (h *ItemHandler) itemMutationError(c *gin.Context, err error) {
	switch err {
	case errors.ErrItemNotFound:
		h.SimpleErrorResponse(c, http.StatusNotFound, "Item not found")
	case errors.ErrItemDeleted:
		c.Status(http.StatusNotModified)
	default:
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to update item", err)
	}
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		h.ValidationError(c, "id", "Item id must be an integer")
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete item", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusOK, gin.H{"message": "The item has already been deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item has been successfully deleted"})
}
