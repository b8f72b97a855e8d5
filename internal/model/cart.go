package model

// CartItem — позиция корзины. Available пересчитывается при чтении
// по текущему состоянию товара.
type CartItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Available bool   `json:"available"`
}

// Cart — корзина. Price и Quantity считаются только по доступным товарам.
type Cart struct {
	ID       int64      `json:"id"`
	Items    []CartItem `json:"items"`
	Price    float64    `json:"price"`
	Quantity int64      `json:"quantity"`
}
