package constants

// Базовые пути API
const (
	BasePathAPI = "/api/v1"
)

// Health и метрики
const (
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

// Items (относительно BasePathAPI)
const (
	PathItems  = "/item"
	PathItemID = "/item/:id"
)

// Carts (относительно BasePathAPI)
const (
	PathCarts       = "/cart"
	PathCartID      = "/cart/:id"
	PathCartAddItem = "/cart/:cart_id/add/:item_id"
)

// Users (корневые, без префикса версии)
const (
	PathUserRegister = "/user-register"
	PathUserGet      = "/user-get"
	PathUserPromote  = "/user-promote"
)

// Math (корневые)
const (
	PathFactorial = "/factorial"
	PathFibonacci = "/fibonacci/:n"
	PathMean      = "/mean"
)

// Swagger
const (
	PathSwagger = "/swagger"
	PathOpenAPI = "/openapi.json"
)

// Status
const (
	PathStatus = "/status"
)
