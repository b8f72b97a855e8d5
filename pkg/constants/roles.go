package constants

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Типы хранилищ
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)
