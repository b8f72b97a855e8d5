package model

import "time"

// User — пользователь сервиса. Password наружу не сериализуется.
type User struct {
	UID       int64     `json:"uid"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
	Role      string    `json:"role"`
	Password  string    `json:"-"`
}
