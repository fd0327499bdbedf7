package auth

import "time"

// Client — учётная запись сервиса, которой разрешено получать токены.
type Client struct {
	ID           string
	PasswordHash string
}

// Token — выпущенный токен доступа.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
