package models

import "time"

// User учетная запись на сервере синхронизации
type User struct {
	ID           string     `db:"id" json:"id"`                       // UUID пользователя
	Username     string     `db:"username" json:"username"`           // уникальный username
	PasswordHash string     `db:"password_hash" json:"-"`             // argon2id хеш в PHC формате
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`       // время создания
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
}
