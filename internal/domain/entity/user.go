package entity

import "time"

// User representa um usuário do sistema (quem opera o cadastro de funcionários).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca em texto plano depois de persistir
	CreatedAt    time.Time
}
