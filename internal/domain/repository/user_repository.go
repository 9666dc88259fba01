package repository

import "github.com/gestaodocs/gestaodocs-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// Get* devolvem (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
