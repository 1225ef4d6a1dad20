package entity

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("credenciais inválidas")

// Usuário administrativo (linha de users). Criação é externa (seed);
// aqui só existe para autenticação.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Filial       string `json:"filial"`
}

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
