package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/idealmodas/crediario/internal/entity"
)

type LoginUseCase struct {
	Users  entity.UserRepositoryInterface
	Tokens TokenIssuerInterface
}

func NewLoginUseCase(users entity.UserRepositoryInterface, tokens TokenIssuerInterface) *LoginUseCase {
	return &LoginUseCase{Users: users, Tokens: tokens}
}

// Execute autentica um usuário do painel. Usuário inexistente e senha
// errada retornam o mesmo erro; a resposta não diz qual campo falhou.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, entity.ErrInvalidCredentials
	}

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load user: " + err.Error(),
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.ID, user.Filial)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "TOKEN_ERROR",
			Message: "failed to sign token: " + err.Error(),
		}
	}

	return &LoginOutput{
		Token:  token,
		Filial: user.Filial,
		Email:  user.Email,
	}, nil
}
