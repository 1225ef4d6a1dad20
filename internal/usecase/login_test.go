package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/idealmodas/crediario/internal/entity"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID int64, filial string) (string, error) {
	args := m.Called(userID, filial)
	return args.String(0), args.Error(1)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", ctx, "admin@idealmodas.com.br").Return(&entity.User{
		ID:           1,
		Email:        "admin@idealmodas.com.br",
		PasswordHash: string(hash),
		Filial:       "01",
	}, nil)

	mockTokens := new(MockTokenIssuer)
	mockTokens.On("Issue", int64(1), "01").Return("token-assinado", nil)

	uc := NewLoginUseCase(mockUsers, mockTokens)
	output, err := uc.Execute(ctx, LoginInput{Email: "admin@idealmodas.com.br", Password: "senha123"})

	assert.NoError(t, err)
	assert.Equal(t, "token-assinado", output.Token)
	assert.Equal(t, "01", output.Filial)
	assert.Equal(t, "admin@idealmodas.com.br", output.Email)
}

// Usuário inexistente e senha errada produzem o mesmo erro.
func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", ctx, "quem@x.com").Return(nil, entity.ErrInvalidCredentials)

	uc := NewLoginUseCase(mockUsers, new(MockTokenIssuer))
	_, err := uc.Execute(ctx, LoginInput{Email: "quem@x.com", Password: "tanto-faz"})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", ctx, "admin@idealmodas.com.br").Return(&entity.User{
		ID:           1,
		Email:        "admin@idealmodas.com.br",
		PasswordHash: string(hash),
		Filial:       "01",
	}, nil)

	mockTokens := new(MockTokenIssuer)
	uc := NewLoginUseCase(mockUsers, mockTokens)
	_, err := uc.Execute(ctx, LoginInput{Email: "admin@idealmodas.com.br", Password: "errada"})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	mockTokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestLoginEmptyFields(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	uc := NewLoginUseCase(mockUsers, new(MockTokenIssuer))
	_, err := uc.Execute(ctx, LoginInput{Email: "", Password: ""})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	mockUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
