package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/idealmodas/crediario/internal/entity"
	"github.com/idealmodas/crediario/internal/infra/auth"
	"github.com/idealmodas/crediario/internal/usecase"
)

// MockApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *entity.CreditApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindAll(ctx context.Context) ([]entity.CreditApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CreditApplication), args.Error(1)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id int64) (*entity.CreditApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CreditApplication), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id int64, status entity.Status, limit *float64) error {
	args := m.Called(ctx, id, status, limit)
	return args.Error(0)
}

// MockUserRepository
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

func validCreateBody() map[string]string {
	return map[string]string{
		"nomeCompleto":   "Maria Silva",
		"nomeMae":        "Joana Silva",
		"estadoCivil":    "solteiro",
		"sexo":           "feminino",
		"cep":            "01310100",
		"cidade":         "São Paulo",
		"cpf":            "12345678900",
		"telefone":       "(11) 98888-7777",
		"email":          "maria@x.com",
		"dataNascimento": "1990-05-15",
		"endereco":       "Rua A, 123, Centro",
		"salario":        "R$ 2.500,00",
	}
}

// ============ POST /pre-cadastro ============

func TestHandleCreateReturns201WithID(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.CreditApplication).ID = 7
	}).Return(nil)

	handler := NewApplicationHandler(usecase.NewCreateApplicationUseCase(mockRepo))

	body, _ := json.Marshal(validCreateBody())
	req := httptest.NewRequest(http.MethodPost, "/pre-cadastro", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp usecase.CreateApplicationOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Pré-cadastro realizado com sucesso!", resp.Message)
}

func TestHandleCreateRejectsMissingField(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	handler := NewApplicationHandler(usecase.NewCreateApplicationUseCase(mockRepo))

	payload := validCreateBody()
	delete(payload, "cpf")
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/pre-cadastro", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CPF")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Esquema fechado: campo desconhecido derruba a requisição.
func TestHandleCreateRejectsUnknownField(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	handler := NewApplicationHandler(usecase.NewCreateApplicationUseCase(mockRepo))

	payload := validCreateBody()
	payload["campoInventado"] = "x"
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/pre-cadastro", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ============ POST /auth/login ============

func newAuthHandler(t *testing.T, mockUsers *MockUserRepository) *AuthHandler {
	t.Helper()
	tokens := auth.NewManager("segredo-de-teste")
	return NewAuthHandler(usecase.NewLoginUseCase(mockUsers, tokens))
}

func TestHandleLoginSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", mock.Anything, "admin@idealmodas.com.br").Return(&entity.User{
		ID:           1,
		Email:        "admin@idealmodas.com.br",
		PasswordHash: string(hash),
		Filial:       "01",
	}, nil)

	handler := newAuthHandler(t, mockUsers)

	body := []byte(`{"email":"admin@idealmodas.com.br","password":"senha123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp usecase.LoginOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "01", resp.Filial)
}

func TestHandleLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByEmail", mock.Anything, "admin@idealmodas.com.br").Return(&entity.User{
		ID:           1,
		Email:        "admin@idealmodas.com.br",
		PasswordHash: string(hash),
		Filial:       "01",
	}, nil)

	handler := newAuthHandler(t, mockUsers)

	body := []byte(`{"email":"admin@idealmodas.com.br","password":"errada"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenciais inválidas")
}

// ============ GET /cadastros e PUT /cadastros/{id} ============

func adminRouter(h *AdminHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/cadastros", h.HandleList)
	r.Put("/cadastros/{id}", h.HandleUpdate)
	return r
}

func TestHandleListReturnsRows(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	mockRepo.On("FindAll", mock.Anything).Return([]entity.CreditApplication{
		{ID: 1, Name: "Maria Silva", Status: entity.StatusEmAnalise},
		{ID: 2, Name: "João Souza", Status: entity.StatusAprovado},
	}, nil)

	handler := NewAdminHandler(mockRepo, usecase.NewDecideApplicationUseCase(mockRepo, nil))

	req := httptest.NewRequest(http.MethodGet, "/cadastros", nil)
	rec := httptest.NewRecorder()
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []entity.CreditApplication
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "Maria Silva", rows[0].Name)
}

// Lista vazia responde [], nunca null.
func TestHandleListEmptyIsArray(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	mockRepo.On("FindAll", mock.Anything).Return(nil, nil)

	handler := NewAdminHandler(mockRepo, usecase.NewDecideApplicationUseCase(mockRepo, nil))

	req := httptest.NewRequest(http.MethodGet, "/cadastros", nil)
	rec := httptest.NewRecorder()
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleUpdateApproval(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	limit := 1500.0
	mockRepo.On("FindByID", mock.Anything, int64(7)).Return(&entity.CreditApplication{ID: 7, Name: "Maria Silva"}, nil)
	mockRepo.On("UpdateStatus", mock.Anything, int64(7), entity.StatusAprovado, &limit).Return(nil)

	handler := NewAdminHandler(mockRepo, usecase.NewDecideApplicationUseCase(mockRepo, nil))

	body := []byte(`{"status":"aprovado","limite_credito":1500}`)
	req := httptest.NewRequest(http.MethodPut, "/cadastros/7", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status atualizado com sucesso!")
	mockRepo.AssertExpectations(t)
}

func TestHandleUpdateUnknownID(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	mockRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, entity.ErrApplicationNotFound)

	handler := NewAdminHandler(mockRepo, usecase.NewDecideApplicationUseCase(mockRepo, nil))

	body := []byte(`{"status":"aprovado","limite_credito":100}`)
	req := httptest.NewRequest(http.MethodPut, "/cadastros/99", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "não encontrado")
}

func TestHandleUpdateApprovalWithoutLimit(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	handler := NewAdminHandler(mockRepo, usecase.NewDecideApplicationUseCase(mockRepo, nil))

	body := []byte(`{"status":"aprovado"}`)
	req := httptest.NewRequest(http.MethodPut, "/cadastros/7", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_LIMIT")
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleUpdateBadID(t *testing.T) {
	mockRepo := new(MockApplicationRepository)
	handler := NewAdminHandler(mockRepo, usecase.NewDecideApplicationUseCase(mockRepo, nil))

	body := []byte(`{"status":"negado"}`)
	req := httptest.NewRequest(http.MethodPut, "/cadastros/abc", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
