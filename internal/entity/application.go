package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrApplicationNotFound = errors.New("pré-cadastro não encontrado")
	ErrInvalidStatus       = errors.New("status inválido")
)

// Status segue a enumeração persistida no banco (pt-BR).
// O painel trabalha com os nomes em inglês; a tradução fica aqui.
type Status string

const (
	StatusEmAnalise Status = "em_analise"
	StatusAprovado  Status = "aprovado"
	StatusNegado    Status = "negado"
)

func (s Status) Valid() bool {
	return s == StatusEmAnalise || s == StatusAprovado || s == StatusNegado
}

// Decided informa se o pré-cadastro já foi aprovado ou negado.
// Uma decisão nunca é reaberta.
func (s Status) Decided() bool {
	return s == StatusAprovado || s == StatusNegado
}

// ClientName retorna o nome usado pelo painel (pending/approved/rejected).
func (s Status) ClientName() string {
	switch s {
	case StatusAprovado:
		return "approved"
	case StatusNegado:
		return "rejected"
	default:
		return "pending"
	}
}

// StatusFromClientName converte o nome do painel de volta para a enumeração persistida.
func StatusFromClientName(name string) (Status, bool) {
	switch name {
	case "pending":
		return StatusEmAnalise, true
	case "approved":
		return StatusAprovado, true
	case "rejected":
		return StatusNegado, true
	}
	return "", false
}

// Entidade: CreditApplication (linha de pre_cadastros)
type CreditApplication struct {
	ID            int64     `json:"id"`
	Name          string    `json:"nome_completo"`
	MotherName    string    `json:"nome_mae"`
	FatherName    string    `json:"nome_pai"`
	MaritalStatus string    `json:"estado_civil"`
	Gender        string    `json:"sexo"`
	BirthDate     string    `json:"data_nascimento"`
	CPF           string    `json:"cpf"`
	Salary        string    `json:"salario"`
	Phone         string    `json:"telefone"`
	Email         string    `json:"email"`
	CEP           string    `json:"cep"`
	City          string    `json:"cidade"`
	Address       string    `json:"endereco"`
	Status        Status    `json:"status"`
	CreditLimit   *float64  `json:"limite_credito,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate confere os invariantes de persistência. CPF e CEP chegam
// aqui já reduzidos a dígitos pelo usecase.
func (a *CreditApplication) Validate() error {
	if a.Name == "" {
		return errors.New("nome completo é obrigatório")
	}
	if !onlyDigitsLen(a.CPF, 11) {
		return errors.New("cpf deve conter exatamente 11 dígitos")
	}
	if !onlyDigitsLen(a.CEP, 8) {
		return errors.New("cep deve conter exatamente 8 dígitos")
	}
	if !a.Status.Valid() {
		return ErrInvalidStatus
	}
	if a.CreditLimit != nil && a.Status != StatusAprovado {
		return errors.New("limite de crédito só acompanha aprovação")
	}
	return nil
}

func onlyDigitsLen(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, app *CreditApplication) error
	FindAll(ctx context.Context) ([]CreditApplication, error)
	FindByID(ctx context.Context, id int64) (*CreditApplication, error)
	UpdateStatus(ctx context.Context, id int64, status Status, limit *float64) error
}
