package admin

import (
	"errors"
	"time"

	"github.com/idealmodas/crediario/internal/client"
	"github.com/idealmodas/crediario/internal/infra/auth"
)

var ErrSessionExpired = errors.New("sessão expirada, faça login novamente")

// Session guarda o que o painel precisa entre chamadas: token, filial
// e email autenticados. A validade é conferida localmente antes de
// cada chamada protegida; o servidor confere de novo de qualquer forma.
type Session struct {
	Token         string
	Filial        string
	Email         string
	ExpiresAt     time.Time
	Authenticated bool
}

// NewSession monta a sessão a partir do retorno do login, lendo o
// vencimento de dentro do próprio token.
func NewSession(login client.LoginOutput) (*Session, error) {
	expiresAt, err := auth.ExpiryOf(login.Token)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:         login.Token,
		Filial:        login.Filial,
		Email:         login.Email,
		ExpiresAt:     expiresAt,
		Authenticated: true,
	}, nil
}

func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Authenticated && s.Token != "" && now.Before(s.ExpiresAt)
}

// Logout invalida a sessão local.
func (s *Session) Logout() {
	s.Token = ""
	s.Authenticated = false
}
