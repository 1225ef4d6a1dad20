package admin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/idealmodas/crediario/internal/client"
	"github.com/idealmodas/crediario/internal/entity"
)

var (
	ErrInvalidLimit      = errors.New("informe um limite válido")
	ErrBusy              = errors.New("já existe uma operação em andamento")
	ErrNoSelection       = errors.New("nenhum pré-cadastro selecionado")
	ErrAlreadyDecided    = errors.New("pré-cadastro já decidido")
	ErrInvalidTransition = errors.New("transição inválida")
)

// Estados do fluxo de aprovação. Resolved não aparece aqui: é o
// retorno a Listed depois que a submissão termina.
type State int

const (
	StateListed State = iota
	StateDetailOpen
	StateLimitPrompt
	StateSubmitting
)

// API é o que o painel precisa do serviço.
type API interface {
	ListarCadastros(ctx context.Context, token string) ([]entity.CreditApplication, error)
	AtualizarStatus(ctx context.Context, token string, id int64, input client.UpdateStatusInput) (*client.UpdateStatusOutput, error)
}

// Notice é o aviso exibido ao operador após cada ação.
type Notice struct {
	Title       string
	Description string
	Failure     bool
}

// Panel mantém a lista em memória, o filtro e o fluxo de decisão.
// Um detalhe aberto por vez; uma submissão em voo por vez.
type Panel struct {
	api     API
	session *Session

	credits  []Credit
	filter   Filter
	state    State
	selected *Credit

	lastNotice *Notice
	now        func() time.Time
}

func NewPanel(api API, session *Session) *Panel {
	return &Panel{
		api:     api,
		session: session,
		state:   StateListed,
		filter:  Filter{Status: "all"},
		now:     time.Now,
	}
}

// Load busca todas as linhas; a filtragem acontece localmente.
func (p *Panel) Load(ctx context.Context) error {
	if !p.session.Valid(p.now()) {
		return ErrSessionExpired
	}

	rows, err := p.api.ListarCadastros(ctx, p.session.Token)
	if err != nil {
		p.notify(Notice{Title: "Erro ao carregar dados", Description: "Não foi possível buscar os pré-cadastros", Failure: true})
		return err
	}

	p.credits = make([]Credit, 0, len(rows))
	for _, row := range rows {
		p.credits = append(p.credits, creditFromRow(row))
	}
	return nil
}

func (p *Panel) State() State        { return p.state }
func (p *Panel) Selected() *Credit   { return p.selected }
func (p *Panel) LastNotice() *Notice { return p.lastNotice }

func (p *Panel) SetFilter(f Filter) { p.filter = f }
func (p *Panel) Filter() Filter     { return p.filter }

// Credits devolve a visão filtrada.
func (p *Panel) Credits() []Credit {
	return applyFilter(p.credits, p.filter)
}

// Stats conta sobre a lista completa, independente do filtro.
func (p *Panel) Stats() Stats {
	return computeStats(p.credits)
}

// OpenDetail seleciona um pré-cadastro. Só um detalhe aberto por vez.
func (p *Panel) OpenDetail(id int64) error {
	if p.state != StateListed {
		return ErrInvalidTransition
	}
	for i := range p.credits {
		if p.credits[i].ID == id {
			c := p.credits[i]
			p.selected = &c
			p.state = StateDetailOpen
			return nil
		}
	}
	return entity.ErrApplicationNotFound
}

func (p *Panel) CloseDetail() {
	if p.state == StateDetailOpen {
		p.selected = nil
		p.state = StateListed
	}
}

// StartApproval abre o prompt de limite. Uma decisão nunca é
// reaberta: só pré-cadastro pendente pode ser aprovado.
func (p *Panel) StartApproval() error {
	if p.state != StateDetailOpen {
		return ErrInvalidTransition
	}
	if p.selected == nil {
		return ErrNoSelection
	}
	if p.selected.Status != "pending" {
		return ErrAlreadyDecided
	}
	p.state = StateLimitPrompt
	return nil
}

// CancelApproval volta do prompt para o detalhe.
func (p *Panel) CancelApproval() {
	if p.state == StateLimitPrompt {
		p.state = StateDetailOpen
	}
}

// ConfirmApproval envia a aprovação com o limite informado. Limite
// não positivo (ou NaN) não chama a API e mantém o prompt aberto.
func (p *Panel) ConfirmApproval(ctx context.Context, limit float64) error {
	if p.state == StateSubmitting {
		return ErrBusy
	}
	if p.state != StateLimitPrompt {
		return ErrInvalidTransition
	}
	if math.IsNaN(limit) || limit <= 0 {
		return ErrInvalidLimit
	}

	credit := p.selected
	if credit == nil {
		return ErrNoSelection
	}

	p.state = StateSubmitting
	err := p.submitDecision(ctx, credit.ID, client.UpdateStatusInput{
		Status:        string(entity.StatusAprovado),
		LimiteCredito: &limit,
	})
	p.resolve()

	if err != nil {
		p.notify(Notice{Title: "Erro ao aprovar", Failure: true})
		return err
	}

	// Atualização otimista só depois do sucesso confirmado.
	p.updateLocal(credit.ID, "approved", &limit)
	p.notify(Notice{
		Title: "Crediário aprovado!",
		Description: fmt.Sprintf(
			"O crediário do %s foi aceito! O valor do limite é R$ %.0f. Avise para comprar na loja no número %s",
			credit.Name, limit, credit.Phone,
		),
	})
	return nil
}

// Reject nega direto do detalhe, sem prompt.
func (p *Panel) Reject(ctx context.Context) error {
	if p.state == StateSubmitting {
		return ErrBusy
	}
	if p.state != StateDetailOpen {
		return ErrInvalidTransition
	}

	credit := p.selected
	if credit == nil {
		return ErrNoSelection
	}
	if credit.Status != "pending" {
		return ErrAlreadyDecided
	}

	p.state = StateSubmitting
	err := p.submitDecision(ctx, credit.ID, client.UpdateStatusInput{
		Status: string(entity.StatusNegado),
	})
	p.resolve()

	if err != nil {
		p.notify(Notice{Title: "Erro ao recusar", Failure: true})
		return err
	}

	p.updateLocal(credit.ID, "rejected", nil)
	p.notify(Notice{Title: "Crediário recusado", Failure: true})
	return nil
}

func (p *Panel) submitDecision(ctx context.Context, id int64, input client.UpdateStatusInput) error {
	if !p.session.Valid(p.now()) {
		return ErrSessionExpired
	}
	_, err := p.api.AtualizarStatus(ctx, p.session.Token, id, input)
	return err
}

// resolve fecha prompt e detalhe, sucesso ou falha.
func (p *Panel) resolve() {
	p.selected = nil
	p.state = StateListed
}

func (p *Panel) updateLocal(id int64, status string, limit *float64) {
	for i := range p.credits {
		if p.credits[i].ID == id {
			p.credits[i].Status = status
			p.credits[i].Limit = limit
			return
		}
	}
}

func (p *Panel) notify(n Notice) {
	p.lastNotice = &n
}
