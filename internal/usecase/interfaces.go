package usecase

import (
	"context"

	"github.com/idealmodas/crediario/internal/infra/queue"
)

// Publicador de eventos de decisão. Pode ser nil quando o broker
// não está configurado; o usecase degrada para log.
type DecisionPublisherInterface interface {
	PublishDecision(ctx context.Context, payload queue.DecisionPayload) error
}

// Emissor de tokens de sessão do painel.
type TokenIssuerInterface interface {
	Issue(userID int64, filial string) (string, error)
}
