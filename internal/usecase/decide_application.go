package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/idealmodas/crediario/internal/entity"
	"github.com/idealmodas/crediario/internal/infra/queue"
)

type DecideApplicationUseCase struct {
	Repo     entity.ApplicationRepositoryInterface
	Producer DecisionPublisherInterface
}

func NewDecideApplicationUseCase(
	repo entity.ApplicationRepositoryInterface,
	producer DecisionPublisherInterface,
) *DecideApplicationUseCase {
	return &DecideApplicationUseCase{
		Repo:     repo,
		Producer: producer,
	}
}

func (uc *DecideApplicationUseCase) Execute(ctx context.Context, input DecideApplicationInput) (*DecideApplicationOutput, error) {

	status := entity.Status(input.Status)
	if !status.Decided() {
		return nil, &DomainError{
			Code:    "INVALID_STATUS",
			Message: "status deve ser 'aprovado' ou 'negado'",
		}
	}

	limit := input.LimiteCredito
	if status == entity.StatusAprovado {
		if limit == nil || *limit <= 0 {
			return nil, &DomainError{
				Code:    "INVALID_LIMIT",
				Message: "aprovação exige limite_credito maior que zero",
			}
		}
	} else {
		// Negação nunca carrega limite.
		limit = nil
	}

	app, err := uc.Repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, entity.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load application: " + err.Error(),
		}
	}

	if err := uc.Repo.UpdateStatus(ctx, input.ID, status, limit); err != nil {
		if errors.Is(err, entity.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update application: " + err.Error(),
		}
	}

	// Notificação é assíncrona e não derruba a decisão já persistida.
	if uc.Producer != nil {
		payload := queue.DecisionPayload{
			EventID:       uuid.New().String(),
			ApplicationID: app.ID,
			Name:          app.Name,
			Email:         app.Email,
			Phone:         app.Phone,
			Status:        string(status),
			LimiteCredito: limit,
			DecidedAt:     time.Now(),
		}
		if err := uc.Producer.PublishDecision(ctx, payload); err != nil {
			log.Printf("falha ao publicar decisão do cadastro %d: %v", app.ID, err)
		}
	}

	return &DecideApplicationOutput{
		Message: "Status atualizado com sucesso!",
	}, nil
}
