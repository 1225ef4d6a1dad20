package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/idealmodas/crediario/internal/entity"
)

type CreateApplicationUseCase struct {
	Repo entity.ApplicationRepositoryInterface
}

func NewCreateApplicationUseCase(repo entity.ApplicationRepositoryInterface) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{Repo: repo}
}

func (uc *CreateApplicationUseCase) Execute(ctx context.Context, input CreateApplicationInput) (*CreateApplicationOutput, error) {

	validationErrors := ValidateCreateApplicationInput(input)
	if len(validationErrors) > 0 {
		parts := make([]string, len(validationErrors))
		for i, e := range validationErrors {
			parts[i] = e.Field + " (" + e.Message + ")"
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed: " + strings.Join(parts, ", "),
		}
	}

	app := &entity.CreditApplication{
		Name:          input.NomeCompleto,
		MotherName:    input.NomeMae,
		FatherName:    input.NomePai,
		MaritalStatus: input.EstadoCivil,
		Gender:        input.Sexo,
		BirthDate:     input.DataNascimento,

		// O front já manda limpo, mas o servidor reduz de novo.
		CPF: OnlyDigits(input.CPF),
		CEP: OnlyDigits(input.CEP),

		Salary:    input.Salario,
		Phone:     input.Telefone,
		Email:     input.Email,
		City:      input.Cidade,
		Address:   input.Endereco,
		Status:    entity.StatusEmAnalise,
		CreatedAt: time.Now(),
	}

	if err := app.Validate(); err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}

	if err := uc.Repo.Create(ctx, app); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist application: " + err.Error(),
		}
	}

	return &CreateApplicationOutput{
		ID:      app.ID,
		Message: "Pré-cadastro realizado com sucesso!",
	}, nil
}
