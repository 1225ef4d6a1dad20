package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	nonDigits = regexp.MustCompile(`\D`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// OnlyDigits reduz o valor aos dígitos. CPF e CEP são persistidos assim.
func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateCreateApplicationInput aplica as mesmas regras do formulário
// público, campo a campo. O front já valida; aqui é defesa em profundidade.
func ValidateCreateApplicationInput(input CreateApplicationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.NomeCompleto) == "" {
		errors = append(errors, ValidationError{"nomeCompleto", "Nome completo é obrigatório"})
	} else if len(strings.Fields(input.NomeCompleto)) < 2 {
		errors = append(errors, ValidationError{"nomeCompleto", "Informe nome e sobrenome"})
	}

	if strings.TrimSpace(input.NomeMae) == "" {
		errors = append(errors, ValidationError{"nomeMae", "Nome da mãe é obrigatório"})
	}

	// nomePai é opcional

	if input.EstadoCivil == "" {
		errors = append(errors, ValidationError{"estadoCivil", "Selecione o estado civil"})
	}

	if input.Sexo == "" {
		errors = append(errors, ValidationError{"sexo", "Selecione o sexo"})
	}

	if strings.TrimSpace(input.CEP) == "" {
		errors = append(errors, ValidationError{"cep", "CEP é obrigatório"})
	} else if len(OnlyDigits(input.CEP)) != 8 {
		errors = append(errors, ValidationError{"cep", "CEP inválido"})
	}

	if strings.TrimSpace(input.Cidade) == "" {
		errors = append(errors, ValidationError{"cidade", "Cidade é obrigatória"})
	}

	if strings.TrimSpace(input.CPF) == "" {
		errors = append(errors, ValidationError{"cpf", "CPF é obrigatório"})
	} else if len(OnlyDigits(input.CPF)) != 11 {
		errors = append(errors, ValidationError{"cpf", "CPF inválido"})
	}

	if strings.TrimSpace(input.Telefone) == "" {
		errors = append(errors, ValidationError{"telefone", "Telefone é obrigatório"})
	} else if len(OnlyDigits(input.Telefone)) < 10 {
		errors = append(errors, ValidationError{"telefone", "Telefone inválido"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "E-mail é obrigatório"})
	} else if !emailRe.MatchString(input.Email) {
		errors = append(errors, ValidationError{"email", "E-mail inválido"})
	}

	if input.DataNascimento == "" {
		errors = append(errors, ValidationError{"dataNascimento", "Data de nascimento é obrigatória"})
	}

	if strings.TrimSpace(input.Endereco) == "" {
		errors = append(errors, ValidationError{"endereco", "Endereço é obrigatório"})
	}

	if strings.TrimSpace(input.Salario) == "" || input.Salario == "R$ 0,00" {
		errors = append(errors, ValidationError{"salario", "Salário é obrigatório"})
	}

	return errors
}
