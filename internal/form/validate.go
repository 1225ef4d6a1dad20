package form

import (
	"regexp"
	"strings"
)

// Nomes dos campos, iguais aos do payload de criação.
const (
	FieldNomeCompleto   = "nomeCompleto"
	FieldNomeMae        = "nomeMae"
	FieldNomePai        = "nomePai"
	FieldEstadoCivil    = "estadoCivil"
	FieldSexo           = "sexo"
	FieldCEP            = "cep"
	FieldCidade         = "cidade"
	FieldCPF            = "cpf"
	FieldTelefone       = "telefone"
	FieldEmail          = "email"
	FieldDataNascimento = "dataNascimento"
	FieldEndereco       = "endereco"
	FieldSalario        = "salario"
)

// Fields na ordem de exibição do formulário.
var Fields = []string{
	FieldNomeCompleto,
	FieldNomeMae,
	FieldNomePai,
	FieldEstadoCivil,
	FieldSexo,
	FieldCEP,
	FieldCidade,
	FieldCPF,
	FieldTelefone,
	FieldEmail,
	FieldDataNascimento,
	FieldEndereco,
	FieldSalario,
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateField devolve a mensagem de erro do campo, ou "" quando válido.
// Avaliado no blur e de novo no submit.
func ValidateField(name, value string) string {
	switch name {
	case FieldNomeCompleto:
		if strings.TrimSpace(value) == "" {
			return "Nome completo é obrigatório"
		}
		if len(strings.Fields(value)) < 2 {
			return "Informe nome e sobrenome"
		}
	case FieldNomeMae:
		if strings.TrimSpace(value) == "" {
			return "Nome da mãe é obrigatório"
		}
	case FieldEstadoCivil:
		if value == "" {
			return "Selecione o estado civil"
		}
	case FieldSexo:
		if value == "" {
			return "Selecione o sexo"
		}
	case FieldCEP:
		if strings.TrimSpace(value) == "" {
			return "CEP é obrigatório"
		}
		if len(OnlyDigits(value)) != 8 {
			return "CEP inválido"
		}
	case FieldCidade:
		if strings.TrimSpace(value) == "" {
			return "Cidade é obrigatória"
		}
	case FieldCPF:
		if strings.TrimSpace(value) == "" {
			return "CPF é obrigatório"
		}
		if len(OnlyDigits(value)) != 11 {
			return "CPF inválido"
		}
	case FieldTelefone:
		if strings.TrimSpace(value) == "" {
			return "Telefone é obrigatório"
		}
		if len(OnlyDigits(value)) < 10 {
			return "Telefone inválido"
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return "E-mail é obrigatório"
		}
		if !emailPattern.MatchString(value) {
			return "E-mail inválido"
		}
	case FieldDataNascimento:
		if value == "" {
			return "Data de nascimento é obrigatória"
		}
	case FieldEndereco:
		if strings.TrimSpace(value) == "" {
			return "Endereço é obrigatório"
		}
	case FieldSalario:
		if strings.TrimSpace(value) == "" || value == "R$ 0,00" {
			return "Salário é obrigatório"
		}
	}
	return ""
}
