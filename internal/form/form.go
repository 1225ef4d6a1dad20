package form

import (
	"context"
	"errors"

	"github.com/idealmodas/crediario/internal/client"
)

var (
	ErrValidationFailed = errors.New("formulário contém campos inválidos")
	ErrSubmitInFlight   = errors.New("envio já em andamento")
)

// Sender é quem entrega o payload validado ao serviço.
type Sender interface {
	CriarPreCadastro(ctx context.Context, input client.PreCadastroInput) (*client.PreCadastroOutput, error)
}

// Form reproduz o ciclo do formulário público: máscara no change,
// validação no blur, tudo validado e marcado como tocado no submit.
type Form struct {
	api        Sender
	values     map[string]string
	errors     map[string]string
	touched    map[string]bool
	submitting bool
}

type SubmitResult struct {
	ID      int64
	Message string
}

func New(api Sender) *Form {
	f := &Form{api: api}
	f.reset()
	return f
}

func (f *Form) reset() {
	f.values = make(map[string]string, len(Fields))
	f.errors = make(map[string]string)
	f.touched = make(map[string]bool)
	for _, name := range Fields {
		f.values[name] = ""
	}
}

func (f *Form) Value(name string) string { return f.values[name] }
func (f *Form) Error(name string) string { return f.errors[name] }
func (f *Form) Touched(name string) bool { return f.touched[name] }
func (f *Form) Submitting() bool         { return f.submitting }

// Change aplica a máscara do campo e guarda o valor exibido.
// Campo já tocado revalida na hora; os outros só no blur.
func (f *Form) Change(name, raw string) {
	value := raw
	switch name {
	case FieldCPF:
		value = FormatCPF(raw)
	case FieldTelefone:
		value = FormatPhone(raw)
	case FieldCEP:
		value = FormatCEP(raw)
	case FieldSalario:
		value = FormatCurrency(raw)
	}

	f.values[name] = value

	if f.touched[name] {
		f.setError(name, ValidateField(name, value))
	}
}

func (f *Form) Blur(name string) {
	f.touched[name] = true
	f.setError(name, ValidateField(name, f.values[name]))
}

func (f *Form) setError(name, msg string) {
	if msg == "" {
		delete(f.errors, name)
		return
	}
	f.errors[name] = msg
}

func (f *Form) validateAll() bool {
	ok := true
	for _, name := range Fields {
		f.touched[name] = true
		msg := ValidateField(name, f.values[name])
		f.setError(name, msg)
		if msg != "" {
			ok = false
		}
	}
	return ok
}

// Submit valida tudo e envia. Bloqueia sem chamar a API quando algum
// campo falha (todos ficam tocados para exibir os erros de uma vez).
// Sucesso zera o formulário; falha da API preserva os valores.
func (f *Form) Submit(ctx context.Context) (*SubmitResult, error) {
	if f.submitting {
		return nil, ErrSubmitInFlight
	}

	if !f.validateAll() {
		return nil, ErrValidationFailed
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	output, err := f.api.CriarPreCadastro(ctx, client.PreCadastroInput{
		NomeCompleto:   f.values[FieldNomeCompleto],
		NomeMae:        f.values[FieldNomeMae],
		NomePai:        f.values[FieldNomePai],
		EstadoCivil:    f.values[FieldEstadoCivil],
		Sexo:           f.values[FieldSexo],
		CEP:            OnlyDigits(f.values[FieldCEP]),
		Cidade:         f.values[FieldCidade],
		CPF:            OnlyDigits(f.values[FieldCPF]),
		Telefone:       f.values[FieldTelefone],
		Email:          f.values[FieldEmail],
		DataNascimento: f.values[FieldDataNascimento],
		Endereco:       f.values[FieldEndereco],
		Salario:        f.values[FieldSalario],
	})
	if err != nil {
		// Mensagem crua do serviço vai para o usuário; valores ficam.
		return nil, err
	}

	f.reset()
	return &SubmitResult{ID: output.ID, Message: output.Message}, nil
}
