package client

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token  string `json:"token"`
	Filial string `json:"filial"`
	Email  string `json:"email"`
}

// Payload de criação, em camelCase como o serviço espera.
type PreCadastroInput struct {
	NomeCompleto   string `json:"nomeCompleto"`
	NomeMae        string `json:"nomeMae"`
	NomePai        string `json:"nomePai"`
	EstadoCivil    string `json:"estadoCivil"`
	Sexo           string `json:"sexo"`
	CEP            string `json:"cep"`
	Cidade         string `json:"cidade"`
	CPF            string `json:"cpf"`
	Telefone       string `json:"telefone"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	Endereco       string `json:"endereco"`
	Salario        string `json:"salario"`
}

type PreCadastroOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Corpo do PUT /cadastros/{id}; status na enumeração persistida.
type UpdateStatusInput struct {
	Status        string   `json:"status"`
	LimiteCredito *float64 `json:"limite_credito,omitempty"`
}

type UpdateStatusOutput struct {
	Message string `json:"message"`
}
