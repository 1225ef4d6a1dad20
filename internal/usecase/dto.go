package usecase

// Payload do formulário público, em camelCase como o front envia.
type CreateApplicationInput struct {
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

type CreateApplicationOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type DecideApplicationInput struct {
	ID            int64    `json:"-"` // vem da URL, não do corpo
	Status        string   `json:"status"`
	LimiteCredito *float64 `json:"limite_credito,omitempty"`
}

type DecideApplicationOutput struct {
	Message string `json:"message"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token  string `json:"token"`
	Filial string `json:"filial"`
	Email  string `json:"email"`
}
