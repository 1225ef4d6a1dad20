package mail

type DecisionEmailData struct {
	Name     string
	Approved bool
	Limit    string // já formatado em reais, vazio quando negado
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
