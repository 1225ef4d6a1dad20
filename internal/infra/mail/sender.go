package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/idealmodas/crediario/internal/form"
	"github.com/idealmodas/crediario/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendDecision avisa o solicitante do resultado da análise.
// Implementa queue.DecisionNotifier.
func (s *EmailSender) SendDecision(payload queue.DecisionPayload) error {
	data := DecisionEmailData{
		Name:     payload.Name,
		Approved: payload.Status == "aprovado",
	}
	if data.Approved && payload.LimiteCredito != nil {
		data.Limit = form.BRL(*payload.LimiteCredito)
	}

	tmplPath := filepath.Join("templates", "decisao.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	subject := "Seu crediário foi aprovado! 🎉"
	if !data.Approved {
		subject = "Resultado da análise do seu crediário"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@idealmodas.com.br")
	m.SetHeader("To", payload.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
