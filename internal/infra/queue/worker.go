package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DecisionNotifier é quem avisa o solicitante (hoje: email).
type DecisionNotifier interface {
	SendDecision(payload DecisionPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier DecisionNotifier
}

func NewWorker(ch *amqp.Channel, notifier DecisionNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DecisionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] JSON inválido: %s", err)
				// Mensagem malformada não volta para a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] Notificando decisão '%s' do cadastro %d", payload.Status, payload.ApplicationID)

			if err := w.Notifier.SendDecision(payload); err != nil {
				log.Printf("[WORKER] Erro ao notificar %s: %s", payload.Email, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker aguardando na fila '%s'", queueName)
	<-forever
}
