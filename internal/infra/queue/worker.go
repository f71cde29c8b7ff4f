package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zapcapta/zapcapta-api/internal/infra/http/middleware"
)

// OwnerDirectory resolve o e-mail de quem deve ser avisado do lead novo.
type OwnerDirectory interface {
	FindOwnerEmail(ctx context.Context, clientID string) (string, error)
}

// LeadNotifier define o contrato de envio da notificação (SMTP hoje).
type LeadNotifier interface {
	SendLeadNotification(to string, payload LeadCapturedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Owners   OwnerDirectory
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, owners OwnerDirectory, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Owners:   owners,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Lead novo: %s (origem: %s)", payload.Name, payload.Origin)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao notificar: %s", err)
				middleware.RecordNotificationError()
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Notificação enviada para o dono do site %s.", payload.SiteName)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload LeadCapturedPayload) error {
	ownerEmail, err := w.Owners.FindOwnerEmail(ctx, payload.ClientID)
	if err != nil {
		return err
	}
	return w.Notifier.SendLeadNotification(ownerEmail, payload)
}
