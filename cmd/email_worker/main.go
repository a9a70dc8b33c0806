package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/longchau/pharmacy-web/config"
	"github.com/longchau/pharmacy-web/pkg/helpers"
	"github.com/longchau/pharmacy-web/pkg/mailer"
	"github.com/longchau/pharmacy-web/pkg/mailer/templates"
)

// email_worker consumes EmailJob messages from RabbitMQ and sends them
// through Mailgun. Run it alongside the web server:
//
//	go run ./cmd/email_worker
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		log.Fatal("MAILGUN_DOMAIN and MAILGUN_API_KEY must be set")
	}
	mgn := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	q, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker consuming from %q", q.Name)

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			handleDelivery(ctx, logger, mgn, d)
		}
	}
}

func handleDelivery(ctx context.Context, logger *logrus.Logger, mgn *mailer.Mailgun, d amqp.Delivery) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.Errorf("dropping malformed email job: %v", err)
		_ = d.Nack(false, false) // do not requeue garbage
		return
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = templates.Render(job.Template, job.Data)
		if err != nil {
			logger.Errorf("dropping email job for %s: %v", job.To, err)
			_ = d.Nack(false, false)
			return
		}
	}

	if err := mgn.Send(ctx, job.To, subject, text, html); err != nil {
		logger.Errorf("failed to send email to %s: %v", job.To, err)
		_ = d.Nack(false, true) // requeue transient send failures
		return
	}
	_ = d.Ack(false)
}
