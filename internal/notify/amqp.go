package notify

import (
	"context"
	"encoding/json"

	"github.com/markoub/careers/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

const (
	exchangeName = "applications"
	routingKey   = "application.created"
)

// AMQPNotifier publishes application.created events as JSON to the
// applications topic exchange.
type AMQPNotifier struct {
	conn *amqp.Connection
	log  *logrus.Logger
}

func NewAMQPNotifier(url string, log *logrus.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &AMQPNotifier{conn: conn, log: log}, nil
}

func (n *AMQPNotifier) Close() error { return n.conn.Close() }

func (n *AMQPNotifier) ApplicationCreated(ctx context.Context, app *models.Application) {
	if err := n.publish(app); err != nil {
		n.log.WithFields(logrus.Fields{
			"application_id": app.ID,
			"error":          err.Error(),
		}).Warn("failed to publish application.created event")
	}
}

func (n *AMQPNotifier) publish(app *models.Application) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(app)
	if err != nil {
		return err
	}

	return ch.Publish(
		exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
