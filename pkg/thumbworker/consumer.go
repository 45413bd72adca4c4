package thumbworker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"file-manager-api/config"
	"file-manager-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// Consumer pulls jobs off the durable queue with manual acknowledgement:
// a job is acked only after the handler reports success, so a crash mid-
// job leaves it eligible for redelivery (at-least-once).
type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
	handler    *Handler
}

func New(cfg config.MQ, logger *zap.Logger, handler *Handler) *Consumer {
	return &Consumer{
		cfg:     cfg,
		log:     logger,
		handler: handler,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return err
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range []string{
		mq.JobGenerateThumbnails,
		mq.JobWelcomeNotification,
	} {
		if err = c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var cerr error
	c.chDelivery, cerr = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if cerr != nil {
		return fmt.Errorf("consume: %w", cerr)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				// broker closed the consume channel; stop instead of
				// spinning on zero-value deliveries
				c.log.Warn("delivery channel closed by broker")
				return
			}
			c.deliver(ctx, msg)
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// deliver acks on success and nacks on failure; only failures a retry
// could fix go back on the queue.
func (c *Consumer) deliver(ctx context.Context, msg amqp091.Delivery) {
	var job mq.Job
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		c.log.Error("malformed job payload", zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}

	if err := c.handler.Handle(ctx, job); err != nil {
		requeue := !errors.Is(err, ErrPermanent)
		c.log.Error("job failed",
			zap.String("kind", job.Kind),
			zap.String("job_id", job.Id.String()),
			zap.Bool("requeue", requeue),
			zap.Error(err),
		)
		_ = msg.Nack(false, requeue)
		return
	}

	_ = msg.Ack(false)
}
