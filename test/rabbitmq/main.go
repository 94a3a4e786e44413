package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"syscall"

	"reelnorm/encoding"
	"reelnorm/internal/biz"

	"github.com/streadway/amqp"
	"github.com/yola1107/kratos/v2/library/mq/rabbitmq"
)

const queueName = "reelnorm-smoke"

var (
	host     = flag.String("host", "127.0.0.1", "rabbitmq host")
	port     = flag.Int("port", 5672, "rabbitmq port")
	user     = flag.String("user", "guest", "rabbitmq user")
	password = flag.String("password", "guest", "rabbitmq password")
	exchange = flag.String("exchange", "reelnorm.events", "exchange the service publishes to")
)

func amqpURL() string {
	opts := rabbitmq.DefaultOptions()
	opts.Host = *host
	opts.Port = strconv.Itoa(*port)
	opts.Username = *user
	opts.Password = *password
	return opts.BuildURL()
}

// Consumer prints every reels.expanded event until ctx is done.
func Consumer(ctx context.Context) error {
	conn, err := amqp.Dial(amqpURL())
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(*exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(queueName, false, true, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(queueName, biz.EventReelsExpanded, *exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	log.Printf("[consumer] waiting for %s on %s", biz.EventReelsExpanded, *exchange)
	for {
		select {
		case <-ctx.Done():
			log.Println("[consumer] stopped")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				log.Println("[consumer] channel closed")
				return nil
			}
			var ev biz.ReelsEvent
			if err := encoding.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("[consumer] bad event: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			log.Printf("[consumer] game=%d kind=%s matrix=%v", ev.GameID, ev.Kind, ev.Reels.Matrix)
			if err := msg.Ack(false); err != nil {
				log.Printf("[consumer] ack: %v", err)
			}
		}
	}
}

func main() {
	flag.Parse()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := Consumer(ctx); err != nil {
		log.Fatalf("[consumer] %v", err)
	}
}
