package data

import (
	"context"
	"fmt"

	"reelnorm/encoding"
	"reelnorm/internal/biz"

	"github.com/yola1107/kratos/v2/log"
)

const defaultExchange = "reelnorm.events"

// bodyPublisher is satisfied by *rabbitmq.Publisher.
type bodyPublisher interface {
	Publish(body []byte) error
}

type eventPublisher struct {
	pub bodyPublisher
	log *log.Helper
}

// NewEventPublisher .
func NewEventPublisher(data *Data, logger log.Logger) biz.EventPublisher {
	return &eventPublisher{
		pub: data.pub,
		log: log.NewHelper(logger),
	}
}

func (p *eventPublisher) Publish(ctx context.Context, ev *biz.ReelsEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := encoding.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ev.Kind, err)
	}
	if err := p.pub.Publish(body); err != nil {
		return fmt.Errorf("publish %s of game %d: %w", ev.Kind, ev.GameID, err)
	}
	return nil
}
