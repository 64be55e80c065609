package mq

import (
	"context"
	"fmt"

	"github.com/smartinvest/apiserver/config"
)

// Publisher sends prediction events to a broker channel. The advisor only
// ever publishes; consumers (e.g. an offline retraining pipeline) live in
// other services.
type Publisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Close() error
}

// NewFromConfig constructs the configured publisher backend. Returns
// (nil, nil) when no broker is configured.
func NewFromConfig(ctx context.Context, cfg config.Config) (Publisher, error) {
	switch cfg.MQ.Backend {
	case config.MQNone, "":
		return nil, nil
	case config.MQRabbitMQ:
		return NewRabbitMQPublisher(cfg.RabbitMQ)
	case config.MQPubSub:
		return NewPubSubPublisher(ctx, cfg.PubSub)
	default:
		return nil, fmt.Errorf("unknown mq backend %q", cfg.MQ.Backend)
	}
}
