package netreactor

import (
	"context"
	"encoding/json"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"strings"
)

type KafkaEventRouter struct {
	ctx      context.Context
	producer *kafka.Writer
}

// InitEventRouter wires the package-level event router to Kafka. With no
// brokers configured the router stays nil and reactor events are dropped.
func InitEventRouter(ctx context.Context, conf EventsConfig) {
	if conf.KafkaBrokers == "" || conf.KafkaTopic == "" {
		log.Info().Msg("event router disabled: no kafka brokers configured")
		return
	}
	kafkaEventRouter := &KafkaEventRouter{
		ctx: ctx,
	}
	kafkaEventRouter.configure(conf)
	eventRouter = kafkaEventRouter
}

func (ker *KafkaEventRouter) Process(key string, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	return ker.producer.WriteMessages(ker.ctx, message)
}

func (ker *KafkaEventRouter) configure(conf EventsConfig) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(conf.KafkaBrokers, ",")...),
		Topic:        conf.KafkaTopic,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Balancer:     &kafka.RoundRobin{},
	}
	ker.producer = writer
}
