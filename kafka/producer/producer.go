package producer

import (
	"atlas-sorter/kafka/topic"
	"atlas-sorter/model"
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const EnvBootstrapServers = "BOOTSTRAP_SERVERS"

type MessageProducer func(provider model.Provider[[]kafka.Message]) error

type Provider func(token string) MessageProducer

func UuidKey(id uuid.UUID) []byte {
	return []byte(id.String())
}

func SingleMessageProvider(key []byte, value interface{}) model.Provider[[]kafka.Message] {
	return func() ([]kafka.Message, error) {
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return []kafka.Message{{Key: key, Value: v}}, nil
	}
}

func Brokers() []string {
	val := os.Getenv(EnvBootstrapServers)
	if val == "" {
		return []string{"localhost:9092"}
	}
	return strings.Split(val, ",")
}

var writers sync.Map

func writer(t string) *kafka.Writer {
	w, _ := writers.LoadOrStore(t, &kafka.Writer{
		Addr:                   kafka.TCP(Brokers()...),
		Topic:                  t,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	})
	return w.(*kafka.Writer)
}

func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) Provider {
	return func(ctx context.Context) Provider {
		return func(token string) MessageProducer {
			t, _ := topic.EnvProvider(l)(token)()
			return Produce(l)(ctx)(writer(t))
		}
	}
}

func Produce(l logrus.FieldLogger) func(ctx context.Context) func(w *kafka.Writer) MessageProducer {
	return func(ctx context.Context) func(w *kafka.Writer) MessageProducer {
		return func(w *kafka.Writer) MessageProducer {
			return func(provider model.Provider[[]kafka.Message]) error {
				ms, err := provider()
				if err != nil {
					return err
				}
				err = w.WriteMessages(ctx, ms...)
				if err != nil {
					l.WithError(err).Errorf("Unable to emit [%d] message(s) to topic [%s].", len(ms), w.Topic)
					return err
				}
				l.Debugf("Emitted [%d] message(s) to topic [%s].", len(ms), w.Topic)
				return nil
			}
		}
	}
}

func Teardown(l logrus.FieldLogger) func() {
	return func() {
		writers.Range(func(key, value any) bool {
			if err := value.(*kafka.Writer).Close(); err != nil {
				l.WithError(err).Errorf("Unable to close writer for topic [%s].", key)
			}
			return true
		})
	}
}
