package consumer

import (
	"atlas-sorter/kafka/producer"
	"atlas-sorter/kafka/topic"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Handler func(l logrus.FieldLogger, ctx context.Context, m kafka.Message) error

type Config struct {
	name    string
	topic   string
	groupId string
	brokers []string
	maxWait time.Duration
}

func (c Config) Name() string {
	return c.name
}

func (c Config) Topic() string {
	return c.topic
}

func (c Config) GroupId() string {
	return c.groupId
}

func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) Config {
	return func(name string) func(token string) func(groupId string) Config {
		return func(token string) func(groupId string) Config {
			t, _ := topic.EnvProvider(l)(token)()
			return func(groupId string) Config {
				return Config{
					name:    name,
					topic:   t,
					groupId: groupId,
					brokers: producer.Brokers(),
					maxWait: 500 * time.Millisecond,
				}
			}
		}
	}
}

var ErrUnknownTopic = errors.New("no consumer registered for topic")
var ErrConsumerStarted = errors.New("consumer already started")

type Manager struct {
	lock      sync.RWMutex
	consumers map[string]*consumer
}

type consumer struct {
	config   Config
	l        logrus.FieldLogger
	ctx      context.Context
	wg       *sync.WaitGroup
	lock     sync.RWMutex
	started  bool
	handlers []Handler
}

var manager *Manager
var once sync.Once

func GetManager() *Manager {
	once.Do(func() {
		manager = &Manager{consumers: make(map[string]*consumer)}
	})
	return manager
}

// AddConsumer registers a reader for the configured topic. Reading begins at
// Start, once handlers are in place, and stops when ctx is done.
func (m *Manager) AddConsumer(l logrus.FieldLogger, ctx context.Context, wg *sync.WaitGroup) func(config Config) {
	return func(config Config) {
		m.lock.Lock()
		defer m.lock.Unlock()
		if _, ok := m.consumers[config.topic]; ok {
			l.Warnf("Consumer for topic [%s] already registered.", config.topic)
			return
		}
		m.consumers[config.topic] = &consumer{
			config: config,
			l:      l.WithFields(logrus.Fields{"originator": config.name, "type": "kafka_consumer"}),
			ctx:    ctx,
			wg:     wg,
		}
	}
}

func (m *Manager) RegisterHandler(topic string, handler Handler) (string, error) {
	m.lock.RLock()
	c, ok := m.consumers[topic]
	m.lock.RUnlock()
	if !ok {
		return "", fmt.Errorf("[%s]: %w", topic, ErrUnknownTopic)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.started {
		return "", fmt.Errorf("[%s]: %w", topic, ErrConsumerStarted)
	}
	c.handlers = append(c.handlers, handler)
	return topic, nil
}

// Start launches every registered consumer that is not yet reading.
func (m *Manager) Start() {
	m.lock.RLock()
	defer m.lock.RUnlock()
	for _, c := range m.consumers {
		c.lock.Lock()
		if c.started {
			c.lock.Unlock()
			continue
		}
		c.started = true
		handlers := append([]Handler(nil), c.handlers...)
		c.lock.Unlock()

		if len(handlers) == 0 {
			c.l.Warnf("Consumer for topic [%s] has no handlers.", c.config.topic)
		}
		c.wg.Add(1)
		go func(c *consumer, handlers []Handler) {
			defer c.wg.Done()
			c.run(c.l, c.ctx, handlers)
		}(c, handlers)
	}
}

func (c *consumer) run(l logrus.FieldLogger, ctx context.Context, handlers []Handler) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.config.brokers,
		Topic:   c.config.topic,
		GroupID: c.config.groupId,
		MaxWait: c.config.maxWait,
	})
	defer func() {
		if err := r.Close(); err != nil {
			l.WithError(err).Errorf("Unable to close reader for topic [%s].", c.config.topic)
		}
	}()

	l.Infof("Starting consumer for topic [%s].", c.config.topic)
	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				l.Infof("Stopping consumer for topic [%s].", c.config.topic)
				return
			}
			l.WithError(err).Errorf("Unable to read message from topic [%s].", c.config.topic)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		for _, h := range handlers {
			if err = h(l, ctx, msg); err != nil {
				l.WithError(err).Errorf("Unable to handle message at offset [%d] of topic [%s].", msg.Offset, c.config.topic)
			}
		}
	}
}
