package publisher

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jgoulah/energyanalyzer/internal/analysis"
	"github.com/jgoulah/energyanalyzer/internal/config"
)

// client is the part of mqtt.Client the publisher uses
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher sends analysis summaries to an MQTT broker
type Publisher struct {
	client      client
	conn        mqtt.Client
	topicPrefix string
	timeout     time.Duration
	logger      *logrus.Logger
}

// New connects to the configured MQTT broker. A nil logger discards output.
func New(cfg config.MQTTConfig, topicPrefix string, logger *logrus.Logger) (*Publisher, error) {
	logger = orDiscard(logger)
	if !cfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "energyanalyzer-" + uuid.NewString()[:8]
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(false)
	opts.SetConnectTimeout(10 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	conn := mqtt.NewClient(opts)
	if token := conn.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}
	logger.WithFields(logrus.Fields{"broker": cfg.Broker, "client_id": clientID}).Info("connected to MQTT broker")

	p := newPublisher(conn, topicPrefix, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(c client, topicPrefix string, logger *logrus.Logger) *Publisher {
	return &Publisher{
		client:      c,
		topicPrefix: strings.TrimSuffix(topicPrefix, "/"),
		timeout:     10 * time.Second,
		logger:      orDiscard(logger),
	}
}

func orDiscard(logger *logrus.Logger) *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return logger
}

// TrendPayload is the JSON published for a sector trend
type TrendPayload struct {
	analysis.Trend
	PublishedAt string `json:"published_at"`
}

// PublishTrend publishes a sector's trend as a retained message on
// <prefix>/<sector>/trend
func (p *Publisher) PublishTrend(t analysis.Trend) error {
	payload := TrendPayload{
		Trend:       t,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	topic := p.TrendTopic(t.Sector)
	token := p.client.Publish(topic, 0, true, body)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publishing to %s: timed out after %s", topic, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}

	p.logger.WithFields(logrus.Fields{"topic": topic, "bytes": len(body)}).Debug("published trend")
	return nil
}

// TrendTopic returns the topic a sector's trend is published on
func (p *Publisher) TrendTopic(sector string) string {
	return fmt.Sprintf("%s/%s/trend", p.topicPrefix, slug(sector))
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.conn != nil && p.conn.IsConnected() {
		p.conn.Disconnect(250)
	}
}

// slug lower-cases a sector name and replaces anything that is not a letter
// or digit with '_', so it is safe as a single topic level
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
