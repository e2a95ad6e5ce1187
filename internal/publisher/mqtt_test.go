package publisher

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energyanalyzer/internal/analysis"
	"github.com/jgoulah/energyanalyzer/internal/config"
)

type fakeToken struct {
	err     error
	timeout bool
}

func (t *fakeToken) Wait() bool                     { return !t.timeout }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timeout }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	messages []published
	token    *fakeToken
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.messages = append(c.messages, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	if c.token != nil {
		return c.token
	}
	return &fakeToken{}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestPublishTrend(t *testing.T) {
	fc := &fakeClient{}
	p := newPublisher(fc, "energy/", quietLogger())

	trend := analysis.Trend{
		Sector:     "Non-Residential",
		Units:      "GWh",
		FirstYear:  1990,
		FirstValue: 80,
		LastYear:   2024,
		LastValue:  120,
		DeltaValue: 40,
		DeltaYears: 34,
		Samples:    2,
	}
	require.NoError(t, p.PublishTrend(trend))

	require.Len(t, fc.messages, 1)
	msg := fc.messages[0]
	assert.Equal(t, "energy/non_residential/trend", msg.topic)
	assert.True(t, msg.retained)
	assert.Equal(t, byte(0), msg.qos)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.payload, &got))
	assert.Equal(t, "Non-Residential", got["sector"])
	assert.Equal(t, 40.0, got["delta_value"])
	assert.Equal(t, 34.0, got["delta_years"])
	assert.NotEmpty(t, got["published_at"])
}

func TestPublishTrendErrors(t *testing.T) {
	fc := &fakeClient{token: &fakeToken{err: errors.New("not connected")}}
	p := newPublisher(fc, "energy", quietLogger())
	assert.ErrorContains(t, p.PublishTrend(analysis.Trend{Sector: "Residential"}), "not connected")

	fc.token = &fakeToken{timeout: true}
	assert.ErrorContains(t, p.PublishTrend(analysis.Trend{Sector: "Residential"}), "timed out")
}

func TestPublishTrendNilLogger(t *testing.T) {
	fc := &fakeClient{}
	p := newPublisher(fc, "energy", nil)
	require.NotNil(t, p.logger)
	assert.NoError(t, p.PublishTrend(analysis.Trend{Sector: "Residential"}))
	assert.Len(t, fc.messages, 1)

	_, err := New(config.MQTTConfig{}, "energy", nil)
	assert.ErrorContains(t, err, "not enabled")
}

func TestTrendTopicSlug(t *testing.T) {
	p := newPublisher(&fakeClient{}, "energyanalyzer", quietLogger())
	assert.Equal(t, "energyanalyzer/smr_internalgas/trend", p.TrendTopic("SMR-InternalGas"))
	assert.Equal(t, "energyanalyzer/public_gas/trend", p.TrendTopic(" Public Gas "))
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(config.MQTTConfig{}, "energyanalyzer", quietLogger())
	assert.ErrorContains(t, err, "not enabled")

	_, err = New(config.MQTTConfig{Enabled: true}, "energyanalyzer", quietLogger())
	assert.ErrorContains(t, err, "broker address is required")
}
