package adapter

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"

	zapAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/zaplogger/adapter"
)

func TestNewKafkaPubSubRequiresBrokers(t *testing.T) {
	_, _, err := NewKafkaPubSub(Config{ConsumerGroup: "airline"}, zapAdapter.NewNopAppLogger())
	assert.ErrorIs(t, err, ErrNoBrokers)
}

func TestSubscriberSaramaConfig(t *testing.T) {
	cfg := SubscriberSaramaConfig("airline")

	assert.Equal(t, "airline", cfg.ClientID)
	assert.Equal(t, sarama.OffsetOldest, cfg.Consumer.Offsets.Initial)
	assert.True(t, cfg.Consumer.Return.Errors)
	assert.Equal(t, sarama.V1_0_0_0, cfg.Version)
}
